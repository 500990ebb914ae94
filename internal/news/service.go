// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package news

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/bmbuzz/bmbuzz/internal/model"
	"github.com/bmbuzz/bmbuzz/internal/store"
)

// Service loads the public feed from the content store.
type Service struct {
	queries *store.Queries
}

// NewService creates a feed service over the given database.
func NewService(db *sql.DB) *Service {
	return &Service{queries: store.New(db)}
}

// Feed returns the full mapped post collection, newest first. A store
// failure or an empty table yields the built-in fallback set instead of
// an error: the public site never renders an empty or broken feed.
func (s *Service) Feed(ctx context.Context) []model.Post {
	rows, err := s.queries.ListNews(ctx)
	if err != nil {
		slog.Error("news fetch failed, serving fallback posts", "error", err, "category", model.EventCategoryNews)
		return FallbackPosts()
	}
	if len(rows) == 0 {
		return FallbackPosts()
	}
	return MapRows(rows)
}
