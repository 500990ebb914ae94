// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// Seed inserts demo posts when seeding is enabled and the news table is empty.
func Seed(ctx context.Context, db *sql.DB, doSeed bool) error {
	if !doSeed {
		return nil
	}

	queries := New(db)

	count, err := queries.CountNews(ctx)
	if err != nil {
		return fmt.Errorf("counting news: %w", err)
	}
	if count > 0 {
		slog.Info("news table already populated, skipping seed", "count", count)
		return nil
	}

	now := time.Now()
	demo := []CreateNewsParams{
		{
			Title:    "The 8-Year Journey of 'Banar Moynago': A Masterpiece Matured Through Time",
			Category: "News",
			ImageURL: "https://images.unsplash.com/photo-1514525253361-bee8718a7439?auto=format&fit=crop&q=80&w=1200",
			Content:  "<h2>The Genesis</h2><p>The journey began in 2017 with a simple composition that grew into an anthem for the community.</p>",
			Featured: true,
		},
		{
			Title:    "Bishnupriya Literature Festival 2025 Schedule Released",
			Category: "Events",
			ImageURL: "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?auto=format&fit=crop&q=80&w=800",
			Content:  "<p>Mark your calendars for the biggest literary gathering of the year in Guwahati. Details about the speakers and venues inside.</p>",
		},
		{
			Title:    "Traditional Weaving Techniques Revived by Youth Groups",
			Category: "Culture",
			ImageURL: "https://images.unsplash.com/photo-1528605248644-14dd04022da1?auto=format&fit=crop&q=80&w=800",
			Content:  "<p>Young artisans are bringing back ancient patterns to modern fashion shows, exploring how tradition meets modern trends.</p>",
		},
	}

	for i, p := range demo {
		// Stagger timestamps so list ordering is deterministic
		p.CreatedAt = now.Add(-time.Duration(i) * time.Hour)
		p.UpdatedAt = p.CreatedAt
		if _, err := queries.CreateNews(ctx, p); err != nil {
			return fmt.Errorf("seeding news: %w", err)
		}
	}

	slog.Info("seeded demo posts", "count", len(demo))
	return nil
}
