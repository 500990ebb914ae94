// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging mirrors warnings and errors from the application log
// into the events table, so the newsroom has an audit trail without a
// separate logging pipeline.
package logging

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/bmbuzz/bmbuzz/internal/middleware"
	"github.com/bmbuzz/bmbuzz/internal/model"
	"github.com/bmbuzz/bmbuzz/internal/store"
)

// EventLogHandler wraps another slog.Handler and additionally persists
// records at or above a threshold level to the events table.
type EventLogHandler struct {
	inner   slog.Handler
	queries *store.Queries
	level   slog.Level
}

// NewEventLogHandler returns a handler that forwards everything to inner
// and persists WARN and above.
func NewEventLogHandler(inner slog.Handler, db *sql.DB) *EventLogHandler {
	return &EventLogHandler{
		inner:   inner,
		queries: store.New(db),
		level:   slog.LevelWarn,
	}
}

// NewEventLogHandlerWithLevel is NewEventLogHandler with a custom
// persistence threshold.
func NewEventLogHandlerWithLevel(inner slog.Handler, db *sql.DB, level slog.Level) *EventLogHandler {
	h := NewEventLogHandler(inner, db)
	h.level = level
	return h
}

func (h *EventLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *EventLogHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.persist(ctx, r)
	}

	return nil
}

func (h *EventLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EventLogHandler{
		inner:   h.inner.WithAttrs(attrs),
		queries: h.queries,
		level:   h.level,
	}
}

func (h *EventLogHandler) WithGroup(name string) slog.Handler {
	return &EventLogHandler{
		inner:   h.inner.WithGroup(name),
		queries: h.queries,
		level:   h.level,
	}
}

// persist writes one record to the events table. A failed insert is
// dropped silently; the record already went to the inner handler.
func (h *EventLogHandler) persist(ctx context.Context, r slog.Record) {
	// Background context so the event survives a cancelled request context;
	// ctx is only read for the request path.
	_, _ = h.queries.CreateEvent(context.Background(), store.CreateEventParams{
		Level:     eventLevel(r.Level),
		Category:  eventCategory(r),
		Message:   r.Message,
		Metadata:  eventMetadata(r, middleware.GetRequestPath(ctx)),
		CreatedAt: r.Time,
	})
}

func eventLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return model.EventLevelError
	case level >= slog.LevelWarn:
		return model.EventLevelWarning
	default:
		return model.EventLevelInfo
	}
}

// eventCategory picks the event category: an explicit "category" attr
// wins, otherwise the message text is matched against the site's areas.
func eventCategory(r slog.Record) string {
	var category string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" {
			category = a.Value.String()
			return false
		}
		return true
	})
	if category != "" {
		return category
	}

	msg := strings.ToLower(r.Message)
	switch {
	case strings.Contains(msg, "auth"), strings.Contains(msg, "login"), strings.Contains(msg, "logout"):
		return model.EventCategoryAuth
	case strings.Contains(msg, "news"), strings.Contains(msg, "post"), strings.Contains(msg, "story"):
		return model.EventCategoryNews
	case strings.Contains(msg, "image"), strings.Contains(msg, "upload"), strings.Contains(msg, "photo"):
		return model.EventCategoryMedia
	default:
		return model.EventCategorySystem
	}
}

// eventMetadata flattens the record attrs into a JSON object, minus the
// category attr which is stored in its own column. The request path, when
// the record was logged inside a request, is added under "path".
func eventMetadata(r slog.Record, path string) string {
	attrs := make(map[string]string)
	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "category" {
			attrs[a.Key] = a.Value.String()
		}
		return true
	})
	if path != "" {
		attrs["path"] = path
	}

	data, err := json.Marshal(attrs)
	if err != nil {
		return "{}"
	}
	return string(data)
}
