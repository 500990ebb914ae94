// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is the interface shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Queries wraps a database handle with typed query methods.
type Queries struct {
	db DBTX
}

// New creates a Queries instance for the given database handle.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a Queries instance bound to the given transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// News is a raw row of the news table.
type News struct {
	ID        int64
	Title     string
	Category  string
	ImageURL  string
	Content   string
	Featured  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

const newsColumns = "id, title, category, image_url, content, featured, created_at, updated_at"

func scanNews(row interface{ Scan(...any) error }) (News, error) {
	var n News
	err := row.Scan(&n.ID, &n.Title, &n.Category, &n.ImageURL, &n.Content,
		&n.Featured, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

// ListNews returns all news rows ordered by creation time descending.
func (q *Queries) ListNews(ctx context.Context) ([]News, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+newsColumns+" FROM news ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// GetNewsByID returns a single news row.
func (q *Queries) GetNewsByID(ctx context.Context, id int64) (News, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+newsColumns+" FROM news WHERE id = ?", id)
	return scanNews(row)
}

// CreateNewsParams holds the writable fields for a new news row.
type CreateNewsParams struct {
	Title     string
	Category  string
	ImageURL  string
	Content   string
	Featured  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateNews inserts a news row and returns it with the assigned ID.
func (q *Queries) CreateNews(ctx context.Context, arg CreateNewsParams) (News, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO news (title, category, image_url, content, featured, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING `+newsColumns,
		arg.Title, arg.Category, arg.ImageURL, arg.Content, arg.Featured,
		arg.CreatedAt, arg.UpdatedAt)
	return scanNews(row)
}

// UpdateNewsParams holds the writable fields for an existing news row.
type UpdateNewsParams struct {
	Title     string
	Category  string
	ImageURL  string
	Content   string
	Featured  bool
	UpdatedAt time.Time
	ID        int64
}

// UpdateNews updates a news row. The creation timestamp is never touched.
func (q *Queries) UpdateNews(ctx context.Context, arg UpdateNewsParams) (News, error) {
	row := q.db.QueryRowContext(ctx,
		`UPDATE news SET title = ?, category = ?, image_url = ?, content = ?,
		 featured = ?, updated_at = ?
		 WHERE id = ?
		 RETURNING `+newsColumns,
		arg.Title, arg.Category, arg.ImageURL, arg.Content, arg.Featured,
		arg.UpdatedAt, arg.ID)
	return scanNews(row)
}

// DeleteNews removes a news row by ID.
func (q *Queries) DeleteNews(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM news WHERE id = ?", id)
	return err
}

// CountNews returns the total number of news rows.
func (q *Queries) CountNews(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM news").Scan(&count)
	return count, err
}

// CategoryCount pairs a category with its story count.
type CategoryCount struct {
	Category string
	Count    int64
}

// CountNewsByCategory returns per-category story counts for categories
// that have at least one story, ordered by name.
func (q *Queries) CountNewsByCategory(ctx context.Context) ([]CategoryCount, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT category, COUNT(*) FROM news GROUP BY category ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// Event is a raw row of the events table.
type Event struct {
	ID        int64
	Level     string
	Category  string
	Message   string
	Metadata  string
	CreatedAt time.Time
}

// CreateEventParams holds the fields for a new event log entry.
type CreateEventParams struct {
	Level     string
	Category  string
	Message   string
	Metadata  string
	CreatedAt time.Time
}

// CreateEvent inserts an event log entry.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (Event, error) {
	row := q.db.QueryRowContext(ctx,
		`INSERT INTO events (level, category, message, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING id, level, category, message, metadata, created_at`,
		arg.Level, arg.Category, arg.Message, arg.Metadata, arg.CreatedAt)

	var e Event
	err := row.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.Metadata, &e.CreatedAt)
	return e, err
}

// DeleteEventsBefore removes event log entries older than cutoff and
// returns the number of rows deleted.
func (q *Queries) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`DELETE FROM events WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListEvents returns the most recent event log entries.
func (q *Queries) ListEvents(ctx context.Context, limit int64) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, level, category, message, metadata, created_at
		 FROM events ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
