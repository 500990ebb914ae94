// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/bmbuzz/bmbuzz/internal/store"
	"github.com/bmbuzz/bmbuzz/internal/testutil"
)

func createStory(t *testing.T, q *store.Queries, title string, createdAt time.Time) store.News {
	t.Helper()
	row, err := q.CreateNews(context.Background(), store.CreateNewsParams{
		Title:     title,
		Category:  "News",
		ImageURL:  "/uploads/x.jpg",
		Content:   "<p>body</p>",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("CreateNews: %v", err)
	}
	return row
}

func TestCreateAndGetNews(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)

	created := createStory(t, q, "Hello", time.Date(2025, 10, 24, 9, 0, 0, 0, time.UTC))

	if created.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	got, err := q.GetNewsByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetNewsByID: %v", err)
	}
	if got.Title != "Hello" || got.Category != "News" || got.Featured {
		t.Errorf("row mismatch: %+v", got)
	}
}

func TestGetNewsByID_NotFound(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)

	_, err := q.GetNewsByID(context.Background(), 12345)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestListNews_NewestFirst(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	createStory(t, q, "oldest", base)
	createStory(t, q, "newest", base.Add(2*time.Hour))
	createStory(t, q, "middle", base.Add(time.Hour))

	rows, err := q.ListNews(context.Background())
	if err != nil {
		t.Fatalf("ListNews: %v", err)
	}

	want := []string{"newest", "middle", "oldest"}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, title := range want {
		if rows[i].Title != title {
			t.Errorf("rows[%d].Title = %q, want %q", i, rows[i].Title, title)
		}
	}
}

func TestUpdateNews_PreservesCreatedAt(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)

	createdAt := time.Date(2025, 7, 15, 8, 0, 0, 0, time.UTC)
	row := createStory(t, q, "Before", createdAt)

	updated, err := q.UpdateNews(context.Background(), store.UpdateNewsParams{
		Title:     "After",
		Category:  row.Category,
		ImageURL:  row.ImageURL,
		Content:   row.Content,
		Featured:  true,
		UpdatedAt: createdAt.Add(time.Hour),
		ID:        row.ID,
	})
	if err != nil {
		t.Fatalf("UpdateNews: %v", err)
	}

	if updated.Title != "After" || !updated.Featured {
		t.Errorf("update not applied: %+v", updated)
	}
	if !updated.CreatedAt.Equal(row.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", row.CreatedAt, updated.CreatedAt)
	}
}

func TestUpdateNews_UnchangedFieldsRoundTrip(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)

	row := createStory(t, q, "Same", time.Date(2025, 7, 15, 8, 0, 0, 0, time.UTC))

	// Writing back the loaded values must leave an equivalent row.
	updated, err := q.UpdateNews(context.Background(), store.UpdateNewsParams{
		Title:     row.Title,
		Category:  row.Category,
		ImageURL:  row.ImageURL,
		Content:   row.Content,
		Featured:  row.Featured,
		UpdatedAt: row.UpdatedAt,
		ID:        row.ID,
	})
	if err != nil {
		t.Fatalf("UpdateNews: %v", err)
	}

	if updated.Title != row.Title || updated.Category != row.Category ||
		updated.ImageURL != row.ImageURL || updated.Content != row.Content ||
		updated.Featured != row.Featured {
		t.Errorf("round trip changed the row: %+v vs %+v", updated, row)
	}
	if !updated.CreatedAt.Equal(row.CreatedAt) {
		t.Errorf("CreatedAt changed on round trip")
	}
}

func TestDeleteNews(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)

	row := createStory(t, q, "Doomed", time.Now())

	if err := q.DeleteNews(context.Background(), row.ID); err != nil {
		t.Fatalf("DeleteNews: %v", err)
	}

	if _, err := q.GetNewsByID(context.Background(), row.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("row still present after delete, err = %v", err)
	}
}

func TestCountNews(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)

	if n, err := q.CountNews(context.Background()); err != nil || n != 0 {
		t.Fatalf("CountNews on empty table = (%d, %v), want (0, nil)", n, err)
	}

	createStory(t, q, "one", time.Now())
	createStory(t, q, "two", time.Now())

	if n, err := q.CountNews(context.Background()); err != nil || n != 2 {
		t.Errorf("CountNews = (%d, %v), want (2, nil)", n, err)
	}
}

func TestCountNewsByCategory(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)

	createStory(t, q, "one", time.Now())
	createStory(t, q, "two", time.Now())
	if _, err := q.CreateNews(context.Background(), store.CreateNewsParams{
		Title: "match report", Category: "Sports", ImageURL: "/uploads/x.jpg",
		Content: "<p>body</p>", CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("CreateNews: %v", err)
	}

	counts, err := q.CountNewsByCategory(context.Background())
	if err != nil {
		t.Fatalf("CountNewsByCategory: %v", err)
	}
	want := []store.CategoryCount{{Category: "News", Count: 2}, {Category: "Sports", Count: 1}}
	if len(counts) != len(want) {
		t.Fatalf("got %d categories, want %d", len(counts), len(want))
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts[%d] = %+v, want %+v", i, counts[i], want[i])
		}
	}
}

func TestCreateAndListEvents(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	q := store.New(db)

	ctx := context.Background()
	base := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	for i, msg := range []string{"first", "second", "third"} {
		_, err := q.CreateEvent(ctx, store.CreateEventParams{
			Level:     "warning",
			Category:  "system",
			Message:   msg,
			Metadata:  "{}",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	events, err := q.ListEvents(ctx, 2)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Message != "third" || events[1].Message != "second" {
		t.Errorf("events not newest-first: %q, %q", events[0].Message, events[1].Message)
	}
}
