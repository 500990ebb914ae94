// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package news

import "github.com/bmbuzz/bmbuzz/internal/model"

// Sidebar sizes.
const (
	popularCount = 3
	recentCount  = 4
)

// SelectFeatured picks the hero post for the home view: the first post
// flagged featured, else the first post of the (date-descending)
// collection, else none. Multiple featured rows are tolerated; uniqueness
// is resolved here at read time, never at write time.
func SelectFeatured(posts []model.Post) (model.Post, bool) {
	for _, p := range posts {
		if p.Featured {
			return p, true
		}
	}
	if len(posts) > 0 {
		return posts[0], true
	}
	return model.Post{}, false
}

// ExcludeByID returns posts without the one matching id, preserving order.
func ExcludeByID(posts []model.Post, id string) []model.Post {
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// FilterByCategory returns exactly the posts whose category matches cat,
// case-sensitively, preserving order.
func FilterByCategory(posts []model.Post, cat string) []model.Post {
	var out []model.Post
	for _, p := range posts {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// Lookup resolves a post by ID from an already-loaded collection.
func Lookup(posts []model.Post, id string) (model.Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return model.Post{}, false
}

// Popular returns the sidebar's popular picks: the first posts of the feed.
func Popular(posts []model.Post) []model.Post {
	if len(posts) > popularCount {
		return posts[:popularCount]
	}
	return posts
}

// Recent returns the sidebar's recent posts. The feed is already ordered
// by creation time descending, so this is a prefix.
func Recent(posts []model.Post) []model.Post {
	if len(posts) > recentCount {
		return posts[:recentCount]
	}
	return posts
}
