// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// DefaultCategory is used when a stored row carries no usable category.
const DefaultCategory = "News"

// DefaultAuthor is the display author for every post.
const DefaultAuthor = "Admin"

// GeneralCategories are the site-wide section tags.
var GeneralCategories = []string{
	"News", "Music", "Movies", "Culture", "Events",
	"Interviews", "Videos", "Gallery", "Talent Showcase", "Jobs",
}

// RegionalCategories are the community region section tags.
var RegionalCategories = []string{
	"Silchar", "Manipuri", "Hingala", "Baronuni", "Bangladesh",
	"Tripura", "Bikrampur", "Patharkandi", "Guwahati",
}

// Categories returns every selectable category, general first.
// "Home" is a navigation entry, not a post category, and is not included.
func Categories() []string {
	out := make([]string, 0, len(GeneralCategories)+len(RegionalCategories))
	out = append(out, GeneralCategories...)
	out = append(out, RegionalCategories...)
	return out
}

// IsValidCategory reports whether cat is one of the selectable categories.
// The storage layer does not enforce this; only the admin form does.
func IsValidCategory(cat string) bool {
	for _, c := range Categories() {
		if c == cat {
			return true
		}
	}
	return false
}

// Translation is the per-language content tuple of a post.
type Translation struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// Post is the display-ready representation of a news row.
// Every language slot is populated by the mapper; content is raw HTML
// authored in the admin editor and rendered unescaped.
type Post struct {
	ID           string                 `json:"id"`
	Category     string                 `json:"category"`
	Author       string                 `json:"author"`
	Date         string                 `json:"date"`
	Image        string                 `json:"image"`
	Featured     bool                   `json:"featured"`
	Translations map[string]Translation `json:"translations"`
}

// Localized resolves the content tuple for lang, falling back to the
// default language slot and finally to an untitled tuple.
func (p Post) Localized(lang string) Translation {
	if t, ok := p.Translations[lang]; ok {
		return t
	}
	if t, ok := p.Translations[DefaultLanguage]; ok {
		return t
	}
	return Translation{Title: "Untitled"}
}
