// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

// Package news turns raw content store rows into display-ready posts and
// implements the feed selection rules of the public site.
package news

import (
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/bmbuzz/bmbuzz/internal/model"
	"github.com/bmbuzz/bmbuzz/internal/store"
)

// ExcerptLength is the maximum rune count of a derived excerpt.
const ExcerptLength = 160

// PlaceholderImage is used when a row has no stored image URL.
const PlaceholderImage = "https://picsum.photos/seed/news/800/600"

// UntitledTitle is the placeholder for rows without a title.
const UntitledTitle = "Untitled Story"

// RecentlyDate is the display date for rows without a usable timestamp.
const RecentlyDate = "Recently"

// dateLayout renders creation timestamps as short localized dates.
const dateLayout = "Jan 2, 2006"

// stripPolicy removes every HTML tag for excerpt derivation.
var stripPolicy = bluemonday.StrictPolicy()

// Excerpt derives a tag-free, truncated excerpt from raw HTML content.
// The ellipsis marker is appended uniformly, matching the site's original
// rendering convention.
func Excerpt(content string) string {
	stripped := html.UnescapeString(stripPolicy.Sanitize(content))
	stripped = strings.Join(strings.Fields(stripped), " ")

	runes := []rune(stripped)
	if len(runes) > ExcerptLength {
		runes = runes[:ExcerptLength]
	}
	return string(runes) + "..."
}

// MapRow converts a raw store row into a display-ready post. Every absent
// or malformed field is defaulted; this function never fails, because one
// bad row must not blank the whole feed.
func MapRow(row store.News) model.Post {
	title := strings.TrimSpace(row.Title)
	if title == "" {
		title = UntitledTitle
	}

	category := row.Category
	if category == "" {
		category = model.DefaultCategory
	}

	image := row.ImageURL
	if image == "" {
		image = PlaceholderImage
	}

	date := RecentlyDate
	if !row.CreatedAt.IsZero() {
		date = row.CreatedAt.Format(dateLayout)
	}

	tuple := model.Translation{
		Title:   title,
		Excerpt: Excerpt(row.Content),
		Content: row.Content,
	}

	// Every language slot carries the identical tuple: posts are authored
	// in a single language and fanned out, not translated.
	translations := make(map[string]model.Translation, len(model.Languages))
	for _, lang := range model.Languages {
		translations[lang.Code] = tuple
	}

	return model.Post{
		ID:           strconv.FormatInt(row.ID, 10),
		Category:     category,
		Author:       model.DefaultAuthor,
		Date:         date,
		Image:        image,
		Featured:     row.Featured,
		Translations: translations,
	}
}

// MapRows converts a row sequence into posts, preserving order.
func MapRows(rows []store.News) []model.Post {
	posts := make([]model.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, MapRow(row))
	}
	return posts
}
