// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package news

import (
	"github.com/bmbuzz/bmbuzz/internal/model"
	"github.com/bmbuzz/bmbuzz/internal/util"
)

// CategoryBySlug resolves a URL slug back to its canonical category name.
// Returns false when no known category maps to the slug.
func CategoryBySlug(slug string) (string, bool) {
	for _, c := range model.Categories() {
		if util.Slugify(c) == slug {
			return c, true
		}
	}
	return "", false
}
