// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

// Package editor implements the admin toolbar's inline markup actions.
//
// The content buffer is plain text holding raw HTML; actions splice literal
// tag strings around the selection. There is no document model, so
// overlapping or malformed nesting is neither detected nor prevented.
//
// Selection offsets and the returned cursor are measured in UTF-16 code
// units, which is what browsers report for textarea selections. The Bangla
// and Hindi story bodies make the distinction matter: splicing at raw byte
// offsets would land inside a rune.
package editor

import (
	"fmt"
	"unicode/utf16"
)

// Action identifies a toolbar operation.
type Action string

// Supported toolbar actions.
const (
	ActionBold   Action = "bold"
	ActionItalic Action = "italic"
	ActionLink   Action = "link"
)

// linkOpenFormat carries the fixed styling attributes applied to inserted links.
const linkOpenFormat = `<a href="%s" target="_blank" class="text-primary font-bold underline">`

// Result is the buffer after an action, with the cursor placed
// immediately after the inserted closing tag.
type Result struct {
	Content string `json:"content"`
	Cursor  int    `json:"cursor"`
}

// Wrap applies a toolbar action to the selection [start, end) of content,
// with offsets in UTF-16 code units. For ActionLink, url is the
// operator-supplied address; an empty url means the prompt was cancelled
// and the buffer is returned unchanged with the cursor still at end.
func Wrap(action Action, content string, start, end int, url string) (Result, error) {
	bStart, bEnd, err := byteOffsets(content, start, end)
	if err != nil {
		return Result{}, err
	}

	var open, closing string
	switch action {
	case ActionBold:
		open, closing = "<b>", "</b>"
	case ActionItalic:
		open, closing = "<i>", "</i>"
	case ActionLink:
		if url == "" {
			// Cancelled prompt: no mutation
			return Result{Content: content, Cursor: end}, nil
		}
		open, closing = fmt.Sprintf(linkOpenFormat, url), "</a>"
	default:
		return Result{}, fmt.Errorf("unknown editor action %q", action)
	}

	wrapped := content[:bStart] + open + content[bStart:bEnd] + closing + content[bEnd:]
	cursor := start + utf16Len(open) + (end - start) + utf16Len(closing)

	return Result{Content: wrapped, Cursor: cursor}, nil
}

// byteOffsets converts a [start, end) selection in UTF-16 code units to
// byte offsets into s. An offset landing inside a surrogate pair snaps
// forward to the next rune boundary.
func byteOffsets(s string, start, end int) (int, int, error) {
	if start < 0 || end < start {
		return 0, 0, fmt.Errorf("selection [%d, %d) is not a valid range", start, end)
	}

	bStart, bEnd := -1, -1
	units := 0
	for i, r := range s {
		if bStart < 0 && units >= start {
			bStart = i
		}
		if bEnd < 0 && units >= end {
			bEnd = i
		}
		units += utf16.RuneLen(r)
	}

	if end > units {
		return 0, 0, fmt.Errorf("selection [%d, %d) out of range for buffer of %d units", start, end, units)
	}
	if bStart < 0 {
		bStart = len(s)
	}
	if bEnd < 0 {
		bEnd = len(s)
	}
	return bStart, bEnd, nil
}

// utf16Len is the length of s in UTF-16 code units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
