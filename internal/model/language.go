// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// DefaultLanguage is the fallback language code for untranslated content.
const DefaultLanguage = "en"

// Language is a reader-facing site language.
type Language struct {
	Code string `json:"code"` // ISO 639-1: en, bn, hi
	Name string `json:"name"` // native display name
}

// Languages lists the site languages in switcher order.
var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "bn", Name: "বাংলা"},
	{Code: "hi", Name: "हिन्दी"},
}

// LanguageCodes returns the supported language codes in order.
func LanguageCodes() []string {
	codes := make([]string, len(Languages))
	for i, l := range Languages {
		codes[i] = l.Code
	}
	return codes
}

// IsSupportedLanguage reports whether code is a site language.
func IsSupportedLanguage(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}
