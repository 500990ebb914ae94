// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bmbuzz/bmbuzz/internal/i18n"
	"github.com/bmbuzz/bmbuzz/internal/model"
)

// ContextKeyLanguage carries the resolved reader language code.
const ContextKeyLanguage ContextKey = "language"

// LanguageCookieName is the cookie name for language preference.
const LanguageCookieName = "bmbuzz_lang"

// Language creates middleware that detects and sets the reader language.
// Priority order:
//  1. Query parameter ?lang=XX (explicit switch, updates cookie)
//  2. Cookie preference
//  3. Accept-Language header
//  4. Default language
func Language() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// 1. Query parameter takes highest priority and updates the cookie
			if queryLang := strings.ToLower(r.URL.Query().Get("lang")); queryLang != "" {
				if model.IsSupportedLanguage(queryLang) {
					SetLanguageCookie(w, queryLang)
					next.ServeHTTP(w, r.WithContext(setLanguage(ctx, queryLang)))
					return
				}
			}

			// 2. Cookie preference
			if cookie, err := r.Cookie(LanguageCookieName); err == nil {
				code := strings.ToLower(cookie.Value)
				if model.IsSupportedLanguage(code) {
					next.ServeHTTP(w, r.WithContext(setLanguage(ctx, code)))
					return
				}
			}

			// 3. Accept-Language header
			if acceptLang := r.Header.Get("Accept-Language"); acceptLang != "" {
				if code := i18n.MatchLanguage(acceptLang); code != "" {
					next.ServeHTTP(w, r.WithContext(setLanguage(ctx, code)))
					return
				}
			}

			// 4. Default language
			next.ServeHTTP(w, r.WithContext(setLanguage(ctx, model.DefaultLanguage)))
		})
	}
}

func setLanguage(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, ContextKeyLanguage, code)
}

// GetLanguage retrieves the reader language from the request context.
// Returns the default language when the middleware did not run.
func GetLanguage(r *http.Request) string {
	code, ok := r.Context().Value(ContextKeyLanguage).(string)
	if !ok || code == "" {
		return model.DefaultLanguage
	}
	return code
}

// SetLanguageCookie sets the language preference cookie.
func SetLanguageCookie(w http.ResponseWriter, langCode string) {
	cookie := &http.Cookie{
		Name:     LanguageCookieName,
		Value:    langCode,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}
