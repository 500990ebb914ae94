// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bmbuzz/bmbuzz/internal/i18n"
	"github.com/bmbuzz/bmbuzz/internal/testutil"
)

func captureLanguage(t *testing.T) (http.Handler, *string) {
	t.Helper()

	if err := i18n.Init(testutil.TestLogger()); err != nil {
		t.Fatalf("i18n.Init: %v", err)
	}

	var got string
	h := Language()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetLanguage(r)
	}))
	return h, &got
}

func TestLanguage_Default(t *testing.T) {
	h, got := captureLanguage(t)

	req := httptest.NewRequest("GET", "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if *got != "en" {
		t.Errorf("language = %q, want en", *got)
	}
}

func TestLanguage_QueryParamSetsCookie(t *testing.T) {
	h, got := captureLanguage(t)

	req := httptest.NewRequest("GET", "/?lang=bn", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if *got != "bn" {
		t.Errorf("language = %q, want bn", *got)
	}

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == LanguageCookieName && c.Value == "bn" {
			found = true
		}
	}
	if !found {
		t.Error("language preference cookie not set")
	}
}

func TestLanguage_InvalidQueryParamIgnored(t *testing.T) {
	h, got := captureLanguage(t)

	req := httptest.NewRequest("GET", "/?lang=xx", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if *got != "en" {
		t.Errorf("language = %q, want default en for unsupported code", *got)
	}
}

func TestLanguage_Cookie(t *testing.T) {
	h, got := captureLanguage(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: LanguageCookieName, Value: "hi"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if *got != "hi" {
		t.Errorf("language = %q, want hi from cookie", *got)
	}
}

func TestLanguage_AcceptLanguageHeader(t *testing.T) {
	h, got := captureLanguage(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "bn-BD,bn;q=0.9,en;q=0.5")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if *got != "bn" {
		t.Errorf("language = %q, want bn from Accept-Language", *got)
	}
}

func TestLanguage_QueryBeatsCookie(t *testing.T) {
	h, got := captureLanguage(t)

	req := httptest.NewRequest("GET", "/?lang=hi", nil)
	req.AddCookie(&http.Cookie{Name: LanguageCookieName, Value: "bn"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if *got != "hi" {
		t.Errorf("language = %q, want query param to win over cookie", *got)
	}
}

func TestGetLanguage_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	if got := GetLanguage(req); got != "en" {
		t.Errorf("GetLanguage = %q, want default en", got)
	}
}
