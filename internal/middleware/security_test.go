// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func serveWithHeaders(cfg SecurityHeadersConfig) http.Header {
	h := SecurityHeaders(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	return rec.Header()
}

func TestSecurityHeaders_Development(t *testing.T) {
	headers := serveWithHeaders(DefaultSecurityHeadersConfig(true))

	if headers.Get("Strict-Transport-Security") != "" {
		t.Error("HSTS should be disabled in development")
	}
	if got := headers.Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := headers.Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Errorf("X-Frame-Options = %q, want SAMEORIGIN", got)
	}
	if got := headers.Get("Referrer-Policy"); got != "strict-origin-when-cross-origin" {
		t.Errorf("Referrer-Policy = %q", got)
	}
}

func TestSecurityHeaders_Production(t *testing.T) {
	headers := serveWithHeaders(DefaultSecurityHeadersConfig(false))

	hsts := headers.Get("Strict-Transport-Security")
	if !strings.Contains(hsts, "max-age=31536000") {
		t.Errorf("HSTS = %q, want one year max-age", hsts)
	}
	if !strings.Contains(hsts, "includeSubDomains") {
		t.Errorf("HSTS = %q, want includeSubDomains", hsts)
	}
}

func TestSecurityHeaders_CSP(t *testing.T) {
	headers := serveWithHeaders(DefaultSecurityHeadersConfig(true))

	csp := headers.Get("Content-Security-Policy")
	for _, directive := range []string{
		"default-src 'self'",
		"img-src 'self' data: https:",
		"object-src 'none'",
		"form-action 'self'",
	} {
		if !strings.Contains(csp, directive) {
			t.Errorf("CSP missing %q in %q", directive, csp)
		}
	}
}

func TestSecurityHeaders_CustomPolicy(t *testing.T) {
	cfg := SecurityHeadersConfig{
		ContentSecurityPolicy: "default-src 'none'",
		FrameOptions:          "DENY",
	}
	headers := serveWithHeaders(cfg)

	if got := headers.Get("Content-Security-Policy"); got != "default-src 'none'" {
		t.Errorf("CSP = %q", got)
	}
	if got := headers.Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", got)
	}
}

func TestBuildCSP_DirectiveOrder(t *testing.T) {
	csp := buildCSP(map[string]string{
		"form-action": "'self'",
		"default-src": "'self'",
	})

	if csp != "default-src 'self'; form-action 'self'" {
		t.Errorf("buildCSP order = %q", csp)
	}
}
