// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func testTemplatesFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": {Data: []byte(
			`{{define "base"}}<html lang="{{.Lang}}"><body>` +
				`{{if .Flash}}<div class="flash {{.FlashType}}">{{.Flash}}</div>{{end}}` +
				`{{template "nav" .}}{{template "content" .}}</body></html>{{end}}`)},
		"partials/nav.html": {Data: []byte(
			`{{define "nav"}}<nav>{{.Title}}</nav>{{end}}`)},
		"site/home.html": {Data: []byte(
			`{{define "content"}}<main>{{.Data}}</main>{{end}}`)},
		"admin/login.html": {Data: []byte(
			`{{define "content"}}<form>{{truncate .Data.Prompt 5}}</form>{{end}}`)},
	}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestNew_ParsesSiteAndAdminPages(t *testing.T) {
	r := newTestRenderer(t)

	for _, name := range []string{"site/home", "admin/login"} {
		if _, ok := r.templates[name]; !ok {
			t.Errorf("template %q not parsed", name)
		}
	}
}

func TestRender_ExecutesBaseLayout(t *testing.T) {
	r := newTestRenderer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	err := r.Render(rec, req, "site/home", TemplateData{
		Title: "BM Buzz",
		Lang:  "bn",
		Data:  "hello",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `<html lang="bn">`) {
		t.Errorf("missing lang attribute in %q", body)
	}
	if !strings.Contains(body, "<nav>BM Buzz</nav>") {
		t.Error("partial not rendered")
	}
	if !strings.Contains(body, "<main>hello</main>") {
		t.Error("page content not rendered")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r := newTestRenderer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	if err := r.Render(rec, req, "site/missing", TemplateData{}); err == nil {
		t.Error("Render should fail for an unknown template")
	}
}

func TestRender_InlineFlashSurvives(t *testing.T) {
	// No session manager configured, so the inline flash must pass through.
	r := newTestRenderer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	err := r.Render(rec, req, "site/home", TemplateData{
		Flash:     "A photo is required for new stories.",
		FlashType: "error",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `class="flash error"`) || !strings.Contains(body, "A photo is required") {
		t.Errorf("inline flash not rendered: %q", body)
	}
}

func TestTemplateFuncs(t *testing.T) {
	r := &Renderer{}
	funcs := r.templateFuncs()

	formatDate := funcs["formatDate"].(func(time.Time) string)
	if got := formatDate(time.Date(2025, 10, 24, 12, 0, 0, 0, time.UTC)); got != "Oct 24, 2025" {
		t.Errorf("formatDate = %q", got)
	}

	truncate := funcs["truncate"].(func(string, int) string)
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("a very long headline", 6); got != "a very..." {
		t.Errorf("truncate long = %q", got)
	}
	// Bengali text must not be cut mid-rune.
	if got := truncate("বাংলা সংবাদ", 5); strings.ContainsRune(got, '�') {
		t.Errorf("truncate produced invalid utf-8: %q", got)
	}

	add := funcs["add"].(func(int, int) int)
	if got := add(2, 3); got != 5 {
		t.Errorf("add = %d", got)
	}

	slugify := funcs["slugify"].(func(string) string)
	if got := slugify("Talent Showcase"); got != "talent-showcase" {
		t.Errorf("slugify = %q", got)
	}
}
