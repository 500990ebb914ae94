// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler_test

import (
	"bytes"
	"context"
	"database/sql"
	"image"
	"image/png"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/bmbuzz/bmbuzz/internal/handler"
	"github.com/bmbuzz/bmbuzz/internal/i18n"
	"github.com/bmbuzz/bmbuzz/internal/middleware"
	"github.com/bmbuzz/bmbuzz/internal/news"
	"github.com/bmbuzz/bmbuzz/internal/render"
	"github.com/bmbuzz/bmbuzz/internal/service"
	"github.com/bmbuzz/bmbuzz/internal/session"
	"github.com/bmbuzz/bmbuzz/internal/testutil"
	"github.com/bmbuzz/bmbuzz/web"
)

const testPassword = "test-password"

// recordingStore is an ObjectStore fake that keeps every stored object
// name so tests can assert whether storage was touched.
type recordingStore struct {
	mu   sync.Mutex
	puts []string
}

func (s *recordingStore) Put(_ context.Context, objectPath string, r io.Reader, _ string) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts = append(s.puts, objectPath)
	return "/uploads/" + objectPath, nil
}

func (s *recordingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.puts)
}

// testApp bundles the wired application pieces a handler test needs.
type testApp struct {
	server  *httptest.Server
	client  *http.Client
	db      *sql.DB
	objects *recordingStore
}

// newTestApp builds a full router the way main does, minus CSRF (tests
// drive plain HTTP requests without fetch metadata headers).
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	if err := i18n.Init(testutil.TestLogger()); err != nil {
		t.Fatalf("i18n.Init: %v", err)
	}

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	sessionManager := session.New(db, true)

	objects := &recordingStore{}
	mediaService := service.NewMediaService(objects)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("templates fs: %v", err)
	}

	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          true,
	})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	newsService := news.NewService(db)
	frontendHandler := handler.NewFrontendHandler(newsService, renderer, sessionManager)
	authHandler := handler.NewAuthHandler(renderer, sessionManager, testPassword)
	adminHandler := handler.NewAdminHandler(db, renderer, sessionManager, mediaService)

	r := chi.NewRouter()
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.Language())

	r.Get(handler.RouteRoot, frontendHandler.Home)
	r.Get(handler.RouteCategorySlug, frontendHandler.Category)
	r.Get(handler.RoutePostID, frontendHandler.Post)
	r.Get(handler.RouteAbout, frontendHandler.About)

	r.Get(handler.RouteAdmin, authHandler.LoginForm)
	r.Post(handler.RouteAdminLogin, authHandler.Login)
	r.Post(handler.RouteAdminLogout, authHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(sessionManager))
		r.Get(handler.RouteAdminDashboard, adminHandler.Dashboard)
		r.Get(handler.RouteAdminNew, adminHandler.NewForm)
		r.Post(handler.RouteAdminPosts, adminHandler.Create)
		r.Get(handler.RouteAdminPostID, adminHandler.EditForm)
		r.Post(handler.RouteAdminPostID, adminHandler.Update)
		r.Post(handler.RouteAdminPostDelete, adminHandler.Delete)
		r.Post(handler.RouteAdminEditorWrap, adminHandler.EditorWrap)
	})

	r.NotFound(frontendHandler.NotFound)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}

	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testApp{server: server, client: client, db: db, objects: objects}
}

// login authenticates the client's session against the admin gate.
func (app *testApp) login(t *testing.T) {
	t.Helper()

	resp, err := app.client.PostForm(app.server.URL+handler.RouteAdminLogin, url.Values{
		"password": {testPassword},
	})
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if loc := resp.Header.Get("Location"); loc != handler.RouteAdminDashboard {
		t.Fatalf("login redirect = %q, want %q", loc, handler.RouteAdminDashboard)
	}
}

// get performs a GET and returns the response with its body read.
func (app *testApp) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()

	resp, err := app.client.Get(app.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp, string(body)
}

// containsAll reports whether body contains every given substring.
func containsAll(body string, subs ...string) bool {
	for _, s := range subs {
		if !strings.Contains(body, s) {
			return false
		}
	}
	return true
}

// pngBytes returns a minimal encoded PNG for upload tests.
func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

// multipartBody builds a multipart form with the given fields and an
// optional image file.
func multipartBody(t *testing.T, fields map[string]string, imageName string, imageData []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("writing field %s: %v", k, err)
		}
	}

	if imageName != "" {
		fw, err := w.CreateFormFile("image", imageName)
		if err != nil {
			t.Fatalf("creating form file: %v", err)
		}
		if _, err := fw.Write(imageData); err != nil {
			t.Fatalf("writing image data: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}
