// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/bmbuzz/bmbuzz/internal/middleware"
	"github.com/bmbuzz/bmbuzz/internal/model"
	"github.com/bmbuzz/bmbuzz/internal/render"
)

// AuthHandler handles the shared-password admin gate. There are no user
// accounts: one password unlocks the editorial panel for the session.
type AuthHandler struct {
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	adminPassword  string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(renderer *render.Renderer, sm *scs.SessionManager, adminPassword string) *AuthHandler {
	return &AuthHandler{
		renderer:       renderer,
		sessionManager: sm,
		adminPassword:  adminPassword,
	}
}

// LoginForm renders the admin login page.
// Already-authenticated sessions go straight to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if middleware.IsAdmin(h.sessionManager, r) {
		http.Redirect(w, r, RouteAdminDashboard, http.StatusSeeOther)
		return
	}

	err := h.renderer.Render(w, r, "admin/login", render.TemplateData{
		Title: "Admin Access",
		Lang:  middleware.GetLanguage(r),
	})
	if err != nil {
		logAndInternalError(w, r, "failed to render login page", "error", err)
	}
}

// Login handles the login form submission. The password check is a
// constant-time comparison against the configured shared password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdmin) {
		return
	}

	password := r.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(password), []byte(h.adminPassword)) != 1 {
		slog.WarnContext(r.Context(), "admin login failed",
			"remote_addr", r.RemoteAddr,
			"category", model.EventCategoryAuth,
		)
		flashError(w, r, h.renderer, RouteAdmin, "Incorrect password. Try again.")
		return
	}

	// Renew the session token on privilege change.
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, r, "failed to renew session token", "error", err)
		return
	}
	h.sessionManager.Put(r.Context(), middleware.SessionKeyAdmin, true)

	slog.InfoContext(r.Context(), "admin login", "remote_addr", r.RemoteAddr, "category", model.EventCategoryAuth)
	http.Redirect(w, r, RouteAdminDashboard, http.StatusSeeOther)
}

// Logout destroys the admin session and returns to the public site.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		logAndInternalError(w, r, "failed to destroy session", "error", err)
		return
	}

	http.Redirect(w, r, RouteRoot, http.StatusSeeOther)
}
