// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/bmbuzz/bmbuzz/internal/editor"
	"github.com/bmbuzz/bmbuzz/internal/middleware"
	"github.com/bmbuzz/bmbuzz/internal/model"
	"github.com/bmbuzz/bmbuzz/internal/render"
	"github.com/bmbuzz/bmbuzz/internal/service"
	"github.com/bmbuzz/bmbuzz/internal/store"
)

// AdminHandler handles the editorial panel: post listing, creation,
// editing and deletion.
type AdminHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	media          *service.MediaService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, media *service.MediaService) *AdminHandler {
	return &AdminHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		media:          media,
	}
}

// dashboardData holds the data for the admin dashboard template.
type dashboardData struct {
	Rows       []store.News
	Count      int64
	ByCategory []store.CategoryCount
}

// postFormData holds the data for the post create/edit form template.
// On validation errors the entered values are carried back so the admin
// does not lose their work.
type postFormData struct {
	ID         int64
	Title      string
	Category   string
	Content    string
	ImageURL   string
	Featured   bool
	IsNew      bool
	Categories []string
}

// Dashboard renders the post management overview.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	rows, err := h.queries.ListNews(r.Context())
	if err != nil {
		logAndInternalError(w, r, "failed to list news", "error", err, "category", model.EventCategoryNews)
		return
	}

	count, err := h.queries.CountNews(r.Context())
	if err != nil {
		logAndInternalError(w, r, "failed to count news", "error", err, "category", model.EventCategoryNews)
		return
	}

	byCategory, err := h.queries.CountNewsByCategory(r.Context())
	if err != nil {
		logAndInternalError(w, r, "failed to count news by category", "error", err, "category", model.EventCategoryNews)
		return
	}

	err = h.renderer.Render(w, r, "admin/dashboard", render.TemplateData{
		Title:   "Dashboard",
		Lang:    middleware.GetLanguage(r),
		IsAdmin: true,
		Data:    dashboardData{Rows: rows, Count: count, ByCategory: byCategory},
	})
	if err != nil {
		logAndInternalError(w, r, "failed to render dashboard", "error", err)
	}
}

// NewForm renders an empty post form.
func (h *AdminHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, postFormData{
		Category:   model.DefaultCategory,
		IsNew:      true,
		Categories: model.Categories(),
	}, "")
}

// Create handles the new post form submission. An image upload is
// required: the request is rejected before any database or storage
// write when it is missing.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		flashError(w, r, h.renderer, RouteAdminNew, "Invalid form data")
		return
	}

	form := postFormData{
		Title:      strings.TrimSpace(r.FormValue("title")),
		Category:   r.FormValue("category"),
		Content:    strings.TrimSpace(r.FormValue("content")),
		Featured:   r.FormValue("featured") == "on",
		IsNew:      true,
		Categories: model.Categories(),
	}

	if msg, ok := validatePostForm(form); !ok {
		h.renderForm(w, r, form, msg)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.renderForm(w, r, form, "A photo is required for new stories.")
		return
	}
	defer file.Close()

	imageURL, err := h.media.Upload(r.Context(), file, header)
	if err != nil {
		slog.WarnContext(r.Context(), "image upload rejected", "error", err, "category", model.EventCategoryMedia)
		h.renderForm(w, r, form, "Could not process the image: "+err.Error())
		return
	}

	now := time.Now()
	row, err := h.queries.CreateNews(r.Context(), store.CreateNewsParams{
		Title:     form.Title,
		Category:  form.Category,
		ImageURL:  imageURL,
		Content:   form.Content,
		Featured:  form.Featured,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logAndInternalError(w, r, "failed to create news", "error", err, "category", model.EventCategoryNews)
		return
	}

	slog.InfoContext(r.Context(), "news created", "id", row.ID, "title", row.Title, "category", model.EventCategoryNews)
	flashSuccess(w, r, h.renderer, RouteAdminDashboard, "Story published.")
}

// EditForm renders the post form pre-filled with an existing row.
func (h *AdminHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	row, ok := h.requireNews(w, r)
	if !ok {
		return
	}

	h.renderForm(w, r, postFormData{
		ID:         row.ID,
		Title:      row.Title,
		Category:   row.Category,
		Content:    row.Content,
		ImageURL:   row.ImageURL,
		Featured:   row.Featured,
		Categories: model.Categories(),
	}, "")
}

// Update handles the edit form submission. The image upload is optional:
// when no new file is provided the stored image URL is kept, so saving
// an untouched form leaves the row equivalent.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	row, ok := h.requireNews(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		flashError(w, r, h.renderer, RouteAdminDashboard, "Invalid form data")
		return
	}

	form := postFormData{
		ID:         row.ID,
		Title:      strings.TrimSpace(r.FormValue("title")),
		Category:   r.FormValue("category"),
		Content:    strings.TrimSpace(r.FormValue("content")),
		ImageURL:   row.ImageURL,
		Featured:   r.FormValue("featured") == "on",
		Categories: model.Categories(),
	}

	if msg, ok := validatePostForm(form); !ok {
		h.renderForm(w, r, form, msg)
		return
	}

	imageURL := row.ImageURL
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		imageURL, err = h.media.Upload(r.Context(), file, header)
		if err != nil {
			slog.WarnContext(r.Context(), "image upload rejected", "error", err, "category", model.EventCategoryMedia)
			h.renderForm(w, r, form, "Could not process the image: "+err.Error())
			return
		}
	}

	updated, err := h.queries.UpdateNews(r.Context(), store.UpdateNewsParams{
		Title:     form.Title,
		Category:  form.Category,
		ImageURL:  imageURL,
		Content:   form.Content,
		Featured:  form.Featured,
		UpdatedAt: time.Now(),
		ID:        row.ID,
	})
	if err != nil {
		logAndInternalError(w, r, "failed to update news", "error", err, "category", model.EventCategoryNews)
		return
	}

	slog.InfoContext(r.Context(), "news updated", "id", updated.ID, "category", model.EventCategoryNews)
	flashSuccess(w, r, h.renderer, RouteAdminDashboard, "Story updated.")
}

// validatePostForm checks the trimmed form fields shared by create and
// update. It returns the flash message for the first failure.
func validatePostForm(form postFormData) (string, bool) {
	if form.Title == "" {
		return "A title is required.", false
	}
	if form.Content == "" {
		return "The story body cannot be empty.", false
	}
	if !model.IsValidCategory(form.Category) {
		return "Please choose a valid category.", false
	}
	return "", true
}

// Delete removes a post.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	row, ok := h.requireNews(w, r)
	if !ok {
		return
	}

	if err := h.queries.DeleteNews(r.Context(), row.ID); err != nil {
		logAndInternalError(w, r, "failed to delete news", "error", err, "category", model.EventCategoryNews)
		return
	}

	slog.InfoContext(r.Context(), "news deleted", "id", row.ID, "title", row.Title, "category", model.EventCategoryNews)
	flashSuccess(w, r, h.renderer, RouteAdminDashboard, "Story deleted.")
}

// wrapRequest is the JSON payload for the rich-text wrap endpoint.
type wrapRequest struct {
	Action  string `json:"action"`
	Content string `json:"content"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	URL     string `json:"url"`
}

// EditorWrap applies a formatting action to the selected range of the
// post body and returns the new content plus cursor position.
func (h *AdminHandler) EditorWrap(w http.ResponseWriter, r *http.Request) {
	var req wrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := editor.Wrap(editor.Action(req.Action), req.Content, req.Start, req.End, req.URL)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// requireNews loads the news row named by the {id} route parameter.
// On failure it redirects to the dashboard with a flash message and
// returns false.
func (h *AdminHandler) requireNews(w http.ResponseWriter, r *http.Request) (store.News, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		flashError(w, r, h.renderer, RouteAdminDashboard, "Invalid post ID")
		return store.News{}, false
	}

	row, err := h.queries.GetNewsByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			flashError(w, r, h.renderer, RouteAdminDashboard, "Post not found")
		} else {
			logAndInternalError(w, r, "failed to load news", "error", err, "id", id)
		}
		return store.News{}, false
	}

	return row, true
}

// renderForm renders the post form, optionally with an inline error and
// the previously entered values.
func (h *AdminHandler) renderForm(w http.ResponseWriter, r *http.Request, form postFormData, errMsg string) {
	title := "Edit Story"
	if form.IsNew {
		title = "New Story"
	}

	data := render.TemplateData{
		Title:   title,
		Lang:    middleware.GetLanguage(r),
		IsAdmin: true,
		Data:    form,
	}
	if errMsg != "" {
		data.Flash = errMsg
		data.FlashType = "error"
	}

	if err := h.renderer.Render(w, r, "admin/form", data); err != nil {
		logAndInternalError(w, r, "failed to render post form", "error", err)
	}
}
