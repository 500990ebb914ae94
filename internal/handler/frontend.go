// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/bmbuzz/bmbuzz/internal/i18n"
	"github.com/bmbuzz/bmbuzz/internal/middleware"
	"github.com/bmbuzz/bmbuzz/internal/model"
	"github.com/bmbuzz/bmbuzz/internal/news"
	"github.com/bmbuzz/bmbuzz/internal/render"
)

// FrontendHandler serves the public reader pages.
type FrontendHandler struct {
	newsService    *news.Service
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(ns *news.Service, renderer *render.Renderer, sm *scs.SessionManager) *FrontendHandler {
	return &FrontendHandler{
		newsService:    ns,
		renderer:       renderer,
		sessionManager: sm,
	}
}

// homeData holds the data for the homepage template.
type homeData struct {
	Featured    model.Post
	HasFeatured bool
	Latest      []model.Post
	Popular     []model.Post
	Recent      []model.Post
	Ticker      []string
	Categories  []string
}

// categoryData holds the data for the category listing template.
type categoryData struct {
	Category string
	Posts    []model.Post
	Popular  []model.Post
	Recent   []model.Post
}

// postData holds the data for the single post template.
type postData struct {
	Post    model.Post
	Popular []model.Post
	Recent  []model.Post
}

// Home renders the homepage: featured hero, latest grid, sidebar and
// breaking-news ticker.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLanguage(r)
	posts := h.newsService.Feed(r.Context())

	featured, hasFeatured := news.SelectFeatured(posts)
	latest := posts
	if hasFeatured {
		latest = news.ExcludeByID(posts, featured.ID)
	}

	data := homeData{
		Featured:    featured,
		HasFeatured: hasFeatured,
		Latest:      latest,
		Popular:     news.Popular(posts),
		Recent:      news.Recent(posts),
		Ticker:      i18n.TickerLines(lang),
		Categories:  model.Categories(),
	}

	err := h.renderer.Render(w, r, "site/home", render.TemplateData{
		Title:   "BM Buzz",
		Lang:    lang,
		IsAdmin: middleware.IsAdmin(h.sessionManager, r),
		Data:    data,
	})
	if err != nil {
		logAndInternalError(w, r, "failed to render homepage", "error", err)
	}
}

// Category renders the listing for one category. The slug in the URL is
// resolved back to the canonical category name; unknown slugs are a 404.
func (h *FrontendHandler) Category(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLanguage(r)

	category, ok := news.CategoryBySlug(chi.URLParam(r, "slug"))
	if !ok {
		h.notFound(w, r)
		return
	}

	posts := h.newsService.Feed(r.Context())

	data := categoryData{
		Category: category,
		Posts:    news.FilterByCategory(posts, category),
		Popular:  news.Popular(posts),
		Recent:   news.Recent(posts),
	}

	err := h.renderer.Render(w, r, "site/category", render.TemplateData{
		Title:   i18n.CategoryLabel(lang, category),
		Lang:    lang,
		IsAdmin: middleware.IsAdmin(h.sessionManager, r),
		Data:    data,
	})
	if err != nil {
		logAndInternalError(w, r, "failed to render category page", "error", err)
	}
}

// Post renders a single story page.
func (h *FrontendHandler) Post(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLanguage(r)
	posts := h.newsService.Feed(r.Context())

	post, ok := news.Lookup(posts, chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w, r)
		return
	}

	data := postData{
		Post:    post,
		Popular: news.Popular(news.ExcludeByID(posts, post.ID)),
		Recent:  news.Recent(news.ExcludeByID(posts, post.ID)),
	}

	err := h.renderer.Render(w, r, "site/post", render.TemplateData{
		Title:   post.Localized(lang).Title,
		Lang:    lang,
		IsAdmin: middleware.IsAdmin(h.sessionManager, r),
		Data:    data,
	})
	if err != nil {
		logAndInternalError(w, r, "failed to render post page", "error", err)
	}
}

// About renders the static about page.
func (h *FrontendHandler) About(w http.ResponseWriter, r *http.Request) {
	err := h.renderer.Render(w, r, "site/about", render.TemplateData{
		Title:   "About",
		Lang:    middleware.GetLanguage(r),
		IsAdmin: middleware.IsAdmin(h.sessionManager, r),
	})
	if err != nil {
		logAndInternalError(w, r, "failed to render about page", "error", err)
	}
}

// NotFound renders the friendly 404 page.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r)
}

func (h *FrontendHandler) notFound(w http.ResponseWriter, r *http.Request) {
	// Status must go out before the renderer writes the body.
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)

	err := h.renderer.Render(w, r, "site/notfound", render.TemplateData{
		Title: "Not Found",
		Lang:  middleware.GetLanguage(r),
	})
	if err != nil {
		logAndInternalError(w, r, "failed to render 404 page", "error", err)
	}
}
