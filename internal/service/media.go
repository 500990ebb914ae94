// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/bmbuzz/bmbuzz/internal/imaging"
	"github.com/bmbuzz/bmbuzz/internal/storage"
)

// MaxUploadSize caps news photo uploads at 20MB.
const MaxUploadSize = 20 * 1024 * 1024

// AllowedMimeTypes defines the MIME types that can be uploaded as news images.
var AllowedMimeTypes = map[string]bool{
	imaging.MimeTypeJPEG: true,
	imaging.MimeTypePNG:  true,
	imaging.MimeTypeGIF:  true,
	imaging.MimeTypeWebP: true,
}

// MediaService processes and stores uploaded news images.
type MediaService struct {
	store storage.ObjectStore
}

// NewMediaService creates a media service backed by the given object store.
func NewMediaService(store storage.ObjectStore) *MediaService {
	return &MediaService{store: store}
}

// Upload validates, processes and stores an uploaded image file, returning
// the public URL of the stored object.
func (s *MediaService) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > MaxUploadSize {
		return "", fmt.Errorf("file size exceeds maximum allowed (%d bytes)", MaxUploadSize)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mimeTypeFromExtension(header.Filename)
	}
	if !AllowedMimeTypes[mimeType] {
		return "", fmt.Errorf("file type %s is not allowed", mimeType)
	}

	processed, err := imaging.Process(file)
	if err != nil {
		return "", fmt.Errorf("processing image: %w", err)
	}

	name := storage.UniqueName(header.Filename)
	url, err := s.store.Put(ctx, name, bytes.NewReader(processed.Data), processed.MimeType)
	if err != nil {
		return "", fmt.Errorf("storing image: %w", err)
	}

	return url, nil
}

// mimeTypeFromExtension guesses a MIME type from the filename extension.
func mimeTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return imaging.MimeTypeJPEG
	case ".png":
		return imaging.MimeTypePNG
	case ".gif":
		return imaging.MimeTypeGIF
	case ".webp":
		return imaging.MimeTypeWebP
	default:
		return ""
	}
}
