// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

// Package storage provides the object store the news images bucket lives in.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ObjectStore is the bucket contract: store a blob under a unique path and
// get back a publicly fetchable URL. Superseded objects are never deleted.
type ObjectStore interface {
	Put(ctx context.Context, objectPath string, r io.Reader, contentType string) (string, error)
}

// UniqueName builds a collision-avoiding object name from an original
// filename, preserving its extension.
func UniqueName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%s-%d%s", uuid.New().String(), time.Now().Unix(), ext)
}

// Local is an ObjectStore backed by a directory served under /uploads/.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal creates a Local store rooted at dir. baseURL is the public URL
// prefix (empty for relative URLs).
func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}
	return &Local{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Dir returns the directory the store writes into.
func (l *Local) Dir() string {
	return l.dir
}

// Put writes the object and returns its public URL.
func (l *Local) Put(_ context.Context, objectPath string, r io.Reader, _ string) (string, error) {
	name := path.Base(path.Clean("/" + objectPath))
	if name == "/" || name == "." || name == "" {
		return "", fmt.Errorf("invalid object path %q", objectPath)
	}

	dst := filepath.Join(l.dir, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("creating object file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("writing object file: %w", err)
	}

	return l.baseURL + "/uploads/" + name, nil
}
