// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUniqueName(t *testing.T) {
	a := UniqueName("Photo.JPG")
	b := UniqueName("Photo.JPG")

	if a == b {
		t.Error("two generated names collided")
	}
	if !strings.HasSuffix(a, ".jpg") {
		t.Errorf("name = %q, want lowercased .jpg extension", a)
	}
}

func TestLocal_Put(t *testing.T) {
	dir := t.TempDir()

	store, err := NewLocal(dir, "")
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	url, err := store.Put(context.Background(), "img.png", strings.NewReader("data"), "image/png")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	if url != "/uploads/img.png" {
		t.Errorf("url = %q, want %q", url, "/uploads/img.png")
	}

	data, err := os.ReadFile(filepath.Join(dir, "img.png"))
	if err != nil {
		t.Fatalf("reading stored object: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("stored content = %q, want %q", data, "data")
	}
}

func TestLocal_PutWithBaseURL(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "https://bmbuzz.example.com/")
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	url, err := store.Put(context.Background(), "a.jpg", strings.NewReader("x"), "image/jpeg")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if url != "https://bmbuzz.example.com/uploads/a.jpg" {
		t.Errorf("url = %q, want absolute base URL prefix", url)
	}
}

func TestLocal_PutStripsPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "")
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	url, err := store.Put(context.Background(), "../../etc/evil.png", strings.NewReader("x"), "image/png")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if url != "/uploads/evil.png" {
		t.Errorf("url = %q, traversal path not flattened", url)
	}
	if _, err := os.Stat(filepath.Join(dir, "evil.png")); err != nil {
		t.Errorf("object not written inside store dir: %v", err)
	}
}

func TestNewLocal_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	if _, err := NewLocal(dir, ""); err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("uploads dir not created: %v", err)
	}
}
