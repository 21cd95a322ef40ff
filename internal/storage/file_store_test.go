package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	ctx := context.Background()

	got, err := store.Load(ctx, "user")
	if err != nil || got != nil {
		t.Fatalf("expected nil, nil for absent key, got %q, %v", got, err)
	}

	if err := store.Save(ctx, "user", []byte(`{"id":"u1"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "user.json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("temp file should be renamed away, stat err=%v", err)
	}

	got, err = store.Load(ctx, "user")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "{\"id\":\"u1\"}\n" {
		t.Fatalf("unexpected payload: %q", got)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got, _ := store.Load(ctx, "user"); got != nil {
		t.Fatalf("expected cleared key, got %q", got)
	}
}

func TestFileStoreRejectsPathKeysAndUseAfterClose(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if err := store.Save(context.Background(), "../escape", []byte(`1`)); err == nil {
		t.Fatalf("expected invalid key error")
	}

	_ = store.Close()
	if _, err := store.Load(context.Background(), "user"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestFileStoreUpdatedAt(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	ctx := context.Background()

	at, err := store.UpdatedAt(ctx, "notes")
	if err != nil || at != nil {
		t.Fatalf("expected nil, nil for absent key, got %v, %v", at, err)
	}
	if err := store.Save(ctx, "notes", []byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	at, err = store.UpdatedAt(ctx, "notes")
	if err != nil {
		t.Fatalf("updated at: %v", err)
	}
	if at == nil || at.IsZero() {
		t.Fatalf("expected a modification time, got %v", at)
	}
}
