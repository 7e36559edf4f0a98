package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}
	ctx := context.Background()
	imageID := uuid.New()

	path, err := store.Upload(ctx, imageID, "extintor corredor.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if strings.Contains(path, " ") {
		t.Errorf("storage path %q contains whitespace", path)
	}
	if !strings.HasPrefix(path, imageID.String()[:2]+"/") {
		t.Errorf("storage path %q missing the spread prefix", path)
	}

	reader, err := store.Download(ctx, path)
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("Download() = %q, want the uploaded bytes", data)
	}

	if err := store.Delete(ctx, path); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Download(ctx, path); err == nil {
		t.Error("Download() after delete succeeded, want an error")
	}
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	if err := store.Delete(context.Background(), "ab/missing.png"); err != nil {
		t.Errorf("Delete() of a missing file error = %v, want nil", err)
	}
}

func TestStoragePathFor_SanitizesFilename(t *testing.T) {
	imageID := uuid.New()

	path := storagePathFor(imageID, "../etc/pass wd.png")
	if strings.Contains(path, "..") {
		t.Errorf("path %q keeps traversal segments", path)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("path %q lost the extension", path)
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	if _, err := New(Config{Backend: "ftp"}); err == nil {
		t.Error("New() with an unknown backend error = nil, want error")
	}
}
