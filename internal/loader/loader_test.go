package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestRead_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	if err := os.WriteFile(path, []byte(`{"runnables":[]}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	data, err := Read(context.Background(), FileSource(path))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `{"runnables":[]}` {
		t.Fatalf("unexpected payload %q", data)
	}
}

func TestRead_FS(t *testing.T) {
	fsys := fstest.MapFS{"forms/schema.yaml": {Data: []byte("runnables: []\n")}}
	src := FSSource(fsys, "forms/schema.yaml")
	if src.Kind() != KindFS {
		t.Fatalf("unexpected kind %q", src.Kind())
	}
	data, err := Read(context.Background(), src)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "runnables: []\n" {
		t.Fatalf("unexpected payload %q", data)
	}
}

func TestRead_Errors(t *testing.T) {
	if _, err := Read(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
	if _, err := Read(context.Background(), FileSource("")); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := Read(context.Background(), FSSource(nil, "x.json")); err == nil {
		t.Fatalf("expected error for nil fs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Read(ctx, FileSource("schema.json")); err == nil {
		t.Fatalf("expected context error")
	}
}
