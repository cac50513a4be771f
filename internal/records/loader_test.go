package records_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	internalrecords "github.com/goliatone/go-docgen/internal/records"
	"github.com/goliatone/go-docgen/pkg/records"
)

func TestLoaderReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.json")
	if err := os.WriteFile(path, []byte(`{"objects": {}}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := internalrecords.NewLoader(records.NewLoaderOptions())
	doc, err := loader.Load(context.Background(), records.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	if got := string(doc.Raw()); got != `{"objects": {}}` {
		t.Fatalf("raw payload = %q", got)
	}
}

func TestLoaderReadsFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"data/sample.json": &fstest.MapFile{Data: []byte(`{"objects": {}}`)},
	}

	loader := internalrecords.NewLoader(records.NewLoaderOptions(records.WithFileSystem(fsys)))
	doc, err := loader.Load(context.Background(), records.SourceFromFS("data/sample.json"))
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	if len(doc.Raw()) == 0 {
		t.Fatal("raw payload is empty")
	}
}

func TestLoaderErrors(t *testing.T) {
	loader := internalrecords.NewLoader(records.NewLoaderOptions())
	ctx := context.Background()

	if _, err := loader.Load(ctx, nil); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := loader.Load(ctx, records.SourceFromFile(filepath.Join(t.TempDir(), "missing.json"))); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := loader.Load(ctx, records.SourceFromFS("sample.json")); err == nil {
		t.Fatal("expected error when no filesystem is configured")
	}
}
