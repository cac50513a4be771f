// Package docgen converts a categorised JSON record set into a formatted
// word-processing document: per category, a titled section with tables built
// from fixed field-extraction rules and YAML-configured headers.
package docgen

import (
	"context"

	"github.com/goliatone/go-docgen/pkg/orchestrator"
	"github.com/goliatone/go-docgen/pkg/records"
	"github.com/goliatone/go-docgen/pkg/render"
)

// Request describes the inputs required to render a document; alias exported
// via the root package for convenience.
type Request = orchestrator.Request

// Options carries per-request rendering instructions.
type Options = render.Options

// Source identifies where a record set document originated.
type Source = records.Source

// RecordSet holds decoded, validated records grouped by category.
type RecordSet = records.RecordSet

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return records.SourceFromFile(path)
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS
// configured on the loader.
func SourceFromFS(name string) Source {
	return records.SourceFromFS(name)
}

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...orchestrator.Option) *orchestrator.Generator {
	return orchestrator.New(options...)
}

// Generate loads the record set, builds the report, and renders it using the
// named renderer. It is the simplest entry point for callers that just want
// the artifact bytes.
func Generate(ctx context.Context, source Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateFile renders the record set with the default renderer and persists
// the artifact to outputPath.
func GenerateFile(ctx context.Context, source Source, outputPath string, options ...orchestrator.Option) error {
	gen := orchestrator.New(options...)
	return gen.GenerateToFile(ctx, orchestrator.Request{Source: source}, outputPath)
}

// WithTemplateFile loads the template store from a YAML file; re-exported so
// callers can configure Generate without importing the orchestrator package.
func WithTemplateFile(path string) orchestrator.Option {
	return orchestrator.WithTemplateFile(path)
}
