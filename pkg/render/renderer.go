package render

import (
	"context"

	"github.com/goliatone/go-docgen/pkg/report"
)

// Renderer converts a report into a byte representation (.docx container,
// plain text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, rep report.Report, options Options) ([]byte, error)
}

// Options carries per-request rendering instructions. The zero value selects
// each renderer's defaults.
type Options struct {
	// TableStyle overrides the document-format table style where the target
	// format supports named styles (the docx renderer defaults to a grid).
	TableStyle string
}
