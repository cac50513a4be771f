// Package plaintext renders a report as stable, line-oriented text. It exists
// for piping to stdout and for asserting on report content in tests without
// unpacking a .docx container.
package plaintext

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/report"
)

// Name is the registry identifier for this renderer.
const Name = "plaintext"

// Renderer implements render.Renderer with pipe-delimited tables and
// underlined headings.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the plaintext renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the registry identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType returns the MIME type of the rendered artifact.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render walks the report blocks in order and emits one line per row.
func (r *Renderer) Render(ctx context.Context, rep report.Report, _ render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out strings.Builder
	for _, block := range rep.Blocks {
		switch b := block.(type) {
		case report.Heading:
			writeHeading(&out, b)
		case report.Paragraph:
			writeParagraph(&out, b)
		case report.Table:
			if err := writeTable(&out, b); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("plaintext: unsupported block type %T", block)
		}
	}
	return []byte(out.String()), nil
}

func writeHeading(out *strings.Builder, h report.Heading) {
	out.WriteString(h.Text)
	out.WriteByte('\n')
	out.WriteString(strings.Repeat("=", len(h.Text)))
	out.WriteByte('\n')
}

func writeParagraph(out *strings.Builder, p report.Paragraph) {
	for _, run := range p.Runs {
		out.WriteString(run.Text)
	}
	out.WriteByte('\n')
}

func writeTable(out *strings.Builder, t report.Table) error {
	if t.Title != "" {
		out.WriteString(t.Title)
		out.WriteByte('\n')
	}
	out.WriteString(strings.Join(t.Headers, " | "))
	out.WriteByte('\n')
	for i, row := range t.Rows {
		if len(row) > len(t.Headers) {
			return fmt.Errorf("plaintext: table %q row %d has %d cells, header has %d", t.Title, i, len(row), len(t.Headers))
		}
		cells := make([]string, len(t.Headers))
		copy(cells, row)
		out.WriteString(strings.Join(cells, " | "))
		out.WriteByte('\n')
	}
	return nil
}
