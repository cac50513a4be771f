// Package docx renders a report into a Word-native .docx container using the
// godocx authoring library. Document structure (headings, tables, styles) is
// delegated entirely to the library; this package only walks blocks.
package docx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gomutex/godocx"
	gdocx "github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/stypes"

	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/report"
)

// Name is the registry identifier for this renderer.
const Name = "docx"

const contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// defaultTableStyle is the grid style every table uses unless the request
// overrides it.
const defaultTableStyle = "TableGrid"

// Renderer implements render.Renderer for the .docx format.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the docx renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the registry identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType returns the MIME type of the rendered artifact.
func (r *Renderer) ContentType() string {
	return contentType
}

// Render walks the report blocks in order and serialises the assembled
// document into a byte slice.
func (r *Renderer) Render(ctx context.Context, rep report.Report, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("docx: new document: %w", err)
	}

	style := options.TableStyle
	if style == "" {
		style = defaultTableStyle
	}

	for _, block := range rep.Blocks {
		switch b := block.(type) {
		case report.Heading:
			writeHeading(doc, b)
		case report.Paragraph:
			writeParagraph(doc, b)
		case report.Table:
			if err := writeTable(doc, b, style); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("docx: unsupported block type %T", block)
		}
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("docx: serialise document: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeading(doc *gdocx.RootDoc, h report.Heading) {
	para := doc.AddParagraph(h.Text)
	// Style IDs in the bundled styles.xml carry no space: Heading1, Heading2.
	para.Style(fmt.Sprintf("Heading%d", h.Level))
	if h.Centered {
		para.Justification(stypes.JustificationCenter)
	}
}

func writeParagraph(doc *gdocx.RootDoc, p report.Paragraph) {
	para := doc.AddParagraph("")
	for _, run := range p.Runs {
		text := para.AddText(run.Text)
		if run.Bold {
			text.Bold(true)
		}
	}
}

func writeTable(doc *gdocx.RootDoc, t report.Table, style string) error {
	if t.Title != "" {
		doc.AddParagraph("").AddText(t.Title).Bold(true)
	}

	table := doc.AddTable()
	table.Style(style)

	header := table.AddRow()
	for _, name := range t.Headers {
		header.AddCell().AddParagraph("").AddText(name).Bold(true)
	}

	// Cells map positionally onto the header row: short rows pad with empty
	// cells, long rows are rejected.
	for i, row := range t.Rows {
		if len(row) > len(t.Headers) {
			return fmt.Errorf("docx: table %q row %d has %d cells, header has %d", t.Title, i, len(row), len(t.Headers))
		}
		cells := table.AddRow()
		for j := range t.Headers {
			value := ""
			if j < len(row) {
				value = row[j]
			}
			cells.AddCell().AddParagraph(value)
		}
	}

	return nil
}
