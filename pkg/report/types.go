package report

// Block is an atomic unit of report content. Blocks are appended in order and
// never mutated afterwards; renderers walk the sequence front to back.
type Block interface {
	isBlock()
}

// Heading is a section title. Centered is always true for category sections
// but kept explicit so renderers stay policy-free.
type Heading struct {
	Text     string
	Level    int
	Centered bool
}

func (Heading) isBlock() {}

// Run is a span of paragraph text with uniform styling.
type Run struct {
	Text string
	Bold bool
}

// Paragraph is a sequence of runs. An empty paragraph acts as vertical
// spacing between blocks.
type Paragraph struct {
	Runs []Run
}

func (Paragraph) isBlock() {}

// Spacer returns the empty paragraph used between sections and tables.
func Spacer() Paragraph {
	return Paragraph{}
}

// Table holds an optional bold title (rendered as a paragraph above the
// table), a header row, and zero or more data rows of cell strings.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func (Table) isBlock() {}

// Report is the ordered block sequence a renderer consumes.
type Report struct {
	Blocks []Block
}

// Tables returns the table blocks in document order. Handy for tests and for
// renderers that only care about tabular content.
func (r Report) Tables() []Table {
	var out []Table
	for _, block := range r.Blocks {
		if table, ok := block.(Table); ok {
			out = append(out, table)
		}
	}
	return out
}

func (r *Report) append(blocks ...Block) {
	r.Blocks = append(r.Blocks, blocks...)
}
