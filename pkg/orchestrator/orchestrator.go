// Package orchestrator coordinates the full pipeline from JSON record set to
// rendered document artifact.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	internalrecords "github.com/goliatone/go-docgen/internal/records"
	"github.com/goliatone/go-docgen/pkg/records"
	"github.com/goliatone/go-docgen/pkg/render"
	"github.com/goliatone/go-docgen/pkg/renderers/docx"
	"github.com/goliatone/go-docgen/pkg/renderers/plaintext"
	"github.com/goliatone/go-docgen/pkg/report"
	"github.com/goliatone/go-docgen/pkg/template"
)

const defaultRendererName = docx.Name

// Option customises the generator configuration.
type Option func(*Generator)

// WithLoader injects a custom record set loader.
func WithLoader(loader records.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithDecoder injects a custom record decoder.
func WithDecoder(decoder records.Decoder) Option {
	return func(g *Generator) {
		g.decoder = decoder
	}
}

// WithTemplates supplies an already-loaded template store.
func WithTemplates(store *template.Store) Option {
	return func(g *Generator) {
		g.templates = store
	}
}

// WithTemplateFile loads the template store from a YAML file at construction
// time. Load failures surface from the first Generate call.
func WithTemplateFile(path string) Option {
	return func(g *Generator) {
		store, err := template.LoadFile(path)
		if err != nil {
			g.initialiseErr = err
			return
		}
		g.templates = store
	}
}

// WithBuilder injects a custom report builder.
func WithBuilder(builder *report.Builder) Option {
	return func(g *Generator) {
		g.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		g.defaultRenderer = name
	}
}

// WithLogger attaches a zap logger for pipeline debug events. The default is
// a nop logger, keeping runs silent.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator coordinates the loader → decoder → builder → renderer sequence.
// It applies sensible defaults (docx renderer, embedded templates) while
// remaining open to dependency injection for advanced callers.
type Generator struct {
	loader          records.Loader
	decoder         records.Decoder
	templates       *template.Store
	builder         *report.Builder
	registry        *render.Registry
	defaultRenderer string
	logger          *zap.Logger
	initialiseErr   error
	defaultsApplied bool
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultRenderer: defaultRendererName,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

// Request describes the inputs required to render a document from a record
// set.
type Request struct {
	// Source identifies where the record set document lives. Optional when
	// Document is supplied.
	Source records.Source

	// Document allows callers to bypass the loader when they already have a
	// raw payload.
	Document *records.Document

	// Renderer names the renderer to use. If empty, the generator falls back
	// to the configured default renderer.
	Renderer string

	// Options carries per-request rendering instructions. When omitted,
	// renderers receive the zero-value struct.
	Options render.Options
}

// Generate executes the loader → decoder → builder → renderer sequence and
// returns the rendered bytes (.docx for the default renderer).
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.initialiseErr; err != nil {
		return nil, err
	}
	if !g.defaultsApplied {
		g.applyDefaults()
	}

	doc, err := g.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	set, err := g.decoder.Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: decode records: %w", err)
	}
	g.logDecoded(set)

	rep, err := g.builder.Build(set, g.templates)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build report: %w", err)
	}
	g.logger.Debug("report built", zap.Int("blocks", len(rep.Blocks)))

	renderer, err := g.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, rep, req.Options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	g.logger.Debug("artifact rendered",
		zap.String("renderer", renderer.Name()),
		zap.Int("bytes", len(output)))

	return output, nil
}

// GenerateToFile renders the request and persists the artifact to path. The
// file is only written after a successful render, so a failed run leaves no
// partial artifact behind.
func (g *Generator) GenerateToFile(ctx context.Context, req Request, path string) error {
	if path == "" {
		return &PersistenceError{Err: errors.New("output path is required")}
	}

	output, err := g.Generate(ctx, req)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, output, 0o644); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}

func (g *Generator) resolveDocument(ctx context.Context, req Request) (records.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return records.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := g.loader.Load(ctx, req.Source)
	if err != nil {
		return records.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (g *Generator) rendererFor(name string) (render.Renderer, error) {
	if g.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = g.defaultRenderer
	}

	renderer, err := g.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (g *Generator) logDecoded(set records.RecordSet) {
	fields := make([]zap.Field, 0, len(set.Present))
	for _, category := range records.Categories() {
		if set.Has(category) {
			fields = append(fields, zap.Int(string(category), set.Len(category)))
		}
	}
	g.logger.Debug("records decoded", fields...)
}

func (g *Generator) applyDefaults() {
	if g.defaultsApplied {
		return
	}

	if g.loader == nil {
		g.loader = internalrecords.NewLoader(records.NewLoaderOptions())
	}
	if g.decoder == nil {
		g.decoder = internalrecords.NewDecoder()
	}
	if g.templates == nil {
		g.templates = template.Default()
	}
	if g.builder == nil {
		g.builder = report.NewBuilder()
	}
	if g.registry == nil {
		g.registry = render.NewRegistry()
		g.registry.MustRegister(docx.New())
		g.registry.MustRegister(plaintext.New())
	}
	if g.defaultRenderer == "" {
		g.defaultRenderer = defaultRendererName
	}

	g.defaultsApplied = true
}
