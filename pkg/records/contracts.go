package records

import (
	"context"
	"io/fs"
)

// Loader fetches record set documents from a source (file path or fs.FS).
// Implementations live under internal/records but satisfy this contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// Decoder converts a raw document into a validated, typed RecordSet. Every
// required field is checked during decoding so rendering never encounters an
// invalid record; failures surface as *DataError.
type Decoder interface {
	Decode(doc Document) (RecordSet, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem; SourceKindFS
	// sources require it.
	FileSystem fs.FS
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for fs-backed sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
