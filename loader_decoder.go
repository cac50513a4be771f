package docgen

import (
	internalrecords "github.com/goliatone/go-docgen/internal/records"
	pkgrecords "github.com/goliatone/go-docgen/pkg/records"
)

// NewLoader constructs a record set loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgrecords.LoaderOption) pkgrecords.Loader {
	cfg := pkgrecords.NewLoaderOptions(options...)
	return internalrecords.NewLoader(cfg)
}

// NewDecoder constructs a decoder backed by the internal implementation.
func NewDecoder() pkgrecords.Decoder {
	return internalrecords.NewDecoder()
}
