package records

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	pkgrecords "github.com/goliatone/go-docgen/pkg/records"
)

// Loader implements pkgrecords.Loader by delegating to file or fs.FS
// strategies. Construction helpers live in the top-level docgen package.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ pkgrecords.Loader = (*Loader)(nil)

// NewLoader constructs a Loader from pre-resolved options.
func NewLoader(options pkgrecords.LoaderOptions) *Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches a record set document from the provided source.
func (l *Loader) Load(ctx context.Context, src pkgrecords.Source) (pkgrecords.Document, error) {
	if src == nil {
		return pkgrecords.Document{}, errors.New("records loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgrecords.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgrecords.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = errors.New("records loader: unsupported source kind")
	}
	if err != nil {
		return pkgrecords.Document{}, err
	}

	return pkgrecords.NewDocument(src, data)
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("records loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func loadFromFS(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("records loader: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("records loader: fs path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(filesystem, name)
	if err != nil {
		return nil, err
	}
	return data, nil
}
