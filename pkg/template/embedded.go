package template

import (
	"embed"
	"io/fs"
)

//go:embed text_templates.yaml
var embeddedTemplates embed.FS

// DefaultFileName is the conventional template file name looked up in the
// working directory when no explicit path is configured.
const DefaultFileName = "text_templates.yaml"

var defaultStore = func() *Store {
	data, err := embeddedTemplates.ReadFile(DefaultFileName)
	if err != nil {
		panic(err)
	}
	return MustParse(data)
}()

// Default returns the store built from the embedded text_templates.yaml so
// callers can generate documents without shipping a configuration file.
func Default() *Store {
	return defaultStore
}

// EmbeddedFS exposes the built-in template configuration for callers that
// want to extend or re-parse it.
func EmbeddedFS() fs.FS {
	return embeddedTemplates
}
