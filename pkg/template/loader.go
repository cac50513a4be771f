package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-docgen/pkg/records"
)

// yamlKeys maps category tags to their YAML entry names.
var yamlKeys = map[records.Category]string{
	records.CategoryTypeA: "type_a",
	records.CategoryTypeB: "type_b",
	records.CategoryTypeC: "type_c",
	records.CategoryTypeD: "type_d",
	records.CategoryTypeE: "type_e",
}

type categoryFile struct {
	Title         string   `yaml:"title"`
	Table1Headers []string `yaml:"table1_headers"`
	Table1Title   string   `yaml:"table1_title"`
	Table2Headers []string `yaml:"table2_headers"`
	Table2Title   string   `yaml:"table2_title"`
	Table3Headers []string `yaml:"table3_headers"`
	Table3Title   string   `yaml:"table3_title"`
}

// LoadFile reads and validates a template configuration from disk.
func LoadFile(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &ConfigError{Err: errors.New("file path is required")}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Source: path, Err: err}
	}
	return parse(data, path)
}

// LoadFS reads and validates a template configuration from an fs.FS.
func LoadFS(fsys fs.FS, name string) (*Store, error) {
	if fsys == nil {
		return nil, &ConfigError{Source: name, Err: errors.New("filesystem is not configured")}
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &ConfigError{Source: name, Err: err}
	}
	return parse(data, name)
}

// Parse validates a raw YAML payload and returns the immutable store.
func Parse(raw []byte) (*Store, error) {
	return parse(raw, "")
}

// MustParse panics when the payload does not validate. Used for the embedded
// defaults, where a bad payload is a programming error.
func MustParse(raw []byte) *Store {
	store, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return store
}

func parse(data []byte, source string) (*Store, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, &ConfigError{Source: source, Err: errors.New("configuration is empty")}
	}

	var doc map[string]categoryFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigError{Source: source, Err: fmt.Errorf("invalid YAML: %w", err)}
	}

	store := &Store{categories: make(map[records.Category]CategoryTemplate, len(yamlKeys))}
	for _, category := range records.Categories() {
		key := yamlKeys[category]
		raw, ok := doc[key]
		if !ok {
			return nil, &ConfigError{Source: source, Key: key, Err: errors.New("category entry is missing")}
		}
		entry, err := normaliseCategory(raw, key, source)
		if err != nil {
			return nil, err
		}
		store.categories[category] = entry
	}

	return store, nil
}

func normaliseCategory(raw categoryFile, key, source string) (CategoryTemplate, error) {
	if strings.TrimSpace(raw.Title) == "" {
		return CategoryTemplate{}, &ConfigError{Source: source, Key: key + ".title", Err: errors.New("section title is required")}
	}

	entry := CategoryTemplate{Title: raw.Title}
	tables := [TablesPerCategory]struct {
		name    string
		headers []string
		title   string
	}{
		{"table1_headers", raw.Table1Headers, raw.Table1Title},
		{"table2_headers", raw.Table2Headers, raw.Table2Title},
		{"table3_headers", raw.Table3Headers, raw.Table3Title},
	}

	for i, table := range tables {
		if len(table.headers) == 0 {
			return CategoryTemplate{}, &ConfigError{
				Source: source,
				Key:    key + "." + table.name,
				Err:    errors.New("header row is required"),
			}
		}
		entry.Tables[i] = TableTemplate{
			Title:   table.title,
			Headers: append([]string(nil), table.headers...),
		}
	}

	return entry, nil
}
