package records

import "errors"

// Document wraps the raw JSON payload and its origin so decoders never need to
// know where the bytes came from.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("records: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("records: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source reports the origin of the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the underlying payload.
func (d Document) Raw() []byte {
	if len(d.raw) == 0 {
		return nil
	}
	return append([]byte(nil), d.raw...)
}
