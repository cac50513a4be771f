package records

import "fmt"

// DataError reports a record that failed validation during decoding: a
// required field is absent or holds the wrong shape. Index is the record's
// zero-based position within its category list, or -1 when the failure is not
// scoped to a single record.
type DataError struct {
	Category Category
	Index    int
	Field    string
	Err      error
}

func (e *DataError) Error() string {
	switch {
	case e.Category == "" && e.Field == "":
		return fmt.Sprintf("records: invalid record set: %v", e.Err)
	case e.Index < 0:
		return fmt.Sprintf("records: %s: field %q: %v", e.Category, e.Field, e.Err)
	default:
		return fmt.Sprintf("records: %s[%d]: field %q: %v", e.Category, e.Index, e.Field, e.Err)
	}
}

func (e *DataError) Unwrap() error {
	return e.Err
}
