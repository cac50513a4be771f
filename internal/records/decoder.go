package records

import (
	"encoding/json"
	"errors"
	"fmt"

	pkgrecords "github.com/goliatone/go-docgen/pkg/records"
)

// Decoder implements pkgrecords.Decoder with a strict two-phase decode: every
// record is checked for its required keys before it is unmarshalled into the
// typed struct, so a missing field fails here with a *DataError naming the
// category, record index, and field instead of surfacing mid-render.
type Decoder struct{}

var _ pkgrecords.Decoder = (*Decoder)(nil)

// NewDecoder constructs a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

var errMissing = errors.New("required field is missing")

// Decode converts a raw document into a validated RecordSet. A document
// without an "objects" key decodes to an empty set; unknown category tags are
// ignored.
func (d *Decoder) Decode(doc pkgrecords.Document) (pkgrecords.RecordSet, error) {
	raw := doc.Raw()
	if len(raw) == 0 {
		return pkgrecords.RecordSet{}, errors.New("records decoder: document is empty")
	}

	var envelope struct {
		Objects map[string]json.RawMessage `json:"objects"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return pkgrecords.RecordSet{}, &pkgrecords.DataError{Index: -1, Err: fmt.Errorf("record set is not a JSON object: %w", err)}
	}

	set := pkgrecords.RecordSet{Present: make(map[pkgrecords.Category]bool)}
	for _, category := range pkgrecords.Categories() {
		payload, ok := envelope.Objects[string(category)]
		if !ok {
			continue
		}
		set.Present[category] = true

		items, err := splitList(category, payload)
		if err != nil {
			return pkgrecords.RecordSet{}, err
		}

		switch category {
		case pkgrecords.CategoryTypeA:
			set.Devices, err = decodeDevices(items)
		case pkgrecords.CategoryTypeB:
			set.Components, err = decodeComponents(items)
		case pkgrecords.CategoryTypeC:
			set.Transactions, err = decodeTransactions(items)
		case pkgrecords.CategoryTypeD:
			set.TestRuns, err = decodeTestRuns(items)
		case pkgrecords.CategoryTypeE:
			set.Employees, err = decodeEmployees(items)
		}
		if err != nil {
			return pkgrecords.RecordSet{}, err
		}
	}

	return set, nil
}

func splitList(category pkgrecords.Category, payload json.RawMessage) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, &pkgrecords.DataError{
			Category: category,
			Index:    -1,
			Err:      fmt.Errorf("category value is not a list: %w", err),
		}
	}
	return items, nil
}

// requireKeys checks that each required key exists on the record before the
// typed unmarshal runs, so absence and shape errors are reported separately.
func requireKeys(category pkgrecords.Category, index int, item json.RawMessage, keys ...string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return nil, &pkgrecords.DataError{
			Category: category,
			Index:    index,
			Err:      fmt.Errorf("record is not a JSON object: %w", err),
		}
	}
	for _, key := range keys {
		if _, ok := fields[key]; !ok {
			return nil, &pkgrecords.DataError{Category: category, Index: index, Field: key, Err: errMissing}
		}
	}
	return fields, nil
}

func shapeError(category pkgrecords.Category, index int, err error) error {
	return &pkgrecords.DataError{Category: category, Index: index, Err: err}
}

func decodeDevices(items []json.RawMessage) ([]pkgrecords.Device, error) {
	out := make([]pkgrecords.Device, 0, len(items))
	for i, item := range items {
		fields, err := requireKeys(pkgrecords.CategoryTypeA, i, item, "id", "name", "description", "parameters")
		if err != nil {
			return nil, err
		}
		if _, err := requireKeys(pkgrecords.CategoryTypeA, i, fields["parameters"], "status", "priority", "last_updated"); err != nil {
			return nil, err
		}

		var device pkgrecords.Device
		if err := json.Unmarshal(item, &device); err != nil {
			return nil, shapeError(pkgrecords.CategoryTypeA, i, err)
		}
		out = append(out, device)
	}
	return out, nil
}

func decodeComponents(items []json.RawMessage) ([]pkgrecords.Component, error) {
	out := make([]pkgrecords.Component, 0, len(items))
	for i, item := range items {
		if _, err := requireKeys(pkgrecords.CategoryTypeB, i, item, "component_id", "installation_date", "specs"); err != nil {
			return nil, err
		}

		var component pkgrecords.Component
		if err := json.Unmarshal(item, &component); err != nil {
			return nil, shapeError(pkgrecords.CategoryTypeB, i, err)
		}
		if !component.Specs.Has("manufacturer") {
			return nil, &pkgrecords.DataError{
				Category: pkgrecords.CategoryTypeB,
				Index:    i,
				Field:    "specs.manufacturer",
				Err:      errMissing,
			}
		}
		out = append(out, component)
	}
	return out, nil
}

func decodeTransactions(items []json.RawMessage) ([]pkgrecords.Transaction, error) {
	out := make([]pkgrecords.Transaction, 0, len(items))
	for i, item := range items {
		if _, err := requireKeys(pkgrecords.CategoryTypeC, i, item, "transaction_id", "amount", "currency", "parties", "approved"); err != nil {
			return nil, err
		}

		var transaction pkgrecords.Transaction
		if err := json.Unmarshal(item, &transaction); err != nil {
			return nil, shapeError(pkgrecords.CategoryTypeC, i, err)
		}
		out = append(out, transaction)
	}
	return out, nil
}

func decodeTestRuns(items []json.RawMessage) ([]pkgrecords.TestRun, error) {
	out := make([]pkgrecords.TestRun, 0, len(items))
	for i, item := range items {
		if _, err := requireKeys(pkgrecords.CategoryTypeD, i, item, "test_id", "environment", "metrics"); err != nil {
			return nil, err
		}

		var run pkgrecords.TestRun
		if err := json.Unmarshal(item, &run); err != nil {
			return nil, shapeError(pkgrecords.CategoryTypeD, i, err)
		}
		out = append(out, run)
	}
	return out, nil
}

func decodeEmployees(items []json.RawMessage) ([]pkgrecords.Employee, error) {
	out := make([]pkgrecords.Employee, 0, len(items))
	for i, item := range items {
		if _, err := requireKeys(pkgrecords.CategoryTypeE, i, item, "employee_id", "department", "role", "projects"); err != nil {
			return nil, err
		}

		var employee pkgrecords.Employee
		if err := json.Unmarshal(item, &employee); err != nil {
			return nil, shapeError(pkgrecords.CategoryTypeE, i, err)
		}
		out = append(out, employee)
	}
	return out, nil
}
