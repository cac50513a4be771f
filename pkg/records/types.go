package records

import "encoding/json"

// Category tags one of the five fixed record types a record set can carry.
type Category string

const (
	CategoryTypeA Category = "TypeA"
	CategoryTypeB Category = "TypeB"
	CategoryTypeC Category = "TypeC"
	CategoryTypeD Category = "TypeD"
	CategoryTypeE Category = "TypeE"
)

// Categories returns the fixed iteration order report sections follow.
func Categories() []Category {
	return []Category{
		CategoryTypeA,
		CategoryTypeB,
		CategoryTypeC,
		CategoryTypeD,
		CategoryTypeE,
	}
}

// DeviceParameters holds the nested parameters object of a TypeA record.
type DeviceParameters struct {
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	LastUpdated string `json:"last_updated"`
}

// Device is a TypeA record: one entry of the device inventory.
type Device struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Parameters  DeviceParameters `json:"parameters"`
}

// Component is a TypeB record. Specs preserves the key order of the source
// JSON and must contain a "manufacturer" entry.
type Component struct {
	ComponentID      string   `json:"component_id"`
	InstallationDate string   `json:"installation_date"`
	Specs            FieldMap `json:"specs"`
}

// Transaction is a TypeC record. Amount keeps its source text so it renders
// exactly as written in the input.
type Transaction struct {
	TransactionID string      `json:"transaction_id"`
	Amount        json.Number `json:"amount"`
	Currency      string      `json:"currency"`
	Parties       []string    `json:"parties"`
	Approved      bool        `json:"approved"`
}

// TestRun is a TypeD record. Metrics preserves source key order.
type TestRun struct {
	TestID      string   `json:"test_id"`
	Environment string   `json:"environment"`
	Metrics     FieldMap `json:"metrics"`
}

// Employee is a TypeE record.
type Employee struct {
	EmployeeID string   `json:"employee_id"`
	Department string   `json:"department"`
	Role       string   `json:"role"`
	Projects   []string `json:"projects"`
}

// RecordSet holds the decoded, validated records grouped by category. Present
// distinguishes a category that appeared in the input with an empty list
// (section still renders) from one that was absent (section skipped).
type RecordSet struct {
	Devices      []Device
	Components   []Component
	Transactions []Transaction
	TestRuns     []TestRun
	Employees    []Employee

	Present map[Category]bool
}

// Has reports whether the category appeared in the input document.
func (s RecordSet) Has(category Category) bool {
	return s.Present[category]
}

// Len returns the number of records decoded for the category.
func (s RecordSet) Len(category Category) int {
	switch category {
	case CategoryTypeA:
		return len(s.Devices)
	case CategoryTypeB:
		return len(s.Components)
	case CategoryTypeC:
		return len(s.Transactions)
	case CategoryTypeD:
		return len(s.TestRuns)
	case CategoryTypeE:
		return len(s.Employees)
	default:
		return 0
	}
}
