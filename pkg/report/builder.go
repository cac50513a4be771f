package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-docgen/pkg/records"
	"github.com/goliatone/go-docgen/pkg/template"
)

// Builder maps a decoded record set onto the report block model, one titled
// section per category present in the input, in the fixed TypeA→TypeE order.
type Builder struct {
	titler cases.Caser
}

// NewBuilder constructs a Builder.
func NewBuilder() *Builder {
	return &Builder{titler: cases.Title(language.English)}
}

// Build renders every category present in the record set. Categories absent
// from the input are skipped silently; a category present with an empty list
// still renders its section with header-only tables.
func (b *Builder) Build(set records.RecordSet, store *template.Store) (Report, error) {
	if store == nil {
		return Report{}, fmt.Errorf("report: template store is required")
	}

	var rep Report
	for _, category := range records.Categories() {
		if !set.Has(category) {
			continue
		}
		entry, ok := store.Category(category)
		if !ok {
			return Report{}, fmt.Errorf("report: no template for category %q", category)
		}

		switch category {
		case records.CategoryTypeA:
			b.buildDevices(&rep, set.Devices, entry)
		case records.CategoryTypeB:
			b.buildComponents(&rep, set.Components, entry)
		case records.CategoryTypeC:
			b.buildTransactions(&rep, set.Transactions, entry)
		case records.CategoryTypeD:
			b.buildTestRuns(&rep, set.TestRuns, entry)
		case records.CategoryTypeE:
			b.buildEmployees(&rep, set.Employees, entry)
		}
	}

	return rep, nil
}

// buildDevices keeps the device inventory shape: Table 1 and Table 3
// aggregate across all records while Table 2 is emitted once per record.
func (b *Builder) buildDevices(rep *Report, devices []records.Device, entry template.CategoryTemplate) {
	addHeading(rep, entry.Title)

	rows := make([][]string, 0, len(devices))
	for _, device := range devices {
		rows = append(rows, []string{device.ID, device.Name, device.Description})
	}
	addTable(rep, entry.Tables[0], rows)

	// An empty inventory still shows the parameters table header.
	if len(devices) == 0 {
		addTable(rep, entry.Tables[1], nil)
	}
	for _, device := range devices {
		params := device.Parameters
		addTable(rep, entry.Tables[1], [][]string{{params.Status, params.Priority, params.LastUpdated}})
	}

	addTable(rep, entry.Tables[2], [][]string{{"Total Devices", strconv.Itoa(len(devices))}})
}

func (b *Builder) buildComponents(rep *Report, components []records.Component, entry template.CategoryTemplate) {
	addHeading(rep, entry.Title)

	for _, component := range components {
		addTable(rep, entry.Tables[0], [][]string{{component.ComponentID, component.InstallationDate}})

		rows := make([][]string, 0, len(component.Specs))
		for _, spec := range component.Specs {
			rows = append(rows, []string{spec.Key, formatCell(spec.Value)})
		}
		addTable(rep, entry.Tables[1], rows)

		manufacturer, _ := component.Specs.Get("manufacturer")
		addTable(rep, entry.Tables[2], [][]string{{"Manufacturer", formatCell(manufacturer)}})
	}
}

func (b *Builder) buildTransactions(rep *Report, transactions []records.Transaction, entry template.CategoryTemplate) {
	addHeading(rep, entry.Title)

	for _, transaction := range transactions {
		addTable(rep, entry.Tables[0], [][]string{{
			transaction.TransactionID,
			transaction.Amount.String(),
			transaction.Currency,
		}})

		rows := make([][]string, 0, len(transaction.Parties))
		for i, party := range transaction.Parties {
			rows = append(rows, []string{strconv.Itoa(i + 1), party})
		}
		addTable(rep, entry.Tables[1], rows)

		approved := "No"
		if transaction.Approved {
			approved = "Yes"
		}
		addTable(rep, entry.Tables[2], [][]string{{"Approved", approved}})
	}
}

func (b *Builder) buildTestRuns(rep *Report, runs []records.TestRun, entry template.CategoryTemplate) {
	addHeading(rep, entry.Title)

	for _, run := range runs {
		addTable(rep, entry.Tables[0], [][]string{{run.TestID, run.Environment}})

		rows := make([][]string, 0, len(run.Metrics))
		for _, metric := range run.Metrics {
			label := b.titler.String(strings.ReplaceAll(metric.Key, "_", " "))
			rows = append(rows, []string{label, formatCell(metric.Value)})
		}
		addTable(rep, entry.Tables[1], rows)

		addTable(rep, entry.Tables[2], [][]string{{"Environment Type", b.titler.String(run.Environment)}})
	}
}

func (b *Builder) buildEmployees(rep *Report, employees []records.Employee, entry template.CategoryTemplate) {
	addHeading(rep, entry.Title)

	for _, employee := range employees {
		addTable(rep, entry.Tables[0], [][]string{{employee.EmployeeID, employee.Department, employee.Role}})

		rows := make([][]string, 0, len(employee.Projects))
		for i, project := range employee.Projects {
			rows = append(rows, []string{strconv.Itoa(i + 1), project})
		}
		addTable(rep, entry.Tables[1], rows)

		addTable(rep, entry.Tables[2], [][]string{{"Total Projects", strconv.Itoa(len(employee.Projects))}})
	}
}

func addHeading(rep *Report, title string) {
	rep.append(Heading{Text: title, Level: 1, Centered: true}, Spacer())
}

func addTable(rep *Report, entry template.TableTemplate, rows [][]string) {
	rep.append(Table{
		Title:   entry.Title,
		Headers: append([]string(nil), entry.Headers...),
		Rows:    rows,
	}, Spacer())
}

// formatCell converts a scalar cell value to its rendered string. Numbers keep
// the text they carried in the source document.
func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
