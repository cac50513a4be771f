package report_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docgen/pkg/records"
	"github.com/goliatone/go-docgen/pkg/report"
	"github.com/goliatone/go-docgen/pkg/template"
)

func present(categories ...records.Category) map[records.Category]bool {
	out := make(map[records.Category]bool, len(categories))
	for _, c := range categories {
		out[c] = true
	}
	return out
}

func build(t *testing.T, set records.RecordSet) report.Report {
	t.Helper()
	rep, err := report.NewBuilder().Build(set, template.Default())
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	return rep
}

func TestBuildTransactionSection(t *testing.T) {
	set := records.RecordSet{
		Transactions: []records.Transaction{{
			TransactionID: "T1",
			Amount:        json.Number("100"),
			Currency:      "USD",
			Parties:       []string{"Alice", "Bob"},
			Approved:      true,
		}},
		Present: present(records.CategoryTypeC),
	}

	tables := build(t, set).Tables()
	if len(tables) != 3 {
		t.Fatalf("rendered %d tables, want 3", len(tables))
	}

	wantRows := [][][]string{
		{{"T1", "100", "USD"}},
		{{"1", "Alice"}, {"2", "Bob"}},
		{{"Approved", "Yes"}},
	}
	for i, want := range wantRows {
		if diff := cmp.Diff(want, tables[i].Rows); diff != "" {
			t.Fatalf("table %d rows mismatch (-want +got):\n%s", i+1, diff)
		}
	}
}

func TestBuildUnapprovedTransaction(t *testing.T) {
	set := records.RecordSet{
		Transactions: []records.Transaction{{
			TransactionID: "T2",
			Amount:        json.Number("12.50"),
			Currency:      "EUR",
			Parties:       []string{"Carol"},
			Approved:      false,
		}},
		Present: present(records.CategoryTypeC),
	}

	tables := build(t, set).Tables()
	want := [][]string{{"Approved", "No"}}
	if diff := cmp.Diff(want, tables[2].Rows); diff != "" {
		t.Fatalf("status rows mismatch (-want +got):\n%s", diff)
	}
	if got := tables[0].Rows[0][1]; got != "12.50" {
		t.Fatalf("amount rendered as %q, want source text 12.50", got)
	}
}

// Device sections aggregate Table 1 and Table 3 across all records while
// Table 2 is emitted once per record.
func TestBuildDeviceSectionAggregation(t *testing.T) {
	set := records.RecordSet{
		Devices: []records.Device{
			{
				ID: "DEV-001", Name: "Gateway", Description: "Primary",
				Parameters: records.DeviceParameters{Status: "active", Priority: "high", LastUpdated: "2026-06-01"},
			},
			{
				ID: "DEV-002", Name: "Node", Description: "Secondary",
				Parameters: records.DeviceParameters{Status: "idle", Priority: "low", LastUpdated: "2026-05-18"},
			},
		},
		Present: present(records.CategoryTypeA),
	}

	tables := build(t, set).Tables()
	if len(tables) != 4 {
		t.Fatalf("rendered %d tables, want 4 (inventory, 2x parameters, total)", len(tables))
	}

	wantInventory := [][]string{
		{"DEV-001", "Gateway", "Primary"},
		{"DEV-002", "Node", "Secondary"},
	}
	if diff := cmp.Diff(wantInventory, tables[0].Rows); diff != "" {
		t.Fatalf("inventory rows mismatch (-want +got):\n%s", diff)
	}

	wantParams := [][][]string{
		{{"active", "high", "2026-06-01"}},
		{{"idle", "low", "2026-05-18"}},
	}
	for i, want := range wantParams {
		if diff := cmp.Diff(want, tables[1+i].Rows); diff != "" {
			t.Fatalf("parameters table %d mismatch (-want +got):\n%s", i+1, diff)
		}
	}

	wantTotal := [][]string{{"Total Devices", "2"}}
	if diff := cmp.Diff(wantTotal, tables[3].Rows); diff != "" {
		t.Fatalf("total rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEmptyDeviceList(t *testing.T) {
	set := records.RecordSet{Present: present(records.CategoryTypeA)}

	tables := build(t, set).Tables()
	if len(tables) != 3 {
		t.Fatalf("rendered %d tables, want 3", len(tables))
	}
	if len(tables[0].Rows) != 0 {
		t.Fatalf("inventory table has %d rows, want header only", len(tables[0].Rows))
	}
	if len(tables[1].Rows) != 0 {
		t.Fatalf("parameters table has %d rows, want header only", len(tables[1].Rows))
	}
	wantTotal := [][]string{{"Total Devices", "0"}}
	if diff := cmp.Diff(wantTotal, tables[2].Rows); diff != "" {
		t.Fatalf("total rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildComponentSpecsKeepOrder(t *testing.T) {
	set := records.RecordSet{
		Components: []records.Component{{
			ComponentID:      "CMP-100",
			InstallationDate: "2025-11-02",
			Specs: records.FieldMap{
				{Key: "voltage", Value: "24V"},
				{Key: "manufacturer", Value: "Acme"},
				{Key: "weight_kg", Value: json.Number("3.2")},
			},
		}},
		Present: present(records.CategoryTypeB),
	}

	tables := build(t, set).Tables()
	if len(tables) != 3 {
		t.Fatalf("rendered %d tables, want 3", len(tables))
	}

	wantSpecs := [][]string{
		{"voltage", "24V"},
		{"manufacturer", "Acme"},
		{"weight_kg", "3.2"},
	}
	if diff := cmp.Diff(wantSpecs, tables[1].Rows); diff != "" {
		t.Fatalf("specs rows mismatch (-want +got):\n%s", diff)
	}

	wantManufacturer := [][]string{{"Manufacturer", "Acme"}}
	if diff := cmp.Diff(wantManufacturer, tables[2].Rows); diff != "" {
		t.Fatalf("manufacturer rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTestRunTitleCasing(t *testing.T) {
	set := records.RecordSet{
		TestRuns: []records.TestRun{{
			TestID:      "TST-42",
			Environment: "staging",
			Metrics: records.FieldMap{
				{Key: "cpu_usage", Value: json.Number("71.5")},
				{Key: "error_rate", Value: json.Number("0.02")},
			},
		}},
		Present: present(records.CategoryTypeD),
	}

	tables := build(t, set).Tables()

	wantMetrics := [][]string{
		{"Cpu Usage", "71.5"},
		{"Error Rate", "0.02"},
	}
	if diff := cmp.Diff(wantMetrics, tables[1].Rows); diff != "" {
		t.Fatalf("metrics rows mismatch (-want +got):\n%s", diff)
	}

	wantEnvironment := [][]string{{"Environment Type", "Staging"}}
	if diff := cmp.Diff(wantEnvironment, tables[2].Rows); diff != "" {
		t.Fatalf("environment rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEmployeeSection(t *testing.T) {
	set := records.RecordSet{
		Employees: []records.Employee{{
			EmployeeID: "EMP-7",
			Department: "Platform",
			Role:       "SRE",
			Projects:   []string{"Gateway refresh", "Telemetry rollout"},
		}},
		Present: present(records.CategoryTypeE),
	}

	tables := build(t, set).Tables()

	wantProjects := [][]string{
		{"1", "Gateway refresh"},
		{"2", "Telemetry rollout"},
	}
	if diff := cmp.Diff(wantProjects, tables[1].Rows); diff != "" {
		t.Fatalf("projects rows mismatch (-want +got):\n%s", diff)
	}
	wantTotal := [][]string{{"Total Projects", "2"}}
	if diff := cmp.Diff(wantTotal, tables[2].Rows); diff != "" {
		t.Fatalf("total rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildAbsentCategoriesAreSilent(t *testing.T) {
	set := records.RecordSet{
		Employees: []records.Employee{{EmployeeID: "EMP-7", Department: "Platform", Role: "SRE"}},
		Present:   present(records.CategoryTypeE),
	}

	rep := build(t, set)

	heading, ok := rep.Blocks[0].(report.Heading)
	if !ok {
		t.Fatalf("first block is %T, want Heading", rep.Blocks[0])
	}
	if heading.Text != "Personnel" {
		t.Fatalf("first heading = %q, want Personnel", heading.Text)
	}

	headings := 0
	for _, block := range rep.Blocks {
		if _, ok := block.(report.Heading); ok {
			headings++
		}
	}
	if headings != 1 {
		t.Fatalf("rendered %d sections, want 1", headings)
	}
}

func TestBuildSectionOrderIsFixed(t *testing.T) {
	set := records.RecordSet{
		Devices:      []records.Device{},
		Transactions: []records.Transaction{},
		Employees:    []records.Employee{},
		Present:      present(records.CategoryTypeE, records.CategoryTypeA, records.CategoryTypeC),
	}

	rep := build(t, set)

	var titles []string
	for _, block := range rep.Blocks {
		if heading, ok := block.(report.Heading); ok {
			titles = append(titles, heading.Text)
		}
	}

	want := []string{"Device Inventory", "Transactions", "Personnel"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Fatalf("section order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildHeadingsAreCenteredLevelOne(t *testing.T) {
	set := records.RecordSet{Present: present(records.CategoryTypeA)}

	rep := build(t, set)
	heading := rep.Blocks[0].(report.Heading)
	if heading.Level != 1 || !heading.Centered {
		t.Fatalf("heading = %+v, want centered level 1", heading)
	}
	if spacer, ok := rep.Blocks[1].(report.Paragraph); !ok || len(spacer.Runs) != 0 {
		t.Fatalf("block after heading = %+v, want empty spacer paragraph", rep.Blocks[1])
	}
}

func TestBuildRequiresTemplateStore(t *testing.T) {
	if _, err := report.NewBuilder().Build(records.RecordSet{}, nil); err == nil {
		t.Fatal("expected error for nil template store")
	}
}
