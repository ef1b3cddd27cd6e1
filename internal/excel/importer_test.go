package excel

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func masterWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("writing row %d: %v", i+1, err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		t.Fatalf("writing workbook: %v", err)
	}
	return buf.Bytes()
}

var masterHeader = []any{
	"Council", "Program", "Project Name", "Description",
	"Funding Amount", "Contingency Amount", "Start Date",
	"Street", "Suburb", "Postcode", "Work Type", "Output Type",
	"Bedrooms", "Output Quantity", "Budget", "CLI No",
}

func TestParseMasterWorkbook(t *testing.T) {
	data := masterWorkbook(t, [][]any{
		masterHeader,
		{
			"Example Shire Council", "Capital Works 2024", "Four new houses", "Two duplexes",
			"$550,000.00", "55000", "2024-01-15",
			"12 Sea View Rd", "Yarrabah", "4871", "Construction", "Duplex",
			"3", "2", "440000", "CLI-0042",
		},
	})

	rows, rowErrors, err := ParseMasterWorkbook(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("unexpected row errors: %+v", rowErrors)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.Line != 2 {
		t.Errorf("line = %d, want 2", row.Line)
	}
	if row.CouncilName != "Example Shire Council" || row.ProjectName != "Four new houses" {
		t.Errorf("identity fields: %+v", row)
	}
	if row.FundingAmount == nil || row.FundingAmount.String() != "550000" {
		t.Errorf("funding amount = %v, want 550000 with currency formatting stripped", row.FundingAmount)
	}
	if row.StartDate == nil || !row.StartDate.Equal(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start date = %v", row.StartDate)
	}
	if row.WorkTypeCode != "construction" || row.OutputTypeCode != "duplex" {
		t.Errorf("codes must be lowercased: %q %q", row.WorkTypeCode, row.OutputTypeCode)
	}
	if row.Bedrooms == nil || *row.Bedrooms != 3 {
		t.Errorf("bedrooms = %v", row.Bedrooms)
	}
	if row.OutputQuantity != 2 {
		t.Errorf("output quantity = %d, want 2", row.OutputQuantity)
	}
	if row.CLINo == nil || *row.CLINo != "CLI-0042" {
		t.Errorf("cli no = %v", row.CLINo)
	}
}

func TestParseMasterWorkbookCollectsRowErrors(t *testing.T) {
	data := masterWorkbook(t, [][]any{
		masterHeader,
		// Bad funding amount and bad date on one row.
		{
			"Example Shire Council", "Capital Works 2024", "Bad row", "",
			"lots", "", "someday",
			"1 Main St", "", "", "construction", "house",
			"", "", "", "",
		},
		// Missing identity fields.
		{"", "Capital Works 2024", "No council", ""},
		// Blank row is skipped silently.
		{"", "", "", ""},
		// Good row after the bad ones still parses.
		{
			"Example Shire Council", "Capital Works 2024", "Good row", "",
			"100000", "", "15/01/2024",
			"2 Main St", "", "", "land", "lot",
			"", "", "", "",
		},
	})

	rows, rowErrors, err := ParseMasterWorkbook(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("expected 1 parsed row, got %d", len(rows))
	}
	if rows[0].ProjectName != "Good row" {
		t.Errorf("parsed row = %q", rows[0].ProjectName)
	}
	if rows[0].StartDate == nil || !rows[0].StartDate.Equal(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("dd/mm/yyyy start date = %v", rows[0].StartDate)
	}

	// Two parse failures on line 2, one missing-field failure on line 3.
	if len(rowErrors) != 3 {
		t.Fatalf("expected 3 row errors, got %d: %+v", len(rowErrors), rowErrors)
	}
	lines := map[int]int{}
	for _, re := range rowErrors {
		lines[re.Line]++
	}
	if lines[2] != 2 || lines[3] != 1 {
		t.Errorf("row errors by line = %v, want two on line 2 and one on line 3", lines)
	}
}

func TestParseMasterWorkbookHeaderOnly(t *testing.T) {
	data := masterWorkbook(t, [][]any{masterHeader})

	rows, rowErrors, err := ParseMasterWorkbook(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 || len(rowErrors) != 0 {
		t.Errorf("header-only workbook should yield nothing, got %d rows, %d errors", len(rows), len(rowErrors))
	}
}
