package excel

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// MasterRow is one parsed row of the master-data workbook. String fields are
// trimmed; absent cells stay nil / zero.
type MasterRow struct {
	Line int

	CouncilName string
	ProgramName string
	ProjectName string
	Description *string

	FundingAmount     *decimal.Decimal
	ContingencyAmount *decimal.Decimal

	StartDate    *time.Time
	Stage1Target *time.Time
	Stage1Sunset *time.Time
	Stage2Target *time.Time
	Stage2Sunset *time.Time

	SAPProject       *string
	SAPMasterProject *string
	CLINo            *string

	Street         string
	Suburb         string
	Postcode       string
	WorkTypeCode   string
	OutputTypeCode string
	Bedrooms       *int
	OutputQuantity int
	AddressBudget  *decimal.Decimal
}

// RowError records a row that could not be parsed. The import never stops on
// one bad row.
type RowError struct {
	Line int
	Err  string
}

// ParseMasterWorkbook reads the first sheet of a master-data workbook. The
// header row maps columns by name, so column order does not matter.
func ParseMasterWorkbook(data []byte) ([]MasterRow, []RowError, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, nil
	}

	columns := map[string]int{}
	for i, header := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(header))
		if key != "" {
			columns[key] = i
		}
	}

	var parsed []MasterRow
	var rowErrors []RowError
	for i, cells := range rows[1:] {
		line := i + 2
		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(cells) {
				return ""
			}
			return strings.TrimSpace(cells[idx])
		}

		row := MasterRow{
			Line:           line,
			CouncilName:    cell("council"),
			ProgramName:    cell("program"),
			ProjectName:    cell("project name"),
			Street:         cell("street"),
			Suburb:         cell("suburb"),
			Postcode:       cell("postcode"),
			WorkTypeCode:   strings.ToLower(cell("work type")),
			OutputTypeCode: strings.ToLower(cell("output type")),
			OutputQuantity: 1,
		}
		if row.CouncilName == "" && row.ProjectName == "" {
			continue
		}
		if row.CouncilName == "" || row.ProgramName == "" || row.ProjectName == "" {
			rowErrors = append(rowErrors, RowError{Line: line, Err: "council, program and project name are required"})
			continue
		}

		row.Description = optString(cell("description"))
		row.SAPProject = optString(cell("sap project"))
		row.SAPMasterProject = optString(cell("sap master project"))
		row.CLINo = optString(cell("cli no"))

		failed := false
		fail := func(field string, err error) {
			rowErrors = append(rowErrors, RowError{Line: line, Err: fmt.Sprintf("%s: %v", field, err)})
			failed = true
		}

		if row.FundingAmount, err = optDecimal(cell("funding amount")); err != nil {
			fail("funding amount", err)
		}
		if row.ContingencyAmount, err = optDecimal(cell("contingency amount")); err != nil {
			fail("contingency amount", err)
		}
		if row.AddressBudget, err = optDecimal(cell("budget")); err != nil {
			fail("budget", err)
		}
		if row.StartDate, err = optDate(cell("start date")); err != nil {
			fail("start date", err)
		}
		if row.Stage1Target, err = optDate(cell("stage 1 target")); err != nil {
			fail("stage 1 target", err)
		}
		if row.Stage1Sunset, err = optDate(cell("stage 1 sunset")); err != nil {
			fail("stage 1 sunset", err)
		}
		if row.Stage2Target, err = optDate(cell("stage 2 target")); err != nil {
			fail("stage 2 target", err)
		}
		if row.Stage2Sunset, err = optDate(cell("stage 2 sunset")); err != nil {
			fail("stage 2 sunset", err)
		}
		if row.Bedrooms, err = optInt(cell("bedrooms")); err != nil {
			fail("bedrooms", err)
		}
		if qty, err := optInt(cell("output quantity")); err != nil {
			fail("output quantity", err)
		} else if qty != nil && *qty > 0 {
			row.OutputQuantity = *qty
		}

		if failed {
			continue
		}
		parsed = append(parsed, row)
	}
	return parsed, rowErrors, nil
}

func optString(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}

func optDecimal(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", raw)
	}
	return &value, nil
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"01-02-06",
}

func optDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("not a date: %q", raw)
}

func optInt(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	var value int
	if _, err := fmt.Sscanf(raw, "%d", &value); err != nil {
		return nil, fmt.Errorf("not an integer: %q", raw)
	}
	return &value, nil
}
