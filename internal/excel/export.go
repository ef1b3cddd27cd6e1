package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// DashboardRow is one line of the exported dashboard snapshot.
type DashboardRow struct {
	Name             string
	CouncilName      string
	State            string
	Progress         float64
	BudgetVsSpent    string
	IsLate           bool
	IsOverdue        bool
	QuarterlyOverdue bool
	TrackerMissing   bool
}

type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Dashboard renders the dashboard snapshot as a single-sheet workbook.
func (e *Exporter) Dashboard(rows []DashboardRow, generatedAt time.Time) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Projects"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Project dashboard")
	set("A2", "Generated")
	set("B2", generatedAt.Format("2006-01-02 15:04"))

	headerRow := 4
	headers := []string{
		"Project",
		"Council",
		"State",
		"Progress %",
		"Budget position",
		"Late",
		"Overdue",
		"Quarterly report overdue",
		"Tracker missing",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		set(cell, header)
	}

	for i, row := range rows {
		line := headerRow + 1 + i
		set(fmt.Sprintf("A%d", line), row.Name)
		set(fmt.Sprintf("B%d", line), row.CouncilName)
		set(fmt.Sprintf("C%d", line), row.State)
		set(fmt.Sprintf("D%d", line), fmt.Sprintf("%.1f", row.Progress))
		set(fmt.Sprintf("E%d", line), row.BudgetVsSpent)
		set(fmt.Sprintf("F%d", line), yesNo(row.IsLate))
		set(fmt.Sprintf("G%d", line), yesNo(row.IsOverdue))
		set(fmt.Sprintf("H%d", line), yesNo(row.QuarterlyOverdue))
		set(fmt.Sprintf("I%d", line), yesNo(row.TrackerMissing))
	}

	_ = file.SetColWidth(sheet, "A", "B", 36)
	_ = file.SetColWidth(sheet, "C", "D", 16)
	_ = file.SetColWidth(sheet, "E", "E", 40)
	_ = file.SetColWidth(sheet, "F", "I", 12)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
