package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// PaymentAdvice is the data rendered on a stage payment advice document.
type PaymentAdvice struct {
	CouncilName    string
	ProjectName    string
	ProgramName    string
	ScheduleNumber int
	Stage          int
	Amount         decimal.Decimal
	Reference      string
	AcceptanceDate time.Time
	OfficerName    string
}

type Generator struct {
	fontName string
}

func NewGenerator() (*Generator, error) {
	return &Generator{fontName: "Helvetica"}, nil
}

// PaymentAdvice renders the advice issued when a stage report acceptance
// makes a progress payment due.
func (g *Generator) PaymentAdvice(advice PaymentAdvice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, "Payment Advice", "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Stage %d progress payment", advice.Stage), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Recipient", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.MultiCell(0, 6, safeValue(advice.CouncilName), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Details", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	rows := [][2]string{
		{"Project", safeValue(advice.ProjectName)},
		{"Program", safeValue(advice.ProgramName)},
		{"Funding schedule", fmt.Sprintf("FS-%d", advice.ScheduleNumber)},
		{"Stage accepted", formatDate(advice.AcceptanceDate)},
		{"Payment reference", safeValue(advice.Reference)},
		{"Amount due", "$" + advice.Amount.StringFixed(2)},
	}
	for _, row := range rows {
		pdf.SetFont(g.fontName, "B", 10)
		pdf.CellFormat(55, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(115, 8, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont(g.fontName, "", 10)
	pdf.MultiCell(0, 5, "This advice confirms the amount payable under the funding schedule following acceptance of the stage report. Release of funds is subject to the recorded instalment being processed.", "", "L", false)

	pdf.Ln(10)
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Authorised officer: ______________________ /%s/", safeValue(advice.OfficerName)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}
