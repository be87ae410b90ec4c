package pdfgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// MonthlyReport is the printable content for one child and one calendar
// month. The caller assembles it; this package only lays it out.
type MonthlyReport struct {
	ChildName       string
	MonthLabel      string
	TotalActivities int
	Activities      []ActivityLine
	Distribution    []DistributionLine
}

type ActivityLine struct {
	Date   string
	Title  string
	Skills []string
}

type DistributionLine struct {
	Skill string
	Count int
}

// Renderer turns a monthly report into PDF bytes.
type Renderer interface {
	RenderMonthly(report MonthlyReport) ([]byte, error)
}

// FPDFRenderer renders with gofpdf. Stateless, safe for concurrent use.
type FPDFRenderer struct{}

func NewRenderer() *FPDFRenderer {
	return &FPDFRenderer{}
}

func (r *FPDFRenderer) RenderMonthly(report MonthlyReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s - %s", report.ChildName, report.MonthLabel), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Activities logged: %d", report.TotalActivities), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Skill distribution", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	if len(report.Distribution) == 0 {
		pdf.CellFormat(0, 7, "No skill-tagged activities this month.", "", 1, "L", false, 0, "")
	}
	for _, line := range report.Distribution {
		pdf.CellFormat(90, 7, line.Skill, "B", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("%d", line.Count), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Activity log", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range report.Activities {
		pdf.CellFormat(24, 7, line.Date, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(80, 7, line.Title, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 7, strings.Join(line.Skills, ", "), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
