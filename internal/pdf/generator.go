package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/vcscsvcscs/dosewise/pkg/model"
	"go.uber.org/zap"
)

// PDFGenerator renders adherence reports
type PDFGenerator struct {
	logger *zap.Logger
}

// NewPDFGenerator creates a new PDFGenerator
func NewPDFGenerator(logger *zap.Logger) *PDFGenerator {
	return &PDFGenerator{
		logger: logger,
	}
}

// ReportData contains all data needed for report generation
type ReportData struct {
	UserName        string
	From            time.Time
	To              time.Time
	GeneratedAt     time.Time
	AdherenceWeekly int
	CurrentStreak   int
	Achievements    []model.Achievement
	Schedules       []model.Schedule
	DoseLogs        []model.DoseLog
}

// Generate creates a PDF report from the provided data
func (g *PDFGenerator) Generate(data *ReportData) ([]byte, error) {
	dateRange := fmt.Sprintf("%s to %s", data.From.Format(time.DateOnly), data.To.Format(time.DateOnly))
	g.logger.Info("generating PDF report",
		zap.String("user_name", data.UserName),
		zap.String("date_range", dateRange),
	)

	generatedAt := data.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	g.addTitle(pdf, "Medication Adherence Report", data.UserName, dateRange, generatedAt)
	g.addOverview(pdf, data)
	g.addScheduleList(pdf, data.Schedules)
	g.addStatusBreakdown(pdf, data.DoseLogs)
	g.addDoseLogTable(pdf, data.DoseLogs)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		g.logger.Error("failed to generate PDF", zap.Error(err))
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	g.logger.Info("PDF report generated successfully",
		zap.Int("size_bytes", buf.Len()),
	)

	return buf.Bytes(), nil
}

func (g *PDFGenerator) addTitle(pdf *gofpdf.Fpdf, title, userName, dateRange string, generatedAt time.Time) {
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	if userName != "" {
		pdf.CellFormat(0, 8, fmt.Sprintf("Patient: %s", userName), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 8, fmt.Sprintf("Period: %s", dateRange), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(10)
}

func (g *PDFGenerator) addSectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 10, title, "", 1, "L", true, 0, "")
	pdf.Ln(3)
	pdf.SetFont("Arial", "", 10)
}

func (g *PDFGenerator) addOverview(pdf *gofpdf.Fpdf, data *ReportData) {
	g.addSectionHeader(pdf, "Overview")

	pdf.CellFormat(0, 6, fmt.Sprintf("Weekly adherence: %d%%", data.AdherenceWeekly), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Current streak: %d days", data.CurrentStreak), "", 1, "L", false, 0, "")

	if len(data.Achievements) > 0 {
		titles := make([]string, 0, len(data.Achievements))
		for _, a := range data.Achievements {
			titles = append(titles, a.Title)
		}
		pdf.CellFormat(0, 6, fmt.Sprintf("Achievements: %s", strings.Join(titles, ", ")), "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)
}

func (g *PDFGenerator) addScheduleList(pdf *gofpdf.Fpdf, schedules []model.Schedule) {
	g.addSectionHeader(pdf, "Medication Schedules")

	if len(schedules) == 0 {
		pdf.CellFormat(0, 8, "No active schedules.", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	for _, s := range schedules {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, s.Name, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 5, fmt.Sprintf("  Dosage: %s", s.Dosage), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("  Times: %s", strings.Join(s.Times, ", ")), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("  Frequency: %s", describeFrequency(s)), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("  Start Date: %s", s.StartDate.Format(time.DateOnly)), "", 1, "L", false, 0, "")
		if s.EndDate != nil {
			pdf.CellFormat(0, 5, fmt.Sprintf("  End Date: %s", s.EndDate.Format(time.DateOnly)), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}
	pdf.Ln(5)
}

func (g *PDFGenerator) addStatusBreakdown(pdf *gofpdf.Fpdf, logs []model.DoseLog) {
	g.addSectionHeader(pdf, "Dose Status Breakdown")

	if len(logs) == 0 {
		pdf.CellFormat(0, 8, "No doses recorded during this period.", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	counts := make(map[model.DoseStatus]int)
	for _, l := range logs {
		counts[l.Status]++
	}

	for _, status := range []model.DoseStatus{model.DoseStatusTaken, model.DoseStatusSkipped, model.DoseStatusMissed} {
		pdf.CellFormat(0, 6, fmt.Sprintf("%s: %d", status, counts[status]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)
}

func (g *PDFGenerator) addDoseLogTable(pdf *gofpdf.Fpdf, logs []model.DoseLog) {
	if len(logs) == 0 {
		return
	}
	g.addSectionHeader(pdf, "Dose Log")

	widths := []float64{40, 70, 25, 35}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range []string{"Date", "Medication", "Time", "Status"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, l := range logs {
		name := l.MedicationName
		if name == "" {
			name = "-"
		}
		pdf.CellFormat(widths[0], 6, l.ActionTime.Format("2006-01-02 15:04"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, l.Time, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, string(l.Status), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(5)
}

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func describeFrequency(s model.Schedule) string {
	if s.Frequency != model.FrequencyWeekly {
		return "Daily"
	}
	days := make([]string, 0, len(s.DaysOfWeek))
	for _, d := range s.DaysOfWeek {
		if d >= 0 && d < len(weekdayNames) {
			days = append(days, weekdayNames[d])
		}
	}
	return "Weekly (" + strings.Join(days, ", ") + ")"
}
