// Package export writes listings and monthly summaries to CSV, JSON and
// PDF files for use outside the terminal.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"fintrack/internal/core"
)

// Format selects the output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported export format %q (want csv, json or pdf)", s)
}

// Report bundles everything one export run writes: the listing rows and,
// when a month is selected, its summary.
type Report struct {
	Title        string             `json:"title"`
	GeneratedAt  time.Time          `json:"generated_at"`
	Month        int                `json:"month,omitempty"`
	Year         int                `json:"year,omitempty"`
	Summary      *core.Summary      `json:"summary,omitempty"`
	Transactions []core.Transaction `json:"transactions"`
}

// Write renders the report in the requested format and returns the
// absolute path of the file it created.
func Write(report Report, format Format, filename, outputDir string) (string, error) {
	switch format {
	case FormatCSV:
		return writeCSV(report, filename, outputDir)
	case FormatJSON:
		return writeJSON(report, filename, outputDir)
	case FormatPDF:
		return writePDF(report, filename, outputDir)
	}
	return "", fmt.Errorf("unsupported export format %q", format)
}

func writeCSV(report Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"ID", "Date", "Type", "Category", "Vendor", "Description", "Amount"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, t := range report.Transactions {
		record := []string{
			fmt.Sprintf("%d", t.ID),
			t.Date.String(),
			string(t.Type),
			t.CategoryName,
			t.Vendor,
			t.Description,
			t.Amount.String(),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	if s := report.Summary; s != nil {
		writer.Write([]string{})
		writer.Write([]string{"Income Total", s.IncomeTotal.String()})
		writer.Write([]string{"Expense Total", s.ExpenseTotal.String()})
		writer.Write([]string{"Balance", s.Balance.String()})
		if s.BudgetSet {
			writer.Write([]string{"Budget", s.BudgetAmount.String()})
			writer.Write([]string{"Budget Remaining", s.BudgetRemaining.String()})
		}
	}

	return filepath.Abs(outputFilename)
}

func writeJSON(report Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func writePDF(report Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", report.Title)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	if report.Month != 0 {
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Period: %04d-%02d", report.Year, report.Month)), "", 1, "L", true, 0, "")
	}
	pdf.Ln(10)

	if s := report.Summary; s != nil {
		var b strings.Builder
		fmt.Fprintf(&b, "Income: %s\nExpenses: %s\nBalance: %s\n", s.IncomeTotal, s.ExpenseTotal, s.Balance)
		if s.BudgetSet {
			fmt.Fprintf(&b, "Budget: %s\nRemaining: %s\n", s.BudgetAmount, s.BudgetRemaining)
		} else {
			b.WriteString("Budget: not configured\n")
		}
		drawSection("Summary", b.String())

		if len(s.ExpensesByCategory) > 0 {
			var c strings.Builder
			for _, ct := range s.ExpensesByCategory {
				fmt.Fprintf(&c, "%s: %s\n", ct.Category, ct.Total)
			}
			drawSection("Expenses By Category", c.String())
		}
	}

	if len(report.Transactions) > 0 {
		var b strings.Builder
		for _, t := range report.Transactions {
			line := fmt.Sprintf("%s  %-7s  %s", t.Date, t.Type, t.Amount)
			if t.CategoryName != "" {
				line += "  " + t.CategoryName
			}
			if t.Description != "" {
				line += "  " + t.Description
			}
			b.WriteString(line + "\n")
		}
		drawSection("Transactions", b.String())
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated %s", report.GeneratedAt.Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// generateFilename builds a timestamped output path and makes sure the
// directory exists.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating output directory %q: %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", base, timestamp, ext)), nil
}
