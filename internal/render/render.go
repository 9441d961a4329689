// Package render draws listings, summaries and charts on the terminal.
// It consumes the chart package's series; no aggregation happens here.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"fintrack/internal/chart"
	"fintrack/internal/core"
)

const barWidth = 40

var (
	incomeColor  = color.New(color.FgGreen, color.Bold).SprintFunc()
	expenseColor = color.New(color.FgRed, color.Bold).SprintFunc()
	staleColor   = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// Renderer writes formatted output via pterm.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Status starts a spinner for a long-running fetch. Callers stop it via
// the returned handle before printing results.
func (r *Renderer) Status(message string) *pterm.SpinnerPrinter {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return spinner
}

func (r *Renderer) Error(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

func (r *Renderer) Warning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

func (r *Renderer) Success(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// StaleNotice flags output that comes from the offline snapshot.
func (r *Renderer) StaleNotice(capturedAt string) {
	pterm.Warning.Printfln("showing offline snapshot captured %s; data may be stale", staleColor(capturedAt))
}

// TransactionsTable renders the listing page as a boxed table.
func (r *Renderer) TransactionsTable(rows []core.Transaction, pageNum, totalPages, count int) string {
	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Category", "Vendor", "Description", "Amount"},
	}
	for _, t := range rows {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", t.ID),
			t.Date.String(),
			string(t.Type),
			t.CategoryName,
			t.Vendor,
			t.Description,
			amountCell(t.Amount, t.Type),
		})
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	rendered, _ := table.Srender()
	return rendered + fmt.Sprintf("\nPage %d of %d (%d transactions)\n", pageNum, totalPages, count)
}

// SummaryPanel renders the monthly totals in a titled box.
func (r *Renderer) SummaryPanel(s core.Summary, month, year int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Income:    %s\n", incomeColor(s.IncomeTotal))
	fmt.Fprintf(&b, "Expenses:  %s\n", expenseColor(s.ExpenseTotal))
	fmt.Fprintf(&b, "Balance:   %s\n", s.Balance)
	if s.BudgetSet {
		fmt.Fprintf(&b, "Budget:    %s\n", s.BudgetAmount)
		remaining := s.BudgetRemaining.String()
		if s.BudgetRemaining.Cents < 0 {
			remaining = expenseColor(remaining)
		}
		fmt.Fprintf(&b, "Remaining: %s\n", remaining)
	} else {
		b.WriteString("Budget:    not configured\n")
	}

	title := fmt.Sprintf("Summary %04d-%02d", year, month)
	return pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(strings.TrimRight(b.String(), "\n"))
}

// BarChart renders a two-bar comparison, scaled to the larger value.
func (r *Renderer) BarChart(title string, bars []chart.Bar) string {
	maxValue := 0.0
	for _, b := range bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
	}

	tableData := pterm.TableData{{"", "Amount", ""}}
	for _, b := range bars {
		bar := pterm.FgBlue.Sprint(barLine(b.Value, maxValue, barWidth))
		tableData = append(tableData, []string{
			b.Label,
			fmt.Sprintf("%.2f", b.Value),
			bar,
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	rendered, _ := table.Srender()
	return pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(rendered)
}

// PieTable renders the category breakdown with proportions.
func (r *Renderer) PieTable(slices []chart.Slice) string {
	if len(slices) == 0 {
		return pterm.Warning.Sprintln("no expenses recorded for this period")
	}

	tableData := pterm.TableData{{"Category", "Amount", "Share", ""}}
	for _, s := range slices {
		bar := pterm.FgBlue.Sprint(barLine(s.Proportion, 1, barWidth/2))
		tableData = append(tableData, []string{
			s.Category,
			fmt.Sprintf("%.2f", s.Value),
			formatShare(s.Proportion),
			bar,
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	rendered, _ := table.Srender()
	return pterm.DefaultBox.WithTitle("Expenses By Category").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(rendered)
}

// CategoriesTable renders the reference list.
func (r *Renderer) CategoriesTable(cats []core.Category) string {
	tableData := pterm.TableData{{"ID", "Name", "Type"}}
	for _, c := range cats {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", c.ID),
			c.Name,
			string(c.Type),
		})
	}
	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	rendered, _ := table.Srender()
	return rendered
}

func amountCell(m core.Money, t core.TransactionType) string {
	if t == core.Income {
		return incomeColor(m.String())
	}
	return expenseColor(m.String())
}

// barLine scales value against max into a block-character bar.
func barLine(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	length := int((value / max) * float64(width))
	if length > width {
		length = width
	}
	return strings.Repeat("█", length)
}

func formatShare(proportion float64) string {
	return fmt.Sprintf("%.1f%%", proportion*100)
}
