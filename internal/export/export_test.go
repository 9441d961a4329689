package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"fintrack/internal/core"
)

func sampleReport() Report {
	summary := &core.Summary{
		IncomeTotal:     core.Money{Cents: 10000},
		ExpenseTotal:    core.Money{Cents: 5000},
		Balance:         core.Money{Cents: 5000},
		BudgetAmount:    core.Money{Cents: 10000},
		BudgetRemaining: core.Money{Cents: 5000},
		BudgetSet:       true,
		ExpensesByCategory: []core.CategoryTotal{
			{Category: "Food", Total: core.Money{Cents: 5000}},
		},
	}
	return Report{
		Title:       "August Report",
		GeneratedAt: time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC),
		Month:       8,
		Year:        2025,
		Summary:     summary,
		Transactions: []core.Transaction{
			{ID: 1, Amount: core.Money{Cents: 10000}, CategoryName: "Salary", Date: core.NewDate(2025, 8, 1), Description: "august pay", Type: core.Income},
			{ID: 2, Amount: core.Money{Cents: 5000}, CategoryName: "Food", Vendor: "Market", Date: core.NewDate(2025, 8, 10), Description: "groceries", Type: core.Expense},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{"JSON", FormatJSON, false},
		{" pdf ", FormatPDF, false},
		{"xlsx", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	path, err := Write(sampleReport(), FormatCSV, "report", t.TempDir())
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	if got := records[0][0]; got != "ID" {
		t.Fatalf("header: %v", records[0])
	}
	if got := records[1]; got[1] != "2025-08-01" || got[6] != "100.00" {
		t.Fatalf("first row: %v", got)
	}
	// Summary trailer with decimal amounts, not cents.
	found := false
	for _, rec := range records {
		if len(rec) == 2 && rec[0] == "Budget Remaining" && rec[1] == "50.00" {
			found = true
		}
	}
	if !found {
		t.Fatalf("summary trailer missing: %v", records)
	}
}

func TestWriteJSON(t *testing.T) {
	path, err := Write(sampleReport(), FormatJSON, "report", t.TempDir())
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Transactions) != 2 || decoded.Summary == nil {
		t.Fatalf("decoded: %+v", decoded)
	}
	if decoded.Summary.ExpenseTotal.Cents != 5000 {
		t.Fatalf("expense total = %d", decoded.Summary.ExpenseTotal.Cents)
	}
	// Amounts serialize as plain decimals on the wire.
	if !strings.Contains(string(raw), `"amount": 100.00`) {
		t.Fatalf("amount encoding: %s", raw)
	}
}

func TestWritePDF(t *testing.T) {
	path, err := Write(sampleReport(), FormatPDF, "report", t.TempDir())
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("empty pdf")
	}
	if !strings.HasSuffix(path, ".pdf") {
		t.Fatalf("path: %s", path)
	}
}
