package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	// TransactionType is fixed by the category a transaction belongs to.
	TransactionType string

	// Date is a calendar date without a time component.
	Date struct {
		time.Time
	}

	// Category is read-only reference data from the client's perspective.
	Category struct {
		ID   int64           `json:"id"`
		Name string          `json:"name"`
		Type TransactionType `json:"type"`
	}

	Transaction struct {
		ID           int64           `json:"id,omitempty"`
		Amount       Money           `json:"amount"`
		Vendor       string          `json:"vendor,omitempty"`
		CategoryID   int64           `json:"category"`
		CategoryName string          `json:"category_name,omitempty"`
		Date         Date            `json:"date"`
		Description  string          `json:"description"`
		Type         TransactionType `json:"type"`
	}

	// Budget is the spending ceiling for one (month, year). At most one
	// exists per month; callers represent "none configured" as a nil
	// *Budget, never as a zero amount.
	Budget struct {
		ID     int64 `json:"id"`
		Month  int   `json:"month"`
		Year   int   `json:"year"`
		Amount Money `json:"budget_amount"`
	}

	// Draft holds raw user input for a transaction create or update, before
	// validation. Amount and Date stay strings until Validate parses them.
	Draft struct {
		Amount      string
		Vendor      string
		CategoryID  int64
		Date        string
		Description string
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidDate      = errors.New("invalid date")
	ErrEmptyDescription = errors.New("empty description")
	ErrNoCategory       = errors.New("no category selected")
	ErrUnknownCategory  = errors.New("unknown category")
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts an ISO calendar date, tolerating a trailing time
// component since some endpoints return full timestamps.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Validate checks a draft the way the form boundary does: a category must
// be selected, the date must be a real calendar date, the amount must parse
// as a positive finite value and the description must be non-empty. It does
// not resolve the category; that needs the reference list.
func (dr Draft) Validate() error {
	if dr.CategoryID <= 0 {
		return ErrNoCategory
	}
	if _, err := ParseDate(dr.Date); err != nil {
		return err
	}
	if _, err := ParseAmount(dr.Amount); err != nil {
		return err
	}
	if strings.TrimSpace(dr.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// Resolve validates the draft and builds the wire payload, deriving the
// transaction type from the selected category rather than from user input.
func (dr Draft) Resolve(categories []Category) (Transaction, error) {
	if err := dr.Validate(); err != nil {
		return Transaction{}, err
	}
	var cat *Category
	for i := range categories {
		if categories[i].ID == dr.CategoryID {
			cat = &categories[i]
			break
		}
	}
	if cat == nil {
		return Transaction{}, ErrUnknownCategory
	}
	amount, err := ParseAmount(dr.Amount)
	if err != nil {
		return Transaction{}, err
	}
	date, err := ParseDate(dr.Date)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		Amount:      amount,
		Vendor:      strings.TrimSpace(dr.Vendor),
		CategoryID:  cat.ID,
		Date:        date,
		Description: strings.TrimSpace(dr.Description),
		Type:        cat.Type,
	}, nil
}
