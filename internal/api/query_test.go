package api

import "testing"

func TestBuildListQueryOmitsEmptyFilters(t *testing.T) {
	q := BuildListQuery(Filters{StartDate: "", Category: "3"}, 2, 10)

	if got := q.Get("page"); got != "2" {
		t.Fatalf("page = %q", got)
	}
	if got := q.Get("page_size"); got != "10" {
		t.Fatalf("page_size = %q", got)
	}
	if got := q.Get("category"); got != "3" {
		t.Fatalf("category = %q", got)
	}
	for _, key := range []string{"start_date", "end_date", "min_amount", "max_amount"} {
		if _, present := q[key]; present {
			t.Fatalf("empty filter %q must be omitted, got %q", key, q.Get(key))
		}
	}
	if len(q) != 3 {
		t.Fatalf("expected exactly 3 params, got %v", q)
	}
}

func TestBuildListQueryAllFilters(t *testing.T) {
	f := Filters{
		StartDate: "2025-08-01",
		EndDate:   "2025-08-31",
		Category:  "7",
		MinAmount: "5",
		MaxAmount: "100.50",
	}
	q := BuildListQuery(f, 1, 25)
	if len(q) != 7 {
		t.Fatalf("expected 7 params, got %v", q)
	}
	if q.Get("start_date") != "2025-08-01" || q.Get("max_amount") != "100.50" {
		t.Fatalf("unexpected values: %v", q)
	}
}

func TestFiltersIsZero(t *testing.T) {
	if !(Filters{}).IsZero() {
		t.Fatal("empty filters should be zero")
	}
	if (Filters{Category: "1"}).IsZero() {
		t.Fatal("filters with a category are not zero")
	}
}
