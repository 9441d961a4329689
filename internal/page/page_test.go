package page

import "testing"

func TestApplyResultTotalPages(t *testing.T) {
	cases := []struct {
		count    int
		pageSize int
		want     int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 10, 10},
		{101, 10, 11},
		{3, 1, 3},
	}
	for _, tc := range cases {
		c := NewController(tc.pageSize)
		c.ApplyResult(tc.count)
		if got := c.TotalPages(); got != tc.want {
			t.Fatalf("count=%d size=%d: totalPages=%d, want %d", tc.count, tc.pageSize, got, tc.want)
		}
	}
}

func TestGoToRejectsOutOfRange(t *testing.T) {
	c := NewController(10)
	c.ApplyResult(35) // 4 pages

	if c.GoTo(0) {
		t.Fatal("page 0 must be rejected")
	}
	if c.GoTo(5) {
		t.Fatal("page beyond total must be rejected")
	}
	if c.Page() != 1 {
		t.Fatalf("rejected moves must not change page, got %d", c.Page())
	}

	if !c.GoTo(3) {
		t.Fatal("valid move rejected")
	}
	if c.Page() != 3 {
		t.Fatalf("page = %d, want 3", c.Page())
	}
	if c.GoTo(3) {
		t.Fatal("moving to the current page needs no refetch")
	}
}

func TestApplyResultClampsCurrentPage(t *testing.T) {
	c := NewController(10)
	c.ApplyResult(50)
	c.GoTo(5)
	c.ApplyResult(12) // shrank to 2 pages
	if c.Page() != 2 {
		t.Fatalf("page = %d, want clamp to 2", c.Page())
	}
}

func TestReset(t *testing.T) {
	c := NewController(10)
	c.ApplyResult(99)
	c.GoTo(4)
	c.Reset()
	if c.Page() != 1 || c.TotalPages() != 1 {
		t.Fatalf("after reset: page=%d total=%d", c.Page(), c.TotalPages())
	}
}
