package core

import "testing"

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12.345", 1234, true}, // rounds down
		{"12.346", 1235, true}, // rounds up
		{"0", 0, true},
		{"-0.50", -50, true},
		{"+3", 300, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"12a", 0, false},
	}
	for _, tc := range cases {
		m, err := ParseMoney(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("ParseMoney(%q) unexpected error: %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseMoney(%q) expected error", tc.in)
		}
		if tc.ok && m.Cents != tc.cents {
			t.Fatalf("ParseMoney(%q) = %d cents, want %d", tc.in, m.Cents, tc.cents)
		}
	}
}

func TestParseAmountRejectsNonPositive(t *testing.T) {
	for _, in := range []string{"0", "0.00", "-5", ""} {
		if _, err := ParseAmount(in); err == nil {
			t.Fatalf("ParseAmount(%q) expected error", in)
		}
	}
	if m, err := ParseAmount("19.99"); err != nil || m.Cents != 1999 {
		t.Fatalf("ParseAmount(19.99) = %v, %v", m, err)
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1234, "12.34"},
		{-50, "-0.50"},
		{0, "0.00"},
		{5, "0.05"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("Money{%d}.String() = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	var m Money
	if err := m.UnmarshalJSON([]byte(`"40.00"`)); err != nil || m.Cents != 4000 {
		t.Fatalf("string form: %v, %v", m, err)
	}
	if err := m.UnmarshalJSON([]byte(`12.5`)); err != nil || m.Cents != 1250 {
		t.Fatalf("number form: %v, %v", m, err)
	}
	b, err := (Money{Cents: 1250}).MarshalJSON()
	if err != nil || string(b) != "12.50" {
		t.Fatalf("marshal: %s, %v", b, err)
	}
}
