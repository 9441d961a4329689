package cli

import (
	"log/slog"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultMonthYear(t *testing.T) {
	now := time.Now()

	month, year := defaultMonthYear(0, 0)
	if month != int(now.Month()) || year != now.Year() {
		t.Errorf("defaultMonthYear(0, 0) = %d, %d", month, year)
	}

	month, year = defaultMonthYear(3, 2024)
	if month != 3 || year != 2024 {
		t.Errorf("defaultMonthYear(3, 2024) = %d, %d", month, year)
	}
}

func TestNewAppRegistersCommands(t *testing.T) {
	app := NewApp("test")
	want := map[string]bool{
		"login":        false,
		"logout":       false,
		"dashboard":    false,
		"transactions": false,
		"budget":       false,
		"categories":   false,
		"export":       false,
	}
	for _, c := range app.rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
