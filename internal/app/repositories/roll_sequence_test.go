package repositories

import "testing"

func TestFormatRoll(t *testing.T) {
	tests := []struct {
		section string
		suffix  int
		want    string
	}{
		{"12A", 1, "12A-01"},
		{"12A", 42, "12A-42"},
		{"12B", 100, "12B-100"},
		{"12a", 7, "12A-07"}, // section is uppercased
	}

	for _, tt := range tests {
		if got := FormatRoll(tt.section, tt.suffix); got != tt.want {
			t.Errorf("FormatRoll(%q, %d) = %q, want %q", tt.section, tt.suffix, got, tt.want)
		}
	}
}
