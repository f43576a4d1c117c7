package validation

import (
	"strings"
	"testing"
)

func TestIsValidRoll(t *testing.T) {
	tests := []struct {
		roll  string
		valid bool
	}{
		{"12A-01", true},
		{"12A-114", true},
		{"12b-07", true}, // case-normalized before matching
		{"12A-1", false}, // suffix must be at least two digits
		{"12A01", false},
		{"-01", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidRoll(tt.roll); got != tt.valid {
			t.Errorf("IsValidRoll(%q) = %v, want %v", tt.roll, got, tt.valid)
		}
	}
}

func TestIsValidSection(t *testing.T) {
	tests := []struct {
		section string
		valid   bool
	}{
		{"12A", true},
		{"9C", true},
		{"all", true},
		{"12a", false},
		{"12 A", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidSection(tt.section); got != tt.valid {
			t.Errorf("IsValidSection(%q) = %v, want %v", tt.section, got, tt.valid)
		}
	}
}

func TestIsValidPIN(t *testing.T) {
	tests := []struct {
		pin   string
		valid bool
	}{
		{"1234", true},
		{"0000", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidPIN(tt.pin); got != tt.valid {
			t.Errorf("IsValidPIN(%q) = %v, want %v", tt.pin, got, tt.valid)
		}
	}
}

func TestIsValidName(t *testing.T) {
	if IsValidName("A") {
		t.Error("single character name should be invalid")
	}
	if !IsValidName("Aarav Mehta") {
		t.Error("ordinary name should be valid")
	}
	if IsValidName("  ") {
		t.Error("whitespace-only name should be invalid")
	}
	if IsValidName(strings.Repeat("x", NameMaxLength+1)) {
		t.Error("over-long name should be invalid")
	}
}
