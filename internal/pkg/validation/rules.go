package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Roll number pattern - section code, a dash, then a zero-padded numeric
	// suffix of at least two digits (e.g. 12A-01, 12B-114)
	RollPattern = `^[A-Z0-9]+-\d{2,}$`

	// Section code pattern - uppercase alphanumeric, or the sentinel "all"
	SectionPattern = `^([A-Z0-9]+|all)$`

	// Teacher PIN pattern - 4 digits
	PINPattern = `^\d{4}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Roll    *regexp.Regexp
	Section *regexp.Regexp
	PIN     *regexp.Regexp
}{
	Roll:    regexp.MustCompile(RollPattern),
	Section: regexp.MustCompile(SectionPattern),
	PIN:     regexp.MustCompile(PINPattern),
}

// IsValidRoll reports whether roll matches the <SECTION>-<NN> format.
// Rolls are case-normalized to uppercase before matching.
func IsValidRoll(roll string) bool {
	return CompiledPatterns.Roll.MatchString(strings.ToUpper(roll))
}

// IsValidSection reports whether section is a valid section code or "all".
func IsValidSection(section string) bool {
	return CompiledPatterns.Section.MatchString(section)
}

// IsValidPIN reports whether pin is a valid 4-digit teacher PIN.
func IsValidPIN(pin string) bool {
	return CompiledPatterns.PIN.MatchString(pin)
}

// IsValidName reports whether a display name satisfies the length bounds.
func IsValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return len(trimmed) >= NameMinLength && len(trimmed) <= NameMaxLength
}
