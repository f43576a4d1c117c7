package accesskey

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGenerateShape(t *testing.T) {
	key := Generate("Aarav Mehta", "12A")

	if !strings.HasPrefix(key, "Aara12A") {
		t.Fatalf("expected key to start with name prefix and section, got %q", key)
	}
	if len(key) != len("Aara12A")+randomSuffixLen {
		t.Fatalf("unexpected key length %d for %q", len(key), key)
	}

	suffix := key[len(key)-randomSuffixLen:]
	for _, r := range suffix {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			t.Fatalf("suffix %q contains non-hex character %q", suffix, r)
		}
	}
}

func TestGenerateStripsSpaces(t *testing.T) {
	key := Generate("A B Cd", "12B")
	if !strings.HasPrefix(key, "ABCd12B") {
		t.Fatalf("expected spaces removed before taking the prefix, got %q", key)
	}
}

func TestGenerateShortName(t *testing.T) {
	key := Generate("Om", "12A")
	if !strings.HasPrefix(key, "Om12A") {
		t.Fatalf("short names should be used whole, got %q", key)
	}
	if len(key) != len("Om12A")+randomSuffixLen {
		t.Fatalf("unexpected key length %d for %q", len(key), key)
	}
}

// Multibyte names must not have a rune cut in half by the prefix.
func TestGenerateMultibyteName(t *testing.T) {
	key := Generate("Ömer Çelik", "12B")
	if !strings.HasPrefix(key, "Ömer12B") {
		t.Fatalf("expected the first four runes of the name, got %q", key)
	}
	if !utf8.ValidString(key) {
		t.Fatalf("key %q is not valid UTF-8", key)
	}
}

func TestGenerateVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		key := Generate("Aarav Mehta", "12A")
		if seen[key] {
			t.Fatalf("duplicate key %q generated within 50 attempts", key)
		}
		seen[key] = true
	}
}
