package accesskey

import (
	"strings"

	"github.com/google/uuid"
)

// namePrefixLen is the number of characters of the student's name carried
// into the key.
const namePrefixLen = 4

// randomSuffixLen is the number of random characters appended to the key.
const randomSuffixLen = 4

// Generate derives an opaque access key for student/parent self-service
// lookup. The key is not a security credential: it combines a prefix of the
// student's name, their section, and a short random suffix so it is easy to
// communicate yet unlikely to collide.
func Generate(name, section string) string {
	// Slice in runes, not bytes, so multibyte names keep valid UTF-8.
	compact := []rune(strings.ReplaceAll(name, " ", ""))
	if len(compact) > namePrefixLen {
		compact = compact[:namePrefixLen]
	}

	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))

	return string(compact) + section + random[:randomSuffixLen]
}
