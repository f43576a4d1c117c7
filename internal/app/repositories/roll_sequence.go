package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RollSequence hands out per-section roll number suffixes. Reservation is a
// single atomic upsert so two concurrent enrollments in the same section can
// never observe the same suffix; a plain read-max-then-increment would race.
type RollSequence struct {
	db *pgxpool.Pool
}

// NewRollSequence creates a new roll sequence backed by the section_counters table
func NewRollSequence(db *pgxpool.Pool) *RollSequence {
	return &RollSequence{db: db}
}

// ReserveNext atomically reserves and returns the next numeric suffix for the
// section. Reserved suffixes are never reissued, so a failed enrollment
// leaves a gap rather than a duplicate.
func (s *RollSequence) ReserveNext(ctx context.Context, section string) (int, error) {
	query := `
		INSERT INTO section_counters (section, next_suffix)
		VALUES ($1, 1)
		ON CONFLICT (section)
		DO UPDATE SET next_suffix = section_counters.next_suffix + 1
		RETURNING next_suffix
	`

	var suffix int
	err := s.db.QueryRow(ctx, query, strings.ToUpper(section)).Scan(&suffix)
	if err != nil {
		return 0, fmt.Errorf("error reserving roll suffix: %w", err)
	}

	return suffix, nil
}

// FormatRoll renders a reserved suffix as a roll number: the uppercased
// section, a dash, and the suffix zero-padded to two digits. Suffixes past 99
// simply grow the digit count.
func FormatRoll(section string, suffix int) string {
	return fmt.Sprintf("%s-%02d", strings.ToUpper(section), suffix)
}
