package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunrk/schoolbeam/internal/app/models"
	"github.com/arjunrk/schoolbeam/internal/pkg/apperrors"
)

// TimetableRepository handles database operations for timetable entries
type TimetableRepository struct {
	db *pgxpool.Pool
}

// NewTimetableRepository creates a new timetable repository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{db: db}
}

// Create inserts a new timetable entry
func (r *TimetableRepository) Create(ctx context.Context, entry *models.TimetableEntry) error {
	query := `
		INSERT INTO timetable_entries (day, time, subject, section)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, entry.Day, entry.Time, entry.Subject, entry.Section).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("error creating timetable entry: %w", err)
	}

	return nil
}

// GetBySection retrieves a section's timetable entries
func (r *TimetableRepository) GetBySection(ctx context.Context, section string) ([]*models.TimetableEntry, error) {
	query := `
		SELECT id, day, time, subject, section
		FROM timetable_entries
		WHERE section = $1
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query, section)
	if err != nil {
		return nil, fmt.Errorf("error retrieving timetable: %w", err)
	}
	defer rows.Close()

	var entries []*models.TimetableEntry
	for rows.Next() {
		var entry models.TimetableEntry
		if err := rows.Scan(&entry.ID, &entry.Day, &entry.Time, &entry.Subject, &entry.Section); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Delete removes a timetable entry by ID
func (r *TimetableRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM timetable_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting timetable entry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTimetableNotFound
	}

	return nil
}
