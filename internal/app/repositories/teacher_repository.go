package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunrk/schoolbeam/internal/app/models"
	"github.com/arjunrk/schoolbeam/internal/pkg/apperrors"
)

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// GetByPIN retrieves the teacher holding the given PIN. PINs are unique; the
// lookup is a bare equality check with no token issuance.
func (r *TeacherRepository) GetByPIN(ctx context.Context, pin string) (*models.Teacher, error) {
	query := `
		SELECT code, name, subject, pin, section, is_fee_manager
		FROM teachers
		WHERE pin = $1
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, pin).Scan(
		&teacher.Code,
		&teacher.Name,
		&teacher.Subject,
		&teacher.PIN,
		&teacher.Section,
		&teacher.IsFeeManager,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher by PIN: %w", err)
	}

	return &teacher, nil
}

// GetBySection retrieves all teachers attached to a section
func (r *TeacherRepository) GetBySection(ctx context.Context, section string) ([]*models.Teacher, error) {
	query := `
		SELECT code, name, subject, pin, section, is_fee_manager
		FROM teachers
		WHERE section = $1
		ORDER BY code ASC
	`

	rows, err := r.db.Query(ctx, query, section)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.Code,
			&teacher.Name,
			&teacher.Subject,
			&teacher.PIN,
			&teacher.Section,
			&teacher.IsFeeManager,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// Count returns the number of teacher records, used to decide whether the
// seed data should be inserted.
func (r *TeacherRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting teachers: %w", err)
	}
	return count, nil
}

// Create inserts a new teacher
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (code, name, subject, pin, section, is_fee_manager)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		teacher.Code,
		teacher.Name,
		teacher.Subject,
		teacher.PIN,
		teacher.Section,
		teacher.IsFeeManager,
	)
	if err != nil {
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}
