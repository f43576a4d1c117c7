package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunrk/schoolbeam/internal/app/models"
	"github.com/arjunrk/schoolbeam/internal/pkg/apperrors"
	"github.com/arjunrk/schoolbeam/internal/pkg/dberrors"
)

// studentColumns is the column list every student query selects.
const studentColumns = "id, roll, name, section, parent_phone, access_key, attendance, fees, performance"

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// scanStudent scans one student row
func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.Roll,
		&student.Name,
		&student.Section,
		&student.ParentPhone,
		&student.Key,
		&student.Attendance,
		&student.Fees,
		&student.Performance,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student with a pre-allocated roll number.
// The unique constraint on roll is the final arbiter of uniqueness: a
// violation surfaces as ErrRollAlreadyExists so the caller can reserve a
// fresh suffix and retry.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (roll, name, section, parent_phone, access_key, attendance, fees, performance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	if student.Attendance == nil {
		student.Attendance = models.AttendanceMap{}
	}
	if student.Performance == nil {
		student.Performance = models.PerformanceMap{}
	}

	err := r.db.QueryRow(ctx, query,
		strings.ToUpper(student.Roll),
		student.Name,
		student.Section,
		student.ParentPhone,
		student.Key,
		student.Attendance,
		student.Fees,
		student.Performance,
	).Scan(&student.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_roll_key") {
			return apperrors.ErrRollAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	student.Roll = strings.ToUpper(student.Roll)
	return nil
}

// GetByRoll retrieves a student by roll number. Rolls are case-normalized
// before lookup.
func (r *StudentRepository) GetByRoll(ctx context.Context, roll string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE roll = $1`, studentColumns)

	student, err := scanStudent(r.db.QueryRow(ctx, query, strings.ToUpper(roll)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetBySection retrieves all students in a section ordered by roll
func (r *StudentRepository) GetBySection(ctx context.Context, section string) ([]*models.Student, error) {
	query, args, err := squirrel.
		Select(strings.Split(studentColumns, ", ")...).
		From("students").
		Where(squirrel.Eq{"section": section}).
		OrderBy("roll ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building student query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// UpdateDetails updates a student's name and parent contact by roll
func (r *StudentRepository) UpdateDetails(ctx context.Context, roll, name, parentPhone string) (*models.Student, error) {
	query := fmt.Sprintf(`
		UPDATE students SET name = $1, parent_phone = $2
		WHERE roll = $3
		RETURNING %s
	`, studentColumns)

	student, err := scanStudent(r.db.QueryRow(ctx, query, name, parentPhone, strings.ToUpper(roll)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return student, nil
}

// UpdateAttendance persists a student's full attendance map. The read-modify-
// write around this call is unsynchronized: concurrent marks for the same
// marker on the same student resolve last-writer-wins, best effort.
func (r *StudentRepository) UpdateAttendance(ctx context.Context, roll string, attendance models.AttendanceMap) (*models.Student, error) {
	query := fmt.Sprintf(`
		UPDATE students SET attendance = $1
		WHERE roll = $2
		RETURNING %s
	`, studentColumns)

	student, err := scanStudent(r.db.QueryRow(ctx, query, attendance, strings.ToUpper(roll)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating attendance: %w", err)
	}

	return student, nil
}

// UpdatePerformance replaces a student's entire performance map
func (r *StudentRepository) UpdatePerformance(ctx context.Context, roll string, performance models.PerformanceMap) (*models.Student, error) {
	query := fmt.Sprintf(`
		UPDATE students SET performance = $1
		WHERE roll = $2
		RETURNING %s
	`, studentColumns)

	student, err := scanStudent(r.db.QueryRow(ctx, query, performance, strings.ToUpper(roll)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating performance: %w", err)
	}

	return student, nil
}

// UpdateFees overwrites a student's fee status. The write is idempotent and
// keeps no history of prior statuses.
func (r *StudentRepository) UpdateFees(ctx context.Context, roll string, status models.FeeStatus) (*models.Student, error) {
	query := fmt.Sprintf(`
		UPDATE students SET fees = $1
		WHERE roll = $2
		RETURNING %s
	`, studentColumns)

	student, err := scanStudent(r.db.QueryRow(ctx, query, status, strings.ToUpper(roll)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating fee status: %w", err)
	}

	return student, nil
}

// Delete removes a student by roll
func (r *StudentRepository) Delete(ctx context.Context, roll string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE roll = $1`, strings.ToUpper(roll))
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
