package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arjunrk/schoolbeam/internal/app/models"
	"github.com/arjunrk/schoolbeam/internal/app/models/dto"
	"github.com/arjunrk/schoolbeam/internal/app/repositories"
	"github.com/arjunrk/schoolbeam/internal/pkg/accesskey"
	"github.com/arjunrk/schoolbeam/internal/pkg/apperrors"
	"github.com/arjunrk/schoolbeam/internal/pkg/validation"
)

// maxRollAllocationRetries bounds the reserve-and-insert loop during
// enrollment. Exceeding it signals abnormal contention on the roll space.
const maxRollAllocationRetries = 3

// StudentService defines the interface for student-record operations
type StudentService interface {
	Enroll(ctx context.Context, req *dto.EnrollStudentRequest) (*models.Student, error)
	GetByRoll(ctx context.Context, roll string) (*models.Student, error)
	GetBySection(ctx context.Context, section string) ([]*models.Student, error)
	UpdateDetails(ctx context.Context, roll string, req *dto.UpdateStudentRequest) (*models.Student, error)
	MarkAttendance(ctx context.Context, roll, markerID, status string) (*models.Student, error)
	SetPerformance(ctx context.Context, roll string, performance models.PerformanceMap) (*models.Student, error)
	SetFeeStatus(ctx context.Context, roll string, status models.FeeStatus) (*models.Student, error)
	Delete(ctx context.Context, roll string) error
}

// StudentStore is the persistence surface the service needs. It is satisfied
// by *repositories.StudentRepository.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByRoll(ctx context.Context, roll string) (*models.Student, error)
	GetBySection(ctx context.Context, section string) ([]*models.Student, error)
	UpdateDetails(ctx context.Context, roll, name, parentPhone string) (*models.Student, error)
	UpdateAttendance(ctx context.Context, roll string, attendance models.AttendanceMap) (*models.Student, error)
	UpdatePerformance(ctx context.Context, roll string, performance models.PerformanceMap) (*models.Student, error)
	UpdateFees(ctx context.Context, roll string, status models.FeeStatus) (*models.Student, error)
	Delete(ctx context.Context, roll string) error
}

// RollAllocator reserves per-section roll suffixes. It is satisfied by
// *repositories.RollSequence.
type RollAllocator interface {
	ReserveNext(ctx context.Context, section string) (int, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo StudentStore
	rollSeq     RollAllocator
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo StudentStore,
	rollSeq RollAllocator,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		rollSeq:     rollSeq,
		logger:      logger,
	}
}

// Enroll creates a new student with a freshly allocated roll number and a
// derived access key. Each attempt reserves a suffix through the atomic
// sequence, then relies on the unique constraint on roll as the final check;
// a constraint hit reserves again rather than reusing the suffix.
func (s *studentServiceImpl) Enroll(ctx context.Context, req *dto.EnrollStudentRequest) (*models.Student, error) {
	if !validation.IsValidName(req.Name) {
		return nil, apperrors.NewBadRequestError("student name must be between 2 and 100 characters")
	}
	if !validation.IsValidSection(req.Section) || req.Section == models.SectionAll {
		return nil, apperrors.NewBadRequestError("invalid section code")
	}

	for attempt := 0; attempt < maxRollAllocationRetries; attempt++ {
		suffix, err := s.rollSeq.ReserveNext(ctx, req.Section)
		if err != nil {
			return nil, fmt.Errorf("error allocating roll number: %w", err)
		}

		student := &models.Student{
			Roll:        repositories.FormatRoll(req.Section, suffix),
			Name:        req.Name,
			Section:     req.Section,
			ParentPhone: req.ParentPhone,
			Key:         accesskey.Generate(req.Name, req.Section),
			Fees:        models.FeeStatusDue,
		}

		err = s.studentRepo.Create(ctx, student)
		if err == nil {
			s.logger.Info().
				Str("roll", student.Roll).
				Str("section", student.Section).
				Msg("Student enrolled")
			return student, nil
		}

		if errors.Is(err, apperrors.ErrRollAlreadyExists) {
			s.logger.Warn().
				Str("roll", student.Roll).
				Int("attempt", attempt+1).
				Msg("Roll collision during enrollment, reserving a new suffix")
			continue
		}

		return nil, err
	}

	return nil, apperrors.ErrAllocationExhausted
}

// GetByRoll retrieves a student by roll number
func (s *studentServiceImpl) GetByRoll(ctx context.Context, roll string) (*models.Student, error) {
	return s.studentRepo.GetByRoll(ctx, roll)
}

// GetBySection retrieves all students in a section
func (s *studentServiceImpl) GetBySection(ctx context.Context, section string) ([]*models.Student, error) {
	return s.studentRepo.GetBySection(ctx, section)
}

// UpdateDetails updates a student's name and parent contact
func (s *studentServiceImpl) UpdateDetails(ctx context.Context, roll string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	return s.studentRepo.UpdateDetails(ctx, roll, req.Name, req.ParentPhone)
}

// MarkAttendance appends a status to the front of the history kept for the
// marker, creating it if absent, and persists the whole map back. The
// read-modify-write is not synchronized: concurrent marks for the same marker
// on the same student are resolved last-writer-wins, best effort.
func (s *studentServiceImpl) MarkAttendance(ctx context.Context, roll, markerID, status string) (*models.Student, error) {
	student, err := s.studentRepo.GetByRoll(ctx, roll)
	if err != nil {
		return nil, err
	}

	student.MarkAttendance(markerID, status)

	return s.studentRepo.UpdateAttendance(ctx, roll, student.Attendance)
}

// SetPerformance replaces the student's entire performance map in one write.
// Records are schema-free; their shape is not validated.
func (s *studentServiceImpl) SetPerformance(ctx context.Context, roll string, performance models.PerformanceMap) (*models.Student, error) {
	if performance == nil {
		performance = models.PerformanceMap{}
	}
	return s.studentRepo.UpdatePerformance(ctx, roll, performance)
}

// SetFeeStatus overwrites the student's fee flag. Setting the current value
// again is a no-op success.
func (s *studentServiceImpl) SetFeeStatus(ctx context.Context, roll string, status models.FeeStatus) (*models.Student, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidFeeStatus
	}
	return s.studentRepo.UpdateFees(ctx, roll, status)
}

// Delete removes a student by roll
func (s *studentServiceImpl) Delete(ctx context.Context, roll string) error {
	return s.studentRepo.Delete(ctx, roll)
}
