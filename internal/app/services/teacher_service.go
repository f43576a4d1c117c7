package services

import (
	"context"

	"github.com/arjunrk/schoolbeam/internal/app/models"
	"github.com/arjunrk/schoolbeam/internal/app/repositories"
)

// TeacherService defines the interface for teacher lookup operations
type TeacherService interface {
	AuthenticateByPIN(ctx context.Context, pin string) (*models.Teacher, error)
	GetBySection(ctx context.Context, section string) ([]*models.Teacher, error)
}

// teacherServiceImpl implements TeacherService
type teacherServiceImpl struct {
	teacherRepo *repositories.TeacherRepository
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(teacherRepo *repositories.TeacherRepository) TeacherService {
	return &teacherServiceImpl{teacherRepo: teacherRepo}
}

// AuthenticateByPIN resolves a teacher by PIN. This is a capability check,
// not a login: no token or session state is created.
func (s *teacherServiceImpl) AuthenticateByPIN(ctx context.Context, pin string) (*models.Teacher, error) {
	return s.teacherRepo.GetByPIN(ctx, pin)
}

// GetBySection retrieves all teachers attached to a section
func (s *teacherServiceImpl) GetBySection(ctx context.Context, section string) ([]*models.Teacher, error) {
	return s.teacherRepo.GetBySection(ctx, section)
}
