package services

import (
	"context"

	"github.com/arjunrk/schoolbeam/internal/app/models"
	"github.com/arjunrk/schoolbeam/internal/app/repositories"
)

// ResourceService defines the interface for study materials and timetables.
// These are plain per-section collections with no cross-entity rules.
type ResourceService interface {
	CreateMaterial(ctx context.Context, material *models.Material) error
	GetMaterialsBySection(ctx context.Context, section string) ([]*models.Material, error)
	DeleteMaterial(ctx context.Context, id int64) error

	CreateTimetableEntry(ctx context.Context, entry *models.TimetableEntry) error
	GetTimetableBySection(ctx context.Context, section string) ([]*models.TimetableEntry, error)
	DeleteTimetableEntry(ctx context.Context, id int64) error
}

// resourceServiceImpl implements ResourceService
type resourceServiceImpl struct {
	materialRepo  *repositories.MaterialRepository
	timetableRepo *repositories.TimetableRepository
}

// NewResourceService creates a new ResourceService
func NewResourceService(
	materialRepo *repositories.MaterialRepository,
	timetableRepo *repositories.TimetableRepository,
) ResourceService {
	return &resourceServiceImpl{
		materialRepo:  materialRepo,
		timetableRepo: timetableRepo,
	}
}

// CreateMaterial shares a study material with a section
func (s *resourceServiceImpl) CreateMaterial(ctx context.Context, material *models.Material) error {
	return s.materialRepo.Create(ctx, material)
}

// GetMaterialsBySection retrieves a section's materials
func (s *resourceServiceImpl) GetMaterialsBySection(ctx context.Context, section string) ([]*models.Material, error) {
	return s.materialRepo.GetBySection(ctx, section)
}

// DeleteMaterial removes a material by ID
func (s *resourceServiceImpl) DeleteMaterial(ctx context.Context, id int64) error {
	return s.materialRepo.Delete(ctx, id)
}

// CreateTimetableEntry adds one timetable slot to a section
func (s *resourceServiceImpl) CreateTimetableEntry(ctx context.Context, entry *models.TimetableEntry) error {
	return s.timetableRepo.Create(ctx, entry)
}

// GetTimetableBySection retrieves a section's timetable
func (s *resourceServiceImpl) GetTimetableBySection(ctx context.Context, section string) ([]*models.TimetableEntry, error) {
	return s.timetableRepo.GetBySection(ctx, section)
}

// DeleteTimetableEntry removes a timetable entry by ID
func (s *resourceServiceImpl) DeleteTimetableEntry(ctx context.Context, id int64) error {
	return s.timetableRepo.Delete(ctx, id)
}
