package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories is the container for all application repositories
type Repositories struct {
	StudentRepository      *StudentRepository
	TeacherRepository      *TeacherRepository
	AnnouncementRepository *AnnouncementRepository
	MaterialRepository     *MaterialRepository
	TimetableRepository    *TimetableRepository
	RollSequence           *RollSequence
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(db),
		TeacherRepository:      NewTeacherRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		MaterialRepository:     NewMaterialRepository(db),
		TimetableRepository:    NewTimetableRepository(db),
		RollSequence:           NewRollSequence(db),
	}
}
