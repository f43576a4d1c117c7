package seed

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/arjunrk/schoolbeam/internal/app/models"
	"github.com/arjunrk/schoolbeam/internal/app/repositories"
	"github.com/arjunrk/schoolbeam/internal/db"
)

// defaultTeachers is the staff roster installed on first boot. PINs are
// development credentials and are expected to be rotated in production.
var defaultTeachers = []models.Teacher{
	{Code: "T01", Name: "Mudit Jain", Subject: "Mathematics", PIN: "1234", Section: "12A", IsFeeManager: true},
	{Code: "T02", Name: "Hardik Sharma", Subject: "Physics", PIN: "5678", Section: "12A", IsFeeManager: false},
	{Code: "T03", Name: "Rajesh Kumar", Subject: "History", PIN: "1111", Section: "12B", IsFeeManager: true},
	{Code: "T04", Name: "Ananya Singh", Subject: "English", PIN: "2222", Section: "12B", IsFeeManager: false},
}

// CreateDefaultData installs the default teacher roster when the teachers
// table is empty. A non-empty table is left untouched so operator edits
// survive restarts.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	teacherRepo := repositories.NewTeacherRepository(database.Pool)

	count, err := teacherRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting teachers for seeding")
		return err
	}

	if count > 0 {
		lgr.Debug().Int64("count", count).Msg("Teachers already present, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding default teacher roster...")

	// All-or-nothing so a partial roster never survives a failed boot
	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, teacher := range defaultTeachers {
			_, err := tx.Exec(ctx,
				`INSERT INTO teachers (code, name, subject, pin, section, is_fee_manager)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				teacher.Code, teacher.Name, teacher.Subject, teacher.PIN, teacher.Section, teacher.IsFeeManager)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding default teachers")
		return err
	}

	lgr.Info().Int("count", len(defaultTeachers)).Msg("Default teacher roster seeded")
	return nil
}
