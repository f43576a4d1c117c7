package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunrk/schoolbeam/internal/app/models"
)

// AnnouncementRepository handles database operations for announcements.
// The table is append-only: announcements are never updated or deleted.
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create inserts a new announcement. The created_at timestamp is assigned by
// the database at write time and scanned back into the model.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	query := `
		INSERT INTO announcements (text, section)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, announcement.Text, announcement.Section).
		Scan(&announcement.ID, &announcement.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating announcement: %w", err)
	}

	return nil
}

// announcementsBySectionSQL builds the read query: rows targeted at the
// section or at "all", newest first. This query-time filter is the only
// section filtering in the system; the realtime broadcast is unfiltered.
func announcementsBySectionSQL(section string) (string, []interface{}, error) {
	return squirrel.
		Select("id", "text", "section", "created_at").
		From("announcements").
		Where(squirrel.Or{
			squirrel.Eq{"section": section},
			squirrel.Eq{"section": models.SectionAll},
		}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// GetBySection retrieves announcements targeted at the section or at "all",
// newest first.
func (r *AnnouncementRepository) GetBySection(ctx context.Context, section string) ([]*models.Announcement, error) {
	query, args, err := announcementsBySectionSQL(section)
	if err != nil {
		return nil, fmt.Errorf("error building announcement query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		var announcement models.Announcement
		if err := rows.Scan(
			&announcement.ID,
			&announcement.Text,
			&announcement.Section,
			&announcement.CreatedAt,
		); err != nil {
			return nil, err
		}
		announcements = append(announcements, &announcement)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return announcements, nil
}
