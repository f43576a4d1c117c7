package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunrk/schoolbeam/internal/app/models"
	"github.com/arjunrk/schoolbeam/internal/pkg/apperrors"
)

// MaterialRepository handles database operations for study materials
type MaterialRepository struct {
	db *pgxpool.Pool
}

// NewMaterialRepository creates a new material repository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// Create inserts a new material
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	query := `
		INSERT INTO materials (title, link, section)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, material.Title, material.Link, material.Section).Scan(&material.ID)
	if err != nil {
		return fmt.Errorf("error creating material: %w", err)
	}

	return nil
}

// GetBySection retrieves all materials shared with a section
func (r *MaterialRepository) GetBySection(ctx context.Context, section string) ([]*models.Material, error) {
	query := `
		SELECT id, title, link, section
		FROM materials
		WHERE section = $1
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query, section)
	if err != nil {
		return nil, fmt.Errorf("error retrieving materials: %w", err)
	}
	defer rows.Close()

	var materials []*models.Material
	for rows.Next() {
		var material models.Material
		if err := rows.Scan(&material.ID, &material.Title, &material.Link, &material.Section); err != nil {
			return nil, err
		}
		materials = append(materials, &material)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}

// Delete removes a material by ID
func (r *MaterialRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting material: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}

	return nil
}
