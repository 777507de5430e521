package repositories

import (
	"context"

	"hotsprings/domain/models"
)

type LocationRepository interface {
	// GetByID loads a location with its owner and tags.
	GetByID(ctx context.Context, id uint) (*models.Location, error)
	GetAll(ctx context.Context) ([]models.Location, error)
	// Save inserts when the primary key is zero, updates otherwise.
	Save(ctx context.Context, location *models.Location) error
	// AddTags wires the given tags onto the location's tag set. Appending to
	// the join table keeps both sides of the many-to-many consistent.
	AddTags(ctx context.Context, location *models.Location, tags []models.Tag) error
	// Delete removes the location and its join-table rows; shared tags survive.
	Delete(ctx context.Context, location *models.Location) error
}
