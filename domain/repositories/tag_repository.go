package repositories

import (
	"context"

	"hotsprings/domain/models"
)

type TagRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	GetAll(ctx context.Context) ([]models.Tag, error)
	// GetByLabels is a bulk membership lookup: labels with no matching tag
	// simply produce no result. No ordering guarantee.
	GetByLabels(ctx context.Context, labels []string) ([]models.Tag, error)
	Save(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, tag *models.Tag) error
}
