package repositories

import (
	"context"

	"hotsprings/domain/models"
)

type PersonRepository interface {
	// GetByID loads a person with their locations and each location's tags.
	GetByID(ctx context.Context, id uint) (*models.Person, error)
	GetByEmail(ctx context.Context, email string) (*models.Person, error)
	GetAll(ctx context.Context) ([]models.Person, error)
	// Save inserts when the primary key is zero, updates otherwise.
	Save(ctx context.Context, person *models.Person) error
	// Delete removes the person together with all locations they own.
	Delete(ctx context.Context, person *models.Person) error
	Count(ctx context.Context) (int64, error)
}
