package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotsprings/domain/models"
	"hotsprings/domain/repositories"
)

type LocationRepositoryImpl struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) repositories.LocationRepository {
	return &LocationRepositoryImpl{db: db}
}

func (r *LocationRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Location, error) {
	var location models.Location
	err := r.db.WithContext(ctx).
		Preload("Person").
		Preload("Tags").
		First(&location, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepositoryImpl) GetAll(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.WithContext(ctx).
		Preload("Person").
		Preload("Tags").
		Find(&locations).Error
	return locations, err
}

func (r *LocationRepositoryImpl) Save(ctx context.Context, location *models.Location) error {
	// Associations are managed explicitly (AddTags, PersonID); saving them
	// here would re-upsert the owner and tag rows.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(location).Error
}

func (r *LocationRepositoryImpl) AddTags(ctx context.Context, location *models.Location, tags []models.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(location).
		Omit("Tags.*").
		Association("Tags").
		Append(&tags)
}

func (r *LocationRepositoryImpl) Delete(ctx context.Context, location *models.Location) error {
	// Clears join-table rows but leaves the shared tags in place.
	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(location).Error
}
