package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotsprings/domain/models"
	"hotsprings/domain/repositories"
)

type PersonRepositoryImpl struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) repositories.PersonRepository {
	return &PersonRepositoryImpl{db: db}
}

func (r *PersonRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).
		Preload("Locations.Tags").
		Preload("Locations").
		First(&person, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepositoryImpl) GetAll(ctx context.Context) ([]models.Person, error) {
	var persons []models.Person
	err := r.db.WithContext(ctx).
		Preload("Locations.Tags").
		Preload("Locations").
		Find(&persons).Error
	return persons, err
}

func (r *PersonRepositoryImpl) Save(ctx context.Context, person *models.Person) error {
	return r.db.WithContext(ctx).Omit("Locations").Save(person).Error
}

func (r *PersonRepositoryImpl) Delete(ctx context.Context, person *models.Person) error {
	// Select(Associations) deletes owned locations (and their join rows)
	// regardless of whether the driver enforces ON DELETE CASCADE.
	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(person).Error
}

func (r *PersonRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Person{}).Count(&count).Error
	return count, err
}
