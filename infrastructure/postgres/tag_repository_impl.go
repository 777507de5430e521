package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotsprings/domain/models"
	"hotsprings/domain/repositories"
)

type TagRepositoryImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) repositories.TagRepository {
	return &TagRepositoryImpl{db: db}
}

func (r *TagRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepositoryImpl) GetAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).Find(&tags).Error
	return tags, err
}

func (r *TagRepositoryImpl) GetByLabels(ctx context.Context, labels []string) ([]models.Tag, error) {
	if len(labels) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	err := r.db.WithContext(ctx).Where("label IN ?", labels).Find(&tags).Error
	return tags, err
}

func (r *TagRepositoryImpl) Save(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Save(tag).Error
}

func (r *TagRepositoryImpl) Delete(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Delete(tag).Error
}
