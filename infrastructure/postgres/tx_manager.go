package postgres

import (
	"context"

	"gorm.io/gorm"

	"hotsprings/domain/repositories"
)

// TxManager implements repositories.TransactionManager on a gorm database.
// Each Do call opens one transaction and hands the callback repositories
// bound to it, so a service operation commits or rolls back as a unit.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) repositories.TransactionManager {
	return &TxManager{db: db}
}

func (m *TxManager) Do(ctx context.Context, fn func(r repositories.Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(bindRepositories(tx))
	})
}

func (m *TxManager) ReadOnly(ctx context.Context, fn func(r repositories.Repositories) error) error {
	// Reads go straight to the pool; the store's default isolation is the
	// only guarantee list/get operations rely on.
	return fn(bindRepositories(m.db.WithContext(ctx)))
}

func bindRepositories(db *gorm.DB) repositories.Repositories {
	return repositories.Repositories{
		Persons:   NewPersonRepository(db),
		Locations: NewLocationRepository(db),
		Tags:      NewTagRepository(db),
	}
}
