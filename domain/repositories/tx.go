package repositories

import "context"

// Repositories bundles the three entity accessors bound to one database
// scope, so a service operation sees a consistent view of the store.
type Repositories struct {
	Persons   PersonRepository
	Locations LocationRepository
	Tags      TagRepository
}

// TransactionManager scopes service operations to the store's transactions.
type TransactionManager interface {
	// Do runs fn inside a single transaction: committed when fn returns nil,
	// rolled back in full otherwise.
	Do(ctx context.Context, fn func(r Repositories) error) error

	// ReadOnly runs fn against a read scope with no write transaction.
	ReadOnly(ctx context.Context, fn func(r Repositories) error) error
}
