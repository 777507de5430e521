package services

import (
	"context"

	"hotsprings/domain/dto"
)

// RegistryService is the domain service over skinny dippers, hot springs and
// their shared details. Every write runs inside one all-or-nothing store
// transaction; failures surface as apperrors values.
type RegistryService interface {
	// SavePerson creates (nil view ID) or updates (non-nil view ID) a skinny
	// dipper. Creating with an email already in use fails with Conflict;
	// updating a missing id fails with NotFound.
	SavePerson(ctx context.Context, view *dto.PersonView) (*dto.PersonView, error)

	// ListPersons returns all skinny dippers in store order, each expanded
	// with their hot springs.
	ListPersons(ctx context.Context) ([]dto.PersonView, error)

	// GetPerson fails with NotFound when the id does not exist.
	GetPerson(ctx context.Context, id uint) (*dto.PersonView, error)

	// DeletePerson removes the skinny dipper and every hot spring they own.
	DeletePerson(ctx context.Context, id uint) error

	// DeleteAllPersons always fails with MethodNotAllowed; bulk deletion is
	// deliberately disallowed.
	DeleteAllPersons(ctx context.Context) error

	// SaveLocation creates or updates a hot spring under the given owner.
	// Detail labels with no matching tag row are silently dropped.
	SaveLocation(ctx context.Context, ownerID uint, view *dto.LocationView) (*dto.LocationView, error)

	// GetLocation fails with NotFound when either id is missing and with
	// IllegalState when the hot spring is not owned by the given owner.
	GetLocation(ctx context.Context, ownerID, locationID uint) (*dto.LocationView, error)
}
