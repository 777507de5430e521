package serviceimpl

import (
	"context"
	"errors"

	"hotsprings/domain/dto"
	"hotsprings/domain/models"
	"hotsprings/domain/repositories"
	"hotsprings/domain/services"
	"hotsprings/pkg/apperrors"
)

type RegistryServiceImpl struct {
	tx repositories.TransactionManager
}

func NewRegistryService(tx repositories.TransactionManager) services.RegistryService {
	return &RegistryServiceImpl{tx: tx}
}

func (s *RegistryServiceImpl) SavePerson(ctx context.Context, view *dto.PersonView) (*dto.PersonView, error) {
	var saved *models.Person

	err := s.tx.Do(ctx, func(r repositories.Repositories) error {
		person, err := findOrCreatePerson(ctx, r, view)
		if err != nil {
			return err
		}

		dto.ApplyPersonView(person, view)
		if err := r.Persons.Save(ctx, person); err != nil {
			return err
		}

		// Reload so the response carries the generated id and the current
		// location set.
		saved, err = r.Persons.GetByID(ctx, person.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto.PersonToView(saved), nil
}

// findOrCreatePerson resolves the upsert target: nil id means create, which
// first checks the email is not already taken; non-nil id must exist.
func findOrCreatePerson(ctx context.Context, r repositories.Repositories, view *dto.PersonView) (*models.Person, error) {
	if view.ID == nil {
		existing, err := r.Persons.GetByEmail(ctx, view.Email)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.Conflict("skinny dipper with email %s already exists", view.Email)
		}
		return &models.Person{}, nil
	}
	return findPerson(ctx, r, *view.ID)
}

func findPerson(ctx context.Context, r repositories.Repositories, id uint) (*models.Person, error) {
	person, err := r.Persons.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("skinny dipper with ID=%d was not found", id)
	}
	if err != nil {
		return nil, err
	}
	return person, nil
}

func (s *RegistryServiceImpl) ListPersons(ctx context.Context) ([]dto.PersonView, error) {
	var persons []models.Person

	err := s.tx.ReadOnly(ctx, func(r repositories.Repositories) error {
		var err error
		persons, err = r.Persons.GetAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto.PersonsToViews(persons), nil
}

func (s *RegistryServiceImpl) GetPerson(ctx context.Context, id uint) (*dto.PersonView, error) {
	var person *models.Person

	err := s.tx.ReadOnly(ctx, func(r repositories.Repositories) error {
		var err error
		person, err = findPerson(ctx, r, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto.PersonToView(person), nil
}

func (s *RegistryServiceImpl) DeletePerson(ctx context.Context, id uint) error {
	return s.tx.Do(ctx, func(r repositories.Repositories) error {
		person, err := findPerson(ctx, r, id)
		if err != nil {
			return err
		}
		return r.Persons.Delete(ctx, person)
	})
}

func (s *RegistryServiceImpl) DeleteAllPersons(ctx context.Context) error {
	return apperrors.MethodNotAllowed("deleting all skinny dippers is not allowed")
}

func (s *RegistryServiceImpl) SaveLocation(ctx context.Context, ownerID uint, view *dto.LocationView) (*dto.LocationView, error) {
	var saved *models.Location

	err := s.tx.Do(ctx, func(r repositories.Repositories) error {
		owner, err := findPerson(ctx, r, ownerID)
		if err != nil {
			return err
		}

		// Unknown labels resolve to nothing and are dropped, not created.
		tags, err := r.Tags.GetByLabels(ctx, view.Tags)
		if err != nil {
			return err
		}

		location, err := findOrCreateLocation(ctx, r, view.ID)
		if err != nil {
			return err
		}

		dto.ApplyLocationView(location, view)
		location.PersonID = owner.ID

		if err := r.Locations.Save(ctx, location); err != nil {
			return err
		}

		// Appending through the join table wires both sides of the
		// many-to-many at once; tags already on the location stay.
		if err := r.Locations.AddTags(ctx, location, tags); err != nil {
			return err
		}

		saved, err = r.Locations.GetByID(ctx, location.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto.LocationToView(saved), nil
}

func findOrCreateLocation(ctx context.Context, r repositories.Repositories, id *uint) (*models.Location, error) {
	if id == nil {
		return &models.Location{}, nil
	}
	return findLocation(ctx, r, *id)
}

func findLocation(ctx context.Context, r repositories.Repositories, id uint) (*models.Location, error) {
	location, err := r.Locations.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("hot spring with ID=%d does not exist", id)
	}
	if err != nil {
		return nil, err
	}
	return location, nil
}

func (s *RegistryServiceImpl) GetLocation(ctx context.Context, ownerID, locationID uint) (*dto.LocationView, error) {
	var location *models.Location

	err := s.tx.ReadOnly(ctx, func(r repositories.Repositories) error {
		// Owner lookup validates existence before the ownership check.
		if _, err := findPerson(ctx, r, ownerID); err != nil {
			return err
		}

		var err error
		location, err = findLocation(ctx, r, locationID)
		if err != nil {
			return err
		}

		if location.PersonID != ownerID {
			return apperrors.IllegalState("hot spring with ID=%d is not owned by skinny dipper with ID=%d", locationID, ownerID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.LocationToView(location), nil
}
