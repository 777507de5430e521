package dto

import (
	"hotsprings/domain/models"
)

func PersonToView(person *models.Person) *PersonView {
	if person == nil {
		return nil
	}
	id := person.ID
	view := &PersonView{
		ID:        &id,
		Name:      person.Name,
		Email:     person.Email,
		Locations: make([]LocationSummary, 0, len(person.Locations)),
	}
	for i := range person.Locations {
		view.Locations = append(view.Locations, LocationToSummary(&person.Locations[i]))
	}
	return view
}

func PersonsToViews(persons []models.Person) []PersonView {
	views := make([]PersonView, 0, len(persons))
	for i := range persons {
		views = append(views, *PersonToView(&persons[i]))
	}
	return views
}

// LocationToSummary drops the owner entirely; the summary only ever appears
// inside that owner's own view.
func LocationToSummary(location *models.Location) LocationSummary {
	return LocationSummary{
		ID:         location.ID,
		Name:       location.Name,
		Longitude:  location.Longitude,
		Latitude:   location.Latitude,
		County:     location.County,
		Directions: location.Directions,
		Tags:       TagLabels(location.Tags),
	}
}

func LocationToView(location *models.Location) *LocationView {
	if location == nil {
		return nil
	}
	id := location.ID
	view := &LocationView{
		ID:         &id,
		Name:       location.Name,
		Longitude:  location.Longitude,
		Latitude:   location.Latitude,
		County:     location.County,
		Directions: location.Directions,
		Tags:       TagLabels(location.Tags),
	}
	if location.Person.ID != 0 {
		view.Owner = &OwnerSummary{
			ID:    location.Person.ID,
			Name:  location.Person.Name,
			Email: location.Person.Email,
		}
	}
	return view
}

// TagLabels collapses tag entities to their labels; the tag's own location
// set is never expanded.
func TagLabels(tags []models.Tag) []string {
	labels := make([]string, 0, len(tags))
	for _, tag := range tags {
		labels = append(labels, tag.Label)
	}
	return labels
}

// ApplyPersonView overwrites the mutable fields of a person from its view.
// The primary key is left alone: zero for a create, already correct for an
// update.
func ApplyPersonView(person *models.Person, view *PersonView) {
	person.Name = view.Name
	person.Email = view.Email
}

// ApplyLocationView overwrites the mutable fields of a location from its
// view, including the id when the view carries one.
func ApplyLocationView(location *models.Location, view *LocationView) {
	if view.ID != nil {
		location.ID = *view.ID
	}
	location.Name = view.Name
	location.Longitude = view.Longitude
	location.Latitude = view.Latitude
	location.County = view.County
	location.Directions = view.Directions
}
