package dto

// PersonView is the wire shape for a skinny dipper. A nil ID on input means
// create; a non-nil ID must reference an existing person.
type PersonView struct {
	ID    *uint  `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`

	// Locations owned by this person, summarized without a back-reference.
	Locations []LocationSummary `json:"hot_springs"`
}

// LocationSummary is a location as embedded inside its owner's view: all
// location fields except the owner itself, so serialization never cycles.
type LocationSummary struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	Longitude  float64  `json:"longitude"`
	Latitude   float64  `json:"latitude"`
	County     string   `json:"county"`
	Directions string   `json:"directions"`
	Tags       []string `json:"details"`
}
