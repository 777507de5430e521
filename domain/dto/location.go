package dto

// LocationView is the wire shape for a hot spring. The owner collapses to an
// OwnerSummary and tags collapse to plain label strings; neither side ever
// re-embeds the other's collection.
type LocationView struct {
	ID         *uint   `json:"id"`
	Name       string  `json:"name" validate:"required"`
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
	County     string  `json:"county"`
	Directions string  `json:"directions"`

	Owner *OwnerSummary `json:"skinny_dipper,omitempty"`
	Tags  []string      `json:"details"`
}

// OwnerSummary is the minimal owner embedding: id, name and email only.
type OwnerSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
