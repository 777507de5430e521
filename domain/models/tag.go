package models

// Tag is a shared detail label ("mud", "sulfur", ...) attachable to many
// locations. Tags are never created through the API; they are resolved by
// label against the existing tag table.
type Tag struct {
	ID    uint   `gorm:"primaryKey"`
	Label string `gorm:"uniqueIndex;not null"`

	// Relations (inverse side of the join table)
	Locations []Location `gorm:"many2many:location_tags"`
}

func (Tag) TableName() string {
	return "details"
}
