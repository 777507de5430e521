package models

type Location struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Longitude  float64
	Latitude   float64
	County     string
	Directions string

	// Owner (required; a location cannot exist without its skinny dipper)
	PersonID uint   `gorm:"not null;index"`
	Person   Person `gorm:"foreignKey:PersonID"`

	// Relations
	Tags []Tag `gorm:"many2many:location_tags"`
}

func (Location) TableName() string {
	return "hot_springs"
}
