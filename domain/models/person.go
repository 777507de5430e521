package models

type Person struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"not null"`
	Email string `gorm:"uniqueIndex;not null"`

	// Relations
	Locations []Location `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
}

func (Person) TableName() string {
	return "skinny_dippers"
}
