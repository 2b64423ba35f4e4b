package models

// Amenity is linked many-to-many with rooms through room_amenities.
type Amenity struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;uniqueIndex" json:"name"`
	IconClass string `gorm:"size:50;default:'fas fa-check'" json:"iconClass"`
}
