package models

import "time"

// RoomType classifies accommodation units. Deleting a type removes its rooms.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	IconClass   string `gorm:"size:50;default:'fas fa-bed'" json:"iconClass"`

	CreatedAt time.Time `json:"createdAt"`

	// One-To-Many Relation: RoomType -> Rooms
	Rooms []Room `gorm:"foreignKey:RoomTypeID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
}
