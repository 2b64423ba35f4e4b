package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:200" json:"name"`
	RoomTypeID  uint   `gorm:"index;column:room_type_id" json:"roomTypeId"`
	Description string `gorm:"type:text" json:"description"`

	// No gorm column defaults here: a default tag makes gorm drop the
	// zero value on insert, turning an explicit available=false or
	// capacity=0 into the default. Defaults live in the create handler.
	PricePerNight decimal.Decimal `gorm:"type:decimal(10,2)" json:"pricePerNight"`
	Capacity      int             `json:"capacity"`
	Available     bool            `json:"available"`

	// Room features
	HasWifi      bool    `json:"hasWifi"`
	HasTV        bool    `gorm:"column:has_tv" json:"hasTv"`
	HasAC        bool    `gorm:"column:has_ac" json:"hasAc"`
	HasBreakfast bool    `json:"hasBreakfast"`
	Rating       float64 `json:"rating"`

	// Image URLs stored as a JSON array
	Images datatypes.JSON `json:"images,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	RoomType  RoomType  `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
	Amenities []Amenity `gorm:"many2many:room_amenities" json:"amenities,omitempty"`
}

// Validate enforces the field invariants the database does not.
func (r *Room) Validate() error {
	if r.Rating < 0.0 || r.Rating > 5.0 {
		return fmt.Errorf("invalid rating: %.1f, must be between 0.0 and 5.0", r.Rating)
	}
	if r.PricePerNight.IsNegative() {
		return fmt.Errorf("invalid price per night: %s, must not be negative", r.PricePerNight)
	}
	if r.Capacity < 0 {
		return fmt.Errorf("invalid capacity: %d, must not be negative", r.Capacity)
	}
	return nil
}
