package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

// BlockingStatuses are the reservation states that occupy a room's calendar.
// Cancelled and completed stays never block a date range.
var BlockingStatuses = []string{ReservationStatusPending, ReservationStatusConfirmed}

func IsValidReservationStatus(s string) bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCancelled, ReservationStatusCompleted:
		return true
	}
	return false
}

type Reservation struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	RoomID uint `gorm:"index;column:room_id" json:"roomId"`

	GuestName  string `gorm:"size:200" json:"guestName"`
	GuestEmail string `gorm:"size:254" json:"guestEmail"`
	GuestPhone string `gorm:"size:20" json:"guestPhone,omitempty"`

	// DATE columns, always UTC midnight. The stay is the half-open
	// range [CheckInDate, CheckOutDate).
	CheckInDate  time.Time `gorm:"type:date;index" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"type:date;index" json:"checkOutDate"`

	NumberOfGuests  int             `gorm:"default:1" json:"numberOfGuests"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalPrice"`
	SpecialRequests string          `gorm:"type:text" json:"specialRequests,omitempty"`
	Status          string          `gorm:"size:20;default:'pending'" json:"status"`

	// Assigned exactly once at creation, never regenerated afterwards.
	ConfirmationCode string `gorm:"size:10;uniqueIndex" json:"confirmationCode"`

	CreatedAt time.Time `json:"createdAt"`

	Room Room `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"room,omitempty"`
}

// Nights returns the length of the stay in nights.
func (r *Reservation) Nights() int {
	return int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
}
