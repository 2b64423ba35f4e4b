// services/reservation_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-booking/models"
	"hotel-booking/utils"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomNotAvailable    = errors.New("room not available for the selected dates")
	ErrInvalidDates        = errors.New("check-out date must be after check-in date")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidStatus       = errors.New("invalid reservation status")
)

const (
	confirmationCodeLength = 8
	maxCodeRetries         = 5
)

// ReservationService wraps *gorm.DB for the booking flow and the
// administrative reservation lifecycle.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// CreateReservationInput carries validated booking-form data into Create.
type CreateReservationInput struct {
	RoomID          uint
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfGuests  int
	SpecialRequests string
}

// isDuplicateErr detects unique-index violations across drivers: typed 1062
// for MySQL, message match for SQLite (used by the test database).
func isDuplicateErr(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	return strings.Contains(err.Error(), "Duplicate entry") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// lockRoom loads the room row for update so two submissions racing for the
// same dates serialize on the check-then-insert. SQLite has no FOR UPDATE;
// its single writer covers the test database.
func lockRoom(tx *gorm.DB, roomID uint) (*models.Room, error) {
	q := tx
	if tx.Dialector.Name() == "mysql" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var room models.Room
	if err := q.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", roomID, err)
	}
	return &room, nil
}

// Create books a room. Inside one transaction it locks the room row,
// re-checks availability, prices the stay and inserts the reservation with
// status confirmed. A confirmation code collision triggers regeneration,
// never a failure surfaced to the guest.
func (s *ReservationService) Create(in CreateReservationInput) (*models.Reservation, error) {
	if !in.CheckOutDate.After(in.CheckInDate) {
		return nil, ErrInvalidDates
	}
	if in.NumberOfGuests < 1 {
		in.NumberOfGuests = 1
	}

	var created models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, in.RoomID)
		if err != nil {
			return err
		}
		if !room.Available {
			return ErrRoomNotAvailable
		}

		n, err := countOverlapping(tx, room.ID, in.CheckInDate, in.CheckOutDate)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrRoomNotAvailable
		}

		nights := utils.Nights(in.CheckInDate, in.CheckOutDate)
		total := utils.PriceFor(room.PricePerNight, nights)

		// insert with retries on confirmation code collision
		for attempt := 0; attempt < maxCodeRetries; attempt++ {
			code, gErr := utils.GenerateConfirmationCode(confirmationCodeLength)
			if gErr != nil {
				return fmt.Errorf("failed to generate confirmation code: %w", gErr)
			}

			created = models.Reservation{
				RoomID:           room.ID,
				GuestName:        in.GuestName,
				GuestEmail:       in.GuestEmail,
				GuestPhone:       in.GuestPhone,
				CheckInDate:      in.CheckInDate,
				CheckOutDate:     in.CheckOutDate,
				NumberOfGuests:   in.NumberOfGuests,
				TotalPrice:       total,
				SpecialRequests:  in.SpecialRequests,
				Status:           models.ReservationStatusConfirmed,
				ConfirmationCode: code,
			}
			err = tx.Create(&created).Error
			if err == nil {
				return nil
			}
			if !isDuplicateErr(err) {
				return fmt.Errorf("failed to create reservation: %w", err)
			}
		}
		return fmt.Errorf("confirmation code still colliding after %d attempts", maxCodeRetries)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID loads a reservation with its room and room type.
func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := s.DB.Preload("Room.RoomType").First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}
	return &res, nil
}

// ListFilters narrows the admin reservation listing.
type ListFilters struct {
	Status           string
	RoomID           *uint
	ConfirmationCode string
}

// List returns reservations newest first, optionally filtered.
func (s *ReservationService) List(f ListFilters) ([]models.Reservation, error) {
	q := s.DB.Preload("Room")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RoomID != nil {
		q = q.Where("room_id = ?", *f.RoomID)
	}
	if f.ConfirmationCode != "" {
		q = q.Where("confirmation_code = ?", utils.NormalizeConfirmationCode(f.ConfirmationCode))
	}

	var list []models.Reservation
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return list, nil
}

// UpdateStatus transitions a reservation. The confirmation code and stay
// dates are immutable here; status is the only field the admin flow mutates.
func (s *ReservationService) UpdateStatus(id uint, status string) (*models.Reservation, error) {
	if !models.IsValidReservationStatus(status) {
		return nil, ErrInvalidStatus
	}

	// Existence is checked separately: MySQL reports changed rows, not
	// matched rows, so a same-status update would look like a missing
	// record if we relied on RowsAffected.
	var existing models.Reservation
	if err := s.DB.Select("id").First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}

	err := s.DB.Model(&models.Reservation{}).Where("id = ?", id).Update("status", status).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation %d: %w", id, err)
	}
	return s.GetByID(id)
}

// Delete removes a reservation outright. Normal flows never do this; it
// exists for the admin console only.
func (s *ReservationService) Delete(id uint) error {
	res := s.DB.Delete(&models.Reservation{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete reservation %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// ListByStayWindow returns reservations whose check-in falls inside
// [from, to], oldest first. Used by the xlsx export.
func (s *ReservationService) ListByStayWindow(from, to time.Time) ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.Preload("Room").
		Where("check_in_date BETWEEN ? AND ?", from, to).
		Order("check_in_date").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for export: %w", err)
	}
	return list, nil
}

// CompleteFinishedStays marks confirmed reservations whose checkout date has
// passed as completed. Runs from the daily cron job.
func (s *ReservationService) CompleteFinishedStays(now time.Time) (int64, error) {
	today := now.UTC().Truncate(24 * time.Hour)
	res := s.DB.Model(&models.Reservation{}).
		Where("status = ? AND check_out_date <= ?", models.ReservationStatusConfirmed, today).
		Update("status", models.ReservationStatusCompleted)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to complete finished stays: %w", res.Error)
	}
	return res.RowsAffected, nil
}
