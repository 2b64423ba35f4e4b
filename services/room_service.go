// services/room_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"hotel-booking/models"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RoomService wraps *gorm.DB for room queries: the availability engine and
// the search filter layer. RDB is optional and may be nil.
type RoomService struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewRoomService(db *gorm.DB, rdb *redis.Client) *RoomService {
	return &RoomService{DB: db, RDB: rdb}
}

// SearchFilters is built once at the HTTP boundary. Nil fields are no-ops;
// all present filters compose with AND. The date filter only activates when
// both CheckIn and CheckOut are set.
type SearchFilters struct {
	CheckIn    *time.Time
	CheckOut   *time.Time
	RoomTypeID *uint
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Guests     *int
}

// countOverlapping counts reservations blocking roomID for the half-open
// range [checkIn, checkOut). Two ranges [a,b) and [c,d) overlap iff
// b > c AND a < d, so back-to-back stays do not conflict.
func countOverlapping(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) (int64, error) {
	var n int64
	err := db.Model(&models.Reservation{}).
		Where("room_id = ? AND status IN ? AND check_out_date > ? AND check_in_date < ?",
			roomID, models.BlockingStatuses, checkIn, checkOut).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping reservations for room %d: %w", roomID, err)
	}
	return n, nil
}

// IsAvailable reports whether the room can be booked for [checkIn, checkOut).
// Both conditions are required: the manual available flag must be set AND no
// pending/confirmed reservation may overlap the range. Pure query, no writes.
func (s *RoomService) IsAvailable(room *models.Room, checkIn, checkOut time.Time) (bool, error) {
	if !room.Available {
		return false, nil
	}
	n, err := countOverlapping(s.DB, room.ID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// GetByID loads a room with its type and amenities.
func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").Preload("Amenities").First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// Search returns rooms with available=true matching every supplied filter,
// newest first. The date filter re-checks each candidate against the
// availability engine, mirroring the per-room walk of the booking flow.
func (s *RoomService) Search(f SearchFilters) ([]models.Room, error) {
	q := s.DB.Preload("RoomType").Preload("Amenities").Where("available = ?", true)

	if f.RoomTypeID != nil {
		q = q.Where("room_type_id = ?", *f.RoomTypeID)
	}
	if f.MinPrice != nil {
		q = q.Where("price_per_night >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price_per_night <= ?", *f.MaxPrice)
	}
	if f.Guests != nil {
		q = q.Where("capacity >= ?", *f.Guests)
	}

	var rooms []models.Room
	if err := q.Order("created_at DESC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to search rooms: %w", err)
	}

	if f.CheckIn != nil && f.CheckOut != nil {
		filtered := make([]models.Room, 0, len(rooms))
		for i := range rooms {
			ok, err := s.IsAvailable(&rooms[i], *f.CheckIn, *f.CheckOut)
			if err != nil {
				return nil, err
			}
			if ok {
				filtered = append(filtered, rooms[i])
			}
		}
		rooms = filtered
	}

	return rooms, nil
}

// Featured returns the top available rooms by rating.
func (s *RoomService) Featured(limit int) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("RoomType").
		Where("available = ?", true).
		Order("rating DESC").
		Limit(limit).
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load featured rooms: %w", err)
	}
	return rooms, nil
}

// RoomTypes lists every room type ordered by name.
func (s *RoomService) RoomTypes() ([]models.RoomType, error) {
	var types []models.RoomType
	if err := s.DB.Order("name").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to load room types: %w", err)
	}
	return types, nil
}

// HomePayload is the home page response body.
type HomePayload struct {
	FeaturedRooms []models.Room     `json:"featuredRooms"`
	RoomTypes     []models.RoomType `json:"roomTypes"`
}

const homeCacheTTL = 5 * time.Minute

// Home assembles the home payload, serving from Redis when configured.
func (s *RoomService) Home(ctx context.Context) (*HomePayload, error) {
	if s.RDB != nil {
		var cached HomePayload
		if err := GetFromRedis(ctx, s.RDB, HomeCacheKey, &cached); err != nil {
			log.Printf("[ERROR] home cache read: %v", err)
		} else if cached.FeaturedRooms != nil || cached.RoomTypes != nil {
			return &cached, nil
		}
	}

	featured, err := s.Featured(3)
	if err != nil {
		return nil, err
	}
	types, err := s.RoomTypes()
	if err != nil {
		return nil, err
	}

	payload := &HomePayload{FeaturedRooms: featured, RoomTypes: types}
	if s.RDB != nil {
		if err := SetToRedis(ctx, s.RDB, HomeCacheKey, payload, homeCacheTTL); err != nil {
			log.Printf("[ERROR] home cache write: %v", err)
		}
	}
	return payload, nil
}
