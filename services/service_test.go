package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-booking/models"
)

// openTestDB gives each test its own in-memory SQLite database with the
// full schema migrated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.RoomType{}, &models.Amenity{}, &models.Room{}, &models.Reservation{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date fixture %q: %v", s, err)
	}
	return d
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal fixture %q: %v", s, err)
	}
	return d
}

func seedRoomType(t *testing.T, db *gorm.DB, name string) models.RoomType {
	t.Helper()
	rt := models.RoomType{Name: name}
	if err := db.Create(&rt).Error; err != nil {
		t.Fatalf("seed room type %q: %v", name, err)
	}
	return rt
}

type roomFixture struct {
	Name      string
	Price     string
	Capacity  int
	Rating    float64
	Available bool
	CreatedAt time.Time
}

func seedRoom(t *testing.T, db *gorm.DB, typeID uint, f roomFixture) models.Room {
	t.Helper()
	room := models.Room{
		Name:          f.Name,
		RoomTypeID:    typeID,
		PricePerNight: mustDecimal(t, f.Price),
		Capacity:      f.Capacity,
		Available:     f.Available,
		Rating:        f.Rating,
	}
	if !f.CreatedAt.IsZero() {
		room.CreatedAt = f.CreatedAt
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seed room %q: %v", f.Name, err)
	}
	return room
}

func seedReservation(t *testing.T, db *gorm.DB, roomID uint, checkIn, checkOut, status, code string) models.Reservation {
	t.Helper()
	res := models.Reservation{
		RoomID:           roomID,
		GuestName:        "Test Guest",
		GuestEmail:       "guest@example.com",
		CheckInDate:      mustDate(t, checkIn),
		CheckOutDate:     mustDate(t, checkOut),
		NumberOfGuests:   2,
		TotalPrice:       mustDecimal(t, "100.00"),
		Status:           status,
		ConfirmationCode: code,
	}
	if err := db.Create(&res).Error; err != nil {
		t.Fatalf("seed reservation %s..%s: %v", checkIn, checkOut, err)
	}
	return res
}
