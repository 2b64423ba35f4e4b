package config

import (
	"log"

	"hotel-booking/models"

	"github.com/shopspring/decimal"
)

// SeedDatabase inserts the demo catalogue. Every insert is get-or-create
// keyed by name, so repeated startups leave existing records untouched.
func SeedDatabase() {
	// ---------------- RoomTypes ----------------
	roomTypes := []models.RoomType{
		{Name: "Standard Room", Description: "Comfortable room with basic amenities", IconClass: "fas fa-bed"},
		{Name: "Deluxe Suite", Description: "Spacious suite with premium features", IconClass: "fas fa-couch"},
		{Name: "Family Room", Description: "Perfect for families with extra space", IconClass: "fas fa-home"},
		{Name: "Executive Suite", Description: "Luxury accommodation for business travelers", IconClass: "fas fa-briefcase"},
	}
	for i := range roomTypes {
		if err := DB.Where("name = ?", roomTypes[i].Name).FirstOrCreate(&roomTypes[i]).Error; err != nil {
			log.Printf("warning: failed to seed room type %s: %v", roomTypes[i].Name, err)
		}
	}

	// ---------------- Amenities ----------------
	amenities := []models.Amenity{
		{Name: "Free WiFi", IconClass: "fas fa-wifi"},
		{Name: "Air Conditioning", IconClass: "fas fa-snowflake"},
		{Name: "TV", IconClass: "fas fa-tv"},
		{Name: "Mini Bar", IconClass: "fas fa-wine-bottle"},
		{Name: "Room Service", IconClass: "fas fa-concierge-bell"},
		{Name: "Swimming Pool", IconClass: "fas fa-swimming-pool"},
		{Name: "Gym Access", IconClass: "fas fa-dumbbell"},
		{Name: "Breakfast Included", IconClass: "fas fa-utensils"},
	}
	for i := range amenities {
		if err := DB.Where("name = ?", amenities[i].Name).FirstOrCreate(&amenities[i]).Error; err != nil {
			log.Printf("warning: failed to seed amenity %s: %v", amenities[i].Name, err)
		}
	}

	typeByName := map[string]uint{}
	for _, rt := range roomTypes {
		typeByName[rt.Name] = rt.ID
	}

	// ---------------- Rooms ----------------
	rooms := []models.Room{
		{
			Name:          "Ocean View Room",
			RoomTypeID:    typeByName["Standard Room"],
			Description:   "Beautiful room with ocean view, perfect for couples.",
			PricePerNight: decimal.NewFromFloat(120.00),
			Capacity:      2,
			Available:     true,
			HasWifi:       true,
			HasTV:         true,
			HasAC:         true,
			Rating:        4.5,
		},
		{
			Name:          "Presidential Suite",
			RoomTypeID:    typeByName["Deluxe Suite"],
			Description:   "Luxurious suite with separate living area and jacuzzi.",
			PricePerNight: decimal.NewFromFloat(350.00),
			Capacity:      4,
			Available:     true,
			HasWifi:       true,
			HasTV:         true,
			HasAC:         true,
			HasBreakfast:  true,
			Rating:        4.8,
		},
		{
			Name:          "Family Deluxe",
			RoomTypeID:    typeByName["Family Room"],
			Description:   "Spacious room with two queen beds, ideal for families.",
			PricePerNight: decimal.NewFromFloat(200.00),
			Capacity:      6,
			Available:     true,
			HasWifi:       true,
			HasTV:         true,
			HasAC:         true,
			Rating:        4.3,
		},
	}

	var defaultAmenities []models.Amenity
	DB.Where("name IN ?", []string{"Free WiFi", "Air Conditioning", "TV"}).Find(&defaultAmenities)

	for i := range rooms {
		var count int64
		DB.Model(&models.Room{}).Where("name = ?", rooms[i].Name).Count(&count)
		if count > 0 {
			continue
		}

		if err := DB.Create(&rooms[i]).Error; err != nil {
			log.Printf("warning: failed to seed room %s: %v", rooms[i].Name, err)
			continue
		}
		if err := DB.Model(&rooms[i]).Association("Amenities").Replace(defaultAmenities); err != nil {
			log.Printf("warning: failed to attach amenities to %s: %v", rooms[i].Name, err)
		}
	}

	log.Println("Sample data ensured")
}
