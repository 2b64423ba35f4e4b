package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"hotel-booking/config"
	"hotel-booking/models"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ----------------------------------------------------
// 1. Get Rooms (GET /api/admin/rooms)
// ----------------------------------------------------

func GetRooms(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.Preload("RoomType").Preload("Amenities").Order("created_at DESC").Find(&rooms).Error; err != nil {
		log.Printf("[ERROR] listing rooms: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Create Room (POST /api/admin/rooms)
// ----------------------------------------------------

// CreateRoomRequest mirrors Room for admin creation. The flag and capacity
// fields are pointers so an omitted field keeps its default while an
// explicit false or zero is stored as sent.
type CreateRoomRequest struct {
	Name          string           `json:"name"`
	RoomTypeID    uint             `json:"roomTypeId"`
	Description   string           `json:"description"`
	PricePerNight decimal.Decimal  `json:"pricePerNight"`
	Capacity      *int             `json:"capacity"`
	Available     *bool            `json:"available"`
	HasWifi       *bool            `json:"hasWifi"`
	HasTV         *bool            `json:"hasTv"`
	HasAC         *bool            `json:"hasAc"`
	HasBreakfast  bool             `json:"hasBreakfast"`
	Rating        float64          `json:"rating"`
	Images        datatypes.JSON   `json:"images"`
	Amenities     []models.Amenity `json:"amenities"`
}

func CreateRoom(c *gin.Context) {
	var req CreateRoomRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[ERROR] JSON binding (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	room := models.Room{
		Name:          strings.TrimSpace(req.Name),
		RoomTypeID:    req.RoomTypeID,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		Capacity:      2,
		Available:     true,
		HasWifi:       true,
		HasTV:         true,
		HasAC:         true,
		HasBreakfast:  req.HasBreakfast,
		Rating:        req.Rating,
		Images:        req.Images,
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Available != nil {
		room.Available = *req.Available
	}
	if req.HasWifi != nil {
		room.HasWifi = *req.HasWifi
	}
	if req.HasTV != nil {
		room.HasTV = *req.HasTV
	}
	if req.HasAC != nil {
		room.HasAC = *req.HasAC
	}

	if room.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Room name is required.",
		})
		return
	}

	if err := room.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	// Verify the referenced room type exists to avoid FK errors on insert
	if room.RoomTypeID != 0 {
		var rt models.RoomType
		if err := config.DB.First(&rt, room.RoomTypeID).Error; err != nil {
			log.Printf("[ERROR] invalid RoomTypeID provided: %v", room.RoomTypeID)
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid roomTypeId provided.",
			})
			return
		}
	}

	// Amenities arrive as a list of existing IDs; create the room first,
	// then attach the association rows.
	amenities := req.Amenities

	if result := config.DB.Omit("Amenities").Create(&room); result.Error != nil {
		log.Printf("[ERROR] DB error creating room: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
			"details": result.Error.Error(),
		})
		return
	}

	if len(amenities) > 0 {
		ids := make([]uint, 0, len(amenities))
		for _, a := range amenities {
			if a.ID != 0 {
				ids = append(ids, a.ID)
			}
		}
		var existing []models.Amenity
		if len(ids) > 0 {
			config.DB.Find(&existing, ids)
		}
		if err := config.DB.Model(&room).Association("Amenities").Replace(existing); err != nil {
			log.Printf("[ERROR] attaching amenities to room %d: %v", room.ID, err)
		}
		room.Amenities = existing
	}

	services.InvalidateHomeCache(c.Request.Context(), config.RedisClient)

	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// 3. Update Room (PATCH /api/admin/rooms/:id)
// ----------------------------------------------------

func UpdateRoom(c *gin.Context) {
	id := c.Param("id")
	var updateData map[string]interface{}

	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	// Protect immutable fields
	delete(updateData, "id")
	delete(updateData, "created_at")
	delete(updateData, "createdAt")
	delete(updateData, "updated_at")
	delete(updateData, "updatedAt")

	if v, ok := updateData["rating"]; ok {
		rating, isNum := v.(float64)
		if !isNum || rating < 0.0 || rating > 5.0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Rating must be between 0.0 and 5.0",
			})
			return
		}
	}

	for _, key := range []string{"pricePerNight", "price_per_night"} {
		v, ok := updateData[key]
		if !ok {
			continue
		}
		var price decimal.Decimal
		switch t := v.(type) {
		case float64:
			price = decimal.NewFromFloat(t)
		case string:
			parsed, err := decimal.NewFromString(t)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"status":  "error",
					"message": "Invalid pricePerNight",
				})
				return
			}
			price = parsed
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid pricePerNight",
			})
			return
		}
		if price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Price per night must not be negative",
			})
			return
		}
	}

	if v, ok := updateData["capacity"]; ok {
		capacity, isNum := v.(float64)
		if !isNum || capacity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Capacity must not be negative",
			})
			return
		}
	}

	// amenityIds replaces the full amenity set when present
	var amenityIDs []uint
	if raw, ok := updateData["amenityIds"]; ok {
		delete(updateData, "amenityIds")
		if list, isList := raw.([]interface{}); isList {
			for _, item := range list {
				if n, isNum := item.(float64); isNum {
					amenityIDs = append(amenityIDs, uint(n))
				}
			}
		}
	}

	var room models.Room
	if err := config.DB.First(&room, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Room with ID %s not found.", id),
		})
		return
	}

	if len(updateData) > 0 {
		if err := config.DB.Model(&room).Updates(updateData).Error; err != nil {
			log.Printf("[ERROR] update failed for room %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Update failed",
				"details": err.Error(),
			})
			return
		}
	}

	if amenityIDs != nil {
		var existing []models.Amenity
		if len(amenityIDs) > 0 {
			config.DB.Find(&existing, amenityIDs)
		}
		if err := config.DB.Model(&room).Association("Amenities").Replace(existing); err != nil {
			log.Printf("[ERROR] replacing amenities for room %s: %v", id, err)
		}
	}

	services.InvalidateHomeCache(c.Request.Context(), config.RedisClient)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Room updated successfully",
	})
}

// ----------------------------------------------------
// 4. Delete Room (DELETE /api/admin/rooms/:id)
// ----------------------------------------------------

func DeleteRoom(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.Room{})

	if result.Error != nil {
		log.Printf("[ERROR] DB error deleting room %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete room.",
		})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Room with ID %s not found.", id),
		})
		return
	}

	services.InvalidateHomeCache(c.Request.Context(), config.RedisClient)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Room deleted successfully",
	})
}
