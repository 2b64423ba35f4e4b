package controllers

import (
	"net/http"
	"strings"

	"hotel-booking/config"
	"hotel-booking/models"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

func GetRoomTypes(c *gin.Context) {
	var types []models.RoomType
	config.DB.Order("name").Find(&types)
	c.JSON(http.StatusOK, types)
}

func CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rt.Name = strings.TrimSpace(rt.Name)
	if rt.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if err := config.DB.Create(&rt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.InvalidateHomeCache(c.Request.Context(), config.RedisClient)
	c.JSON(http.StatusCreated, rt)
}

// DeleteRoomType removes a type and, through the FK constraint, every room
// of that type along with their reservations.
func DeleteRoomType(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Delete(&models.RoomType{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "room type not found"})
		return
	}

	services.InvalidateHomeCache(c.Request.Context(), config.RedisClient)
	c.JSON(http.StatusOK, gin.H{"message": "Room type deleted"})
}
