package controllers

import (
	"net/http"
	"strings"

	"hotel-booking/config"
	"hotel-booking/models"

	"github.com/gin-gonic/gin"
)

func GetAmenities(c *gin.Context) {
	var amenities []models.Amenity
	config.DB.Order("name").Find(&amenities)
	c.JSON(http.StatusOK, amenities)
}

func CreateAmenity(c *gin.Context) {
	var amenity models.Amenity
	if err := c.ShouldBindJSON(&amenity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amenity.Name = strings.TrimSpace(amenity.Name)
	if amenity.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if err := config.DB.Create(&amenity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, amenity)
}

func DeleteAmenity(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Delete(&models.Amenity{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "amenity not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Amenity deleted"})
}
