package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking/controllers"
	"hotel-booking/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public booking flow and the admin console API.
func SetupRouter(
	bc *controllers.BookingController,
	arc *controllers.AdminReservationController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public booking flow
	r.GET("/", bc.GetHome)
	r.GET("/rooms", bc.SearchRooms)
	r.GET("/rooms/:id/book", bc.GetBookingForm)
	r.POST("/rooms/:id/book", bc.CreateReservation)
	r.GET("/reservations/:id/success", bc.GetReservationSuccess)

	// Admin console
	admin := r.Group("/api/admin")
	{
		roomTypes := admin.Group("/room-types")
		{
			roomTypes.GET("", controllers.GetRoomTypes)
			roomTypes.POST("", controllers.CreateRoomType)
			roomTypes.DELETE("/:id", controllers.DeleteRoomType)
		}

		amenities := admin.Group("/amenities")
		{
			amenities.GET("", controllers.GetAmenities)
			amenities.POST("", controllers.CreateAmenity)
			amenities.DELETE("/:id", controllers.DeleteAmenity)
		}

		rooms := admin.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.POST("", controllers.CreateRoom)
			rooms.PATCH("/:id", controllers.UpdateRoom)
			rooms.PUT("/:id", controllers.UpdateRoom)
			rooms.DELETE("/:id", controllers.DeleteRoom)
		}

		reservations := admin.Group("/reservations")
		{
			reservations.GET("", arc.GetReservations)

			// static route must stay ahead of /:id
			reservations.GET("/export", arc.ExportReservations)

			reservations.GET("/:id", arc.GetReservation)
			reservations.PATCH("/:id/status", arc.UpdateReservationStatus)
			reservations.DELETE("/:id", arc.DeleteReservation)
		}
	}

	return r
}
