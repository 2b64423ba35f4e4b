// controllers/booking_controller.go
package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

// BookingRequest accepts both JSON and form submissions.
type BookingRequest struct {
	GuestName       string `json:"guest_name" form:"guest_name" binding:"required"`
	GuestEmail      string `json:"guest_email" form:"guest_email" binding:"required,email"`
	GuestPhone      string `json:"guest_phone" form:"guest_phone"`
	CheckInDate     string `json:"check_in_date" form:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" form:"check_out_date" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests" form:"number_of_guests"`
	SpecialRequests string `json:"special_requests" form:"special_requests"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	RoomSvc        *services.RoomService
	ReservationSvc *services.ReservationService
}

func NewBookingController(roomSvc *services.RoomService, reservationSvc *services.ReservationService) *BookingController {
	return &BookingController{RoomSvc: roomSvc, ReservationSvc: reservationSvc}
}

// bindingErrorMessage flattens validator output into a form-style message.
func bindingErrorMessage(err error) string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		fe := vErrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "email":
			return fmt.Sprintf("%s must be a valid email address", fe.Field())
		}
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
	return "Invalid request payload"
}

// GetHome (GET /)
// Top 3 available rooms by rating plus the room type list.
func (bc *BookingController) GetHome(c *gin.Context) {
	payload, err := bc.RoomSvc.Home(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] home payload: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load home page")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payload)
}

// SearchRooms (GET /rooms)
// Every filter is optional and they compose with AND. The date filter needs
// both check_in and check_out; unparseable or half-supplied dates skip the
// filter silently rather than failing the search.
func (bc *BookingController) SearchRooms(c *gin.Context) {
	var filters services.SearchFilters

	checkIn := c.Query("check_in")
	checkOut := c.Query("check_out")
	if checkIn != "" && checkOut != "" {
		ci, errIn := utils.ParseDate(checkIn)
		co, errOut := utils.ParseDate(checkOut)
		if errIn == nil && errOut == nil {
			filters.CheckIn = utils.PtrTime(ci)
			filters.CheckOut = utils.PtrTime(co)
		}
	}

	if v := c.Query("room_type"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			rt := uint(id)
			filters.RoomTypeID = &rt
		}
	}
	if v := c.Query("min_price"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filters.MinPrice = &d
		}
	}
	if v := c.Query("max_price"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filters.MaxPrice = &d
		}
	}
	if v := c.Query("guests"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Guests = &n
		}
	}

	rooms, err := bc.RoomSvc.Search(filters)
	if err != nil {
		log.Printf("[ERROR] room search: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to search rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"rooms": rooms, "count": len(rooms)})
}

// GetBookingForm (GET /rooms/:id/book)
// Room detail plus suggested dates: tomorrow for check-in, the day after
// for check-out.
func (bc *BookingController) GetBookingForm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room id")
		return
	}

	room, err := bc.RoomSvc.GetByID(uint(id))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room with ID %d not found.", id))
		return
	}

	defaultCheckIn, defaultCheckOut := utils.DefaultStayDates(time.Now())
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"room":            room,
		"defaultCheckIn":  defaultCheckIn,
		"defaultCheckOut": defaultCheckOut,
	})
}

// CreateReservation (POST /rooms/:id/book)
// Validates the submission, re-checks availability inside the booking
// transaction and returns the confirmed reservation with its code.
func (bc *BookingController) CreateReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room id")
		return
	}

	var req BookingRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	checkIn, errIn := utils.ParseDate(req.CheckInDate)
	checkOut, errOut := utils.ParseDate(req.CheckOutDate)
	if errIn != nil || errOut != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please enter valid dates.")
		return
	}

	reservation, err := bc.ReservationSvc.Create(services.CreateReservationInput{
		RoomID:          uint(id),
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room with ID %d not found.", id))
		case errors.Is(err, services.ErrRoomNotAvailable):
			utils.JSONError(c, http.StatusConflict, "Sorry, this room is not available for the selected dates.")
		case errors.Is(err, services.ErrInvalidDates):
			utils.JSONError(c, http.StatusBadRequest, "Please enter valid dates.")
		default:
			log.Printf("[ERROR] create reservation: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create reservation")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"reservation": reservation,
		"successUrl":  fmt.Sprintf("/reservations/%d/success", reservation.ID),
	})
}

// GetReservationSuccess (GET /reservations/:id/success)
// Confirmation display, including the confirmation code.
func (bc *BookingController) GetReservationSuccess(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	reservation, err := bc.ReservationSvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Reservation with ID %d not found.", id))
			return
		}
		log.Printf("[ERROR] load reservation %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load reservation")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"reservation": reservation,
		"nights":      reservation.Nights(),
	})
}
