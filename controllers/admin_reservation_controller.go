// controllers/admin_reservation_controller.go
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
	"github.com/xuri/excelize/v2"
)

type UpdateReservationStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type AdminReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewAdminReservationController(svc *services.ReservationService) *AdminReservationController {
	return &AdminReservationController{ReservationSvc: svc}
}

// GetReservations (GET /api/admin/reservations)
// Optional filters: status, room_id, code (confirmation code lookup).
func (ac *AdminReservationController) GetReservations(c *gin.Context) {
	filters := services.ListFilters{
		Status:           c.Query("status"),
		ConfirmationCode: c.Query("code"),
	}
	if v := c.Query("room_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid room_id")
			return
		}
		roomID := uint(id)
		filters.RoomID = &roomID
	}

	list, err := ac.ReservationSvc.List(filters)
	if err != nil {
		log.Printf("[ERROR] listing reservations: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list reservations")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetReservation (GET /api/admin/reservations/:id)
func (ac *AdminReservationController) GetReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	res, err := ac.ReservationSvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Reservation with ID %d not found.", id))
			return
		}
		log.Printf("[ERROR] load reservation %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load reservation")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// UpdateReservationStatus (PATCH /api/admin/reservations/:id/status)
// Status transitions are the only mutation the admin flow supports.
func (ac *AdminReservationController) UpdateReservationStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	var payload UpdateReservationStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	res, err := ac.ReservationSvc.UpdateStatus(uint(id), payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("Invalid status %q", payload.Status))
		case errors.Is(err, services.ErrReservationNotFound):
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Reservation with ID %d not found.", id))
		default:
			log.Printf("[ERROR] update reservation %d status: %v", id, err)
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update reservation")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// DeleteReservation (DELETE /api/admin/reservations/:id)
func (ac *AdminReservationController) DeleteReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	if err := ac.ReservationSvc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Reservation with ID %d not found.", id))
			return
		}
		log.Printf("[ERROR] delete reservation %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete reservation")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Reservation deleted"})
}

// ExportReservations (GET /api/admin/reservations/export)
// Streams an xlsx of reservations checking in between ?from and ?to
// (defaults to the current month).
func (ac *AdminReservationController) ExportReservations(c *gin.Context) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	if v := c.Query("from"); v != "" {
		parsed, err := utils.ParseDate(v)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid from date")
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := utils.ParseDate(v)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid to date")
			return
		}
		to = parsed
	}

	list, err := ac.ReservationSvc.ListByStayWindow(from, to)
	if err != nil {
		log.Printf("[ERROR] export reservations: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to export reservations")
		return
	}

	f := excelize.NewFile()
	sheet := "Reservations"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"ConfirmationCode", "GuestName", "GuestEmail", "GuestPhone",
		"Room", "CheckIn", "CheckOut", "Nights", "Guests",
		"TotalPrice", "Status", "CreatedAt",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, res := range list {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), res.ConfirmationCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), res.GuestName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), res.GuestEmail)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), res.GuestPhone)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), res.Room.Name)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), res.CheckInDate.Format(utils.DateLayout))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), res.CheckOutDate.Format(utils.DateLayout))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), res.Nights())
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), res.NumberOfGuests)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), res.TotalPrice.StringFixed(2))
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), res.Status)
		f.SetCellValue(sheet, fmt.Sprintf("L%d", row), res.CreatedAt.Format(time.RFC3339))
	}

	filename := fmt.Sprintf("reservations_%s_%s.xlsx", from.Format(utils.DateLayout), to.Format(utils.DateLayout))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[ERROR] writing xlsx response: %v", err)
	}
}
