package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-booking-api/middleware"
	"hotel-booking-api/models"
	"hotel-booking-api/services"
	"hotel-booking-api/utils"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

type createBookingRequest struct {
	RoomID       string `json:"roomId" binding:"required,uuid4"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Guests       int    `json:"guests" binding:"required,gt=0"`
}

type bookingResponse struct {
	ID           string               `json:"id"`
	UserID       string               `json:"userId"`
	RoomID       string               `json:"roomId"`
	HotelID      string               `json:"hotelId"`
	CheckInDate  time.Time            `json:"checkInDate"`
	CheckOutDate time.Time            `json:"checkOutDate"`
	Guests       int                  `json:"guests"`
	TotalPrice   float64              `json:"totalPrice"`
	Status       models.BookingStatus `json:"status"`
	BookingDate  time.Time            `json:"bookingDate"`
}

func formatBooking(b *models.Booking) bookingResponse {
	return bookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		RoomID:       b.RoomID,
		HotelID:      b.HotelID,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Guests:       b.Guests,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		BookingDate:  b.BookingDate,
	}
}

// CreateBooking handles POST /api/bookings.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, utils.FlattenValidationError(err))
		return
	}

	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, utils.FieldError("checkInDate", "invalid date"))
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, utils.FieldError("checkOutDate", "invalid date"))
		return
	}

	booking, err := bc.Service.CreateBooking(user, req.RoomID, checkIn, checkOut, req.Guests)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, formatBooking(booking))
}

// ListBookings handles GET /api/bookings with an optional status filter.
// Result order is implementation-defined.
func (bc *BookingController) ListBookings(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var status *models.BookingStatus
	if raw := c.Query("status"); raw != "" {
		switch models.BookingStatus(raw) {
		case models.BookingConfirmed, models.BookingCancelled:
			s := models.BookingStatus(raw)
			status = &s
		default:
			utils.JSONValidationError(c, http.StatusBadRequest, utils.FieldError("status", "status must be one of: CONFIRMED CANCELLED"))
			return
		}
	}

	details, err := bc.Service.ListBookings(user, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]gin.H, 0, len(details))
	for _, d := range details {
		b := d.Booking
		out = append(out, gin.H{
			"id":           b.ID,
			"roomId":       b.RoomID,
			"hotelId":      b.HotelID,
			"hotelName":    d.HotelName,
			"roomNumber":   d.RoomNumber,
			"roomType":     d.RoomType,
			"checkInDate":  b.CheckInDate,
			"checkOutDate": b.CheckOutDate,
			"guests":       b.Guests,
			"totalPrice":   b.TotalPrice,
			"status":       b.Status,
			"bookingDate":  b.BookingDate,
		})
	}

	utils.JSONSuccess(c, http.StatusOK, out)
}

// CancelBooking handles PUT /api/bookings/:bookingId/cancel.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	user := middleware.CurrentUser(c)

	bookingID := c.Param("bookingId")
	if uuid.Validate(bookingID) != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, utils.FieldError("bookingId", "invalid booking ID"))
		return
	}

	booking, err := bc.Service.CancelBooking(user, bookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"id":          booking.ID,
		"status":      booking.Status,
		"cancelledAt": booking.CancelledAt,
	})
}
