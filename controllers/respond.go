package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking-api/services"
	"hotel-booking-api/utils"
)

// respondServiceError translates a service failure into the wire contract.
// Anything not covered by a sentinel is an infrastructure failure and is
// reported generically.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		utils.JSONError(c, http.StatusBadRequest, "EMAIL_ALREADY_EXISTS")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "FORBIDDEN")
	case errors.Is(err, services.ErrHotelNotFound):
		utils.JSONError(c, http.StatusNotFound, "HOTEL_NOT_FOUND")
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "ROOM_NOT_FOUND")
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "BOOKING_NOT_FOUND")
	case errors.Is(err, services.ErrRoomExists):
		utils.JSONError(c, http.StatusBadRequest, "ROOM_ALREADY_EXISTS")
	case errors.Is(err, services.ErrInvalidDates):
		utils.JSONError(c, http.StatusBadRequest, "INVALID_DATES")
	case errors.Is(err, services.ErrOverCapacity):
		utils.JSONError(c, http.StatusBadRequest, "INVALID_CAPACITY")
	case errors.Is(err, services.ErrRoomNotAvailable):
		utils.JSONError(c, http.StatusConflict, "ROOM_NOT_AVAILABLE")
	case errors.Is(err, services.ErrAlreadyCancelled):
		utils.JSONError(c, http.StatusBadRequest, "ALREADY_CANCELLED")
	case errors.Is(err, services.ErrCancellationDeadline):
		utils.JSONError(c, http.StatusBadRequest, "CANCELLATION_DEADLINE_PASSED")
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
	}
}
