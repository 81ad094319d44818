// Package services holds the business logic behind the HTTP handlers. Each
// service wraps a *gorm.DB and reports failures through the sentinel errors
// below so controllers can translate them with errors.Is instead of matching
// on strings.
package services

import "errors"

var (
	// ErrEmailTaken is returned by Signup when the email is already registered.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// Login never reveals which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden means the identity is valid but lacks rights to the
	// resource (wrong role, not the owner, not the renter).
	ErrForbidden = errors.New("forbidden")

	ErrHotelNotFound   = errors.New("hotel not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrRoomExists is returned when a room number is already used within the
	// same hotel.
	ErrRoomExists = errors.New("room already exists")

	// ErrInvalidDates means check-in is not strictly in the future or
	// check-out is not strictly after check-in.
	ErrInvalidDates = errors.New("invalid dates")

	// ErrOverCapacity means the guest count exceeds the room's max occupancy.
	ErrOverCapacity = errors.New("guests exceed room capacity")

	// ErrRoomNotAvailable means a CONFIRMED booking overlaps the requested
	// date range.
	ErrRoomNotAvailable = errors.New("room not available")

	ErrAlreadyCancelled = errors.New("booking already cancelled")

	// ErrCancellationDeadline means less than 24 hours remain before check-in.
	ErrCancellationDeadline = errors.New("cancellation deadline passed")
)
