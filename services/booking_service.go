package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-booking-api/models"
	"hotel-booking-api/utils"
)

// CancellationHours is the minimum lead time before check-in for a
// cancellation to be accepted.
const CancellationHours = 24

type BookingService struct {
	DB *gorm.DB

	// Now is the clock used for the "today" and deadline checks. Tests
	// override it; production code leaves the default.
	Now func() time.Time
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, Now: time.Now}
}

// BookingDetail joins a booking with the room and hotel display fields the
// listing endpoint returns.
type BookingDetail struct {
	Booking    models.Booking
	HotelName  string
	RoomNumber string
	RoomType   string
}

// CreateBooking books a room for the renter over the half-open interval
// [checkIn, checkOut). The overlap check and the insert run in one
// transaction that locks the room row first, so two concurrent requests for
// the same room serialize and cannot both pass the check.
func (s *BookingService) CreateBooking(renter *models.User, roomID string, checkIn, checkOut time.Time, guests int) (*models.Booking, error) {
	var booking models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		q := tx.Preload("Hotel")
		if tx.Dialector.Name() == "mysql" {
			// Serialize concurrent bookings per room. sqlite has no row
			// locks; its writers already serialize on the database lock.
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var room models.Room
		err := q.First(&room, "id = ?", roomID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to look up room: %w", err)
		}

		if room.Hotel.OwnerID == renter.ID {
			return ErrForbidden
		}

		today := utils.StartOfDay(s.Now())
		if !checkIn.After(today) {
			return ErrInvalidDates
		}
		if !checkOut.After(checkIn) {
			return ErrInvalidDates
		}

		if guests > room.MaxOccupancy {
			return ErrOverCapacity
		}

		// Half-open overlap: existing.check_in < new.check_out AND
		// existing.check_out > new.check_in. Only CONFIRMED rows block.
		var overlapping int64
		err = tx.Model(&models.Booking{}).
			Where("room_id = ? AND status = ?", room.ID, models.BookingConfirmed).
			Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
			Count(&overlapping).Error
		if err != nil {
			return fmt.Errorf("failed to check availability: %w", err)
		}
		if overlapping > 0 {
			return ErrRoomNotAvailable
		}

		nights := utils.NightCount(checkIn, checkOut)
		booking = models.Booking{
			UserID:       renter.ID,
			RoomID:       room.ID,
			HotelID:      room.HotelID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Guests:       guests,
			TotalPrice:   float64(nights) * room.PricePerNight,
			Status:       models.BookingConfirmed,
			// Contract: booking_date records the check-in date, not the
			// creation time.
			BookingDate: checkIn,
		}

		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// CancelBooking moves a CONFIRMED booking to CANCELLED. Only the renter may
// cancel, only once, and only while at least 24 hours remain before check-in.
func (s *BookingService) CancelBooking(renter *models.User, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}

	if booking.UserID != renter.ID {
		return nil, ErrForbidden
	}
	if booking.Status == models.BookingCancelled {
		return nil, ErrAlreadyCancelled
	}

	now := s.Now()
	if booking.CheckInDate.Sub(now).Hours() < CancellationHours {
		return nil, ErrCancellationDeadline
	}

	// The status guard makes the update atomic: a racing cancel that
	// committed after our read matches zero rows instead of rewriting
	// cancelled_at.
	res := s.DB.Model(&models.Booking{}).
		Where("id = ? AND status = ?", booking.ID, models.BookingConfirmed).
		Updates(map[string]interface{}{
			"status":       models.BookingCancelled,
			"cancelled_at": now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyCancelled
	}

	booking.Status = models.BookingCancelled
	booking.CancelledAt = &now
	return &booking, nil
}

// ListBookings returns the renter's bookings, optionally filtered to a single
// status, joined with room and hotel display fields. Order is
// implementation-defined.
func (s *BookingService) ListBookings(renter *models.User, status *models.BookingStatus) ([]BookingDetail, error) {
	q := s.DB.Preload("Room").Preload("Hotel").Where("user_id = ?", renter.ID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	details := make([]BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		details = append(details, BookingDetail{
			Booking:    b,
			HotelName:  b.Hotel.Name,
			RoomNumber: b.Room.RoomNumber,
			RoomType:   b.Room.RoomType,
		})
	}
	return details, nil
}
