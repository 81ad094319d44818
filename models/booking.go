package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus is the closed set of booking states. A booking is created
// CONFIRMED and may transition to CANCELLED exactly once; it is never deleted.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID      string `json:"id" gorm:"primaryKey;size:36"`
	UserID  string `json:"user_id" gorm:"index;size:36;not null"`
	RoomID  string `json:"room_id" gorm:"index;size:36;not null"`
	HotelID string `json:"hotel_id" gorm:"index;size:36;not null"` // denormalized from Room for query convenience

	CheckInDate  time.Time     `json:"check_in_date" gorm:"not null"`
	CheckOutDate time.Time     `json:"check_out_date" gorm:"not null"` // exclusive: the check-out night is not charged
	Guests       int           `json:"guests" gorm:"not null"`
	TotalPrice   float64       `json:"total_price" gorm:"not null"` // frozen at creation, never recomputed
	Status       BookingStatus `json:"status" gorm:"size:20;index;not null;default:'CONFIRMED'"`
	BookingDate  time.Time     `json:"booking_date" gorm:"not null"` // contract: equals the check-in date
	CancelledAt  *time.Time    `json:"cancelled_at"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	User  User  `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Room  Room  `gorm:"foreignKey:RoomID;references:ID" json:"-"`
	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
