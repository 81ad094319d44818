package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Room struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	HotelID       string    `json:"hotel_id" gorm:"size:36;not null;uniqueIndex:idx_hotel_room_number"`
	RoomNumber    string    `json:"room_number" gorm:"size:20;not null;uniqueIndex:idx_hotel_room_number"`
	RoomType      string    `json:"room_type" gorm:"size:50;not null"`
	PricePerNight float64   `json:"price_per_night" gorm:"not null"`
	MaxOccupancy  int       `json:"max_occupancy" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
