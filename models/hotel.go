package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	ID           string         `json:"id" gorm:"primaryKey;size:36"`
	OwnerID      string         `json:"owner_id" gorm:"index;size:36;not null"`
	Name         string         `json:"name" gorm:"size:200;not null"`
	City         string         `json:"city" gorm:"size:100;index;not null"`
	Country      string         `json:"country" gorm:"size:100;index;not null"`
	Description  *string        `json:"description" gorm:"type:text"`
	Amenities    datatypes.JSON `json:"amenities"`
	Rating       float64        `json:"rating" gorm:"default:0"`
	TotalReviews int            `json:"total_reviews" gorm:"default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	Owner User   `gorm:"foreignKey:OwnerID;references:ID" json:"-"`
	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}

func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
