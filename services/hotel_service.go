package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-booking-api/models"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// HotelFilters narrows ListHotels. City and country are case-insensitive
// equality matches; the price bounds select hotels with at least one room in
// range.
type HotelFilters struct {
	City      string
	Country   string
	MinRating *float64
	MinPrice  *float64
	MaxPrice  *float64
}

// HotelSummary is a hotel row plus the derived minimum nightly price.
// MinPricePerNight is null for hotels with no rooms.
type HotelSummary struct {
	Hotel            models.Hotel
	MinPricePerNight *float64
}

// CreateHotel creates a hotel owned by the caller. Only OWNER users may
// create hotels. Amenities is pre-validated JSON (array or object); an empty
// value defaults to an empty array.
func (s *HotelService) CreateHotel(owner *models.User, name, city, country string, description *string, amenities []byte) (*models.Hotel, error) {
	if owner.Role != models.RoleOwner {
		return nil, ErrForbidden
	}

	if len(amenities) == 0 {
		amenities = []byte("[]")
	}

	hotel := models.Hotel{
		OwnerID:     owner.ID,
		Name:        strings.TrimSpace(name),
		City:        strings.TrimSpace(city),
		Country:     strings.TrimSpace(country),
		Description: description,
		Amenities:   datatypes.JSON(amenities),
	}

	if err := s.DB.Create(&hotel).Error; err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}
	return &hotel, nil
}

// CreateRoom adds a room to one of the caller's hotels. Room numbers are
// unique within a hotel; the composite unique index is the backstop for
// concurrent creates with the same number.
func (s *HotelService) CreateRoom(owner *models.User, hotelID, roomNumber, roomType string, pricePerNight float64, maxOccupancy int) (*models.Room, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, "id = ?", hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to look up hotel: %w", err)
	}

	if hotel.OwnerID != owner.ID {
		return nil, ErrForbidden
	}

	roomNumber = strings.TrimSpace(roomNumber)
	var existing models.Room
	err := s.DB.Where("hotel_id = ? AND room_number = ?", hotelID, roomNumber).First(&existing).Error
	if err == nil {
		return nil, ErrRoomExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing room: %w", err)
	}

	room := models.Room{
		HotelID:       hotelID,
		RoomNumber:    roomNumber,
		RoomType:      strings.TrimSpace(roomType),
		PricePerNight: pricePerNight,
		MaxOccupancy:  maxOccupancy,
	}

	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrRoomExists
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, nil
}

// ListHotels returns hotel summaries matching the filters. Result order is
// implementation-defined; callers must not depend on it.
func (s *HotelService) ListHotels(f HotelFilters) ([]HotelSummary, error) {
	q := s.DB.Model(&models.Hotel{}).Preload("Rooms")

	if f.City != "" {
		q = q.Where("LOWER(city) = LOWER(?)", f.City)
	}
	if f.Country != "" {
		q = q.Where("LOWER(country) = LOWER(?)", f.Country)
	}
	if f.MinRating != nil {
		q = q.Where("rating >= ?", *f.MinRating)
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		sub := "EXISTS (SELECT 1 FROM rooms WHERE rooms.hotel_id = hotels.id"
		args := []interface{}{}
		if f.MinPrice != nil {
			sub += " AND rooms.price_per_night >= ?"
			args = append(args, *f.MinPrice)
		}
		if f.MaxPrice != nil {
			sub += " AND rooms.price_per_night <= ?"
			args = append(args, *f.MaxPrice)
		}
		sub += ")"
		q = q.Where(sub, args...)
	}

	var hotels []models.Hotel
	if err := q.Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}

	summaries := make([]HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		summaries = append(summaries, HotelSummary{
			Hotel:            h,
			MinPricePerNight: minNightlyPrice(h.Rooms),
		})
	}
	return summaries, nil
}

// GetHotelByID returns a hotel with its full room list.
func (s *HotelService) GetHotelByID(hotelID string) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.Preload("Rooms").First(&hotel, "id = ?", hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to look up hotel: %w", err)
	}
	return &hotel, nil
}

func minNightlyPrice(rooms []models.Room) *float64 {
	if len(rooms) == 0 {
		return nil
	}
	min := rooms[0].PricePerNight
	for _, r := range rooms[1:] {
		if r.PricePerNight < min {
			min = r.PricePerNight
		}
	}
	return &min
}
