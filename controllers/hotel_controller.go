package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-booking-api/middleware"
	"hotel-booking-api/models"
	"hotel-booking-api/services"
	"hotel-booking-api/utils"
)

type HotelController struct {
	Service *services.HotelService
}

func NewHotelController(service *services.HotelService) *HotelController {
	return &HotelController{Service: service}
}

type createHotelRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	City        string          `json:"city" binding:"required,max=100"`
	Country     string          `json:"country" binding:"required,max=100"`
	Description *string         `json:"description" binding:"omitempty,max=2000"`
	Amenities   json.RawMessage `json:"amenities"`
}

// validAmenities accepts a JSON array or object. Absent (or null) amenities
// are valid and default to an empty array downstream.
func validAmenities(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	return trimmed[0] == '[' || trimmed[0] == '{'
}

type createRoomRequest struct {
	RoomNumber    string  `json:"roomNumber" binding:"required,max=20"`
	RoomType      string  `json:"roomType" binding:"required,max=50"`
	PricePerNight float64 `json:"pricePerNight" binding:"required,gt=0"`
	MaxOccupancy  int     `json:"maxOccupancy" binding:"required,gt=0"`
}

// hotelResponse is the external hotel shape. Creation timestamps are not part
// of the contract and are stripped.
type hotelResponse struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"ownerId"`
	Name         string          `json:"name"`
	City         string          `json:"city"`
	Country      string          `json:"country"`
	Description  *string         `json:"description"`
	Amenities    json.RawMessage `json:"amenities"`
	Rating       float64         `json:"rating"`
	TotalReviews int             `json:"totalReviews"`
}

type roomResponse struct {
	ID            string  `json:"id"`
	HotelID       string  `json:"hotelId"`
	RoomNumber    string  `json:"roomNumber"`
	RoomType      string  `json:"roomType"`
	PricePerNight float64 `json:"pricePerNight"`
	MaxOccupancy  int     `json:"maxOccupancy"`
}

func formatHotel(h *models.Hotel) hotelResponse {
	return hotelResponse{
		ID:           h.ID,
		OwnerID:      h.OwnerID,
		Name:         h.Name,
		City:         h.City,
		Country:      h.Country,
		Description:  h.Description,
		Amenities:    json.RawMessage(h.Amenities),
		Rating:       h.Rating,
		TotalReviews: h.TotalReviews,
	}
}

func formatRoom(r *models.Room) roomResponse {
	return roomResponse{
		ID:            r.ID,
		HotelID:       r.HotelID,
		RoomNumber:    r.RoomNumber,
		RoomType:      r.RoomType,
		PricePerNight: r.PricePerNight,
		MaxOccupancy:  r.MaxOccupancy,
	}
}

// CreateHotel handles POST /api/hotels.
func (hc *HotelController) CreateHotel(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req createHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, utils.FlattenValidationError(err))
		return
	}
	if !validAmenities(req.Amenities) {
		utils.JSONValidationError(c, http.StatusBadRequest, utils.FieldError("amenities", "amenities must be an array or an object"))
		return
	}
	amenities := bytes.TrimSpace(req.Amenities)
	if bytes.Equal(amenities, []byte("null")) {
		amenities = nil
	}

	hotel, err := hc.Service.CreateHotel(user, req.Name, req.City, req.Country, req.Description, amenities)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, formatHotel(hotel))
}

// CreateRoom handles POST /api/hotels/:hotelId/rooms.
func (hc *HotelController) CreateRoom(c *gin.Context) {
	user := middleware.CurrentUser(c)

	hotelID := c.Param("hotelId")
	if uuid.Validate(hotelID) != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, utils.FieldError("hotelId", "invalid hotel ID"))
		return
	}

	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, utils.FlattenValidationError(err))
		return
	}

	room, err := hc.Service.CreateRoom(user, hotelID, req.RoomNumber, req.RoomType, req.PricePerNight, req.MaxOccupancy)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, formatRoom(room))
}

// ListHotels handles GET /api/hotels with optional city/country/minRating/
// minPrice/maxPrice filters.
func (hc *HotelController) ListHotels(c *gin.Context) {
	filters := services.HotelFilters{
		City:    c.Query("city"),
		Country: c.Query("country"),
	}

	if raw := c.Query("minRating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 5 {
			utils.JSONValidationError(c, http.StatusBadRequest, utils.FieldError("minRating", "minRating must be a number between 0 and 5"))
			return
		}
		filters.MinRating = &v
	}
	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONValidationError(c, http.StatusBadRequest, utils.FieldError("minPrice", "minPrice must be a number"))
			return
		}
		filters.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONValidationError(c, http.StatusBadRequest, utils.FieldError("maxPrice", "maxPrice must be a number"))
			return
		}
		filters.MaxPrice = &v
	}

	summaries, err := hc.Service.ListHotels(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]gin.H, 0, len(summaries))
	for _, s := range summaries {
		h := s.Hotel
		out = append(out, gin.H{
			"id":               h.ID,
			"name":             h.Name,
			"description":      h.Description,
			"city":             h.City,
			"country":          h.Country,
			"amenities":        json.RawMessage(h.Amenities),
			"rating":           h.Rating,
			"totalReviews":     h.TotalReviews,
			"minPricePerNight": s.MinPricePerNight,
		})
	}

	utils.JSONSuccess(c, http.StatusOK, out)
}

// GetHotelByID handles GET /api/hotels/:hotelId.
func (hc *HotelController) GetHotelByID(c *gin.Context) {
	hotelID := c.Param("hotelId")
	if uuid.Validate(hotelID) != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, utils.FieldError("hotelId", "invalid hotel ID"))
		return
	}

	hotel, err := hc.Service.GetHotelByID(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	rooms := make([]roomResponse, 0, len(hotel.Rooms))
	for i := range hotel.Rooms {
		rooms = append(rooms, formatRoom(&hotel.Rooms[i]))
	}

	resp := gin.H{
		"id":           hotel.ID,
		"ownerId":      hotel.OwnerID,
		"name":         hotel.Name,
		"description":  hotel.Description,
		"city":         hotel.City,
		"country":      hotel.Country,
		"amenities":    json.RawMessage(hotel.Amenities),
		"rating":       hotel.Rating,
		"totalReviews": hotel.TotalReviews,
		"rooms":        rooms,
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}
