package services

import (
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-booking-api/config"
	"hotel-booking-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenTestDatabase()
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: "$2a$10$REPLACED.BY.AUTH.TESTS.ONLY.x1y2z3a4b5c6d7e8f9g0h1i2j",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return &user
}

func createHotel(t *testing.T, db *gorm.DB, owner *models.User, name, city, country string) *models.Hotel {
	t.Helper()
	hotel := models.Hotel{
		OwnerID:   owner.ID,
		Name:      name,
		City:      city,
		Country:   country,
		Amenities: datatypes.JSON("[]"),
	}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("create hotel %s: %v", name, err)
	}
	return &hotel
}

func createRoom(t *testing.T, db *gorm.DB, hotel *models.Hotel, number string, price float64, occupancy int) *models.Room {
	t.Helper()
	room := models.Room{
		HotelID:       hotel.ID,
		RoomNumber:    number,
		RoomType:      "DOUBLE",
		PricePerNight: price,
		MaxOccupancy:  occupancy,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("create room %s: %v", number, err)
	}
	return &room
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
