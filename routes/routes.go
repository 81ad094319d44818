package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-booking-api/controllers"
	"hotel-booking-api/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the gin engine. Protected routes go
// through the auth middleware; validation happens inside each handler before
// any business logic runs.
func SetupRouter(
	db *gorm.DB,
	jwtSecret []byte,
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	bc *controllers.BookingController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthRequired(db, jwtSecret)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", ac.Signup)
			auth.POST("/login", ac.Login)
		}

		hotels := api.Group("/hotels")
		hotels.Use(authRequired)
		{
			hotels.POST("", hc.CreateHotel)
			hotels.GET("", hc.ListHotels)
			hotels.GET("/:hotelId", hc.GetHotelByID)
			hotels.POST("/:hotelId/rooms", hc.CreateRoom)
		}

		bookings := api.Group("/bookings")
		bookings.Use(authRequired)
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("", bc.ListBookings)
			bookings.PUT("/:bookingId/cancel", bc.CancelBooking)
		}
	}

	return r
}
