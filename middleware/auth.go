package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"hotel-booking-api/models"
	"hotel-booking-api/utils"
)

const currentUserKey = "currentUser"

// Claims is the JWT payload issued at login.
type Claims struct {
	UserID string          `json:"id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 JWT for the user with a 24h expiry.
func GenerateToken(user *models.User, secret []byte) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// AuthRequired verifies the bearer credential and loads the identity it
// references. The Authorization header may carry the raw token or the
// "Bearer <token>" form. On success the user record is attached to the
// request context; handlers read it via CurrentUser and never touch the
// header again.
func AuthRequired(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED")
			c.Abort()
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "INVALID_OR_EXPIRED_TOKEN")
			c.Abort()
			return
		}

		// Token is valid but the subject may have been removed since it was
		// issued.
		var user models.User
		if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "INVALID_TOKEN")
			c.Abort()
			return
		}

		c.Set(currentUserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the identity attached by AuthRequired.
func CurrentUser(c *gin.Context) *models.User {
	val, _ := c.Get(currentUserKey)
	return val.(*models.User)
}
