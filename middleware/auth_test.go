package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hotel-booking-api/config"
	"hotel-booking-api/models"
)

var testSecret = []byte("test-secret")

func buildAuthApp(t *testing.T) (*gin.Engine, *models.User, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.OpenTestDatabase()
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	user := &models.User{Name: "Alice", Email: "alice@example.com", Password: "x", Role: models.RoleCustomer}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	r := gin.New()
	r.GET("/me", AuthRequired(db, testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUser(c).ID})
	})

	deleteUser := func() {
		if err := db.Delete(&models.User{}, "id = ?", user.ID).Error; err != nil {
			t.Fatalf("delete user: %v", err)
		}
	}
	return r, user, deleteUser
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func errorCode(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", resp.Body.String(), err)
	}
	return body.Error
}

func TestAuthRequired(t *testing.T) {
	r, user, deleteUser := buildAuthApp(t)

	token, err := GenerateToken(user, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Run("missing header", func(t *testing.T) {
		resp := get(r, "")
		if resp.Code != http.StatusUnauthorized || errorCode(t, resp) != "UNAUTHORIZED" {
			t.Errorf("status %d body %s", resp.Code, resp.Body.String())
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		resp := get(r, "Bearer nonsense")
		if resp.Code != http.StatusUnauthorized || errorCode(t, resp) != "INVALID_OR_EXPIRED_TOKEN" {
			t.Errorf("status %d body %s", resp.Code, resp.Body.String())
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		forged, err := GenerateToken(user, []byte("other-secret"))
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		resp := get(r, "Bearer "+forged)
		if resp.Code != http.StatusUnauthorized || errorCode(t, resp) != "INVALID_OR_EXPIRED_TOKEN" {
			t.Errorf("status %d body %s", resp.Code, resp.Body.String())
		}
	})

	t.Run("bearer form", func(t *testing.T) {
		resp := get(r, "Bearer "+token)
		if resp.Code != http.StatusOK {
			t.Errorf("status %d body %s", resp.Code, resp.Body.String())
		}
	})

	t.Run("raw token form", func(t *testing.T) {
		resp := get(r, token)
		if resp.Code != http.StatusOK {
			t.Errorf("status %d body %s", resp.Code, resp.Body.String())
		}
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		deleteUser()
		resp := get(r, "Bearer "+token)
		if resp.Code != http.StatusUnauthorized || errorCode(t, resp) != "INVALID_TOKEN" {
			t.Errorf("status %d body %s", resp.Code, resp.Body.String())
		}
	})
}
