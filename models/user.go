package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole defines the allowed roles in the system.
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleOwner    UserRole = "OWNER"
)

// NormalizeRole maps an already-validated role string to a closed enum
// value. "owner" in any casing becomes OWNER; the empty default and
// "customer" become CUSTOMER. Membership itself is checked at the input
// boundary before this runs.
func NormalizeRole(raw string) UserRole {
	if strings.EqualFold(strings.TrimSpace(raw), string(RoleOwner)) {
		return RoleOwner
	}
	return RoleCustomer
}

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:150;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never returned in JSON
	Role      UserRole  `json:"role" gorm:"size:20;not null;default:'CUSTOMER'"`
	Phone     *string   `json:"phone" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
