package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors shared across repos so handlers can map store failures
// onto the HTTP taxonomy.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEmail = errors.New("email is already registered")
)

type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name" validate:"required"`
	Email            string             `bson:"email" json:"email" validate:"required,email"`
	Password         string             `bson:"password,omitempty" json:"-"`
	Phone            string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role             string             `bson:"role" json:"role"`
	Status           UserStatus         `bson:"status" json:"status"`
	ProfilePic       string             `bson:"profile_pic,omitempty" json:"profilePic,omitempty"`
	ResetToken       string             `bson:"reset_token,omitempty" json:"-"`
	ResetTokenExpiry time.Time          `bson:"reset_token_expiry,omitempty" json:"-"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsActive() bool {
	// Legacy documents without a status field count as active.
	return u.Status == UserActive || u.Status == ""
}
