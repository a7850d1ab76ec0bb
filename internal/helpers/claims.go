package helpers

import "github.com/golang-jwt/jwt/v5"

// Claims is the payload carried by tokens this API issues at login/signup.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Helper methods for role checking
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}

func (c *Claims) HasRole(role string) bool {
	return c.Role == role
}

func (c *Claims) IsOwner(userID string) bool {
	return c.UserID == userID
}

func (c *Claims) GetSafeRole() string {
	if c.Role == "" {
		return "user"
	}
	return c.Role
}
