package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prajith-ops/Stayelo/internal/helpers"
	"github.com/prajith-ops/Stayelo/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentClaims pulls the authenticated caller out of the context. It writes
// the error response itself, so callers just return on !ok.
func currentClaims(c *gin.Context) (*helpers.Claims, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, false
	}

	claims, ok := userClaims.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return nil, false
	}

	return claims, true
}

// objectIDParam parses a path parameter as a Mongo ObjectID, replying 400 on
// a malformed id.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	raw := helpers.StringTrim(c.Param(name))
	if raw == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(name+" is required"))
		return primitive.NilObjectID, false
	}

	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid "+name+" format"))
		return primitive.NilObjectID, false
	}

	return id, true
}

// parseDate accepts both RFC3339 timestamps and bare YYYY-MM-DD dates, which
// the booking client sends interchangeably.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
