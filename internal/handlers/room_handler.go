package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prajith-ops/Stayelo/internal/models"
	"github.com/prajith-ops/Stayelo/internal/services"
)

func CreateRoom(r *services.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var room models.Room
		if err := c.ShouldBindJSON(&room); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := r.CreateRoom(c.Request.Context(), &room)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Room created successfully"))
	}
}

func ListRooms(r *services.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms, err := r.ListRooms(c.Request.Context(), false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		if rooms == nil {
			rooms = []*models.Room{}
		}

		c.JSON(http.StatusOK, models.SuccessResponse(rooms, ""))
	}
}

// PublicRooms lists available rooms without authentication, for the landing
// page.
func PublicRooms(r *services.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms, err := r.ListRooms(c.Request.Context(), true)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		if rooms == nil {
			rooms = []*models.Room{}
		}

		c.JSON(http.StatusOK, models.SuccessResponse(rooms, ""))
	}
}

func GetRoom(r *services.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		room, err := r.GetRoom(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("room not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(room, ""))
	}
}

func SearchRooms(r *services.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := models.RoomSearchParams{
			Destination: c.Query("destination"),
			RoomType:    c.Query("roomType"),
		}

		if raw := c.Query("guests"); raw != "" {
			guests, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid guests parameter"))
				return
			}
			params.Guests = guests
		}
		if raw := c.Query("checkIn"); raw != "" {
			t, err := parseDate(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid checkIn date"))
				return
			}
			params.CheckIn = t
		}
		if raw := c.Query("checkOut"); raw != "" {
			t, err := parseDate(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid checkOut date"))
				return
			}
			params.CheckOut = t
		}
		if raw := c.Query("priceMin"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid priceMin parameter"))
				return
			}
			params.PriceMin = v
		}
		if raw := c.Query("priceMax"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid priceMax parameter"))
				return
			}
			params.PriceMax = v
		}

		rooms, err := r.SearchRooms(c.Request.Context(), params)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		if rooms == nil {
			rooms = []*models.Room{}
		}

		c.JSON(http.StatusOK, models.SuccessResponse(rooms, ""))
	}
}

func UpdateRoom(r *services.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		var update map[string]interface{}
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		room, err := r.UpdateRoom(c.Request.Context(), id, update)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("room not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(room, "Room updated successfully"))
	}
}

func DeleteRoom(r *services.RoomService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		err := r.DeleteRoom(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("room not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Room deleted"))
	}
}
