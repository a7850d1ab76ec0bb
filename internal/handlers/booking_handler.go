package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prajith-ops/Stayelo/internal/models"
	"github.com/prajith-ops/Stayelo/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bookingRequest struct {
	Room     string  `json:"room" binding:"required"`
	CheckIn  string  `json:"checkIn" binding:"required"`
	CheckOut string  `json:"checkOut" binding:"required"`
	Guests   int     `json:"guests" binding:"required"`
	Total    float64 `json:"totalAmount"`
}

func (br *bookingRequest) toBooking(userID primitive.ObjectID) (*models.Booking, error) {
	roomID, err := primitive.ObjectIDFromHex(br.Room)
	if err != nil {
		return nil, errors.New("invalid room reference")
	}
	checkIn, err := parseDate(br.CheckIn)
	if err != nil {
		return nil, errors.New("invalid checkIn date")
	}
	checkOut, err := parseDate(br.CheckOut)
	if err != nil {
		return nil, errors.New("invalid checkOut date")
	}

	return &models.Booking{
		User:       userID,
		Room:       roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     br.Guests,
		TotalPrice: br.Total,
	}, nil
}

func CreateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid user ID in token"))
			return
		}

		var req bookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := req.toBooking(userID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := b.CreateBooking(c.Request.Context(), booking)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Booking created"))
	}
}

func GetBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		booking, err := b.GetBooking(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("booking not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		if !claims.IsAdmin() && !claims.IsOwner(booking.User.Hex()) {
			c.JSON(http.StatusForbidden, models.ErrorResponse("access denied"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, ""))
	}
}

func ListBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := b.ListBookings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		if bookings == nil {
			bookings = []*models.Booking{}
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

func ListUserBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		userID, ok := objectIDParam(c, "userId")
		if !ok {
			return
		}

		if !claims.IsAdmin() && !claims.IsOwner(userID.Hex()) {
			c.JSON(http.StatusForbidden, models.ErrorResponse("access denied"))
			return
		}

		bookings, err := b.ListBookingsByUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		if bookings == nil {
			bookings = []*models.Booking{}
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

// bookingUpdateFromJSON maps the API's edit payload onto stored field names.
// The JSON keys (checkIn, totalPrice) are not the bson keys (check_in,
// total_price), so a raw pass-through would write stray fields.
func bookingUpdateFromJSON(raw map[string]interface{}) (map[string]interface{}, error) {
	update := make(map[string]interface{}, len(raw))

	for key, value := range raw {
		switch key {
		case "status":
			update["status"] = value
		case "checkIn", "checkOut":
			s, ok := value.(string)
			if !ok {
				return nil, errors.New("invalid " + key + " date")
			}
			t, err := parseDate(s)
			if err != nil {
				return nil, errors.New("invalid " + key + " date")
			}
			if key == "checkIn" {
				update["check_in"] = t
			} else {
				update["check_out"] = t
			}
		case "guests":
			n, ok := value.(float64)
			if !ok || n < 1 {
				return nil, errors.New("guests must be a positive number")
			}
			update["guests"] = int(n)
		case "totalPrice":
			n, ok := value.(float64)
			if !ok || n <= 0 {
				return nil, errors.New("totalPrice must be a positive number")
			}
			update["total_price"] = n
		default:
			return nil, errors.New("unknown booking field: " + key)
		}
	}

	in, hasIn := update["check_in"].(time.Time)
	out, hasOut := update["check_out"].(time.Time)
	if hasIn && hasOut && !in.Before(out) {
		return nil, errors.New("check-in must be before check-out")
	}

	return update, nil
}

func UpdateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		var raw map[string]interface{}
		if err := c.ShouldBindJSON(&raw); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		update, err := bookingUpdateFromJSON(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := b.UpdateBooking(c.Request.Context(), id, update)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("booking not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking updated"))
	}
}

func CancelBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		booking, err := b.GetBooking(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("booking not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		if !claims.IsAdmin() && !claims.IsOwner(booking.User.Hex()) {
			c.JSON(http.StatusForbidden, models.ErrorResponse("access denied"))
			return
		}

		cancelled, err := b.CancelBooking(c.Request.Context(), id)
		if errors.Is(err, services.ErrCancelNotAllowed) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(cancelled, "Booking cancelled"))
	}
}

func DeleteBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		err := b.DeleteBooking(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("booking not found"))
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Booking deleted"))
	}
}

func BookingTrends(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		trends, err := b.BookingTrends(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		if trends == nil {
			trends = []models.BookingTrend{}
		}

		c.JSON(http.StatusOK, models.SuccessResponse(trends, ""))
	}
}

// VerifyPayment closes the payment loop: signature check against the
// gateway, then a CONFIRMED booking. A failed check creates nothing.
func VerifyPayment(p *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid user ID in token"))
			return
		}

		var req struct {
			OrderID     string  `json:"razorpay_order_id" binding:"required"`
			PaymentID   string  `json:"razorpay_payment_id" binding:"required"`
			Signature   string  `json:"razorpay_signature" binding:"required"`
			Room        string  `json:"room" binding:"required"`
			CheckIn     string  `json:"checkIn" binding:"required"`
			CheckOut    string  `json:"checkOut" binding:"required"`
			Guests      int     `json:"guests" binding:"required"`
			TotalAmount float64 `json:"totalAmount"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		br := bookingRequest{
			Room:     req.Room,
			CheckIn:  req.CheckIn,
			CheckOut: req.CheckOut,
			Guests:   req.Guests,
			Total:    req.TotalAmount,
		}
		booking, err := br.toBooking(userID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		confirmed, err := p.VerifyPayment(c.Request.Context(), req.OrderID, req.PaymentID, req.Signature, booking)
		if errors.Is(err, services.ErrPaymentVerification) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("payment verification failed"))
			return
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{
			Success: true,
			Message: "Payment verified",
			Data:    gin.H{"booking": confirmed},
		})
	}
}
