package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prajith-ops/Stayelo/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrCancelNotAllowed = errors.New("booking can no longer be cancelled")

type BookingService struct {
	bookingRepo models.BookingRepo
	roomRepo    models.RoomRepo
}

func NewBookingService(bookingRepo models.BookingRepo, roomRepo models.RoomRepo) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
	}
}

// CreateBooking records a PENDING booking. Payment verification is what
// moves it to CONFIRMED.
func (bs *BookingService) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	room, err := bs.validateStay(ctx, booking)
	if err != nil {
		return nil, err
	}

	booking.Status = models.BookingPending
	if booking.TotalPrice <= 0 {
		booking.TotalPrice = bs.priceFor(booking, room)
	}

	return bs.bookingRepo.CreateBooking(ctx, booking)
}

// ConfirmPaidBooking records a booking that has already cleared the payment
// gateway, carrying the gateway's payment identifier.
func (bs *BookingService) ConfirmPaidBooking(ctx context.Context, booking *models.Booking, paymentID string) (*models.Booking, error) {
	room, err := bs.validateStay(ctx, booking)
	if err != nil {
		return nil, err
	}

	booking.Status = models.BookingConfirmed
	booking.PaymentID = paymentID
	if booking.TotalPrice <= 0 {
		booking.TotalPrice = bs.priceFor(booking, room)
	}

	return bs.bookingRepo.CreateBooking(ctx, booking)
}

func (bs *BookingService) validateStay(ctx context.Context, booking *models.Booking) (*models.Room, error) {
	if booking.User.IsZero() {
		return nil, fmt.Errorf("user reference is required")
	}
	if booking.Room.IsZero() {
		return nil, fmt.Errorf("room reference is required")
	}
	if booking.Guests < 1 {
		return nil, fmt.Errorf("at least one guest is required")
	}
	if !booking.CheckIn.Before(booking.CheckOut) {
		return nil, fmt.Errorf("check-in must be before check-out")
	}
	if booking.CheckIn.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, fmt.Errorf("check-in cannot be in the past")
	}

	room, err := bs.roomRepo.GetRoomByID(ctx, booking.Room)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("room does not exist")
	}
	if err != nil {
		return nil, err
	}
	if booking.Guests > room.Capacity {
		return nil, fmt.Errorf("room sleeps at most %d guests", room.Capacity)
	}

	return room, nil
}

func (bs *BookingService) priceFor(booking *models.Booking, room *models.Room) float64 {
	nights := booking.Nights()
	if nights < 1 {
		nights = 1
	}
	return float64(nights) * room.Price
}

func (bs *BookingService) GetBooking(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return bs.bookingRepo.GetBookingByID(ctx, id)
}

func (bs *BookingService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return bs.bookingRepo.ListBookings(ctx)
}

func (bs *BookingService) ListBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error) {
	return bs.bookingRepo.ListBookingsByUser(ctx, userID)
}

func (bs *BookingService) UpdateBooking(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.Booking, error) {
	if len(update) == 0 {
		return nil, fmt.Errorf("no booking fields to update")
	}

	if raw, ok := update["status"]; ok {
		status, isString := raw.(string)
		if !isString || !models.BookingStatus(status).Valid() {
			return nil, fmt.Errorf("invalid booking status: %v", raw)
		}
		update["status"] = models.BookingStatus(status)
	}

	return bs.bookingRepo.UpdateBooking(ctx, id, update)
}

// CancelBooking refuses to regress a finished or already-cancelled stay.
func (bs *BookingService) CancelBooking(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, err := bs.bookingRepo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.CanCancel() {
		return nil, ErrCancelNotAllowed
	}

	return bs.bookingRepo.UpdateBooking(ctx, id, map[string]interface{}{
		"status": models.BookingCancelled,
	})
}

func (bs *BookingService) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	return bs.bookingRepo.DeleteBooking(ctx, id)
}

func (bs *BookingService) BookingTrends(ctx context.Context) ([]models.BookingTrend, error) {
	return bs.bookingRepo.BookingTrends(ctx)
}
