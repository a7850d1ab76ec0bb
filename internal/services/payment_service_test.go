package services

import (
	"context"
	"testing"

	"github.com/prajith-ops/Stayelo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newPaymentFixture(verifyOK bool) (*PaymentService, *fakeBookingRepo, *fakeRoomRepo, *fakeGateway) {
	bookingRepo := newFakeBookingRepo()
	roomRepo := newFakeRoomRepo()
	gateway := &fakeGateway{verifyOK: verifyOK}
	svc := NewPaymentService(gateway, NewBookingService(bookingRepo, roomRepo))
	return svc, bookingRepo, roomRepo, gateway
}

func TestCreateOrderConvertsToPaise(t *testing.T) {
	svc, _, _, gateway := newPaymentFixture(true)

	order, err := svc.CreateOrder(context.Background(), 1499.50)
	require.NoError(t, err)
	assert.Equal(t, int64(149950), gateway.lastAmount)
	assert.Equal(t, "INR", order.Currency)
	assert.NotEmpty(t, order.ID)
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	svc, _, _, gateway := newPaymentFixture(true)

	_, err := svc.CreateOrder(context.Background(), 0)
	assert.Error(t, err)
	assert.Zero(t, gateway.orders, "no gateway order for a rejected amount")
}

func TestVerifyPaymentConfirmsBooking(t *testing.T) {
	svc, bookingRepo, roomRepo, _ := newPaymentFixture(true)
	room := roomRepo.add(testRoom(2, 2000))

	in, out := stayDates(1, 3)
	booking := &models.Booking{
		User:     primitive.NewObjectID(),
		Room:     room.ID,
		CheckIn:  in,
		CheckOut: out,
		Guests:   2,
	}

	confirmed, err := svc.VerifyPayment(context.Background(), "order_1", "pay_1", "sig", booking)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)
	assert.Equal(t, "pay_1", confirmed.PaymentID)

	count, err := bookingRepo.CountBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestVerifyPaymentRejectsBadSignature(t *testing.T) {
	svc, bookingRepo, roomRepo, _ := newPaymentFixture(false)
	room := roomRepo.add(testRoom(2, 2000))

	in, out := stayDates(1, 3)
	booking := &models.Booking{
		User:     primitive.NewObjectID(),
		Room:     room.ID,
		CheckIn:  in,
		CheckOut: out,
		Guests:   2,
	}

	_, err := svc.VerifyPayment(context.Background(), "order_1", "pay_1", "forged", booking)
	assert.ErrorIs(t, err, ErrPaymentVerification)

	count, err := bookingRepo.CountBookings(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count, "a failed verification must not create a booking")
}

func TestVerifyPaymentRequiresAllFields(t *testing.T) {
	svc, _, _, _ := newPaymentFixture(true)

	_, err := svc.VerifyPayment(context.Background(), "order_1", "", "sig", &models.Booking{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrPaymentVerification)
}
