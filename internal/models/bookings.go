package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingCheckedIn  BookingStatus = "CHECKED_IN"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
	BookingCancelled  BookingStatus = "CANCELLED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User       primitive.ObjectID `bson:"user" json:"user"`
	Room       primitive.ObjectID `bson:"room" json:"room"`
	CheckIn    time.Time          `bson:"check_in" json:"checkIn"`
	CheckOut   time.Time          `bson:"check_out" json:"checkOut"`
	Guests     int                `bson:"guests" json:"guests"`
	Status     BookingStatus      `bson:"status" json:"status"`
	TotalPrice float64            `bson:"total_price" json:"totalPrice"`
	PaymentID  string             `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// CanCancel reports whether cancellation is still a legal transition.
// A stay that has already ended, or a booking already cancelled, keeps
// its status.
func (b *Booking) CanCancel() bool {
	return b.Status != BookingCheckedOut && b.Status != BookingCancelled
}

// Nights returns the stay length in whole nights, minimum zero.
func (b *Booking) Nights() int {
	n := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// Overlaps reports whether two [checkIn, checkOut) ranges intersect.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// BookingTrend is one month's worth of bookings for the admin chart.
type BookingTrend struct {
	Month    string  `bson:"_id" json:"month"`
	Bookings int     `bson:"bookings" json:"bookings"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}
