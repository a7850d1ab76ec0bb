package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prajith-ops/Stayelo/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repo stand-ins for the Mongo-backed store.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, models.ErrDuplicateEmail
		}
	}
	user.BeforeCreate()
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) GetUserByResetToken(ctx context.Context, token string) (*models.User, error) {
	for _, u := range f.users {
		if u.ResetToken == token && token != "" {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	for key, value := range update {
		switch key {
		case "name":
			user.Name = value.(string)
		case "phone":
			user.Phone = value.(string)
		case "status":
			user.Status = value.(models.UserStatus)
		case "password":
			user.Password = value.(string)
		case "profile_pic":
			user.ProfilePic = value.(string)
		case "reset_token":
			user.ResetToken = value.(string)
		case "reset_token_expiry":
			user.ResetTokenExpiry = value.(time.Time)
		}
	}
	user.UpdatedAt = time.Now()
	return user, nil
}

func (f *fakeUserRepo) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.users[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) ListCustomers(ctx context.Context) ([]*models.User, error) {
	var customers []*models.User
	for _, u := range f.users {
		if u.Role != models.RoleAdmin {
			customers = append(customers, u)
		}
	}
	return customers, nil
}

type fakeRoomRepo struct {
	rooms map[primitive.ObjectID]*models.Room
	err   error
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[primitive.ObjectID]*models.Room)}
}

func (f *fakeRoomRepo) add(room *models.Room) *models.Room {
	if room.ID.IsZero() {
		room.ID = primitive.NewObjectID()
	}
	f.rooms[room.ID] = room
	return room
}

func (f *fakeRoomRepo) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.add(room), nil
}

func (f *fakeRoomRepo) GetRoomByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	room, ok := f.rooms[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return room, nil
}

func (f *fakeRoomRepo) ListRooms(ctx context.Context, onlyAvailable bool) ([]*models.Room, error) {
	var rooms []*models.Room
	for _, room := range f.rooms {
		if onlyAvailable && !room.Available {
			continue
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// SearchRooms mirrors the store-side filter contract: case-insensitive
// location match, capacity floor, optional type and price bounds.
func (f *fakeRoomRepo) SearchRooms(ctx context.Context, params models.RoomSearchParams) ([]*models.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	var rooms []*models.Room
	for _, room := range f.rooms {
		if !room.Available {
			continue
		}
		if params.Destination != "" &&
			!strings.Contains(strings.ToLower(room.Location), strings.ToLower(params.Destination)) {
			continue
		}
		if params.Guests > 0 && room.Capacity < params.Guests {
			continue
		}
		if params.RoomType != "" && room.Type != params.RoomType {
			continue
		}
		if params.PriceMin > 0 && room.Price < params.PriceMin {
			continue
		}
		if params.PriceMax > 0 && room.Price > params.PriceMax {
			continue
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (f *fakeRoomRepo) UpdateRoom(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return room, nil
}

func (f *fakeRoomRepo) DeleteRoom(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.rooms[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomRepo) ListRoomsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Room, error) {
	var rooms []*models.Room
	for _, id := range ids {
		if room, ok := f.rooms[id]; ok {
			rooms = append(rooms, room)
		}
	}
	return rooms, nil
}

type fakeBookingRepo struct {
	bookings map[primitive.ObjectID]*models.Booking
	popular  []primitive.ObjectID
	err      error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[primitive.ObjectID]*models.Booking)}
}

func (f *fakeBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.bookings[booking.ID] = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	var bookings []*models.Booking
	for _, b := range f.bookings {
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (f *fakeBookingRepo) ListBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error) {
	var bookings []*models.Booking
	for _, b := range f.bookings {
		if b.User == userID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (f *fakeBookingRepo) UpdateBooking(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if status, ok := update["status"]; ok {
		booking.Status = status.(models.BookingStatus)
	}
	booking.UpdatedAt = time.Now()
	return booking, nil
}

func (f *fakeBookingRepo) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.bookings[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) BookingTrends(ctx context.Context) ([]models.BookingTrend, error) {
	return nil, nil
}

func (f *fakeBookingRepo) PopularRoomIDs(ctx context.Context, limit int) ([]primitive.ObjectID, error) {
	if limit < len(f.popular) {
		return f.popular[:limit], nil
	}
	return f.popular, nil
}

func (f *fakeBookingRepo) CountBookings(ctx context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	for _, b := range f.bookings {
		switch b.Status {
		case models.BookingConfirmed, models.BookingCheckedIn, models.BookingCheckedOut:
			total += b.TotalPrice
		}
	}
	return total, nil
}

func (f *fakeBookingRepo) OccupiedRoomCount(ctx context.Context, on time.Time) (int64, error) {
	seen := make(map[primitive.ObjectID]bool)
	for _, b := range f.bookings {
		if b.Status != models.BookingConfirmed && b.Status != models.BookingCheckedIn {
			continue
		}
		if !b.CheckIn.After(on) && b.CheckOut.After(on) {
			seen[b.Room] = true
		}
	}
	return int64(len(seen)), nil
}

type fakeGateway struct {
	verifyOK   bool
	orders     int
	lastAmount int64
}

func (f *fakeGateway) CreateOrder(amountPaise int64, currency, receipt string) (*PaymentOrder, error) {
	f.orders++
	f.lastAmount = amountPaise
	return &PaymentOrder{
		ID:       fmt.Sprintf("order_%d", f.orders),
		Amount:   amountPaise,
		Currency: currency,
	}, nil
}

func (f *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return f.verifyOK
}
