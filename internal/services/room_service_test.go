package services

import (
	"context"
	"testing"
	"time"

	"github.com/prajith-ops/Stayelo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchRoomsFiltersByDestinationAndCapacity(t *testing.T) {
	roomRepo := newFakeRoomRepo()
	goa := roomRepo.add(&models.Room{Name: "Beach Villa", Type: "villa", Price: 4000, Capacity: 4, Location: "Goa", Available: true})
	roomRepo.add(&models.Room{Name: "Goa Single", Type: "standard", Price: 1200, Capacity: 1, Location: "Goa", Available: true})
	roomRepo.add(&models.Room{Name: "Hill Cottage", Type: "cottage", Price: 2500, Capacity: 4, Location: "Munnar", Available: true})
	svc := NewRoomService(roomRepo, nil)

	rooms, err := svc.SearchRooms(context.Background(), models.RoomSearchParams{
		Destination: "goa",
		Guests:      2,
	})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, goa.ID, rooms[0].ID)
}

func TestSearchRoomsValidatesParams(t *testing.T) {
	svc := NewRoomService(newFakeRoomRepo(), nil)
	now := time.Now()

	tests := []struct {
		name   string
		params models.RoomSearchParams
	}{
		{"negative guests", models.RoomSearchParams{Guests: -1}},
		{"check-out before check-in", models.RoomSearchParams{CheckIn: now.AddDate(0, 0, 3), CheckOut: now.AddDate(0, 0, 1)}},
		{"inverted price range", models.RoomSearchParams{PriceMin: 500, PriceMax: 100}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SearchRooms(context.Background(), tc.params)
			assert.Error(t, err)
		})
	}
}

func TestCreateRoomValidatesAndMarksAvailable(t *testing.T) {
	roomRepo := newFakeRoomRepo()
	svc := NewRoomService(roomRepo, nil)

	_, err := svc.CreateRoom(context.Background(), &models.Room{Name: "No Price", Type: "suite", Capacity: 2, Location: "Goa"})
	assert.Error(t, err, "rooms without a price are rejected")

	created, err := svc.CreateRoom(context.Background(), &models.Room{
		Name:     "Deluxe Suite",
		Type:     "suite",
		Price:    3000,
		Capacity: 2,
		Location: "Goa",
		Images:   []string{"https://cdn.example.com/suite.jpg"},
	})
	require.NoError(t, err)
	assert.True(t, created.Available)
	assert.Equal(t, []string{"https://cdn.example.com/suite.jpg"}, created.Images)
}

func TestRecommendRanksPopularFirstThenBackfills(t *testing.T) {
	roomRepo := newFakeRoomRepo()
	first := roomRepo.add(&models.Room{Name: "Crowd Favourite", Type: "suite", Price: 3000, Capacity: 2, Location: "Goa", Available: true})
	second := roomRepo.add(&models.Room{Name: "Runner Up", Type: "standard", Price: 1800, Capacity: 2, Location: "Goa", Available: true})
	roomRepo.add(&models.Room{Name: "Quiet Cottage", Type: "cottage", Price: 2200, Capacity: 3, Location: "Munnar", Available: true})
	roomRepo.add(&models.Room{Name: "Closed Wing", Type: "suite", Price: 5000, Capacity: 2, Location: "Goa", Available: false})

	bookingRepo := newFakeBookingRepo()
	bookingRepo.popular = []primitive.ObjectID{second.ID, first.ID}

	svc := NewRecommendationService(bookingRepo, roomRepo)

	rooms, err := svc.Recommend(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, second.ID, rooms[0].ID, "popularity order wins")
	assert.Equal(t, first.ID, rooms[1].ID)
	for _, room := range rooms {
		assert.True(t, room.Available, "unavailable rooms are never recommended")
	}
}

func TestDashboardStats(t *testing.T) {
	roomRepo := newFakeRoomRepo()
	room := roomRepo.add(&models.Room{Name: "Deluxe Suite", Type: "suite", Price: 3000, Capacity: 2, Location: "Goa", Available: true})
	roomRepo.add(&models.Room{Name: "Standard", Type: "standard", Price: 1500, Capacity: 2, Location: "Goa", Available: true})

	userRepo := newFakeUserRepo()
	_, err := userRepo.CreateUser(context.Background(), &models.User{Name: "Asha", Email: "asha@example.com"})
	require.NoError(t, err)
	_, err = userRepo.CreateUser(context.Background(), &models.User{Name: "Root", Email: "root@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	bookingRepo := newFakeBookingRepo()
	_, err = bookingRepo.CreateBooking(context.Background(), &models.Booking{
		User:       primitive.NewObjectID(),
		Room:       room.ID,
		CheckIn:    time.Now().AddDate(0, 0, -1),
		CheckOut:   time.Now().AddDate(0, 0, 2),
		Guests:     2,
		Status:     models.BookingCheckedIn,
		TotalPrice: 9000,
	})
	require.NoError(t, err)

	svc := NewStatsService(bookingRepo, roomRepo, userRepo)
	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalBookings)
	assert.Equal(t, 1, stats.TotalCustomers, "admins are not customers")
	assert.Equal(t, 2, stats.TotalRooms)
	assert.Equal(t, 9000.0, stats.TotalRevenue)
	assert.Equal(t, int64(1), stats.OccupiedRooms)
	assert.Equal(t, 0.5, stats.OccupancyRate)
}
