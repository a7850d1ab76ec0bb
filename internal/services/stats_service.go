package services

import (
	"context"
	"time"

	"github.com/prajith-ops/Stayelo/internal/models"
)

// DashboardStats backs the admin overview cards.
type DashboardStats struct {
	TotalBookings  int64   `json:"totalBookings"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalRooms     int     `json:"totalRooms"`
	TotalRevenue   float64 `json:"totalRevenue"`
	OccupiedRooms  int64   `json:"occupiedRooms"`
	OccupancyRate  float64 `json:"occupancyRate"`
}

type StatsService struct {
	bookingRepo models.BookingRepo
	roomRepo    models.RoomRepo
	userRepo    models.UserRepo
}

func NewStatsService(bookingRepo models.BookingRepo, roomRepo models.RoomRepo, userRepo models.UserRepo) *StatsService {
	return &StatsService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
	}
}

func (ss *StatsService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	bookings, err := ss.bookingRepo.CountBookings(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalBookings = bookings

	revenue, err := ss.bookingRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = revenue

	customers, err := ss.userRepo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalCustomers = len(customers)

	rooms, err := ss.roomRepo.ListRooms(ctx, false)
	if err != nil {
		return nil, err
	}
	stats.TotalRooms = len(rooms)

	occupied, err := ss.bookingRepo.OccupiedRoomCount(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	stats.OccupiedRooms = occupied
	if stats.TotalRooms > 0 {
		stats.OccupancyRate = float64(occupied) / float64(stats.TotalRooms)
	}

	return stats, nil
}
