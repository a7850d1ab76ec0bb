package services

import (
	"context"
	"fmt"

	"github.com/prajith-ops/Stayelo/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultRecommendationLimit = 6

type RecommendationService struct {
	bookingRepo models.BookingRepo
	roomRepo    models.RoomRepo
}

func NewRecommendationService(bookingRepo models.BookingRepo, roomRepo models.RoomRepo) *RecommendationService {
	return &RecommendationService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
	}
}

// Recommend ranks rooms by confirmed-booking popularity, backfilling with
// other available rooms when booking history is thin.
func (rs *RecommendationService) Recommend(ctx context.Context, limit int) ([]*models.Room, error) {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	popular, err := rs.bookingRepo.PopularRoomIDs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank rooms: %v", err)
	}

	rooms, err := rs.roomRepo.ListRoomsByIDs(ctx, popular)
	if err != nil {
		return nil, err
	}

	// Restore popularity order; ListRoomsByIDs has no ordering guarantee.
	byID := make(map[primitive.ObjectID]*models.Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}
	ranked := make([]*models.Room, 0, limit)
	for _, id := range popular {
		if room, ok := byID[id]; ok && room.Available {
			ranked = append(ranked, room)
		}
	}

	if len(ranked) < limit {
		available, err := rs.roomRepo.ListRooms(ctx, true)
		if err != nil {
			return nil, err
		}
		seen := make(map[primitive.ObjectID]bool, len(ranked))
		for _, room := range ranked {
			seen[room.ID] = true
		}
		for _, room := range available {
			if len(ranked) >= limit {
				break
			}
			if !seen[room.ID] {
				ranked = append(ranked, room)
			}
		}
	}

	return ranked, nil
}
