package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/prajith-ops/Stayelo/internal/helpers"
	"github.com/prajith-ops/Stayelo/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoomService struct {
	roomRepo models.RoomRepo
	cld      *cloudinary.Cloudinary
}

func NewRoomService(roomRepo models.RoomRepo, cld *cloudinary.Cloudinary) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
		cld:      cld,
	}
}

func (rs *RoomService) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	if err := models.Validate.Struct(room); err != nil {
		return nil, err
	}

	images, err := rs.hostImages(ctx, room.Images)
	if err != nil {
		return nil, err
	}
	room.Images = images
	room.Available = true

	return rs.roomRepo.CreateRoom(ctx, room)
}

// hostImages pushes any locally referenced images to Cloudinary; entries
// that are already URLs pass through untouched.
func (rs *RoomService) hostImages(ctx context.Context, images []string) ([]string, error) {
	if rs.cld == nil || len(images) == 0 {
		return images, nil
	}

	var local, hosted []string
	for _, img := range images {
		if strings.HasPrefix(img, "http://") || strings.HasPrefix(img, "https://") {
			hosted = append(hosted, img)
			continue
		}
		local = append(local, img)
	}

	if len(local) > 0 {
		urls, err := helpers.UploadImages(ctx, rs.cld, local, helpers.RoomFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload room images: %v", err)
		}
		hosted = append(hosted, urls...)
	}

	return hosted, nil
}

func (rs *RoomService) GetRoom(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	return rs.roomRepo.GetRoomByID(ctx, id)
}

func (rs *RoomService) ListRooms(ctx context.Context, onlyAvailable bool) ([]*models.Room, error) {
	return rs.roomRepo.ListRooms(ctx, onlyAvailable)
}

func (rs *RoomService) SearchRooms(ctx context.Context, params models.RoomSearchParams) ([]*models.Room, error) {
	if params.Guests < 0 {
		return nil, fmt.Errorf("guests cannot be negative")
	}
	if !params.CheckIn.IsZero() && !params.CheckOut.IsZero() && !params.CheckIn.Before(params.CheckOut) {
		return nil, fmt.Errorf("check-in must be before check-out")
	}
	if params.PriceMin > 0 && params.PriceMax > 0 && params.PriceMin > params.PriceMax {
		return nil, fmt.Errorf("priceMin cannot exceed priceMax")
	}

	return rs.roomRepo.SearchRooms(ctx, params)
}

func (rs *RoomService) UpdateRoom(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.Room, error) {
	if len(update) == 0 {
		return nil, fmt.Errorf("no room fields to update")
	}

	return rs.roomRepo.UpdateRoom(ctx, id, update)
}

func (rs *RoomService) DeleteRoom(ctx context.Context, id primitive.ObjectID) error {
	return rs.roomRepo.DeleteRoom(ctx, id)
}
