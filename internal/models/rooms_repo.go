package models

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const RoomsColName = "rooms"

type RoomRepo interface {
	CreateRoom(ctx context.Context, room *Room) (*Room, error)
	GetRoomByID(ctx context.Context, id primitive.ObjectID) (*Room, error)
	ListRooms(ctx context.Context, onlyAvailable bool) ([]*Room, error)
	SearchRooms(ctx context.Context, params RoomSearchParams) ([]*Room, error)
	UpdateRoom(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*Room, error)
	DeleteRoom(ctx context.Context, id primitive.ObjectID) error
	ListRoomsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Room, error)
}

func (mdb *MongodbRepo) CreateRoom(ctx context.Context, room *Room) (*Room, error) {
	col, err := mdb.GetCollection(ctx, DbName, RoomsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if room.ID.IsZero() {
		room.ID = primitive.NewObjectID()
	}
	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	if _, err := col.InsertOne(ctx, room); err != nil {
		return nil, fmt.Errorf("error inserting room: %v", err)
	}

	return room, nil
}

func (mdb *MongodbRepo) GetRoomByID(ctx context.Context, id primitive.ObjectID) (*Room, error) {
	col, err := mdb.GetCollection(ctx, DbName, RoomsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var room Room
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding room: %v", err)
	}
	return &room, nil
}

func (mdb *MongodbRepo) ListRooms(ctx context.Context, onlyAvailable bool) ([]*Room, error) {
	filter := bson.M{}
	if onlyAvailable {
		filter["available"] = true
	}
	return mdb.findRooms(ctx, filter)
}

// SearchRooms filters rooms by destination/capacity/type/price, then drops
// rooms that already carry an active booking overlapping the requested stay.
// Availability here is informal: bookings are consulted in a second query,
// not transactionally.
func (mdb *MongodbRepo) SearchRooms(ctx context.Context, params RoomSearchParams) ([]*Room, error) {
	filter := roomSearchFilter(params)

	if !params.CheckIn.IsZero() && !params.CheckOut.IsZero() {
		booked, err := mdb.bookedRoomIDs(ctx, params.CheckIn, params.CheckOut)
		if err != nil {
			return nil, err
		}
		if len(booked) > 0 {
			filter["_id"] = bson.M{"$nin": booked}
		}
	}

	return mdb.findRooms(ctx, filter)
}

// roomSearchFilter builds the rooms query. The destination is quoted so
// user input matches literally instead of being interpreted as a pattern.
func roomSearchFilter(params RoomSearchParams) bson.M {
	filter := bson.M{"available": true}

	if params.Destination != "" {
		filter["location"] = bson.M{"$regex": regexp.QuoteMeta(params.Destination), "$options": "i"}
	}
	if params.Guests > 0 {
		filter["capacity"] = bson.M{"$gte": params.Guests}
	}
	if params.RoomType != "" {
		filter["type"] = params.RoomType
	}

	price := bson.M{}
	if params.PriceMin > 0 {
		price["$gte"] = params.PriceMin
	}
	if params.PriceMax > 0 {
		price["$lte"] = params.PriceMax
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	return filter
}

// bookedRoomIDs returns the rooms holding a non-cancelled booking whose
// [checkIn, checkOut) range overlaps the requested one.
func (mdb *MongodbRepo) bookedRoomIDs(ctx context.Context, checkIn, checkOut time.Time) ([]primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{
		"status":    bson.M{"$in": []BookingStatus{BookingPending, BookingConfirmed, BookingCheckedIn}},
		"check_in":  bson.M{"$lt": checkOut},
		"check_out": bson.M{"$gt": checkIn},
	}

	ids, err := col.Distinct(ctx, "room", filter)
	if err != nil {
		return nil, fmt.Errorf("error finding booked rooms: %v", err)
	}

	roomIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, ok := id.(primitive.ObjectID); ok {
			roomIDs = append(roomIDs, oid)
		}
	}
	return roomIDs, nil
}

func (mdb *MongodbRepo) UpdateRoom(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*Room, error) {
	col, err := mdb.GetCollection(ctx, DbName, RoomsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Room
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating room: %v", err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) DeleteRoom(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName, RoomsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting room: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) ListRoomsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Room, error) {
	if len(ids) == 0 {
		return []*Room{}, nil
	}
	return mdb.findRooms(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (mdb *MongodbRepo) findRooms(ctx context.Context, filter bson.M) ([]*Room, error) {
	col, err := mdb.GetCollection(ctx, DbName, RoomsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding rooms: %v", err)
	}
	defer cursor.Close(ctx)

	var rooms []*Room
	for cursor.Next(ctx) {
		var room Room
		if err := cursor.Decode(&room); err != nil {
			return nil, fmt.Errorf("error decoding room: %v", err)
		}
		rooms = append(rooms, &room)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return rooms, nil
}
