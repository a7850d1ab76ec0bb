package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const BookingsColName = "bookings"

type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	ListBookings(ctx context.Context) ([]*Booking, error)
	ListBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]*Booking, error)
	UpdateBooking(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*Booking, error)
	DeleteBooking(ctx context.Context, id primitive.ObjectID) error
	BookingTrends(ctx context.Context) ([]BookingTrend, error)
	PopularRoomIDs(ctx context.Context, limit int) ([]primitive.ObjectID, error)
	CountBookings(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	OccupiedRoomCount(ctx context.Context, on time.Time) (int64, error)
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := col.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("error inserting booking: %v", err)
	}

	return booking, nil
}

func (mdb *MongodbRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var booking Booking
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding booking: %v", err)
	}
	return &booking, nil
}

func (mdb *MongodbRepo) ListBookings(ctx context.Context) ([]*Booking, error) {
	return mdb.findBookings(ctx, bson.M{})
}

func (mdb *MongodbRepo) ListBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]*Booking, error) {
	return mdb.findBookings(ctx, bson.M{"user": userID})
}

func (mdb *MongodbRepo) findBookings(ctx context.Context, filter bson.M) ([]*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []*Booking
	for cursor.Next(ctx) {
		var booking Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return bookings, nil
}

func (mdb *MongodbRepo) UpdateBooking(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Booking
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating booking: %v", err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting booking: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// BookingTrends groups bookings per calendar month with count and revenue,
// oldest month first.
func (mdb *MongodbRepo) BookingTrends(ctx context.Context) ([]BookingTrend, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m",
				"date":   "$created_at",
			}},
			"bookings": bson.M{"$sum": 1},
			"revenue":  bson.M{"$sum": "$total_price"},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating booking trends: %v", err)
	}
	defer cursor.Close(ctx)

	var trends []BookingTrend
	if err := cursor.All(ctx, &trends); err != nil {
		return nil, fmt.Errorf("error decoding booking trends: %v", err)
	}

	return trends, nil
}

// PopularRoomIDs ranks rooms by confirmed-or-later booking volume.
func (mdb *MongodbRepo) PopularRoomIDs(ctx context.Context, limit int) ([]primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"status": bson.M{"$in": []BookingStatus{BookingConfirmed, BookingCheckedIn, BookingCheckedOut}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$room",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"count": -1}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating popular rooms: %v", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding popular rooms: %v", err)
	}

	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

func (mdb *MongodbRepo) CountBookings(ctx context.Context) (int64, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting bookings: %v", err)
	}
	return count, nil
}

// TotalRevenue sums totalPrice over bookings that were actually paid for.
func (mdb *MongodbRepo) TotalRevenue(ctx context.Context) (float64, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"status": bson.M{"$in": []BookingStatus{BookingConfirmed, BookingCheckedIn, BookingCheckedOut}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": "$total_price"},
		}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("error aggregating revenue: %v", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("error decoding revenue: %v", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Revenue, nil
}

// OccupiedRoomCount counts distinct rooms with an active stay covering the
// given day.
func (mdb *MongodbRepo) OccupiedRoomCount(ctx context.Context, on time.Time) (int64, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{
		"status":    bson.M{"$in": []BookingStatus{BookingConfirmed, BookingCheckedIn}},
		"check_in":  bson.M{"$lte": on},
		"check_out": bson.M{"$gt": on},
	}

	ids, err := col.Distinct(ctx, "room", filter)
	if err != nil {
		return 0, fmt.Errorf("error counting occupied rooms: %v", err)
	}
	return int64(len(ids)), nil
}
