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

const UsersColName = "users"

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByResetToken(ctx context.Context, token string) (*User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
	ListCustomers(ctx context.Context) ([]*User, error)
}

func (u *User) BeforeCreate() {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.Status == "" {
		u.Status = UserActive
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
}

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	col, err := mdb.GetCollection(ctx, DbName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	// Email is the natural key; refuse the insert when it is taken.
	count, err := col.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return nil, fmt.Errorf("error checking existing email: %v", err)
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	user.BeforeCreate()
	if _, err := col.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("error inserting user: %v", err)
	}

	return user, nil
}

func (mdb *MongodbRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	return mdb.findUser(ctx, bson.M{"_id": id})
}

func (mdb *MongodbRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return mdb.findUser(ctx, bson.M{"email": email})
}

func (mdb *MongodbRepo) GetUserByResetToken(ctx context.Context, token string) (*User, error) {
	return mdb.findUser(ctx, bson.M{"reset_token": token})
}

func (mdb *MongodbRepo) findUser(ctx context.Context, filter bson.M) (*User, error) {
	col, err := mdb.GetCollection(ctx, DbName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var user User
	err = col.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user: %v", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) UpdateUser(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*User, error) {
	col, err := mdb.GetCollection(ctx, DbName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated User
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating user: %v", err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DbName, UsersColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting user: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (mdb *MongodbRepo) ListCustomers(ctx context.Context) ([]*User, error) {
	col, err := mdb.GetCollection(ctx, DbName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"role": bson.M{"$ne": RoleAdmin}}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding customers: %v", err)
	}
	defer cursor.Close(ctx)

	var customers []*User
	for cursor.Next(ctx) {
		var user User
		if err := cursor.Decode(&user); err != nil {
			return nil, fmt.Errorf("error decoding customer: %v", err)
		}
		customers = append(customers, &user)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return customers, nil
}
