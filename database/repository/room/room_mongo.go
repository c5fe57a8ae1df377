package roomRepo

import (
	"context"
	"fmt"
	"time"

	"aircnc/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a new instance of RoomRepository using MongoDB.
func NewMongoRoomRepo(client *mongo.Client, dbName string) RoomRepository {
	coll := client.Database(dbName).Collection("rooms")
	repo := &MongoRoomRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoRoomRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "host.email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves every room listing.
func (r *MongoRoomRepo) GetAll(ctx context.Context) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	defer cursor.Close(ctx)

	rooms := []models.Room{}
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}

// GetByID retrieves a single room by its hex object id.
func (r *MongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid room id %s: %w", id, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room with id %s: %w", id, err)
	}
	return &room, nil
}

// GetByHostEmail retrieves every room owned by the given host.
func (r *MongoRoomRepo) GetByHostEmail(ctx context.Context, email string) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"host.email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms for host %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	rooms := []models.Room{}
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}

// Create inserts a new room document.
func (r *MongoRoomRepo) Create(ctx context.Context, room models.Room) (*models.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, room)
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// Upsert replaces the listing fields of the room with the given id.
func (r *MongoRoomRepo) Upsert(ctx context.Context, id string, room models.Room) (*models.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid room id %s: %w", id, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// The incoming document must not carry its own _id into $set.
	room.ID = primitive.NilObjectID

	filter := bson.M{"_id": objID}
	update := bson.M{"$set": room}
	opts := options.Update().SetUpsert(true)

	res, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to update room with id %s: %w", id, err)
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

// Delete removes a room document by its id.
func (r *MongoRoomRepo) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid room id %s: %w", id, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete room with id %s: %w", id, err)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// SetBookedStatus flips the room's booked flag.
func (r *MongoRoomRepo) SetBookedStatus(ctx context.Context, id string, booked bool) (*models.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid room id %s: %w", id, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": objID}
	update := bson.M{"$set": bson.M{"booked": booked}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update status of room %s: %w", id, err)
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
