package roomRepo

import (
	"context"

	"aircnc/models"
)

// RoomRepository defines data access methods for room listings.
type RoomRepository interface {
	GetAll(ctx context.Context) ([]models.Room, error)
	GetByID(ctx context.Context, id string) (*models.Room, error)
	GetByHostEmail(ctx context.Context, email string) ([]models.Room, error)
	Create(ctx context.Context, room models.Room) (*models.InsertResult, error)
	// Upsert replaces the listing fields of the room with the given id,
	// creating the document when absent.
	Upsert(ctx context.Context, id string, room models.Room) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
	// SetBookedStatus flips the room's booked flag. It touches no other field.
	SetBookedStatus(ctx context.Context, id string, booked bool) (*models.UpdateResult, error)
}
