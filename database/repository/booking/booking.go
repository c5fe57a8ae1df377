package bookingRepo

import (
	"context"

	"aircnc/models"
)

// BookingRepository defines data access methods for booking records.
type BookingRepository interface {
	// Create inserts the booking document. The store assigns the id; it is
	// reported back through the InsertResult.
	Create(ctx context.Context, booking models.Booking) (*models.InsertResult, error)
	// Delete removes the booking with the given id. A missing id is not an
	// error; the result carries a zero DeletedCount.
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
	GetByGuestEmail(ctx context.Context, email string) ([]models.Booking, error)
	GetByHostEmail(ctx context.Context, email string) ([]models.Booking, error)
}
