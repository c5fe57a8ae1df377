package booking

import (
	"context"
	"fmt"

	bookingRepo "aircnc/database/repository/booking"
	"aircnc/models"
	"aircnc/services/notification"
	"aircnc/services/room"

	"go.uber.org/zap"
)

// BookingService orchestrates the booking lifecycle: persist the record,
// notify both parties, and own the room booked-status flip.
//
// There is deliberately no transaction spanning the payment confirmation,
// the booking insert and the status flip. The client confirms its charge
// first, then submits the booking, then flips the room status; if the insert
// fails after a successful charge, the charge is not reversed. Two
// concurrent bookings for the same room can both succeed. This mirrors the
// product's acknowledged consistency model and is not silently strengthened
// here.
type BookingService interface {
	Create(ctx context.Context, booking models.Booking) (*models.InsertResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
	SetRoomStatus(ctx context.Context, roomID string, booked bool) (*models.UpdateResult, error)
	ListByGuest(ctx context.Context, email string) ([]models.Booking, error)
	ListByHost(ctx context.Context, email string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Rooms      room.RoomService
	Dispatcher notification.Dispatcher
	Logger     *zap.Logger
}

// Create persists the booking and, once the store reports a generated id,
// fires one notification to the guest and one to the host. The two sends are
// independent and unordered; neither blocks nor fails the returned result.
func (s *DefaultBookingService) Create(ctx context.Context, booking models.Booking) (*models.InsertResult, error) {
	res, err := s.Repo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	if res.InsertedID != nil {
		s.Dispatcher.Notify(notification.Message{
			Subject: "Booking Successful!",
			Body:    fmt.Sprintf("Booking Id: %v, TransactionId: %s", res.InsertedID, booking.TransactionID),
		}, booking.Guest.Email)

		s.Dispatcher.Notify(notification.Message{
			Subject: "Your room got booked!",
			Body:    fmt.Sprintf("Booking Id: %v, TransactionId: %s. Check dashboard for more info", res.InsertedID, booking.TransactionID),
		}, booking.Host)
	}

	s.Logger.Info("Booking created",
		zap.Any("bookingId", res.InsertedID),
		zap.String("transactionId", booking.TransactionID),
	)
	return res, nil
}

// Delete removes the booking unconditionally; the caller's ownership of the
// booking is not checked.
func (s *DefaultBookingService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	return s.Repo.Delete(ctx, id)
}

// SetRoomStatus flips a room's booked flag from a caller-supplied boolean.
// It is a distinct, caller-driven step, not atomic with Create.
func (s *DefaultBookingService) SetRoomStatus(ctx context.Context, roomID string, booked bool) (*models.UpdateResult, error) {
	return s.Rooms.SetBookedStatus(ctx, roomID, booked)
}

// ListByGuest returns the guest's bookings; an empty email yields an empty list.
func (s *DefaultBookingService) ListByGuest(ctx context.Context, email string) ([]models.Booking, error) {
	if email == "" {
		return []models.Booking{}, nil
	}
	return s.Repo.GetByGuestEmail(ctx, email)
}

// ListByHost returns the host's bookings; an empty email yields an empty list.
func (s *DefaultBookingService) ListByHost(ctx context.Context, email string) ([]models.Booking, error) {
	if email == "" {
		return []models.Booking{}, nil
	}
	return s.Repo.GetByHostEmail(ctx, email)
}
