package booking_test

import (
	"context"
	"strings"
	"testing"

	"aircnc/models"
	"aircnc/services/booking"
	"aircnc/services/notification"

	"go.uber.org/zap"
)

// ---- fakes ----

type fakeBookingRepo struct {
	inserted   []models.Booking
	insertedID interface{}
	deletedIDs []string
	deleted    int64
	guestCalls int
	hostCalls  int
}

func (f *fakeBookingRepo) Create(ctx context.Context, b models.Booking) (*models.InsertResult, error) {
	f.inserted = append(f.inserted, b)
	return &models.InsertResult{Acknowledged: true, InsertedID: f.insertedID}, nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	f.deletedIDs = append(f.deletedIDs, id)
	return &models.DeleteResult{Acknowledged: true, DeletedCount: f.deleted}, nil
}

func (f *fakeBookingRepo) GetByGuestEmail(ctx context.Context, email string) ([]models.Booking, error) {
	f.guestCalls++
	return []models.Booking{}, nil
}

func (f *fakeBookingRepo) GetByHostEmail(ctx context.Context, email string) ([]models.Booking, error) {
	f.hostCalls++
	return []models.Booking{}, nil
}

type sentMessage struct {
	msg       notification.Message
	recipient string
}

type fakeDispatcher struct {
	sent []sentMessage
}

func (f *fakeDispatcher) Notify(msg notification.Message, recipient string) {
	f.sent = append(f.sent, sentMessage{msg: msg, recipient: recipient})
}

type fakeRoomService struct {
	statusID     string
	statusBooked bool
}

func (f *fakeRoomService) GetAll(ctx context.Context) ([]models.Room, error) { return nil, nil }
func (f *fakeRoomService) GetByID(ctx context.Context, id string) (*models.Room, error) {
	return nil, nil
}
func (f *fakeRoomService) GetByHostEmail(ctx context.Context, email string) ([]models.Room, error) {
	return nil, nil
}
func (f *fakeRoomService) Create(ctx context.Context, r models.Room) (*models.InsertResult, error) {
	return nil, nil
}
func (f *fakeRoomService) Upsert(ctx context.Context, id string, r models.Room) (*models.UpdateResult, error) {
	return nil, nil
}
func (f *fakeRoomService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	return nil, nil
}
func (f *fakeRoomService) SetBookedStatus(ctx context.Context, id string, booked bool) (*models.UpdateResult, error) {
	f.statusID = id
	f.statusBooked = booked
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func newService(repo *fakeBookingRepo, rooms *fakeRoomService, disp *fakeDispatcher) *booking.DefaultBookingService {
	return &booking.DefaultBookingService{
		Repo:       repo,
		Rooms:      rooms,
		Dispatcher: disp,
		Logger:     zap.NewNop(),
	}
}

// ---- tests ----

func TestCreate_NotifiesGuestAndHost(t *testing.T) {
	repo := &fakeBookingRepo{insertedID: "abc123"}
	disp := &fakeDispatcher{}
	svc := newService(repo, &fakeRoomService{}, disp)

	b := models.Booking{
		Guest:         models.Guest{Email: "g@x.com"},
		Host:          "h@x.com",
		TransactionID: "tx1",
	}
	res, err := svc.Create(context.Background(), b)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.InsertedID != "abc123" {
		t.Fatalf("unexpected insert result: %+v", res)
	}

	if len(disp.sent) != 2 {
		t.Fatalf("expected exactly 2 notifications, got %d", len(disp.sent))
	}
	recipients := map[string]sentMessage{}
	for _, s := range disp.sent {
		recipients[s.recipient] = s
	}
	guest, ok := recipients["g@x.com"]
	if !ok {
		t.Fatal("no notification sent to guest")
	}
	host, ok := recipients["h@x.com"]
	if !ok {
		t.Fatal("no notification sent to host")
	}
	if guest.msg.Subject != "Booking Successful!" {
		t.Fatalf("unexpected guest subject: %q", guest.msg.Subject)
	}
	if host.msg.Subject != "Your room got booked!" {
		t.Fatalf("unexpected host subject: %q", host.msg.Subject)
	}
	for _, s := range disp.sent {
		if !strings.Contains(s.msg.Body, "tx1") {
			t.Fatalf("notification body missing transaction id: %q", s.msg.Body)
		}
	}
}

func TestCreate_NoIDNoNotifications(t *testing.T) {
	// A store that acknowledges without a generated id must not trigger sends.
	repo := &fakeBookingRepo{insertedID: nil}
	disp := &fakeDispatcher{}
	svc := newService(repo, &fakeRoomService{}, disp)

	if _, err := svc.Create(context.Background(), models.Booking{Host: "h@x.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(disp.sent) != 0 {
		t.Fatalf("expected no notifications, got %d", len(disp.sent))
	}
}

func TestDelete_MissingBookingIsNotAnError(t *testing.T) {
	repo := &fakeBookingRepo{deleted: 0}
	svc := newService(repo, &fakeRoomService{}, &fakeDispatcher{})

	res, err := svc.Delete(context.Background(), "64f000000000000000000000")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res.DeletedCount != 0 {
		t.Fatalf("expected deletedCount 0, got %d", res.DeletedCount)
	}
}

func TestSetRoomStatus_DelegatesToRoomService(t *testing.T) {
	rooms := &fakeRoomService{}
	svc := newService(&fakeBookingRepo{}, rooms, &fakeDispatcher{})

	res, err := svc.SetRoomStatus(context.Background(), "room-1", true)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if rooms.statusID != "room-1" || !rooms.statusBooked {
		t.Fatalf("status flip not delegated: id=%q booked=%v", rooms.statusID, rooms.statusBooked)
	}
	if res.MatchedCount != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestListByGuest_EmptyEmail(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newService(repo, &fakeRoomService{}, &fakeDispatcher{})

	got, err := svc.ListByGuest(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
	if repo.guestCalls != 0 {
		t.Fatal("expected no repository call for an empty email")
	}
}
