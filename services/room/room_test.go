package room_test

import (
	"context"
	"testing"

	"aircnc/models"
	"aircnc/services/room"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ---- fakes ----

type fakeRoomRepo struct {
	rooms       []models.Room
	getAllCalls int
	statusID    string
	booked      bool
}

func (f *fakeRoomRepo) GetAll(ctx context.Context) ([]models.Room, error) {
	f.getAllCalls++
	return f.rooms, nil
}

func (f *fakeRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	for i := range f.rooms {
		if f.rooms[i].Title == id {
			return &f.rooms[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) GetByHostEmail(ctx context.Context, email string) ([]models.Room, error) {
	out := []models.Room{}
	for _, r := range f.rooms {
		if r.Host.Email == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) Create(ctx context.Context, r models.Room) (*models.InsertResult, error) {
	f.rooms = append(f.rooms, r)
	return &models.InsertResult{Acknowledged: true, InsertedID: "new-id"}, nil
}

func (f *fakeRoomRepo) Upsert(ctx context.Context, id string, r models.Room) (*models.UpdateResult, error) {
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeRoomRepo) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (f *fakeRoomRepo) SetBookedStatus(ctx context.Context, id string, booked bool) (*models.UpdateResult, error) {
	f.statusID = id
	f.booked = booked
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func newCachedService(t *testing.T, repo *fakeRoomRepo) *room.DefaultRoomService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &room.DefaultRoomService{Repo: repo, Cache: client, Logger: zap.NewNop()}
}

// ---- tests ----

func TestGetAll_CacheMissThenHit(t *testing.T) {
	repo := &fakeRoomRepo{rooms: []models.Room{{Title: "Beach House", Price: 120}}}
	svc := newCachedService(t, repo)
	ctx := context.Background()

	// Miss populates the cache.
	first, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(first) != 1 || first[0].Title != "Beach House" {
		t.Fatalf("unexpected rooms: %+v", first)
	}

	// Hit is served from cache without touching the repository.
	second, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all (cached): %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("unexpected cached rooms: %+v", second)
	}
	if repo.getAllCalls != 1 {
		t.Fatalf("expected a single repository read, got %d", repo.getAllCalls)
	}
}

func TestWrite_InvalidatesCache(t *testing.T) {
	repo := &fakeRoomRepo{rooms: []models.Room{{Title: "Cabin"}}}
	svc := newCachedService(t, repo)
	ctx := context.Background()

	if _, err := svc.GetAll(ctx); err != nil {
		t.Fatalf("get all: %v", err)
	}
	if _, err := svc.Create(ctx, models.Room{Title: "Loft"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	rooms, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all after write: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected the fresh listing, got %+v", rooms)
	}
	if repo.getAllCalls != 2 {
		t.Fatalf("expected cache invalidation to force a second read, got %d", repo.getAllCalls)
	}
}

func TestSetBookedStatus_TargetsOneRoom(t *testing.T) {
	repo := &fakeRoomRepo{}
	svc := newCachedService(t, repo)

	res, err := svc.SetBookedStatus(context.Background(), "room-7", true)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if repo.statusID != "room-7" || !repo.booked {
		t.Fatalf("status flip misdirected: id=%q booked=%v", repo.statusID, repo.booked)
	}
	if res.MatchedCount != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestService_WorksWithoutCache(t *testing.T) {
	repo := &fakeRoomRepo{rooms: []models.Room{{Title: "Villa"}}}
	svc := &room.DefaultRoomService{Repo: repo, Cache: nil, Logger: zap.NewNop()}

	rooms, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}
}
