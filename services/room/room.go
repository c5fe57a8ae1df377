package room

import (
	"context"
	"encoding/json"
	"time"

	roomRepo "aircnc/database/repository/room"
	"aircnc/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	allRoomsCacheKey = "rooms:all"
	cacheTTL         = 60 * time.Second
)

// RoomService exposes room listing CRUD plus the booked-status flip.
type RoomService interface {
	GetAll(ctx context.Context) ([]models.Room, error)
	GetByID(ctx context.Context, id string) (*models.Room, error)
	GetByHostEmail(ctx context.Context, email string) ([]models.Room, error)
	Create(ctx context.Context, room models.Room) (*models.InsertResult, error)
	Upsert(ctx context.Context, id string, room models.Room) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
	SetBookedStatus(ctx context.Context, id string, booked bool) (*models.UpdateResult, error)
}

// DefaultRoomService backs the room routes with the Mongo repository and a
// short-lived Redis cache for the public listing. Cache trouble degrades to
// plain repository reads; it never fails a request.
type DefaultRoomService struct {
	Repo   roomRepo.RoomRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

// GetAll returns every listing, served from cache when fresh.
func (s *DefaultRoomService) GetAll(ctx context.Context) ([]models.Room, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, allRoomsCacheKey).Result()
		if err == nil {
			var rooms []models.Room
			if err := json.Unmarshal([]byte(cached), &rooms); err == nil {
				return rooms, nil
			}
		} else if err != redis.Nil {
			s.Logger.Warn("Room cache read failed", zap.Error(err))
		}
	}

	rooms, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(rooms); err == nil {
			if err := s.Cache.Set(ctx, allRoomsCacheKey, data, cacheTTL).Err(); err != nil {
				s.Logger.Warn("Room cache write failed", zap.Error(err))
			}
		}
	}
	return rooms, nil
}

func (s *DefaultRoomService) GetByID(ctx context.Context, id string) (*models.Room, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultRoomService) GetByHostEmail(ctx context.Context, email string) ([]models.Room, error) {
	return s.Repo.GetByHostEmail(ctx, email)
}

func (s *DefaultRoomService) Create(ctx context.Context, room models.Room) (*models.InsertResult, error) {
	res, err := s.Repo.Create(ctx, room)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return res, nil
}

func (s *DefaultRoomService) Upsert(ctx context.Context, id string, room models.Room) (*models.UpdateResult, error) {
	res, err := s.Repo.Upsert(ctx, id, room)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return res, nil
}

func (s *DefaultRoomService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	res, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return res, nil
}

func (s *DefaultRoomService) SetBookedStatus(ctx context.Context, id string, booked bool) (*models.UpdateResult, error) {
	res, err := s.Repo.SetBookedStatus(ctx, id, booked)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return res, nil
}

func (s *DefaultRoomService) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, allRoomsCacheKey).Err(); err != nil {
		s.Logger.Warn("Room cache invalidation failed", zap.Error(err))
	}
}
