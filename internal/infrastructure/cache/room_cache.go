package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sangkips/innkeeper-api/internal/domain/entity"
)

// RoomCache keeps recently read rooms. Errors are logged and treated as a
// miss; the database stays the source of truth.
type RoomCache interface {
	Get(ctx context.Context, propertyID, roomID uuid.UUID) (*entity.Room, bool)
	Set(ctx context.Context, room *entity.Room)
	Invalidate(ctx context.Context, propertyID, roomID uuid.UUID)
}

// RoomKey is the Redis key of a cached room
func RoomKey(propertyID, roomID uuid.UUID) string {
	return fmt.Sprintf("innkeeper:room:%s:%s", propertyID, roomID)
}

type redisRoomCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRoomCache returns a Redis-backed cache, or a no-op cache when rdb is nil
func NewRoomCache(rdb *redis.Client, ttl time.Duration) RoomCache {
	if rdb == nil {
		return NopRoomCache{}
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &redisRoomCache{rdb: rdb, ttl: ttl}
}

func (c *redisRoomCache) Get(ctx context.Context, propertyID, roomID uuid.UUID) (*entity.Room, bool) {
	var room entity.Room
	found, err := getJSON(ctx, c.rdb, RoomKey(propertyID, roomID), &room)
	if err != nil {
		log.Printf("[cache] room get %s: %v", roomID, err)
		return nil, false
	}
	if !found || room.PropertyID != propertyID {
		return nil, false
	}
	return &room, true
}

func (c *redisRoomCache) Set(ctx context.Context, room *entity.Room) {
	if err := setJSON(ctx, c.rdb, RoomKey(room.PropertyID, room.ID), room, c.ttl); err != nil {
		log.Printf("[cache] room set %s: %v", room.ID, err)
	}
}

func (c *redisRoomCache) Invalidate(ctx context.Context, propertyID, roomID uuid.UUID) {
	if err := deleteKey(ctx, c.rdb, RoomKey(propertyID, roomID)); err != nil {
		log.Printf("[cache] room invalidate %s: %v", roomID, err)
	}
}

// NopRoomCache never stores anything
type NopRoomCache struct{}

func (NopRoomCache) Get(context.Context, uuid.UUID, uuid.UUID) (*entity.Room, bool) { return nil, false }
func (NopRoomCache) Set(context.Context, *entity.Room) {}
func (NopRoomCache) Invalidate(context.Context, uuid.UUID, uuid.UUID) {}
