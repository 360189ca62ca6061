package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alcyxob/fitness-ai/internal/domain"
	"github.com/alcyxob/fitness-ai/internal/metrics"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// WorkoutListCache keeps each user's read-all result. A miss or a broken
// cache never fails the caller, it only costs a database round trip.
//
// Entries are versioned per user: GetLists reports the version it looked
// under, SetLists only writes under that version and Invalidate moves the
// user to a new one. A read that raced a write therefore fills an entry
// nobody reads again.
type WorkoutListCache interface {
	// GetLists returns the cached lists, or a miss with the version to pass to SetLists.
	GetLists(ctx context.Context, userID int64) (lists []domain.WorkoutList, version int64, ok bool)
	SetLists(ctx context.Context, userID int64, version int64, lists []domain.WorkoutList)
	Invalidate(ctx context.Context, userID int64)
}

// noVersion tells SetLists to skip the write.
const noVersion int64 = -1

type RedisWorkoutListCache struct {
	rdb            redis.Cmdable
	ttl            time.Duration
	metricsManager *metrics.Manager
}

func NewRedisWorkoutListCache(rdb redis.Cmdable, ttl time.Duration, metricsManager *metrics.Manager) *RedisWorkoutListCache {
	return &RedisWorkoutListCache{
		rdb:            rdb,
		ttl:            ttl,
		metricsManager: metricsManager,
	}
}

func workoutListsVersionKey(userID int64) string {
	return fmt.Sprintf("workout-lists:user:%d:version", userID)
}

func workoutListsKey(userID, version int64) string {
	return fmt.Sprintf("workout-lists:user:%d:v%d", userID, version)
}

func (c *RedisWorkoutListCache) version(ctx context.Context, userID int64) (int64, error) {
	version, err := c.rdb.Get(ctx, workoutListsVersionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

func (c *RedisWorkoutListCache) GetLists(ctx context.Context, userID int64) ([]domain.WorkoutList, int64, bool) {
	logger := log.WithField("userId", userID)

	version, err := c.version(ctx, userID)
	if err != nil {
		logger.Errorf("get workout lists cache version: %s", err)
		c.observe("miss")
		return nil, noVersion, false
	}

	data, err := c.rdb.Get(ctx, workoutListsKey(userID, version)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Errorf("get cached workout lists: %s", err)
		}
		c.observe("miss")
		return nil, version, false
	}

	var lists []domain.WorkoutList
	if err := json.Unmarshal(data, &lists); err != nil {
		logger.Errorf("decode cached workout lists: %s", err)
		c.observe("miss")
		return nil, version, false
	}

	c.observe("hit")
	return lists, version, true
}

func (c *RedisWorkoutListCache) SetLists(ctx context.Context, userID int64, version int64, lists []domain.WorkoutList) {
	if version < 0 {
		return
	}
	data, err := json.Marshal(lists)
	if err != nil {
		log.WithField("userId", userID).Errorf("encode workout lists: %s", err)
		return
	}
	if err := c.rdb.Set(ctx, workoutListsKey(userID, version), data, c.ttl).Err(); err != nil {
		log.WithField("userId", userID).Errorf("cache workout lists: %s", err)
	}
}

// Invalidate bumps the user's version. The previous entry is left to expire.
func (c *RedisWorkoutListCache) Invalidate(ctx context.Context, userID int64) {
	if err := c.rdb.Incr(ctx, workoutListsVersionKey(userID)).Err(); err != nil {
		log.WithField("userId", userID).Errorf("invalidate workout lists: %s", err)
	}
}

func (c *RedisWorkoutListCache) observe(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterCache.WithLabelValues("workout_lists", result).Inc()
	}
}

// NoopWorkoutListCache is used when redis is disabled.
type NoopWorkoutListCache struct{}

func (NoopWorkoutListCache) GetLists(context.Context, int64) ([]domain.WorkoutList, int64, bool) {
	return nil, noVersion, false
}
func (NoopWorkoutListCache) SetLists(context.Context, int64, int64, []domain.WorkoutList) {}
func (NoopWorkoutListCache) Invalidate(context.Context, int64)                            {}
