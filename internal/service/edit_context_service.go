package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// EditContextService holds the "editing member X" flag for each session.
// The flag is read-once: Take returns the target and deletes it atomically,
// so a stale edit never survives a navigate-away-and-back. A TTL bounds its
// lifetime even if the form is never opened.
type EditContextService interface {
	Set(ctx context.Context, monitorID, miembroID uint) error
	Take(ctx context.Context, monitorID uint) (uint, bool, error)
	Clear(ctx context.Context, monitorID uint) error
}

type editContextService struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewEditContextService constructs the Redis-backed edit context store.
func NewEditContextService(client *redis.Client, ttl time.Duration, logger zerolog.Logger) EditContextService {
	return &editContextService{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "edit_context_service").Logger(),
	}
}

func editContextKey(monitorID uint) string {
	return fmt.Sprintf("sesion:edicion:%d", monitorID)
}

func (s *editContextService) Set(ctx context.Context, monitorID, miembroID uint) error {
	return s.client.Set(ctx, editContextKey(monitorID), strconv.FormatUint(uint64(miembroID), 10), s.ttl).Err()
}

func (s *editContextService) Take(ctx context.Context, monitorID uint) (uint, bool, error) {
	value, err := s.client.GetDel(ctx, editContextKey(monitorID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	miembroID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		s.logger.Warn().Str("value", value).Msg("discarding malformed edit context entry")
		return 0, false, nil
	}

	return uint(miembroID), true, nil
}

func (s *editContextService) Clear(ctx context.Context, monitorID uint) error {
	return s.client.Del(ctx, editContextKey(monitorID)).Err()
}
