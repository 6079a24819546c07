package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RateLimitService counts login attempts per key in fixed windows. Backed by
// Redis when enabled; a noop implementation is used otherwise so the login
// path never depends on Redis availability in development.
type RateLimitService interface {
	CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Increment(ctx context.Context, key string, window time.Duration) error
}

type rateLimitService struct {
	redisClient *redis.Client
	logger      *logrus.Logger
}

type Config struct {
	Enabled  bool
	RedisURL string
}

func NewRateLimitService(config Config, logger *logrus.Logger) (RateLimitService, error) {
	if !config.Enabled {
		logger.Info("Rate limiting disabled")
		return &noopRateLimitService{}, nil
	}

	opt, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	redisClient := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Rate limiting service initialized")
	return &rateLimitService{
		redisClient: redisClient,
		logger:      logger,
	}, nil
}

func (s *rateLimitService) CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := s.redisClient.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		return false, fmt.Errorf("failed to read rate limit counter: %w", err)
	}
	return count < limit, nil
}

func (s *rateLimitService) Increment(ctx context.Context, key string, window time.Duration) error {
	pipeline := s.redisClient.Pipeline()
	incrCmd := pipeline.Incr(ctx, key)
	pipeline.Expire(ctx, key, window)
	if _, err := pipeline.Exec(ctx); err != nil {
		s.logger.WithError(err).Error("Failed to increment rate limit counter")
		return fmt.Errorf("failed to increment rate limit: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"key":   key,
		"count": incrCmd.Val(),
	}).Debug("Rate limit incremented")
	return nil
}

type noopRateLimitService struct{}

func (s *noopRateLimitService) CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	return true, nil
}

func (s *noopRateLimitService) Increment(ctx context.Context, key string, window time.Duration) error {
	return nil
}
