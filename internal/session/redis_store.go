package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-console/internal/config"
)

const (
	redisTokenKey = "hr:session:token"
	redisUserKey  = "hr:session:user"
)

// RedisStore keeps the session in Redis. Useful when several console
// processes on one workstation should share a login.
type RedisStore struct {
	client *redis.Client

	mu      sync.RWMutex
	current Session
}

// NewRedisStore connects to Redis using the provided configuration.
func NewRedisStore(cfg config.RedisConfig, logger *zap.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &RedisStore{client: client}
}

// Load reads the persisted session. Malformed stored values fail closed:
// the keys are deleted and an empty session is returned.
func (s *RedisStore) Load() (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := context.Background()
	token, err := s.client.Get(ctx, redisTokenKey).Result()
	if err != nil {
		s.current = Session{}
		return s.current, nil
	}

	rawUser, err := s.client.Get(ctx, redisUserKey).Result()
	if err != nil || rawUser == "undefined" {
		s.dropKeys(ctx)
		s.current = Session{}
		return s.current, nil
	}

	var user User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.dropKeys(ctx)
		s.current = Session{}
		return s.current, nil
	}

	s.current = Session{Token: token, User: &user}
	return s.current, nil
}

// Current returns the in-memory session.
func (s *RedisStore) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set writes token and user in a single pipeline.
func (s *RedisStore) Set(token string, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Session{Token: token, User: &user}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}

	ctx := context.Background()
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisTokenKey, token, 0)
	pipe.Set(ctx, redisUserKey, rawUser, 0)
	_, err = pipe.Exec(ctx)
	return err
}

// Clear deletes token and user together.
func (s *RedisStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Session{}
	return s.client.Del(context.Background(), redisTokenKey, redisUserKey).Err()
}

// Close closes the underlying client.
func (s *RedisStore) Close() {
	if s != nil && s.client != nil {
		_ = s.client.Close()
	}
}

// Ping verifies Redis connectivity for health reporting.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) dropKeys(ctx context.Context) {
	_ = s.client.Del(ctx, redisTokenKey, redisUserKey).Err()
}
