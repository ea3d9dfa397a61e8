// Package session хранит короткоживущий контекст диалога пользователя с ботом
// ("что пользователь сейчас вводит") вне памяти процесса.
package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/go-redis/redis/v8"
)

const DefaultTTL = 30 * time.Minute

var ErrEmptyState = errors.New("empty session state")

// Store состояние по паре (пользователь, чат) в redis hash с TTL.
type Store struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewStore(rdb redis.Cmdable, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func key(userID, chatID int64) string {
	return fmt.Sprintf("session:%d:%d", userID, chatID)
}

// Get возвращает пустую карту, если сессии нет или она истекла.
func (s *Store) Get(ctx context.Context, userID, chatID int64) (map[string]string, error) {
	values, err := s.rdb.HGetAll(ctx, key(userID, chatID)).Result()
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return values, nil
}

// Set дописывает поля в сессию и продлевает ее TTL.
func (s *Store) Set(ctx context.Context, userID, chatID int64, values map[string]string) error {
	if len(values) == 0 {
		return ErrEmptyState
	}
	k := key(userID, chatID)

	// поля передаются в фиксированном порядке, чтобы команда была детерминированной.
	fields := make([]string, 0, len(values))
	for f := range values {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	args := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		args = append(args, f, values[f])
	}

	if err := s.rdb.HSet(ctx, k, args...).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	if err := s.rdb.Expire(ctx, k, s.ttl).Err(); err != nil {
		return fmt.Errorf("set session ttl: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context, userID, chatID int64) error {
	if err := s.rdb.Del(ctx, key(userID, chatID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Connect создает клиента и проверяет соединение.
func Connect(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}
