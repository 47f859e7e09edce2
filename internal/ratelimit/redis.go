// Package ratelimit реализует счётчик попыток входа на Redis.
//
// Счётчик ведется по идентичности клиента (IP) с фиксированным окном:
// INCR атомарен, поэтому конкурентные запросы не теряют инкременты.
// Лимитер передается в обработчик логина явно, а не через глобальное
// состояние процесса.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/qa-board/internal/config"
)

// Limiter решает, не исчерпал ли клиент лимит попыток в текущем окне.
type Limiter interface {
	// Allow регистрирует попытку клиента key и сообщает, разрешена ли она
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter реализует Limiter поверх Redis INCR + EXPIRE.
type RedisLimiter struct {
	db       *redis.Client
	max      int64         // Максимум попыток в окне
	window   time.Duration // Длительность окна
	keySpace string        // Префикс ключей, чтобы не пересекаться с другими данными
}

// InitServer подключается к Redis и возвращает лимитер попыток входа.
func InitServer(ctx context.Context, cfg config.RedisConnection, max int64, window time.Duration) (*RedisLimiter, error) {
	const op = "ratelimit.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisLimiter{
		db:       db,
		max:      max,
		window:   window,
		keySpace: "login_attempts",
	}, nil
}

// Allow атомарно увеличивает счётчик попыток клиента и сравнивает его
// с лимитом. Первый инкремент в окне выставляет срок жизни ключа.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	const op = "ratelimit.Allow"

	redisKey := fmt.Sprintf("%s:%s", l.keySpace, key)
	count, err := l.db.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if count == 1 {
		if err := l.db.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
	}
	return count <= l.max, nil
}

// Close закрывает соединение с Redis.
func (l *RedisLimiter) Close() error {
	return l.db.Close()
}
