// Package prefstore provides durable storage for UI preferences.
package prefstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
)

const prefsKey = "catalog-admin:preferences"

// Redis persists preferences as a single JSON document in Redis.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to Redis at addr and verifies the connection with a ping.
func NewRedis(addr, password string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("prefstore: connect to redis: %w", err)
	}
	return &Redis{client: client}, nil
}

// Load reads the stored preferences. A missing key yields the zero value.
func (r *Redis) Load(ctx context.Context) (domain.Preferences, error) {
	var prefs domain.Preferences

	raw, err := r.client.Get(ctx, prefsKey).Bytes()
	if err == redis.Nil {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("prefstore: load: %w", err)
	}

	if err := json.Unmarshal(raw, &prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("prefstore: decode: %w", err)
	}
	return prefs, nil
}

// Save writes the preferences document.
func (r *Redis) Save(ctx context.Context, prefs domain.Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("prefstore: encode: %w", err)
	}
	if err := r.client.Set(ctx, prefsKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("prefstore: save: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
