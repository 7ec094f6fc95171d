package kit

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/kits/internal/models"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	// kitsKey is a hash of lowercased kit name to stored kit JSON
	kitsKey = "kits"
)

// Config holds configuration for the Redis kit repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed kit repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetKits retrieves every stored kit from Redis
func (r *redisRepository) GetKits(ctx context.Context, input *GetKitsInput) (*GetKitsOutput, error) {
	fields, err := r.client.HGetAll(ctx, kitsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get kits: %w", err)
	}

	kits := make(map[string]*models.Kit, len(fields))
	for key, kitJSON := range fields {
		var stored storedKit
		if err := json.Unmarshal([]byte(kitJSON), &stored); err != nil {
			return nil, fmt.Errorf("failed to unmarshal kit %s: %w", key, err)
		}

		k, err := fromStored(&stored)
		if err != nil {
			return nil, err
		}
		kits[key] = k
	}

	return &GetKitsOutput{
		Kits: kits,
	}, nil
}

// SaveKit stores a kit in Redis under its lowercased name
func (r *redisRepository) SaveKit(ctx context.Context, input *SaveKitInput) error {
	if input == nil || input.Kit == nil {
		return errors.New("input and kit cannot be nil")
	}

	if input.Kit.Name == "" {
		return errors.New("kit name cannot be empty")
	}

	kitJSON, err := json.Marshal(toStored(input.Kit))
	if err != nil {
		return fmt.Errorf("failed to marshal kit: %w", err)
	}

	if err := r.client.HSet(ctx, kitsKey, input.Kit.Key(), kitJSON).Err(); err != nil {
		return fmt.Errorf("failed to save kit: %w", err)
	}

	return nil
}

// DeleteKit removes a kit from Redis
func (r *redisRepository) DeleteKit(ctx context.Context, input *DeleteKitInput) (*DeleteKitOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and kit name cannot be empty")
	}

	removed, err := r.client.HDel(ctx, kitsKey, models.KitKey(input.Name)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to delete kit: %w", err)
	}

	return &DeleteKitOutput{
		Deleted: removed > 0,
	}, nil
}
