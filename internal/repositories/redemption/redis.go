package redemption

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/kits/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis; one hash per player, field per lowercased kit name
	redemptionsKeyPrefix = "kit_redemptions:"

	timeLayout = time.RFC3339Nano
)

// Config holds configuration for the Redis redemption repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed redemption repository
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

func redemptionsKey(playerID string) string {
	return fmt.Sprintf("%s%s", redemptionsKeyPrefix, playerID)
}

// GetRedemptions retrieves every kit a player has redeemed and when
func (r *redisRepository) GetRedemptions(ctx context.Context, input *GetRedemptionsInput) (*GetRedemptionsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, redemptionsKey(input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get redemptions: %w", err)
	}

	record := make(models.RedemptionRecord, len(fields))
	for kitName, raw := range fields {
		redeemedAt, err := time.Parse(timeLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redemption time for kit %s: %w", kitName, err)
		}
		record[kitName] = redeemedAt
	}

	return &GetRedemptionsOutput{
		Record: record,
	}, nil
}

// SetRedemptions merges redemption times into a player's record
func (r *redisRepository) SetRedemptions(ctx context.Context, input *SetRedemptionsInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	if len(input.Record) == 0 {
		return nil
	}

	values := make(map[string]interface{}, len(input.Record))
	for kitName, redeemedAt := range input.Record {
		values[models.KitKey(kitName)] = redeemedAt.UTC().Format(timeLayout)
	}

	if err := r.client.HSet(ctx, redemptionsKey(input.PlayerID), values).Err(); err != nil {
		return fmt.Errorf("failed to save redemptions: %w", err)
	}

	return nil
}

// ClearRedemption forgets a player's redemption of a kit
func (r *redisRepository) ClearRedemption(ctx context.Context, input *ClearRedemptionInput) error {
	if input == nil || input.PlayerID == "" || input.KitName == "" {
		return errors.New("input, player ID and kit name cannot be empty")
	}

	if err := r.client.HDel(ctx, redemptionsKey(input.PlayerID), models.KitKey(input.KitName)).Err(); err != nil {
		return fmt.Errorf("failed to clear redemption: %w", err)
	}

	return nil
}
