package permission

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis; one set of nodes per player per value
	grantedKeyPrefix = "permissions_granted:"
	deniedKeyPrefix  = "permissions_denied:"
)

// Config holds configuration for the Redis permission repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed permission repository
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

// GetPermissions retrieves the granted and denied nodes of a player
func (r *redisRepository) GetPermissions(ctx context.Context, input *GetPermissionsInput) (*GetPermissionsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	grantedCmd := pipe.SMembers(ctx, grantedKeyPrefix+input.PlayerID)
	deniedCmd := pipe.SMembers(ctx, deniedKeyPrefix+input.PlayerID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get permissions: %w", err)
	}

	return &GetPermissionsOutput{
		Granted: grantedCmd.Val(),
		Denied:  deniedCmd.Val(),
	}, nil
}

// SetPermission grants or denies a node, replacing the opposite value
func (r *redisRepository) SetPermission(ctx context.Context, input *SetPermissionInput) error {
	if input == nil || input.PlayerID == "" || input.Node == "" {
		return errors.New("input, player ID and node cannot be empty")
	}

	node := strings.ToLower(input.Node)
	add, remove := grantedKeyPrefix, deniedKeyPrefix
	if !input.Value {
		add, remove = deniedKeyPrefix, grantedKeyPrefix
	}

	pipe := r.client.TxPipeline()
	pipe.SRem(ctx, remove+input.PlayerID, node)
	pipe.SAdd(ctx, add+input.PlayerID, node)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set permission: %w", err)
	}

	return nil
}

// UnsetPermission removes any grant or denial of a node
func (r *redisRepository) UnsetPermission(ctx context.Context, input *UnsetPermissionInput) error {
	if input == nil || input.PlayerID == "" || input.Node == "" {
		return errors.New("input, player ID and node cannot be empty")
	}

	node := strings.ToLower(input.Node)

	pipe := r.client.TxPipeline()
	pipe.SRem(ctx, grantedKeyPrefix+input.PlayerID, node)
	pipe.SRem(ctx, deniedKeyPrefix+input.PlayerID, node)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to unset permission: %w", err)
	}

	return nil
}
