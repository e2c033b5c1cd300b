package round

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/moazalsaedi-create/quizbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	roundKeyPrefix = "round:"
)

// ErrRoundNotActive is returned by CloseRound when the stored round is no
// longer the one the caller observed (already closed, or reopened since).
var ErrRoundNotActive = errors.New("round is not active")

// Config holds configuration for the Redis round repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed round repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetRound retrieves the round record for a group from Redis
func (r *redisRepository) GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	roundKey := fmt.Sprintf("%s%s", roundKeyPrefix, input.GroupID)
	roundJSON, err := r.client.Get(ctx, roundKey).Result()
	if err != nil {
		if err == redis.Nil {
			// First access for this group, hand back an inactive round
			return &models.Round{GroupID: input.GroupID}, nil
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	// Unmarshal the round from JSON
	var round models.Round
	if err := json.Unmarshal([]byte(roundJSON), &round); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round: %w", err)
	}

	return &round, nil
}

// SaveRound persists a round to Redis
func (r *redisRepository) SaveRound(ctx context.Context, input *SaveRoundInput) error {
	if input == nil || input.Round == nil {
		return errors.New("input and round cannot be nil")
	}

	if input.Round.GroupID == "" {
		return errors.New("round group ID cannot be empty")
	}

	// Marshal the round to JSON
	roundJSON, err := json.Marshal(input.Round)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	roundKey := fmt.Sprintf("%s%s", roundKeyPrefix, input.Round.GroupID)
	if err := r.client.Set(ctx, roundKey, roundJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}

	return nil
}

// CloseRound clears the round for a group with a compare-and-set on its
// opened-at timestamp. Only one of several racing closers can succeed; the
// rest get ErrRoundNotActive.
func (r *redisRepository) CloseRound(ctx context.Context, input *CloseRoundInput) error {
	if input == nil || input.GroupID == "" {
		return errors.New("input and group ID cannot be empty")
	}

	roundKey := fmt.Sprintf("%s%s", roundKeyPrefix, input.GroupID)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		roundJSON, err := tx.Get(ctx, roundKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrRoundNotActive
			}
			return fmt.Errorf("failed to get round: %w", err)
		}

		var round models.Round
		if err := json.Unmarshal([]byte(roundJSON), &round); err != nil {
			return fmt.Errorf("failed to unmarshal round: %w", err)
		}

		// The gate: the round must still be open and must still be the
		// same opening the caller saw
		if !round.Active || round.OpenedAt == nil || !round.OpenedAt.Equal(input.OpenedAt) {
			return ErrRoundNotActive
		}

		round.Clear()

		closedJSON, err := json.Marshal(&round)
		if err != nil {
			return fmt.Errorf("failed to marshal round: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, roundKey, closedJSON, 0)
			return nil
		})
		return err
	}, roundKey)

	if errors.Is(err, redis.TxFailedErr) {
		// Someone else mutated the round between our read and write,
		// so we did not win the close
		return ErrRoundNotActive
	}

	return err
}
