package score

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/moazalsaedi-create/quizbot/internal/common/clock"
	"github.com/moazalsaedi-create/quizbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	scoreKeyPrefix       = "score:"
	groupScoresKeyPrefix = "group_scores:"
)

// ErrScoreNotFound is returned when a player has no score in a group
var ErrScoreNotFound = errors.New("score not found")

// Config holds configuration for the Redis score repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock stamps score updates; defaults to the system clock
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed score repository
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

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  clk,
	}, nil
}

// GetScore retrieves a player's score within a group from Redis
func (r *redisRepository) GetScore(ctx context.Context, input *GetScoreInput) (*models.Score, error) {
	if input == nil || input.GroupID == "" || input.PlayerID == "" {
		return nil, errors.New("input, group ID and player ID cannot be empty")
	}

	scoreKey := fmt.Sprintf("%s%s:%s", scoreKeyPrefix, input.GroupID, input.PlayerID)
	scoreJSON, err := r.client.Get(ctx, scoreKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrScoreNotFound
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	// Unmarshal the score from JSON
	var sc models.Score
	if err := json.Unmarshal([]byte(scoreJSON), &sc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score: %w", err)
	}

	return &sc, nil
}

// IncrementScore adds points to a player's score within a group
func (r *redisRepository) IncrementScore(ctx context.Context, input *IncrementScoreInput) (*models.Score, error) {
	if input == nil || input.GroupID == "" || input.PlayerID == "" {
		return nil, errors.New("input, group ID and player ID cannot be empty")
	}

	if input.Points < 0 {
		return nil, errors.New("points cannot be negative")
	}

	// Read the current score; first award starts from zero
	sc, err := r.GetScore(ctx, &GetScoreInput{
		GroupID:  input.GroupID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if !errors.Is(err, ErrScoreNotFound) {
			return nil, err
		}
		sc = &models.Score{
			PlayerID: input.PlayerID,
		}
	}

	sc.Points += input.Points
	sc.UpdatedAt = r.clock.Now()
	if input.PlayerName != "" {
		sc.PlayerName = input.PlayerName
	}

	// Marshal the score to JSON
	scoreJSON, err := json.Marshal(sc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal score: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the score
	scoreKey := fmt.Sprintf("%s%s:%s", scoreKeyPrefix, input.GroupID, input.PlayerID)
	pipe.Set(ctx, scoreKey, scoreJSON, 0)

	// Track the player in the group's score membership set
	groupScoresKey := fmt.Sprintf("%s%s", groupScoresKeyPrefix, input.GroupID)
	pipe.SAdd(ctx, groupScoresKey, input.PlayerID)

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save score: %w", err)
	}

	return sc, nil
}

// GetTopScores retrieves the highest scores in a group from Redis
func (r *redisRepository) GetTopScores(ctx context.Context, input *GetTopScoresInput) (*GetTopScoresOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	// Get all player IDs with a score in this group
	groupScoresKey := fmt.Sprintf("%s%s", groupScoresKeyPrefix, input.GroupID)
	playerIDs, err := r.client.SMembers(ctx, groupScoresKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score member IDs: %w", err)
	}

	// If there are no scores, return an empty slice
	if len(playerIDs) == 0 {
		return &GetTopScoresOutput{
			Scores: []*models.Score{},
		}, nil
	}

	// Get all score records in parallel using a pipeline
	pipe := r.client.Pipeline()
	scoreCommands := make(map[string]*redis.StringCmd)

	for _, playerID := range playerIDs {
		scoreKey := fmt.Sprintf("%s%s:%s", scoreKeyPrefix, input.GroupID, playerID)
		scoreCommands[playerID] = pipe.Get(ctx, scoreKey)
	}

	// Execute the pipeline
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	// Process the results
	scores := make([]*models.Score, 0, len(playerIDs))
	for playerID, cmd := range scoreCommands {
		scoreJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Score was removed between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get score %s: %w", playerID, err)
		}

		var sc models.Score
		if err := json.Unmarshal([]byte(scoreJSON), &sc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score %s: %w", playerID, err)
		}

		scores = append(scores, &sc)
	}

	// Points descending, ties broken by earliest update so the ordering
	// is stable across reads
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Points != scores[j].Points {
			return scores[i].Points > scores[j].Points
		}
		if !scores[i].UpdatedAt.Equal(scores[j].UpdatedAt) {
			return scores[i].UpdatedAt.Before(scores[j].UpdatedAt)
		}
		return scores[i].PlayerID < scores[j].PlayerID
	})

	if input.Limit > 0 && len(scores) > input.Limit {
		scores = scores[:input.Limit]
	}

	return &GetTopScoresOutput{
		Scores: scores,
	}, nil
}
