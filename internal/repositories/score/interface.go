package score

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/moazalsaedi-create/quizbot/internal/repositories/score Repository

import (
	"context"

	"github.com/moazalsaedi-create/quizbot/internal/models"
)

// Repository defines the interface for score data persistence
type Repository interface {
	// GetScore retrieves a player's score within a group
	GetScore(ctx context.Context, input *GetScoreInput) (*models.Score, error)

	// IncrementScore adds points to a player's score within a group,
	// creating the record on the first award, and returns the updated score
	IncrementScore(ctx context.Context, input *IncrementScoreInput) (*models.Score, error)

	// GetTopScores retrieves the highest scores in a group, ordered by
	// points descending with ties broken by earliest update
	GetTopScores(ctx context.Context, input *GetTopScoresInput) (*GetTopScoresOutput, error)
}
