package quiz

import "context"

// Service defines the interface for quiz operations
type Service interface {
	// StartRound opens a new question round in a group
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// SubmitAnswer evaluates one player's free-text answer attempt
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error)

	// CloseRound unconditionally clears a group's round
	CloseRound(ctx context.Context, input *CloseRoundInput) (*CloseRoundOutput, error)

	// GetLeaderboard returns the current standings for a group
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
