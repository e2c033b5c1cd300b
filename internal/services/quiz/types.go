package quiz

import (
	"time"

	"github.com/moazalsaedi-create/quizbot/internal/common/clock"
	"github.com/moazalsaedi-create/quizbot/internal/common/uuid"
	"github.com/moazalsaedi-create/quizbot/internal/models"
	"github.com/moazalsaedi-create/quizbot/internal/questions"
	roundRepo "github.com/moazalsaedi-create/quizbot/internal/repositories/round"
	scoreRepo "github.com/moazalsaedi-create/quizbot/internal/repositories/score"
)

// Config holds configuration for the quiz service
type Config struct {
	// RoundRepo persists the one round record per group
	RoundRepo roundRepo.Repository

	// ScoreRepo persists per-player scores
	ScoreRepo scoreRepo.Repository

	// QuestionSource produces question/answer pairs
	QuestionSource questions.Source

	// Clock provides the current time; defaults to the system clock
	Clock clock.Clock

	// UUID generates round IDs; defaults to random UUIDs
	UUID uuid.UUID

	// RoundTimeLimit is how long a question stays answerable. The same
	// value gates duplicate opens and answer-path expiry. Defaults to
	// one minute.
	RoundTimeLimit time.Duration

	// TopicHint steers question generation
	TopicHint string

	// LeaderboardSize caps leaderboard queries with no explicit limit.
	// Defaults to 10.
	LeaderboardSize int
}

type StartRoundInput struct {
	GroupID string
}

type StartRoundOutput struct {
	// RoundID identifies the newly opened round
	RoundID string

	// Question is the text to broadcast to the group
	Question string

	// TimeLimit is how long the group has to answer
	TimeLimit time.Duration
}

type SubmitAnswerInput struct {
	GroupID    string
	PlayerID   string
	PlayerName string
	Text       string
}

// AnswerResult classifies the effect of one answer attempt
type AnswerResult string

const (
	// AnswerResultNoActiveRound means no question was open; the message
	// is ordinary chat traffic
	AnswerResultNoActiveRound AnswerResult = "no_active_round"

	// AnswerResultExpired means this attempt found the round past its
	// time limit and closed it
	AnswerResultExpired AnswerResult = "expired"

	// AnswerResultCorrect means this attempt won the round
	AnswerResultCorrect AnswerResult = "correct"

	// AnswerResultNoMatch means the round is open but the attempt was wrong
	AnswerResultNoMatch AnswerResult = "no_match"
)

type SubmitAnswerOutput struct {
	Result AnswerResult

	// Answer is the canonical correct answer, set for Expired and Correct
	Answer string

	// NewTotal is the winner's point total after the award, set for Correct
	NewTotal int
}

type CloseRoundInput struct {
	GroupID string

	// Reason records why the round is being closed, for logging only
	Reason string
}

type CloseRoundOutput struct {
}

type GetLeaderboardInput struct {
	GroupID string

	// Limit caps the number of entries; 0 means the configured default
	Limit int
}

type GetLeaderboardOutput struct {
	Scores []*models.Score
}
