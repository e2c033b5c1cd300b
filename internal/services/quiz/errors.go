package quiz

import (
	"errors"
	"fmt"
	"time"
)

// Define errors
var (
	ErrQuestionGeneration = errors.New("failed to generate a question")
	ErrStoreUnavailable   = errors.New("score store unavailable")
	ErrNilConfig          = errors.New("config cannot be nil")
	ErrNilRoundRepo       = errors.New("round repository cannot be nil")
	ErrNilScoreRepo       = errors.New("score repository cannot be nil")
	ErrNilQuestionSource  = errors.New("question source cannot be nil")
)

// RoundInProgressError is returned by StartRound when the group already has
// an open question. Remaining is how long that question stays answerable;
// it is never negative.
type RoundInProgressError struct {
	Remaining time.Duration
}

// Error implements the error interface
func (e *RoundInProgressError) Error() string {
	return fmt.Sprintf("a round is already in progress, %s remaining", e.Remaining.Round(time.Second))
}
