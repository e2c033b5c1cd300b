package questions

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/moazalsaedi-create/quizbot/internal/questions Source

import (
	"context"
)

// Source defines the interface for producing trivia question/answer pairs
type Source interface {
	// Generate produces a new question and its canonical answer
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}
