package round

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/moazalsaedi-create/quizbot/internal/repositories/round Repository

import (
	"context"

	"github.com/moazalsaedi-create/quizbot/internal/models"
)

// Repository defines the interface for round data persistence
type Repository interface {
	// GetRound retrieves the round record for a group. A group that has
	// never played gets a blank inactive round back, not an error.
	GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error)

	// SaveRound persists a round, overwriting whatever was stored
	SaveRound(ctx context.Context, input *SaveRoundInput) error

	// CloseRound clears the round only if it is still active with the
	// given opened-at timestamp. Returns ErrRoundNotActive when the round
	// was already closed or has been replaced by a newer one.
	CloseRound(ctx context.Context, input *CloseRoundInput) error
}
