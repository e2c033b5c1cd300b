package round

import (
	"time"

	"github.com/moazalsaedi-create/quizbot/internal/models"
)

type GetRoundInput struct {
	GroupID string
}

type SaveRoundInput struct {
	Round *models.Round
}

type CloseRoundInput struct {
	GroupID string

	// OpenedAt is the opened-at timestamp the caller observed. The close
	// only takes effect if the stored round still carries this value.
	OpenedAt time.Time
}
