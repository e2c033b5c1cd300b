package score

import "github.com/moazalsaedi-create/quizbot/internal/models"

type GetScoreInput struct {
	GroupID  string
	PlayerID string
}

type IncrementScoreInput struct {
	GroupID    string
	PlayerID   string
	PlayerName string
	Points     int
}

type GetTopScoresInput struct {
	GroupID string
	Limit   int
}

type GetTopScoresOutput struct {
	Scores []*models.Score
}
