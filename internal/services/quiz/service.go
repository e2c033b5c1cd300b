package quiz

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/moazalsaedi-create/quizbot/internal/common/clock"
	"github.com/moazalsaedi-create/quizbot/internal/common/uuid"
	"github.com/moazalsaedi-create/quizbot/internal/models"
	"github.com/moazalsaedi-create/quizbot/internal/questions"
	roundRepo "github.com/moazalsaedi-create/quizbot/internal/repositories/round"
	scoreRepo "github.com/moazalsaedi-create/quizbot/internal/repositories/score"
)

const (
	defaultRoundTimeLimit  = time.Minute
	defaultLeaderboardSize = 10
)

// service implements the Service interface
type service struct {
	roundRepo       roundRepo.Repository
	scoreRepo       scoreRepo.Repository
	questionSource  questions.Source
	clock           clock.Clock
	uuid            uuid.UUID
	timeLimit       time.Duration
	topicHint       string
	leaderboardSize int

	// openGroup collapses concurrent StartRound calls for the same group
	// into a single generate-and-save
	openGroup singleflight.Group
}

// New creates a new quiz service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoundRepo == nil {
		return nil, ErrNilRoundRepo
	}

	if cfg.ScoreRepo == nil {
		return nil, ErrNilScoreRepo
	}

	if cfg.QuestionSource == nil {
		return nil, ErrNilQuestionSource
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	uuider := cfg.UUID
	if uuider == nil {
		uuider = uuid.New()
	}

	timeLimit := cfg.RoundTimeLimit
	if timeLimit <= 0 {
		timeLimit = defaultRoundTimeLimit
	}

	leaderboardSize := cfg.LeaderboardSize
	if leaderboardSize <= 0 {
		leaderboardSize = defaultLeaderboardSize
	}

	return &service{
		roundRepo:       cfg.RoundRepo,
		scoreRepo:       cfg.ScoreRepo,
		questionSource:  cfg.QuestionSource,
		clock:           clk,
		uuid:            uuider,
		timeLimit:       timeLimit,
		topicHint:       cfg.TopicHint,
		leaderboardSize: leaderboardSize,
	}, nil
}

// StartRound opens a new question round in a group
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	out, err, _ := s.openGroup.Do(input.GroupID, func() (interface{}, error) {
		return s.startRound(ctx, input.GroupID)
	})
	if err != nil {
		return nil, err
	}

	return out.(*StartRoundOutput), nil
}

func (s *service) startRound(ctx context.Context, groupID string) (*StartRoundOutput, error) {
	now := s.clock.Now()

	current, err := s.roundRepo.GetRound(ctx, &roundRepo.GetRoundInput{
		GroupID: groupID,
	})
	if err != nil {
		// Degraded mode: without the store nothing is remembered, so
		// proceed as if no round were active
		log.Printf("round store read failed for group %s: %v", groupID, err)
	} else if current.Active && current.OpenedAt != nil {
		elapsed := now.Sub(*current.OpenedAt)
		if elapsed < s.timeLimit {
			return nil, &RoundInProgressError{Remaining: s.timeLimit - elapsed}
		}

		// The previous round expired with nobody noticing; reap it
		// before opening a new one
		err := s.roundRepo.CloseRound(ctx, &roundRepo.CloseRoundInput{
			GroupID:  groupID,
			OpenedAt: *current.OpenedAt,
		})
		if err != nil && !errors.Is(err, roundRepo.ErrRoundNotActive) {
			log.Printf("failed to reap stale round for group %s: %v", groupID, err)
		}
	}

	generated, err := s.questionSource.Generate(ctx, &questions.GenerateInput{
		TopicHint: s.topicHint,
	})
	if err != nil {
		// The round record is left untouched
		return nil, fmt.Errorf("%w: %v", ErrQuestionGeneration, err)
	}

	openedAt := now
	newRound := &models.Round{
		ID:       s.uuid.NewUUID(),
		GroupID:  groupID,
		Active:   true,
		Question: generated.Question,
		Answer:   generated.Answer,
		OpenedAt: &openedAt,
	}

	if err := s.roundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{Round: newRound}); err != nil {
		// Still broadcast the question; the round just won't be
		// answerable for points
		log.Printf("round store write failed for group %s: %v", groupID, err)
	}

	return &StartRoundOutput{
		RoundID:   newRound.ID,
		Question:  newRound.Question,
		TimeLimit: s.timeLimit,
	}, nil
}

// SubmitAnswer evaluates one player's free-text answer attempt
func (s *service) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error) {
	if input == nil || input.GroupID == "" || input.PlayerID == "" {
		return nil, errors.New("input, group ID and player ID cannot be empty")
	}

	current, err := s.roundRepo.GetRound(ctx, &roundRepo.GetRoundInput{
		GroupID: input.GroupID,
	})
	if err != nil {
		log.Printf("round store read failed for group %s: %v", input.GroupID, err)
		return &SubmitAnswerOutput{Result: AnswerResultNoActiveRound}, nil
	}

	if !current.Active || current.OpenedAt == nil {
		// The steady state for ordinary chat traffic
		return &SubmitAnswerOutput{Result: AnswerResultNoActiveRound}, nil
	}

	now := s.clock.Now()
	if now.Sub(*current.OpenedAt) > s.timeLimit {
		// The first attempt past the deadline closes the round; the
		// compare-and-set makes sure only one attempt reports expiry
		err := s.roundRepo.CloseRound(ctx, &roundRepo.CloseRoundInput{
			GroupID:  input.GroupID,
			OpenedAt: *current.OpenedAt,
		})
		if err != nil {
			if !errors.Is(err, roundRepo.ErrRoundNotActive) {
				log.Printf("failed to close expired round for group %s: %v", input.GroupID, err)
			}
			return &SubmitAnswerOutput{Result: AnswerResultNoActiveRound}, nil
		}

		return &SubmitAnswerOutput{
			Result: AnswerResultExpired,
			Answer: current.Answer,
		}, nil
	}

	candidate := normalizeAnswer(input.Text)
	correct := normalizeAnswer(current.Answer)

	if candidate != correct {
		if isNearMatch(candidate, correct) {
			// Diagnostic only, no state change and no message
			log.Printf("near match from player %s in group %s (round %s)", input.PlayerID, input.GroupID, current.ID)
		}
		return &SubmitAnswerOutput{Result: AnswerResultNoMatch}, nil
	}

	// The winning path. Closing the round is a compare-and-set keyed on
	// the opened-at timestamp we read above: of all attempts racing here
	// with the same snapshot, exactly one close succeeds and only that
	// attempt may award the point.
	err = s.roundRepo.CloseRound(ctx, &roundRepo.CloseRoundInput{
		GroupID:  input.GroupID,
		OpenedAt: *current.OpenedAt,
	})
	if err != nil {
		if !errors.Is(err, roundRepo.ErrRoundNotActive) {
			log.Printf("failed to close round for group %s: %v", input.GroupID, err)
		}
		// Lost the race; someone else won this round
		return &SubmitAnswerOutput{Result: AnswerResultNoActiveRound}, nil
	}

	newTotal := 1
	sc, err := s.scoreRepo.IncrementScore(ctx, &scoreRepo.IncrementScoreInput{
		GroupID:    input.GroupID,
		PlayerID:   input.PlayerID,
		PlayerName: input.PlayerName,
		Points:     1,
	})
	if err != nil {
		// The win stands even if the award could not be persisted
		log.Printf("failed to award point to player %s in group %s: %v", input.PlayerID, input.GroupID, err)
	} else {
		newTotal = sc.Points
	}

	return &SubmitAnswerOutput{
		Result:   AnswerResultCorrect,
		Answer:   current.Answer,
		NewTotal: newTotal,
	}, nil
}

// CloseRound unconditionally clears a group's round. Closing an already
// closed round is a no-op.
func (s *service) CloseRound(ctx context.Context, input *CloseRoundInput) (*CloseRoundOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	cleared := &models.Round{GroupID: input.GroupID}
	if err := s.roundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{Round: cleared}); err != nil {
		return nil, fmt.Errorf("failed to close round: %w", err)
	}

	if input.Reason != "" {
		log.Printf("round closed for group %s: %s", input.GroupID, input.Reason)
	}

	return &CloseRoundOutput{}, nil
}

// GetLeaderboard returns the current standings for a group
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.leaderboardSize
	}

	out, err := s.scoreRepo.GetTopScores(ctx, &scoreRepo.GetTopScoresInput{
		GroupID: input.GroupID,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &GetLeaderboardOutput{Scores: out.Scores}, nil
}

// normalizeAnswer trims surrounding whitespace and folds case so that
// "tokyo " matches "Tokyo".
func normalizeAnswer(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// isNearMatch mirrors the old close-answer heuristic: the correct answer is
// contained in a slightly longer attempt. It drives nothing but a log line.
func isNearMatch(candidate, correct string) bool {
	return strings.Contains(candidate, correct) &&
		len(correct) > 5 &&
		len(candidate) < len(correct)+5
}
