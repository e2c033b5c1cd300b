package round

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/moazalsaedi-create/quizbot/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) activeRound() *models.Round {
	openedAt := s.testNow
	return &models.Round{
		ID:       "test-round-id",
		GroupID:  "test-group-id",
		Active:   true,
		Question: "What is the capital of Japan?",
		Answer:   "Tokyo",
		OpenedAt: &openedAt,
	}
}

func (s *RedisRepositoryTestSuite) TestGetRoundFirstAccess() {
	// A group that has never played gets a blank inactive round
	round, err := s.repo.GetRound(context.Background(), &GetRoundInput{
		GroupID: "fresh-group-id",
	})
	s.Require().NoError(err)
	s.Equal("fresh-group-id", round.GroupID)
	s.False(round.Active)
	s.True(round.IsBlank())
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRound() {
	round := s.activeRound()

	err := s.repo.SaveRound(context.Background(), &SaveRoundInput{
		Round: round,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRound(context.Background(), &GetRoundInput{
		GroupID: "test-group-id",
	})
	s.Require().NoError(err)
	s.Equal(round.ID, retrieved.ID)
	s.True(retrieved.Active)
	s.Equal(round.Question, retrieved.Question)
	s.Equal(round.Answer, retrieved.Answer)
	s.Require().NotNil(retrieved.OpenedAt)
	s.True(round.OpenedAt.Equal(*retrieved.OpenedAt))
}

func (s *RedisRepositoryTestSuite) TestSaveRoundOverwrites() {
	round := s.activeRound()

	err := s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: round})
	s.Require().NoError(err)

	// Overwrite with a closed round
	round.Clear()
	err = s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: round})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRound(context.Background(), &GetRoundInput{
		GroupID: "test-group-id",
	})
	s.Require().NoError(err)
	s.False(retrieved.Active)
	s.Empty(retrieved.Question)
	s.Empty(retrieved.Answer)
	s.Nil(retrieved.OpenedAt)
}

func (s *RedisRepositoryTestSuite) TestCloseRound() {
	round := s.activeRound()

	err := s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: round})
	s.Require().NoError(err)

	err = s.repo.CloseRound(context.Background(), &CloseRoundInput{
		GroupID:  "test-group-id",
		OpenedAt: s.testNow,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRound(context.Background(), &GetRoundInput{
		GroupID: "test-group-id",
	})
	s.Require().NoError(err)
	s.False(retrieved.Active)
	s.Empty(retrieved.Question)
	s.Empty(retrieved.Answer)
	s.Nil(retrieved.OpenedAt)
}

func (s *RedisRepositoryTestSuite) TestCloseRoundAlreadyClosed() {
	round := s.activeRound()

	err := s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: round})
	s.Require().NoError(err)

	err = s.repo.CloseRound(context.Background(), &CloseRoundInput{
		GroupID:  "test-group-id",
		OpenedAt: s.testNow,
	})
	s.Require().NoError(err)

	// Second close loses the compare-and-set
	err = s.repo.CloseRound(context.Background(), &CloseRoundInput{
		GroupID:  "test-group-id",
		OpenedAt: s.testNow,
	})
	s.Require().ErrorIs(err, ErrRoundNotActive)
}

func (s *RedisRepositoryTestSuite) TestCloseRoundStaleOpenedAt() {
	round := s.activeRound()

	err := s.repo.SaveRound(context.Background(), &SaveRoundInput{Round: round})
	s.Require().NoError(err)

	// A closer holding an observation of an older round must not clear
	// the current one
	err = s.repo.CloseRound(context.Background(), &CloseRoundInput{
		GroupID:  "test-group-id",
		OpenedAt: s.testNow.Add(-time.Minute),
	})
	s.Require().ErrorIs(err, ErrRoundNotActive)

	retrieved, err := s.repo.GetRound(context.Background(), &GetRoundInput{
		GroupID: "test-group-id",
	})
	s.Require().NoError(err)
	s.True(retrieved.Active)
}

func (s *RedisRepositoryTestSuite) TestCloseRoundMissingKey() {
	err := s.repo.CloseRound(context.Background(), &CloseRoundInput{
		GroupID:  "never-seen-group",
		OpenedAt: s.testNow,
	})
	s.Require().ErrorIs(err, ErrRoundNotActive)
}
