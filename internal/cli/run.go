package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/moazalsaedi-create/quizbot/internal/config"
	"github.com/moazalsaedi-create/quizbot/internal/handlers/discord"
	"github.com/moazalsaedi-create/quizbot/internal/questions"
	roundRepo "github.com/moazalsaedi-create/quizbot/internal/repositories/round"
	scoreRepo "github.com/moazalsaedi-create/quizbot/internal/repositories/score"
	"github.com/moazalsaedi-create/quizbot/internal/services/quiz"
)

// newRunCmd builds the CLI subcommand that runs the bot.
func newRunCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to Discord and run the quiz bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(*configPath)
		},
	}
}

func runBot(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	rounds, err := roundRepo.NewRedis(&roundRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create round repository: %v", err)
	}

	scores, err := scoreRepo.NewRedis(&scoreRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create score repository: %v", err)
	}

	// Initialize the question source. Without a Gemini key the bot runs
	// on canned questions only.
	var source questions.Source = questions.NewStatic()
	if cfg.Gemini.APIKey != "" {
		gemini, err := questions.NewGemini(&questions.GeminiConfig{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.Model,
		})
		if err != nil {
			log.Fatalf("Failed to create Gemini question source: %v", err)
		}

		source, err = questions.NewFallback(gemini, questions.NewStatic())
		if err != nil {
			log.Fatalf("Failed to create question source: %v", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set, running with canned questions only")
	}

	// Initialize quiz service
	quizSvc, err := quiz.New(&quiz.Config{
		RoundRepo:       rounds,
		ScoreRepo:       scores,
		QuestionSource:  source,
		RoundTimeLimit:  cfg.TimeLimit(time.Minute),
		TopicHint:       cfg.Quiz.TopicHint,
		LeaderboardSize: cfg.Quiz.LeaderboardSize,
	})
	if err != nil {
		log.Fatalf("Failed to create quiz service: %v", err)
	}

	if cfg.Discord.Token == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:       cfg.Discord.Token,
		QuizService: quizSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
	return nil
}
