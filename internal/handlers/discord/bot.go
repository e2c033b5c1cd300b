package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/moazalsaedi-create/quizbot/internal/services/quiz"
)

// command is one of the recognized chat commands
type command string

const (
	commandNone    command = ""
	commandStart   command = "start"
	commandNewQuiz command = "newquiz"
	commandScore   command = "score"

	commandPrefix = "!"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	quizService quiz.Service
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Quiz service
	QuizService quiz.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.QuizService == nil {
		return nil, errors.New("quiz service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Free-text answers need message content on top of the message events
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	bot := &Bot{
		session:     session,
		quizService: cfg.QuizService,
	}

	// Register the message handler
	session.AddHandler(bot.handleMessage)

	return bot, nil
}

// Start opens the websocket connection to Discord
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

// parseCommand maps message text to one of the recognized commands. Text
// that is not a command is a potential free-text answer.
func parseCommand(content string) command {
	fields := strings.Fields(content)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], commandPrefix) {
		return commandNone
	}

	switch strings.ToLower(strings.TrimPrefix(fields[0], commandPrefix)) {
	case "start":
		return commandStart
	case "newquiz":
		return commandNewQuiz
	case "score":
		return commandScore
	default:
		return commandNone
	}
}

// handleMessage routes every inbound message: commands to their handlers,
// remaining group free text to answer resolution. Nothing here is allowed
// to panic the session; every failure ends in a chat message at worst.
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore our own messages and other bots
	if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}

	// Direct messages never reach the game
	if m.GuildID == "" {
		if _, err := s.ChannelMessageSend(m.ChannelID, directMessageGuidance); err != nil {
			log.Printf("failed to send DM guidance: %v", err)
		}
		return
	}

	ctx := context.Background()

	switch parseCommand(m.Content) {
	case commandStart:
		b.handleStart(s, m)
	case commandNewQuiz:
		b.handleNewQuiz(ctx, s, m)
	case commandScore:
		b.handleScore(ctx, s, m)
	default:
		b.handleAnswer(ctx, s, m)
	}
}

func (b *Bot) handleStart(s *discordgo.Session, m *discordgo.MessageCreate) {
	if _, err := s.ChannelMessageSend(m.ChannelID, welcomeMessage); err != nil {
		log.Printf("failed to send welcome: %v", err)
	}
}

func (b *Bot) handleNewQuiz(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	if _, err := s.ChannelMessageSend(m.ChannelID, generatingMessage); err != nil {
		log.Printf("failed to send generating notice: %v", err)
	}

	out, err := b.quizService.StartRound(ctx, &quiz.StartRoundInput{
		GroupID: m.ChannelID,
	})
	if err != nil {
		var inProgress *quiz.RoundInProgressError
		switch {
		case errors.As(err, &inProgress):
			b.reply(s, m, renderRoundInProgress(inProgress.Remaining))
		case errors.Is(err, quiz.ErrQuestionGeneration):
			b.reply(s, m, generationFailedMessage)
		default:
			log.Printf("StartRound failed for channel %s: %v", m.ChannelID, err)
			b.reply(s, m, genericErrorMessage)
		}
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, renderQuestion(out)); err != nil {
		log.Printf("failed to announce question: %v", err)
	}
}

func (b *Bot) handleScore(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	out, err := b.quizService.GetLeaderboard(ctx, &quiz.GetLeaderboardInput{
		GroupID: m.ChannelID,
	})
	if err != nil {
		if errors.Is(err, quiz.ErrStoreUnavailable) {
			b.reply(s, m, leaderboardUnavailableMessage)
		} else {
			log.Printf("GetLeaderboard failed for channel %s: %v", m.ChannelID, err)
			b.reply(s, m, genericErrorMessage)
		}
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, renderLeaderboard(out.Scores)); err != nil {
		log.Printf("failed to send leaderboard: %v", err)
	}
}

func (b *Bot) handleAnswer(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	displayName := m.Author.Username
	if m.Member != nil && m.Member.Nick != "" {
		displayName = m.Member.Nick
	}

	out, err := b.quizService.SubmitAnswer(ctx, &quiz.SubmitAnswerInput{
		GroupID:    m.ChannelID,
		PlayerID:   m.Author.ID,
		PlayerName: displayName,
		Text:       m.Content,
	})
	if err != nil {
		log.Printf("SubmitAnswer failed for channel %s: %v", m.ChannelID, err)
		return
	}

	switch out.Result {
	case quiz.AnswerResultCorrect:
		b.reply(s, m, renderWinner(displayName, out.Answer, out.NewTotal))
	case quiz.AnswerResultExpired:
		b.reply(s, m, renderExpired(out.Answer))
	default:
		// NoActiveRound and NoMatch are ordinary chat traffic; stay quiet
	}
}

func (b *Bot) reply(s *discordgo.Session, m *discordgo.MessageCreate, text string) {
	if _, err := s.ChannelMessageSendReply(m.ChannelID, text, m.Reference()); err != nil {
		log.Printf("failed to send reply: %v", err)
	}
}
