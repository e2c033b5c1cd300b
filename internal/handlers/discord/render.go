package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/moazalsaedi-create/quizbot/internal/models"
	"github.com/moazalsaedi-create/quizbot/internal/services/quiz"
)

const (
	welcomeMessage = "Hello! I am the instant trivia quiz bot. 🧠\n" +
		"Start a new quiz in any group with `!newquiz`.\n" +
		"Use `!score` to see the leaderboard."

	directMessageGuidance = "Quizzes run in group channels. Add me to a group and use `!newquiz` there."

	generatingMessage = "Generating a new question... ⏳"

	generationFailedMessage = "Sorry, I couldn't come up with a question. Please try again later."

	leaderboardUnavailableMessage = "No leaderboard available right now."

	genericErrorMessage = "Sorry, something went wrong. Please try again."
)

// renderQuestion formats the announcement for a freshly opened round
func renderQuestion(out *quiz.StartRoundOutput) string {
	seconds := int(out.TimeLimit / time.Second)
	return fmt.Sprintf("🏆 **New quiz!** 🏆\n\n**Question:** %s\n\n"+
		"You have %d seconds to answer! The first correct answer wins a point.\n"+
		"Just type your answer right here in the group.",
		out.Question, seconds)
}

// renderRoundInProgress tells the group a question is already open
func renderRoundInProgress(remaining time.Duration) string {
	seconds := int(remaining.Round(time.Second) / time.Second)
	return fmt.Sprintf("A quiz is already running. Answer the current question or try again in %d seconds.", seconds)
}

// renderWinner congratulates the round's winner
func renderWinner(playerName, answer string, newTotal int) string {
	return fmt.Sprintf("🎉 **Correct!** 🎉\n"+
		"**%s** was the first to answer **%s**.\n"+
		"One point added! Current total: %d.\n"+
		"New round with `!newquiz`.",
		playerName, answer, newTotal)
}

// renderExpired announces that the answer window closed
func renderExpired(answer string) string {
	return fmt.Sprintf("⏰ Time is up for the current question.\n"+
		"The correct answer was: **%s**.\n"+
		"Start a new quiz with `!newquiz`.", answer)
}

// renderLeaderboard formats the group standings
func renderLeaderboard(scores []*models.Score) string {
	if len(scores) == 0 {
		return "No points on the board yet. Start the game with `!newquiz`!"
	}

	var sb strings.Builder
	sb.WriteString("🏅 **Leaderboard** 🏅\n\n")
	for i, sc := range scores {
		sb.WriteString(fmt.Sprintf("%d. %s - **%d points**\n", i+1, sc.PlayerName, sc.Points))
	}
	return sb.String()
}
