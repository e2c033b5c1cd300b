package models

import (
	"time"
)

// Round represents the lifecycle record for one open trivia question in a group.
// There is exactly one Round per group; it is never deleted, only overwritten.
type Round struct {
	// ID is the unique identifier for this round, regenerated each time a
	// question is opened
	ID string

	// GroupID is the chat group the round belongs to
	GroupID string

	// Active indicates whether a question is currently open for answers
	Active bool

	// Question is the text of the open question
	Question string

	// Answer is the canonical correct answer for the open question
	Answer string

	// OpenedAt is when the question became active
	OpenedAt *time.Time
}

// IsBlank reports whether the round has never held a question.
func (r *Round) IsBlank() bool {
	return !r.Active && r.Question == "" && r.Answer == "" && r.OpenedAt == nil
}

// Clear resets the round to the inactive state. The question, answer and
// opened timestamp are always cleared together so the round is never left
// partially set.
func (r *Round) Clear() {
	r.Active = false
	r.Question = ""
	r.Answer = ""
	r.OpenedAt = nil
}
