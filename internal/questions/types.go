package questions

import "errors"

type GenerateInput struct {
	// TopicHint steers question generation; empty means general knowledge
	TopicHint string
}

type GenerateOutput struct {
	Question string
	Answer   string
}

var (
	// ErrUnavailable is returned when the question source cannot be
	// reached at all
	ErrUnavailable = errors.New("question source unavailable")

	// ErrMalformedResponse is returned when the source responded but the
	// content could not be turned into a question/answer pair
	ErrMalformedResponse = errors.New("malformed question source response")
)
