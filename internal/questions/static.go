package questions

import (
	"context"
	"sync"
)

// defaultQuestions are the canned pairs handed out when no generator is
// available.
var defaultQuestions = []GenerateOutput{
	{Question: "What is the largest planet in our solar system?", Answer: "Jupiter"},
	{Question: "What is the capital of Japan?", Answer: "Tokyo"},
	{Question: "What is the longest river in the world?", Answer: "Nile"},
	{Question: "How many continents are there on Earth?", Answer: "Seven"},
}

// Static implements Source with a fixed rotation of questions. It never
// fails, which makes it the terminal fallback.
type Static struct {
	mu        sync.Mutex
	questions []GenerateOutput
	next      int
}

// NewStatic creates a static question source. With no questions given it
// serves the built-in defaults.
func NewStatic(pairs ...GenerateOutput) *Static {
	if len(pairs) == 0 {
		pairs = defaultQuestions
	}
	return &Static{questions: pairs}
}

// Generate returns the next question in the rotation
func (s *Static) Generate(_ context.Context, _ *GenerateInput) (*GenerateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.questions[s.next%len(s.questions)]
	s.next++
	return &out, nil
}
