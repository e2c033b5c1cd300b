package questions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type GeminiTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *GeminiTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestGeminiTestSuite(t *testing.T) {
	suite.Run(t, new(GeminiTestSuite))
}

func (s *GeminiTestSuite) newServer(handler http.HandlerFunc) (*httptest.Server, *Gemini) {
	server := httptest.NewServer(handler)
	source, err := NewGemini(&GeminiConfig{
		APIKey:     "test-api-key",
		Model:      "test-model",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	s.Require().NoError(err)
	return server, source
}

func geminiReply(text string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"role": "model",
					"parts": []map[string]any{
						{"text": text},
					},
				},
			},
		},
	}
	raw, _ := json.Marshal(resp)
	return string(raw)
}

func (s *GeminiTestSuite) TestGenerate() {
	server, source := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/v1beta/models/test-model:generateContent", r.URL.Path)
		s.Equal("test-api-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Require().NotEmpty(req.Contents)
		s.Equal("application/json", req.GenerationConfig.ResponseMIMEType)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geminiReply(`{"question": "What is the capital of Japan?", "answer": "Tokyo"}`)))
	})
	defer server.Close()

	out, err := source.Generate(s.ctx, &GenerateInput{})
	s.Require().NoError(err)
	s.Equal("What is the capital of Japan?", out.Question)
	s.Equal("Tokyo", out.Answer)
}

func (s *GeminiTestSuite) TestGenerateServerError() {
	server, source := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})
	defer server.Close()

	_, err := source.Generate(s.ctx, &GenerateInput{})
	s.Require().ErrorIs(err, ErrUnavailable)
}

func (s *GeminiTestSuite) TestGenerateUnreachable() {
	server, source := s.newServer(func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := source.Generate(s.ctx, &GenerateInput{})
	s.Require().ErrorIs(err, ErrUnavailable)
}

func (s *GeminiTestSuite) TestGenerateMalformedPairJSON() {
	server, source := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiReply("not json at all")))
	})
	defer server.Close()

	_, err := source.Generate(s.ctx, &GenerateInput{})
	s.Require().ErrorIs(err, ErrMalformedResponse)
}

func (s *GeminiTestSuite) TestGenerateNoCandidates() {
	server, source := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	})
	defer server.Close()

	_, err := source.Generate(s.ctx, &GenerateInput{})
	s.Require().ErrorIs(err, ErrMalformedResponse)
}

func (s *GeminiTestSuite) TestGenerateMissingAnswer() {
	server, source := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiReply(`{"question": "What is the capital of Japan?"}`)))
	})
	defer server.Close()

	_, err := source.Generate(s.ctx, &GenerateInput{})
	s.Require().ErrorIs(err, ErrMalformedResponse)
}

func (s *GeminiTestSuite) TestNewGeminiRequiresAPIKey() {
	_, err := NewGemini(&GeminiConfig{})
	s.Require().Error(err)
}
