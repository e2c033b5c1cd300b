package questions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.5-flash"

	systemPrompt = "You are a trivia question writer. When asked for a question, " +
		"reply with strict JSON holding exactly two keys: 'question' for the " +
		"question text and 'answer' for the single canonical correct answer. " +
		"Keep answers short, one or two words, so they can be typed in chat."
)

// GeminiConfig holds configuration for the Gemini question source
type GeminiConfig struct {
	// APIKey authenticates against the Gemini API
	APIKey string

	// Model overrides the default generation model
	Model string

	// BaseURL overrides the API endpoint, used by tests
	BaseURL string

	// HTTPClient overrides the default HTTP client
	HTTPClient *http.Client
}

// Gemini implements Source using the Gemini generateContent REST API
type Gemini struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGemini creates a new Gemini-backed question source
func NewGemini(cfg *GeminiConfig) (*Gemini, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("API key cannot be empty")
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Gemini{
		apiKey:     cfg.APIKey,
		model:      model,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// Request/response shapes for the generateContent endpoint. Only the fields
// this source uses are mapped.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

var questionSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"question": {"type": "STRING", "description": "The trivia question."},
		"answer": {"type": "STRING", "description": "The correct answer."}
	},
	"required": ["question", "answer"]
}`)

// Generate asks Gemini for a fresh question/answer pair
func (g *Gemini) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		input = &GenerateInput{}
	}

	prompt := "Write a new general knowledge trivia question suitable for a group quiz."
	if input.TopicHint != "" {
		prompt = fmt.Sprintf("Write a new trivia question about %s suitable for a group quiz.", input.TopicHint)
	}

	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   questionSchema,
		},
	}

	payload, err := json.Marshal(&reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var genResp geminiResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrMalformedResponse)
	}

	// The model replies with a JSON document as the part text
	var pair struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	text := strings.TrimSpace(genResp.Candidates[0].Content.Parts[0].Text)
	if err := json.Unmarshal([]byte(text), &pair); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if pair.Question == "" || pair.Answer == "" {
		return nil, fmt.Errorf("%w: missing question or answer", ErrMalformedResponse)
	}

	return &GenerateOutput{
		Question: pair.Question,
		Answer:   pair.Answer,
	}, nil
}
