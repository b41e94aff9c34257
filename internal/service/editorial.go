package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aureapp/aure-backend/internal/models"
)

// EditorialService generates recommendation copy through a chat-completions
// API. Results are cached in Redis keyed by the inputs so identical ritual
// contexts reuse the same copy.
type EditorialService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	redis  *redis.Client
}

func NewEditorialService(apiKey, apiURL, model string, redisClient *redis.Client) *EditorialService {
	return &EditorialService{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  model,
		client: &http.Client{Timeout: 15 * time.Second},
		redis:  redisClient,
	}
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents a request to the chat-completions API
type ChatRequest struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
}

type editorialResult struct {
	Explanation string `json:"explanation"`
	Affirmation string `json:"affirmation"`
}

const editorialSystemPrompt = `You are a fragrance editor writing short, warm copy for a daily scent ritual app. Please provide your response in JSON format with the following structure:
{
    "explanation": "Two sentences explaining why this perfume suits the wearer's mood, occasion and weather today",
    "affirmation": "One short affirmation sentence matching the mood"
}

Keep the explanation under 50 words. Never mention scores or algorithms.`

// GenerateCopy produces an editorial explanation and affirmation for the
// recommended perfume.
func (s *EditorialService) GenerateCopy(ctx context.Context, perfume models.Perfume, mood, occasion string, weather models.TemperatureCategory) (string, string, error) {
	if s.apiKey == "" {
		return "", "", fmt.Errorf("editorial API key not configured")
	}

	cacheKey := fmt.Sprintf("editorial:%s:%s:%s:%s", perfume.ID, mood, occasion, weather)
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached editorialResult
			if json.Unmarshal(data, &cached) == nil && cached.Explanation != "" {
				return cached.Explanation, cached.Affirmation, nil
			}
		}
	}

	prompt := fmt.Sprintf("Perfume: %s by %s (%s family). Mood: %s. Occasion: %s.",
		perfume.Name, perfume.House, perfume.ScentFamily, mood, occasion)
	if weather != "" {
		prompt += fmt.Sprintf(" Weather: %s.", weather)
	}

	reqBody := ChatRequest{
		Model: s.model,
		Messages: []Message{
			{Role: "system", Content: editorialSystemPrompt},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    0.9,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("editorial API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", "", fmt.Errorf("no response from API")
	}

	var copy editorialResult
	if err := json.Unmarshal([]byte(result.Choices[0].Message.Content), &copy); err != nil {
		return "", "", fmt.Errorf("failed to parse editorial content: %w", err)
	}
	if copy.Explanation == "" || copy.Affirmation == "" {
		return "", "", fmt.Errorf("incomplete editorial content")
	}

	if s.redis != nil {
		if data, err := json.Marshal(copy); err == nil {
			s.redis.Set(ctx, cacheKey, data, 24*time.Hour)
		}
	}

	return copy.Explanation, copy.Affirmation, nil
}
