package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aureapp/aure-backend/internal/models"
)

// OutfitAnalysis is the structured read of an outfit used to prefill the
// ritual wizard.
type OutfitAnalysis struct {
	StyleCategories []string `json:"style_categories"`
	MoodInference   string   `json:"mood_inference"`
	ColorPalette    []string `json:"color_palette"`
	ScentDirections []string `json:"scent_directions"`
	Description     string   `json:"description"`
	Confidence      float64  `json:"confidence"`
}

var (
	validOutfitStyles = []string{"clean", "minimalist", "streetwear", "romantic", "glam", "cozy", "corporate"}
	validMoods        = []string{"confident", "soft", "playful", "mysterious", "grounded", "magnetic", "powerful", "fresh", "warm", "sexy", "creative"}
)

const outfitAnalysisPrompt = `You are a fashion and fragrance expert. Analyze this outfit and suggest complementary scent profiles.

Return a JSON object with these exact fields:
{
  "style_categories": ["category1", "category2"],
  "mood_inference": "mood",
  "color_palette": ["color1", "color2", "color3"],
  "scent_directions": ["direction1", "direction2"],
  "description": "Brief outfit description in 10-15 words",
  "confidence": 0.85
}

Style categories must be from: clean, minimalist, streetwear, romantic, glam, cozy, corporate
Mood must be one of: confident, soft, playful, mysterious, grounded, magnetic, powerful, fresh, warm, sexy, creative
Scent directions must be from: fresh, floral, woody, amber, gourmand, musky

Pick 1-2 style categories that best match.
Pick exactly 1 mood that captures the overall vibe.
Pick 1-2 scent directions that would complement the outfit.
Confidence should be 0.0-1.0 based on how clearly you can analyze the outfit.

Return ONLY the JSON object, no markdown code blocks or other text.`

// OutfitService reads outfits through a vision-capable chat-completions API.
type OutfitService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

func NewOutfitService(apiKey, apiURL, model string) *OutfitService {
	return &OutfitService{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// AnalyzeText infers outfit attributes from a text description.
func (s *OutfitService) AnalyzeText(ctx context.Context, description string) (*OutfitAnalysis, error) {
	prompt := fmt.Sprintf("%s\n\nOutfit description: %s", outfitAnalysisPrompt, description)
	content, err := s.complete(ctx, []interface{}{
		map[string]interface{}{"type": "text", "text": prompt},
	})
	if err != nil {
		return nil, err
	}
	return parseOutfitAnalysis(content)
}

// AnalyzeImage infers outfit attributes from a base64-encoded photo.
func (s *OutfitService) AnalyzeImage(ctx context.Context, imageBase64, mimeType string) (*OutfitAnalysis, error) {
	content, err := s.complete(ctx, []interface{}{
		map[string]interface{}{"type": "text", "text": outfitAnalysisPrompt},
		map[string]interface{}{
			"type": "image_url",
			"image_url": map[string]string{
				"url": fmt.Sprintf("data:%s;base64,%s", mimeType, imageBase64),
			},
		},
	})
	if err != nil {
		return nil, err
	}
	return parseOutfitAnalysis(content)
}

func (s *OutfitService) complete(ctx context.Context, content []interface{}) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("outfit analysis API key not configured")
	}

	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]interface{}{
			{"role": "user", "content": content},
		},
		"temperature": 0.2,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("outfit API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}
	return result.Choices[0].Message.Content, nil
}

// parseOutfitAnalysis tolerates markdown code fences and clamps every field
// to the wizard's vocabulary so a sloppy model response still yields usable
// input.
func parseOutfitAnalysis(text string) (*OutfitAnalysis, error) {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[7:]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[3:]
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	cleaned = strings.TrimSpace(cleaned)

	var analysis OutfitAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse outfit analysis: %w", err)
	}

	analysis.StyleCategories = clampValues(analysis.StyleCategories, validOutfitStyles, 2, "clean")
	if !containsValue(validMoods, analysis.MoodInference) {
		analysis.MoodInference = "confident"
	}
	if len(analysis.ColorPalette) > 5 {
		analysis.ColorPalette = analysis.ColorPalette[:5]
	}

	families := make([]string, 0, len(models.ScentFamilies))
	for _, f := range models.ScentFamilies {
		families = append(families, string(f))
	}
	analysis.ScentDirections = clampValues(analysis.ScentDirections, families, 2, "fresh")

	if analysis.Description == "" {
		analysis.Description = "Stylish outfit"
	}
	if analysis.Confidence < 0 {
		analysis.Confidence = 0
	}
	if analysis.Confidence > 1 {
		analysis.Confidence = 1
	}
	return &analysis, nil
}

func clampValues(values, valid []string, max int, fallback string) []string {
	out := make([]string, 0, max)
	for _, v := range values {
		if containsValue(valid, v) {
			out = append(out, v)
		}
		if len(out) == max {
			break
		}
	}
	if len(out) == 0 {
		out = append(out, fallback)
	}
	return out
}

func containsValue(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
