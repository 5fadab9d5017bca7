package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/HarpaCodes/NutriMind/models"
	"github.com/HarpaCodes/NutriMind/utils"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiService talks to the generative-AI collaborator. It is the only
// component in the process that performs network I/O.
type GeminiService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiService(apiKey, model string, timeout time.Duration) *GeminiService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// WithBaseURL points the client at a different endpoint. Used by tests.
func (s *GeminiService) WithBaseURL(u string) *GeminiService {
	s.baseURL = strings.TrimRight(u, "/")
	return s
}

// Configured reports whether an API key is present at all.
func (s *GeminiService) Configured() bool {
	return s.apiKey != ""
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig map[string]interface{} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// jsonBlock grabs the first {...} block in the model output, which often wraps
// the JSON in prose or markdown fences.
var jsonBlock = regexp.MustCompile(`(?s)\{.*\}`)

// AnalyzeFood asks the model for a structured nutrition record for the given
// description and optional inline base64 image. Callers are expected to treat
// any returned error as a signal to degrade, never to surface it.
func (s *GeminiService) AnalyzeFood(description, imageBase64 string) (*models.NutritionRecord, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("gemini API key not configured")
	}

	prompt := fmt.Sprintf(`Analyze this food item for nutrition: %q

Return ONLY a valid JSON object with this exact structure:
{
    "food_name": %q,
    "calories": number,
    "protein": number,
    "carbs": number,
    "fats": number,
    "insight": "one short, helpful sentence about this food's nutrition value"
}

Ensure all values are numbers (not strings) for calories, protein, carbs, and fats.`, description, description)

	parts := []geminiPart{{Text: prompt}}
	if imageBase64 != "" {
		parts = append(parts, geminiPart{
			InlineData: &geminiInlineData{MimeType: "image/jpeg", Data: imageBase64},
		})
	}

	payload := geminiRequest{
		Contents:         []geminiContent{{Parts: parts}},
		GenerationConfig: map[string]interface{}{"temperature": 0.1},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gemini payload: %w", err)
	}

	u := fmt.Sprintf("%s/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequest(http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gemini response: %w", err)
	}

	// 403 and 429 get their own messages for the logs, but every non-200
	// follows the same fallback path.
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return nil, fmt.Errorf("gemini auth failure (403): %s", string(body))
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("gemini rate limited (429): %s", string(body))
	default:
		return nil, fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("failed to parse gemini envelope: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini response has no candidates")
	}

	return parseNutritionText(gr.Candidates[0].Content.Parts[0].Text)
}

// parseNutritionText extracts the JSON object from raw model text and coerces
// it into a NutritionRecord. Missing or non-numeric nutrient fields default to
// 0; only a missing food_name rejects the response.
func parseNutritionText(text string) (*models.NutritionRecord, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	match := jsonBlock.FindString(cleaned)
	if match == "" {
		return nil, fmt.Errorf("no JSON object in gemini output")
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse gemini JSON: %w", err)
	}

	name, _ := raw["food_name"].(string)
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("gemini JSON missing food_name")
	}
	insight, _ := raw["insight"].(string)

	return &models.NutritionRecord{
		FoodName: name,
		Calories: utils.ToFloat(raw["calories"]),
		Protein:  utils.ToFloat(raw["protein"]),
		Carbs:    utils.ToFloat(raw["carbs"]),
		Fats:     utils.ToFloat(raw["fats"]),
		Insight:  insight,
		Source:   models.SourceAI,
	}, nil
}
