package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/vitalog/internal/models"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-2.5-flash"
	defaultTimeout       = 60 * time.Second
)

// Gemini implements Parser against the Generative Language REST API.
type Gemini struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// GeminiOption configures a Gemini client.
type GeminiOption func(*Gemini)

// WithGeminiBaseURL points the client at a different endpoint; tests use a
// local server.
func WithGeminiBaseURL(baseURL string) GeminiOption {
	return func(g *Gemini) { g.baseURL = baseURL }
}

// WithGeminiModel selects a model.
func WithGeminiModel(model string) GeminiOption {
	return func(g *Gemini) { g.model = model }
}

func NewGemini(apiKey string, opts ...GeminiOption) *Gemini {
	g := &Gemini{
		apiKey:     apiKey,
		model:      defaultGeminiModel,
		baseURL:    defaultGeminiBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate sends one prompt and returns the raw model text.
func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read model response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("failed to parse model response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// stripFences removes markdown code fences the model tends to wrap JSON in.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// NutritionFromText extracts a meal from a food description.
func (g *Gemini) NutritionFromText(ctx context.Context, text string) (models.Meal, error) {
	prompt := fmt.Sprintf(`Analyze the following food description and estimate its nutrition.
Return the data as a JSON object with the following keys: "name", "calories", "protein", "fat", "carbs", "fiber".
If a value is not present, set it to 0.

Input text: %q

JSON output:`, text)

	out, err := g.generate(ctx, prompt)
	if err != nil {
		return models.Meal{}, err
	}
	var meal models.Meal
	if err := json.Unmarshal([]byte(stripFences(out)), &meal); err != nil {
		return models.Meal{}, fmt.Errorf("failed to parse nutrition info: %w", err)
	}
	return meal, nil
}

// WorkoutFromText extracts a workout session from a description.
func (g *Gemini) WorkoutFromText(ctx context.Context, text string) (models.WorkoutSession, error) {
	prompt := fmt.Sprintf(`Analyze the following text and extract the workout information.
Return a JSON object with these keys:
  "name" (string), "type" ("cardio" or "weightlifting"), "duration" (minutes, number),
  "caloriesBurned" (number), "averageHeartRate" (number, optional),
  "distance" (number, cardio only), "pace" (number, cardio only),
  "exercises" (array of {"id": "generate-id", "name", "type", "bodyPart", "sets": [{"reps", "weight"}], "duration", "distance"}).
If a field is not mentioned, use a reasonable default (0 for numbers, empty string for strings, empty array for lists).

Input text: %q

JSON output:`, text)

	out, err := g.generate(ctx, prompt)
	if err != nil {
		return models.WorkoutSession{}, err
	}
	var workout models.WorkoutSession
	if err := json.Unmarshal([]byte(stripFences(out)), &workout); err != nil {
		return models.WorkoutSession{}, fmt.Errorf("failed to parse workout info: %w", err)
	}
	if workout.Exercises == nil {
		workout.Exercises = []models.Exercise{}
	}
	for i := range workout.Exercises {
		if workout.Exercises[i].ID == "" || workout.Exercises[i].ID == "generate-id" {
			workout.Exercises[i].ID = uuid.NewString()
		}
	}
	return workout, nil
}

// Ask answers a free-form prompt grounded by the context bundle, returning an
// intent-tagged structured response.
func (g *Gemini) Ask(ctx context.Context, prompt, contextBundle string) (Response, error) {
	full := fmt.Sprintf(`%s

You are a fitness and nutrition assistant. Decide the user's intent and respond with a JSON object:
  "intent": one of LOG_FOOD, LOG_WORKOUT, ASK_QUESTION, ANALYZE_MEAL_IMAGE, GENERATE_WORKOUT, SUMMARIZE_WEEK, UNKNOWN
  "data": the structured payload for the intent (a meal object for LOG_FOOD, a workout object for LOG_WORKOUT, otherwise {})
  "summary": a short user-facing summary of your answer or the action taken

User request: %q

JSON output:`, contextBundle, prompt)

	out, err := g.generate(ctx, full)
	if err != nil {
		return Response{}, err
	}
	var resp Response
	if err := json.Unmarshal([]byte(stripFences(out)), &resp); err != nil {
		return Response{}, fmt.Errorf("failed to parse assistant response: %w", err)
	}
	if resp.Intent == "" {
		resp.Intent = IntentUnknown
	}
	return resp, nil
}
