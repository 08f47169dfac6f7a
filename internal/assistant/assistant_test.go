package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julianstephens/vitalog/internal/models"
)

// fakeGeminiServer answers every generateContent call with the given model
// text wrapped in the API response envelope.
func fakeGeminiServer(t *testing.T, modelText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") == "" {
			t.Error("expected api key in query string")
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": modelText}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNutritionFromText(t *testing.T) {
	srv := fakeGeminiServer(t, "```json\n{\"name\": \"Chicken Salad\", \"calories\": 420, \"protein\": 38, \"fat\": 22, \"carbs\": 12, \"fiber\": 4}\n```")
	defer srv.Close()

	g := NewGemini("test-key", WithGeminiBaseURL(srv.URL))
	meal, err := g.NutritionFromText(context.Background(), "a big chicken salad")
	if err != nil {
		t.Fatalf("NutritionFromText failed: %v", err)
	}
	if meal.Name != "Chicken Salad" || meal.Calories != 420 || meal.Protein != 38 {
		t.Errorf("unexpected meal: %+v", meal)
	}
}

func TestWorkoutFromTextBackfillsExerciseIDs(t *testing.T) {
	srv := fakeGeminiServer(t, `{
		"name": "Push Day", "type": "weightlifting", "duration": 45,
		"exercises": [
			{"id": "generate-id", "name": "Bench Press", "type": "weightlifting", "sets": [{"reps": 5, "weight": 135}]},
			{"id": "", "name": "Overhead Press", "type": "weightlifting", "sets": []}
		]
	}`)
	defer srv.Close()

	g := NewGemini("test-key", WithGeminiBaseURL(srv.URL))
	w, err := g.WorkoutFromText(context.Background(), "bench and ohp for 45 minutes")
	if err != nil {
		t.Fatalf("WorkoutFromText failed: %v", err)
	}
	if w.Type != models.WorkoutWeightlifting || w.Duration != 45 {
		t.Errorf("unexpected workout: %+v", w)
	}
	if len(w.Exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(w.Exercises))
	}
	for i, ex := range w.Exercises {
		if ex.ID == "" || ex.ID == "generate-id" {
			t.Errorf("exercise %d id was not generated: %q", i, ex.ID)
		}
	}
}

func TestAskDecodesIntentResponse(t *testing.T) {
	srv := fakeGeminiServer(t, `{"intent": "LOG_FOOD", "data": {"name": "Banana", "calories": 105}, "summary": "Logged a banana."}`)
	defer srv.Close()

	g := NewGemini("test-key", WithGeminiBaseURL(srv.URL))
	resp, err := g.Ask(context.Background(), "I ate a banana", "")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if resp.Intent != IntentLogFood {
		t.Errorf("expected LOG_FOOD, got %q", resp.Intent)
	}
	var meal models.Meal
	if err := json.Unmarshal(resp.Data, &meal); err != nil {
		t.Fatalf("data payload not decodable: %v", err)
	}
	if meal.Name != "Banana" || meal.Calories != 105 {
		t.Errorf("unexpected meal payload: %+v", meal)
	}
}

func TestAskDefaultsMissingIntentToUnknown(t *testing.T) {
	srv := fakeGeminiServer(t, `{"data": {}, "summary": "Not sure."}`)
	defer srv.Close()

	g := NewGemini("test-key", WithGeminiBaseURL(srv.URL))
	resp, err := g.Ask(context.Background(), "???", "")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if resp.Intent != IntentUnknown {
		t.Errorf("expected UNKNOWN, got %q", resp.Intent)
	}
}

func TestGenerateSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGemini("test-key", WithGeminiBaseURL(srv.URL))
	if _, err := g.NutritionFromText(context.Background(), "toast"); err == nil {
		t.Error("expected an error from a failing endpoint")
	}
}

func TestBuildContext(t *testing.T) {
	weight := 180.0
	doc := &models.AppDocument{
		Targets: models.DefaultTargets(),
		Logs: map[string]*models.DailyLog{
			"2025-07-01": {Date: "2025-07-01", Weight: &weight, Meals: []models.Meal{{Name: "Oatmeal", Calories: 300}}},
			"2025-07-02": {Date: "2025-07-02"},
		},
		UserProfile: &models.UserProfile{PrimaryGoal: "Cut to 175"},
	}

	bundle := BuildContext(doc)
	if !strings.Contains(bundle, "Model Context Protocol") {
		t.Error("expected the MCP header")
	}
	if !strings.Contains(bundle, "Cut to 175") {
		t.Error("expected the profile in the bundle")
	}
	if !strings.Contains(bundle, "2025-07-02") || !strings.Contains(bundle, "2025-07-01") {
		t.Error("expected recent logs in the bundle")
	}
	if !strings.Contains(bundle, "Oatmeal") {
		t.Error("expected meal detail in the recent history")
	}
}

func TestBuildContextWithoutProfile(t *testing.T) {
	doc := &models.AppDocument{Targets: models.DefaultTargets(), Logs: map[string]*models.DailyLog{}}
	bundle := BuildContext(doc)
	if !strings.Contains(bundle, "No profile set.") {
		t.Error("expected the no-profile marker")
	}
}
