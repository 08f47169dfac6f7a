// Package assistant is the boundary to the text-to-structured-data service.
// Results are advisory: callers route them back through the regular store
// mutations, never a separate write path.
package assistant

import (
	"context"
	"encoding/json"

	"github.com/julianstephens/vitalog/internal/models"
)

// Intent tags what the model decided the user wants.
type Intent string

const (
	IntentLogFood          Intent = "LOG_FOOD"
	IntentLogWorkout       Intent = "LOG_WORKOUT"
	IntentAskQuestion      Intent = "ASK_QUESTION"
	IntentAnalyzeMealImage Intent = "ANALYZE_MEAL_IMAGE"
	IntentGenerateWorkout  Intent = "GENERATE_WORKOUT"
	IntentSummarizeWeek    Intent = "SUMMARIZE_WEEK"
	IntentUnknown          Intent = "UNKNOWN"
)

// Response is the intent-tagged structured answer to a free-form prompt.
// Data holds the intent-specific payload (a partial Meal for LOG_FOOD, a
// partial WorkoutSession for LOG_WORKOUT, ...); Summary is the user-facing
// explanation.
type Response struct {
	Intent  Intent          `json:"intent"`
	Data    json.RawMessage `json:"data"`
	Summary string          `json:"summary"`
}

// Parser turns free text into structured entries.
type Parser interface {
	// NutritionFromText extracts a meal from a food description.
	NutritionFromText(ctx context.Context, text string) (models.Meal, error)
	// WorkoutFromText extracts a workout session from a description.
	WorkoutFromText(ctx context.Context, text string) (models.WorkoutSession, error)
	// Ask answers a free-form prompt grounded by the context bundle.
	Ask(ctx context.Context, prompt, contextBundle string) (Response, error)
}
