package aggregate

import (
	"testing"

	"github.com/julianstephens/vitalog/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestNutritionTotals(t *testing.T) {
	log := &models.DailyLog{
		Date: "2025-07-10",
		Meals: []models.Meal{
			{Name: "Breakfast", Calories: 300, Protein: 20, Fat: 10, Carbs: 35, Fiber: 5},
			{Name: "Lunch", Calories: 450, Protein: 35, Fat: 15, Carbs: 40, Fiber: 8},
		},
	}

	got := NutritionTotals(log)
	want := Totals{Calories: 750, Protein: 55, Fat: 25, Carbs: 75, Fiber: 13}
	if got != want {
		t.Errorf("NutritionTotals = %+v, want %+v", got, want)
	}
}

func TestNutritionTotalsEmptyAndNil(t *testing.T) {
	if got := NutritionTotals(nil); got != (Totals{}) {
		t.Errorf("nil log must total zero, got %+v", got)
	}
	if got := NutritionTotals(&models.DailyLog{Date: "2025-07-10"}); got != (Totals{}) {
		t.Errorf("empty log must total zero, got %+v", got)
	}
}

func TestTrendSeriesSparseAscending(t *testing.T) {
	logs := map[string]*models.DailyLog{
		"2025-07-03": {Date: "2025-07-03", Weight: floatPtr(181.0)},
		"2025-07-01": {Date: "2025-07-01", Weight: floatPtr(182.5)},
		"2025-07-02": {Date: "2025-07-02"}, // no weight logged
		"2025-07-04": nil,
	}

	points, err := TrendSeries(logs, FieldWeight)
	if err != nil {
		t.Fatalf("TrendSeries failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Date != "2025-07-01" || points[0].Value != 182.5 {
		t.Errorf("unexpected first point: %+v", points[0])
	}
	if points[1].Date != "2025-07-03" || points[1].Value != 181.0 {
		t.Errorf("unexpected second point: %+v", points[1])
	}
}

func TestTrendSeriesIntFields(t *testing.T) {
	logs := map[string]*models.DailyLog{
		"2025-07-01": {Date: "2025-07-01", Energy: intPtr(4)},
	}
	points, err := TrendSeries(logs, FieldEnergy)
	if err != nil {
		t.Fatalf("TrendSeries failed: %v", err)
	}
	if len(points) != 1 || points[0].Value != 4 {
		t.Errorf("expected one point of value 4, got %+v", points)
	}
}

func TestTrendSeriesUnknownField(t *testing.T) {
	if _, err := TrendSeries(nil, TrendField("bogus")); err == nil {
		t.Error("expected an error for an unknown field")
	}
}

func TestRecentLogsNewestFirst(t *testing.T) {
	logs := map[string]*models.DailyLog{
		"2025-07-01": {Date: "2025-07-01"},
		"2025-07-03": {Date: "2025-07-03"},
		"2025-07-02": {Date: "2025-07-02"},
		"2025-07-04": nil,
	}

	recent := RecentLogs(logs, 2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(recent))
	}
	if recent[0].Date != "2025-07-03" || recent[1].Date != "2025-07-02" {
		t.Errorf("expected newest first, got [%s %s]", recent[0].Date, recent[1].Date)
	}

	if got := RecentLogs(map[string]*models.DailyLog{}, 3); len(got) != 0 {
		t.Errorf("expected no logs from an empty map, got %d", len(got))
	}
}
