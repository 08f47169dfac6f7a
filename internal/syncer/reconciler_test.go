package syncer

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/vitalog/internal/models"
	"github.com/julianstephens/vitalog/internal/storage"
	"github.com/julianstephens/vitalog/internal/store"
)

type fakeSource struct {
	day *models.DailyFitbitData
	err error
}

func (f *fakeSource) DailyActivity(ctx context.Context, date string) (*models.DailyFitbitData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.day, nil
}

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	adapter := storage.NewFileAdapter(filepath.Join(t.TempDir(), "vitalog.json"))
	s := store.Open(adapter)
	t.Cleanup(func() {
		s.Flush()
		adapter.Close()
	})
	return s
}

func sampleDay() *models.DailyFitbitData {
	hrv := 51.0
	return &models.DailyFitbitData{
		Summary: &models.FitbitSummary{
			CaloriesOut:      2450,
			Steps:            9500,
			RestingHeartRate: 56,
		},
		HRV: &hrv,
		Activities: []models.FitbitActivity{
			{LogID: 101, Name: "Run", Calories: 320, Duration: 1800000, Distance: 3.1},
			{LogID: 102, Name: "Weights", Calories: 210, Duration: 2700000},
		},
	}
}

func TestSyncDateMaterializesActivities(t *testing.T) {
	s := setupTestStore(t)
	rec := New(s, &fakeSource{day: sampleDay()})

	added, err := rec.SyncDate(context.Background(), "2025-07-01")
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if added != 2 {
		t.Fatalf("expected 2 new workouts, got %d", added)
	}

	log := s.LogForDate("2025-07-01")
	if log == nil || len(log.Workouts) != 2 {
		t.Fatalf("expected 2 workouts in the log, got %+v", log)
	}

	run := log.Workouts[0]
	if run.FitbitLogID == nil || *run.FitbitLogID != 101 {
		t.Errorf("expected source id 101, got %+v", run.FitbitLogID)
	}
	if run.Type != models.WorkoutCardio {
		t.Errorf("expected Run classified as cardio, got %q", run.Type)
	}
	if run.Duration != 30 {
		t.Errorf("expected 1800000ms as 30 minutes, got %v", run.Duration)
	}
	if log.Workouts[1].Type != models.WorkoutWeightlifting {
		t.Errorf("expected Weights classified as weightlifting, got %q", log.Workouts[1].Type)
	}

	// Scalar metrics land in the log, with summary values as fallback.
	if log.HRV == nil || *log.HRV != 51 {
		t.Errorf("expected hrv 51, got %+v", log.HRV)
	}
	if log.RHR == nil || *log.RHR != 56 {
		t.Errorf("expected rhr 56 from the summary, got %+v", log.RHR)
	}
	if log.Calories == nil || *log.Calories != 2450 {
		t.Errorf("expected calories 2450 from the summary, got %+v", log.Calories)
	}

	// The raw snapshot is cached alongside the log.
	fd := s.FitbitDataForDate("2025-07-01")
	if fd == nil || fd.Summary == nil || fd.Summary.Steps != 9500 {
		t.Errorf("expected cached snapshot, got %+v", fd)
	}
}

func TestSyncDateIsIdempotent(t *testing.T) {
	s := setupTestStore(t)
	rec := New(s, &fakeSource{day: sampleDay()})

	if _, err := rec.SyncDate(context.Background(), "2025-07-02"); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	added, err := rec.SyncDate(context.Background(), "2025-07-02")
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if added != 0 {
		t.Errorf("re-sync must not add duplicates, got %d", added)
	}
	if got := len(s.LogForDate("2025-07-02").Workouts); got != 2 {
		t.Errorf("expected 2 workouts after re-sync, got %d", got)
	}
}

func TestSyncDatePreservesUserWorkouts(t *testing.T) {
	s := setupTestStore(t)
	date := "2025-07-03"
	s.AddWorkout(date, models.WorkoutSession{Name: "Push Day", Type: models.WorkoutWeightlifting, Date: date})

	rec := New(s, &fakeSource{day: sampleDay()})
	added, err := rec.SyncDate(context.Background(), date)
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if added != 2 {
		t.Fatalf("expected 2 new workouts, got %d", added)
	}

	workouts := s.LogForDate(date).Workouts
	if len(workouts) != 3 {
		t.Fatalf("expected 3 workouts, got %d", len(workouts))
	}
	if workouts[0].Name != "Push Day" || workouts[0].FitbitLogID != nil {
		t.Errorf("user workout must be untouched, got %+v", workouts[0])
	}
}

func TestSyncDateFetchFailureLeavesLogUnchanged(t *testing.T) {
	s := setupTestStore(t)
	date := "2025-07-04"
	s.AddMeal(date, models.Meal{Name: "Lunch", Calories: 500})

	fetchErr := errors.New("upstream unavailable")
	rec := New(s, &fakeSource{err: fetchErr})

	_, err := rec.SyncDate(context.Background(), date)
	if err == nil {
		t.Fatal("expected sync to fail")
	}
	var serr *SyncError
	if !errors.As(err, &serr) {
		t.Fatalf("expected a SyncError, got %T", err)
	}
	if serr.Date != date {
		t.Errorf("expected error tagged with %s, got %s", date, serr.Date)
	}
	if !errors.Is(err, fetchErr) {
		t.Error("expected the fetch error to be wrapped")
	}

	log := s.LogForDate(date)
	if len(log.Workouts) != 0 || log.HRV != nil || log.Calories != nil {
		t.Errorf("a failed fetch must not mutate the log, got %+v", log)
	}
	if s.FitbitDataForDate(date) != nil {
		t.Error("a failed fetch must not cache a snapshot")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		activity models.FitbitActivity
		want     models.WorkoutType
	}{
		{"treadmill run", models.FitbitActivity{Name: "Treadmill Run"}, models.WorkoutCardio},
		{"weights", models.FitbitActivity{Name: "Weights"}, models.WorkoutWeightlifting},
		{"strength training", models.FitbitActivity{Name: "Strength Training"}, models.WorkoutWeightlifting},
		{"parent name fallback", models.FitbitActivity{ActivityParentName: "Resistance workout"}, models.WorkoutWeightlifting},
		{"calisthenics", models.FitbitActivity{Name: "Calisthenics"}, models.WorkoutWeightlifting},
		{"bike", models.FitbitActivity{Name: "Outdoor Bike"}, models.WorkoutCardio},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.activity); got != tt.want {
				t.Errorf("classify(%q) = %q, want %q", tt.activity.Name, got, tt.want)
			}
		})
	}
}
