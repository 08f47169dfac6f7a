// Package syncer folds externally-fetched daily activity into the local log:
// scalar metrics merge through the same patch primitive as manual entry, and
// new activity records materialize as workout sessions keyed by their source
// log id so a re-sync never duplicates them.
package syncer

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/vitalog/internal/logger"
	"github.com/julianstephens/vitalog/internal/models"
	"github.com/julianstephens/vitalog/internal/store"
)

// SyncError wraps any fetch or transform failure. Syncs are user-initiated
// per date, so every SyncError is retryable on the next attempt; no partial
// merge is ever committed.
type SyncError struct {
	Date string
	Err  error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync failed for %s: %v", e.Date, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// ActivitySource fetches one date's external summary and activity list.
type ActivitySource interface {
	DailyActivity(ctx context.Context, date string) (*models.DailyFitbitData, error)
}

// Reconciler merges external activity into the store.
type Reconciler struct {
	store  *store.Store
	source ActivitySource
}

func New(s *store.Store, source ActivitySource) *Reconciler {
	return &Reconciler{store: s, source: source}
}

// strengthKeywords classify an external activity as weightlifting; anything
// else is treated as cardio.
var strengthKeywords = []string{"weight", "strength", "lifting", "resistance", "calisthenics"}

func classify(activity models.FitbitActivity) models.WorkoutType {
	name := strings.ToLower(activity.Name + " " + activity.ActivityParentName)
	for _, kw := range strengthKeywords {
		if strings.Contains(name, kw) {
			return models.WorkoutWeightlifting
		}
	}
	return models.WorkoutCardio
}

// sessionFromActivity builds the local session for a new external record,
// tagged with the source log id.
func sessionFromActivity(date string, activity models.FitbitActivity) models.WorkoutSession {
	logID := activity.LogID
	name := activity.Name
	if name == "" {
		name = activity.ActivityParentName
	}
	return models.WorkoutSession{
		FitbitLogID:      &logID,
		Type:             classify(activity),
		Name:             name,
		Date:             date,
		Duration:         float64(activity.Duration) / 60000, // ms -> minutes
		CaloriesBurned:   activity.Calories,
		AverageHeartRate: activity.AverageHeartRate,
		Distance:         activity.Distance,
		Exercises:        []models.Exercise{},
	}
}

// SyncDate fetches the external snapshot for one date and reconciles it into
// the log. Returns the number of newly materialized sessions. A fetch
// failure aborts before any mutation, leaving the document exactly as it was.
func (r *Reconciler) SyncDate(ctx context.Context, date string) (int, error) {
	day, err := r.source.DailyActivity(ctx, date)
	if err != nil {
		return 0, &SyncError{Date: date, Err: err}
	}

	// Fold scalar metrics into the log through the same merge primitive as
	// manual metric entry. Last write wins; there is no conflict detection
	// against manually-entered values.
	patch := models.DailyLogPatch{
		HRV:      day.HRV,
		RHR:      day.RHR,
		Calories: day.Calories,
	}
	if day.Summary != nil {
		if patch.RHR == nil && day.Summary.RestingHeartRate > 0 {
			rhr := day.Summary.RestingHeartRate
			patch.RHR = &rhr
		}
		if patch.Calories == nil && day.Summary.CaloriesOut > 0 {
			cal := day.Summary.CaloriesOut
			patch.Calories = &cal
		}
		if patch.HRV == nil && day.Summary.HRV != nil {
			patch.HRV = day.Summary.HRV
		}
	}
	r.store.SaveMeasurements(date, patch)
	r.store.SetFitbitData(date, *day)

	// Materialize only activities whose source id is not already present.
	// Sessions without a source id are user-authored and never touched.
	seen := map[int64]bool{}
	if log := r.store.LogForDate(date); log != nil {
		for _, w := range log.Workouts {
			if w.FitbitLogID != nil {
				seen[*w.FitbitLogID] = true
			}
		}
	}

	added := 0
	for _, activity := range day.Activities {
		if seen[activity.LogID] {
			continue
		}
		r.store.AddWorkout(date, sessionFromActivity(date, activity))
		seen[activity.LogID] = true
		added++
	}

	logger.Info("Sync complete", "date", date, "activities", len(day.Activities), "added", added)
	return added, nil
}
