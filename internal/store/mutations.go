package store

import (
	"github.com/julianstephens/vitalog/internal/models"
)

// Mutation operations. Each is total: a missing daily log is synthesized by
// the lazy-creation rule, and an out-of-range index is a no-op that leaves
// every sibling date untouched.

// AddMeal appends a meal to the given date's log, creating the log if absent.
func (s *Store) AddMeal(date string, meal models.Meal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.ensureLog(date)
	log.Meals = append(log.Meals, meal)
	s.persistLocked()
}

// UpdateMeal replaces the meal at index. No-op when the log or index does not
// exist.
func (s *Store) UpdateMeal(date string, index int, meal models.Meal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log, ok := s.doc.Logs[date]
	if !ok || index < 0 || index >= len(log.Meals) {
		return
	}
	log.Meals[index] = meal
	s.persistLocked()
}

// DeleteMeal removes the meal at index. Later meals shift down one position.
func (s *Store) DeleteMeal(date string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log, ok := s.doc.Logs[date]
	if !ok || index < 0 || index >= len(log.Meals) {
		return
	}
	log.Meals = append(log.Meals[:index], log.Meals[index+1:]...)
	s.persistLocked()
}

// AddWorkout appends a workout session to the given date's log, creating the
// log if absent.
func (s *Store) AddWorkout(date string, workout models.WorkoutSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.ensureLog(date)
	log.Workouts = append(log.Workouts, workout)
	s.persistLocked()
}

// UpdateWorkout replaces the session at index. No-op when the log or index
// does not exist.
func (s *Store) UpdateWorkout(date string, index int, workout models.WorkoutSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log, ok := s.doc.Logs[date]
	if !ok || index < 0 || index >= len(log.Workouts) {
		return
	}
	log.Workouts[index] = workout
	s.persistLocked()
}

// DeleteWorkout removes the session at index.
func (s *Store) DeleteWorkout(date string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log, ok := s.doc.Logs[date]
	if !ok || index < 0 || index >= len(log.Workouts) {
		return
	}
	log.Workouts = append(log.Workouts[:index], log.Workouts[index+1:]...)
	s.persistLocked()
}

// SaveMeasurements shallow-merges the provided fields into the date's log,
// creating it if absent.
func (s *Store) SaveMeasurements(date string, patch models.DailyLogPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.ensureLog(date)
	log.Apply(patch)
	s.persistLocked()
}

// UpdateWeight records the day's weight on the log and mirrors it onto the
// profile's current weight. Both views of the same fact update together; a
// missing profile is created so the operation stays total.
func (s *Store) UpdateWeight(date string, weight float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.ensureLog(date)
	w := weight
	log.Weight = &w
	if s.doc.UserProfile == nil {
		s.doc.UserProfile = &models.UserProfile{Measurements: []models.Measurement{}}
	}
	s.doc.UserProfile.CurrentWeight = weight
	s.persistLocked()
}

// UpdateUserProfile fully replaces the profile.
func (s *Store) UpdateUserProfile(profile models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := profile
	if p.Measurements == nil {
		p.Measurements = []models.Measurement{}
	}
	s.doc.UserProfile = &p
	s.persistLocked()
}

// UpdateTargets replaces the nutrition targets.
func (s *Store) UpdateTargets(targets models.NutritionTargets) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Targets = targets
	s.persistLocked()
}

// AddCommonFood appends to the favorites list. Repeated identical saves
// produce repeated entries; the list is append-only and never deduplicated.
func (s *Store) AddCommonFood(food models.CommonFood) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.CommonFoods = append(s.doc.CommonFoods, food)
	s.persistLocked()
}

// AddBodyMeasurement records a dated body-part measurement.
func (s *Store) AddBodyMeasurement(m models.BodyMeasurement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Measurements = append(s.doc.Measurements, m)
	s.persistLocked()
}

// SetFitbitData shallow-merges externally-fetched data into the date's cache
// entry. Later values overwrite earlier ones (last write wins).
func (s *Store) SetFitbitData(date string, partial models.DailyFitbitData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.doc.FitbitData[date]
	if !ok {
		day = &models.DailyFitbitData{Activities: []models.FitbitActivity{}}
		s.doc.FitbitData[date] = day
	}
	day.Merge(partial)
	s.persistLocked()
}

// SetGeminiAPIKey stores (or with an empty key, clears) the assistant API key
// in the document settings.
func (s *Store) SetGeminiAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key == "" {
		if s.doc.Settings != nil {
			s.doc.Settings.GeminiAPIKey = ""
		}
	} else {
		if s.doc.Settings == nil {
			s.doc.Settings = &models.Settings{}
		}
		s.doc.Settings.GeminiAPIKey = key
	}
	s.persistLocked()
}
