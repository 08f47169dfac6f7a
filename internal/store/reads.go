package store

import (
	"github.com/julianstephens/vitalog/internal/models"
	"github.com/julianstephens/vitalog/internal/utils"
)

// Read operations. Every value handed out is a deep copy so no caller can
// mutate the live document behind the store's back.

// Document returns a snapshot of the whole document.
func (s *Store) Document() *models.AppDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// LogForDate returns the log for the given date, or nil when no log exists
// yet. "No log yet" is observable only at this boundary; once created a log
// always carries concrete default field values.
func (s *Store) LogForDate(date string) *models.DailyLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Logs[date].Clone()
}

// TodaysLog returns the log for the current local calendar day, or nil.
func (s *Store) TodaysLog() *models.DailyLog {
	return s.LogForDate(utils.Today())
}

// Logs returns a snapshot of all daily logs keyed by date.
func (s *Store) Logs() map[string]*models.DailyLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]*models.DailyLog, len(s.doc.Logs))
	for date, log := range s.doc.Logs {
		out[date] = log.Clone()
	}
	return out
}

// Targets returns the nutrition targets.
func (s *Store) Targets() models.NutritionTargets {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Targets
}

// Profile returns a snapshot of the user profile, or nil when unset.
func (s *Store) Profile() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.UserProfile.Clone()
}

// Library returns the seeded reference exercises.
func (s *Store) Library() []models.LibraryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LibraryItem, len(s.doc.Library))
	copy(out, s.doc.Library)
	return out
}

// CommonFoods returns the saved favorites in insertion order.
func (s *Store) CommonFoods() []models.CommonFood {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CommonFood, len(s.doc.CommonFoods))
	copy(out, s.doc.CommonFoods)
	return out
}

// FitbitDataForDate returns the cached external data for a date, or nil.
func (s *Store) FitbitDataForDate(date string) *models.DailyFitbitData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.FitbitData[date].Clone()
}

// GeminiAPIKey returns the stored assistant API key, or "".
func (s *Store) GeminiAPIKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc.Settings == nil {
		return ""
	}
	return s.doc.Settings.GeminiAPIKey
}
