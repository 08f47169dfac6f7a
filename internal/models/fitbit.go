package models

// FitbitActivity is one raw activity record from the external source. LogID
// is the source-assigned id used as the reconciliation key.
type FitbitActivity struct {
	LogID              int64   `json:"logId"`
	ActivityID         int64   `json:"activityId,omitempty"`
	ActivityParentID   int64   `json:"activityParentId,omitempty"`
	ActivityParentName string  `json:"activityParentName,omitempty"`
	Name               string  `json:"name"`
	Description        string  `json:"description,omitempty"`
	Calories           float64 `json:"calories"`
	Distance           float64 `json:"distance,omitempty"`
	Steps              int     `json:"steps,omitempty"`
	Duration           int64   `json:"duration"` // milliseconds
	StartTime          string  `json:"startTime,omitempty"`
	StartDate          string  `json:"startDate,omitempty"`
	AverageHeartRate   float64 `json:"averageHeartRate,omitempty"`
}

// FitbitSummary is the external daily aggregate.
type FitbitSummary struct {
	CaloriesOut          float64  `json:"caloriesOut"`
	ActivityCalories     float64  `json:"activityCalories"`
	CaloriesBMR          float64  `json:"caloriesBMR"`
	Steps                int      `json:"steps"`
	Floors               int      `json:"floors,omitempty"`
	Elevation            float64  `json:"elevation,omitempty"`
	SedentaryMinutes     int      `json:"sedentaryMinutes"`
	LightlyActiveMinutes int      `json:"lightlyActiveMinutes"`
	FairlyActiveMinutes  int      `json:"fairlyActiveMinutes"`
	VeryActiveMinutes    int      `json:"veryActiveMinutes"`
	RestingHeartRate     float64  `json:"restingHeartRate,omitempty"`
	HRV                  *float64 `json:"hrv,omitempty"`
}

// DailyFitbitData is everything cached from the external source for one day.
// It lives in the document independently of the daily logs until reconciled.
type DailyFitbitData struct {
	Summary    *FitbitSummary   `json:"summary"`
	Activities []FitbitActivity `json:"activities"`
	HRV        *float64         `json:"hrv,omitempty"`
	RHR        *float64         `json:"rhr,omitempty"`
	Calories   *float64         `json:"calories,omitempty"`
}

// Merge shallow-merges the non-nil fields of other into d. Activities replace
// the cached list wholesale when present; this is a last-write-wins cache,
// not an append log.
func (d *DailyFitbitData) Merge(other DailyFitbitData) {
	if other.Summary != nil {
		d.Summary = other.Summary
	}
	if other.Activities != nil {
		d.Activities = other.Activities
	}
	if other.HRV != nil {
		d.HRV = other.HRV
	}
	if other.RHR != nil {
		d.RHR = other.RHR
	}
	if other.Calories != nil {
		d.Calories = other.Calories
	}
}
