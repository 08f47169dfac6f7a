package models

// DailyLog is everything logged for a single calendar day. Subjective metrics
// (energy, soreness, sleep quality, yesterday's stress) are 1-5 scores where
// nil means "not recorded", which is distinct from zero. The objective metrics
// (hrv, rhr, calories, readiness) are only populated when an external source
// is connected.
type DailyLog struct {
	Date            string           `json:"date"`
	Weight          *float64         `json:"weight"`
	Energy          *int             `json:"energy"`
	Soreness        *int             `json:"soreness"`
	SleepQuality    *int             `json:"sleepQuality"`
	YesterdayStress *int             `json:"yesterdayStress"`
	HRV             *float64         `json:"hrv,omitempty"`
	RHR             *float64         `json:"rhr,omitempty"`
	Calories        *float64         `json:"calories,omitempty"`
	Readiness       *float64         `json:"readiness,omitempty"`
	Meals           []Meal           `json:"meals"`
	Workouts        []WorkoutSession `json:"workouts"`
	Notes           string           `json:"notes"`
}

// NewDailyLog constructs a fully-defaulted log for the given date. Every
// creation path goes through here so a log is never partially constructed.
func NewDailyLog(date string) *DailyLog {
	return &DailyLog{
		Date:     date,
		Meals:    []Meal{},
		Workouts: []WorkoutSession{},
		Notes:    "",
	}
}

// DailyLogPatch carries the subset of DailyLog fields a caller wants to
// change. A nil pointer leaves the current value untouched.
type DailyLogPatch struct {
	Weight          *float64
	Energy          *int
	Soreness        *int
	SleepQuality    *int
	YesterdayStress *int
	HRV             *float64
	RHR             *float64
	Calories        *float64
	Readiness       *float64
	Notes           *string
}

// Apply shallow-merges the patch into the log.
func (l *DailyLog) Apply(p DailyLogPatch) {
	if p.Weight != nil {
		l.Weight = p.Weight
	}
	if p.Energy != nil {
		l.Energy = p.Energy
	}
	if p.Soreness != nil {
		l.Soreness = p.Soreness
	}
	if p.SleepQuality != nil {
		l.SleepQuality = p.SleepQuality
	}
	if p.YesterdayStress != nil {
		l.YesterdayStress = p.YesterdayStress
	}
	if p.HRV != nil {
		l.HRV = p.HRV
	}
	if p.RHR != nil {
		l.RHR = p.RHR
	}
	if p.Calories != nil {
		l.Calories = p.Calories
	}
	if p.Readiness != nil {
		l.Readiness = p.Readiness
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
}
