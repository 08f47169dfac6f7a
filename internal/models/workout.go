package models

type WorkoutType string

const (
	WorkoutCardio        WorkoutType = "cardio"
	WorkoutWeightlifting WorkoutType = "weightlifting"
)

// ExerciseSet is a single set within a weightlifting exercise.
type ExerciseSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
	IsPR   bool    `json:"isPr,omitempty"`
	Notes  string  `json:"notes,omitempty"`
}

// Exercise is one exercise within a workout session. The Type field decides
// which of the remaining fields are meaningful: weightlifting exercises own
// BodyPart and Sets, cardio exercises own Duration and Distance.
type Exercise struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Type             WorkoutType   `json:"type"`
	BodyPart         string        `json:"bodyPart,omitempty"`
	Sets             []ExerciseSet `json:"sets,omitempty"`
	Duration         float64       `json:"duration,omitempty"` // minutes
	Distance         float64       `json:"distance,omitempty"`
	AverageHeartRate float64       `json:"averageHeartRate,omitempty"`
	CaloriesBurned   float64       `json:"caloriesBurned,omitempty"`
}

// WorkoutSession is a complete logged workout. FitbitLogID is only set on
// sessions materialized by sync; it is the reconciliation key that prevents
// the same external activity from being imported twice. Sessions without it
// are user-authored and must never be touched by sync.
type WorkoutSession struct {
	FitbitLogID      *int64      `json:"fitbitLogId,omitempty"`
	Type             WorkoutType `json:"type"`
	Name             string      `json:"name"`
	Notes            string      `json:"notes,omitempty"`
	Date             string      `json:"date"`
	Duration         float64     `json:"duration"` // minutes
	CaloriesBurned   float64     `json:"caloriesBurned"`
	AverageHeartRate float64     `json:"averageHeartRate,omitempty"`
	Distance         float64     `json:"distance,omitempty"` // cardio only
	Pace             float64     `json:"pace,omitempty"`     // cardio only
	Exercises        []Exercise  `json:"exercises"`
}

// IsSynced reports whether this session was materialized from an external
// activity record.
func (w *WorkoutSession) IsSynced() bool {
	return w.FitbitLogID != nil
}
