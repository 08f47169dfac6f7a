package models

// Settings is the document-embedded settings bag. The Gemini API key is
// stored plaintext, user-supplied.
type Settings struct {
	GeminiAPIKey string `json:"geminiApiKey,omitempty"`
}

// AppDocument is the root of all persisted application data. It is owned
// exclusively by the state store; nothing else holds a mutable reference to
// it across a mutation.
type AppDocument struct {
	Targets      NutritionTargets            `json:"targets"`
	Logs         map[string]*DailyLog        `json:"logs"`
	Library      []LibraryItem               `json:"library"`
	Measurements []BodyMeasurement           `json:"measurements"`
	CommonFoods  []CommonFood                `json:"commonFoods"`
	UserProfile  *UserProfile                `json:"userProfile,omitempty"`
	Settings     *Settings                   `json:"settings,omitempty"`
	FitbitData   map[string]*DailyFitbitData `json:"fitbitData"`
}

// DefaultTargets are the seeded nutrition targets for a brand-new document.
func DefaultTargets() NutritionTargets {
	return NutritionTargets{
		Calories: 2500,
		Protein:  180,
		Fat:      70,
		Carbs:    250,
		Fiber:    30,
		Sodium:   2300,
	}
}

// DefaultLibrary seeds the three built-in reference exercises.
func DefaultLibrary() []LibraryItem {
	return []LibraryItem{
		{ID: "1", Name: "Bench Press", Muscles: "Chest, Shoulders, Triceps", CopyText: "Log 3 sets of 5 reps of Bench Press at 135 lbs"},
		{ID: "2", Name: "Squat", Muscles: "Quads, Glutes, Hamstrings", CopyText: "Log 3 sets of 5 reps of Squat at 225 lbs"},
		{ID: "3", Name: "Deadlift", Muscles: "Back, Glutes, Hamstrings", CopyText: "Log 1 set of 5 reps of Deadlift at 315 lbs"},
	}
}

// NewDocument constructs the default document for a fresh installation,
// seeded with an empty log for today and the built-in library.
func NewDocument(today string) *AppDocument {
	return &AppDocument{
		Targets: DefaultTargets(),
		Logs: map[string]*DailyLog{
			today: NewDailyLog(today),
		},
		Library:      DefaultLibrary(),
		Measurements: []BodyMeasurement{},
		CommonFoods:  []CommonFood{},
		FitbitData:   map[string]*DailyFitbitData{},
	}
}

// Normalize backfills fields added by later schema versions so that older
// persisted documents remain loadable, and guarantees today's log exists.
// Unknown legacy fields (the old top-level api key) are dropped by decoding
// into the typed document.
func (d *AppDocument) Normalize(today string) {
	if d.Logs == nil {
		d.Logs = map[string]*DailyLog{}
	}
	for date, log := range d.Logs {
		if log == nil {
			d.Logs[date] = NewDailyLog(date)
			continue
		}
		if log.Date == "" {
			log.Date = date
		}
		if log.Meals == nil {
			log.Meals = []Meal{}
		}
		if log.Workouts == nil {
			log.Workouts = []WorkoutSession{}
		}
	}
	if _, ok := d.Logs[today]; !ok {
		d.Logs[today] = NewDailyLog(today)
	}
	if d.Library == nil {
		d.Library = DefaultLibrary()
	}
	if d.Measurements == nil {
		d.Measurements = []BodyMeasurement{}
	}
	if d.CommonFoods == nil {
		d.CommonFoods = []CommonFood{}
	}
	if d.FitbitData == nil {
		d.FitbitData = map[string]*DailyFitbitData{}
	}
	for date, day := range d.FitbitData {
		if day == nil {
			d.FitbitData[date] = &DailyFitbitData{Activities: []FitbitActivity{}}
		} else if day.Activities == nil {
			day.Activities = []FitbitActivity{}
		}
	}
}
