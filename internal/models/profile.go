package models

// Measurement is a single named body measurement on the profile. Names are
// unique by convention only; nothing enforces it.
type Measurement struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"` // "in" or "cm"
}

// BodyMeasurement is a dated measurement of one body part, kept at the top
// level of the document for trend history.
type BodyMeasurement struct {
	Date  string  `json:"date"`
	Part  string  `json:"part"`
	Value float64 `json:"value"`
}

// UserProfile holds the user's goals, biometrics, and training protocols.
type UserProfile struct {
	PrimaryGoal        string        `json:"primaryGoal"`
	TargetDate         string        `json:"targetDate"`
	MissionStatement   string        `json:"missionStatement"`
	Height             string        `json:"height"`
	StartingWeight     float64       `json:"startingWeight"`
	CurrentWeight      float64       `json:"currentWeight,omitempty"`
	Measurements       []Measurement `json:"measurements"`
	HealthFactors      string        `json:"healthFactors"`
	ReadinessModel     string        `json:"readinessModel"`
	TrainingSplit      string        `json:"trainingSplit"`
	CardioTargets      string        `json:"cardioTargets"`
	TrainingDayTargets MacroTargets  `json:"trainingDayTargets"`
	RecoveryDayTargets MacroTargets  `json:"recoveryDayTargets"`
}

// LibraryItem is a static reference exercise seeded at document creation.
type LibraryItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Muscles  string `json:"muscles"`
	CopyText string `json:"copyText"`
}
