package models

// Meal is a single logged food entry with its nutritional breakdown.
// Fiber and sodium are optional; computations treat a missing value as 0.
type Meal struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber,omitempty"`
	Sodium   float64 `json:"sodium,omitempty"`
}

// CommonFood is a user-saved favorite. It shares the Meal structure.
type CommonFood = Meal

// NutritionTargets holds the user's daily nutrition goals.
type NutritionTargets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium,omitempty"`
}

// MacroTargets is the training-day/recovery-day variant of the nutrition goals
// stored on the user profile.
type MacroTargets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}
