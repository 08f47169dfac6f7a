package models

// Deep-copy helpers. Reads from the state store hand out clones so that no
// caller ever holds a mutable reference into the live document.

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a deep copy of the exercise.
func (e Exercise) Clone() Exercise {
	out := e
	if e.Sets != nil {
		out.Sets = make([]ExerciseSet, len(e.Sets))
		copy(out.Sets, e.Sets)
	}
	return out
}

// Clone returns a deep copy of the session.
func (w WorkoutSession) Clone() WorkoutSession {
	out := w
	out.FitbitLogID = cloneInt64(w.FitbitLogID)
	if w.Exercises != nil {
		out.Exercises = make([]Exercise, len(w.Exercises))
		for i, ex := range w.Exercises {
			out.Exercises[i] = ex.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the log.
func (l *DailyLog) Clone() *DailyLog {
	if l == nil {
		return nil
	}
	out := &DailyLog{
		Date:            l.Date,
		Weight:          cloneFloat(l.Weight),
		Energy:          cloneInt(l.Energy),
		Soreness:        cloneInt(l.Soreness),
		SleepQuality:    cloneInt(l.SleepQuality),
		YesterdayStress: cloneInt(l.YesterdayStress),
		HRV:             cloneFloat(l.HRV),
		RHR:             cloneFloat(l.RHR),
		Calories:        cloneFloat(l.Calories),
		Readiness:       cloneFloat(l.Readiness),
		Notes:           l.Notes,
	}
	if l.Meals != nil {
		out.Meals = make([]Meal, len(l.Meals))
		copy(out.Meals, l.Meals)
	}
	if l.Workouts != nil {
		out.Workouts = make([]WorkoutSession, len(l.Workouts))
		for i, w := range l.Workouts {
			out.Workouts[i] = w.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the profile.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	out := *p
	if p.Measurements != nil {
		out.Measurements = make([]Measurement, len(p.Measurements))
		copy(out.Measurements, p.Measurements)
	}
	return &out
}

// Clone returns a deep copy of the day's external data.
func (d *DailyFitbitData) Clone() *DailyFitbitData {
	if d == nil {
		return nil
	}
	out := &DailyFitbitData{
		HRV:      cloneFloat(d.HRV),
		RHR:      cloneFloat(d.RHR),
		Calories: cloneFloat(d.Calories),
	}
	if d.Summary != nil {
		sum := *d.Summary
		sum.HRV = cloneFloat(d.Summary.HRV)
		out.Summary = &sum
	}
	if d.Activities != nil {
		out.Activities = make([]FitbitActivity, len(d.Activities))
		copy(out.Activities, d.Activities)
	}
	return out
}

// Clone returns a deep copy of the whole document.
func (d *AppDocument) Clone() *AppDocument {
	if d == nil {
		return nil
	}
	out := &AppDocument{
		Targets:     d.Targets,
		UserProfile: d.UserProfile.Clone(),
	}
	if d.Logs != nil {
		out.Logs = make(map[string]*DailyLog, len(d.Logs))
		for date, log := range d.Logs {
			out.Logs[date] = log.Clone()
		}
	}
	if d.Library != nil {
		out.Library = make([]LibraryItem, len(d.Library))
		copy(out.Library, d.Library)
	}
	if d.Measurements != nil {
		out.Measurements = make([]BodyMeasurement, len(d.Measurements))
		copy(out.Measurements, d.Measurements)
	}
	if d.CommonFoods != nil {
		out.CommonFoods = make([]CommonFood, len(d.CommonFoods))
		copy(out.CommonFoods, d.CommonFoods)
	}
	if d.Settings != nil {
		s := *d.Settings
		out.Settings = &s
	}
	if d.FitbitData != nil {
		out.FitbitData = make(map[string]*DailyFitbitData, len(d.FitbitData))
		for date, day := range d.FitbitData {
			out.FitbitData[date] = day.Clone()
		}
	}
	return out
}
