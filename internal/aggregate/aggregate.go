// Package aggregate holds the pure read-side computations over document
// snapshots: nutrition totals, trend series, and recent-history selection.
// Nothing in this package mutates a log.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/julianstephens/vitalog/internal/models"
)

// Totals is the summed nutrition across one day's meals.
type Totals struct {
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
	Fiber    float64
}

// NutritionTotals sums the macros across a log's meals. Missing optional
// fields count as 0, and an empty (or absent) log yields all-zero totals.
func NutritionTotals(log *models.DailyLog) Totals {
	var t Totals
	if log == nil {
		return t
	}
	for _, meal := range log.Meals {
		t.Calories += meal.Calories
		t.Protein += meal.Protein
		t.Fat += meal.Fat
		t.Carbs += meal.Carbs
		t.Fiber += meal.Fiber
	}
	return t
}

// TrendPoint is one (date, value) sample in a trend series.
type TrendPoint struct {
	Date  string
	Value float64
}

// TrendField names a DailyLog field that can be charted.
type TrendField string

const (
	FieldWeight          TrendField = "weight"
	FieldHRV             TrendField = "hrv"
	FieldRHR             TrendField = "rhr"
	FieldCalories        TrendField = "calories"
	FieldReadiness       TrendField = "readiness"
	FieldEnergy          TrendField = "energy"
	FieldSoreness        TrendField = "soreness"
	FieldSleepQuality    TrendField = "sleep"
	FieldYesterdayStress TrendField = "stress"
)

// TrendFields lists every chartable field name.
func TrendFields() []TrendField {
	return []TrendField{
		FieldWeight, FieldHRV, FieldRHR, FieldCalories, FieldReadiness,
		FieldEnergy, FieldSoreness, FieldSleepQuality, FieldYesterdayStress,
	}
}

func fieldValue(log *models.DailyLog, field TrendField) (float64, bool) {
	switch field {
	case FieldWeight:
		return deref(log.Weight)
	case FieldHRV:
		return deref(log.HRV)
	case FieldRHR:
		return deref(log.RHR)
	case FieldCalories:
		return deref(log.Calories)
	case FieldReadiness:
		return deref(log.Readiness)
	case FieldEnergy:
		return derefInt(log.Energy)
	case FieldSoreness:
		return derefInt(log.Soreness)
	case FieldSleepQuality:
		return derefInt(log.SleepQuality)
	case FieldYesterdayStress:
		return derefInt(log.YesterdayStress)
	}
	return 0, false
}

func deref(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

func derefInt(p *int) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return float64(*p), true
}

// TrendSeries produces one point per date where the selected field is
// present, sorted ascending by date. Sparse dates are excluded, never
// zero-filled.
func TrendSeries(logs map[string]*models.DailyLog, field TrendField) ([]TrendPoint, error) {
	valid := false
	for _, f := range TrendFields() {
		if f == field {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("unknown trend field: %s", field)
	}

	points := make([]TrendPoint, 0, len(logs))
	for date, log := range logs {
		if log == nil {
			continue
		}
		if v, ok := fieldValue(log, field); ok {
			points = append(points, TrendPoint{Date: date, Value: v})
		}
	}
	// ISO dates sort lexicographically in chronological order.
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

// RecentLogs returns up to count logs, most recent date first.
func RecentLogs(logs map[string]*models.DailyLog, count int) []*models.DailyLog {
	dates := make([]string, 0, len(logs))
	for date := range logs {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	out := make([]*models.DailyLog, 0, count)
	for _, date := range dates {
		if len(out) == count {
			break
		}
		if logs[date] != nil {
			out = append(out, logs[date])
		}
	}
	return out
}
