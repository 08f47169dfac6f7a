package cli

import (
	"fmt"

	"github.com/julianstephens/vitalog/internal/aggregate"
	"github.com/julianstephens/vitalog/internal/utils"
)

// TodayCmd shows the current day's log and nutrition totals against targets.
type TodayCmd struct {
	Date string `short:"d" help:"Show a different day (YYYY-MM-DD)."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}

	log := ctx.Store.LogForDate(date)
	if log == nil {
		fmt.Printf("No log for %s yet.\n", date)
		return nil
	}

	fmt.Println(TitleStyle.Render(date))

	totals := aggregate.NutritionTotals(log)
	targets := ctx.Store.Targets()
	fmt.Println(TitleStyle.Render("Nutrition"))
	printMacro("Calories", totals.Calories, targets.Calories)
	printMacro("Protein", totals.Protein, targets.Protein)
	printMacro("Fat", totals.Fat, targets.Fat)
	printMacro("Carbs", totals.Carbs, targets.Carbs)
	printMacro("Fiber", totals.Fiber, targets.Fiber)

	if len(log.Meals) > 0 {
		fmt.Println(TitleStyle.Render("Meals"))
		for i, meal := range log.Meals {
			fmt.Printf("  %d. %s %s\n", i, ValueStyle.Render(meal.Name),
				MutedStyle.Render(fmt.Sprintf("(%.0f kcal, %.0fg protein)", meal.Calories, meal.Protein)))
		}
	}

	if len(log.Workouts) > 0 {
		fmt.Println(TitleStyle.Render("Workouts"))
		for i, w := range log.Workouts {
			tag := ""
			if w.IsSynced() {
				tag = MutedStyle.Render(" [synced]")
			}
			fmt.Printf("  %d. %s %s%s\n", i, ValueStyle.Render(w.Name),
				MutedStyle.Render(fmt.Sprintf("(%s, %.0f min, %.0f kcal)", w.Type, w.Duration, w.CaloriesBurned)), tag)
		}
	}

	fmt.Println(TitleStyle.Render("Metrics"))
	printMetric("Weight", log.Weight)
	printScore("Energy", log.Energy)
	printScore("Soreness", log.Soreness)
	printScore("Sleep quality", log.SleepQuality)
	printScore("Yesterday's stress", log.YesterdayStress)
	printMetric("HRV", log.HRV)
	printMetric("RHR", log.RHR)
	printMetric("Calories out", log.Calories)
	printMetric("Readiness", log.Readiness)
	if log.Notes != "" {
		fmt.Printf("  %s %s\n", LabelStyle.Render("Notes:"), log.Notes)
	}

	return nil
}

func printMacro(name string, value, target float64) {
	rendered := OkStyle.Render(fmt.Sprintf("%.0f", value))
	if target > 0 && value > target {
		rendered = WarnStyle.Render(fmt.Sprintf("%.0f", value))
	}
	fmt.Printf("  %s %s / %.0f\n", LabelStyle.Render(name+":"), rendered, target)
}

func printMetric(name string, v *float64) {
	if v == nil {
		return
	}
	fmt.Printf("  %s %s\n", LabelStyle.Render(name+":"), ValueStyle.Render(fmt.Sprintf("%.1f", *v)))
}

func printScore(name string, v *int) {
	if v == nil {
		return
	}
	fmt.Printf("  %s %s\n", LabelStyle.Render(name+":"), ValueStyle.Render(fmt.Sprintf("%d/5", *v)))
}
