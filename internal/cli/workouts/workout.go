// Package workouts holds the workout logging commands.
package workouts

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/vitalog/internal/cli"
	"github.com/julianstephens/vitalog/internal/models"
	"github.com/julianstephens/vitalog/internal/utils"
)

// WorkoutAddCmd appends a workout session to a day's log.
type WorkoutAddCmd struct {
	Name     string  `arg:"" help:"Workout name."`
	Type     string  `short:"t" help:"Workout type (cardio|weightlifting)." default:"cardio"`
	Duration float64 `short:"D" help:"Duration in minutes." required:""`
	Calories float64 `short:"c" help:"Calories burned."`
	AvgHR    float64 `help:"Average heart rate."`
	Distance float64 `help:"Distance (cardio only)."`
	Pace     float64 `help:"Pace (cardio only)."`
	Notes    string  `short:"n" help:"Session notes."`
	Exercise string  `short:"e" help:"Single exercise name to include (weightlifting)."`
	Sets     int     `help:"Number of sets for --exercise." default:"0"`
	Reps     int     `help:"Reps per set for --exercise." default:"0"`
	Weight   float64 `help:"Weight per set for --exercise." default:"0"`
	Date     string  `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *WorkoutAddCmd) Validate() error {
	if c.Type != string(models.WorkoutCardio) && c.Type != string(models.WorkoutWeightlifting) {
		return fmt.Errorf("type must be cardio or weightlifting")
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be greater than zero")
	}
	return nil
}

func (c *WorkoutAddCmd) Run(ctx *cli.Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}

	workout := models.WorkoutSession{
		Type:             models.WorkoutType(c.Type),
		Name:             c.Name,
		Notes:            c.Notes,
		Date:             date,
		Duration:         c.Duration,
		CaloriesBurned:   c.Calories,
		AverageHeartRate: c.AvgHR,
		Distance:         c.Distance,
		Pace:             c.Pace,
		Exercises:        []models.Exercise{},
	}

	if c.Exercise != "" {
		ex := models.Exercise{
			ID:   uuid.NewString(),
			Name: c.Exercise,
			Type: workout.Type,
		}
		if workout.Type == models.WorkoutWeightlifting {
			ex.Sets = make([]models.ExerciseSet, 0, c.Sets)
			for i := 0; i < c.Sets; i++ {
				ex.Sets = append(ex.Sets, models.ExerciseSet{Reps: c.Reps, Weight: c.Weight})
			}
		} else {
			ex.Duration = c.Duration
			ex.Distance = c.Distance
		}
		workout.Exercises = append(workout.Exercises, ex)
	}

	ctx.Store.AddWorkout(date, workout)
	fmt.Printf("Logged %s (%s, %.0f min) for %s\n", workout.Name, workout.Type, workout.Duration, date)
	return nil
}

// WorkoutEditCmd replaces the session at a list index. Synced sessions keep
// their reconciliation key.
type WorkoutEditCmd struct {
	Index    int     `arg:"" help:"Workout index from 'workout list'."`
	Name     string  `help:"Workout name." required:""`
	Type     string  `short:"t" help:"Workout type (cardio|weightlifting)." default:"cardio"`
	Duration float64 `short:"D" help:"Duration in minutes." required:""`
	Calories float64 `short:"c" help:"Calories burned."`
	AvgHR    float64 `help:"Average heart rate."`
	Distance float64 `help:"Distance (cardio only)."`
	Pace     float64 `help:"Pace (cardio only)."`
	Notes    string  `short:"n" help:"Session notes."`
	Date     string  `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *WorkoutEditCmd) Run(ctx *cli.Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}

	log := ctx.Store.LogForDate(date)
	if log == nil || c.Index < 0 || c.Index >= len(log.Workouts) {
		return fmt.Errorf("no workout at index %d for %s", c.Index, date)
	}

	existing := log.Workouts[c.Index]
	updated := models.WorkoutSession{
		FitbitLogID:      existing.FitbitLogID,
		Type:             models.WorkoutType(c.Type),
		Name:             c.Name,
		Notes:            c.Notes,
		Date:             date,
		Duration:         c.Duration,
		CaloriesBurned:   c.Calories,
		AverageHeartRate: c.AvgHR,
		Distance:         c.Distance,
		Pace:             c.Pace,
		Exercises:        existing.Exercises,
	}
	ctx.Store.UpdateWorkout(date, c.Index, updated)
	fmt.Printf("Updated workout %d for %s\n", c.Index, date)
	return nil
}

// WorkoutDeleteCmd removes the session at a list index.
type WorkoutDeleteCmd struct {
	Index int    `arg:"" help:"Workout index from 'workout list'."`
	Date  string `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *WorkoutDeleteCmd) Run(ctx *cli.Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}
	ctx.Store.DeleteWorkout(date, c.Index)
	fmt.Printf("Deleted workout %d for %s\n", c.Index, date)
	return nil
}

// WorkoutListCmd prints the day's workouts with their indexes.
type WorkoutListCmd struct {
	Date string `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *WorkoutListCmd) Run(ctx *cli.Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}
	log := ctx.Store.LogForDate(date)
	if log == nil || len(log.Workouts) == 0 {
		fmt.Printf("No workouts logged for %s\n", date)
		return nil
	}
	for i, w := range log.Workouts {
		synced := ""
		if w.IsSynced() {
			synced = " [synced]"
		}
		fmt.Printf("%d. %s (%s)  %.0f min  %.0f kcal%s\n", i, w.Name, w.Type, w.Duration, w.CaloriesBurned, synced)
	}
	return nil
}
