// Package askcmd holds the natural-language logging commands.
package askcmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/vitalog/internal/assistant"
	"github.com/julianstephens/vitalog/internal/cli"
	"github.com/julianstephens/vitalog/internal/constants"
	"github.com/julianstephens/vitalog/internal/models"
	"github.com/julianstephens/vitalog/internal/utils"
)

func parser(ctx *cli.Context) (assistant.Parser, error) {
	key := ctx.Store.GeminiAPIKey()
	if key == "" {
		key = os.Getenv(constants.EnvGeminiAPIKey)
	}
	if key == "" {
		return nil, fmt.Errorf("no Gemini API key configured; run 'vitalog settings --gemini-api-key=<key>'")
	}
	return assistant.NewGemini(key), nil
}

// AskCmd sends a free-form prompt to the assistant grounded in the current
// document, then routes structured results into the log.
type AskCmd struct {
	Prompt []string `arg:"" help:"What to ask or log, in plain language."`
	Date   string   `short:"d" help:"Date to log against (YYYY-MM-DD), defaults to today."`
	DryRun bool     `help:"Show what would be logged without saving."`
}

func (c *AskCmd) Run(ctx *cli.Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}
	p, err := parser(ctx)
	if err != nil {
		return err
	}

	prompt := strings.Join(c.Prompt, " ")
	bundle := assistant.BuildContext(ctx.Store.Document())
	resp, err := p.Ask(context.Background(), prompt, bundle)
	if err != nil {
		return fmt.Errorf("assistant request failed: %w", err)
	}

	switch resp.Intent {
	case assistant.IntentLogFood:
		var meal models.Meal
		if err := json.Unmarshal(resp.Data, &meal); err != nil {
			return fmt.Errorf("assistant returned an unreadable meal: %w", err)
		}
		fmt.Println(mealLine(meal))
		if c.DryRun {
			return nil
		}
		ctx.Store.AddMeal(date, meal)
		fmt.Println(cli.OkStyle.Render("Logged to " + date))

	case assistant.IntentLogWorkout:
		var w models.WorkoutSession
		if err := json.Unmarshal(resp.Data, &w); err != nil {
			return fmt.Errorf("assistant returned an unreadable workout: %w", err)
		}
		w.Date = date
		for i := range w.Exercises {
			if w.Exercises[i].ID == "" {
				w.Exercises[i].ID = uuid.NewString()
			}
		}
		fmt.Println(workoutLine(w))
		if c.DryRun {
			return nil
		}
		ctx.Store.AddWorkout(date, w)
		fmt.Println(cli.OkStyle.Render("Logged to " + date))

	default:
		if resp.Summary != "" {
			fmt.Println(resp.Summary)
		} else {
			fmt.Println("The assistant had no answer for that.")
		}
	}
	return nil
}

func mealLine(m models.Meal) string {
	return fmt.Sprintf("%s %s (%.0f kcal, %.0fg protein)", cli.LabelStyle.Render("Meal:"), m.Name, m.Calories, m.Protein)
}

func workoutLine(w models.WorkoutSession) string {
	return fmt.Sprintf("%s %s (%s, %.0f min)", cli.LabelStyle.Render("Workout:"), w.Name, w.Type, w.Duration)
}

// EatCmd is a shortcut that parses a food description directly into a meal.
type EatCmd struct {
	Text []string `arg:"" help:"Food description, in plain language."`
	Date string   `short:"d" help:"Date to log against (YYYY-MM-DD), defaults to today."`
}

func (c *EatCmd) Run(ctx *cli.Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}
	p, err := parser(ctx)
	if err != nil {
		return err
	}

	meal, err := p.NutritionFromText(context.Background(), strings.Join(c.Text, " "))
	if err != nil {
		return fmt.Errorf("could not parse the meal: %w", err)
	}
	ctx.Store.AddMeal(date, meal)
	fmt.Printf("Logged %s: %.0f kcal, %.0fg protein, %.0fg fat, %.0fg carbs\n",
		meal.Name, meal.Calories, meal.Protein, meal.Fat, meal.Carbs)
	return nil
}
