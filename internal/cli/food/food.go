// Package food holds the meal logging commands.
package food

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/vitalog/internal/cli"
	"github.com/julianstephens/vitalog/internal/models"
	"github.com/julianstephens/vitalog/internal/utils"
)

// FoodAddCmd appends a meal to a day's log. Without a name it opens an
// interactive form.
type FoodAddCmd struct {
	Name     string  `arg:"" optional:"" help:"Food name. Omit for an interactive form."`
	Calories float64 `short:"c" help:"Calories."`
	Protein  float64 `short:"p" help:"Protein in grams."`
	Fat      float64 `short:"f" help:"Fat in grams."`
	Carbs    float64 `short:"C" help:"Carbohydrates in grams."`
	Fiber    float64 `help:"Fiber in grams."`
	Sodium   float64 `help:"Sodium in milligrams."`
	Date     string  `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
	Common   int     `help:"Log a saved common food by its list index instead." default:"-1"`
}

func (c *FoodAddCmd) Run(ctx *cli.Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}

	if c.Common >= 0 {
		foods := ctx.Store.CommonFoods()
		if c.Common >= len(foods) {
			return fmt.Errorf("no common food at index %d", c.Common)
		}
		ctx.Store.AddMeal(date, foods[c.Common])
		fmt.Printf("Logged %s for %s\n", foods[c.Common].Name, date)
		return nil
	}

	meal := models.Meal{
		Name:     c.Name,
		Calories: c.Calories,
		Protein:  c.Protein,
		Fat:      c.Fat,
		Carbs:    c.Carbs,
		Fiber:    c.Fiber,
		Sodium:   c.Sodium,
	}
	if meal.Name == "" {
		m, err := promptMeal()
		if err != nil {
			return err
		}
		meal = m
	}
	if meal.Name == "" {
		return fmt.Errorf("food name cannot be empty")
	}

	ctx.Store.AddMeal(date, meal)
	fmt.Printf("Logged %s (%.0f kcal) for %s\n", meal.Name, meal.Calories, date)
	return nil
}

func promptMeal() (models.Meal, error) {
	var name, calories, protein, fat, carbs, fiber string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Food name").Value(&name),
			huh.NewInput().Title("Calories").Value(&calories).Validate(numeric),
			huh.NewInput().Title("Protein (g)").Value(&protein).Validate(numeric),
			huh.NewInput().Title("Fat (g)").Value(&fat).Validate(numeric),
			huh.NewInput().Title("Carbs (g)").Value(&carbs).Validate(numeric),
			huh.NewInput().Title("Fiber (g)").Value(&fiber).Validate(numeric),
		),
	)
	if err := form.Run(); err != nil {
		return models.Meal{}, err
	}

	return models.Meal{
		Name:     name,
		Calories: parseNum(calories),
		Protein:  parseNum(protein),
		Fat:      parseNum(fat),
		Carbs:    parseNum(carbs),
		Fiber:    parseNum(fiber),
	}, nil
}

func numeric(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func parseNum(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// FoodEditCmd replaces the meal at a list index.
type FoodEditCmd struct {
	Index    int     `arg:"" help:"Meal index from 'food list'."`
	Name     string  `help:"Food name." required:""`
	Calories float64 `short:"c" help:"Calories."`
	Protein  float64 `short:"p" help:"Protein in grams."`
	Fat      float64 `short:"f" help:"Fat in grams."`
	Carbs    float64 `short:"C" help:"Carbohydrates in grams."`
	Fiber    float64 `help:"Fiber in grams."`
	Sodium   float64 `help:"Sodium in milligrams."`
	Date     string  `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *FoodEditCmd) Run(ctx *cli.Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}
	ctx.Store.UpdateMeal(date, c.Index, models.Meal{
		Name:     c.Name,
		Calories: c.Calories,
		Protein:  c.Protein,
		Fat:      c.Fat,
		Carbs:    c.Carbs,
		Fiber:    c.Fiber,
		Sodium:   c.Sodium,
	})
	fmt.Printf("Updated meal %d for %s\n", c.Index, date)
	return nil
}

// FoodDeleteCmd removes the meal at a list index. Later entries shift down.
type FoodDeleteCmd struct {
	Index int    `arg:"" help:"Meal index from 'food list'."`
	Date  string `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *FoodDeleteCmd) Run(ctx *cli.Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}
	ctx.Store.DeleteMeal(date, c.Index)
	fmt.Printf("Deleted meal %d for %s\n", c.Index, date)
	return nil
}

// FoodListCmd prints the day's meals with their indexes.
type FoodListCmd struct {
	Date string `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *FoodListCmd) Run(ctx *cli.Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}
	log := ctx.Store.LogForDate(date)
	if log == nil || len(log.Meals) == 0 {
		fmt.Printf("No meals logged for %s\n", date)
		return nil
	}
	for i, meal := range log.Meals {
		fmt.Printf("%d. %s  %.0f kcal  P %.0fg  F %.0fg  C %.0fg\n",
			i, meal.Name, meal.Calories, meal.Protein, meal.Fat, meal.Carbs)
	}
	return nil
}

// FoodSaveCmd saves a meal to the common-foods favorites. The list is
// append-only; saving the same food twice keeps both entries.
type FoodSaveCmd struct {
	Index int    `arg:"" help:"Meal index from 'food list' to save as a favorite."`
	Date  string `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *FoodSaveCmd) Run(ctx *cli.Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}
	log := ctx.Store.LogForDate(date)
	if log == nil || c.Index < 0 || c.Index >= len(log.Meals) {
		return fmt.Errorf("no meal at index %d for %s", c.Index, date)
	}
	ctx.Store.AddCommonFood(log.Meals[c.Index])
	fmt.Printf("Saved %s to common foods\n", log.Meals[c.Index].Name)
	return nil
}

// FoodCommonCmd lists the saved favorites.
type FoodCommonCmd struct{}

func (c *FoodCommonCmd) Run(ctx *cli.Context) error {
	foods := ctx.Store.CommonFoods()
	if len(foods) == 0 {
		fmt.Println("No common foods saved yet.")
		return nil
	}
	for i, meal := range foods {
		fmt.Printf("%d. %s  %.0f kcal  P %.0fg  F %.0fg  C %.0fg\n",
			i, meal.Name, meal.Calories, meal.Protein, meal.Fat, meal.Carbs)
	}
	return nil
}
