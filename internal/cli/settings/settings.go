// Package settings holds the application settings commands.
package settings

import (
	"fmt"

	"github.com/julianstephens/vitalog/internal/cli"
	"github.com/julianstephens/vitalog/internal/keyring"
	"github.com/julianstephens/vitalog/internal/models"
)

// SettingsCmd shows or updates document settings and nutrition targets.
type SettingsCmd struct {
	GeminiAPIKey *string  `help:"Set the Gemini API key (empty string clears it)."`
	DBConnection *string  `name:"db-connection" help:"Store the PostgreSQL connection string in the OS keyring."`
	Calories     *float64 `help:"Daily calorie target."`
	Protein      *float64 `help:"Daily protein target (g)."`
	Fat          *float64 `help:"Daily fat target (g)."`
	Carbs        *float64 `help:"Daily carb target (g)."`
	Fiber        *float64 `help:"Daily fiber target (g)."`
	Sodium       *float64 `help:"Daily sodium target (mg)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	changed := false

	if c.GeminiAPIKey != nil {
		ctx.Store.SetGeminiAPIKey(*c.GeminiAPIKey)
		if *c.GeminiAPIKey == "" {
			fmt.Println("Gemini API key cleared.")
		} else {
			fmt.Println("Gemini API key saved.")
		}
		changed = true
	}

	if c.DBConnection != nil {
		if err := keyring.SetConnectionString(*c.DBConnection); err != nil {
			return fmt.Errorf("failed to store connection string: %w", err)
		}
		fmt.Println("Connection string stored in the system keyring.")
		changed = true
	}

	t := ctx.Store.Targets()
	targetsChanged := false
	apply := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
			targetsChanged = true
		}
	}
	apply(&t.Calories, c.Calories)
	apply(&t.Protein, c.Protein)
	apply(&t.Fat, c.Fat)
	apply(&t.Carbs, c.Carbs)
	apply(&t.Fiber, c.Fiber)
	apply(&t.Sodium, c.Sodium)
	if targetsChanged {
		ctx.Store.UpdateTargets(t)
		fmt.Println("Targets updated.")
		changed = true
	}

	if !changed {
		printSettings(ctx, t)
	}
	return nil
}

func printSettings(ctx *cli.Context, t models.NutritionTargets) {
	fmt.Println(cli.TitleStyle.Render("Settings"))
	fmt.Printf("  %s %s\n", cli.LabelStyle.Render("Storage:"), ctx.Store.StoragePath())
	key := ctx.Store.GeminiAPIKey()
	status := "not set"
	if key != "" {
		status = "configured"
	}
	fmt.Printf("  %s %s\n", cli.LabelStyle.Render("Gemini API key:"), status)

	fmt.Println(cli.TitleStyle.Render("Nutrition targets"))
	fmt.Printf("  %s %.0f kcal\n", cli.LabelStyle.Render("Calories:"), t.Calories)
	fmt.Printf("  %s %.0f g\n", cli.LabelStyle.Render("Protein:"), t.Protein)
	fmt.Printf("  %s %.0f g\n", cli.LabelStyle.Render("Fat:"), t.Fat)
	fmt.Printf("  %s %.0f g\n", cli.LabelStyle.Render("Carbs:"), t.Carbs)
	fmt.Printf("  %s %.0f g\n", cli.LabelStyle.Render("Fiber:"), t.Fiber)
	fmt.Printf("  %s %.0f mg\n", cli.LabelStyle.Render("Sodium:"), t.Sodium)
}
