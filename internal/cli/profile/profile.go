// Package profile holds the user profile commands.
package profile

import (
	"fmt"

	"github.com/julianstephens/vitalog/internal/cli"
	"github.com/julianstephens/vitalog/internal/models"
	"github.com/julianstephens/vitalog/internal/utils"
)

// ProfileShowCmd prints the profile.
type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	p := ctx.Store.Profile()
	if p == nil {
		fmt.Println("No profile set. Use 'vitalog profile edit' to create one.")
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Profile"))
	row := func(label, value string) {
		if value != "" {
			fmt.Printf("  %s %s\n", cli.LabelStyle.Render(label+":"), value)
		}
	}
	row("Goal", p.PrimaryGoal)
	row("Target date", p.TargetDate)
	row("Mission", p.MissionStatement)
	row("Height", p.Height)
	if p.StartingWeight > 0 {
		row("Starting weight", fmt.Sprintf("%.1f", p.StartingWeight))
	}
	if p.CurrentWeight > 0 {
		row("Current weight", fmt.Sprintf("%.1f", p.CurrentWeight))
	}
	row("Health factors", p.HealthFactors)
	row("Readiness model", p.ReadinessModel)
	row("Training split", p.TrainingSplit)
	row("Cardio targets", p.CardioTargets)

	if len(p.Measurements) > 0 {
		fmt.Println(cli.TitleStyle.Render("Measurements"))
		for _, m := range p.Measurements {
			fmt.Printf("  %s %.1f %s\n", cli.LabelStyle.Render(m.Name+":"), m.Value, m.Unit)
		}
	}

	fmt.Println(cli.TitleStyle.Render("Training-day targets"))
	printMacros(p.TrainingDayTargets)
	fmt.Println(cli.TitleStyle.Render("Recovery-day targets"))
	printMacros(p.RecoveryDayTargets)
	return nil
}

func printMacros(m models.MacroTargets) {
	fmt.Printf("  %.0f kcal, %.0fg protein, %.0fg fat, %.0fg fiber\n", m.Calories, m.Protein, m.Fat, m.Fiber)
}

// ProfileEditCmd updates profile fields. Unset flags keep the current value.
type ProfileEditCmd struct {
	Goal            string  `help:"Primary fitness goal."`
	TargetDate      string  `help:"Goal target date (YYYY-MM-DD)."`
	Mission         string  `help:"Mission statement."`
	Height          string  `help:"Height (free text, e.g. 5'11\")."`
	StartingWeight  float64 `help:"Starting weight."`
	HealthFactors   string  `help:"Relevant health factors."`
	ReadinessModel  string  `help:"Readiness calculation model."`
	TrainingSplit   string  `help:"Weekly training split."`
	CardioTargets   string  `help:"Cardio targets."`
	TrainingKcal    float64 `help:"Training-day calorie target."`
	TrainingProtein float64 `help:"Training-day protein target."`
	RecoveryKcal    float64 `help:"Recovery-day calorie target."`
	RecoveryProtein float64 `help:"Recovery-day protein target."`
}

func (c *ProfileEditCmd) Run(ctx *cli.Context) error {
	if c.TargetDate != "" {
		if _, err := utils.ParseDate(c.TargetDate); err != nil {
			return err
		}
	}

	p := ctx.Store.Profile()
	if p == nil {
		p = &models.UserProfile{Measurements: []models.Measurement{}}
	}

	setStr := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setStr(&p.PrimaryGoal, c.Goal)
	setStr(&p.TargetDate, c.TargetDate)
	setStr(&p.MissionStatement, c.Mission)
	setStr(&p.Height, c.Height)
	setStr(&p.HealthFactors, c.HealthFactors)
	setStr(&p.ReadinessModel, c.ReadinessModel)
	setStr(&p.TrainingSplit, c.TrainingSplit)
	setStr(&p.CardioTargets, c.CardioTargets)
	if c.StartingWeight > 0 {
		p.StartingWeight = c.StartingWeight
	}
	if c.TrainingKcal > 0 {
		p.TrainingDayTargets.Calories = c.TrainingKcal
	}
	if c.TrainingProtein > 0 {
		p.TrainingDayTargets.Protein = c.TrainingProtein
	}
	if c.RecoveryKcal > 0 {
		p.RecoveryDayTargets.Calories = c.RecoveryKcal
	}
	if c.RecoveryProtein > 0 {
		p.RecoveryDayTargets.Protein = c.RecoveryProtein
	}

	ctx.Store.UpdateUserProfile(*p)
	fmt.Println("Profile updated.")
	return nil
}

// MeasureCmd records a body measurement on the profile and in the dated
// history.
type MeasureCmd struct {
	Name  string  `arg:"" help:"Body part (e.g. Waist)."`
	Value float64 `arg:"" help:"Measurement value."`
	Unit  string  `short:"u" help:"Unit (in|cm)." default:"in"`
	Date  string  `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *MeasureCmd) Validate() error {
	if c.Unit != "in" && c.Unit != "cm" {
		return fmt.Errorf("unit must be in or cm")
	}
	if c.Value <= 0 {
		return fmt.Errorf("value must be greater than zero")
	}
	return nil
}

func (c *MeasureCmd) Run(ctx *cli.Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}

	p := ctx.Store.Profile()
	if p == nil {
		p = &models.UserProfile{Measurements: []models.Measurement{}}
	}

	// Names are unique by convention: update in place when present.
	updated := false
	for i, m := range p.Measurements {
		if m.Name == c.Name {
			p.Measurements[i].Value = c.Value
			p.Measurements[i].Unit = c.Unit
			updated = true
			break
		}
	}
	if !updated {
		p.Measurements = append(p.Measurements, models.Measurement{Name: c.Name, Value: c.Value, Unit: c.Unit})
	}
	ctx.Store.UpdateUserProfile(*p)
	ctx.Store.AddBodyMeasurement(models.BodyMeasurement{Date: date, Part: c.Name, Value: c.Value})

	fmt.Printf("Recorded %s = %.1f %s\n", c.Name, c.Value, c.Unit)
	return nil
}
