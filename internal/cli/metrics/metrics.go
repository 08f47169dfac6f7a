// Package metrics holds the daily check-in command.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/vitalog/internal/cli"
	"github.com/julianstephens/vitalog/internal/models"
	"github.com/julianstephens/vitalog/internal/utils"
)

// MetricsCmd records the day's subjective and objective metrics. Only the
// flags that are set are merged; everything else is left untouched. With no
// flags at all it opens an interactive check-in form.
type MetricsCmd struct {
	Date     string   `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
	Weight   *float64 `short:"w" help:"Weight (also mirrored onto the profile)."`
	Energy   *int     `help:"Energy score (1-5)."`
	Soreness *int     `help:"Soreness score (1-5)."`
	Sleep    *int     `help:"Sleep quality score (1-5)."`
	Stress   *int     `help:"Yesterday's stress score (1-5)."`
	HRV      *float64 `help:"Heart rate variability."`
	RHR      *float64 `help:"Resting heart rate."`
	Notes    *string  `short:"n" help:"Day notes."`
}

func (c *MetricsCmd) Validate() error {
	for name, v := range map[string]*int{
		"energy": c.Energy, "soreness": c.Soreness, "sleep": c.Sleep, "stress": c.Stress,
	} {
		if v != nil && (*v < 1 || *v > 5) {
			return fmt.Errorf("%s must be between 1 and 5", name)
		}
	}
	return nil
}

func (c *MetricsCmd) empty() bool {
	return c.Weight == nil && c.Energy == nil && c.Soreness == nil && c.Sleep == nil &&
		c.Stress == nil && c.HRV == nil && c.RHR == nil && c.Notes == nil
}

func (c *MetricsCmd) Run(ctx *cli.Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}

	if c.empty() {
		if err := c.prompt(); err != nil {
			return err
		}
	}

	// Weight takes the dedicated dual-write path so the profile stays in
	// step with the log.
	if c.Weight != nil {
		ctx.Store.UpdateWeight(date, *c.Weight)
	}

	patch := models.DailyLogPatch{
		Energy:          c.Energy,
		Soreness:        c.Soreness,
		SleepQuality:    c.Sleep,
		YesterdayStress: c.Stress,
		HRV:             c.HRV,
		RHR:             c.RHR,
		Notes:           c.Notes,
	}
	ctx.Store.SaveMeasurements(date, patch)
	fmt.Printf("Saved metrics for %s\n", date)
	return nil
}

// prompt fills the command from an interactive check-in form. Fields left
// blank stay nil so the merge skips them.
func (c *MetricsCmd) prompt() error {
	var weight, notes string
	scores := []huh.Option[int]{
		huh.NewOption("skip", 0),
		huh.NewOption("1", 1), huh.NewOption("2", 2), huh.NewOption("3", 3),
		huh.NewOption("4", 4), huh.NewOption("5", 5),
	}
	var energy, soreness, sleep, stress int

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Weight").Value(&weight).Validate(numeric),
			huh.NewSelect[int]().Title("Energy").Options(scores...).Value(&energy),
			huh.NewSelect[int]().Title("Soreness").Options(scores...).Value(&soreness),
			huh.NewSelect[int]().Title("Sleep quality").Options(scores...).Value(&sleep),
			huh.NewSelect[int]().Title("Yesterday's stress").Options(scores...).Value(&stress),
			huh.NewInput().Title("Notes").Value(&notes),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if weight != "" {
		v, _ := strconv.ParseFloat(weight, 64)
		c.Weight = &v
	}
	if energy != 0 {
		c.Energy = &energy
	}
	if soreness != 0 {
		c.Soreness = &soreness
	}
	if sleep != 0 {
		c.Sleep = &sleep
	}
	if stress != 0 {
		c.Stress = &stress
	}
	if notes != "" {
		c.Notes = &notes
	}
	return nil
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
