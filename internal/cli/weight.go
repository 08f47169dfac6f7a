package cli

import (
	"fmt"

	"github.com/julianstephens/vitalog/internal/utils"
)

// WeightCmd records the day's weight on the log and mirrors it onto the
// profile in one operation.
type WeightCmd struct {
	Value float64 `arg:"" help:"Weight value."`
	Date  string  `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *WeightCmd) Validate() error {
	if c.Value <= 0 {
		return fmt.Errorf("weight must be greater than zero")
	}
	return nil
}

func (c *WeightCmd) Run(ctx *Context) error {
	date, err := utils.DateOrToday(c.Date)
	if err != nil {
		return err
	}
	ctx.Store.UpdateWeight(date, c.Value)
	fmt.Printf("Recorded weight %.1f for %s\n", c.Value, date)
	return nil
}
