// Package trends renders time series over logged metrics.
package trends

import (
	"fmt"
	"strings"

	"github.com/julianstephens/vitalog/internal/aggregate"
	"github.com/julianstephens/vitalog/internal/cli"
	"github.com/julianstephens/vitalog/internal/constants"
	"github.com/julianstephens/vitalog/internal/utils"
)

// TrendsCmd prints the dated series for a single metric.
type TrendsCmd struct {
	Field string `arg:"" help:"Metric to chart (weight|hrv|rhr|calories|readiness|energy|soreness|sleep|stress)."`
	Days  int    `short:"n" help:"Limit to the last N calendar days, counted back from the newest entry." default:"0"`
}

func (c *TrendsCmd) Validate() error {
	field := aggregate.TrendField(strings.ToLower(c.Field))
	for _, f := range aggregate.TrendFields() {
		if f == field {
			return nil
		}
	}
	return fmt.Errorf("unknown field %q", c.Field)
}

func (c *TrendsCmd) Run(ctx *cli.Context) error {
	field := aggregate.TrendField(strings.ToLower(c.Field))
	points, err := aggregate.TrendSeries(ctx.Store.Logs(), field)
	if err != nil {
		return err
	}
	points = lastDays(points, c.Days)
	if len(points) == 0 {
		fmt.Printf("No %s data logged yet.\n", field)
		return nil
	}

	fmt.Println(cli.TitleStyle.Render(string(field) + " trend"))
	min, max := points[0].Value, points[0].Value
	for _, p := range points {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}
	for _, p := range points {
		fmt.Printf("  %s  %7.1f  %s\n", p.Date, p.Value, bar(p.Value, min, max))
	}

	first, last := points[0], points[len(points)-1]
	delta := last.Value - first.Value
	fmt.Printf("\n%s %+.1f over %d entries\n", cli.LabelStyle.Render("Change:"), delta, len(points))
	return nil
}

// lastDays keeps only the entries within the trailing n-calendar-day window
// ending at the newest entry. Points are sorted ascending by date string, so
// a lexical cutoff comparison is enough.
func lastDays(points []aggregate.TrendPoint, n int) []aggregate.TrendPoint {
	if n <= 0 || len(points) == 0 {
		return points
	}
	newest, err := utils.ParseDate(points[len(points)-1].Date)
	if err != nil {
		return points
	}
	cutoff := newest.AddDate(0, 0, -(n - 1)).Format(constants.DateFormat)
	for i, p := range points {
		if p.Date >= cutoff {
			return points[i:]
		}
	}
	return nil
}

// bar scales a value between min and max onto a fixed-width block bar.
func bar(v, min, max float64) string {
	const width = 30
	if max == min {
		return strings.Repeat("█", width/2)
	}
	n := int((v - min) / (max - min) * float64(width))
	if n < 1 {
		n = 1
	}
	return cli.ValueStyle.Render(strings.Repeat("█", n))
}
