package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lox/skysay/internal/metrics"
	"github.com/lox/skysay/internal/models"
	"github.com/lox/skysay/internal/provider"
	"github.com/lox/skysay/internal/render"
)

// outputFlags choose between the narrative and the attribute list.
type outputFlags struct {
	Mode string   `env:"SKYSAY_MODE" default:"summary" enum:"summary,list" help:"Output style (${enum})."`
	Only []string `env:"SKYSAY_ONLY" sep:"," placeholder:"ATTR,..." help:"Attributes for list mode: weather, temperature, clouds, humidity, wind, pressure. Defaults to all."`
}

func (o outputFlags) resolve() (render.Mode, models.AttributeSet, error) {
	mode, err := render.ParseMode(o.Mode)
	if err != nil {
		return "", 0, err
	}
	var names []string
	for _, n := range o.Only {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	attrs, err := models.ParseAttributeSet(names)
	if err != nil {
		return "", 0, err
	}
	if attrs.IsEmpty() {
		attrs = models.AllAttributes()
	}
	return mode, attrs, nil
}

type CurrentCmd struct {
	Output outputFlags `embed:""`
}

func (c *CurrentCmd) Run(ctx context.Context, g *Globals, w io.Writer) error {
	return report(ctx, g, w, provider.ScopeCurrent, 0, c.Output)
}

type TodayCmd struct {
	Output outputFlags `embed:""`
}

func (c *TodayCmd) Run(ctx context.Context, g *Globals, w io.Writer) error {
	return report(ctx, g, w, provider.ScopeToday, 1, c.Output)
}

type ForecastCmd struct {
	Days   int         `short:"d" env:"SKYSAY_DAYS" default:"3" help:"Number of days including today (2-16)."`
	Output outputFlags `embed:""`
}

func (c *ForecastCmd) Validate() error {
	if c.Days < provider.MinForecastDays || c.Days > provider.MaxForecastDays {
		return fmt.Errorf("--days must be between %d and %d", provider.MinForecastDays, provider.MaxForecastDays)
	}
	return nil
}

func (c *ForecastCmd) Run(ctx context.Context, g *Globals, w io.Writer) error {
	return report(ctx, g, w, provider.ScopeForecast, c.Days, c.Output)
}

type PastCmd struct {
	Days int `short:"d" env:"SKYSAY_DAYS" default:"3" help:"Number of days before today (1-92)."`
}

func (c *PastCmd) Validate() error {
	if c.Days < provider.MinHistoryDays || c.Days > provider.MaxHistoryDays {
		return fmt.Errorf("--days must be between %d and %d", provider.MinHistoryDays, provider.MaxHistoryDays)
	}
	return nil
}

func (c *PastCmd) Run(ctx context.Context, g *Globals, w io.Writer) error {
	return report(ctx, g, w, provider.ScopePast, c.Days, outputFlags{Mode: string(render.Summary)})
}

// report fetches, shapes and prints one report. The text on w always ends in
// exactly one newline.
func report(ctx context.Context, g *Globals, w io.Writer, scope provider.Scope, days int, out outputFlags) error {
	mode, attrs, err := out.resolve()
	if err != nil {
		return err
	}

	s, err := g.open(ctx)
	if err != nil {
		return err
	}

	full, err := provider.FetchReport(ctx, s.provider, provider.Request{Scope: scope, At: s.at, Days: days}, s.logger)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", scope, err)
	}

	r, err := render.Prepare(mode, full, attrs)
	if err != nil {
		return err
	}

	shape := render.Shape(r)
	metrics.ReportsRendered.WithLabelValues(shape).Inc()
	s.logger.Debug("rendering", "shape", shape, "attributes", attrs.String())

	_, err = io.WriteString(w, strings.TrimRight(render.Render(r), "\n")+"\n")
	return err
}
