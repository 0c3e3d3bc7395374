// Package render picks the composer for a report.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/skysay/internal/listing"
	"github.com/lox/skysay/internal/models"
	"github.com/lox/skysay/internal/narrative"
)

// Mode is how the caller wants a report presented.
type Mode string

const (
	Summary Mode = "summary"
	List    Mode = "list"
)

// ErrListUnsupported is returned when a report shape has no list form.
var ErrListUnsupported = errors.New("report has no list form")

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case Summary, List:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want summary or list)", s)
	}
}

// Prepare turns a full report into the variant matching mode. In list mode
// full reports are narrowed to the selected attributes.
func Prepare(mode Mode, r models.Report, attrs models.AttributeSet) (models.Report, error) {
	if mode == Summary {
		return r, nil
	}
	switch r := r.(type) {
	case models.CurrentFull:
		return r.Select(attrs), nil
	case models.TodayFull:
		return r.Select(attrs), nil
	case models.MultiDayFull:
		return r.Select(attrs), nil
	case models.PastFull:
		return nil, fmt.Errorf("past report: %w", ErrListUnsupported)
	default:
		return r, nil
	}
}

// Render produces the text for a report. Full reports become narrative,
// partial reports become lists.
func Render(r models.Report) string {
	switch r := r.(type) {
	case models.CurrentFull:
		return narrative.Current(r)
	case models.CurrentPartial:
		return listing.Current(r)
	case models.TodayFull:
		return narrative.Today(r)
	case models.TodayPartial:
		return listing.Today(r)
	case models.MultiDayFull:
		return narrative.MultiDay(r)
	case models.MultiDayPartial:
		return listing.MultiDay(r)
	case models.PastFull:
		return narrative.Past(r)
	default:
		panic(fmt.Sprintf("render: unknown report %T", r))
	}
}

// Shape names the report variant, used for logging and metrics labels.
func Shape(r models.Report) string {
	switch r.(type) {
	case models.CurrentFull:
		return "current_summary"
	case models.CurrentPartial:
		return "current_list"
	case models.TodayFull:
		return "today_summary"
	case models.TodayPartial:
		return "today_list"
	case models.MultiDayFull:
		return "multiday_summary"
	case models.MultiDayPartial:
		return "multiday_list"
	case models.PastFull:
		return "past_summary"
	default:
		return "unknown"
	}
}
