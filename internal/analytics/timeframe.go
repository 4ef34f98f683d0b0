package analytics

import (
	"fmt"
	"sort"
	"time"

	"FITTRACK_BACK-END/internal/models"
)

// Timeframe narrows the dashboard to recent rows.
type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeAll   Timeframe = "all"
)

const progressWeeks = 8

// ParseTimeframe accepts week, month or all. Empty means all.
func ParseTimeframe(s string) (Timeframe, error) {
	switch tf := Timeframe(s); tf {
	case "":
		return TimeframeAll, nil
	case TimeframeWeek, TimeframeMonth, TimeframeAll:
		return tf, nil
	default:
		return "", fmt.Errorf("unknown timeframe %q", s)
	}
}

func (tf Timeframe) span() time.Duration {
	switch tf {
	case TimeframeWeek:
		return 7 * 24 * time.Hour
	case TimeframeMonth:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

// FilterTimeframe keeps rows created at most 7 (week) or 30 (month) days
// before now. Rows dated after now are kept. The input order is preserved.
func FilterTimeframe(exercises []models.Exercise, tf Timeframe, now time.Time) []models.Exercise {
	span := tf.span()
	if span == 0 {
		return exercises
	}
	out := make([]models.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if now.Sub(ex.CreatedAt) <= span {
			out = append(out, ex)
		}
	}
	return out
}

// WeekBucket aggregates one Sunday-to-Saturday week.
type WeekBucket struct {
	Week      string  `json:"week"`
	Volume    float64 `json:"volume"`
	Exercises int     `json:"exercises"`
}

// WeeklyProgress groups rows by the Sunday that starts their week and
// returns the latest eight weeks that have data, oldest first.
func WeeklyProgress(exercises []models.Exercise, loc *time.Location) []WeekBucket {
	loc = orUTC(loc)

	byWeek := make(map[string]*WeekBucket)
	for _, ex := range exercises {
		day := DayOf(ex.CreatedAt, loc)
		key := day.AddDate(0, 0, -int(day.Weekday())).Format("2006-01-02")
		b, ok := byWeek[key]
		if !ok {
			b = &WeekBucket{Week: key}
			byWeek[key] = b
		}
		b.Volume += ex.Volume()
		b.Exercises++
	}

	out := make([]WeekBucket, 0, len(byWeek))
	for _, b := range byWeek {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	if len(out) > progressWeeks {
		out = out[len(out)-progressWeeks:]
	}
	return out
}
