package analytics

import (
	"sort"
	"time"

	"FITTRACK_BACK-END/internal/models"
)

// Streak counts consecutive calendar days with at least one exercise, walking
// backward from today. A streak survives until the end of the day after the
// last recorded workout.
func Streak(exercises []models.Exercise, now time.Time, loc *time.Location) int {
	dates := make([]time.Time, len(exercises))
	for i, ex := range exercises {
		dates[i] = ex.CreatedAt
	}
	return StreakFromDates(dates, now, loc)
}

// StreakFromDates is Streak over bare timestamps.
func StreakFromDates(dates []time.Time, now time.Time, loc *time.Location) int {
	if len(dates) == 0 {
		return 0
	}
	loc = orUTC(loc)

	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, t := range dates {
		day := DayOf(t, loc)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	cursor := DayOf(now, loc)
	streak := 0
	for _, day := range days {
		gap := daysBetween(day, cursor)
		if gap < 0 {
			// future-dated rows neither count nor break the run
			continue
		}
		if gap > 1 {
			break
		}
		streak++
		cursor = day
	}
	return streak
}
