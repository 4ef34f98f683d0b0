// Package analytics reduces a user's exercise rows into dashboard summaries.
//
// Every function is a single pass over rows already loaded into memory and is
// recomputed per request. Calendar-day bucketing happens in the supplied
// location, and empty input always yields zero-valued results.
package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"FITTRACK_BACK-END/internal/models"
)

const (
	unknownExercise = "Unknown"
	moodNotRecorded = "Not recorded"
	topExerciseSize = 5
	recentSize      = 10
	weekDays        = 7
	monthsBack      = 6
)

// QuickStats is the headline summary shown on the home screen.
type QuickStats struct {
	TotalSets     int     `json:"total_sets"`
	TotalReps     int     `json:"total_reps"`
	TotalVolume   float64 `json:"total_volume"`
	Streak        int     `json:"streak"`
	TotalWorkouts int     `json:"total_workouts"`
	TotalSessions int     `json:"total_sessions"`
	AverageWeight float64 `json:"average_weight"`
	TotalTime     int     `json:"total_time"`
}

// TopExercise is a frequently logged exercise with its accumulated volume.
type TopExercise struct {
	Name        string  `json:"name"`
	Count       int     `json:"count"`
	TotalVolume float64 `json:"total_volume"`
}

// DayBucket aggregates one calendar day.
type DayBucket struct {
	Date      string  `json:"date"`
	Label     string  `json:"label"`
	Volume    float64 `json:"volume"`
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	Exercises int     `json:"exercises"`
}

// MonthBucket aggregates one calendar month.
type MonthBucket struct {
	Month     string  `json:"month"`
	Label     string  `json:"label"`
	Volume    float64 `json:"volume"`
	Exercises int     `json:"exercises"`
}

// TodayStats covers rows recorded on the current calendar day.
type TodayStats struct {
	TotalSets     int     `json:"total_sets"`
	TotalReps     int     `json:"total_reps"`
	TotalVolume   float64 `json:"total_volume"`
	ExerciseCount int     `json:"exercise_count"`
}

// Dashboard is the full analytics screen.
type Dashboard struct {
	TotalExercises     int               `json:"total_exercises"`
	TotalVolume        float64           `json:"total_volume"`
	TotalSets          int               `json:"total_sets"`
	TotalReps          int               `json:"total_reps"`
	TotalTime          int               `json:"total_time"`
	AvgWeight          float64           `json:"avg_weight"`
	AvgReps            float64           `json:"avg_reps"`
	AvgSets            float64           `json:"avg_sets"`
	Streak             int               `json:"streak"`
	ExerciseTypes      map[string]int    `json:"exercise_types"`
	TopExercises       []TopExercise     `json:"top_exercises"`
	WeightDistribution map[string]int    `json:"weight_distribution"`
	TimeDistribution   map[string]int    `json:"time_distribution"`
	MoodAnalysis       map[string]int    `json:"mood_analysis"`
	WeeklyData         []DayBucket       `json:"weekly_data"`
	MonthlyData        []MonthBucket     `json:"monthly_data"`
	WeeklyProgress     []WeekBucket      `json:"weekly_progress"`
	Today              TodayStats        `json:"today"`
	RecentExercises    []models.Exercise `json:"recent_exercises"`
	Timeframe          Timeframe         `json:"timeframe"`
}

// Totals holds the plain sums over a set of rows.
type Totals struct {
	Sets   int
	Reps   int
	Volume float64
	Time   int
}

// Sum adds up sets, reps, volume and time.
func Sum(exercises []models.Exercise) Totals {
	var t Totals
	for _, ex := range exercises {
		t.Sets += ex.Sets
		t.Reps += ex.Reps
		t.Volume += ex.Volume()
		t.Time += ex.Time
	}
	return t
}

// AverageWeight is the mean weight over rows that carry a weight.
// Bodyweight rows (weight 0) are excluded.
func AverageWeight(exercises []models.Exercise) float64 {
	var sum float64
	var n int
	for _, ex := range exercises {
		if ex.Weight > 0 {
			sum += ex.Weight
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// ComputeQuickStats builds the home screen summary.
func ComputeQuickStats(exercises []models.Exercise, now time.Time, loc *time.Location) QuickStats {
	t := Sum(exercises)
	return QuickStats{
		TotalSets:     t.Sets,
		TotalReps:     t.Reps,
		TotalVolume:   t.Volume,
		Streak:        Streak(exercises, now, loc),
		TotalWorkouts: len(exercises),
		TotalSessions: len(distinctDays(exercises, loc)),
		AverageWeight: math.Round(AverageWeight(exercises)),
		TotalTime:     t.Time,
	}
}

// ComputeDashboard builds the analytics screen. Every reduction except the
// streak and today's totals sees only the rows inside tf.
func ComputeDashboard(all []models.Exercise, tf Timeframe, now time.Time, loc *time.Location) Dashboard {
	loc = orUTC(loc)
	if tf == "" {
		tf = TimeframeAll
	}
	exercises := FilterTimeframe(all, tf, now)
	t := Sum(exercises)

	d := Dashboard{
		TotalExercises:     len(exercises),
		TotalVolume:        t.Volume,
		TotalSets:          t.Sets,
		TotalReps:          t.Reps,
		TotalTime:          t.Time,
		AvgWeight:          math.Round(AverageWeight(exercises)),
		Streak:             Streak(all, now, loc),
		ExerciseTypes:      make(map[string]int),
		WeightDistribution: make(map[string]int),
		TimeDistribution:   make(map[string]int),
		MoodAnalysis:       make(map[string]int),
		WeeklyData:         Weekly(exercises, now, loc),
		MonthlyData:        Monthly(exercises, now, loc),
		WeeklyProgress:     WeeklyProgress(exercises, loc),
		Today:              Today(all, now, loc),
		RecentExercises:    recent(exercises),
		Timeframe:          tf,
	}
	if n := len(exercises); n > 0 {
		d.AvgReps = math.Round(float64(t.Reps) / float64(n))
		d.AvgSets = math.Round(float64(t.Sets) / float64(n))
	}

	for _, ex := range exercises {
		d.ExerciseTypes[exerciseName(ex)]++
		d.WeightDistribution[WeightRange(ex.Weight)]++
		d.TimeDistribution[TimeRange(ex.Time)]++
		d.MoodAnalysis[moodOf(ex)]++
	}
	d.TopExercises = TopExercises(exercises, topExerciseSize)

	return d
}

// TopExercises ranks exercise names by how often they were logged. Ties are
// broken by name so the order is stable.
func TopExercises(exercises []models.Exercise, n int) []TopExercise {
	byName := make(map[string]*TopExercise)
	for _, ex := range exercises {
		name := exerciseName(ex)
		top, ok := byName[name]
		if !ok {
			top = &TopExercise{Name: name}
			byName[name] = top
		}
		top.Count++
		top.TotalVolume += ex.Volume()
	}

	out := make([]TopExercise, 0, len(byName))
	for _, top := range byName {
		out = append(out, *top)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// WeightRange buckets a weight for the distribution chart.
func WeightRange(w float64) string {
	switch {
	case w <= 0:
		return "Bodyweight"
	case w < 50:
		return "0-50"
	case w < 100:
		return "50-100"
	case w < 150:
		return "100-150"
	default:
		return "150+"
	}
}

// TimeRange buckets a duration in seconds.
func TimeRange(seconds int) string {
	switch {
	case seconds < 30:
		return "0-30s"
	case seconds < 60:
		return "30-60s"
	case seconds < 120:
		return "60-120s"
	default:
		return "120s+"
	}
}

// Weekly returns the last seven calendar days, oldest first.
func Weekly(exercises []models.Exercise, now time.Time, loc *time.Location) []DayBucket {
	loc = orUTC(loc)
	today := DayOf(now, loc)

	buckets := make([]DayBucket, weekDays)
	index := make(map[time.Time]int, weekDays)
	for i := 0; i < weekDays; i++ {
		day := today.AddDate(0, 0, i-(weekDays-1))
		buckets[i] = DayBucket{Date: day.Format("2006-01-02"), Label: day.Format("Mon")}
		index[day] = i
	}

	for _, ex := range exercises {
		i, ok := index[DayOf(ex.CreatedAt, loc)]
		if !ok {
			continue
		}
		b := &buckets[i]
		b.Volume += ex.Volume()
		b.Sets += ex.Sets
		b.Reps += ex.Reps
		b.Exercises++
	}
	return buckets
}

// Monthly returns the last six calendar months, oldest first.
func Monthly(exercises []models.Exercise, now time.Time, loc *time.Location) []MonthBucket {
	loc = orUTC(loc)
	local := now.In(loc)
	first := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)

	buckets := make([]MonthBucket, monthsBack)
	index := make(map[string]int, monthsBack)
	for i := 0; i < monthsBack; i++ {
		month := first.AddDate(0, i-(monthsBack-1), 0)
		key := month.Format("2006-01")
		buckets[i] = MonthBucket{Month: key, Label: month.Format("Jan 2006")}
		index[key] = i
	}

	for _, ex := range exercises {
		i, ok := index[ex.CreatedAt.In(loc).Format("2006-01")]
		if !ok {
			continue
		}
		buckets[i].Volume += ex.Volume()
		buckets[i].Exercises++
	}
	return buckets
}

// Today sums the rows recorded on the current calendar day.
func Today(exercises []models.Exercise, now time.Time, loc *time.Location) TodayStats {
	loc = orUTC(loc)
	today := DayOf(now, loc)

	var s TodayStats
	for _, ex := range exercises {
		if !DayOf(ex.CreatedAt, loc).Equal(today) {
			continue
		}
		s.TotalSets += ex.Sets
		s.TotalReps += ex.Reps
		s.TotalVolume += ex.Volume()
		s.ExerciseCount++
	}
	return s
}

// DayOf truncates t to midnight of its calendar day in loc.
func DayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(orUTC(loc)).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, orUTC(loc))
}

// daysBetween counts whole calendar days from a to b; both must be day starts.
// Rounding absorbs 23h and 25h days around DST changes.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

func distinctDays(exercises []models.Exercise, loc *time.Location) []time.Time {
	seen := make(map[time.Time]struct{}, len(exercises))
	days := make([]time.Time, 0, len(exercises))
	for _, ex := range exercises {
		day := DayOf(ex.CreatedAt, loc)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	return days
}

func recent(exercises []models.Exercise) []models.Exercise {
	n := len(exercises)
	if n > recentSize {
		n = recentSize
	}
	out := make([]models.Exercise, n)
	copy(out, exercises[:n])
	return out
}

func exerciseName(ex models.Exercise) string {
	if name := strings.TrimSpace(ex.Exercise); name != "" {
		return name
	}
	return unknownExercise
}

func moodOf(ex models.Exercise) string {
	if mood := strings.TrimSpace(ex.Mood); mood != "" {
		return mood
	}
	return moodNotRecorded
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
