package analytics

import (
	"fmt"
	"time"

	"FITTRACK_BACK-END/internal/models"
)

const mixedMuscleGroup = "Mixed"

// WorkoutSession describes one training day.
type WorkoutSession struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	MuscleGroup string `json:"muscle_group"`
	MoodPre     string `json:"mood_pre"`
	Notes       string `json:"notes"`
	Date        string `json:"date"`
	Timestamp   string `json:"timestamp"`
}

// WorkoutExercise is a row inside a workout summary.
type WorkoutExercise struct {
	ID        string  `json:"id"`
	SessionID string  `json:"session_id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Time      int     `json:"time"`
	Mood      string  `json:"mood"`
}

// WorkoutSummary groups every exercise recorded on one calendar day.
type WorkoutSummary struct {
	Session       WorkoutSession    `json:"session"`
	Exercises     []WorkoutExercise `json:"exercises"`
	TotalSets     int               `json:"total_sets"`
	TotalReps     int               `json:"total_reps"`
	TotalVolume   float64           `json:"total_volume"`
	TotalTime     int               `json:"total_time"`
	ExerciseCount int               `json:"exercise_count"`
}

// RecentWorkouts groups rows by calendar day in the order they were fetched
// (newest first from the store) and returns at most limit days.
func RecentWorkouts(exercises []models.Exercise, limit int, loc *time.Location) []WorkoutSummary {
	loc = orUTC(loc)
	out := make([]WorkoutSummary, 0)
	if limit <= 0 {
		return out
	}

	index := make(map[string]int)
	for _, ex := range exercises {
		date := ex.CreatedAt.In(loc).Format("2006-01-02")
		i, ok := index[date]
		if !ok {
			if len(out) == limit {
				continue
			}
			out = append(out, WorkoutSummary{
				Session: WorkoutSession{
					ID:          date,
					UserID:      ex.UserID.String(),
					MuscleGroup: mixedMuscleGroup,
					MoodPre:     moodOf(ex),
					Date:        date,
					Timestamp:   ex.CreatedAt.UTC().Format(time.RFC3339),
				},
				Exercises: make([]WorkoutExercise, 0, 1),
			})
			i = len(out) - 1
			index[date] = i
		}

		w := &out[i]
		w.Exercises = append(w.Exercises, WorkoutExercise{
			ID:        ex.ID.String(),
			SessionID: date,
			Name:      exerciseName(ex),
			Type:      ex.ExerciseType,
			Sets:      ex.Sets,
			Reps:      ex.Reps,
			Weight:    ex.Weight,
			Time:      ex.Time,
			Mood:      ex.Mood,
		})
		w.TotalSets += ex.Sets
		w.TotalReps += ex.Reps
		w.TotalVolume += ex.Volume()
		w.TotalTime += ex.Time
		w.ExerciseCount++
	}

	for i := range out {
		out[i].Session.Notes = fmt.Sprintf("%d exercises completed", out[i].ExerciseCount)
	}
	return out
}
