package dto

// CreateExerciseRequest represents a form-submitted workout set
type CreateExerciseRequest struct {
	Exercise     string  `json:"exercise"`
	ExerciseType string  `json:"exercise_type"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
	UserWeight   float64 `json:"userweight"`
	Time         int     `json:"time"` // seconds
	Mood         string  `json:"mood"`
	CreatedAt    *string `json:"created_at,omitempty"` // YYYY-MM-DD or RFC3339, defaults to now
}

// ExerciseCallbackRequest is posted by the automation workflow after it has
// transcribed a voice recording. Either user_id or username identifies the owner.
type ExerciseCallbackRequest struct {
	UserID    string                   `json:"user_id,omitempty"`
	Username  string                   `json:"username,omitempty"`
	WhatSaid  string                   `json:"whatsaid,omitempty"`
	Exercises []CallbackExerciseRecord `json:"exercises"`
}

// CallbackExerciseRecord is one set extracted from a transcript
type CallbackExerciseRecord struct {
	Exercise     string  `json:"exercise"`
	ExerciseType string  `json:"exercise_type"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
	UserWeight   float64 `json:"userweight"`
	Time         int     `json:"time"`
	Mood         string  `json:"mood"`
	WhatSaid     string  `json:"whatsaid,omitempty"`
}

// ExerciseResponse represents an exercise in responses
type ExerciseResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Exercise     string  `json:"exercise"`
	ExerciseType string  `json:"exercise_type"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
	UserWeight   float64 `json:"userweight"`
	Time         int     `json:"time"`
	Mood         string  `json:"mood"`
	WhatSaid     *string `json:"whatsaid,omitempty"`
	Source       string  `json:"source"`
	CreatedAt    string  `json:"created_at"`
}

// Pagination info
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// ExerciseListResponse envelope
type ExerciseListResponse struct {
	Exercises  []ExerciseResponse `json:"exercises"`
	Pagination Pagination         `json:"pagination"`
}

// ExerciseCallbackResponse acknowledges stored callback rows
type ExerciseCallbackResponse struct {
	Stored    int                `json:"stored"`
	Exercises []ExerciseResponse `json:"exercises"`
}
