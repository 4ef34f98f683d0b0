package models

import (
	"time"

	"github.com/google/uuid"
)

// Exercise sources
const (
	SourceForm  = "form"
	SourceVoice = "voice"
)

// Exercise is one recorded workout set. Rows are immutable once stored.
type Exercise struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Exercise     string    `json:"exercise" db:"exercise"`
	ExerciseType string    `json:"exercise_type" db:"exercise_type"`
	Sets         int       `json:"sets" db:"sets"`
	Reps         int       `json:"reps" db:"reps"`
	Weight       float64   `json:"weight" db:"weight"`
	UserWeight   float64   `json:"userweight" db:"userweight"`
	Time         int       `json:"time" db:"time"` // seconds
	Mood         string    `json:"mood" db:"mood"`
	WhatSaid     *string   `json:"whatsaid,omitempty" db:"whatsaid"`
	Source       string    `json:"source" db:"source"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Volume is weight times reps for this row
func (e Exercise) Volume() float64 {
	return e.Weight * float64(e.Reps)
}
