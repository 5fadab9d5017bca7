package models

import "time"

// Session owns all state for one active user: profile, goals, logs and totals.
// Nothing is shared between sessions and nothing survives the process.
type Session struct {
	Token        string             `json:"token"`
	Profile      UserProfile        `json:"profile"`
	Goals        GoalSet            `json:"goals"`
	FoodLog      []FoodLogEntry     `json:"food_log"`
	ExerciseLog  []ExerciseLogEntry `json:"exercise_log"`
	Totals       DailyTotals        `json:"totals"`
	StartedAt    time.Time          `json:"started_at"`
	LastActiveAt time.Time          `json:"last_active_at"`
}
