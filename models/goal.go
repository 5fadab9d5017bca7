package models

// GoalSet holds the user's daily targets. Derived from the profile at session
// start; a manual PUT overwrites it wholesale (last-write-wins, no versioning).
type GoalSet struct {
	Calories        int  `json:"calories"`         // kcal/day
	Protein         int  `json:"protein"`          // g/day
	Carbs           int  `json:"carbs"`            // g/day, 50% of calories at 4 kcal/g
	Fats            int  `json:"fats"`             // g/day, 25% of calories at 9 kcal/g
	ExerciseMinutes int  `json:"exercise_minutes"` // minutes/day
	Overridden      bool `json:"overridden"`       // true once the user edits targets by hand
}
