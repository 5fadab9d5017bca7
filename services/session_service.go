package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/HarpaCodes/NutriMind/models"
)

// SessionStore owns every active session. All state is in memory and dies with
// the process. Each entry point takes the session token, so no global mutable
// state leaks across sessions.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*models.Session)}
}

// Create validates the profile, derives the initial goals and registers a new
// session under a fresh opaque token.
func (s *SessionStore) Create(profile models.UserProfile) (models.Session, error) {
	profile.Gender = strings.ToLower(strings.TrimSpace(profile.Gender))
	profile.ActivityLevel = strings.ToLower(strings.TrimSpace(profile.ActivityLevel))
	profile.DietPreference = strings.ToLower(strings.TrimSpace(profile.DietPreference))
	if profile.DietPreference == "" {
		profile.DietPreference = models.DietAll
	}

	if !models.ValidGender(profile.Gender) {
		return models.Session{}, fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, profile.Gender)
	}
	if !models.ValidActivityLevel(profile.ActivityLevel) {
		return models.Session{}, fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, profile.ActivityLevel)
	}
	if !models.ValidDietPreference(profile.DietPreference) {
		return models.Session{}, fmt.Errorf("%w: unknown diet preference %q", ErrInvalidInput, profile.DietPreference)
	}

	goals, err := DeriveGoals(profile)
	if err != nil {
		return models.Session{}, err
	}

	now := time.Now()
	sess := &models.Session{
		Token:        uuid.NewString(),
		Profile:      profile,
		Goals:        goals,
		StartedAt:    now,
		LastActiveAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return *sess, nil
}

// Snapshot returns a deep copy of the session so callers can read without
// holding the store lock.
func (s *SessionStore) Snapshot(token string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	out := *sess
	out.FoodLog = append([]models.FoodLogEntry(nil), sess.FoodLog...)
	out.ExerciseLog = append([]models.ExerciseLogEntry(nil), sess.ExerciseLog...)
	return out, nil
}

// Delete removes the session entirely (logout).
func (s *SessionStore) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[token]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}

// UpdateProfile replaces the profile. Goals are re-derived from the new
// profile unless the user has manually overridden them.
func (s *SessionStore) UpdateProfile(token string, profile models.UserProfile) (models.Session, error) {
	profile.Gender = strings.ToLower(strings.TrimSpace(profile.Gender))
	profile.ActivityLevel = strings.ToLower(strings.TrimSpace(profile.ActivityLevel))
	profile.DietPreference = strings.ToLower(strings.TrimSpace(profile.DietPreference))
	goals, err := DeriveGoals(profile)
	if err != nil {
		return models.Session{}, err
	}
	if profile.DietPreference == "" {
		profile.DietPreference = models.DietAll
	}
	if !models.ValidDietPreference(profile.DietPreference) {
		return models.Session{}, fmt.Errorf("%w: unknown diet preference %q", ErrInvalidInput, profile.DietPreference)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	sess.Profile = profile
	if !sess.Goals.Overridden {
		sess.Goals = goals
	}
	sess.LastActiveAt = time.Now()
	return *sess, nil
}

// OverrideGoals replaces the targets wholesale. Last write wins.
func (s *SessionStore) OverrideGoals(token string, goals models.GoalSet) (models.Session, error) {
	if goals.Calories < 0 || goals.Protein < 0 || goals.Carbs < 0 || goals.Fats < 0 || goals.ExerciseMinutes < 0 {
		return models.Session{}, fmt.Errorf("%w: goal targets must be non-negative", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	goals.Overridden = true
	sess.Goals = goals
	sess.LastActiveAt = time.Now()
	return *sess, nil
}

// LogFood appends an immutable entry and bumps the running totals. Negative
// nutrition values are rejected before any state changes.
func (s *SessionStore) LogFood(token string, entry models.FoodLogEntry) (models.DailyTotals, error) {
	if strings.TrimSpace(entry.Name) == "" {
		return models.DailyTotals{}, fmt.Errorf("%w: food name required", ErrInvalidEntry)
	}
	if entry.Calories < 0 || entry.Protein < 0 || entry.Carbs < 0 || entry.Fats < 0 {
		return models.DailyTotals{}, fmt.Errorf("%w: nutrition values must be non-negative", ErrInvalidEntry)
	}
	switch entry.ScanSource {
	case models.ScanSourceImage, models.ScanSourceLabel, models.ScanSourceManual:
	case "":
		entry.ScanSource = models.ScanSourceManual
	default:
		return models.DailyTotals{}, fmt.Errorf("%w: unknown scan source %q", ErrInvalidEntry, entry.ScanSource)
	}
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return models.DailyTotals{}, ErrSessionNotFound
	}
	sess.FoodLog = append(sess.FoodLog, entry)
	sess.Totals.Calories += entry.Calories
	sess.Totals.Protein += entry.Protein
	sess.Totals.Carbs += entry.Carbs
	sess.Totals.Fats += entry.Fats
	sess.LastActiveAt = time.Now()
	return sess.Totals, nil
}

// LogExercise appends an exercise entry; burned calories accumulate separately
// from intake.
func (s *SessionStore) LogExercise(token string, entry models.ExerciseLogEntry) (models.DailyTotals, error) {
	if strings.TrimSpace(entry.Name) == "" {
		return models.DailyTotals{}, fmt.Errorf("%w: exercise name required", ErrInvalidEntry)
	}
	if entry.DurationMin <= 0 {
		return models.DailyTotals{}, fmt.Errorf("%w: duration must be positive", ErrInvalidEntry)
	}
	if entry.CaloriesBurned < 0 {
		return models.DailyTotals{}, fmt.Errorf("%w: calories burned must be non-negative", ErrInvalidEntry)
	}
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return models.DailyTotals{}, ErrSessionNotFound
	}
	sess.ExerciseLog = append(sess.ExerciseLog, entry)
	sess.Totals.CaloriesBurned += entry.CaloriesBurned
	sess.LastActiveAt = time.Now()
	return sess.Totals, nil
}

// AddWater adds glasses of water to the totals.
func (s *SessionStore) AddWater(token string, glasses float64) (models.DailyTotals, error) {
	if glasses <= 0 {
		return models.DailyTotals{}, fmt.Errorf("%w: glasses must be positive", ErrInvalidEntry)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return models.DailyTotals{}, ErrSessionNotFound
	}
	sess.Totals.Water += glasses
	sess.LastActiveAt = time.Now()
	return sess.Totals, nil
}

// Reset clears all logs and zeroes the totals, keeping profile and goals.
// This is the only rollover mechanism; totals never reset at midnight.
func (s *SessionStore) Reset(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return ErrSessionNotFound
	}
	sess.FoodLog = nil
	sess.ExerciseLog = nil
	sess.Totals = models.DailyTotals{}
	sess.LastActiveAt = time.Now()
	return nil
}
