package services

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/HarpaCodes/NutriMind/config"
	"github.com/HarpaCodes/NutriMind/models"
	"github.com/HarpaCodes/NutriMind/utils"
)

// fallbackFood pairs a lowercase match pattern with its nutrition values. The
// slice order is the precedence order: the first matching pattern wins, so
// lookups stay reproducible.
type fallbackFood struct {
	pattern  string
	calories float64
	protein  float64
	carbs    float64
	fats     float64
	insight  string
}

var fallbackFoods = []fallbackFood{
	{"apple", 95, 0.5, 25, 0.3, "Low calorie fruit rich in fiber and vitamins."},
	{"banana", 105, 1.3, 27, 0.3, "Good source of potassium and quick energy."},
	{"rice", 200, 4, 45, 1, "Primary carbohydrate source, provides sustained energy."},
	{"chapati", 120, 3, 20, 2, "Whole wheat provides fiber and sustained energy."},
	{"dal", 150, 8, 25, 3, "Excellent plant-based protein and fiber source."},
	{"chicken curry", 350, 25, 10, 20, "High quality protein, watch portion size for fats."},
	{"paneer", 280, 18, 8, 20, "Rich in protein and calcium, moderate in fats."},
	{"egg", 78, 6, 0.6, 5, "Complete protein source with essential nutrients."},
	{"milk", 150, 8, 12, 8, "Good source of calcium, protein, and vitamins."},
	{"butter chicken", 450, 30, 15, 30, "High in protein but also high in calories and fats."},
	{"biryani", 400, 20, 60, 12, "Balanced meal with carbs, protein, but can be calorie-dense."},
	{"idli", 80, 3, 15, 0.5, "Light, fermented food that's easy to digest."},
	{"dosa", 150, 4, 25, 4, "Fermented crepe, good source of carbohydrates."},
	{"sambar", 100, 5, 15, 3, "Lentil-based stew rich in protein and vegetables."},
}

// NutritionService resolves a food description to a NutritionRecord. It never
// fails: the AI collaborator degrades to the static table, which degrades to a
// bounded random estimate.
type NutritionService struct {
	gemini *GeminiService

	mu  sync.Mutex
	rng *rand.Rand
}

func NewNutritionService(gemini *GeminiService) *NutritionService {
	return &NutritionService{
		gemini: gemini,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand swaps the random source, so estimate values are deterministic in
// tests.
func (s *NutritionService) WithRand(rng *rand.Rand) *NutritionService {
	s.rng = rng
	return s
}

// Resolve returns a fully populated record for any input, tagged with the tier
// that produced it.
func (s *NutritionService) Resolve(description, imageBase64 string) models.NutritionRecord {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" && imageBase64 == "" {
		return defaultRecord()
	}

	if s.gemini != nil && s.gemini.Configured() {
		rec, err := s.gemini.AnalyzeFood(trimmed, imageBase64)
		if err == nil {
			return *rec
		}
		if config.Log != nil {
			config.Log.Warnf("gemini analysis failed for %q, using fallback: %v", trimmed, err)
		}
	}

	if trimmed == "" {
		// image-only request that the AI could not handle
		return defaultRecord()
	}
	if rec, ok := lookupFallback(trimmed); ok {
		return rec
	}
	return s.randomEstimate(trimmed)
}

// lookupFallback walks the ordered table: exact match first, then the first
// pattern that contains or is contained by the input.
func lookupFallback(description string) (models.NutritionRecord, bool) {
	lower := strings.ToLower(strings.TrimSpace(description))

	for _, f := range fallbackFoods {
		if f.pattern == lower {
			return f.record(description), true
		}
	}
	for _, f := range fallbackFoods {
		if strings.Contains(lower, f.pattern) || strings.Contains(f.pattern, lower) {
			return f.record(description), true
		}
	}
	return models.NutritionRecord{}, false
}

func (f fallbackFood) record(description string) models.NutritionRecord {
	return models.NutritionRecord{
		FoodName: utils.TitleCase(description),
		Calories: f.calories,
		Protein:  f.protein,
		Carbs:    f.carbs,
		Fats:     f.fats,
		Insight:  f.insight,
		Source:   models.SourceStatic,
	}
}

// randomEstimate synthesizes a plausible record for foods nobody has heard of.
func (s *NutritionService) randomEstimate(description string) models.NutritionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.NutritionRecord{
		FoodName: utils.TitleCase(description),
		Calories: float64(150 + s.rng.Intn(251)), // [150,400]
		Protein:  float64(5 + s.rng.Intn(21)),    // [5,25]
		Carbs:    float64(20 + s.rng.Intn(31)),   // [20,50]
		Fats:     float64(5 + s.rng.Intn(16)),    // [5,20]
		Insight:  "Estimated nutrition values",
		Source:   models.SourceEstimated,
	}
}

func defaultRecord() models.NutritionRecord {
	return models.NutritionRecord{
		FoodName: "Unknown Food",
		Calories: 200,
		Protein:  10,
		Carbs:    25,
		Fats:     8,
		Insight:  "Estimated nutrition values based on typical foods.",
		Source:   models.SourceEstimated,
	}
}
