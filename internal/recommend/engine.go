package recommend

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/smartdiet/smartdiet-backend/internal/types"
)

// minRelevance is the cutoff below which a personalized match is not
// worth surfacing.
const minRelevance = 0.1

// defaultMaxPerMealType and defaultMaxTotal bound the diversified set
// produced when no profile exists.
const (
	defaultMaxPerMealType = 3
	defaultMaxTotal       = 12
)

// Engine scores a fixed recipe catalog. The catalog is set at
// construction and never mutated afterwards, so one engine value can
// serve concurrent requests.
type Engine struct {
	recipes []types.Recipe
}

func NewEngine(recipes []types.Recipe) *Engine {
	return &Engine{recipes: recipes}
}

// Personalized scores every catalog recipe against the profile and
// returns the matches ordered best-first. The restriction pre-filter
// repeats the check inside Score on purpose: a recipe carrying an
// allergen must never survive either layer.
func (e *Engine) Personalized(profile *types.HealthProfile) []types.DietRecommendation {
	var recommendations []types.DietRecommendation
	for i := range e.recipes {
		recipe := &e.recipes[i]
		if !PassesRestrictions(recipe, profile) {
			continue
		}
		relevance := Score(recipe, profile)
		if relevance <= minRelevance {
			continue
		}
		recommendations = append(recommendations, snapshotRecipe(recipe, profile.UserID, true, relevance, recipe.Description))
	}

	// Descending by score under a total order: NaN sorts last, exact
	// ties break on title so the result is deterministic.
	sort.Slice(recommendations, func(i, j int) bool {
		si := totalOrderKey(recommendations[i].RelevanceScore)
		sj := totalOrderKey(recommendations[j].RelevanceScore)
		if si != sj {
			return si > sj
		}
		return recommendations[i].Title < recommendations[j].Title
	})
	return recommendations
}

// Default produces a diversified set when no profile exists: up to three
// recipes per meal type, twelve overall, scored by a difficulty
// heuristic and ordered for presentation (meal type, then difficulty)
// rather than by score.
func (e *Engine) Default(userID string) []types.DietRecommendation {
	counts := map[string]int{}
	var recommendations []types.DietRecommendation

	for i := range e.recipes {
		recipe := &e.recipes[i]
		if !types.IsValidMealType(recipe.MealType) {
			continue
		}
		if counts[recipe.MealType] >= defaultMaxPerMealType {
			continue
		}
		counts[recipe.MealType]++
		recommendations = append(recommendations, snapshotRecipe(recipe, userID, false, defaultScore(recipe), defaultDescription(recipe)))
		if len(recommendations) >= defaultMaxTotal {
			break
		}
	}

	sort.Slice(recommendations, func(i, j int) bool {
		mi, mj := mealTypeRank(recommendations[i].MealType), mealTypeRank(recommendations[j].MealType)
		if mi != mj {
			return mi < mj
		}
		return difficultyRank(recommendations[i].DifficultyLevel) < difficultyRank(recommendations[j].DifficultyLevel)
	})
	return recommendations
}

func defaultScore(recipe *types.Recipe) float64 {
	var base float64
	switch recipe.DifficultyLevel {
	case types.DifficultyEasy:
		base = 0.8
	case types.DifficultyMedium:
		base = 0.6
	case types.DifficultyHard:
		base = 0.4
	default:
		base = 0.5
	}
	nutrition := recipe.Nutrition.Data()
	if nutrition.Protein > 10 && nutrition.Fiber > 2 {
		base += 0.1
	}
	if base > 1 {
		base = 1
	}
	return base
}

func defaultDescription(recipe *types.Recipe) string {
	return fmt.Sprintf("A nutritionally balanced %s %s, suited to everyday cooking.",
		recipe.DifficultyLevel, recipe.MealType)
}

func snapshotRecipe(recipe *types.Recipe, userID string, personalized bool, relevance float64, description string) types.DietRecommendation {
	ingredients := make(datatypes.JSONSlice[types.RecommendationIngredient], 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredients = append(ingredients, types.RecommendationIngredient{
			Name:   ingredient.Name,
			Amount: ingredient.Amount,
			Unit:   ingredient.Unit,
		})
	}
	return types.DietRecommendation{
		ID:                 uuid.New(),
		UserID:             userID,
		Title:              recipe.Title,
		Description:        description,
		Ingredients:        ingredients,
		Nutrition:          recipe.Nutrition,
		PreparationTime:    recipe.PreparationTime,
		DifficultyLevel:    recipe.DifficultyLevel,
		MealType:           recipe.MealType,
		RecipeInstructions: recipe.RecipeInstructions,
		CreatedAt:          time.Now().UTC(),
		IsPersonalized:     personalized,
		RelevanceScore:     relevance,
	}
}

func totalOrderKey(score float64) float64 {
	if math.IsNaN(score) {
		return math.Inf(-1)
	}
	return score
}

func mealTypeRank(mealType string) int {
	switch mealType {
	case types.MealTypeBreakfast:
		return 0
	case types.MealTypeLunch:
		return 1
	case types.MealTypeDinner:
		return 2
	case types.MealTypeSnack:
		return 3
	default:
		return 4
	}
}

func difficultyRank(difficulty string) int {
	switch difficulty {
	case types.DifficultyEasy:
		return 0
	case types.DifficultyMedium:
		return 1
	case types.DifficultyHard:
		return 2
	default:
		return 3
	}
}
