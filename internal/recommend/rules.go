// Package recommend holds the rule-based scorer and the recommendation
// engine. Both are pure: no storage access, no mutation of inputs, safe
// for concurrent use.
package recommend

import (
	"strings"

	"github.com/smartdiet/smartdiet-backend/internal/types"
)

// Score rates how well a recipe fits a profile, in [0, 1]. A recipe that
// fails the restriction or allergy check scores 0 outright; the checks
// are vetoes, never partial penalties. Otherwise independent rule
// contributions are summed and the total clamped.
func Score(recipe *types.Recipe, profile *types.HealthProfile) float64 {
	if !PassesRestrictions(recipe, profile) {
		return 0
	}

	score := 0.0
	score += goalScore(recipe, profile)
	score += nutritionScore(recipe)
	score += preferenceScore(recipe, profile)
	score += characteristicScore(recipe, profile)

	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}

// PassesRestrictions reports whether no restriction or allergy tag occurs
// as a case-insensitive substring of any ingredient name.
func PassesRestrictions(recipe *types.Recipe, profile *types.HealthProfile) bool {
	for _, restriction := range profile.DietaryRestrictions {
		if ingredientsContain(recipe, restriction) {
			return false
		}
	}
	for _, allergy := range profile.Allergies {
		if ingredientsContain(recipe, allergy) {
			return false
		}
	}
	return true
}

func ingredientsContain(recipe *types.Recipe, tag string) bool {
	needle := strings.ToLower(tag)
	for _, ingredient := range recipe.Ingredients {
		if strings.Contains(strings.ToLower(ingredient.Name), needle) {
			return true
		}
	}
	return false
}

func goalScore(recipe *types.Recipe, profile *types.HealthProfile) float64 {
	nutrition := recipe.Nutrition.Data()
	score := 0.0
	for _, goal := range profile.HealthGoals {
		switch goal {
		case types.GoalWeightLoss:
			if nutrition.Calories < 400 {
				score += 0.15
			}
			if nutrition.Fiber > 5 {
				score += 0.1
			}
		case types.GoalMuscleGain:
			if nutrition.Protein > 25 {
				score += 0.2
			}
		case types.GoalMaintain:
			if isBalancedMeal(nutrition) {
				score += 0.1
			}
		}
	}
	return score
}

// nutritionScore awards the balanced-meal bonus unconditionally. For a
// profile with the maintain goal this stacks with the same bonus in
// goalScore; the double count is intended behavior.
func nutritionScore(recipe *types.Recipe) float64 {
	if isBalancedMeal(recipe.Nutrition.Data()) {
		return 0.1
	}
	return 0
}

func preferenceScore(recipe *types.Recipe, profile *types.HealthProfile) float64 {
	tags := make(map[string]struct{}, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		tags[tag] = struct{}{}
	}

	score := 0.0
	hasPref := func(want string) bool {
		for _, pref := range profile.DietaryPreferences {
			if pref == want {
				return true
			}
		}
		return false
	}
	for _, pref := range profile.DietaryPreferences {
		if _, ok := tags[pref]; ok {
			score += 0.15
		}
	}
	if _, ok := tags["vegetarian"]; ok && hasPref("vegetarian") {
		score += 0.1
	}
	if _, ok := tags["low_carb"]; ok && hasPref("low_carb") {
		score += 0.1
	}
	return score
}

func characteristicScore(recipe *types.Recipe, profile *types.HealthProfile) float64 {
	nutrition := recipe.Nutrition.Data()
	score := 0.0

	if profile.Age < 30 {
		if nutrition.Calories > 300 && nutrition.Calories < 600 {
			score += 0.05
		}
	} else if profile.Age > 50 {
		if recipe.DifficultyLevel == types.DifficultyEasy || recipe.DifficultyLevel == types.DifficultyMedium {
			score += 0.05
		}
	}

	switch profile.ActivityLevel {
	case types.ActivitySedentary:
		if nutrition.Calories > 250 && nutrition.Calories < 500 {
			score += 0.05
		}
	case types.ActivityVeryActive:
		if nutrition.Calories > 400 {
			score += 0.05
		}
		if recipe.PreparationTime < 45 {
			score += 0.05
		}
	}
	return score
}

func isBalancedMeal(nutrition types.Nutrition) bool {
	return nutrition.Calories >= 300 && nutrition.Calories <= 600 && nutrition.Protein >= 15
}
