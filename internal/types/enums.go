package types

const DateLayout = "2006-01-02"

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

const (
	GoalWeightLoss = "weight_loss"
	GoalMuscleGain = "muscle_gain"
	GoalMaintain   = "maintain"
)

var validDifficulties = map[string]struct{}{
	DifficultyEasy:   {},
	DifficultyMedium: {},
	DifficultyHard:   {},
}

var validMealTypes = map[string]struct{}{
	MealTypeBreakfast: {},
	MealTypeLunch:     {},
	MealTypeDinner:    {},
	MealTypeSnack:     {},
}

var validActivityLevels = map[string]struct{}{
	ActivitySedentary:  {},
	ActivityLight:      {},
	ActivityModerate:   {},
	ActivityActive:     {},
	ActivityVeryActive: {},
}

var validGenders = map[string]struct{}{
	"male":              {},
	"female":            {},
	"other":             {},
	"prefer_not_to_say": {},
}

func IsValidMealType(mealType string) bool {
	_, ok := validMealTypes[mealType]
	return ok
}
