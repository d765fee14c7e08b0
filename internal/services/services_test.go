package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/smartdiet/smartdiet-backend/internal/db"
	"github.com/smartdiet/smartdiet-backend/internal/logger"
	"github.com/smartdiet/smartdiet-backend/internal/repos"
	"github.com/smartdiet/smartdiet-backend/internal/types"
)

type serviceEnv struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.HealthProfileRepo
	historyRepo repos.DietHistoryRepo
	recipeRepo  repos.RecipeRepo
	recRepo     repos.RecommendationRepo
}

func newServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()
	log, err := logger.New(logger.Config{Mode: "development"})
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	svc, err := db.NewSQLiteService(filepath.Join(t.TempDir(), "test.db"), log)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := svc.MigrateAll(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	gdb := svc.DB()
	return &serviceEnv{
		db:          gdb,
		log:         log,
		profileRepo: repos.NewHealthProfileRepo(gdb, log),
		historyRepo: repos.NewDietHistoryRepo(gdb, log),
		recipeRepo:  repos.NewRecipeRepo(gdb, log),
		recRepo:     repos.NewRecommendationRepo(gdb, log),
	}
}

func validServiceProfile(userID string) *types.HealthProfile {
	p := types.NewHealthProfile(userID)
	p.Age = 30
	p.Weight = 70
	p.Height = 175
	return p
}

func validServiceEntry(userID string) *types.DietHistory {
	return &types.DietHistory{
		UserID:        userID,
		DietItemID:    uuid.New(),
		DateAttempted: time.Now().Format(types.DateLayout),
		WasPrepared:   true,
		MealType:      types.MealTypeLunch,
	}
}

func validServiceRecommendation(userID string) *types.DietRecommendation {
	return &types.DietRecommendation{
		ID:     uuid.New(),
		UserID: userID,
		Title:  "Overnight Oats",
		Ingredients: datatypes.JSONSlice[types.RecommendationIngredient]{
			{Name: "oats", Amount: 50, Unit: "g"},
		},
		Nutrition: datatypes.NewJSONType(types.Nutrition{
			Calories: 350, Protein: 12, Carbs: 60, Fat: 6, Fiber: 8,
		}),
		PreparationTime:    10,
		DifficultyLevel:    types.DifficultyEasy,
		MealType:           types.MealTypeBreakfast,
		RecipeInstructions: "Soak overnight.",
		CreatedAt:          time.Now().UTC(),
		IsPersonalized:     true,
		RelevanceScore:     0.6,
	}
}

// failingRecommendationRepo fails DeleteByUserID to exercise cascade
// rollback.
type failingRecommendationRepo struct {
	repos.RecommendationRepo
	err error
}

func (f *failingRecommendationRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID string) error {
	return f.err
}
