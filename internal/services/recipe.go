package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartdiet/smartdiet-backend/internal/logger"
	"github.com/smartdiet/smartdiet-backend/internal/repos"
	"github.com/smartdiet/smartdiet-backend/internal/types"
)

type RecipeService interface {
	Save(ctx context.Context, recipe *types.Recipe) (*types.Recipe, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Recipe, error)
	Search(ctx context.Context, filter repos.RecipeFilter) ([]*types.Recipe, error)
}

type recipeService struct {
	db         *gorm.DB
	log        *logger.Logger
	recipeRepo repos.RecipeRepo
}

func NewRecipeService(db *gorm.DB, log *logger.Logger, recipeRepo repos.RecipeRepo) RecipeService {
	serviceLog := log.With("service", "RecipeService")
	return &recipeService{db: db, log: serviceLog, recipeRepo: recipeRepo}
}

// Save inserts a catalog recipe. Recipes are immutable once stored;
// re-saving the same id is an error, not an update.
func (rs *recipeService) Save(ctx context.Context, recipe *types.Recipe) (*types.Recipe, error) {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	now := time.Now().UTC()
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = now
	}
	recipe.UpdatedAt = now

	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	if err := rs.recipeRepo.Create(ctx, nil, recipe); err != nil {
		rs.log.Error("Failed to save recipe", "recipe_id", recipe.ID, "error", err)
		return nil, err
	}
	return recipe, nil
}

func (rs *recipeService) GetByID(ctx context.Context, id uuid.UUID) (*types.Recipe, error) {
	return rs.recipeRepo.GetByID(ctx, nil, id)
}

func (rs *recipeService) Search(ctx context.Context, filter repos.RecipeFilter) ([]*types.Recipe, error) {
	return rs.recipeRepo.Search(ctx, nil, filter)
}
