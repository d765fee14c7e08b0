package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
	"github.com/smartdiet/smartdiet-backend/internal/logger"
	"github.com/smartdiet/smartdiet-backend/internal/types"
)

// RecipeFilter composes the optional search criteria conjunctively. Tags
// must all match (substring containment in the serialized tag array); any
// excluded ingredient appearing in the serialized ingredient list removes
// the recipe.
type RecipeFilter struct {
	Query              *string
	Tags               []string
	ExcludeIngredients []string
	MaxPreparationTime *int
	DifficultyLevel    *string
	MealType           *string
	Limit              *int
	Offset             *int
}

type RecipeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, recipe *types.Recipe) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recipe, error)
	Search(ctx context.Context, tx *gorm.DB, filter RecipeFilter) ([]*types.Recipe, error)
}

type recipeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	repoLog := baseLog.With("repo", "RecipeRepo")
	return &recipeRepo{db: db, log: repoLog}
}

func (rr *recipeRepo) Create(ctx context.Context, tx *gorm.DB, recipe *types.Recipe) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if err := transaction.WithContext(ctx).Create(recipe).Error; err != nil {
		return apperr.Storage("store.SaveRecipe", err)
	}
	return nil
}

func (rr *recipeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recipe, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var recipe types.Recipe
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage("store.GetRecipeById", err)
	}
	return &recipe, nil
}

func (rr *recipeRepo) Search(ctx context.Context, tx *gorm.DB, filter RecipeFilter) ([]*types.Recipe, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	q := transaction.WithContext(ctx).Model(&types.Recipe{})
	if filter.Query != nil {
		pattern := "%" + *filter.Query + "%"
		q = q.Where("(title LIKE ? OR description LIKE ?)", pattern, pattern)
	}
	for _, tag := range filter.Tags {
		q = q.Where("tags LIKE ?", "%"+tag+"%")
	}
	for _, ingredient := range filter.ExcludeIngredients {
		q = q.Where("ingredients NOT LIKE ?", "%"+ingredient+"%")
	}
	if filter.MaxPreparationTime != nil {
		q = q.Where("preparation_time <= ?", *filter.MaxPreparationTime)
	}
	if filter.DifficultyLevel != nil {
		q = q.Where("difficulty_level = ?", *filter.DifficultyLevel)
	}
	if filter.MealType != nil {
		q = q.Where("meal_type = ?", *filter.MealType)
	}
	q = q.Order("title ASC")
	if filter.Limit != nil {
		q = q.Limit(*filter.Limit)
	}
	if filter.Offset != nil {
		q = q.Offset(*filter.Offset)
	}

	var recipes []*types.Recipe
	if err := q.Find(&recipes).Error; err != nil {
		return nil, apperr.Storage("store.SearchRecipes", err)
	}
	return recipes, nil
}
