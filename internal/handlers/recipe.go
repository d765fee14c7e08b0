package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
	"github.com/smartdiet/smartdiet-backend/internal/repos"
	"github.com/smartdiet/smartdiet-backend/internal/services"
	"github.com/smartdiet/smartdiet-backend/internal/types"
)

type RecipeHandler struct {
	recipeService services.RecipeService
}

func NewRecipeHandler(recipeService services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

type recipeRequest struct {
	ID                 *string            `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Ingredients        []types.Ingredient `json:"ingredients"`
	Nutrition          types.Nutrition    `json:"nutritional_info_per_serving"`
	PreparationTime    int                `json:"preparation_time"`
	DifficultyLevel    string             `json:"difficulty_level"`
	MealType           string             `json:"meal_type"`
	RecipeInstructions string             `json:"recipe_instructions"`
	CuisineType        *string            `json:"cuisine_type"`
	Seasonal           bool               `json:"seasonal"`
	Tags               []string           `json:"tags"`
}

func (rh *RecipeHandler) SaveRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	recipe := &types.Recipe{
		Title:              req.Title,
		Description:        req.Description,
		Ingredients:        datatypes.JSONSlice[types.Ingredient](req.Ingredients),
		Nutrition:          datatypes.NewJSONType(req.Nutrition),
		PreparationTime:    req.PreparationTime,
		DifficultyLevel:    req.DifficultyLevel,
		MealType:           req.MealType,
		RecipeInstructions: req.RecipeInstructions,
		CuisineType:        req.CuisineType,
		Seasonal:           req.Seasonal,
		Tags:               datatypes.JSONSlice[string](req.Tags),
	}
	if req.ID != nil {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			RespondAppError(c, apperr.Parsef("invalid recipe id %q: %v", *req.ID, err))
			return
		}
		recipe.ID = id
	}

	saved, err := rh.recipeService.Save(c.Request.Context(), recipe)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"recipe": saved})
}

func (rh *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondAppError(c, apperr.Parsef("invalid recipe id %q: %v", c.Param("id"), err))
		return
	}
	recipe, err := rh.recipeService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	if recipe == nil {
		RespondAppError(c, apperr.NotFoundf("handlers.GetRecipe", "recipe %s not found", id))
		return
	}
	RespondOK(c, gin.H{"recipe": recipe})
}

func (rh *RecipeHandler) SearchRecipes(c *gin.Context) {
	filter := repos.RecipeFilter{}
	if v, ok := c.GetQuery("query"); ok {
		filter.Query = &v
	}
	if v, ok := c.GetQuery("tags"); ok && v != "" {
		filter.Tags = splitCSV(v)
	}
	if v, ok := c.GetQuery("exclude_ingredients"); ok && v != "" {
		filter.ExcludeIngredients = splitCSV(v)
	}
	if v, ok := c.GetQuery("difficulty_level"); ok {
		filter.DifficultyLevel = &v
	}
	if v, ok := c.GetQuery("meal_type"); ok {
		filter.MealType = &v
	}
	maxPrep, err := intQuery(c, "max_preparation_time")
	if err != nil {
		RespondAppError(c, err)
		return
	}
	filter.MaxPreparationTime = maxPrep
	limit, err := intQuery(c, "limit")
	if err != nil {
		RespondAppError(c, err)
		return
	}
	filter.Limit = limit
	offset, err := intQuery(c, "offset")
	if err != nil {
		RespondAppError(c, err)
		return
	}
	filter.Offset = offset

	recipes, err := rh.recipeService.Search(c.Request.Context(), filter)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"recipes": recipes})
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
