package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
	"github.com/smartdiet/smartdiet-backend/internal/logger"
	"github.com/smartdiet/smartdiet-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Config{Mode: "development"})
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

const catalogJSON = `[
	{
		"id": "7b0e9e0c-7d8a-4c2b-b6ce-52f0e84d4b5e",
		"title": "Overnight Oats",
		"description": "Oats soaked in milk.",
		"ingredients": [{"name": "oats", "amount": 50, "unit": "g", "optional": false}],
		"nutritional_info_per_serving": {"calories": 350, "protein": 12, "carbs": 60, "fat": 6, "fiber": 8},
		"preparation_time": 10,
		"difficulty_level": "easy",
		"meal_type": "breakfast",
		"recipe_instructions": "Soak overnight.",
		"cuisine_type": null,
		"seasonal": false,
		"tags": ["vegetarian", "quick"]
	}
]`

func TestLoaderLoad_ParsesCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample_recipes.json")
	if err := os.WriteFile(path, []byte(catalogJSON), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	recipes, err := NewLoader(path, testLogger(t)).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(recipes) != 1 {
		t.Fatalf("want 1 recipe, got %d", len(recipes))
	}
	r := recipes[0]
	if r.Title != "Overnight Oats" || r.MealType != types.MealTypeBreakfast {
		t.Fatalf("recipe fields mismatch: %+v", r)
	}
	if r.Nutrition.Data().Fiber != 8 {
		t.Fatalf("nutrition mismatch: %+v", r.Nutrition.Data())
	}
	if len(r.Tags) != 2 || r.Tags[0] != "vegetarian" {
		t.Fatalf("tags mismatch: %v", r.Tags)
	}
}

func TestLoaderLoad_MissingFileIsStorageError(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "nope.json"), testLogger(t))
	_, err := l.Load()
	if !apperr.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestLoaderLoad_MalformedFileIsStorageError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"not": "a list"`), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	_, err := NewLoader(path, testLogger(t)).Load()
	if !apperr.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
