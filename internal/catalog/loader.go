// Package catalog loads the static recipe catalog the recommendation
// engine scores against. The catalog is re-read per request; recipes in
// the file are treated as an ordered sequence.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
	"github.com/smartdiet/smartdiet-backend/internal/logger"
	"github.com/smartdiet/smartdiet-backend/internal/types"
)

type Loader struct {
	path string
	log  *logger.Logger
}

func NewLoader(path string, baseLog *logger.Logger) *Loader {
	return &Loader{path: path, log: baseLog.With("component", "CatalogLoader")}
}

// Load reads the recipe list from the configured path, falling back to a
// few conventional locations. A missing or malformed file is a hard
// error: every caller that needs the catalog needs all of it.
func (l *Loader) Load() ([]types.Recipe, error) {
	candidates := []string{
		l.path,
		"sample_recipes.json",
		"data/sample_recipes.json",
	}

	var content []byte
	var found string
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		raw, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		content = raw
		found = candidate
		break
	}
	if found == "" {
		return nil, apperr.Storage("catalog.Load", fmt.Errorf("recipe catalog not found (tried %v)", candidates))
	}

	var recipes []types.Recipe
	if err := json.Unmarshal(content, &recipes); err != nil {
		return nil, apperr.Storage("catalog.Load", fmt.Errorf("parse recipe catalog %s: %w", found, err))
	}

	l.log.Debug("Loaded recipe catalog", "path", found, "recipes", len(recipes))
	return recipes, nil
}
