package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartdiet/smartdiet-backend/internal/catalog"
	"github.com/smartdiet/smartdiet-backend/internal/logger"
	"github.com/smartdiet/smartdiet-backend/internal/recommend"
	"github.com/smartdiet/smartdiet-backend/internal/repos"
	"github.com/smartdiet/smartdiet-backend/internal/types"
)

// slowGenerationThreshold flags recommendation passes that take longer
// than the latency target for a local catalog.
const slowGenerationThreshold = 200 * time.Millisecond

type RecommendationService interface {
	GetForUser(ctx context.Context, userID string) ([]types.DietRecommendation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.DietRecommendation, error)
}

type recommendationService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.HealthProfileRepo
	recRepo     repos.RecommendationRepo
	loader      *catalog.Loader
}

func NewRecommendationService(db *gorm.DB, log *logger.Logger, profileRepo repos.HealthProfileRepo, recRepo repos.RecommendationRepo, loader *catalog.Loader) RecommendationService {
	serviceLog := log.With("service", "RecommendationService")
	return &recommendationService{
		db:          db,
		log:         serviceLog,
		profileRepo: profileRepo,
		recRepo:     recRepo,
		loader:      loader,
	}
}

// GetForUser generates recommendations fresh from the current catalog.
// A user with a saved profile gets the personalized ranking; anyone else
// gets the diversified default set. There are no other modes.
func (rs *recommendationService) GetForUser(ctx context.Context, userID string) ([]types.DietRecommendation, error) {
	start := time.Now()

	profile, err := rs.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		rs.log.Error("Failed to load health profile", "user_id", userID, "error", err)
		return nil, err
	}

	recipes, err := rs.loader.Load()
	if err != nil {
		rs.log.Error("Failed to load recipe catalog", "error", err)
		return nil, err
	}
	engine := recommend.NewEngine(recipes)

	var recommendations []types.DietRecommendation
	if profile != nil {
		rs.log.Info("Generating personalized recommendations", "user_id", userID)
		recommendations = engine.Personalized(profile)
	} else {
		rs.log.Info("No profile found, generating default recommendations", "user_id", userID)
		recommendations = engine.Default(userID)
	}

	elapsed := time.Since(start)
	if elapsed > slowGenerationThreshold {
		rs.log.Warn("Recommendation generation exceeded latency target",
			"user_id", userID, "elapsed", elapsed, "catalog_size", len(recipes))
	} else {
		rs.log.Debug("Recommendation generation finished",
			"user_id", userID, "elapsed", elapsed, "count", len(recommendations))
	}
	return recommendations, nil
}

func (rs *recommendationService) GetByID(ctx context.Context, id uuid.UUID) (*types.DietRecommendation, error) {
	return rs.recRepo.GetByID(ctx, nil, id)
}
