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

type RecommendationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rec *types.DietRecommendation) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.DietRecommendation, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*types.DietRecommendation, error)
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID string) error
}

type recommendationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecommendationRepo(db *gorm.DB, baseLog *logger.Logger) RecommendationRepo {
	repoLog := baseLog.With("repo", "RecommendationRepo")
	return &recommendationRepo{db: db, log: repoLog}
}

func (rr *recommendationRepo) Create(ctx context.Context, tx *gorm.DB, rec *types.DietRecommendation) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if err := transaction.WithContext(ctx).Create(rec).Error; err != nil {
		return apperr.Storage("store.SaveRecommendation", err)
	}
	return nil
}

func (rr *recommendationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.DietRecommendation, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var rec types.DietRecommendation
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage("store.GetRecommendationById", err)
	}
	return &rec, nil
}

func (rr *recommendationRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*types.DietRecommendation, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var recs []*types.DietRecommendation
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&recs).Error; err != nil {
		return nil, apperr.Storage("store.GetRecommendations", err)
	}
	return recs, nil
}

func (rr *recommendationRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID string) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.DietRecommendation{}).Error; err != nil {
		return apperr.Storage("store.DeleteRecommendationsByUser", err)
	}
	return nil
}
