package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
	"github.com/smartdiet/smartdiet-backend/internal/repos"
	"github.com/smartdiet/smartdiet-backend/internal/types"
)

func TestHistoryServiceLog_ValidatesBeforeStore(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewHistoryService(env.db, env.log, env.historyRepo)
	ctx := context.Background()

	entry := validServiceEntry("user-1")
	entry.DateAttempted = time.Now().AddDate(0, 0, 2).Format(types.DateLayout)
	if _, err := svc.Log(ctx, entry); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for future date, got %v", err)
	}

	count, err := svc.Count(ctx, repos.HistoryFilter{UserID: "user-1"})
	if err != nil || count != 0 {
		t.Fatalf("invalid entry must not reach the store: count=%d err=%v", count, err)
	}
}

func TestHistoryServiceLog_AssignsIdentity(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewHistoryService(env.db, env.log, env.historyRepo)

	saved, err := svc.Log(context.Background(), validServiceEntry("user-1"))
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if saved.ID == uuid.Nil || saved.CreatedAt.IsZero() {
		t.Fatalf("log must assign id and timestamps: %+v", saved)
	}
}

func TestHistoryServiceList_RejectsBadFilters(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewHistoryService(env.db, env.log, env.historyRepo)
	ctx := context.Background()

	if _, err := svc.List(ctx, repos.HistoryFilter{}); !apperr.IsValidation(err) {
		t.Fatalf("empty user id: expected validation error, got %v", err)
	}

	bad := "05/01/2024"
	if _, err := svc.List(ctx, repos.HistoryFilter{UserID: "u", StartDate: &bad}); !apperr.IsParse(err) {
		t.Fatalf("malformed start date: expected parse error, got %v", err)
	}
	if _, err := svc.Count(ctx, repos.HistoryFilter{UserID: "u", EndDate: &bad}); !apperr.IsParse(err) {
		t.Fatalf("malformed end date: expected parse error, got %v", err)
	}

	meal := "brunch"
	if _, err := svc.List(ctx, repos.HistoryFilter{UserID: "u", MealType: &meal}); !apperr.IsValidation(err) {
		t.Fatalf("invalid meal type: expected validation error, got %v", err)
	}
}

func TestHistoryServiceUpdate_ValidatesRating(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewHistoryService(env.db, env.log, env.historyRepo)
	ctx := context.Background()

	rating := 9
	err := svc.Update(ctx, uuid.New(), repos.HistoryPatch{Rating: &rating})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for rating 9, got %v", err)
	}

	rating = 4
	if err := svc.Update(ctx, uuid.New(), repos.HistoryPatch{Rating: &rating}); !apperr.IsNotFound(err) {
		t.Fatalf("expected not found for missing entry, got %v", err)
	}
}
