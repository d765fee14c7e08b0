package types

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func validHistory() *DietHistory {
	return &DietHistory{
		ID:            uuid.New(),
		UserID:        "user-1",
		DietItemID:    uuid.New(),
		DateAttempted: time.Now().Format(DateLayout),
		WasPrepared:   true,
		MealType:      MealTypeLunch,
	}
}

func TestDietHistoryValidate_AcceptsToday(t *testing.T) {
	if err := validHistory().Validate(); err != nil {
		t.Fatalf("expected valid entry, got %v", err)
	}
}

func TestDietHistoryValidate_RatingBounds(t *testing.T) {
	for _, rating := range []int{1, 3, 5} {
		h := validHistory()
		r := rating
		h.Rating = &r
		if err := h.Validate(); err != nil {
			t.Fatalf("rating %d should be valid, got %v", rating, err)
		}
	}
	for _, rating := range []int{0, 6, -1} {
		h := validHistory()
		r := rating
		h.Rating = &r
		if err := h.Validate(); err == nil {
			t.Fatalf("rating %d should be rejected", rating)
		}
	}
}

func TestDietHistoryValidate_RejectsFutureAndMalformedDates(t *testing.T) {
	h := validHistory()
	h.DateAttempted = time.Now().AddDate(0, 0, 1).Format(DateLayout)
	if err := h.Validate(); err == nil {
		t.Fatalf("expected error for future date")
	}

	for _, date := range []string{"", "not-a-date", "2024-13-01", "01-02-2024"} {
		h := validHistory()
		h.DateAttempted = date
		if err := h.Validate(); err == nil {
			t.Fatalf("expected error for date %q", date)
		}
	}

	// Yesterday is always valid.
	h = validHistory()
	h.DateAttempted = time.Now().AddDate(0, 0, -1).Format(DateLayout)
	if err := h.Validate(); err != nil {
		t.Fatalf("yesterday should be valid, got %v", err)
	}
}

func TestDietHistoryValidate_RejectsBadMealType(t *testing.T) {
	h := validHistory()
	h.MealType = "brunch"
	if err := h.Validate(); err == nil {
		t.Fatalf("expected error for meal type brunch")
	}
}
