package types

import (
	"testing"

	"gorm.io/datatypes"
)

func validProfile() *HealthProfile {
	p := NewHealthProfile("user-1")
	p.Age = 30
	p.Weight = 70
	p.Height = 175
	return p
}

func TestHealthProfileValidate_AcceptsDefaults(t *testing.T) {
	if err := validProfile().Validate(); err != nil {
		t.Fatalf("expected valid profile, got %v", err)
	}
}

func TestHealthProfileValidate_RejectsBadFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*HealthProfile)
	}{
		{"empty user id", func(p *HealthProfile) { p.UserID = "" }},
		{"age below 18", func(p *HealthProfile) { p.Age = 17 }},
		{"age above 120", func(p *HealthProfile) { p.Age = 121 }},
		{"zero weight", func(p *HealthProfile) { p.Weight = 0 }},
		{"negative height", func(p *HealthProfile) { p.Height = -1 }},
		{"unknown gender", func(p *HealthProfile) { p.Gender = "robot" }},
		{"unknown activity level", func(p *HealthProfile) { p.ActivityLevel = "hyper" }},
	}
	for _, tc := range cases {
		p := validProfile()
		tc.mutate(p)
		if err := p.Validate(); err == nil {
			t.Fatalf("%s: expected validation error, got nil", tc.name)
		}
	}
}

func TestHealthProfileValidate_RejectsPreferenceConflicts(t *testing.T) {
	p := validProfile()
	p.DietaryPreferences = datatypes.JSONSlice[string]{"vegetarian", "nuts"}
	p.DietaryRestrictions = datatypes.JSONSlice[string]{"vegetarian"}
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for preference also in restrictions")
	}

	p = validProfile()
	p.DietaryPreferences = datatypes.JSONSlice[string]{"nuts"}
	p.Allergies = datatypes.JSONSlice[string]{"nuts"}
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for preference also in allergies")
	}

	p = validProfile()
	p.DietaryRestrictions = datatypes.JSONSlice[string]{"gluten"}
	p.Allergies = datatypes.JSONSlice[string]{"gluten"}
	if err := p.Validate(); err != nil {
		t.Fatalf("restriction overlapping allergy should be fine, got %v", err)
	}
}
