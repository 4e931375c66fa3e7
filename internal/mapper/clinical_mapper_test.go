package mapper

import (
	"testing"

	"health-assistant-be/internal/model"

	"gorm.io/datatypes"
)

func TestToProfileJoinsListsForPromptUse(t *testing.T) {
	m := NewClinicalMapper()

	profile := m.ToProfile(&model.UserProfile{
		Age:               54,
		Gender:            "female",
		Allergies:         datatypes.JSON(`["penicillin","sulfa drugs"]`),
		ChronicConditions: datatypes.JSON(`["type 2 diabetes"]`),
	})

	if profile.Allergies != "penicillin, sulfa drugs" {
		t.Fatalf("unexpected allergies: %q", profile.Allergies)
	}
	if profile.ChronicConditions != "type 2 diabetes" {
		t.Fatalf("unexpected conditions: %q", profile.ChronicConditions)
	}
	if profile.Age != 54 || profile.Gender != "female" {
		t.Fatalf("demographics not carried over: %+v", profile)
	}
}

func TestToProfileNilAndEmpty(t *testing.T) {
	m := NewClinicalMapper()

	if got := m.ToProfile(nil); got.Allergies != "" || got.ChronicConditions != "" {
		t.Fatalf("nil profile should map to zero value, got %+v", got)
	}

	got := m.ToProfile(&model.UserProfile{})
	if got.Allergies != "" || got.ChronicConditions != "" {
		t.Fatalf("empty profile should yield empty strings, got %+v", got)
	}
}
