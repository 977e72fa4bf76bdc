package state

import (
	"reflect"
	"testing"

	contractx "github.com/voyplan/voyplan/agent/contract"
)

func TestApplyLastWriteWins(t *testing.T) {
	t.Parallel()

	var r Requirements
	r.Apply(contractx.RequirementsPatch{Destination: "Hangzhou", Days: 3})
	r.Apply(contractx.RequirementsPatch{Days: 5, Budget: "4000"})

	if r.Destination != "Hangzhou" {
		t.Fatalf("destination = %q, want Hangzhou", r.Destination)
	}
	if r.Days != 5 {
		t.Fatalf("days = %d, want 5", r.Days)
	}
	if r.Budget != 4000 {
		t.Fatalf("budget = %v, want 4000", r.Budget)
	}
	if r.Province != "Zhejiang" {
		t.Fatalf("province = %q, want Zhejiang", r.Province)
	}
}

func TestApplyPreferenceUnion(t *testing.T) {
	t.Parallel()

	var r Requirements
	r.Apply(contractx.RequirementsPatch{Preferences: []string{"Culture", "food"}})
	r.Apply(contractx.RequirementsPatch{Preferences: []string{"FOOD", "nature"}})

	want := []string{"culture", "food", "nature"}
	if !reflect.DeepEqual(r.Preferences, want) {
		t.Fatalf("preferences = %v, want %v", r.Preferences, want)
	}
}

func TestApplyRejectsMalformedNumbers(t *testing.T) {
	t.Parallel()

	var r Requirements
	r.Apply(contractx.RequirementsPatch{Days: "several", Budget: "cheap", CompanionCount: 2.5})

	if r.Days != 0 {
		t.Fatalf("days = %d, want 0 after malformed input", r.Days)
	}
	if r.Budget != 0 {
		t.Fatalf("budget = %v, want 0 after malformed input", r.Budget)
	}
	if r.CompanionCount != 0 {
		t.Fatalf("companion count = %d, want 0 after fractional input", r.CompanionCount)
	}

	r.Apply(contractx.RequirementsPatch{Days: float64(4), CompanionCount: "2"})
	if r.Days != 4 || r.CompanionCount != 2 {
		t.Fatalf("days=%d count=%d, want 4 and 2", r.Days, r.CompanionCount)
	}
}

func TestMissingFieldsOrderAndCompleteness(t *testing.T) {
	t.Parallel()

	var r Requirements
	missing := r.MissingFields()
	want := []string{FieldDestination, FieldDays, FieldBudget, FieldPreferences}
	if !reflect.DeepEqual(missing, want) {
		t.Fatalf("missing = %v, want %v", missing, want)
	}
	if r.IsComplete() {
		t.Fatal("empty requirements reported complete")
	}

	r.Apply(contractx.RequirementsPatch{
		Destination: "Suzhou",
		Days:        2,
		Budget:      1500,
		Preferences: []string{"gardens"},
	})
	if !r.IsComplete() {
		t.Fatalf("requirements incomplete, missing %v", r.MissingFields())
	}
	if got := r.MissingFields(); len(got) != 0 {
		t.Fatalf("missing = %v, want empty", got)
	}
}

func TestProvinceOfUnknownCity(t *testing.T) {
	t.Parallel()

	if got := ProvinceOf("Chengdu"); got != "" {
		t.Fatalf("province = %q, want empty for unmapped city", got)
	}
	if got := ProvinceOf("  NANJING "); got != "Jiangsu" {
		t.Fatalf("province = %q, want Jiangsu", got)
	}
}
