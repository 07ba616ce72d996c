package model

import "testing"

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryCondition, "Condition"},
		{CategoryIntervention, "Intervention"},
		{CategoryOther, "Other"},
		{Category(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, cat := range Categories {
		if !cat.Valid() {
			t.Errorf("%s.Valid() = false, want true", cat)
		}
	}
	if Category(-1).Valid() || Category(3).Valid() {
		t.Error("out-of-range category reported valid")
	}
}

func TestNextCategoryCycles(t *testing.T) {
	cat := CategoryCondition
	seen := map[Category]bool{}
	for range len(Categories) {
		seen[cat] = true
		cat = NextCategory(cat)
	}
	if cat != CategoryCondition {
		t.Errorf("cycling %d times ended at %s, want Condition", len(Categories), cat)
	}
	if len(seen) != len(Categories) {
		t.Errorf("cycle visited %d categories, want %d", len(seen), len(Categories))
	}
}
