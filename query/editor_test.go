package query

import (
	"reflect"
	"testing"
)

// step is one edit applied in sequence during a test.
type step struct {
	value string
	mode  InsertMode
}

func buildTree(steps []step) Tree {
	tree := Empty()
	for _, s := range steps {
		tree = tree.Insert(s.value, s.mode)
	}
	return tree
}

func TestInsertSequences(t *testing.T) {
	tests := []struct {
		name   string
		steps  []step
		expect string
	}{
		{
			name:   "first term ignores mode",
			steps:  []step{{"Diabetes", AppendOr}},
			expect: "Diabetes",
		},
		{
			name:   "first term ignores nest mode",
			steps:  []step{{"Diabetes", NestAnd}},
			expect: "Diabetes",
		},
		{
			name:   "append AND",
			steps:  []step{{"Diabetes", AppendOr}, {"Obesity", AppendAnd}},
			expect: "Diabetes AND Obesity",
		},
		{
			name:   "append OR",
			steps:  []step{{"Diabetes", AppendOr}, {"Obesity", AppendOr}},
			expect: "Diabetes OR Obesity",
		},
		{
			name:   "append NOT",
			steps:  []step{{"Diabetes", AppendOr}, {"Type 1", AppendNot}},
			expect: "Diabetes NOT Type 1",
		},
		{
			name: "nest OR pops the last term into a group",
			steps: []step{
				{"Diabetes", AppendOr},
				{"Obesity", AppendAnd},
				{"Hypertension", NestOr},
			},
			expect: "Diabetes AND (Obesity OR Hypertension)",
		},
		{
			name: "nest AND pops the last term into a group",
			steps: []step{
				{"Diabetes", AppendOr},
				{"Obesity", AppendOr},
				{"Hypertension", NestAnd},
			},
			expect: "Diabetes OR (Obesity AND Hypertension)",
		},
		{
			name: "nest with one root node degrades to append",
			steps: []step{
				{"Diabetes", AppendOr},
				{"Obesity", NestOr},
			},
			expect: "Diabetes OR Obesity",
		},
		{
			name: "nest with one root node degrades to append AND",
			steps: []step{
				{"Diabetes", AppendOr},
				{"Obesity", NestAnd},
			},
			expect: "Diabetes AND Obesity",
		},
		{
			name: "nesting twice wraps the previous group",
			steps: []step{
				{"Diabetes", AppendOr},
				{"Obesity", AppendAnd},
				{"Hypertension", NestOr},
				{"Asthma", NestAnd},
			},
			expect: "Diabetes AND ((Obesity OR Hypertension) AND Asthma)",
		},
		{
			name: "append after nest joins the group to the new term",
			steps: []step{
				{"Diabetes", AppendOr},
				{"Obesity", AppendAnd},
				{"Hypertension", NestOr},
				{"Metformin", AppendAnd},
			},
			expect: "Diabetes AND (Obesity OR Hypertension) AND Metformin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := buildTree(tt.steps)
			if got := tree.Serialize(); got != tt.expect {
				t.Errorf("Serialize() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestInsertDuplicateIsNoOp(t *testing.T) {
	tree := buildTree([]step{{"Diabetes", AppendOr}, {"Obesity", AppendAnd}})

	again := tree.Insert("Diabetes", AppendOr)
	if !reflect.DeepEqual(again, tree) {
		t.Errorf("inserting a duplicate changed the tree: %v -> %v", tree, again)
	}

	// duplicates inside groups are rejected too
	nested := tree.Insert("Hypertension", NestOr)
	dup := nested.Insert("Hypertension", AppendAnd)
	if !reflect.DeepEqual(dup, nested) {
		t.Errorf("inserting a nested duplicate changed the tree: %v -> %v", nested, dup)
	}
}

func TestInsertEmptyValueIsNoOp(t *testing.T) {
	tree := buildTree([]step{{"Diabetes", AppendOr}})
	if got := tree.Insert("", AppendAnd); !reflect.DeepEqual(got, tree) {
		t.Errorf("inserting empty value changed the tree: %v -> %v", tree, got)
	}
}

func TestInsertAlwaysContainsValue(t *testing.T) {
	modes := []InsertMode{AppendAnd, AppendOr, AppendNot, NestAnd, NestOr}
	for _, mode := range modes {
		tree := Empty()
		for _, value := range []string{"Diabetes", "Obesity", "Hypertension"} {
			tree = tree.Insert(value, mode)
			if !tree.Contains(value) {
				t.Errorf("mode %v: Contains(%q) = false after Insert", mode, value)
			}
		}
	}
}

func TestInsertDoesNotMutateInput(t *testing.T) {
	tree := buildTree([]step{{"Diabetes", AppendOr}, {"Obesity", AppendAnd}})
	before := tree.Serialize()

	_ = tree.Insert("Hypertension", NestOr)
	_ = tree.Insert("Metformin", AppendAnd)
	_ = tree.Remove("Obesity")

	if got := tree.Serialize(); got != before {
		t.Errorf("input tree mutated by edits: %q -> %q", before, got)
	}
}

func TestRemoveIdempotent(t *testing.T) {
	tree := buildTree([]step{
		{"Diabetes", AppendOr},
		{"Obesity", AppendAnd},
		{"Hypertension", NestOr},
	})

	once := tree.Remove("Obesity")
	twice := once.Remove("Obesity")
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second removal changed the tree: %v -> %v", once, twice)
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	tree := buildTree([]step{{"Diabetes", AppendOr}, {"Obesity", AppendAnd}})
	if got := tree.Remove("Metformin"); !reflect.DeepEqual(got, tree) {
		t.Errorf("removing absent term changed the tree: %v -> %v", tree, got)
	}

	empty := Empty().Remove("Diabetes")
	if !empty.IsEmpty() {
		t.Error("removing from empty tree produced a non-empty tree")
	}
}
