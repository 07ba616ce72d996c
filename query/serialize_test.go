package query

import "testing"

func TestSerialize(t *testing.T) {
	tests := []struct {
		name   string
		tree   Tree
		expect string
	}{
		{
			name:   "empty tree",
			tree:   Empty(),
			expect: "",
		},
		{
			name:   "single term",
			tree:   Tree{Term{Value: "Diabetes"}},
			expect: "Diabetes",
		},
		{
			name: "terms joined by stored operators",
			tree: Tree{
				Term{Value: "Diabetes", NextOp: OpAnd},
				Term{Value: "Obesity", NextOp: OpNot},
				Term{Value: "Hypertension"},
			},
			expect: "Diabetes AND Obesity NOT Hypertension",
		},
		{
			name: "group renders parenthesized with its own operator",
			tree: Tree{
				Term{Value: "Diabetes", NextOp: OpAnd},
				Group{Op: OpOr, Children: []Node{
					Term{Value: "Obesity"},
					Term{Value: "Hypertension"},
				}},
			},
			expect: "Diabetes AND (Obesity OR Hypertension)",
		},
		{
			name: "nested groups",
			tree: Tree{
				Group{Op: OpAnd, Children: []Node{
					Term{Value: "Diabetes"},
					Group{Op: OpOr, Children: []Node{
						Term{Value: "Obesity"},
						Term{Value: "Hypertension"},
					}},
				}},
			},
			expect: "(Diabetes AND (Obesity OR Hypertension))",
		},
		{
			name: "multi-word terms pass through verbatim",
			tree: Tree{
				Term{Value: "Type 2 Diabetes", NextOp: OpOr},
				Term{Value: "Gestational Diabetes"},
			},
			expect: "Type 2 Diabetes OR Gestational Diabetes",
		},
		{
			name: "missing operator falls back to OR",
			// malformed on purpose: a non-last node without an operator.
			// The serializer stays lenient instead of failing.
			tree: Tree{
				Term{Value: "Diabetes"},
				Term{Value: "Obesity"},
			},
			expect: "Diabetes OR Obesity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tree.Serialize(); got != tt.expect {
				t.Errorf("Serialize() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestSerializeDeterministic(t *testing.T) {
	tree := buildTree([]step{
		{"Diabetes", AppendOr},
		{"Obesity", AppendAnd},
		{"Hypertension", NestOr},
		{"Metformin", AppendNot},
	})

	first := tree.Serialize()
	for range 10 {
		if got := tree.Serialize(); got != first {
			t.Fatalf("Serialize() not deterministic: %q then %q", first, got)
		}
	}

	// a structurally equal tree built independently serializes identically
	rebuilt := buildTree([]step{
		{"Diabetes", AppendOr},
		{"Obesity", AppendAnd},
		{"Hypertension", NestOr},
		{"Metformin", AppendNot},
	})
	if rebuilt.Serialize() != first {
		t.Errorf("equal trees serialize differently: %q vs %q", rebuilt.Serialize(), first)
	}
}

func TestSerializeUntouchedBranchesStable(t *testing.T) {
	tree := buildTree([]step{
		{"Diabetes", AppendOr},
		{"Obesity", AppendAnd},
		{"Hypertension", NestOr},
	})

	// edit the tail; the untouched head keeps its rendering
	edited := tree.Insert("Metformin", AppendAnd)
	const prefix = "Diabetes AND (Obesity OR Hypertension)"
	if got := edited.Serialize(); got[:len(prefix)] != prefix {
		t.Errorf("head of serialization changed after tail edit: %q", got)
	}
}

func TestCombine(t *testing.T) {
	diabetes := Tree{Term{Value: "Diabetes"}}
	metformin := Tree{Term{Value: "Metformin"}}
	multi := Tree{
		Term{Value: "Obesity", NextOp: OpOr},
		Term{Value: "Hypertension"},
	}

	tests := []struct {
		name                           string
		condition, intervention, other Tree
		expect                         string
	}{
		{
			name:   "all empty",
			expect: "",
		},
		{
			name:      "single category",
			condition: diabetes,
			expect:    "(Diabetes)",
		},
		{
			name:         "empty category contributes nothing",
			condition:    diabetes,
			intervention: metformin,
			expect:       "(Diabetes) AND (Metformin)",
		},
		{
			name:         "all three",
			condition:    diabetes,
			intervention: metformin,
			other:        multi,
			expect:       "(Diabetes) AND (Metformin) AND (Obesity OR Hypertension)",
		},
		{
			name:   "other category alone",
			other:  multi,
			expect: "(Obesity OR Hypertension)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Combine(tt.condition, tt.intervention, tt.other)
			if got != tt.expect {
				t.Errorf("Combine() = %q, want %q", got, tt.expect)
			}
		})
	}
}
