package query

import "testing"

func TestRemoveFromRootSequence(t *testing.T) {
	base := []step{
		{"Diabetes", AppendOr},
		{"Obesity", AppendAnd},
		{"Hypertension", AppendNot},
	}
	// serialized base: "Diabetes AND Obesity NOT Hypertension"

	tests := []struct {
		name   string
		remove string
		expect string
	}{
		{
			name:   "remove head re-joins the chain without it",
			remove: "Diabetes",
			expect: "Obesity NOT Hypertension",
		},
		{
			// the removed node's outgoing NOT is discarded; the
			// predecessor's AND now joins to Hypertension
			name:   "remove middle keeps the predecessor's operator",
			remove: "Obesity",
			expect: "Diabetes AND Hypertension",
		},
		{
			name:   "remove tail clears the new tail's operator",
			remove: "Hypertension",
			expect: "Diabetes AND Obesity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := buildTree(base).Remove(tt.remove)
			if got := tree.Serialize(); got != tt.expect {
				t.Errorf("Serialize() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestRemoveOnlyNode(t *testing.T) {
	tree := buildTree([]step{{"Diabetes", AppendOr}}).Remove("Diabetes")
	if !tree.IsEmpty() {
		t.Errorf("tree not empty after removing its only term: %q", tree.Serialize())
	}
}

func TestRemoveCollapsesTwoChildGroup(t *testing.T) {
	// "Diabetes AND (Obesity OR Hypertension)"
	base := []step{
		{"Diabetes", AppendOr},
		{"Obesity", AppendAnd},
		{"Hypertension", NestOr},
	}

	tests := []struct {
		name   string
		remove string
		expect string
	}{
		{
			name:   "removing first group child leaves the survivor in place",
			remove: "Obesity",
			expect: "Diabetes AND Hypertension",
		},
		{
			name:   "removing second group child leaves the survivor in place",
			remove: "Hypertension",
			expect: "Diabetes AND Obesity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := buildTree(base).Remove(tt.remove)
			if got := tree.Serialize(); got != tt.expect {
				t.Errorf("Serialize() = %q, want %q", got, tt.expect)
			}
			assertGroupInvariant(t, tree)
		})
	}
}

func TestCollapsedChildAdoptsGroupOperator(t *testing.T) {
	// "Diabetes AND (Obesity OR Hypertension) AND Metformin": the group's
	// outgoing AND must survive the collapse so the survivor still joins
	// to Metformin.
	tree := buildTree([]step{
		{"Diabetes", AppendOr},
		{"Obesity", AppendAnd},
		{"Hypertension", NestOr},
		{"Metformin", AppendAnd},
	}).Remove("Obesity")

	want := "Diabetes AND Hypertension AND Metformin"
	if got := tree.Serialize(); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestRemoveFromThreeChildGroupKeepsGroup(t *testing.T) {
	// hand-built: groups larger than two children arise when a collapsed
	// group is itself nested; build one directly.
	tree := Tree{
		Term{Value: "Diabetes", NextOp: OpAnd},
		Group{Op: OpOr, Children: []Node{
			Term{Value: "Obesity"},
			Term{Value: "Hypertension"},
			Term{Value: "Asthma"},
		}},
	}

	got := tree.Remove("Hypertension")
	want := "Diabetes AND (Obesity OR Asthma)"
	if got.Serialize() != want {
		t.Errorf("Serialize() = %q, want %q", got.Serialize(), want)
	}
	assertGroupInvariant(t, got)
}

func TestRemoveFromNestedGroup(t *testing.T) {
	// "Diabetes AND ((Obesity OR Hypertension) AND Asthma)"
	tree := buildTree([]step{
		{"Diabetes", AppendOr},
		{"Obesity", AppendAnd},
		{"Hypertension", NestOr},
		{"Asthma", NestAnd},
	})

	// removing from the inner group collapses it inside the outer group
	got := tree.Remove("Obesity")
	want := "Diabetes AND (Hypertension AND Asthma)"
	if got.Serialize() != want {
		t.Errorf("Serialize() = %q, want %q", got.Serialize(), want)
	}
	assertGroupInvariant(t, got)

	// removing the outer group's second child collapses the outer group,
	// exposing the inner group at root level
	got = tree.Remove("Asthma")
	want = "Diabetes AND (Obesity OR Hypertension)"
	if got.Serialize() != want {
		t.Errorf("Serialize() = %q, want %q", got.Serialize(), want)
	}
	assertGroupInvariant(t, got)
}

func TestEditSequencesPreserveGroupInvariant(t *testing.T) {
	// drive a longer mixed sequence and check no group ever drops below
	// two children
	tree := Empty()
	edits := []struct {
		insert string
		mode   InsertMode
		remove string
	}{
		{insert: "Diabetes", mode: AppendOr},
		{insert: "Obesity", mode: AppendAnd},
		{insert: "Hypertension", mode: NestOr},
		{insert: "Metformin", mode: AppendAnd},
		{insert: "Insulin", mode: NestAnd},
		{remove: "Hypertension"},
		{insert: "Asthma", mode: AppendNot},
		{remove: "Metformin"},
		{remove: "Diabetes"},
		{insert: "Placebo", mode: NestOr},
		{remove: "Insulin"},
	}

	for i, e := range edits {
		if e.remove != "" {
			tree = tree.Remove(e.remove)
		} else {
			tree = tree.Insert(e.insert, e.mode)
		}
		assertGroupInvariant(t, tree)
		if i < len(edits)-1 && tree.IsEmpty() {
			t.Fatalf("tree unexpectedly empty after edit %d", i)
		}
	}
}

func TestRemoveDropsEmptyGroupDefensively(t *testing.T) {
	// invalid by construction: a group holding a single term. Removing that
	// term empties the group, which must be dropped without a panic.
	tree := Tree{
		Term{Value: "Diabetes", NextOp: OpAnd},
		Group{Op: OpOr, Children: []Node{Term{Value: "Obesity"}}},
	}

	got := tree.Remove("Obesity")
	want := "Diabetes"
	if got.Serialize() != want {
		t.Errorf("Serialize() = %q, want %q", got.Serialize(), want)
	}
}

// assertGroupInvariant walks the tree and fails if any group holds fewer
// than two children.
func assertGroupInvariant(t *testing.T, tree Tree) {
	t.Helper()
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			if g, ok := n.(Group); ok {
				if len(g.Children) < 2 {
					t.Errorf("group with %d children found in %q", len(g.Children), tree.Serialize())
				}
				walk(g.Children)
			}
		}
	}
	walk(tree)
}
