package query

// Boolean query trees for the advanced search builder. A tree is an ordered
// sequence of nodes; each node is either a single term or a parenthesized
// group of two or more nodes. Nodes carry the operator that joins them to
// the following sibling. Trees are immutable values: every edit returns a
// new tree and leaves the input untouched.

// Operator joins a node to its following sibling, or joins the children of
// a group. Groups only ever use AND or OR; NOT exists purely as a sibling
// join (see Insert).
type Operator string

const (
	OpAnd Operator = "AND"
	OpOr  Operator = "OR"
	OpNot Operator = "NOT"
)

// Node is one element of a boolean query tree.
type Node interface {
	// Next returns the operator joining this node to its following sibling.
	// The last node in a sequence returns "".
	Next() Operator

	// withNext returns a copy of the node with its outgoing operator replaced.
	withNext(op Operator) Node

	contains(value string) bool
}

// Term is a leaf: a single user-entered or suggested search token. The value
// is opaque; the builder never parses it.
type Term struct {
	Value  string
	NextOp Operator
}

// Next implements Node
func (t Term) Next() Operator { return t.NextOp }

func (t Term) withNext(op Operator) Node {
	t.NextOp = op
	return t
}

func (t Term) contains(value string) bool { return t.Value == value }

// Group is an explicitly parenthesized combination of two or more nodes
// joined by a single operator. A group with fewer than two children is
// invalid; Remove collapses such groups immediately.
type Group struct {
	Op       Operator // AND or OR, never NOT
	Children []Node
	NextOp   Operator
}

// Next implements Node
func (g Group) Next() Operator { return g.NextOp }

func (g Group) withNext(op Operator) Node {
	g.NextOp = op
	return g
}

func (g Group) contains(value string) bool {
	for _, child := range g.Children {
		if child.contains(value) {
			return true
		}
	}
	return false
}

// Tree is the ordered sequence of root-level nodes for one term category.
// The zero value is the empty tree.
type Tree []Node

// Empty returns an empty query tree.
func Empty() Tree { return nil }

// IsEmpty reports whether the tree has no nodes.
func (t Tree) IsEmpty() bool { return len(t) == 0 }

// Contains reports whether a term with the given value exists anywhere in
// the tree. Matching is exact and case-sensitive. The UI uses this both to
// highlight already-selected terms and to reject duplicates.
func (t Tree) Contains(value string) bool {
	for _, n := range t {
		if n.contains(value) {
			return true
		}
	}
	return false
}
