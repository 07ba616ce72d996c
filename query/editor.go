package query

import "log/slog"

// InsertMode selects how Insert attaches a new term to the tree.
type InsertMode int

const (
	// AppendAnd joins the new term to the last root node with AND.
	AppendAnd InsertMode = iota
	// AppendOr joins the new term to the last root node with OR.
	AppendOr
	// AppendNot joins the new term to the last root node with NOT. NOT has
	// no nesting form; it only ever appears as a sibling join.
	AppendNot
	// NestAnd pops the last root node and groups it with the new term under AND.
	NestAnd
	// NestOr pops the last root node and groups it with the new term under OR.
	NestOr
)

// operator returns the joining operator the mode carries.
func (m InsertMode) operator() Operator {
	switch m {
	case AppendAnd, NestAnd:
		return OpAnd
	case AppendNot:
		return OpNot
	default:
		return OpOr
	}
}

func (m InsertMode) nests() bool { return m == NestAnd || m == NestOr }

// Insert returns a new tree with the given term attached according to mode.
// The operation is total and never fails:
//   - an empty value or a value already present returns the tree unchanged
//     ("already selected" is a no-op, not an error)
//   - inserting into an empty tree yields a single term regardless of mode,
//     since the first term has nothing to attach to
//   - nesting with fewer than two root nodes degrades to the equivalent
//     append, because there is no pair to group yet
//
// Nesting pops the last root node, wraps it with the new term in a group
// under the mode's operator, and hands the popped node's outgoing operator
// to the group so the group joins to whatever followed.
func (t Tree) Insert(value string, mode InsertMode) Tree {
	if value == "" || t.Contains(value) {
		return t
	}
	if len(t) == 0 {
		return Tree{Term{Value: value}}
	}

	out := make(Tree, len(t))
	copy(out, t)
	last := len(out) - 1

	if mode.nests() && len(out) >= 2 {
		popped := out[last]
		out[last] = Group{
			Op:       mode.operator(),
			Children: []Node{popped.withNext(""), Term{Value: value}},
			NextOp:   popped.Next(),
		}
		return out
	}

	out[last] = out[last].withNext(mode.operator())
	return append(out, Term{Value: value})
}

// Remove returns a new tree with the term holding the given value removed.
// A value not present in the tree is a no-op (a benign race between UI and
// model state, not a fault). The removed node's outgoing operator disappears
// with it; when the removed node was the tail of its sequence, the new tail's
// operator is cleared so the chain re-joins cleanly. Any group reduced to a
// single child collapses into that child, which adopts the group's outgoing
// operator.
func (t Tree) Remove(value string) Tree {
	nodes, removed := removeFrom(t, value)
	if !removed {
		return t
	}
	return Tree(nodes)
}

// removeFrom removes the term from a node sequence, recursing into groups.
// Reports whether a removal happened; when it did not, the input slice is
// returned as-is.
func removeFrom(nodes []Node, value string) ([]Node, bool) {
	for i, n := range nodes {
		switch n := n.(type) {
		case Term:
			if n.Value != value {
				continue
			}
			return spliceOut(nodes, i), true

		case Group:
			children, removed := removeFrom(n.Children, value)
			if !removed {
				continue
			}
			switch len(children) {
			case 0:
				// Unreachable while the two-child group invariant holds:
				// removal takes exactly one leaf at a time. Drop the group
				// instead of faulting.
				slog.Warn("query group left empty after removal", "value", value)
				return spliceOut(nodes, i), true
			case 1:
				out := make([]Node, len(nodes))
				copy(out, nodes)
				out[i] = children[0].withNext(n.NextOp)
				return out, true
			default:
				out := make([]Node, len(nodes))
				copy(out, nodes)
				out[i] = Group{Op: n.Op, Children: children, NextOp: n.NextOp}
				return out, true
			}
		}
	}
	return nodes, false
}

// spliceOut returns the sequence without the element at i. When the removed
// element was the tail, the new tail's outgoing operator is cleared; an
// operator on a non-tail predecessor keeps pointing at whatever now follows.
func spliceOut(nodes []Node, i int) []Node {
	out := make([]Node, 0, len(nodes)-1)
	out = append(out, nodes[:i]...)
	out = append(out, nodes[i+1:]...)
	if i == len(nodes)-1 && len(out) > 0 {
		out[len(out)-1] = out[len(out)-1].withNext("")
	}
	return out
}
