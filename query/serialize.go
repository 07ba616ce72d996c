package query

import "strings"

// Serialize renders the tree as its canonical boolean query string. The
// output is a pure function of tree shape: equal trees always produce
// byte-identical strings. An empty tree renders as "".
func (t Tree) Serialize() string {
	if len(t) == 0 {
		return ""
	}

	var b strings.Builder
	for i, n := range t {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeNode(&b, n)
		if i < len(t)-1 {
			b.WriteByte(' ')
			b.WriteString(string(joinOperator(n)))
		}
	}
	return b.String()
}

// joinOperator returns the operator linking a node to its successor. Every
// non-last node in a well-formed tree carries one; OR is the lenient
// fallback for malformed intermediate states rather than a hard failure.
func joinOperator(n Node) Operator {
	if op := n.Next(); op != "" {
		return op
	}
	return OpOr
}

func writeNode(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case Term:
		// Literal, unescaped: quoting rules belong to the search grammar
		// downstream, not to the builder.
		b.WriteString(n.Value)
	case Group:
		b.WriteByte('(')
		for i, child := range n.Children {
			if i > 0 {
				b.WriteByte(' ')
				b.WriteString(string(n.Op))
				b.WriteByte(' ')
			}
			writeNode(b, child)
		}
		b.WriteByte(')')
	}
}

// Combine joins the per-category trees into the final search expression:
// each non-empty serialization is parenthesized, and the parts are joined
// with AND. Empty categories contribute nothing; all-empty yields "".
func Combine(condition, intervention, other Tree) string {
	parts := make([]string, 0, 3)
	for _, t := range []Tree{condition, intervention, other} {
		if s := t.Serialize(); s != "" {
			parts = append(parts, "("+s+")")
		}
	}
	return strings.Join(parts, " AND ")
}
