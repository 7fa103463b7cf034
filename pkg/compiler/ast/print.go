package ast

import "strings"

// String renders n fully parenthesized, e.g. "(1 + (2 * 3))", with
// unary nodes as "(op operand)". Mostly useful for checking precedence.
func String(n Node, src []byte) string {
	var b strings.Builder
	write(&b, n, src)
	return b.String()
}

func write(b *strings.Builder, n Node, src []byte) {
	switch n := n.(type) {
	case *Leaf:
		b.WriteString(n.Token.Text(src))
	case *Unary:
		b.WriteByte('(')
		b.WriteString(n.Op.Text(src))
		b.WriteByte(' ')
		write(b, n.Operand, src)
		b.WriteByte(')')
	case *Binary:
		b.WriteByte('(')
		write(b, n.Left, src)
		b.WriteByte(' ')
		b.WriteString(n.Op.Text(src))
		b.WriteByte(' ')
		write(b, n.Right, src)
		b.WriteByte(')')
	}
}
