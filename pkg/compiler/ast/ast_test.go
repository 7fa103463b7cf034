package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/hexa/pkg/compiler/ast"
	"github.com/agenthands/hexa/pkg/compiler/lexer"
	"github.com/agenthands/hexa/pkg/compiler/parser"
)

func TestLen(t *testing.T) {
	src := []byte("1 + ~2")
	one := lexer.Token{Kind: lexer.KindNumber, Offset: 0, Length: 1}
	plus := lexer.Token{Kind: lexer.KindOperator, Offset: 2, Length: 1}
	tilde := lexer.Token{Kind: lexer.KindOperator, Offset: 4, Length: 1}
	two := lexer.Token{Kind: lexer.KindNumber, Offset: 5, Length: 1}

	leaf := &ast.Leaf{Token: one}
	unary := &ast.Unary{Op: tilde, Operand: &ast.Leaf{Token: two}}
	binary := &ast.Binary{Left: leaf, Op: plus, Right: unary}

	assert.Equal(t, 1, ast.Len(leaf))
	assert.Equal(t, 2, ast.Len(unary))
	assert.Equal(t, 3, ast.Len(binary))
	assert.Equal(t, "+", binary.Pos().Text(src))
	assert.Equal(t, "(1 + (~ 2))", ast.String(binary, src))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "leaf", ast.KindLeaf.String())
	assert.Equal(t, "unary", ast.KindUnary.String())
	assert.Equal(t, "binary", ast.KindBinary.String())
	assert.Equal(t, "unknown", ast.Kind(0).String())
}

func TestInspect(t *testing.T) {
	src := []byte("abs 1 * (2 - 3)")
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Exprs, 1)

	var seen []string
	ast.Inspect(prog.Exprs[0], func(n ast.Node) bool {
		seen = append(seen, n.Pos().Text(src))
		return true
	})
	assert.Equal(t, []string{"*", "abs", "1", "-", "2", "3"}, seen)

	// pruning skips the whole subtree
	seen = seen[:0]
	ast.Inspect(prog.Exprs[0], func(n ast.Node) bool {
		seen = append(seen, n.Pos().Text(src))
		return n.Kind() != ast.KindUnary
	})
	assert.Equal(t, []string{"*", "abs", "-", "2", "3"}, seen)
}

func TestInspectDeep(t *testing.T) {
	var n ast.Node = &ast.Leaf{}
	for i := 0; i < 100000; i++ {
		n = &ast.Unary{Operand: n}
	}
	count := 0
	ast.Inspect(n, func(ast.Node) bool {
		count++
		return true
	})
	assert.Equal(t, 100001, count)
}
