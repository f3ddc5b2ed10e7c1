// The MIT License (MIT)
//
// Copyright (c) 2020 The Lune Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package lune

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lunelang/lune/ast"
	"github.com/lunelang/lune/types"
)

// type Pair = Tagged { Pair(int, int) }
func pairTypeDef() *ast.TypeDef {
	return &ast.TypeDef{
		Name: "Pair",
		Body: &ast.UnionBody{Variants: []ast.VariantExpr{
			{Tag: "Pair", Params: []ast.TypeExpr{
				&ast.TypeName{Name: "int", Pos: at(1, 21)},
				&ast.TypeName{Name: "int", Pos: at(1, 26)},
			}},
		}},
		Pos: at(1, 1),
	}
}

func TestCheckTaggedValueDefinition(t *testing.T) {
	c := NewChecker()

	// type Pair = Tagged { Pair(int, int) }
	// let p = Pair(1, 2)
	program := ast.Program{
		pairTypeDef(),
		&ast.ValueDef{
			Pattern: &ast.VarPattern{Name: "p", Pos: at(2, 5)},
			Value: &ast.Tag{
				Label: "Pair",
				Args:  []ast.Expr{intLit(2, 14, "1"), intLit(2, 17, "2")},
				Pos:   at(2, 9),
			},
			Pos: at(2, 1),
		},
	}
	env, err := c.Check(NewTypeEnv(), program)
	require.NoError(t, err)

	p, ok := env.Lookup("p")
	require.True(t, ok)
	require.Equal(t, "Pair", types.TypeString(p))
}

func TestCheckAnnotatedFuncDefinition(t *testing.T) {
	c := NewChecker()

	// let f = fun (x: int) -> x
	env, err := c.Check(NewTypeEnv(), ast.Program{
		&ast.ValueDef{
			Pattern: &ast.VarPattern{Name: "f", Pos: at(1, 5)},
			Value: &ast.Func{
				ArgName: "x",
				Annot:   &ast.TypeName{Name: "int", Pos: at(1, 17)},
				Body:    &ast.Var{Name: "x", Pos: at(1, 25)},
				Pos:     at(1, 9),
			},
			Pos: at(1, 1),
		},
	})
	require.NoError(t, err)

	f, ok := env.Lookup("f")
	require.True(t, ok)
	require.Equal(t, "int -> int", types.TypeString(f))
}

func TestCheckUnboundIdentifier(t *testing.T) {
	c := NewChecker()

	// let x = y
	_, err := c.Check(NewTypeEnv(), ast.Program{
		&ast.ValueDef{
			Pattern: &ast.VarPattern{Name: "x", Pos: at(1, 5)},
			Value:   &ast.Var{Name: "y", Pos: at(1, 9)},
			Pos:     at(1, 1),
		},
	})
	requireKind(t, err, UnboundIdentifier)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, at(1, 9), cerr.Pos)
}

func TestCheckDuplicateFieldOrTag(t *testing.T) {
	c := NewChecker()

	_, err := c.Check(NewTypeEnv(), ast.Program{
		&ast.TypeDef{
			Name: "Point",
			Body: &ast.RecordBody{Fields: []ast.FieldExpr{
				{Label: "x", Type: &ast.TypeName{Name: "int", Pos: at(1, 19)}},
				{Label: "x", Type: &ast.TypeName{Name: "int", Pos: at(1, 27)}},
			}},
			Pos: at(1, 1),
		},
	})
	requireKind(t, err, DuplicateFieldOrTag)

	_, err = c.Check(NewTypeEnv(), ast.Program{
		&ast.TypeDef{
			Name: "Shape",
			Body: &ast.UnionBody{Variants: []ast.VariantExpr{
				{Tag: "Circle"},
				{Tag: "Circle"},
			}},
			Pos: at(1, 1),
		},
	})
	requireKind(t, err, DuplicateFieldOrTag)

	// Distinct names are well-formed.
	_, err = c.Check(NewTypeEnv(), ast.Program{
		&ast.TypeDef{
			Name: "Shape",
			Body: &ast.UnionBody{Variants: []ast.VariantExpr{
				{Tag: "Circle"},
				{Tag: "Square"},
			}},
			Pos: at(1, 1),
		},
	})
	require.NoError(t, err)
}

func TestCheckSelfReferentialTypeDefinition(t *testing.T) {
	c := NewChecker()

	// type IntList = Tagged { Nil; Cons(int, IntList) }
	// let xs = Cons(1, Nil)
	program := ast.Program{
		&ast.TypeDef{
			Name: "IntList",
			Body: &ast.UnionBody{Variants: []ast.VariantExpr{
				{Tag: "Nil"},
				{Tag: "Cons", Params: []ast.TypeExpr{
					&ast.TypeName{Name: "int", Pos: at(1, 31)},
					&ast.TypeName{Name: "IntList", Pos: at(1, 36)},
				}},
			}},
			Pos: at(1, 1),
		},
		&ast.ValueDef{
			Pattern: &ast.VarPattern{Name: "xs", Pos: at(2, 5)},
			Value: &ast.Tag{
				Label: "Cons",
				Args: []ast.Expr{
					intLit(2, 15, "1"),
					&ast.Tag{Label: "Nil", Pos: at(2, 18)},
				},
				Pos: at(2, 10),
			},
			Pos: at(2, 1),
		},
	}
	env, err := c.Check(NewTypeEnv(), program)
	require.NoError(t, err)

	xs, ok := env.Lookup("xs")
	require.True(t, ok)
	require.Equal(t, "IntList", types.TypeString(xs))
}

func TestCheckUnknownTagForScrutinee(t *testing.T) {
	c := NewChecker()

	// case Pair(1, 2) of A(x) -> x end : the pattern names a tag which is
	// not a member of the scrutinee's union type.
	program := ast.Program{
		pairTypeDef(),
		&ast.ValueDef{
			Pattern: &ast.VarPattern{Name: "n", Pos: at(2, 5)},
			Value: &ast.Match{
				Value: &ast.Tag{
					Label: "Pair",
					Args:  []ast.Expr{intLit(2, 19, "1"), intLit(2, 22, "2")},
					Pos:   at(2, 14),
				},
				Cases: []ast.MatchCase{
					{
						Pattern: &ast.TagPattern{
							Label: "A",
							Args:  []ast.Pattern{&ast.VarPattern{Name: "x", Pos: at(2, 30)}},
							Pos:   at(2, 28),
						},
						Value: &ast.Var{Name: "x", Pos: at(2, 36)},
					},
				},
				Pos: at(2, 9),
			},
			Pos: at(2, 1),
		},
	}
	_, err := c.Check(NewTypeEnv(), program)
	requireKind(t, err, PatternTypeMismatch)
}

func TestCheckRefutableTopLevelPattern(t *testing.T) {
	c := NewChecker()

	// let Circle(r) = ... over a two-variant union must be rejected.
	program := ast.Program{
		&ast.TypeDef{
			Name: "Shape",
			Body: &ast.UnionBody{Variants: []ast.VariantExpr{
				{Tag: "Circle", Params: []ast.TypeExpr{&ast.TypeName{Name: "int", Pos: at(1, 25)}}},
				{Tag: "Square", Params: []ast.TypeExpr{&ast.TypeName{Name: "int", Pos: at(1, 38)}}},
			}},
			Pos: at(1, 1),
		},
		&ast.ValueDef{
			Pattern: &ast.TagPattern{
				Label: "Circle",
				Args:  []ast.Pattern{&ast.VarPattern{Name: "r", Pos: at(2, 12)}},
				Pos:   at(2, 5),
			},
			Value: &ast.Tag{
				Label: "Circle",
				Args:  []ast.Expr{intLit(2, 24, "1")},
				Pos:   at(2, 17),
			},
			Pos: at(2, 1),
		},
	}
	_, err := c.Check(NewTypeEnv(), program)
	requireKind(t, err, RefutablePattern)
}

func TestCheckSingletonUnionDestructuring(t *testing.T) {
	c := NewChecker()

	// type Pair = Tagged { Pair(int, int) }
	// let Pair(a, b) = Pair(1, 2)
	program := ast.Program{
		pairTypeDef(),
		&ast.ValueDef{
			Pattern: &ast.TagPattern{
				Label: "Pair",
				Args: []ast.Pattern{
					&ast.VarPattern{Name: "a", Pos: at(2, 10)},
					&ast.VarPattern{Name: "b", Pos: at(2, 13)},
				},
				Pos: at(2, 5),
			},
			Value: &ast.Tag{
				Label: "Pair",
				Args:  []ast.Expr{intLit(2, 23, "1"), intLit(2, 26, "2")},
				Pos:   at(2, 18),
			},
			Pos: at(2, 1),
		},
	}
	env, err := c.Check(NewTypeEnv(), program)
	require.NoError(t, err)

	a, ok := env.Lookup("a")
	require.True(t, ok)
	require.Equal(t, "int", types.TypeString(a))
	b, ok := env.Lookup("b")
	require.True(t, ok)
	require.Equal(t, "int", types.TypeString(b))
}

func TestCheckGroupDefinition(t *testing.T) {
	c := NewChecker()

	// let f = fun x -> g(x) and g = fun y -> if y then 1 else f(y)
	program := ast.Program{
		&ast.GroupDef{
			Vars: []ast.LetBinding{
				{
					Var: "f",
					Value: &ast.Func{
						ArgName: "x",
						Body: &ast.Call{
							Func: &ast.Var{Name: "g", Pos: at(1, 18)},
							Arg:  &ast.Var{Name: "x", Pos: at(1, 20)},
							Pos:  at(1, 18),
						},
						Pos: at(1, 9),
					},
				},
				{
					Var: "g",
					Value: &ast.Func{
						ArgName: "y",
						Body: &ast.If{
							Cond: &ast.Var{Name: "y", Pos: at(2, 21)},
							Then: intLit(2, 28, "1"),
							Else: &ast.Call{
								Func: &ast.Var{Name: "f", Pos: at(2, 35)},
								Arg:  &ast.Var{Name: "y", Pos: at(2, 37)},
								Pos:  at(2, 35),
							},
							Pos: at(2, 18),
						},
						Pos: at(2, 9),
					},
				},
			},
			Pos: at(1, 1),
		},
	}
	env, err := c.Check(NewTypeEnv(), program)
	require.NoError(t, err)

	f, ok := env.Lookup("f")
	require.True(t, ok)
	require.Equal(t, "bool -> int", types.TypeString(f))
	g, ok := env.Lookup("g")
	require.True(t, ok)
	require.Equal(t, "bool -> int", types.TypeString(g))
}

func TestCheckHaltsAtFirstError(t *testing.T) {
	c := NewChecker()

	// The second definition is ill-typed; the third would be fine but is
	// never reached, and the returned environment still lacks it.
	program := ast.Program{
		&ast.ValueDef{
			Pattern: &ast.VarPattern{Name: "a", Pos: at(1, 5)},
			Value:   intLit(1, 9, "1"),
			Pos:     at(1, 1),
		},
		&ast.ValueDef{
			Pattern: &ast.VarPattern{Name: "b", Pos: at(2, 5)},
			Value:   &ast.Var{Name: "missing", Pos: at(2, 9)},
			Pos:     at(2, 1),
		},
		&ast.ValueDef{
			Pattern: &ast.VarPattern{Name: "c", Pos: at(3, 5)},
			Value:   intLit(3, 9, "2"),
			Pos:     at(3, 1),
		},
	}
	env, err := c.Check(NewTypeEnv(), program)
	requireKind(t, err, UnboundIdentifier)

	_, ok := env.Lookup("a")
	require.True(t, ok)
	_, ok = env.Lookup("c")
	require.False(t, ok)
}

func TestCheckIdempotent(t *testing.T) {
	// Re-checking the same AST yields structurally equal result types.
	program := ast.Program{
		&ast.ValueDef{
			Pattern: &ast.VarPattern{Name: "t", Pos: at(1, 5)},
			Value: &ast.Tuple{
				Elems: []ast.Expr{
					intLit(1, 10, "1"),
					&ast.Tuple{
						Elems: []ast.Expr{boolLit(1, 14, "true"), intLit(1, 20, "2")},
						Pos:   at(1, 13),
					},
				},
				Pos: at(1, 9),
			},
			Pos: at(1, 1),
		},
	}

	first, err := NewChecker().Check(NewTypeEnv(), program)
	require.NoError(t, err)
	second, err := NewChecker().Check(NewTypeEnv(), program)
	require.NoError(t, err)

	a, _ := first.Lookup("t")
	b, _ := second.Lookup("t")
	require.Equal(t, "(int, (bool, int))", types.TypeString(a))
	require.Equal(t, types.TypeString(a), types.TypeString(b))
}
