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
	"github.com/lunelang/lune/ast"
	"github.com/lunelang/lune/types"
)

// Constraint is an equality constraint between two type terms.
type Constraint struct {
	A, B types.Type
}

// Unify solves the constraints, binding type variables in place, until
// none remain or the first incompatible pair is found.
//
// This is the single source of truth for type compatibility; all other
// components express compatibility by constructing constraint pairs and
// delegating here.
func (c *Checker) Unify(pos ast.Pos, constraints []Constraint) error {
	for len(constraints) > 0 {
		next := constraints[len(constraints)-1]
		constraints = constraints[:len(constraints)-1]

		a, b := types.RealType(next.A), types.RealType(next.B)
		if a == b {
			// Identical terms, including a variable against itself.
			continue
		}

		if av, ok := a.(*types.Var); ok {
			if err := c.bind(pos, av, b); err != nil {
				return err
			}
			continue
		}
		if bv, ok := b.(*types.Var); ok {
			if err := c.bind(pos, bv, a); err != nil {
				return err
			}
			continue
		}

		switch a := a.(type) {
		case *types.Const:
			if b, ok := b.(*types.Const); ok && a.Name == b.Name {
				continue
			}

		case *types.App:
			if b, ok := b.(*types.App); ok {
				if a.Name != b.Name || len(a.Args) != len(b.Args) {
					return errorf(TypeMismatch, pos, "cannot unify %s with %s",
						types.TypeString(a), types.TypeString(b))
				}
				for i := range a.Args {
					constraints = append(constraints, Constraint{a.Args[i], b.Args[i]})
				}
				continue
			}

		case *types.Arrow:
			if b, ok := b.(*types.Arrow); ok {
				constraints = append(constraints,
					Constraint{a.Arg, b.Arg},
					Constraint{a.Return, b.Return})
				continue
			}
		}

		return errorf(TypeMismatch, pos, "cannot unify %s with %s",
			types.TypeString(a), types.TypeString(b))
	}
	return nil
}

// unify solves a single equality constraint.
func (c *Checker) unify(pos ast.Pos, a, b types.Type) error {
	return c.Unify(pos, []Constraint{{a, b}})
}

// bind links an unbound variable to a term, failing the occurs check if
// the term contains the variable. A failed bind leaves tv unbound.
func (c *Checker) bind(pos ast.Pos, tv *types.Var, t types.Type) error {
	if types.Occurs(tv, t) {
		return errorf(OccursCheck, pos, "type variable occurs in %s", types.TypeString(t))
	}
	tv.SetLink(t)
	return nil
}
