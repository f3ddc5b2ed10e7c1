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
	"strings"

	"github.com/lunelang/lune/ast"
	"github.com/lunelang/lune/types"
)

// checkPattern verifies that p is compatible with the expected type t and
// returns the environment extended with the variables p introduces.
// Patterns are checked recursively, including nested tuple and tagged
// patterns.
func (c *Checker) checkPattern(env TypeEnv, t types.Type, p ast.Pattern) (TypeEnv, error) {
	switch p := p.(type) {
	case *ast.WildcardPattern:
		return env, nil

	case *ast.VarPattern:
		return env.Bind(p.Name, t), nil

	case *ast.TuplePattern:
		rt := types.RealType(t)
		if _, unsolved := rt.(*types.Var); unsolved {
			// Shape an unresolved scrutinee as a tuple of fresh variables.
			elems := make([]types.Type, len(p.Elems))
			for i := range elems {
				elems[i] = c.fresh()
			}
			if err := c.unify(p.Pos, rt, types.NewTuple(elems...)); err != nil {
				return env, err
			}
			rt = types.RealType(rt)
		}
		tup, ok := rt.(*types.App)
		if !ok || !tup.IsTuple() || len(tup.Args) != len(p.Elems) {
			return env, errorf(PatternTypeMismatch, p.Pos,
				"tuple pattern of arity %d does not match type %s",
				len(p.Elems), types.TypeString(t))
		}
		var err error
		for i, sub := range p.Elems {
			env, err = c.checkPattern(env, tup.Args[i], sub)
			if err != nil {
				return env, err
			}
		}
		return env, nil

	case *ast.TagPattern:
		var ud *types.UnionDef
		switch rt := types.RealType(t).(type) {
		case *types.Const:
			// The scrutinee already has a named type; the tag must belong
			// to that type's union.
			def, ok := env.LookupTypeDef(rt.Name)
			if ok {
				union, isUnion := def.(*types.UnionDef)
				if isUnion && union.HasTag(p.Label) {
					ud = union
					break
				}
			}
			return env, errorf(PatternTypeMismatch, p.Pos,
				"pattern %s does not match type %s", p.Label, types.TypeString(t))

		case *types.Var:
			name, union, err := env.LookupUnion(p.Pos, p.Label)
			if err != nil {
				return env, err
			}
			if err := c.unify(p.Pos, t, &types.Const{Name: name}); err != nil {
				return env, err
			}
			ud = union

		default:
			return env, errorf(PatternTypeMismatch, p.Pos,
				"pattern %s does not match type %s", p.Label, types.TypeString(t))
		}
		v, _ := ud.Variant(p.Label)
		if len(p.Args) != len(v.Params) {
			return env, errorf(ArityMismatch, p.Pos,
				"variant %s expects %d arguments, pattern binds %d",
				p.Label, len(v.Params), len(p.Args))
		}
		var err error
		for i, sub := range p.Args {
			env, err = c.checkPattern(env, v.Params[i], sub)
			if err != nil {
				return env, err
			}
		}
		return env, nil
	}
	panic("unhandled pattern " + p.PatternName())
}

// checkIrrefutable verifies that p matches any value of its expected type.
// Wildcard and variable patterns always match; a tuple pattern matches if
// all of its elements do; a tagged pattern matches only if its tag is the
// sole variant of the owning union.
func (c *Checker) checkIrrefutable(env TypeEnv, p ast.Pattern) error {
	switch p := p.(type) {
	case *ast.WildcardPattern, *ast.VarPattern:
		return nil

	case *ast.TuplePattern:
		for _, sub := range p.Elems {
			if err := c.checkIrrefutable(env, sub); err != nil {
				return err
			}
		}
		return nil

	case *ast.TagPattern:
		_, ud, err := env.LookupUnion(p.Pos, p.Label)
		if err != nil {
			return err
		}
		if len(ud.Variants) != 1 {
			return errorf(RefutablePattern, p.Pos, "pattern %s may fail to match", p.Label)
		}
		for _, sub := range p.Args {
			if err := c.checkIrrefutable(env, sub); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

// checkExhaustive verifies that the branch patterns of m cover every
// shape reachable from the scrutinee type t.
func (c *Checker) checkExhaustive(env TypeEnv, t types.Type, m *ast.Match) error {
	if cst, ok := types.RealType(t).(*types.Const); ok {
		if def, found := env.LookupTypeDef(cst.Name); found {
			if union, isUnion := def.(*types.UnionDef); isUnion {
				return c.checkTagsCovered(env, union, m)
			}
		}
	}
	// Non-union scrutinee: some branch must be irrefutable.
	for _, cse := range m.Cases {
		if c.checkIrrefutable(env, cse.Pattern) == nil {
			return nil
		}
	}
	return errorf(NonExhaustiveMatch, m.Pos, "match is not exhaustive")
}

// checkTagsCovered verifies that every tag of the union is subsumed by
// some branch. A wildcard or variable branch subsumes all remaining tags;
// a tagged branch subsumes its tag when its sub-patterns are irrefutable.
func (c *Checker) checkTagsCovered(env TypeEnv, union *types.UnionDef, m *ast.Match) error {
	covered := make(map[string]bool, len(union.Variants))
	for _, cse := range m.Cases {
		switch p := cse.Pattern.(type) {
		case *ast.WildcardPattern, *ast.VarPattern:
			return nil
		case *ast.TagPattern:
			subsumes := true
			for _, sub := range p.Args {
				if c.checkIrrefutable(env, sub) != nil {
					subsumes = false
					break
				}
			}
			if subsumes {
				covered[p.Label] = true
			}
		}
	}
	var missing []string
	for _, v := range union.Variants {
		if !covered[v.Tag] {
			missing = append(missing, v.Tag)
		}
	}
	if len(missing) > 0 {
		return errorf(NonExhaustiveMatch, m.Pos, "missing cases: %s", strings.Join(missing, ", "))
	}
	return nil
}
