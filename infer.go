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

func (c *Checker) infer(env TypeEnv, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Literal:
		switch e.Kind {
		case ast.IntLit:
			return types.IntType, nil
		case ast.BoolLit:
			return types.BoolType, nil
		}
		panic("unhandled literal " + e.Syntax)

	case *ast.Var:
		t, ok := env.Lookup(e.Name)
		if !ok {
			return nil, errorf(UnboundIdentifier, e.Pos, "variable %s not found", e.Name)
		}
		return t, nil

	case *ast.Func:
		var arg types.Type
		if e.Annot != nil {
			at, err := c.resolveType(env, e.Annot)
			if err != nil {
				return nil, err
			}
			arg = at
		} else {
			arg = c.fresh()
		}
		ret, err := c.infer(env.Bind(e.ArgName, arg), e.Body)
		if err != nil {
			return nil, err
		}
		return &types.Arrow{Arg: arg, Return: ret}, nil

	case *ast.Call:
		ft, err := c.infer(env, e.Func)
		if err != nil {
			return nil, err
		}
		at, err := c.infer(env, e.Arg)
		if err != nil {
			return nil, err
		}
		ret := c.fresh()
		if err := c.unify(e.Pos, ft, &types.Arrow{Arg: at, Return: ret}); err != nil {
			return nil, err
		}
		return ret, nil

	case *ast.Let:
		vt, err := c.infer(env, e.Value)
		if err != nil {
			return nil, err
		}
		scope, err := c.checkPattern(env, vt, e.Pattern)
		if err != nil {
			return nil, err
		}
		return c.infer(scope, e.Body)

	case *ast.LetGroup:
		scope, err := c.inferGroup(env, e.Vars)
		if err != nil {
			return nil, err
		}
		return c.infer(scope, e.Body)

	case *ast.If:
		ct, err := c.infer(env, e.Cond)
		if err != nil {
			return nil, err
		}
		if err := c.unify(e.Cond.Position(), ct, types.BoolType); err != nil {
			return nil, errorf(NonBooleanCondition, e.Cond.Position(),
				"condition has type %s", types.TypeString(ct))
		}
		tt, err := c.infer(env, e.Then)
		if err != nil {
			return nil, err
		}
		et, err := c.infer(env, e.Else)
		if err != nil {
			return nil, err
		}
		if err := c.unify(e.Pos, tt, et); err != nil {
			return nil, err
		}
		return tt, nil

	case *ast.Tuple:
		elems := make([]types.Type, len(e.Elems))
		for i, el := range e.Elems {
			t, err := c.infer(env, el)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return types.NewTuple(elems...), nil

	case *ast.Record:
		return c.inferRecord(env, e)

	case *ast.Select:
		rt, err := c.infer(env, e.Record)
		if err != nil {
			return nil, err
		}
		name, rd, err := env.LookupRecord(e.Pos, e.Label)
		if err != nil {
			return nil, err
		}
		if err := c.unify(e.Pos, rt, &types.Const{Name: name}); err != nil {
			return nil, err
		}
		ft, _ := rd.Field(e.Label)
		return ft, nil

	case *ast.Tag:
		name, ud, err := env.LookupUnion(e.Pos, e.Label)
		if err != nil {
			return nil, err
		}
		v, _ := ud.Variant(e.Label)
		if len(e.Args) != len(v.Params) {
			return nil, errorf(ArityMismatch, e.Pos, "variant %s expects %d arguments, got %d",
				e.Label, len(v.Params), len(e.Args))
		}
		for i, arg := range e.Args {
			at, err := c.infer(env, arg)
			if err != nil {
				return nil, err
			}
			if err := c.unify(arg.Position(), at, v.Params[i]); err != nil {
				return nil, err
			}
		}
		return &types.Const{Name: name}, nil

	case *ast.Match:
		st, err := c.infer(env, e.Value)
		if err != nil {
			return nil, err
		}
		ret := c.fresh()
		for _, cse := range e.Cases {
			scope, err := c.checkPattern(env, st, cse.Pattern)
			if err != nil {
				return nil, err
			}
			bt, err := c.infer(scope, cse.Value)
			if err != nil {
				return nil, err
			}
			if err := c.unify(cse.Value.Position(), ret, bt); err != nil {
				return nil, err
			}
		}
		if err := c.checkExhaustive(env, st, e); err != nil {
			return nil, err
		}
		return ret, nil
	}
	panic("unhandled expression " + e.ExprName())
}

// inferRecord types a record literal. The owning record type is resolved
// from the first field's label; the literal's field set must exactly match
// the declared field set.
func (c *Checker) inferRecord(env TypeEnv, e *ast.Record) (types.Type, error) {
	name, rd, err := env.LookupRecord(e.Pos, e.Labels[0].Label)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(e.Labels))
	for _, lv := range e.Labels {
		ft, ok := rd.Field(lv.Label)
		if !ok {
			return nil, errorf(TypeMismatch, e.Pos, "type %s has no field %s", name, lv.Label)
		}
		if seen[lv.Label] {
			return nil, errorf(TypeMismatch, e.Pos, "duplicate field %s in %s literal", lv.Label, name)
		}
		seen[lv.Label] = true
		vt, err := c.infer(env, lv.Value)
		if err != nil {
			return nil, err
		}
		if err := c.unify(lv.Value.Position(), vt, ft); err != nil {
			return nil, err
		}
	}
	for _, f := range rd.Fields {
		if !seen[f.Label] {
			return nil, errorf(TypeMismatch, e.Pos, "missing field %s in %s literal", f.Label, name)
		}
	}
	return &types.Const{Name: name}, nil
}

// inferGroup types a group of mutually-recursive bindings. Every name is
// bound to a fresh type variable in one shared environment before any
// body is inferred; each body's type is then unified with its pre-bound
// variable. Returns the environment extended with all bindings.
func (c *Checker) inferGroup(env TypeEnv, bindings []ast.LetBinding) (TypeEnv, error) {
	vars := make([]*types.Var, len(bindings))
	scope := env
	for i, b := range bindings {
		vars[i] = c.fresh()
		scope = scope.Bind(b.Var, vars[i])
	}
	for i, b := range bindings {
		t, err := c.infer(scope, b.Value)
		if err != nil {
			return env, err
		}
		if err := c.unify(b.Value.Position(), vars[i], t); err != nil {
			return env, err
		}
	}
	return scope, nil
}
