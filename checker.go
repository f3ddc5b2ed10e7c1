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
	"github.com/pkg/errors"

	"github.com/lunelang/lune/ast"
	"github.com/lunelang/lune/types"
)

// Checker type-checks programs. It owns the fresh type-variable counter,
// which advances monotonically for the lifetime of the Checker and is
// never reset between Check calls.
//
// A Checker cannot be used concurrently.
type Checker struct {
	nextVarId int
}

// Create a new checker.
func NewChecker() *Checker { return &Checker{} }

// fresh returns an unbound type variable with a new unique id.
func (c *Checker) fresh() *types.Var {
	tv := types.NewVar(c.nextVarId)
	c.nextVarId++
	return tv
}

// Check folds definitions left to right, threading the growing typing
// environment, and returns the final environment. Checking halts at the
// first ill-typed definition.
func (c *Checker) Check(env TypeEnv, program ast.Program) (TypeEnv, error) {
	for _, def := range program {
		next, err := c.checkDef(env, def)
		if err != nil {
			return env, errors.Wrapf(err, "definition at %s", def.Position())
		}
		env = next
	}
	return env, nil
}

func (c *Checker) checkDef(env TypeEnv, def ast.Def) (TypeEnv, error) {
	switch def := def.(type) {
	case *ast.TypeDef:
		return c.checkTypeDef(env, def)

	case *ast.ValueDef:
		// A top-level binding pattern must always match.
		if err := c.checkIrrefutable(env, def.Pattern); err != nil {
			return env, err
		}
		t, err := c.infer(env, def.Value)
		if err != nil {
			return env, err
		}
		return c.checkPattern(env, t, def.Pattern)

	case *ast.GroupDef:
		return c.inferGroup(env, def.Vars)
	}
	panic("unhandled definition " + def.DefName())
}

func (c *Checker) checkTypeDef(env TypeEnv, def *ast.TypeDef) (TypeEnv, error) {
	// Pre-register a placeholder so the body can refer to its own name.
	scope := env.BindTypeDef(def.Name, &types.UnionDef{})

	switch body := def.Body.(type) {
	case *ast.RecordBody:
		rd := &types.RecordDef{Fields: make([]types.Field, 0, len(body.Fields))}
		for _, f := range body.Fields {
			if rd.HasLabel(f.Label) {
				return env, errorf(DuplicateFieldOrTag, def.Pos,
					"duplicate field %s in type %s", f.Label, def.Name)
			}
			ft, err := c.resolveType(scope, f.Type)
			if err != nil {
				return env, err
			}
			rd.Fields = append(rd.Fields, types.Field{Label: f.Label, Type: ft})
		}
		return env.BindTypeDef(def.Name, rd), nil

	case *ast.UnionBody:
		ud := &types.UnionDef{Variants: make([]types.Variant, 0, len(body.Variants))}
		for _, v := range body.Variants {
			if ud.HasTag(v.Tag) {
				return env, errorf(DuplicateFieldOrTag, def.Pos,
					"duplicate tag %s in type %s", v.Tag, def.Name)
			}
			params := make([]types.Type, len(v.Params))
			for i, pe := range v.Params {
				pt, err := c.resolveType(scope, pe)
				if err != nil {
					return env, err
				}
				params[i] = pt
			}
			ud.Variants = append(ud.Variants, types.Variant{Tag: v.Tag, Params: params})
		}
		return env.BindTypeDef(def.Name, ud), nil
	}
	panic("unhandled type-definition body " + def.Body.BodyName())
}

// resolveType converts a syntactic type to a type term, validating named
// types against the environment.
func (c *Checker) resolveType(env TypeEnv, te ast.TypeExpr) (types.Type, error) {
	switch te := te.(type) {
	case *ast.TypeName:
		switch te.Name {
		case "int":
			return types.IntType, nil
		case "bool":
			return types.BoolType, nil
		case "unit":
			return types.UnitType, nil
		}
		if _, ok := env.LookupTypeDef(te.Name); !ok {
			return nil, errorf(UnboundTypeIdentifier, te.Pos, "type %s not found", te.Name)
		}
		return &types.Const{Name: te.Name}, nil

	case *ast.TupleType:
		elems := make([]types.Type, len(te.Elems))
		for i, el := range te.Elems {
			t, err := c.resolveType(env, el)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return types.NewTuple(elems...), nil

	case *ast.ArrowType:
		arg, err := c.resolveType(env, te.Arg)
		if err != nil {
			return nil, err
		}
		ret, err := c.resolveType(env, te.Return)
		if err != nil {
			return nil, err
		}
		return &types.Arrow{Arg: arg, Return: ret}, nil
	}
	panic("unhandled type expression " + te.TypeExprName())
}
