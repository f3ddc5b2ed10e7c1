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
	"github.com/benbjohnson/immutable"

	"github.com/lunelang/lune/ast"
	"github.com/lunelang/lune/types"
)

// TypeEnv is a typing environment containing mappings from identifiers to
// types and from type identifiers to type definitions.
//
// Extension is functional: Bind and BindTypeDef return a new environment
// value and never mutate a previously returned environment. The newest
// binding for a name shadows older ones.
type TypeEnv struct {
	vars *immutable.SortedMap
	defs *immutable.SortedMap
}

// Create an empty typing environment.
func NewTypeEnv() TypeEnv {
	return TypeEnv{
		vars: immutable.NewSortedMap(nil),
		defs: immutable.NewSortedMap(nil),
	}
}

// Bind returns an environment extended with a variable binding.
func (e TypeEnv) Bind(name string, t types.Type) TypeEnv {
	return TypeEnv{vars: e.vars.Set(name, t), defs: e.defs}
}

// BindTypeDef returns an environment extended with a type definition.
func (e TypeEnv) BindTypeDef(name string, def types.TypeDef) TypeEnv {
	return TypeEnv{vars: e.vars, defs: e.defs.Set(name, def)}
}

// Lookup returns the type bound to an identifier.
func (e TypeEnv) Lookup(name string) (types.Type, bool) {
	t, ok := e.vars.Get(name)
	if !ok {
		return nil, false
	}
	return t.(types.Type), true
}

// LookupTypeDef returns the definition bound to a type identifier.
func (e TypeEnv) LookupTypeDef(name string) (types.TypeDef, bool) {
	d, ok := e.defs.Get(name)
	if !ok {
		return nil, false
	}
	return d.(types.TypeDef), true
}

// RecordDef returns the record definition bound to a type identifier.
func (e TypeEnv) RecordDef(pos ast.Pos, name string) (*types.RecordDef, error) {
	d, ok := e.LookupTypeDef(name)
	if !ok {
		return nil, errorf(UnboundTypeIdentifier, pos, "type %s not found", name)
	}
	rd, ok := d.(*types.RecordDef)
	if !ok {
		return nil, errorf(WrongTypeDefinitionKind, pos, "type %s is not a record type", name)
	}
	return rd, nil
}

// UnionDef returns the tagged-union definition bound to a type identifier.
func (e TypeEnv) UnionDef(pos ast.Pos, name string) (*types.UnionDef, error) {
	d, ok := e.LookupTypeDef(name)
	if !ok {
		return nil, errorf(UnboundTypeIdentifier, pos, "type %s not found", name)
	}
	ud, ok := d.(*types.UnionDef)
	if !ok {
		return nil, errorf(WrongTypeDefinitionKind, pos, "type %s is not a tagged-union type", name)
	}
	return ud, nil
}

// LookupRecord returns the name and definition of the record type which
// declares the given field label, scanning all registered definitions.
func (e TypeEnv) LookupRecord(pos ast.Pos, label string) (string, *types.RecordDef, error) {
	iter := e.defs.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if rd, ok := v.(*types.RecordDef); ok && rd.HasLabel(label) {
			return k.(string), rd, nil
		}
	}
	return "", nil, errorf(UnboundLabel, pos, "no record type declares field %s", label)
}

// LookupUnion returns the name and definition of the tagged-union type
// which declares the given tag, scanning all registered definitions.
func (e TypeEnv) LookupUnion(pos ast.Pos, tag string) (string, *types.UnionDef, error) {
	iter := e.defs.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if ud, ok := v.(*types.UnionDef); ok && ud.HasTag(tag) {
			return k.(string), ud, nil
		}
	}
	return "", nil, errorf(UnboundTag, pos, "no tagged-union type declares tag %s", tag)
}
