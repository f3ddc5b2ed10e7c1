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

	"github.com/lunelang/lune/types"
)

func testDefs() (TypeEnv, *types.RecordDef, *types.UnionDef) {
	point := &types.RecordDef{Fields: []types.Field{
		{Label: "x", Type: types.IntType},
		{Label: "y", Type: types.IntType},
	}}
	shape := &types.UnionDef{Variants: []types.Variant{
		{Tag: "Circle", Params: []types.Type{types.IntType}},
		{Tag: "Square", Params: []types.Type{types.IntType}},
	}}
	env := NewTypeEnv().BindTypeDef("Point", point).BindTypeDef("Shape", shape)
	return env, point, shape
}

func TestEnvBindAndShadow(t *testing.T) {
	env := NewTypeEnv().Bind("x", types.IntType)

	got, ok := env.Lookup("x")
	require.True(t, ok)
	require.Equal(t, types.IntType, got)

	shadowed := env.Bind("x", types.BoolType)
	got, ok = shadowed.Lookup("x")
	require.True(t, ok)
	require.Equal(t, types.BoolType, got)

	// Extension never mutates a previously returned environment.
	got, ok = env.Lookup("x")
	require.True(t, ok)
	require.Equal(t, types.IntType, got)

	_, ok = env.Lookup("y")
	require.False(t, ok)
}

func TestEnvTypeDefLookups(t *testing.T) {
	env, point, shape := testDefs()

	rd, err := env.RecordDef(at(1, 1), "Point")
	require.NoError(t, err)
	require.Equal(t, point, rd)

	ud, err := env.UnionDef(at(1, 1), "Shape")
	require.NoError(t, err)
	require.Equal(t, shape, ud)

	_, err = env.RecordDef(at(1, 1), "Shape")
	requireKind(t, err, WrongTypeDefinitionKind)
	_, err = env.UnionDef(at(1, 1), "Point")
	requireKind(t, err, WrongTypeDefinitionKind)
	_, err = env.RecordDef(at(1, 1), "Missing")
	requireKind(t, err, UnboundTypeIdentifier)
}

func TestEnvReverseLookups(t *testing.T) {
	env, point, shape := testDefs()

	name, rd, err := env.LookupRecord(at(1, 1), "y")
	require.NoError(t, err)
	require.Equal(t, "Point", name)
	require.Equal(t, point, rd)

	name, ud, err := env.LookupUnion(at(1, 1), "Square")
	require.NoError(t, err)
	require.Equal(t, "Shape", name)
	require.Equal(t, shape, ud)

	_, _, err = env.LookupRecord(at(1, 1), "z")
	requireKind(t, err, UnboundLabel)
	_, _, err = env.LookupUnion(at(1, 1), "Triangle")
	requireKind(t, err, UnboundTag)
}
