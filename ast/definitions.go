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

package ast

// Program is a sequence of top-level definitions in source order.
type Program []Def

// Def is the base for all top-level definitions.
type Def interface {
	// Name of the syntax-type of the definition.
	DefName() string
	// Source position of the definition.
	Position() Pos
}

var (
	_ Def = (*ValueDef)(nil)
	_ Def = (*GroupDef)(nil)
	_ Def = (*TypeDef)(nil)
)

// Top-level value binding: `let p = e`
type ValueDef struct {
	Pattern Pattern
	Value   Expr
	Pos     Pos
}

// "ValueDef"
func (d *ValueDef) DefName() string { return "ValueDef" }

func (d *ValueDef) Position() Pos { return d.Pos }

// Top-level group of mutually-recursive function bindings:
// `let f = ... and g = ...`
type GroupDef struct {
	Vars []LetBinding
	Pos  Pos
}

// "GroupDef"
func (d *GroupDef) DefName() string { return "GroupDef" }

func (d *GroupDef) Position() Pos { return d.Pos }

// Top-level type definition: `type T = {...}` or `type T = Tagged {...}`
type TypeDef struct {
	Name string
	Body TypeBody
	Pos  Pos
}

// "TypeDef"
func (d *TypeDef) DefName() string { return "TypeDef" }

func (d *TypeDef) Position() Pos { return d.Pos }

// TypeBody is the structural body of a type definition.
type TypeBody interface {
	// Name of the syntax-type of the body.
	BodyName() string
}

var (
	_ TypeBody = (*RecordBody)(nil)
	_ TypeBody = (*UnionBody)(nil)
)

// Record body: an ordered list of labeled field types.
type RecordBody struct {
	Fields []FieldExpr
}

// "RecordBody"
func (b *RecordBody) BodyName() string { return "RecordBody" }

// Paired label and field type
type FieldExpr struct {
	Label string
	Type  TypeExpr
}

// Tagged-union body: an ordered list of tagged variant signatures.
type UnionBody struct {
	Variants []VariantExpr
}

// "UnionBody"
func (b *UnionBody) BodyName() string { return "UnionBody" }

// Paired tag and parameter types. A variant with no parameters is a
// nullary constructor.
type VariantExpr struct {
	Tag    string
	Params []TypeExpr
}
