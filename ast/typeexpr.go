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

// TypeExpr is the base for syntactic types, used in parameter annotations
// and type-definition bodies.
type TypeExpr interface {
	// Name of the syntax-type of the type expression.
	TypeExprName() string
	// Source position of the type expression.
	Position() Pos
}

var (
	_ TypeExpr = (*TypeName)(nil)
	_ TypeExpr = (*TupleType)(nil)
	_ TypeExpr = (*ArrowType)(nil)
)

// Named type: `int`, `bool`, `unit`, or a declared type identifier.
type TypeName struct {
	Name string
	Pos  Pos
}

// "TypeName"
func (t *TypeName) TypeExprName() string { return "TypeName" }

func (t *TypeName) Position() Pos { return t.Pos }

// Tuple type: `(int, bool)`
type TupleType struct {
	Elems []TypeExpr
	Pos   Pos
}

// "TupleType"
func (t *TupleType) TypeExprName() string { return "TupleType" }

func (t *TupleType) Position() Pos { return t.Pos }

// Function type: `int -> bool`
type ArrowType struct {
	Arg    TypeExpr
	Return TypeExpr
	Pos    Pos
}

// "ArrowType"
func (t *ArrowType) TypeExprName() string { return "ArrowType" }

func (t *ArrowType) Position() Pos { return t.Pos }
