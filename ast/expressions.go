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

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Source position of the expression.
	Position() Pos
}

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetGroup)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*Record)(nil)
	_ Expr = (*Select)(nil)
	_ Expr = (*Tag)(nil)
	_ Expr = (*Match)(nil)
)

// Kind of a literal value.
type LiteralKind int

const (
	IntLit LiteralKind = iota
	BoolLit
)

// Literal value: `1`, `true`
type Literal struct {
	Kind   LiteralKind
	Syntax string
	Pos    Pos
}

// "Literal"
func (e *Literal) ExprName() string { return "Literal" }

func (e *Literal) Position() Pos { return e.Pos }

// Variable reference
type Var struct {
	Name string
	Pos  Pos
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

func (e *Var) Position() Pos { return e.Pos }

// Abstraction: `fun (x: int) -> e`, `fun x -> e`
type Func struct {
	ArgName string
	// Annot is the parameter's type annotation, or nil if the parameter
	// is unannotated.
	Annot TypeExpr
	Body  Expr
	Pos   Pos
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

func (e *Func) Position() Pos { return e.Pos }

// Application: `f(x)`
type Call struct {
	Func Expr
	Arg  Expr
	Pos  Pos
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

func (e *Call) Position() Pos { return e.Pos }

// Let-binding: `let p = e1 in e2`
type Let struct {
	Pattern Pattern
	Value   Expr
	Body    Expr
	Pos     Pos
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

func (e *Let) Position() Pos { return e.Pos }

// Grouped let-bindings for mutually-recursive functions:
// `let f = ... and g = ... in e`
type LetGroup struct {
	Vars []LetBinding
	Body Expr
	Pos  Pos
}

// "LetGroup"
func (e *LetGroup) ExprName() string { return "LetGroup" }

func (e *LetGroup) Position() Pos { return e.Pos }

// Paired identifier and value
type LetBinding struct {
	Var   string
	Value Expr
}

// Conditional: `if c then e1 else e2`
type If struct {
	Cond Expr
	Then Expr
	Else Expr
	Pos  Pos
}

// "If"
func (e *If) ExprName() string { return "If" }

func (e *If) Position() Pos { return e.Pos }

// Tuple construction: `(a, b)`
type Tuple struct {
	Elems []Expr
	Pos   Pos
}

// "Tuple"
func (e *Tuple) ExprName() string { return "Tuple" }

func (e *Tuple) Position() Pos { return e.Pos }

// Record construction: `{a = 1, b = 2}`
//
// A record literal always has at least one field; empty literals are
// rejected by the parser.
type Record struct {
	Labels []LabelValue
	Pos    Pos
}

// "Record"
func (e *Record) ExprName() string { return "Record" }

func (e *Record) Position() Pos { return e.Pos }

// Paired label and value
type LabelValue struct {
	Label string
	Value Expr
}

// Field projection: `e.a`
type Select struct {
	Record Expr
	Label  string
	Pos    Pos
}

// "Select"
func (e *Select) ExprName() string { return "Select" }

func (e *Select) Position() Pos { return e.Pos }

// Tagged-value construction: `Tag(e1, ..., en)`
type Tag struct {
	Label string
	Args  []Expr
	Pos   Pos
}

// "Tag"
func (e *Tag) ExprName() string { return "Tag" }

func (e *Tag) Position() Pos { return e.Pos }

// Case analysis over a scrutinee:
//
//	case e of
//	    Some(x) -> e1
//	  | None    -> e2
//	end
type Match struct {
	Value Expr
	Cases []MatchCase
	Pos   Pos
}

// "Match"
func (e *Match) ExprName() string { return "Match" }

func (e *Match) Position() Pos { return e.Pos }

// Branch within Match: `Some(x) -> e1`
type MatchCase struct {
	Pattern Pattern
	Value   Expr
}
