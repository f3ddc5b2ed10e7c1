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

package types

// Type is the base interface for all type terms.
type Type interface {
	TypeName() string
}

func (t *Const) TypeName() string { return "Const" }
func (t *App) TypeName() string   { return "App" }
func (t *Arrow) TypeName() string { return "Arrow" }
func (t *Var) TypeName() string   { return "Var" }

// Type constant: `int`, `bool`, `unit`, or a declared record/union type.
type Const struct {
	Name string
}

// Predeclared ground types.
var (
	IntType  = &Const{"int"}
	BoolType = &Const{"bool"}
	UnitType = &Const{"unit"}
)

// Type application with a constructor name and an ordered list of
// type arguments. Tuples are applications of TupleName.
type App struct {
	Name string
	Args []Type
}

// TupleName is the constructor name shared by all tuple types.
const TupleName = "tuple"

// Create a tuple type from its element types, in order.
func NewTuple(elems ...Type) *App { return &App{Name: TupleName, Args: elems} }

// IsTuple reports whether t is a tuple type.
func (t *App) IsTuple() bool { return t.Name == TupleName }

// Function type.
type Arrow struct {
	Arg    Type
	Return Type
}

// Type variable with a unique id and a mutable content cell.
type Var struct {
	link Type
	id   int32
}

// Create a new unbound type variable with the given id.
func NewVar(id int) *Var { return &Var{id: int32(id)} }

// Id returns the unique identifier of the type variable.
func (tv *Var) Id() int { return int(tv.id) }

// Link returns the type which the type variable is bound to, if the type variable is bound.
func (tv *Var) Link() Type { return tv.link }

// IsUnbound reports whether the type variable has no content.
func (tv *Var) IsUnbound() bool { return tv.link == nil }

// SetLink binds the type variable's content cell to t. A variable must
// never be rebound after it receives content.
func (tv *Var) SetLink(t Type) { tv.link = t }

// RealType dereferences t through any chain of bound type variables.
func RealType(t Type) Type {
	for {
		tv, ok := t.(*Var)
		if !ok || tv.link == nil {
			return t
		}
		t = tv.link
	}
}

// Occurs reports whether the variable tv occurs in t after dereferencing.
func Occurs(tv *Var, t Type) bool {
	switch t := RealType(t).(type) {
	case *Var:
		return t == tv
	case *App:
		for _, arg := range t.Args {
			if Occurs(tv, arg) {
				return true
			}
		}
		return false
	case *Arrow:
		return Occurs(tv, t.Arg) || Occurs(tv, t.Return)
	default:
		return false
	}
}
