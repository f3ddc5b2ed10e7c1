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

// Pattern is the base for all patterns. Patterns are recursive: tuple and
// tagged patterns may contain nested patterns.
type Pattern interface {
	// Name of the syntax-type of the pattern.
	PatternName() string
	// Source position of the pattern.
	Position() Pos
}

var (
	_ Pattern = (*WildcardPattern)(nil)
	_ Pattern = (*VarPattern)(nil)
	_ Pattern = (*TuplePattern)(nil)
	_ Pattern = (*TagPattern)(nil)
)

// Wildcard pattern: `_`
type WildcardPattern struct {
	Pos Pos
}

// "Wildcard"
func (p *WildcardPattern) PatternName() string { return "Wildcard" }

func (p *WildcardPattern) Position() Pos { return p.Pos }

// Variable pattern: `x`
type VarPattern struct {
	Name string
	Pos  Pos
}

// "Var"
func (p *VarPattern) PatternName() string { return "Var" }

func (p *VarPattern) Position() Pos { return p.Pos }

// Tuple pattern: `(p1, p2)`
type TuplePattern struct {
	Elems []Pattern
	Pos   Pos
}

// "Tuple"
func (p *TuplePattern) PatternName() string { return "Tuple" }

func (p *TuplePattern) Position() Pos { return p.Pos }

// Tagged-value pattern: `Tag(p1, ..., pn)`
type TagPattern struct {
	Label string
	Args  []Pattern
	Pos   Pos
}

// "Tag"
func (p *TagPattern) PatternName() string { return "Tag" }

func (p *TagPattern) Position() Pos { return p.Pos }
