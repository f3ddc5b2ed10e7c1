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
	"fmt"

	"github.com/lunelang/lune/ast"
)

// ErrorKind identifies the class of a checking failure.
type ErrorKind int

const (
	UnboundIdentifier ErrorKind = iota
	UnboundTypeIdentifier
	UnboundLabel
	UnboundTag
	WrongTypeDefinitionKind
	TypeMismatch
	OccursCheck
	ArityMismatch
	NonBooleanCondition
	PatternTypeMismatch
	RefutablePattern
	NonExhaustiveMatch
	DuplicateFieldOrTag
)

func (k ErrorKind) String() string {
	switch k {
	case UnboundIdentifier:
		return "UnboundIdentifier"
	case UnboundTypeIdentifier:
		return "UnboundTypeIdentifier"
	case UnboundLabel:
		return "UnboundLabel"
	case UnboundTag:
		return "UnboundTag"
	case WrongTypeDefinitionKind:
		return "WrongTypeDefinitionKind"
	case TypeMismatch:
		return "TypeMismatch"
	case OccursCheck:
		return "OccursCheck"
	case ArityMismatch:
		return "ArityMismatch"
	case NonBooleanCondition:
		return "NonBooleanCondition"
	case PatternTypeMismatch:
		return "PatternTypeMismatch"
	case RefutablePattern:
		return "RefutablePattern"
	case NonExhaustiveMatch:
		return "NonExhaustiveMatch"
	case DuplicateFieldOrTag:
		return "DuplicateFieldOrTag"
	}
	return "Unknown"
}

// Error is a checking failure carrying the offending source position.
// Every error is terminal for the current Check call; there is no local
// recovery or partial-result reporting.
type Error struct {
	Kind ErrorKind
	Pos  ast.Pos
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
}

func errorf(kind ErrorKind, pos ast.Pos, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
