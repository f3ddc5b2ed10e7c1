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

import (
	"strconv"
	"strings"
)

// TypeString returns a string representation of a Type.
//
// Unbound type variables are printed with stable names ('a, 'b, ...)
// assigned in order of first appearance within the type.
func TypeString(t Type) string {
	p := &typePrinter{idNames: make(map[int]string)}
	p.typeString(false, t)
	return p.sb.String()
}

type typePrinter struct {
	idNames map[int]string
	sb      strings.Builder
}

func (p *typePrinter) varName(id int) string {
	if name, ok := p.idNames[id]; ok {
		return name
	}
	i := len(p.idNames)
	name := "'" + string(rune('a'+i%26))
	if i >= 26 {
		name += strconv.Itoa(i / 26)
	}
	p.idNames[id] = name
	return name
}

func (p *typePrinter) typeString(nested bool, t Type) {
	switch t := RealType(t).(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case *App:
		if t.IsTuple() {
			p.sb.WriteByte('(')
			for i, arg := range t.Args {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				p.typeString(false, arg)
			}
			p.sb.WriteByte(')')
			return
		}
		p.sb.WriteString(t.Name)
		p.sb.WriteByte('[')
		for i, arg := range t.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.typeString(false, arg)
		}
		p.sb.WriteByte(']')

	case *Arrow:
		if nested {
			p.sb.WriteByte('(')
		}
		p.typeString(true, t.Arg)
		p.sb.WriteString(" -> ")
		p.typeString(false, t.Return)
		if nested {
			p.sb.WriteByte(')')
		}

	case *Var:
		p.sb.WriteString(p.varName(t.Id()))
	}
}
