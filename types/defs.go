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

// TypeDef is a user-declared type definition: a record or a tagged union.
type TypeDef interface {
	DefName() string
}

func (d *RecordDef) DefName() string { return "Record" }
func (d *UnionDef) DefName() string  { return "Union" }

// Labeled field of a record definition.
type Field struct {
	Label string
	Type  Type
}

// Record type definition: an ordered list of uniquely labeled fields.
type RecordDef struct {
	Fields []Field
}

// Field returns the type of the field with the given label.
func (d *RecordDef) Field(label string) (Type, bool) {
	for _, f := range d.Fields {
		if f.Label == label {
			return f.Type, true
		}
	}
	return nil, false
}

// HasLabel reports whether the record declares a field with the given label.
func (d *RecordDef) HasLabel(label string) bool {
	_, ok := d.Field(label)
	return ok
}

// Tagged variant of a union definition. A variant with no parameters is a
// nullary constructor.
type Variant struct {
	Tag    string
	Params []Type
}

// Tagged-union type definition: an ordered list of uniquely tagged variants.
type UnionDef struct {
	Variants []Variant
}

// Variant returns the variant with the given tag.
func (d *UnionDef) Variant(tag string) (*Variant, bool) {
	for i := range d.Variants {
		if d.Variants[i].Tag == tag {
			return &d.Variants[i], true
		}
	}
	return nil, false
}

// HasTag reports whether the union declares a variant with the given tag.
func (d *UnionDef) HasTag(tag string) bool {
	_, ok := d.Variant(tag)
	return ok
}

// Tags returns the union's tags in declaration order.
func (d *UnionDef) Tags() []string {
	tags := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		tags[i] = v.Tag
	}
	return tags
}
