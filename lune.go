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

// lune provides Hindley-Milner-style type checking for the Lune language:
// a small functional language with integers, booleans, tuples, functions,
// records, and tagged unions.
//
// A program is a sequence of top-level value and type definitions.
// Checking a program produces a typing environment describing every
// top-level binding's type, or a structured error when the program is
// ill-typed.
//
// Inference is monomorphic: unannotated function parameters receive
// fresh unification variables which are solved in place, with no
// generalization pass.
//
// Supported Features:
//
//   * Unification over a term algebra with mutable-cell type variables
//   * Structural resolution of declared record and tagged-union types
//     from field and tag names, without explicit annotations
//   * Pattern compatibility, irrefutability, and match exhaustiveness
//     checking, including nested patterns
//   * Mutually-recursive function groups within let bindings and at the
//     top level
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package lune
