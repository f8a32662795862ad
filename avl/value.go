// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"
)

// Word - a fixed width scalar holding one of: a signed or unsigned
// integer, a floating point number or an opaque handle
//
// the tree never looks at the bits, only the comparator does, so the
// comparator must match the kind that was stored
type Word uint64

// IntWord - store a signed integer
func IntWord(i int64) Word { return Word(uint64(i)) }

// UintWord - store an unsigned integer
func UintWord(u uint64) Word { return Word(u) }

// FloatWord - store a floating point number
func FloatWord(f float64) Word { return Word(math.Float64bits(f)) }

// HandleWord - store an opaque handle, e.g. an index into a caller's
// table; a handle is not a Go pointer and does not keep anything alive
func HandleWord(h uintptr) Word { return Word(uint64(h)) }

// Int - read as a signed integer
func (w Word) Int() int64 { return int64(w) }

// Uint - read as an unsigned integer
func (w Word) Uint() uint64 { return uint64(w) }

// Float - read as a floating point number
func (w Word) Float() float64 { return math.Float64frombits(uint64(w)) }

// Handle - read as an opaque handle
func (w Word) Handle() uintptr { return uintptr(w) }

// comparators for each kind of Word
func LessInt(a Word, b Word) bool    { return a.Int() < b.Int() }
func LessUint(a Word, b Word) bool   { return a.Uint() < b.Uint() }
func LessFloat(a Word, b Word) bool  { return a.Float() < b.Float() }
func LessHandle(a Word, b Word) bool { return a.Handle() < b.Handle() }
