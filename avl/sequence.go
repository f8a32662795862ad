// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Ascend - all items in ascending key order
//
// the walk runs on the given stack; check stack.Err() afterwards to
// tell a failed walk from a complete one.  The tree must not be
// modified during the walk.
func (tree *Tree[K, V]) Ascend(stack *Stack[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if nil != tree.Traverse(stack) {
			return
		}
		forward(stack, yield)
	}
}

// Descend - all items in descending key order
func (tree *Tree[K, V]) Descend(stack *Stack[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if nil != tree.Reversed(stack) {
			return
		}
		backward(stack, yield)
	}
}

// AscendFrom - items with keys equal to or greater than key, ascending
func (tree *Tree[K, V]) AscendFrom(stack *Stack[K, V], key K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if nil != tree.Upper(stack, key) {
			return
		}
		forward(stack, yield)
	}
}

// DescendFrom - items with keys equal to or less than key, descending
func (tree *Tree[K, V]) DescendFrom(stack *Stack[K, V], key K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if nil != tree.Lower(stack, key) {
			return
		}
		backward(stack, yield)
	}
}

func forward[K any, V any](stack *Stack[K, V], yield func(K, V) bool) {
	for p, ok := stack.Next(); ok; p, ok = stack.Next() {
		if !yield(p.key, p.value) {
			return
		}
	}
}

func backward[K any, V any](stack *Stack[K, V], yield func(K, V) bool) {
	for p, ok := stack.Prior(); ok; p, ok = stack.Prior() {
		if !yield(p.key, p.value) {
			return
		}
	}
}
