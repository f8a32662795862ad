// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Traverse - set up the stack as an ascending cursor over the whole
// tree; advance it with Next
func (tree *Tree[K, V]) Traverse(stack *Stack[K, V]) error {
	stack.Reset()
	for p := tree.root; nil != p; p = p.left {
		if !stack.Push(p) {
			return stack.fail()
		}
	}
	return nil
}

// Reversed - set up the stack as a descending cursor over the whole
// tree; advance it with Prior
func (tree *Tree[K, V]) Reversed(stack *Stack[K, V]) error {
	stack.Reset()
	for p := tree.root; nil != p; p = p.right {
		if !stack.Push(p) {
			return stack.fail()
		}
	}
	return nil
}

// Upper - set up the stack as an ascending cursor starting at the
// first key equal to or greater than key; advance it with Next
func (tree *Tree[K, V]) Upper(stack *Stack[K, V], key K) error {
	stack.Reset()
	p := tree.root
	for nil != p {
		switch {
		case tree.less(key, p.key): // p is a candidate, look for a lower one
			if !stack.Push(p) {
				return stack.fail()
			}
			p = p.left
		case tree.less(p.key, key): // p and its left sub-tree are too low
			p = p.right
		default:
			if !stack.Push(p) {
				return stack.fail()
			}
			return nil
		}
	}
	return nil
}

// Lower - set up the stack as a descending cursor starting at the
// last key equal to or less than key; advance it with Prior
func (tree *Tree[K, V]) Lower(stack *Stack[K, V], key K) error {
	stack.Reset()
	p := tree.root
	for nil != p {
		switch {
		case tree.less(key, p.key): // p and its right sub-tree are too high
			p = p.left
		case tree.less(p.key, key): // p is a candidate, look for a higher one
			if !stack.Push(p) {
				return stack.fail()
			}
			p = p.right
		default:
			if !stack.Push(p) {
				return stack.fail()
			}
			return nil
		}
	}
	return nil
}

// Next - advance an ascending cursor
//
// returns the next node in key order, or false when the cursor is
// exhausted or has failed (see Err).  Only valid on a cursor created
// by Traverse or Upper.
func (stack *Stack[K, V]) Next() (*Node[K, V], bool) {
	p := stack.Pop()
	if nil == p {
		return nil, false
	}
	for n := p.right; nil != n; n = n.left {
		if !stack.Push(n) {
			stack.fail()
			return nil, false
		}
	}
	return p, true
}

// Prior - advance a descending cursor
//
// returns the previous node in key order, or false when the cursor is
// exhausted or has failed (see Err).  Only valid on a cursor created
// by Reversed or Lower.
func (stack *Stack[K, V]) Prior() (*Node[K, V], bool) {
	p := stack.Pop()
	if nil == p {
		return nil, false
	}
	for n := p.left; nil != n; n = n.right {
		if !stack.Push(n) {
			stack.fail()
			return nil, false
		}
	}
	return p, true
}
