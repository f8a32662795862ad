// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckBalance - verify the cached height and balance factor of every
// node
//
// each node is checked against its children's cached heights, which
// taken over the whole tree proves every cached height correct
func (tree *Tree[K, V]) CheckBalance(stack *Stack[K, V]) error {
	if err := tree.Traverse(stack); nil != err {
		return err
	}
	for p, ok := stack.Next(); ok; p, ok = stack.Next() {
		hl := 0
		if nil != p.left {
			hl = p.left.height
		}
		hr := 0
		if nil != p.right {
			hr = p.right.height
		}
		expected := 1 + hl
		if hr > hl {
			expected = 1 + hr
		}
		if p.height != expected {
			return fmt.Errorf("node: %v  height: %d  expected: %d", p.key, p.height, expected)
		}
		if b := hr - hl; b < -1 || b > 1 {
			return fmt.Errorf("node: %v  balance: %+d", p.key, b)
		}
	}
	return stack.Err()
}

// CheckOrder - verify that an ascending walk yields strictly increasing
// keys and visits exactly Count() nodes
func (tree *Tree[K, V]) CheckOrder(stack *Stack[K, V]) error {
	if err := tree.Traverse(stack); nil != err {
		return err
	}
	n := 0
	var previous *Node[K, V]
	for p, ok := stack.Next(); ok; p, ok = stack.Next() {
		if nil != previous && !tree.less(previous.key, p.key) {
			return fmt.Errorf("node: %v  follows: %v", p.key, previous.key)
		}
		previous = p
		n += 1
	}
	if err := stack.Err(); nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("visited: %d  count: %d", n, tree.count)
	}
	return nil
}
