// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/pubavl/fault"
)

// Insert - add a new node to the tree unless the key already exists
//
// returns the new node; on any error the tree is unchanged:
//
//	fault.ErrKeyExists             key is already present (value not replaced)
//	fault.ErrAllocationFailed      the allocator declined
//	fault.ErrStackCapacityExceeded the search path is too long
func (tree *Tree[K, V]) Insert(stack *Stack[K, V], key K, value V) (*Node[K, V], error) {
	stack.Reset()

	if nil == tree.root {
		p := tree.newNode(key, value)
		if nil == p {
			return nil, fault.ErrAllocationFailed
		}
		tree.root = p
		tree.count += 1
		return p, nil
	}

	slot, err := tree.insertSearch(stack, key)
	if nil != err {
		stack.Reset()
		return nil, err
	}

	p := tree.newNode(key, value)
	if nil == p {
		stack.Reset()
		return nil, fault.ErrAllocationFailed
	}
	*slot = p

	// the parent of the new leaf is on top
	top := stack.Pop()
	tree.root = rebalancePath(stack, stack.Len(), top)
	tree.count += 1
	return p, nil
}

// locate the empty child slot where key belongs, recording every
// ancestor on the stack; nothing in the tree is modified
func (tree *Tree[K, V]) insertSearch(stack *Stack[K, V], key K) (**Node[K, V], error) {
	p := tree.root
	for {
		switch {
		case tree.less(key, p.key): // key < p.key
			if !stack.Push(p) {
				return nil, fault.ErrStackCapacityExceeded
			}
			if nil == p.left {
				return &p.left, nil
			}
			p = p.left
		case tree.less(p.key, key): // p.key < key
			if !stack.Push(p) {
				return nil, fault.ErrStackCapacityExceeded
			}
			if nil == p.right {
				return &p.right, nil
			}
			p = p.right
		default:
			return nil, fault.ErrKeyExists
		}
	}
}
