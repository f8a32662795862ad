// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/pubavl/fault"
)

// Delete - removes a specific item from the tree
//
// returns the stored key and value, the node goes back to the
// allocator.  On any error the tree is unchanged:
//
//	fault.ErrKeyNotFound           key is not present
//	fault.ErrStackCapacityExceeded the search path is too long
func (tree *Tree[K, V]) Delete(stack *Stack[K, V], key K) (K, V, error) {
	stack.Reset()

	slot, p, err := tree.deleteSearch(stack, key)
	if nil != err {
		stack.Reset()
		return zero[K, V](err)
	}

	subTree, err := pluck(stack, p)
	if nil != err {
		stack.Reset()
		return zero[K, V](err)
	}

	*slot = subTree
	if 0 != stack.Len() {
		top := stack.Pop()
		tree.root = rebalancePath(stack, stack.Len(), top)
	}
	return tree.release(p)
}

// DeleteMin - removes the item with the lowest key
func (tree *Tree[K, V]) DeleteMin(stack *Stack[K, V]) (K, V, error) {
	stack.Reset()

	if nil == tree.root {
		return zero[K, V](fault.ErrKeyNotFound)
	}
	p, subTree, err := pluckMin(stack, tree.root)
	if nil != err {
		stack.Reset()
		return zero[K, V](err)
	}
	tree.root = subTree
	return tree.release(p)
}

// DeleteMax - removes the item with the highest key
func (tree *Tree[K, V]) DeleteMax(stack *Stack[K, V]) (K, V, error) {
	stack.Reset()

	if nil == tree.root {
		return zero[K, V](fault.ErrKeyNotFound)
	}
	p, subTree, err := pluckMax(stack, tree.root)
	if nil != err {
		stack.Reset()
		return zero[K, V](err)
	}
	tree.root = subTree
	return tree.release(p)
}

// find the node holding key and the slot that points at it, recording
// every ancestor on the stack; nothing in the tree is modified
func (tree *Tree[K, V]) deleteSearch(stack *Stack[K, V], key K) (**Node[K, V], *Node[K, V], error) {
	slot := &tree.root
	p := tree.root
	for nil != p {
		switch {
		case tree.less(key, p.key): // key < p.key
			if !stack.Push(p) {
				return nil, nil, fault.ErrStackCapacityExceeded
			}
			slot = &p.left
			p = p.left
		case tree.less(p.key, key): // p.key < key
			if !stack.Push(p) {
				return nil, nil, fault.ErrStackCapacityExceeded
			}
			slot = &p.right
			p = p.right
		default:
			return slot, p, nil
		}
	}
	return nil, nil, fault.ErrKeyNotFound
}

// splice p out of its sub-tree and return the balanced replacement
//
// for two children the in-order successor is detached from the right
// sub-tree, using the stack above its current contents, and promoted
// into p's place
func pluck[K any, V any](stack *Stack[K, V], p *Node[K, V]) (*Node[K, V], error) {
	if nil == p.left {
		return p.right, nil
	}
	if nil == p.right {
		return p.left, nil
	}
	successor, right, err := pluckMin(stack, p.right)
	if nil != err {
		return nil, err
	}
	successor.left = p.left
	successor.right = right
	return successor.updateHeight().rebalance(), nil
}

// detach the lowest node of the sub-tree rooted at p
//
// ancestors are pushed above the existing stack contents and rewound
// before returning, so an outer path is left intact.  Returns the
// detached node and the rebalanced sub-tree without it; on failure
// nothing has been modified
func pluckMin[K any, V any](stack *Stack[K, V], p *Node[K, V]) (*Node[K, V], *Node[K, V], error) {
	saved := stack.Len()
	for nil != p.left {
		if !stack.Push(p) {
			stack.truncate(saved)
			return nil, nil, fault.ErrStackCapacityExceeded
		}
		p = p.left
	}
	if saved == stack.Len() {
		return p, p.right, nil
	}
	parent := stack.Pop()
	parent.left = p.right
	return p, rebalancePath(stack, stack.Len()-saved, parent), nil
}

// detach the highest node of the sub-tree rooted at p
func pluckMax[K any, V any](stack *Stack[K, V], p *Node[K, V]) (*Node[K, V], *Node[K, V], error) {
	saved := stack.Len()
	for nil != p.right {
		if !stack.Push(p) {
			stack.truncate(saved)
			return nil, nil, fault.ErrStackCapacityExceeded
		}
		p = p.right
	}
	if saved == stack.Len() {
		return p, p.left, nil
	}
	parent := stack.Pop()
	parent.right = p.left
	return p, rebalancePath(stack, stack.Len()-saved, parent), nil
}

// copy out the payload, then hand the node to the allocator
func (tree *Tree[K, V]) release(p *Node[K, V]) (K, V, error) {
	key := p.key
	value := p.value
	tree.count -= 1
	tree.freeNode(p)
	return key, value, nil
}

func zero[K any, V any](err error) (K, V, error) {
	var key K
	var value V
	return key, value, err
}
