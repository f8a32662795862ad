// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/pubavl/fault"
)

// Node - a node in the tree
type Node[K any, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // 1 + max(height(left), height(right))
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return p.height
}

// set up a freshly allocated node as a leaf
func (p *Node[K, V]) init(key K, value V) *Node[K, V] {
	*p = Node[K, V]{
		key:    key,
		value:  value,
		height: 1,
	}
	return p
}

// cached height, zero for an empty sub-tree
func height[K any, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	if p.height < 1 || p.height > StackMax {
		fault.Panicf("avl: node height: %d outside [1, %d]", p.height, StackMax)
	}
	return p.height
}

// recompute the cached height from the children
func (p *Node[K, V]) updateHeight() *Node[K, V] {
	hl := height(p.left)
	hr := height(p.right)
	if hl < hr {
		p.height = 1 + hr
	} else {
		p.height = 1 + hl
	}
	return p
}

// right height minus left height
func (p *Node[K, V]) balanceFactor() int {
	return height(p.right) - height(p.left)
}

// promote the left child; returns the new sub-tree root
func (p *Node[K, V]) rotateRight() *Node[K, V] {
	x := p.left
	p.left = x.right
	x.right = p
	p.updateHeight()
	return x.updateHeight()
}

// promote the right child; returns the new sub-tree root
func (p *Node[K, V]) rotateLeft() *Node[K, V] {
	y := p.right
	p.right = y.left
	y.left = p
	p.updateHeight()
	return y.updateHeight()
}

// restore the balance of a node whose children are already balanced
// but whose own factor may have reached ±2; the height must be current
func (p *Node[K, V]) rebalance() *Node[K, V] {
	balance := p.balanceFactor()
	switch {
	case balance > 2 || balance < -2:
		fault.Panicf("avl: balance factor: %d cannot be repaired", balance)
		return p
	case balance > 1: // right heavy
		if p.right.balanceFactor() < 0 {
			// double RL rotation
			p.right = p.right.rotateRight()
		}
		return p.rotateLeft()
	case balance < -1: // left heavy
		if p.left.balanceFactor() > 0 {
			// double LR rotation
			p.left = p.left.rotateLeft()
		}
		return p.rotateRight()
	default:
		return p
	}
}

// rewind steps ancestors from the stack, re-linking each one to the
// replacement of the node below it, then fixing height and balance
//
// top is the deepest node changed; returns the new root of the
// rewound path for the caller to attach
func rebalancePath[K any, V any](stack *Stack[K, V], steps int, top *Node[K, V]) *Node[K, V] {
	if steps > stack.Len() {
		fault.Panicf("avl: rewind: %d steps with only %d recorded", steps, stack.Len())
	}
	newTop := top.updateHeight().rebalance()
	for i := 0; i < steps; i += 1 {
		next := stack.Pop()
		if next.left == top {
			next.left = newTop
		} else if next.right == top {
			next.right = newTop
		} else {
			fault.Panicf("avl: rewind: recorded ancestor is not linked to its child")
		}
		top = next
		newTop = next.updateHeight().rebalance()
	}
	return newTop
}
