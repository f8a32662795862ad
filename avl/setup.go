// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/pubavl/fault"
)

// LessFunc - strict less-than over keys
//
// keys a and b are equal when neither less(a, b) nor less(b, a); the
// function must be a strict total order over the keys in use
type LessFunc[K any] func(a K, b K) bool

// Tree - type to hold the root node of a tree
type Tree[K any, V any] struct {
	root      *Node[K, V]
	count     int
	less      LessFunc[K]
	allocator Allocator[K, V]
}

// New - create an initially empty tree
//
// a nil allocator selects the Go heap
func New[K any, V any](less LessFunc[K], allocator Allocator[K, V]) *Tree[K, V] {
	if nil == less {
		fault.Panicf("avl: New: nil comparator")
	}
	if nil == allocator {
		allocator = HeapAllocator[K, V]{}
	}
	return &Tree[K, V]{
		root:      nil,
		count:     0,
		less:      less,
		allocator: allocator,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Depth - height of the whole tree, zero when empty
func (tree *Tree[K, V]) Depth() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// obtain an initialised leaf from the allocator
func (tree *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	p := tree.allocator.Allocate()
	if nil == p {
		return nil
	}
	return p.init(key, value)
}

// detach a node's links and hand it back to the allocator
func (tree *Tree[K, V]) freeNode(p *Node[K, V]) {
	p.left = nil
	p.right = nil
	tree.allocator.Free(p)
}

// FreeAll - return every node to the allocator in ascending order and
// leave the tree empty
func (tree *Tree[K, V]) FreeAll(stack *Stack[K, V]) error {
	if err := tree.Traverse(stack); nil != err {
		return err
	}
	for {
		p, ok := stack.Next()
		if !ok {
			break
		}
		// Next has already pushed the right sub-tree
		tree.freeNode(p)
		tree.count -= 1
	}
	if err := stack.Err(); nil != err {
		// a cursor never holds more than one root path, so this
		// needs a tree taller than StackMax
		fault.Panicf("avl: FreeAll: %s after %d nodes remain", err, tree.count)
	}
	tree.root = nil
	tree.count = 0
	return nil
}
