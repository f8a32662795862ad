// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math/bits"

	"github.com/bitmark-inc/pubavl/fault"
)

// StackMax - capacity of a Stack: one entry per bit of a machine word
//
// an AVL tree of height h holds at least Fib(h+2)-1 nodes, so no tree
// that fits in the address space can need a longer path
const StackMax = bits.UintSize

// Stack - fixed capacity path recorder and traversal cursor
//
// the stack only borrows nodes, it never owns them.  Create one per
// goroutine and reuse it across calls; every operation that takes a
// stack resets it first.
type Stack[K any, V any] struct {
	array [StackMax]*Node[K, V]
	size  int
	err   error // sticky cursor failure, cleared by Reset
}

// NewStack - create an empty stack
func NewStack[K any, V any]() *Stack[K, V] {
	return new(Stack[K, V]).Init()
}

// Init - clear every slot and the length
func (stack *Stack[K, V]) Init() *Stack[K, V] {
	stack.array = [StackMax]*Node[K, V]{}
	stack.size = 0
	stack.err = nil
	return stack
}

// Reset - clear the occupied slots for reuse
func (stack *Stack[K, V]) Reset() *Stack[K, V] {
	stack.truncate(0)
	stack.err = nil
	return stack
}

// Len - number of entries currently held
func (stack *Stack[K, V]) Len() int {
	return stack.size
}

// Cap - the fixed capacity
func (stack *Stack[K, V]) Cap() int {
	return StackMax
}

// Push - add a node to the top, false if the stack is full
func (stack *Stack[K, V]) Push(node *Node[K, V]) bool {
	if StackMax == stack.size {
		return false
	}
	stack.array[stack.size] = node
	stack.size += 1
	return true
}

// Pop - remove and return the top node, nil if empty
func (stack *Stack[K, V]) Pop() *Node[K, V] {
	if 0 == stack.size {
		return nil
	}
	stack.size -= 1
	node := stack.array[stack.size]
	stack.array[stack.size] = nil
	return node
}

// Peek - the top node without removing it, nil if empty
func (stack *Stack[K, V]) Peek() *Node[K, V] {
	if 0 == stack.size {
		return nil
	}
	return stack.array[stack.size-1]
}

// Err - the failure that ended the last cursor walk, if any
//
// a cursor that simply runs out of nodes is not a failure
func (stack *Stack[K, V]) Err() error {
	return stack.err
}

// drop entries above n
func (stack *Stack[K, V]) truncate(n int) {
	for i := n; i < stack.size; i += 1 {
		stack.array[i] = nil
	}
	stack.size = n
}

// record a failure for Err and discard the contents
func (stack *Stack[K, V]) fail() error {
	stack.truncate(0)
	stack.err = fault.ErrStackCapacityExceeded
	return stack.err
}
