// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// Allocator - source and sink of tree nodes
//
// Allocate returns nil when it declines; the tree then reports
// fault.ErrAllocationFailed and is unchanged.  Free receives a node
// that is no longer reachable from any tree.  The receiver is the
// allocator's own context.
type Allocator[K any, V any] interface {
	Allocate() *Node[K, V]
	Free(node *Node[K, V])
}

// HeapAllocator - every node comes from the Go heap
type HeapAllocator[K any, V any] struct{}

// Allocate - a new zero node
func (HeapAllocator[K, V]) Allocate() *Node[K, V] {
	return new(Node[K, V])
}

// Free - nothing to do, the garbage collector reclaims the node
func (HeapAllocator[K, V]) Free(*Node[K, V]) {}

// Pool - recycles reclaimed nodes through a free list
//
// a pool may be shared by several trees, even from different
// goroutines, since the free list is locked
type Pool[K any, V any] struct {
	sync.Mutex
	free      *Node[K, V] // linked through the right pointer
	limit     int         // maximum live nodes, zero for no limit
	total     int         // nodes ever created
	available int         // nodes on the free list
}

// NewPool - create a pool that hands out at most limit live nodes at a
// time; zero means no limit
func NewPool[K any, V any](limit int) *Pool[K, V] {
	if limit < 0 {
		limit = 0
	}
	return &Pool[K, V]{
		limit: limit,
	}
}

// Preallocate - fill the free list so that n further nodes can be
// allocated without touching the heap, returns the number created
func (pool *Pool[K, V]) Preallocate(n int) int {
	pool.Lock()
	defer pool.Unlock()

	created := 0
	for ; created < n; created += 1 {
		if 0 != pool.limit && pool.total >= pool.limit {
			break
		}
		p := new(Node[K, V])
		p.right = pool.free
		pool.free = p
		pool.total += 1
		pool.available += 1
	}
	return created
}

// Allocate - a zero node, reusing reclaimed nodes if any are available
func (pool *Pool[K, V]) Allocate() *Node[K, V] {
	pool.Lock()
	defer pool.Unlock()

	if nil == pool.free {
		if 0 != pool.available {
			panic("pool corrupt")
		}
		if 0 != pool.limit && pool.total >= pool.limit {
			return nil
		}
		pool.total += 1
		return new(Node[K, V])
	}
	p := pool.free
	pool.free = p.right
	p.right = nil // ensure freelist pointer is cleared
	pool.available -= 1
	return p
}

// Free - reclaim a node and keep it in the pool
func (pool *Pool[K, V]) Free(node *Node[K, V]) {
	if nil == node {
		return
	}
	pool.Lock()
	defer pool.Unlock()

	*node = Node[K, V]{}
	node.right = pool.free // use as free list pointer
	pool.free = node
	pool.available += 1
}

// Total - nodes created by this pool
func (pool *Pool[K, V]) Total() int {
	pool.Lock()
	defer pool.Unlock()
	return pool.total
}

// Available - nodes waiting on the free list
func (pool *Pool[K, V]) Available() int {
	pool.Lock()
	defer pool.Unlock()
	return pool.available
}

// Live - nodes currently handed out
func (pool *Pool[K, V]) Live() int {
	pool.Lock()
	defer pool.Unlock()
	return pool.total - pool.available
}
