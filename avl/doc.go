// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree driven by an explicit bounded
// stack instead of recursion
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Every walk that must be rewound (insert, delete, delete min/max)
// records its path on a caller supplied Stack, then rewinds that path
// bottom-up fixing cached heights and rotating where the balance
// factor reaches ±2.  The same Stack doubles as a resumable cursor for
// ordered traversal, so no operation grows the goroutine stack with
// the size of the tree and no hot path allocates.
//
// The Stack capacity is fixed at StackMax entries, one per bit of a
// machine word.  An AVL tree that fits in memory can never be that
// tall, so running out of capacity means the tree is corrupt; the
// operation is refused and the tree is left as it was.
//
// Keys are unique: inserting an existing key is refused rather than
// overwriting the stored value.  Nodes are obtained from and returned
// to a pluggable Allocator so the memory strategy (heap, shared pool)
// is the caller's choice.
package avl
