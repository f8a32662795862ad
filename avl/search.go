// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not present
func (tree *Tree[K, V]) Search(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch {
		case tree.less(key, p.key): // key < p.key
			p = p.left
		case tree.less(p.key, key): // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
