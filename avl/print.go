// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Fprint - display an ASCII graphic representation of the tree
// rotated a quarter turn anticlockwise, returns the depth printed
//
// recursion depth is the tree height, which never exceeds StackMax
func (tree *Tree[K, V]) Fprint(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[K any, V any](w io.Writer, p *Node[K, V], prefix string, br branch, printData bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		fmt.Fprintf(w, "%v → %v %+2d/%d\n", p.key, p.value, p.balanceFactor(), p.height)
	} else {
		fmt.Fprintf(w, "%v\n", p.key)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
