// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltool - exercise the AVL tree from the command line
//
// every command builds a tree of "count" distinct keys inserted in a
// random order derived from "seed", then walks, searches or drains it.
//
//	avltool --config-file=avltool.conf check
//	avltool --config-file=avltool.conf upper 100
//	avltool --verbose --config-file=avltool.conf print
package main
