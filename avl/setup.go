// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree[K Item[K]] struct {
	root  *Node[K]
	count int
}

// New - create an initially empty tree
func New[K Item[K]]() *Tree[K] {
	return &Tree[K]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no keys
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of keys currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
//
// the returned node and its children are for read-only walks such as
// display routines; modifying the tree invalidates them
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}
