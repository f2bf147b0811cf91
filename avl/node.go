// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key must implement the Compare function
//
// Compare returns a positive number if the receiver is greater than
// the argument, a negative number if it is less and zero if the two
// are equal; the ordering must be a strict total order
type Item[K any] interface {
	Compare(K) int // for left/right ordering of keys
}

// Node - a node in the tree
type Node[K Item[K]] struct {
	left   *Node[K] // left sub-tree
	right  *Node[K] // right sub-tree
	key    K        // key part for ordering
	height int      // 1 for a leaf, an absent node counts as 0
}

// allocate a new leaf node
func newNode[K Item[K]](key K) *Node[K] {
	return &Node[K]{
		key:    key,
		height: 1,
	}
}

// Key - read the key from a node
func (p *Node[K]) Key() K {
	return p.key
}

// Left - left child of a node or nil
func (p *Node[K]) Left() *Node[K] {
	return p.left
}

// Right - right child of a node or nil
func (p *Node[K]) Right() *Node[K] {
	return p.right
}

// Height - height of the subtree rooted at this node
func (p *Node[K]) Height() int {
	return p.height
}

// Balance - left subtree height minus right subtree height
func (p *Node[K]) Balance() int {
	return height(p.left) - height(p.right)
}
