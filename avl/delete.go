// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove a specific key from the tree
// returns true if the key was present, false leaves the tree unchanged
func (tree *Tree[K]) Delete(key K) bool {
	root, removed := remove(key, tree.root)
	tree.root = root
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
//
// a node with two children is not unlinked: its key is overwritten
// with the inorder successor key and the successor node is deleted
// from the right subtree instead
func remove[K Item[K]](key K, p *Node[K]) (*Node[K], bool) {
	if nil == p { // key not in tree
		return nil, false
	}
	removed := false
	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		p.left, removed = remove(key, p.left)
	case c < 0: // p.key < key
		p.right, removed = remove(key, p.right)
	default: // found: delete p
		if nil == p.left {
			return p.right, true
		}
		if nil == p.right {
			return p.left, true
		}
		s := p.right.first() // inorder successor
		p.key = s.key
		p.right, _ = remove(s.key, p.right)
		removed = true
	}
	return rebalance(p), removed
}
