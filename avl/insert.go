// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a new key to the tree
// returns true if the key was added, false if it was already present
// in which case the tree is left completely unchanged
func (tree *Tree[K]) Insert(key K) bool {
	root, added := insert(key, tree.root)
	tree.root = root
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
func insert[K Item[K]](key K, p *Node[K]) (*Node[K], bool) {
	if nil == p { // insert new leaf
		return newNode(key), true
	}
	added := false
	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		p.left, added = insert(key, p.left)
	case c < 0: // p.key < key
		p.right, added = insert(key, p.right)
	default: // key already present
		return p, false
	}
	return rebalance(p), added
}
