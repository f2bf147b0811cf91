// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if a specific key is in the tree
func (tree *Tree[K]) Contains(key K) bool {
	return nil != search(key, tree.root)
}

// Get - fetch a copy of the stored key that compares equal to key
// the second result is false when the key is not in the tree
func (tree *Tree[K]) Get(key K) (K, bool) {
	if p := search(key, tree.root); nil != p {
		return p.key, true
	}
	var zero K
	return zero, false
}

// First - a copy of the lowest key in the tree
// the second result is false when the tree is empty
func (tree *Tree[K]) First() (K, bool) {
	if nil == tree.root {
		var zero K
		return zero, false
	}
	return tree.root.first().key, true
}

// Last - a copy of the highest key in the tree
// the second result is false when the tree is empty
func (tree *Tree[K]) Last() (K, bool) {
	if nil == tree.root {
		var zero K
		return zero, false
	}
	return tree.root.last().key, true
}

// internal: lowest node in a sub-tree
func (p *Node[K]) first() *Node[K] {
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[K]) last() *Node[K] {
	for nil != p.right {
		p = p.right
	}
	return p
}

// internal: find a specific key
func search[K Item[K]](key K, p *Node[K]) *Node[K] {
	if nil == p {
		return nil
	}

	c := p.key.Compare(key)
	switch {
	case c > 0: // p.key > key
		return search(key, p.left)
	case c < 0: // p.key < key
		return search(key, p.right)
	default:
		return p
	}
}
