// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Inorder - call fn once for every key in strictly ascending order
//
// the walk is depth-first left-root-right and must not mutate the
// tree from inside the callback
func (tree *Tree[K]) Inorder(fn func(K)) {
	tree.root.inorder(fn)
}

// internal: recursive walk
func (p *Node[K]) inorder(fn func(K)) {
	if nil == p {
		return
	}
	p.left.inorder(fn)
	fn(p.key)
	p.right.inorder(fn)
}
