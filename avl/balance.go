// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly absent subtree
func height[K Item[K]](p *Node[K]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// balance factor of a possibly absent subtree
func balanceFactor[K Item[K]](p *Node[K]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// refresh the stored height from the children
// the children must already have correct heights
func (p *Node[K]) updateHeight() {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// rotate right: promote the left child
//
//	    y            x
//	   / \          / \
//	  x   c   →    a   y
//	 / \              / \
//	a   b            b   c
func rotateRight[K Item[K]](y *Node[K]) *Node[K] {
	x := y.left
	y.left = x.right
	y.updateHeight()
	x.right = y
	x.updateHeight()
	return x
}

// rotate left: promote the right child, mirror of rotateRight
func rotateLeft[K Item[K]](x *Node[K]) *Node[K] {
	y := x.right
	x.right = y.left
	x.updateHeight()
	y.left = x
	y.updateHeight()
	return y
}

// rebalance - re-establish the height invariant at p after an edit
// below it, returning the possibly new subtree root
//
// four cases: LL LR RR RL
func rebalance[K Item[K]](p *Node[K]) *Node[K] {
	if nil == p {
		return nil
	}
	p.updateHeight()

	bf := balanceFactor(p)
	switch {
	case bf > 1 && balanceFactor(p.left) >= 0:
		// single LL rotation
		return rotateRight(p)

	case bf > 1:
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p)

	case bf < -1 && balanceFactor(p.right) <= 0:
		// single RR rotation
		return rotateLeft(p)

	case bf < -1:
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p)
	}
	return p
}
