// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckInvariants - verify stored heights, balance and key ordering
// for every node; failures indicate an internal bug, not a user error
func (tree *Tree[K]) CheckInvariants() bool {
	if _, ok := checkHeights(tree.root); !ok {
		return false
	}
	return tree.checkOrder()
}

// internal: heights and balance consistency checker
func checkHeights[K Item[K]](p *Node[K]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		fmt.Printf("fail at node: %v   stored height: %d  actual: %d\n", p.key, p.height, h)
		return 0, false
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		fmt.Printf("fail at node: %v   out of balance: %d\n", p.key, bf)
		return 0, false
	}
	return h, true
}

// internal: strict ascending order and count consistency checker
func (tree *Tree[K]) checkOrder() bool {
	n := 0
	ordered := true
	var prev K
	tree.Inorder(func(key K) {
		if n > 0 && prev.Compare(key) >= 0 {
			fmt.Printf("fail at key: %v   not greater than: %v\n", key, prev)
			ordered = false
		}
		prev = key
		n += 1
	})
	if n != tree.count {
		fmt.Printf("fail count: actual: %d  expected: %d\n", n, tree.count)
		return false
	}
	return ordered
}
