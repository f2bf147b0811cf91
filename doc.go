// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package treedraw - display an ASCII graphic representation of any
// binary tree
//
// The layout engine knows nothing about the tree it draws: it is
// given three accessor functions (label of a node, left child, right
// child) over an opaque node handle type and recursively computes a
// horizontal offset pair for every line of every subtree, joining the
// line lists so that sibling subtrees never overlap and each parent
// label sits centred over its branch glyphs.
//
// Branch glyphs are either diagonal (/ and \) or square (+--+ box
// drawing); with a single child a neutral vertical bar can be drawn
// instead of a directional branch.  The finished diagram is padded
// into an exact rectangle and written line by line to any io.Writer.
//
// Drawing never modifies the tree being visited.
package treedraw
