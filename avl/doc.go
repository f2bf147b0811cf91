// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced binary search tree holding a set of
// ordered keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node records the height of its own subtree; after every insert
// or delete the heights along the search path are refreshed and any
// node whose subtree heights differ by more than one is rotated back
// into balance.
//
// Keys are unique: inserting a key that is already present leaves the
// tree completely unchanged, it does not overwrite.  Searches return
// copies of the stored keys, never the internal nodes; read-only
// structural access for display routines is through the Root node and
// its accessor methods.
package avl
