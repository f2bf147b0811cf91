// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/treedraw/avl"
)

type intItem int

func (i intItem) Compare(j intItem) int {
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// structural snapshot of a tree: "(key left right)" per node
func shape(p *avl.Node[intItem]) string {
	if nil == p {
		return "."
	}
	return fmt.Sprintf("(%d %s %s)", p.Key(), shape(p.Left()), shape(p.Right()))
}

// inserting an ascending run must trigger a single left rotation at
// the third key
func TestSingleLeftRotation(t *testing.T) {
	tree := avl.New[intItem]()
	tree.Insert(10)
	tree.Insert(20)
	tree.Insert(30)

	root := tree.Root()
	require.NotNil(t, root)
	require.EqualValues(t, 20, root.Key())
	require.NotNil(t, root.Left())
	require.NotNil(t, root.Right())
	assert.EqualValues(t, 10, root.Left().Key())
	assert.EqualValues(t, 30, root.Right().Key())

	assert.Equal(t, 0, root.Balance())
	assert.Equal(t, 0, root.Left().Balance())
	assert.Equal(t, 0, root.Right().Balance())
	assert.Equal(t, 2, tree.Height())
	assert.Equal(t, 3, tree.Count())
	assert.True(t, tree.CheckInvariants())
}

// the classic demonstration sequence ends with a double RL rotation
// at the root
func TestDoubleRotationShape(t *testing.T) {
	tree := avl.New[intItem]()
	for _, key := range []intItem{10, 20, 30, 40, 50, 25} {
		tree.Insert(key)
	}

	require.True(t, tree.CheckInvariants())
	assert.Equal(t, "(30 (20 (10 . .) (25 . .)) (40 . (50 . .)))", shape(tree.Root()))
	assert.Equal(t, 3, tree.Height())
}

func TestDeleteNodeWithTwoChildren(t *testing.T) {
	tree := avl.New[intItem]()
	for _, key := range []intItem{10, 20, 30, 40, 50, 25} {
		tree.Insert(key)
	}

	require.True(t, tree.Delete(30))
	require.True(t, tree.CheckInvariants())

	// 30 had two children, so its key is replaced by the inorder
	// successor 40 and the successor node is unlinked
	assert.Equal(t, "(40 (20 (10 . .) (25 . .)) (50 . .))", shape(tree.Root()))
	assert.Equal(t, 5, tree.Count())
	assert.False(t, tree.Contains(30))

	expected := []intItem{10, 20, 25, 40, 50}
	actual := []intItem{}
	tree.Inorder(func(key intItem) {
		actual = append(actual, key)
	})
	assert.Equal(t, expected, actual)
}

func TestInsertDuplicate(t *testing.T) {
	tree := avl.New[intItem]()
	for _, key := range []intItem{50, 30, 70, 20, 40, 60, 80} {
		require.True(t, tree.Insert(key))
	}

	before := shape(tree.Root())
	for _, key := range []intItem{50, 20, 80, 40} {
		assert.False(t, tree.Insert(key))
	}

	assert.Equal(t, before, shape(tree.Root()))
	assert.Equal(t, 7, tree.Count())
	assert.True(t, tree.CheckInvariants())
}

func TestDeleteAbsent(t *testing.T) {
	tree := avl.New[intItem]()
	for _, key := range []intItem{50, 30, 70} {
		tree.Insert(key)
	}

	before := shape(tree.Root())
	assert.False(t, tree.Delete(99))
	assert.False(t, tree.Delete(31))
	assert.Equal(t, before, shape(tree.Root()))
	assert.Equal(t, 3, tree.Count())

	empty := avl.New[intItem]()
	assert.False(t, empty.Delete(1))
	assert.True(t, empty.IsEmpty())
}

func TestContains(t *testing.T) {
	tree := avl.New[intItem]()
	tree.Insert(10)
	tree.Insert(20)
	tree.Insert(30)
	tree.Delete(20)

	assert.True(t, tree.Contains(10))
	assert.False(t, tree.Contains(20))
	assert.True(t, tree.Contains(30))
	assert.False(t, tree.Contains(35))
}

func TestFirstLast(t *testing.T) {
	tree := avl.New[intItem]()

	_, ok := tree.First()
	assert.False(t, ok)
	_, ok = tree.Last()
	assert.False(t, ok)

	for _, key := range []intItem{42, 7, 99, 13, 64} {
		tree.Insert(key)
	}

	first, ok := tree.First()
	require.True(t, ok)
	assert.EqualValues(t, 7, first)

	last, ok := tree.Last()
	require.True(t, ok)
	assert.EqualValues(t, 99, last)
}

// a key whose ordering ignores part of its content, to show that Get
// returns a copy of the stored key rather than the probe
type rankItem struct {
	rank int
	name string
}

func (r rankItem) Compare(s rankItem) int {
	return r.rank - s.rank
}

func TestGetReturnsStoredKey(t *testing.T) {
	tree := avl.New[rankItem]()
	tree.Insert(rankItem{rank: 1, name: "first"})
	tree.Insert(rankItem{rank: 2, name: "second"})

	stored, ok := tree.Get(rankItem{rank: 1})
	require.True(t, ok)
	assert.Equal(t, "first", stored.name)

	_, ok = tree.Get(rankItem{rank: 3})
	assert.False(t, ok)

	// an equal insert is a no-op, not a replacement
	assert.False(t, tree.Insert(rankItem{rank: 2, name: "other"}))
	stored, ok = tree.Get(rankItem{rank: 2})
	require.True(t, ok)
	assert.Equal(t, "second", stored.name)
}

// a key whose Compare returns arbitrary magnitudes, as the Item
// contract allows: only the sign is significant
type diffItem int

func (i diffItem) Compare(j diffItem) int {
	return int(i) - int(j)
}

func TestCompareSignOnly(t *testing.T) {
	tree := avl.New[diffItem]()
	for _, key := range []diffItem{500, 100, 900, 300, 700} {
		require.True(t, tree.Insert(key))
	}

	require.True(t, tree.CheckInvariants())
	assert.Equal(t, 5, tree.Count())

	// distinct keys must never be mistaken for duplicates
	assert.False(t, tree.Contains(3))
	assert.False(t, tree.Contains(200))
	assert.True(t, tree.Contains(300))
	_, ok := tree.Get(101)
	assert.False(t, ok)

	assert.False(t, tree.Insert(700))
	assert.Equal(t, 5, tree.Count())

	assert.False(t, tree.Delete(800))
	require.True(t, tree.Delete(500))
	require.True(t, tree.CheckInvariants())

	expected := []diffItem{100, 300, 700, 900}
	actual := []diffItem{}
	tree.Inorder(func(key diffItem) {
		actual = append(actual, key)
	})
	assert.Equal(t, expected, actual)
}

func TestListShort(t *testing.T) {
	addList := []intItem{
		4201, 1254, 8608, 1639, 8950,
		6740,
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []intItem{
		8133, 2136, 9651, 4079, 1042,
		3579, 3630, 1427, 5843, 9549,
		5433, 1274, 9034, 4724, 6179,
		5072, 9272, 4030, 4205, 3363,
		8582, 1720, 506, 8382, 6774,
		3088, 2329, 9039, 6703, 1027,
		7297, 6063, 4156, 1005, 982,
		3065, 2553, 795, 8426, 2377,
		877, 9085, 5918, 2581, 7797,
		3028, 5880, 3061, 5212, 6539,
		1320, 3581, 3334, 4348, 2934,
		8342, 8814, 8736, 1353, 3082,
		9620, 56, 5063, 1245, 7066,
		7435, 2999, 7803, 1303, 1697,
		17, 4314, 9926, 7587, 2531,
		8123, 5693, 7495, 9975, 5465,
		4342, 7958, 7138, 9382, 672,
		5402, 204, 2397, 2712, 938,
		9610, 3611, 2140, 4289, 9271,
		4786, 4145, 1066, 4366, 6716,
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// insert the whole list then delete progressively longer prefixes,
// checking the tree invariants at every step
func doList(t *testing.T, addList []intItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[intItem]struct{})

		tree := avl.New[intItem]()
		for _, key := range addList {
			tree.Insert(key)
		}

		if !tree.CheckInvariants() {
			t.Fatal("add: inconsistent tree")
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Delete(key) {
				t.Fatalf("delete missed key: %d", key)
			}
			if !tree.CheckInvariants() {
				t.Fatal("delete: inconsistent tree")
			}
			if tree.Contains(key) {
				t.Fatalf("delete left key: %d", key)
			}
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Delete(key) {
				t.Fatalf("delete missed key: %d", key)
			}
		}
		if !tree.IsEmpty() {
			t.Fatal("remainder: remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// the inorder walk must visit the sorted distinct keys exactly once
func doTraverse(t *testing.T, addList []intItem) {

	unique := make(map[intItem]struct{})
	tree := avl.New[intItem]()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key)
	}

	expected := make([]intItem, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Slice(expected, func(i int, j int) bool {
		return expected[i] < expected[j]
	})

	n := 0
	tree.Inorder(func(key intItem) {
		if n >= len(expected) {
			t.Fatalf("too many keys: %d", n+1)
		}
		if key != expected[n] {
			t.Fatalf("inorder key: actual: %d  expected: %d", key, expected[n])
		}
		n += 1
	})

	if n != len(expected) {
		t.Fatalf("key count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}
}

func makeKey() intItem {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return intItem(n % 10000)
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New[intItem]()
	d := make([]intItem, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key)
	}

	if !tree.CheckInvariants() {
		t.Fatal("inconsistent tree")
	}

	for _, key := range d {
		tree.Delete(key)
		if !tree.CheckInvariants() {
			t.Fatal("inconsistent tree")
		}
	}

	// add back a test key and check it is searchable
	testKey := intItem(500)
	tree.Insert(testKey)

	if !tree.Contains(testKey) {
		t.Fatalf("could not find test key: %d", testKey)
	}

	// delete the test key and check it is really gone
	if !tree.Delete(testKey) {
		t.Fatalf("could not delete test key: %d", testKey)
	}
	if tree.Contains(testKey) {
		t.Fatalf("test key not deleted: %d", testKey)
	}
	if !tree.CheckInvariants() {
		t.Fatal("inconsistent tree")
	}
}

// sequential inserts must stay within the AVL height bound
func TestHeightBound(t *testing.T) {
	tree := avl.New[intItem]()
	for i := 1; i <= 1024; i += 1 {
		tree.Insert(intItem(i))
		if !tree.CheckInvariants() {
			t.Fatalf("inconsistent tree after insert: %d", i)
		}
	}

	assert.Equal(t, 1024, tree.Count())
	// worst case AVL height for 1024 keys is 14
	assert.LessOrEqual(t, tree.Height(), 14)
}
