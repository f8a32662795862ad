// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
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

	"github.com/bitmark-inc/pubavl/avl"
	"github.com/bitmark-inc/pubavl/fault"
)

type stringTree = avl.Tree[string, string]
type stringStack = avl.Stack[string, string]

func lessString(a string, b string) bool {
	return a < b
}

func newStringTree() (*stringTree, *stringStack) {
	return avl.New[string, string](lessString, nil), avl.NewStack[string, string]()
}

// check both structural invariants, dumping the tree on failure
func checkTree(t *testing.T, tree *stringTree, stack *stringStack, title string) {
	t.Helper()
	if err := tree.CheckBalance(stack); nil != err {
		t.Errorf("%s: unbalanced tree: %s", title, err)
		if testing.Verbose() {
			var b = &testWriter{t: t}
			depth := tree.Fprint(b, true)
			t.Logf("depth: %d", depth)
		}
		t.FailNow()
	}
	if err := tree.CheckOrder(stack); nil != err {
		t.Fatalf("%s: inconsistent tree: %s", title, err)
	}
}

type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(b []byte) (int, error) {
	w.t.Logf("%s", b)
	return len(b), nil
}

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doSearch(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doSearch(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406",
		"3137", "0251", "0486", "4202", "1844",
		"1741", "7154", "4286", "5160", "9472",
		"2998", "1935", "4758", "6478", "9572",
		"9254", "6848", "3126", "1848", "7692",
		"2791", "1504", "3469", "9701", "5077",
		"7928", "7978", "5383", "4319", "8197",
		"9227", "1166", "4216", "0866", "1791",
		"5395", "4310", "4452", "6140", "1494",
		"8859", "3394", "5507", "7295", "5408",
		"7789", "8237", "6990", "6882", "8243",
		"8894", "4352", "6727", "7019", "3126",
		"3102", "2948", "8242", "5027", "8892",
		"3492", "1323", "1101", "4526", "5177",
		"6175", "6664", "2742", "6094", "9877",
		"2534", "2105", "6588", "9982", "3696",
		"3480", "2244", "7487", "2844", "3199",
		"5829", "6952", "6915", "0905", "7615",
	}

	doList(t, addList)
	doTraverse(t, addList)
	doSearch(t, addList)
}

// insert everything then delete a growing prefix, then the remainder
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree, stack := newStringTree()
		for _, key := range addList {
			_, err := tree.Insert(stack, key, "data:"+key)
			if nil != err && !fault.IsErrExists(err) {
				t.Fatalf("insert: %q  error: %s", key, err)
			}
		}
		checkTree(t, tree, stack, "add")

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dk, dv, err := tree.Delete(stack, key)
			require.NoError(t, err, "delete: %q", key)
			assert.Equal(t, key, dk, "delete returned wrong key")
			assert.Equal(t, "data:"+key, dv, "delete returned wrong value")
		}
		checkTree(t, tree, stack, "delete")

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			_, dv, err := tree.Delete(stack, key)
			require.NoError(t, err, "delete: %q", key)
			if dv != "data:"+key {
				t.Fatalf("delete returned: %q  expected: %q", dv, "data:"+key)
			}
		}
		if !tree.IsEmpty() {
			t.Fatalf("remainder: %d remaining nodes", tree.Count())
		}
		assert.Equal(t, 0, tree.Count(), "remaining count not zero")
	}
}

// traverse the tree forwards and backwards to check the cursors
func doTraverse(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree, stack := newStringTree()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(stack, key, "data:"+key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	require.NoError(t, tree.Traverse(stack), "traverse")
	n := 0
	for p, ok := stack.Next(); ok; p, ok = stack.Next() {
		if p.Key() != expected[n] {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[n])
		}
		n += 1
	}
	require.NoError(t, stack.Err(), "next")
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	require.NoError(t, tree.Reversed(stack), "reversed")
	n = 0
	for p, ok := stack.Prior(); ok; p, ok = stack.Prior() {
		i := len(expected) - 1 - n
		if p.Key() != expected[i] {
			t.Fatalf("prior item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	// delete remainder
	for _, key := range expected {
		tree.Delete(stack, key)
	}

	if !tree.IsEmpty() {
		t.Fatalf("remainder: %d remaining nodes", tree.Count())
	}
}

// look up each item by key
func doSearch(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree, stack := newStringTree()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(stack, key, "data:"+key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if len(expected) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Count())
	}

	for index, key := range expected {
		node := tree.Search(key)
		if nil == node {
			t.Fatalf("[%d] key: %q not in tree (nil result)", index, key)
		}
		assert.Equal(t, "data:"+key, node.Value(), "[%d] wrong value", index)
	}

	assert.Equal(t, expected[0], tree.First().Key(), "wrong first")
	assert.Equal(t, expected[len(expected)-1], tree.Last().Key(), "wrong last")

	// delete even elements
	for index, key := range expected {
		if 0 == index%2 {
			tree.Delete(stack, key)
		}
	}
	checkTree(t, tree, stack, "delete even")

	for index, key := range expected {
		node := tree.Search(key)
		if 0 == index%2 {
			assert.Nil(t, node, "[%d] deleted key: %q still present", index, key)
		} else {
			assert.NotNil(t, node, "[%d] key: %q missing", index, key)
		}
	}
}

func makeKey() string {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree, stack := newStringTree()
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(stack, key, "data:"+key)
	}
	checkTree(t, tree, stack, "random add")

	for _, key := range d {
		tree.Delete(stack, key)
		if err := tree.CheckBalance(stack); nil != err {
			t.Fatalf("delete: %q  unbalanced tree: %s", key, err)
		}
	}
	checkTree(t, tree, stack, "random delete")

	// add back the test value, key is outside the generated range
	testKey := "500"
	const testValue = "just testing data: test 500 value"
	_, err := tree.Insert(stack, testKey, testValue)
	require.NoError(t, err, "insert test key")
	checkTree(t, tree, stack, "insert test key")

	doTraverse(t, d)
	doSearch(t, d)

	tv := tree.Search(testKey)
	require.NotNil(t, tv, "could not find test key: %q", testKey)
	assert.Equal(t, testKey, tv.Key(), "test key mismatch")
	assert.Equal(t, testValue, tv.Value(), "test value mismatch")

	// delete the test value, and check it return the correct
	// value and is no longer in the tree
	_, value, err := tree.Delete(stack, testKey)
	require.NoError(t, err, "delete test key")
	assert.Equal(t, testValue, value, "delete value mismatch")
	assert.Nil(t, tree.Search(testKey), "test key not deleted")
}

// check that an existing key is neither overwritten nor counted twice
func TestDuplicateRejected(t *testing.T) {
	tree, stack := newStringTree()
	for _, key := range []string{"01", "02", "03", "04", "05"} {
		_, err := tree.Insert(stack, key, "data:"+key)
		require.NoError(t, err, "insert: %q", key)
	}

	node, err := tree.Insert(stack, "03", "new content for 03")
	assert.Nil(t, node, "duplicate returned a node")
	assert.Equal(t, fault.ErrKeyExists, err, "wrong error")
	assert.True(t, fault.IsErrExists(err), "wrong error class")
	assert.Equal(t, 5, tree.Count(), "count changed")
	assert.Equal(t, "data:03", tree.Search("03").Value(), "value overwritten")
	checkTree(t, tree, stack, "duplicate")
}

// check that nodes keep a constant address when tree is re-balanced
func TestNodeStability(t *testing.T) {
	tree, stack := newStringTree()
	for _, key := range []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10"} {
		tree.Insert(stack, key, "data:"+key)
	}

	node1 := tree.Search("05")
	require.NotNil(t, node1, "missing key")

	// delete neighbours so the node moves in the structure
	tree.Delete(stack, "04")
	tree.Delete(stack, "06")
	tree.Delete(stack, "01")

	node2 := tree.Search("05")
	if node1 != node2 {
		t.Fatalf("node moved from: %p → %p", node1, node2)
	}
	checkTree(t, tree, stack, "stability")
}

func TestRoundTrip(t *testing.T) {
	tree, stack := newStringTree()
	node, err := tree.Insert(stack, "key", "value")
	require.NoError(t, err, "insert")
	assert.Equal(t, "key", node.Key(), "wrong node key")
	assert.Equal(t, "value", tree.Search("key").Value(), "wrong value")
	assert.Equal(t, 1, node.Height(), "leaf height")

	_, _, err = tree.Delete(stack, "key")
	require.NoError(t, err, "delete")
	assert.Nil(t, tree.Search("key"), "key still present")

	_, _, err = tree.Delete(stack, "key")
	assert.Equal(t, fault.ErrKeyNotFound, err, "second delete")
}

func TestEmptyTree(t *testing.T) {
	tree, stack := newStringTree()

	assert.True(t, tree.IsEmpty(), "new tree not empty")
	assert.Equal(t, 0, tree.Depth(), "empty depth")
	assert.Nil(t, tree.First(), "empty first")
	assert.Nil(t, tree.Last(), "empty last")
	assert.Nil(t, tree.Search("x"), "empty search")

	_, _, err := tree.Delete(stack, "x")
	assert.True(t, fault.IsErrNotFound(err), "delete from empty")
	_, _, err = tree.DeleteMin(stack)
	assert.True(t, fault.IsErrNotFound(err), "delete min from empty")
	_, _, err = tree.DeleteMax(stack)
	assert.True(t, fault.IsErrNotFound(err), "delete max from empty")

	for _, setup := range []func() error{
		func() error { return tree.Traverse(stack) },
		func() error { return tree.Reversed(stack) },
		func() error { return tree.Upper(stack, "x") },
		func() error { return tree.Lower(stack, "x") },
	} {
		require.NoError(t, setup(), "cursor setup")
		_, ok := stack.Next()
		assert.False(t, ok, "empty cursor yielded a node")
		assert.NoError(t, stack.Err(), "empty cursor failed")
	}

	assert.NoError(t, tree.FreeAll(stack), "free empty tree")
	checkTree(t, tree, stack, "empty")
}

func TestNilComparator(t *testing.T) {
	assert.Panics(t, func() {
		avl.New[string, string](nil, nil)
	}, "nil comparator accepted")
}
