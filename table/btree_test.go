package table

import (
	"os"
	"testing"
)

func newTempDB(t *testing.T) string {
	f, err := os.CreateTemp("", "tinytable-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	return f.Name()
}

func mustOpen(t *testing.T, path string) *Table {
	t.Helper()
	tbl, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return tbl
}

func TestInsertDuplicateKeyRejected(t *testing.T) {
	path := newTempDB(t)
	defer os.Remove(path)
	tbl := mustOpen(t, path)
	defer tbl.Close()

	if err := tbl.Insert(Row{ID: 1, Username: "a", Email: "a@x"}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := tbl.Insert(Row{ID: 1, Username: "b", Email: "b@x"}); err != ErrDuplicateKey {
		t.Fatalf("second insert = %v, want ErrDuplicateKey", err)
	}
}

func TestSelectAllOrdering(t *testing.T) {
	path := newTempDB(t)
	defer os.Remove(path)
	tbl := mustOpen(t, path)
	defer tbl.Close()

	// Insert out of order; select must still yield ascending key order.
	for _, id := range []uint32{3, 1, 2} {
		if err := tbl.Insert(Row{ID: id, Username: "u", Email: "e"}); err != nil {
			t.Fatalf("insert %d: %v", id, err)
		}
	}

	var got []uint32
	err := tbl.SelectAll(func(r Row) error {
		got = append(got, r.ID)
		return nil
	})
	if err != nil {
		t.Fatalf("SelectAll: %v", err)
	}

	want := []uint32{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("SelectAll returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SelectAll returned %v, want %v", got, want)
		}
	}
}

func TestSplitBoundaryProducesTwoLeavesOnPagesOneAndTwo(t *testing.T) {
	path := newTempDB(t)
	defer os.Remove(path)
	tbl := mustOpen(t, path)
	defer tbl.Close()

	for id := uint32(1); id <= 14; id++ {
		if err := tbl.Insert(Row{ID: id, Username: "u", Email: "e"}); err != nil {
			t.Fatalf("insert %d: %v", id, err)
		}
	}

	root, err := tbl.pager.Get(rootPageNum)
	if err != nil {
		t.Fatalf("Get root: %v", err)
	}
	if getNodeKind(root) != nodeKindInternal {
		t.Fatalf("root node kind = %v, want internal", getNodeKind(root))
	}
	if n := getInternalNumKeys(root); n != 1 {
		t.Fatalf("root numKeys = %d, want 1", n)
	}

	left, err := tbl.pager.Get(1)
	if err != nil {
		t.Fatalf("Get page 1: %v", err)
	}
	right, err := tbl.pager.Get(2)
	if err != nil {
		t.Fatalf("Get page 2: %v", err)
	}

	if n := getLeafNumCells(left); n != 7 {
		t.Fatalf("left leaf numCells = %d, want 7", n)
	}
	if n := getLeafNumCells(right); n != 7 {
		t.Fatalf("right leaf numCells = %d, want 7", n)
	}
	for i := uint32(0); i < 7; i++ {
		if got, want := getLeafKey(left, i), i+1; got != want {
			t.Fatalf("left leaf key %d = %d, want %d", i, got, want)
		}
		if got, want := getLeafKey(right, i), i+8; got != want {
			t.Fatalf("right leaf key %d = %d, want %d", i, got, want)
		}
	}

	if got := getLeafNextLeaf(left); got != 2 {
		t.Fatalf("next_leaf(1) = %d, want 2", got)
	}
	if got := getLeafNextLeaf(right); got != 0 {
		t.Fatalf("next_leaf(2) = %d, want 0", got)
	}
	if got := getInternalKey(root, 0); got != 7 {
		t.Fatalf("root key 0 = %d, want 7", got)
	}
}

func TestInsertBeyondRootSplitCapacityIsFatal(t *testing.T) {
	path := newTempDB(t)
	defer os.Remove(path)
	tbl := mustOpen(t, path)
	defer tbl.Close()

	// The root split at the 14th row leaves 7 cells in each leaf. Later
	// ascending ids all land in the right leaf, which is full at 13 cells
	// after id 20; the 21st insert needs a second, non-root split.
	for id := uint32(1); id <= 20; id++ {
		if err := tbl.Insert(Row{ID: id, Username: "u", Email: "e"}); err != nil {
			t.Fatalf("insert %d: %v", id, err)
		}
	}

	err := tbl.Insert(Row{ID: 21, Username: "u", Email: "e"})
	if err != ErrNonRootSplit {
		t.Fatalf("21st insert = %v, want ErrNonRootSplit", err)
	}
	if !IsFatal(err) {
		t.Fatalf("IsFatal(%v) = false, want true", err)
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := newTempDB(t)
	defer os.Remove(path)

	tbl := mustOpen(t, path)
	for id := uint32(1); id <= 3; id++ {
		if err := tbl.Insert(Row{ID: id, Username: "u", Email: "e"}); err != nil {
			t.Fatalf("insert %d: %v", id, err)
		}
	}
	if err := tbl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened := mustOpen(t, path)
	defer reopened.Close()

	var got []uint32
	err := reopened.SelectAll(func(r Row) error {
		got = append(got, r.ID)
		return nil
	})
	if err != nil {
		t.Fatalf("SelectAll after reopen: %v", err)
	}
	want := []uint32{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("SelectAll after reopen = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SelectAll after reopen = %v, want %v", got, want)
		}
	}
}
