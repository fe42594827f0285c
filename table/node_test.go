package table

import (
	"testing"

	"tinytable/pager"
)

func TestInitLeafIsEmptyAndNotRoot(t *testing.T) {
	p := &pager.Page{}
	initLeaf(p)

	if getNodeKind(p) != nodeKindLeaf {
		t.Fatalf("getNodeKind = %v, want leaf", getNodeKind(p))
	}
	if getIsRoot(p) {
		t.Fatalf("initLeaf left isRoot set")
	}
	if n := getLeafNumCells(p); n != 0 {
		t.Fatalf("getLeafNumCells = %d, want 0", n)
	}
	if n := getLeafNextLeaf(p); n != 0 {
		t.Fatalf("getLeafNextLeaf = %d, want 0", n)
	}
}

func TestInitInternalIsEmptyAndNotRoot(t *testing.T) {
	p := &pager.Page{}
	initInternal(p)

	if getNodeKind(p) != nodeKindInternal {
		t.Fatalf("getNodeKind = %v, want internal", getNodeKind(p))
	}
	if getIsRoot(p) {
		t.Fatalf("initInternal left isRoot set")
	}
	if n := getInternalNumKeys(p); n != 0 {
		t.Fatalf("getInternalNumKeys = %d, want 0", n)
	}
}

func TestMaxKeyLeaf(t *testing.T) {
	p := &pager.Page{}
	initLeaf(p)
	setLeafKey(p, 0, 5)
	setLeafKey(p, 1, 9)
	setLeafNumCells(p, 2)

	if got := maxKey(p); got != 9 {
		t.Fatalf("maxKey = %d, want 9", got)
	}
}

func TestMaxKeyInternal(t *testing.T) {
	p := &pager.Page{}
	initInternal(p)
	setInternalKey(p, 0, 3)
	setInternalKey(p, 1, 7)
	setInternalNumKeys(p, 2)

	if got := maxKey(p); got != 7 {
		t.Fatalf("maxKey = %d, want 7", got)
	}
}

func TestLeafCellLayoutRoundTrip(t *testing.T) {
	p := &pager.Page{}
	initLeaf(p)
	row := Row{ID: 42, Username: "bob", Email: "bob@example.com"}

	setLeafKey(p, 0, row.ID)
	if err := serializeRow(row, leafValue(p, 0)); err != nil {
		t.Fatalf("serializeRow: %v", err)
	}
	setLeafNumCells(p, 1)

	if got := getLeafKey(p, 0); got != row.ID {
		t.Fatalf("getLeafKey = %d, want %d", got, row.ID)
	}
	if got := deserializeRow(leafValue(p, 0)); got != row {
		t.Fatalf("deserializeRow = %+v, want %+v", got, row)
	}
}

func TestInternalChildAtIncludesRightChild(t *testing.T) {
	p := &pager.Page{}
	initInternal(p)
	setInternalNumKeys(p, 2)
	setInternalChild(p, 0, 10)
	setInternalChild(p, 1, 11)
	setInternalRightChild(p, 12)

	for i, want := range []uint32{10, 11, 12} {
		if got := childAt(p, uint32(i), 2); got != want {
			t.Fatalf("childAt(%d) = %d, want %d", i, got, want)
		}
	}
}
