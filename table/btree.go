package table

import (
	"encoding/binary"

	"tinytable/pager"
)

// rootPageNum is fixed for the life of the table: page 0 is always the
// root, whether it currently holds a leaf or an internal node.
const rootPageNum = 0

// find descends from the root to the leaf that holds key, or the leaf
// where key would need to be inserted to keep it sorted. The returned
// cursor always points at a leaf cell: an exact match if key is present,
// otherwise the unique insertion position.
func (t *Table) find(key uint32) (*Cursor, error) {
	return t.findFrom(rootPageNum, key)
}

func (t *Table) findFrom(pageNum uint32, key uint32) (*Cursor, error) {
	p, err := t.pager.Get(pageNum)
	if err != nil {
		return nil, err
	}
	if getNodeKind(p) == nodeKindLeaf {
		return t.findInLeaf(pageNum, p, key), nil
	}
	return t.findInInternal(p, key)
}

// findInLeaf binary-searches a leaf's cells for key, as spec'd: a match
// returns that cell, otherwise the low bound is the sorted insertion point.
func (t *Table) findInLeaf(pageNum uint32, p *pager.Page, key uint32) *Cursor {
	lo, hi := uint32(0), getLeafNumCells(p)
	for lo < hi {
		mid := lo + (hi-lo)/2
		k := getLeafKey(p, mid)
		if k == key {
			return &Cursor{table: t, page: pageNum, cell: mid}
		}
		if key < k {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return &Cursor{table: t, page: pageNum, cell: lo}
}

// findInInternal binary-searches an internal node's keys for the smallest
// key >= key, then descends into the matching child.
func (t *Table) findInInternal(p *pager.Page, key uint32) (*Cursor, error) {
	numKeys := getInternalNumKeys(p)
	lo, hi := uint32(0), numKeys
	for lo < hi {
		mid := lo + (hi-lo)/2
		if getInternalKey(p, mid) >= key {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return t.findFrom(childAt(p, lo, numKeys), key)
}

// Insert adds row under row.ID. It reports ErrDuplicateKey if the key is
// already present, leaving the tree unchanged. Splits (see leafSplitInsert)
// can also report ErrTableFull or the fatal ErrNonRootSplit, both of which
// leave the tree unchanged as well.
func (t *Table) Insert(row Row) error {
	c, err := t.find(row.ID)
	if err != nil {
		return err
	}

	p, err := t.pager.Get(c.page)
	if err != nil {
		return err
	}
	if c.cell < getLeafNumCells(p) && getLeafKey(p, c.cell) == row.ID {
		return ErrDuplicateKey
	}

	return t.leafInsert(c, row)
}

// leafInsert inserts row at c, shifting later cells right by one slot, or
// delegates to leafSplitInsert if the leaf is already at capacity.
func (t *Table) leafInsert(c *Cursor, row Row) error {
	p, err := t.pager.Get(c.page)
	if err != nil {
		return err
	}

	numCells := getLeafNumCells(p)
	if numCells >= LeafNodeMaxCells {
		return t.leafSplitInsert(c, row)
	}

	for i := numCells; i > c.cell; i-- {
		copy(leafCell(p, i), leafCell(p, i-1))
	}

	setLeafKey(p, c.cell, row.ID)
	if err := serializeRow(row, leafValue(p, c.cell)); err != nil {
		return err
	}
	setLeafNumCells(p, numCells+1)
	return nil
}

// leafSplitInsert redistributes a full leaf's 13 cells plus the incoming
// row across two leaves. If the splitting leaf is the root, a new internal
// root is created over the two halves (createNewRoot). Splitting a
// non-root leaf would require updating its parent internal node, which
// this engine does not implement, so it fails with the fatal
// ErrNonRootSplit instead (see the design notes on internal-node splits).
func (t *Table) leafSplitInsert(c *Cursor, row Row) error {
	oldPage, err := t.pager.Get(c.page)
	if err != nil {
		return err
	}
	if !getIsRoot(oldPage) {
		return ErrNonRootSplit
	}

	// Splitting the root always allocates two fresh leaves (left and
	// right) and leaves page 0 to become the internal root.
	if t.pager.NumPages+2 > pager.TableMaxPages {
		return ErrTableFull
	}

	cells, err := mergedLeafCells(oldPage, c.cell, row)
	if err != nil {
		return err
	}
	left := cells[:leafNodeLeftSplitCount]
	right := cells[leafNodeLeftSplitCount:]

	leftPageNum := t.pager.Allocate()
	leftPage, err := t.pager.Get(leftPageNum)
	if err != nil {
		return err
	}
	rightPageNum := t.pager.Allocate()
	rightPage, err := t.pager.Get(rightPageNum)
	if err != nil {
		return err
	}

	initLeaf(leftPage)
	writeLeafCells(leftPage, left)
	setLeafNextLeaf(leftPage, rightPageNum)

	initLeaf(rightPage)
	writeLeafCells(rightPage, right)
	setLeafNextLeaf(rightPage, getLeafNextLeaf(oldPage))

	return t.createNewRoot(oldPage, leftPageNum, leftPage, rightPageNum)
}

// mergedLeafCells returns the leaf's existing LeafNodeMaxCells cells plus
// the new (key, row) in sorted order, as leafNodeCellSize-byte slices:
// cell insertIdx is the new row, cells before it are old cells
// [0, insertIdx), and cells after it are old cells [insertIdx, max).
func mergedLeafCells(oldPage *pager.Page, insertIdx uint32, row Row) ([][]byte, error) {
	total := leafNodeSplitTotal
	cells := make([][]byte, total)

	newCell := make([]byte, leafNodeCellSize)
	binary.LittleEndian.PutUint32(newCell[:leafNodeKeySize], row.ID)
	if err := serializeRow(row, newCell[leafNodeKeySize:]); err != nil {
		return nil, err
	}

	for i := uint32(0); i < total; i++ {
		switch {
		case i == insertIdx:
			cells[i] = newCell
		case i > insertIdx:
			cells[i] = cloneCell(oldPage, i-1)
		default:
			cells[i] = cloneCell(oldPage, i)
		}
	}
	return cells, nil
}

func cloneCell(p *pager.Page, i uint32) []byte {
	buf := make([]byte, leafNodeCellSize)
	copy(buf, leafCell(p, i))
	return buf
}

func writeLeafCells(p *pager.Page, cells [][]byte) {
	for i, c := range cells {
		copy(leafCell(p, uint32(i)), c)
	}
	setLeafNumCells(p, uint32(len(cells)))
}

// createNewRoot reinitializes page 0 (oldRoot) as an internal node with one
// key and two children: leftPageNum/rightPageNum, the two leaves produced
// by leafSplitInsert.
func (t *Table) createNewRoot(oldRoot *pager.Page, leftPageNum uint32, leftPage *pager.Page, rightPageNum uint32) error {
	key := maxKey(leftPage)

	initInternal(oldRoot)
	setIsRoot(oldRoot, true)
	setInternalNumKeys(oldRoot, 1)
	setInternalChild(oldRoot, 0, leftPageNum)
	setInternalKey(oldRoot, 0, key)
	setInternalRightChild(oldRoot, rightPageNum)

	setParentPage(leftPage, rootPageNum)
	rightPage, err := t.pager.Get(rightPageNum)
	if err != nil {
		return err
	}
	setParentPage(rightPage, rootPageNum)
	return nil
}
