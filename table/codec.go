package table

import (
	"encoding/binary"

	"tinytable/pager"
)

// nodeKind is the one-byte tag at offset 0 of every page.
type nodeKind uint8

const (
	nodeKindInternal nodeKind = 0
	nodeKindLeaf     nodeKind = 1
)

// The page codec below is pure and stateless: every accessor takes a page
// buffer (and, for cells, a cell index) and reads or writes exactly one
// field at its fixed offset. None of it does bounds checking beyond what
// the slice expressions themselves enforce.

func getNodeKind(p *pager.Page) nodeKind { return nodeKind(p.Data[nodeTypeOffset]) }
func setNodeKind(p *pager.Page, k nodeKind) { p.Data[nodeTypeOffset] = uint8(k) }

func getIsRoot(p *pager.Page) bool { return p.Data[isRootOffset] != 0 }

func setIsRoot(p *pager.Page, v bool) {
	if v {
		p.Data[isRootOffset] = 1
	} else {
		p.Data[isRootOffset] = 0
	}
}

func getParentPage(p *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(p.Data[parentPointerOffset : parentPointerOffset+parentPointerSize])
}

func setParentPage(p *pager.Page, pageNum uint32) {
	binary.LittleEndian.PutUint32(p.Data[parentPointerOffset:parentPointerOffset+parentPointerSize], pageNum)
}

// --- leaf fields ---

func getLeafNumCells(p *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(p.Data[leafNodeNumCellsOffset : leafNodeNumCellsOffset+leafNodeNumCellsSize])
}

func setLeafNumCells(p *pager.Page, n uint32) {
	binary.LittleEndian.PutUint32(p.Data[leafNodeNumCellsOffset:leafNodeNumCellsOffset+leafNodeNumCellsSize], n)
}

func getLeafNextLeaf(p *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(p.Data[leafNodeNextLeafOffset : leafNodeNextLeafOffset+leafNodeNextLeafSize])
}

func setLeafNextLeaf(p *pager.Page, pageNum uint32) {
	binary.LittleEndian.PutUint32(p.Data[leafNodeNextLeafOffset:leafNodeNextLeafOffset+leafNodeNextLeafSize], pageNum)
}

func leafCellOffset(i uint32) uint32 {
	return leafNodeHeaderSize + i*leafNodeCellSize
}

// leafCell returns the raw (key, row) bytes for cell i, leafNodeCellSize long.
func leafCell(p *pager.Page, i uint32) []byte {
	off := leafCellOffset(i)
	return p.Data[off : off+leafNodeCellSize]
}

func getLeafKey(p *pager.Page, i uint32) uint32 {
	off := leafCellOffset(i)
	return binary.LittleEndian.Uint32(p.Data[off : off+leafNodeKeySize])
}

func setLeafKey(p *pager.Page, i uint32, key uint32) {
	off := leafCellOffset(i)
	binary.LittleEndian.PutUint32(p.Data[off:off+leafNodeKeySize], key)
}

// leafValue returns the RowSize-long slice holding the serialized row for cell i.
func leafValue(p *pager.Page, i uint32) []byte {
	off := leafCellOffset(i) + leafNodeKeySize
	return p.Data[off : off+RowSize]
}

// --- internal fields ---

func getInternalNumKeys(p *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(p.Data[internalNodeNumKeysOffset : internalNodeNumKeysOffset+internalNodeNumKeysSize])
}

func setInternalNumKeys(p *pager.Page, n uint32) {
	binary.LittleEndian.PutUint32(p.Data[internalNodeNumKeysOffset:internalNodeNumKeysOffset+internalNodeNumKeysSize], n)
}

func getInternalRightChild(p *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(p.Data[internalNodeRightChildOffset : internalNodeRightChildOffset+internalNodeRightChildSize])
}

func setInternalRightChild(p *pager.Page, pageNum uint32) {
	binary.LittleEndian.PutUint32(p.Data[internalNodeRightChildOffset:internalNodeRightChildOffset+internalNodeRightChildSize], pageNum)
}

func internalCellOffset(i uint32) uint32 {
	return internalNodeHeaderSize + i*internalNodeCellSize
}

func getInternalChild(p *pager.Page, i uint32) uint32 {
	off := internalCellOffset(i)
	return binary.LittleEndian.Uint32(p.Data[off : off+internalNodeChildSize])
}

func setInternalChild(p *pager.Page, i uint32, pageNum uint32) {
	off := internalCellOffset(i)
	binary.LittleEndian.PutUint32(p.Data[off:off+internalNodeChildSize], pageNum)
}

func getInternalKey(p *pager.Page, i uint32) uint32 {
	off := internalCellOffset(i) + internalNodeChildSize
	return binary.LittleEndian.Uint32(p.Data[off : off+internalNodeKeySize])
}

func setInternalKey(p *pager.Page, i uint32, key uint32) {
	off := internalCellOffset(i) + internalNodeChildSize
	binary.LittleEndian.PutUint32(p.Data[off:off+internalNodeKeySize], key)
}

// childAt returns the i-th of an internal node's numKeys+1 children: the
// first numKeys come from cells, the last is the right-child field.
func childAt(p *pager.Page, i, numKeys uint32) uint32 {
	if i == numKeys {
		return getInternalRightChild(p)
	}
	return getInternalChild(p, i)
}
