package table

import (
	"unsafe"

	"tinytable/pager"
)

const (
	// Common node header layout: every page starts with these three fields
	// regardless of whether it holds a leaf or an internal node.
	nodeTypeSize        = uint32(unsafe.Sizeof(uint8(0)))
	nodeTypeOffset      = uint32(0)
	isRootSize          = uint32(unsafe.Sizeof(uint8(0)))
	isRootOffset        = nodeTypeOffset + nodeTypeSize
	parentPointerSize   = uint32(unsafe.Sizeof(uint32(0)))
	parentPointerOffset = isRootOffset + isRootSize

	commonNodeHeaderSize = nodeTypeSize + isRootSize + parentPointerSize // 6

	// Row layout: id(4) + username(33, null-terminated, 32 usable bytes) +
	// email(256, null-terminated, 255 usable bytes).
	idSize       = uint32(unsafe.Sizeof(uint32(0)))
	idOffset     = uint32(0)
	usernameSize = uint32(33)
	emailSize    = uint32(256)

	// MaxUsernameLen and MaxEmailLen are the effective string limits once
	// the trailing NUL byte of room is excluded.
	MaxUsernameLen = usernameSize - 1
	MaxEmailLen    = emailSize - 1

	// RowSize is the full serialized row size in bytes.
	RowSize = idSize + usernameSize + emailSize

	// Leaf node header layout: common header, plus a cell count and the
	// page number of the next leaf in key order (0 means none).
	leafNodeNumCellsSize   = uint32(unsafe.Sizeof(uint32(0)))
	leafNodeNumCellsOffset = commonNodeHeaderSize
	leafNodeNextLeafSize   = uint32(unsafe.Sizeof(uint32(0)))
	leafNodeNextLeafOffset = leafNodeNumCellsOffset + leafNodeNumCellsSize
	leafNodeHeaderSize     = commonNodeHeaderSize + leafNodeNumCellsSize + leafNodeNextLeafSize // 14

	// Leaf node body layout: contiguous (key, row) cells.
	leafNodeKeySize  = uint32(4)
	leafNodeCellSize = leafNodeKeySize + RowSize

	leafNodeSpaceForCells = pager.PageSize - leafNodeHeaderSize
	// LeafNodeMaxCells is how many (key, row) cells fit in one leaf page.
	LeafNodeMaxCells = leafNodeSpaceForCells / leafNodeCellSize

	// On a split, the 13 existing cells plus the one being inserted (14
	// total) are redistributed LEFT/RIGHT across two newly allocated leaves.
	leafNodeSplitTotal      = LeafNodeMaxCells + 1
	leafNodeRightSplitCount = leafNodeSplitTotal / 2
	leafNodeLeftSplitCount  = leafNodeSplitTotal - leafNodeRightSplitCount

	// Internal node header layout: common header, plus a key count and the
	// page number of the rightmost child (the N+1-th child of N keys).
	internalNodeNumKeysSize      = uint32(unsafe.Sizeof(uint32(0)))
	internalNodeNumKeysOffset    = commonNodeHeaderSize
	internalNodeRightChildSize   = uint32(unsafe.Sizeof(uint32(0)))
	internalNodeRightChildOffset = internalNodeNumKeysOffset + internalNodeNumKeysSize
	internalNodeHeaderSize       = commonNodeHeaderSize + internalNodeNumKeysSize + internalNodeRightChildSize // 14

	// Internal node body layout: contiguous (child, key) cells.
	internalNodeChildSize = uint32(4)
	internalNodeKeySize   = uint32(4)
	internalNodeCellSize  = internalNodeChildSize + internalNodeKeySize

	internalNodeSpaceForCells = pager.PageSize - internalNodeHeaderSize
	// internalNodeMaxCells is diagnostic only: internal-node splitting is
	// not implemented (spec Non-goal), so this bound is never enforced.
	internalNodeMaxCells = internalNodeSpaceForCells / internalNodeCellSize
)
