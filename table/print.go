package table

import (
	"fmt"
	"io"
)

// PrintConstants writes the page and node layout constants to w, for the
// .constants meta-command.
func PrintConstants(w io.Writer) {
	fmt.Fprintf(w, "ROW_SIZE: %d\n", RowSize)
	fmt.Fprintf(w, "COMMON_NODE_HEADER_SIZE: %d\n", commonNodeHeaderSize)
	fmt.Fprintf(w, "LEAF_NODE_HEADER_SIZE: %d\n", leafNodeHeaderSize)
	fmt.Fprintf(w, "LEAF_NODE_CELL_SIZE: %d\n", leafNodeCellSize)
	fmt.Fprintf(w, "LEAF_NODE_SPACE_FOR_CELLS: %d\n", leafNodeSpaceForCells)
	fmt.Fprintf(w, "LEAF_NODE_MAX_CELLS: %d\n", LeafNodeMaxCells)
	fmt.Fprintf(w, "INTERNAL_NODE_HEADER_SIZE: %d\n", internalNodeHeaderSize)
	fmt.Fprintf(w, "INTERNAL_NODE_CELL_SIZE: %d\n", internalNodeCellSize)
	fmt.Fprintf(w, "INTERNAL_NODE_MAX_CELLS: %d\n", internalNodeMaxCells)
}

// PrintTree writes a depth-indented dump of the tree structure to w, for
// the .btree meta-command.
func (t *Table) PrintTree(w io.Writer) error {
	return t.printNode(w, rootPageNum, 0)
}

func (t *Table) printNode(w io.Writer, pageNum uint32, depth int) error {
	p, err := t.pager.Get(pageNum)
	if err != nil {
		return err
	}

	indent := func(extra int) {
		for i := 0; i < depth+extra; i++ {
			fmt.Fprint(w, "  ")
		}
	}

	if getNodeKind(p) == nodeKindLeaf {
		numCells := getLeafNumCells(p)
		indent(0)
		fmt.Fprintf(w, "- leaf (size %d)\n", numCells)
		for i := uint32(0); i < numCells; i++ {
			indent(1)
			fmt.Fprintf(w, "- %d\n", getLeafKey(p, i))
		}
		return nil
	}

	numKeys := getInternalNumKeys(p)
	indent(0)
	fmt.Fprintf(w, "- internal (size %d)\n", numKeys)
	for i := uint32(0); i < numKeys; i++ {
		child := getInternalChild(p, i)
		if err := t.printNode(w, child, depth+1); err != nil {
			return err
		}
		indent(1)
		fmt.Fprintf(w, "- key %d\n", getInternalKey(p, i))
	}
	if err := t.printNode(w, getInternalRightChild(p), depth+1); err != nil {
		return err
	}
	return nil
}
