package table

import "tinytable/pager"

// initLeaf resets p to an empty, non-root leaf: zero cells, no next leaf.
func initLeaf(p *pager.Page) {
	p.Data = [pager.PageSize]byte{}
	setNodeKind(p, nodeKindLeaf)
	setIsRoot(p, false)
	setLeafNumCells(p, 0)
	setLeafNextLeaf(p, 0)
}

// initInternal resets p to an empty, non-root internal node.
func initInternal(p *pager.Page) {
	p.Data = [pager.PageSize]byte{}
	setNodeKind(p, nodeKindInternal)
	setIsRoot(p, false)
	setInternalNumKeys(p, 0)
}

// maxKey returns the largest key stored under p: the key of a leaf's last
// cell, or an internal node's last key. Only defined for non-empty nodes.
func maxKey(p *pager.Page) uint32 {
	if getNodeKind(p) == nodeKindLeaf {
		return getLeafKey(p, getLeafNumCells(p)-1)
	}
	return getInternalKey(p, getInternalNumKeys(p)-1)
}
