package table

// Cursor walks a table's rows in ascending key order via the leaf
// linked list, independent of however many internal levels sit above it.
type Cursor struct {
	table      *Table
	page       uint32
	cell       uint32
	endOfTable bool
}

// Start returns a cursor positioned at the first row in key order, or a
// cursor with EndOfTable true if the table is empty.
func (t *Table) Start() (*Cursor, error) {
	pageNum := uint32(rootPageNum)
	for {
		p, err := t.pager.Get(pageNum)
		if err != nil {
			return nil, err
		}
		if getNodeKind(p) == nodeKindLeaf {
			return &Cursor{table: t, page: pageNum, cell: 0, endOfTable: getLeafNumCells(p) == 0}, nil
		}
		pageNum = getInternalChild(p, 0)
	}
}

// EndOfTable reports whether the cursor has advanced past the last row.
func (c *Cursor) EndOfTable() bool {
	return c.endOfTable
}

// Advance moves the cursor to the next row, following a leaf's next_leaf
// pointer once its own cells are exhausted.
func (c *Cursor) Advance() error {
	p, err := c.table.pager.Get(c.page)
	if err != nil {
		return err
	}
	c.cell++
	if c.cell < getLeafNumCells(p) {
		return nil
	}

	next := getLeafNextLeaf(p)
	if next == 0 {
		c.endOfTable = true
		return nil
	}
	c.page = next
	c.cell = 0
	return nil
}

// Value deserializes the row the cursor currently points at.
func (c *Cursor) Value() (Row, error) {
	p, err := c.table.pager.Get(c.page)
	if err != nil {
		return Row{}, err
	}
	return deserializeRow(leafValue(p, c.cell)), nil
}
