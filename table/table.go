package table

import "tinytable/pager"

// Table is a single file-backed B+-tree: a fixed id/username/email schema
// keyed by id. Page 0 is always the root.
type Table struct {
	pager *pager.Pager
}

// Open opens (or creates) the database file at path. A freshly created
// file gets a single empty leaf as its root.
func Open(path string) (*Table, error) {
	pg, err := pager.Open(path)
	if err != nil {
		return nil, err
	}

	t := &Table{pager: pg}
	if pg.NumPages == 0 {
		root, err := pg.Get(rootPageNum)
		if err != nil {
			return nil, err
		}
		initLeaf(root)
		setIsRoot(root, true)
	}
	return t, nil
}

// Close flushes every resident page to disk and closes the underlying file.
func (t *Table) Close() error {
	return t.pager.Close()
}

// SelectAll walks every row in id order, calling fn for each. It stops and
// returns fn's error as soon as fn returns a non-nil one.
func (t *Table) SelectAll(fn func(Row) error) error {
	c, err := t.Start()
	if err != nil {
		return err
	}
	for !c.EndOfTable() {
		row, err := c.Value()
		if err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
		if err := c.Advance(); err != nil {
			return err
		}
	}
	return nil
}
