package table

import (
	"errors"

	"tinytable/pager"
)

var (
	// ErrDuplicateKey is returned by Insert when a row with the same id
	// already exists. The tree is left unchanged.
	ErrDuplicateKey = errors.New("table: duplicate key")

	// ErrTableFull is returned by Insert when a split would need more
	// pages than the pager has room for. The tree is left unchanged.
	ErrTableFull = errors.New("table: table is full")

	// ErrNonRootSplit is fatal: splitting a leaf that is not the root
	// would require updating a parent internal node, which this engine
	// does not implement (see the design notes on internal-node splits).
	ErrNonRootSplit = errors.New("table: split of a non-root leaf is not supported")
)

// IsFatal reports whether err belongs to the fatal class of errors: file
// I/O failure, a corrupt file length, an out-of-bounds page, a flush of a
// page never loaded, or an attempted non-root split. The REPL terminates the process on these;
// every other error is recoverable and the REPL continues.
func IsFatal(err error) bool {
	return errors.Is(err, ErrNonRootSplit) ||
		errors.Is(err, pager.ErrCorruptFile) ||
		errors.Is(err, pager.ErrPageOutOfBounds) ||
		errors.Is(err, pager.ErrFlushEmptyPage) ||
		errors.Is(err, pager.ErrIO)
}
