package main

import (
	"errors"
	"fmt"
	"os"

	"tinytable/table"
)

var errUnrecognizedCommand = errors.New("Unrecognized command")

// doMetaCommand handles a line beginning with '.'. .exit flushes the table
// and terminates the process directly, matching the spec's "close, exit 0"
// contract; the other two are diagnostic prints.
func doMetaCommand(line string, t *table.Table) error {
	switch line {
	case ".exit":
		if err := t.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
		return nil
	case ".constants":
		table.PrintConstants(os.Stdout)
		return nil
	case ".btree":
		return t.PrintTree(os.Stdout)
	default:
		return errUnrecognizedCommand
	}
}
