package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"tinytable/table"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Must supply a database filename.")
		os.Exit(1)
	}

	t, err := table.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		printPrompt()
		line, err := readInput(reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				os.Exit(0)
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if line == "" {
			continue
		}

		if line[0] == '.' {
			if err := doMetaCommand(line, t); err != nil {
				if err == errUnrecognizedCommand {
					fmt.Printf("Unrecognized command '%s'.\n", line)
					continue
				}
				if table.IsFatal(err) {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
				fmt.Println(err)
			}
			continue
		}

		stmt, err := prepareStatement(line)
		if err != nil {
			fmt.Println(err)
			continue
		}

		if err := execute(stmt, t); err != nil {
			if table.IsFatal(err) {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println(displayError(err))
			continue
		}
		fmt.Println("Executed.")
	}
}

func execute(stmt statement, t *table.Table) error {
	switch stmt.kind {
	case statementInsert:
		return t.Insert(stmt.row)
	case statementSelect:
		return t.SelectAll(func(row table.Row) error {
			fmt.Printf("(%d %s %s)\n", row.ID, row.Username, row.Email)
			return nil
		})
	default:
		return nil
	}
}

func displayError(err error) string {
	switch {
	case errors.Is(err, table.ErrDuplicateKey):
		return "Error: Duplicate key."
	case errors.Is(err, table.ErrTableFull):
		return "Error: Table full."
	default:
		return err.Error()
	}
}
