package main

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"tinytable/table"
)

var (
	errSyntax                = errors.New("Syntax error. Could not parse statement.")
	errNegativeID            = errors.New("ID must be positive.")
	errStringTooLong         = errors.New("String is too long.")
	errUnrecognizedStatement = errors.New("Unrecognized keyword at start of statement.")
)

// prepareStatement classifies a non-meta input line into a statement, or
// reports a prepare error (syntax, negative id, too-long string,
// unrecognized keyword). These are all recoverable: the REPL reports and
// continues.
func prepareStatement(line string) (statement, error) {
	switch {
	case line == "select":
		return statement{kind: statementSelect}, nil
	case strings.HasPrefix(line, "insert"):
		return prepareInsert(line)
	default:
		return statement{}, errUnrecognizedStatement
	}
}

func prepareInsert(line string) (statement, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return statement{}, errSyntax
	}

	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return statement{}, errSyntax
	}
	if id < 0 {
		return statement{}, errNegativeID
	}
	if id > math.MaxUint32 {
		return statement{}, errSyntax
	}

	username, email := fields[2], fields[3]
	if uint32(len(username)) > table.MaxUsernameLen || uint32(len(email)) > table.MaxEmailLen {
		return statement{}, errStringTooLong
	}

	return statement{
		kind: statementInsert,
		row: table.Row{
			ID:       uint32(id),
			Username: username,
			Email:    email,
		},
	}, nil
}
