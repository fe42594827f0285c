package main

import "tinytable/table"

type statementType int

const (
	statementInsert statementType = iota
	statementSelect
)

type statement struct {
	kind statementType
	row  table.Row
}
