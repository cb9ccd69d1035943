package models

import "fmt"

// RowKind enumerates the copyable result rows.
type RowKind int

const (
	RowEarly RowKind = iota
	RowLatest
	RowRange
	RowGlyph
)

// ResultRow is one selectable line in a result list.
type ResultRow struct {
	Kind     RowKind
	Title    string
	Value    string
	CopyText string
}

// RowsFor builds the rows shown on tab for the current results.
func RowsFor(tab Tab, c CalculatedTimes) []ResultRow {
	var rows []ResultRow
	switch tab {
	case TabRoshan:
		if c.HasEarly() {
			rows = append(rows, ResultRow{
				Kind:     RowEarly,
				Title:    "Earliest respawn time",
				Value:    c.Early,
				CopyText: fmt.Sprintf("Early time: %s", c.Early),
			})
		}
		if c.HasLatest() {
			rows = append(rows, ResultRow{
				Kind:     RowLatest,
				Title:    "Latest respawn time",
				Value:    c.Latest,
				CopyText: fmt.Sprintf("Latest time: %s", c.Latest),
			})
		}
		if c.HasRange() {
			rows = append(rows, ResultRow{
				Kind:     RowRange,
				Title:    "Respawn range",
				Value:    fmt.Sprintf("%s - %s", c.Early, c.Latest),
				CopyText: fmt.Sprintf("Rosh respawn: %s-%s", c.Early, c.Latest),
			})
		}
	case TabGlyph:
		if c.HasGlyph() {
			rows = append(rows, ResultRow{
				Kind:     RowGlyph,
				Title:    "Glyph time",
				Value:    c.Glyph,
				CopyText: fmt.Sprintf("Glyph time: %s", c.Glyph),
			})
		}
	}
	return rows
}
