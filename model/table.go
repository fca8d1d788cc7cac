package model

// TableCellStyle is the style of a cell, or the default style of a row, column or table.
type TableCellStyle struct {
	Styles  StyleBase
	Text    TextStyle
	Margins Margins
}

type TableColumn struct {
	ID    string
	Width float64
	Style *TableCellStyle
}

type TableRow struct {
	ID     string
	Height float64
	Style  *TableCellStyle
}

// TableCellSpan merges a cell with its right and lower neighbours.
type TableCellSpan struct {
	Columns int32
	Rows    int32
}

// TableCell is addressed by the ids of its row and column, never by position, so rows and
// columns can be reordered without touching cells.
type TableCell struct {
	RowID    string
	ColumnID string
	Text     string
	Locked   bool
	Span     *TableCellSpan
	Style    *TableCellStyle
}

type Table struct {
	ElementBase

	Columns         []TableColumn
	Rows            []TableRow
	Cells           []TableCell
	HeaderRowCount  int32
	AutoSizeColumns bool
	AutoSizeRows    bool
	Style           *TableCellStyle
}

// Cell returns the cell at the given row and column, or nil.
func (t *Table) Cell(rowID, columnID string) *TableCell {
	for i := range t.Cells {
		if t.Cells[i].RowID == rowID && t.Cells[i].ColumnID == columnID {
			return &t.Cells[i]
		}
	}

	return nil
}
