package codec

import (
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/schema"
	"github.com/arloliu/cadbin/wire"
)

func (st *encodeState) cellStyle(v *model.TableCellStyle) wire.Offset {
	styles := encodeSub(st, "styles", &v.Styles, st.styles)
	text := encodeSub(st, "text_style", &v.Text, st.textStyle)
	margins := encodeSub(st, "margins", &v.Margins, st.margins)

	st.s.StartTable(schema.TableCellStyleLayout)
	st.s.Ref(schema.CellStyleStyles, styles)
	st.s.Ref(schema.CellStyleText, text)
	st.s.Ref(schema.CellStyleMargins, margins)

	return st.s.EndTable()
}

func (st *decodeState) cellStyle(t wire.Table) model.TableCellStyle {
	return model.TableCellStyle{
		Styles:  decodeSub(st, t, schema.CellStyleStyles, "styles", defaultStyles(), st.styles),
		Text:    decodeSub(st, t, schema.CellStyleText, "text_style", defaultTextStyle(), st.textStyle),
		Margins: decodeSub(st, t, schema.CellStyleMargins, "margins", model.Margins{}, st.margins),
	}
}

func (st *encodeState) tableColumn(v *model.TableColumn) wire.Offset {
	id := st.s.String(v.ID)
	style := encodeOpt(st, "style", v.Style, st.cellStyle)

	st.s.StartTable(schema.TableColumnLayout)
	st.s.Ref(schema.ColumnID, id)
	st.s.Float64(schema.ColumnWidth, v.Width)
	st.s.Ref(schema.ColumnStyle, style)

	return st.s.EndTable()
}

func (st *decodeState) tableColumn(t wire.Table) model.TableColumn {
	if !t.Has(schema.ColumnID) {
		st.missing("id")
	}

	return model.TableColumn{
		ID:    t.String(schema.ColumnID),
		Width: t.Float64(schema.ColumnWidth, 0),
		Style: decodeOpt(st, t, schema.ColumnStyle, "style", st.cellStyle),
	}
}

func (st *encodeState) tableRow(v *model.TableRow) wire.Offset {
	id := st.s.String(v.ID)
	style := encodeOpt(st, "style", v.Style, st.cellStyle)

	st.s.StartTable(schema.TableRowLayout)
	st.s.Ref(schema.RowID, id)
	st.s.Float64(schema.RowHeight, v.Height)
	st.s.Ref(schema.RowStyle, style)

	return st.s.EndTable()
}

func (st *decodeState) tableRow(t wire.Table) model.TableRow {
	if !t.Has(schema.RowID) {
		st.missing("id")
	}

	return model.TableRow{
		ID:     t.String(schema.RowID),
		Height: t.Float64(schema.RowHeight, 0),
		Style:  decodeOpt(st, t, schema.RowStyle, "style", st.cellStyle),
	}
}

func (st *encodeState) cellSpan(v *model.TableCellSpan) wire.Offset {
	st.s.StartTable(schema.TableCellSpanLayout)
	st.s.Int32(schema.SpanColumns, v.Columns)
	st.s.Int32(schema.SpanRows, v.Rows)

	return st.s.EndTable()
}

func (st *decodeState) cellSpan(t wire.Table) model.TableCellSpan {
	return model.TableCellSpan{
		Columns: t.Int32(schema.SpanColumns, DefaultCellSpan),
		Rows:    t.Int32(schema.SpanRows, DefaultCellSpan),
	}
}

func (st *encodeState) tableCell(v *model.TableCell) wire.Offset {
	rowID := st.s.String(v.RowID)
	columnID := st.s.String(v.ColumnID)
	text := st.s.String(v.Text)
	span := encodeOpt(st, "span", v.Span, st.cellSpan)
	style := encodeOpt(st, "style", v.Style, st.cellStyle)

	st.s.StartTable(schema.TableCellLayout)
	st.s.Ref(schema.CellRowID, rowID)
	st.s.Ref(schema.CellColumnID, columnID)
	st.s.Ref(schema.CellText, text)
	st.s.Bool(schema.CellLocked, v.Locked)
	st.s.Ref(schema.CellSpan, span)
	st.s.Ref(schema.CellStyle, style)

	return st.s.EndTable()
}

func (st *decodeState) tableCell(t wire.Table) model.TableCell {
	return model.TableCell{
		RowID:    t.String(schema.CellRowID),
		ColumnID: t.String(schema.CellColumnID),
		Text:     t.String(schema.CellText),
		Locked:   t.Bool(schema.CellLocked, false),
		Span:     decodeOpt(st, t, schema.CellSpan, "span", st.cellSpan),
		Style:    decodeOpt(st, t, schema.CellStyle, "style", st.cellStyle),
	}
}

func encodeTable(st *encodeState, v *model.Table) wire.Offset {
	columns := encodeList(st, "columns", v.Columns, st.tableColumn)
	rows := encodeList(st, "rows", v.Rows, st.tableRow)
	cells := encodeList(st, "cells", v.Cells, st.tableCell)
	style := encodeOpt(st, "style", v.Style, st.cellStyle)

	return st.element(model.TypeTable, &v.ElementBase, func(s slots) {
		st.s.Ref(s.field(schema.TableColumns), columns)
		st.s.Ref(s.field(schema.TableRows), rows)
		st.s.Ref(s.field(schema.TableCells), cells)
		st.s.Int32(s.field(schema.TableHeaderRowCount), v.HeaderRowCount)
		st.s.Bool(s.field(schema.TableAutoSizeColumns), v.AutoSizeColumns)
		st.s.Bool(s.field(schema.TableAutoSizeRows), v.AutoSizeRows)
		st.s.Ref(s.field(schema.TableStyle), style)
	})
}

func decodeTable(st *decodeState, t elementTable, base model.ElementBase) *model.Table {
	return &model.Table{
		ElementBase:     base,
		Columns:         decodeList(st, t.Table, t.field(schema.TableColumns), "columns", st.tableColumn),
		Rows:            decodeList(st, t.Table, t.field(schema.TableRows), "rows", st.tableRow),
		Cells:           decodeList(st, t.Table, t.field(schema.TableCells), "cells", st.tableCell),
		HeaderRowCount:  t.Int32(t.field(schema.TableHeaderRowCount), 0),
		AutoSizeColumns: t.Bool(t.field(schema.TableAutoSizeColumns), false),
		AutoSizeRows:    t.Bool(t.field(schema.TableAutoSizeRows), false),
		Style:           decodeOpt(st, t.Table, t.field(schema.TableStyle), "style", st.cellStyle),
	}
}
