package codec

import (
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/schema"
	"github.com/arloliu/cadbin/wire"
)

func encodeFrame(st *encodeState, v *model.Frame) wire.Offset {
	stack := st.prepareStackElement(&v.Stack)

	return st.element(model.TypeFrame, &v.ElementBase, func(s slots) {
		st.flattenStackElement(s.lay, &v.Stack, stack)
	})
}

func decodeFrame(st *decodeState, t elementTable, base model.ElementBase) *model.Frame {
	return &model.Frame{
		ElementBase: base,
		Stack:       st.unflattenStackElement(t.Table, t.lay),
	}
}

func encodePlot(st *encodeState, v *model.Plot) wire.Offset {
	stack := st.prepareStackElement(&v.Stack)
	margins := encodeSub(st, "margins", &v.Layout, st.margins)

	return st.element(model.TypePlot, &v.ElementBase, func(s slots) {
		st.flattenStackElement(s.lay, &v.Stack, stack)
		st.s.Ref(s.field(schema.PlotMargins), margins)
	})
}

func decodePlot(st *decodeState, t elementTable, base model.ElementBase) *model.Plot {
	return &model.Plot{
		ElementBase: base,
		Stack:       st.unflattenStackElement(t.Table, t.lay),
		Layout:      decodeSub(st, t.Table, t.field(schema.PlotMargins), "margins", model.Margins{}, st.margins),
	}
}

func (st *encodeState) viewportView(v *model.ViewportView) wire.Offset {
	center := encodeSub(st, "center_point", &v.CenterPoint, st.point)

	st.s.StartTable(schema.ViewportViewLayout)
	st.s.Float64(schema.ViewScrollX, v.ScrollX)
	st.s.Float64(schema.ViewScrollY, v.ScrollY)
	st.s.Float64(schema.ViewZoom, v.Zoom)
	st.s.Float64(schema.ViewTwistAngle, v.TwistAngle)
	st.s.Ref(schema.ViewCenter, center)

	return st.s.EndTable()
}

func (st *decodeState) viewportView(t wire.Table) model.ViewportView {
	return model.ViewportView{
		ScrollX:     t.Float64(schema.ViewScrollX, 0),
		ScrollY:     t.Float64(schema.ViewScrollY, 0),
		Zoom:        t.Float64(schema.ViewZoom, DefaultViewZoom),
		TwistAngle:  t.Float64(schema.ViewTwistAngle, 0),
		CenterPoint: decodeSub(st, t, schema.ViewCenter, "center_point", model.GeometricPoint{}, st.point),
	}
}

func encodeViewport(st *encodeState, v *model.Viewport) wire.Offset {
	linear := st.prepareLinear(&v.Linear)
	stack := st.prepareStackElement(&v.Stack)
	view := encodeSub(st, "view", &v.View, st.viewportView)
	shade := encodeEnum(st, "shade_plot", v.ShadePlot, model.ViewportShadePlotMax)
	frozen := st.s.Strings(v.FrozenGroupIDs)

	return st.element(model.TypeViewport, &v.ElementBase, func(s slots) {
		st.flattenLinear(s.at(schema.LayerLinear), linear)
		st.flattenStackElement(s.lay, &v.Stack, stack)
		st.s.Ref(s.field(schema.ViewportView), view)
		st.s.Float64(s.field(schema.ViewportScale), v.Scale)
		st.s.Uint8(s.field(schema.ViewportShadePlot), shade)
		st.s.Ref(s.field(schema.ViewportFrozenGroupIDs), frozen)
	})
}

func decodeViewport(st *decodeState, t elementTable, base model.ElementBase) *model.Viewport {
	return &model.Viewport{
		ElementBase: base,
		Linear:      st.unflattenLinear(t.Table, t.at(schema.LayerLinear)),
		Stack:       st.unflattenStackElement(t.Table, t.lay),
		View:        decodeSub(st, t.Table, t.field(schema.ViewportView), "view", defaultView(), st.viewportView),
		Scale:       t.Float64(t.field(schema.ViewportScale), DefaultViewportScale),
		ShadePlot: decodeEnum(st, "shade_plot",
			t.Uint8(t.field(schema.ViewportShadePlot), 0), model.ViewportShadePlotMax),
		FrozenGroupIDs: t.Strings(t.field(schema.ViewportFrozenGroupIDs)),
	}
}

func (st *encodeState) stringEntry(v *model.StringValueEntry) wire.Offset {
	key := st.s.String(v.Key)
	value := st.s.String(v.Value)

	st.s.StartTable(schema.StringValueEntryLayout)
	st.s.Ref(schema.EntryKey, key)
	st.s.Ref(schema.EntryValue, value)

	return st.s.EndTable()
}

func (st *decodeState) stringEntry(t wire.Table) model.StringValueEntry {
	return model.StringValueEntry{
		Key:   t.String(schema.EntryKey),
		Value: t.String(schema.EntryValue),
	}
}

func (st *encodeState) duplication(v *model.DuplicationArray) wire.Offset {
	st.s.StartTable(schema.DuplicationArrayLayout)
	st.s.Int32(schema.DuplicationRows, v.Rows)
	st.s.Int32(schema.DuplicationCols, v.Cols)
	st.s.Float64(schema.DuplicationRowSpacing, v.RowSpacing)
	st.s.Float64(schema.DuplicationColSpacing, v.ColSpacing)

	return st.s.EndTable()
}

func (st *decodeState) duplication(t wire.Table) model.DuplicationArray {
	return model.DuplicationArray{
		Rows:       t.Int32(schema.DuplicationRows, DefaultDuplication),
		Cols:       t.Int32(schema.DuplicationCols, DefaultDuplication),
		RowSpacing: t.Float64(schema.DuplicationRowSpacing, 0),
		ColSpacing: t.Float64(schema.DuplicationColSpacing, 0),
	}
}

func encodeBlockInstance(st *encodeState, v *model.BlockInstance) wire.Offset {
	blockID := st.s.String(v.BlockID)
	overrides := encodeList(st, "element_overrides", v.ElementOverrides, st.stringEntry)
	attributes := encodeList(st, "attribute_values", v.AttributeValues, st.stringEntry)
	duplication := encodeOpt(st, "duplication_array", v.Duplication, st.duplication)

	return st.element(model.TypeBlockInstance, &v.ElementBase, func(s slots) {
		st.s.Ref(s.field(schema.BlockInstanceBlockID), blockID)
		st.s.Ref(s.field(schema.BlockInstanceElementOverrides), overrides)
		st.s.Ref(s.field(schema.BlockInstanceAttributeValues), attributes)
		st.s.Ref(s.field(schema.BlockInstanceDuplication), duplication)
	})
}

func decodeBlockInstance(st *decodeState, t elementTable, base model.ElementBase) *model.BlockInstance {
	return &model.BlockInstance{
		ElementBase: base,
		BlockID:     t.String(t.field(schema.BlockInstanceBlockID)),
		ElementOverrides: decodeList(st, t.Table, t.field(schema.BlockInstanceElementOverrides),
			"element_overrides", st.stringEntry),
		AttributeValues: decodeList(st, t.Table, t.field(schema.BlockInstanceAttributeValues),
			"attribute_values", st.stringEntry),
		Duplication: decodeOpt(st, t.Table, t.field(schema.BlockInstanceDuplication),
			"duplication_array", st.duplication),
	}
}
