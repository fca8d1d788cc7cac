package codec

import (
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/schema"
	"github.com/arloliu/cadbin/wire"
)

func encodeLine(st *encodeState, v *model.Line) wire.Offset {
	linear := st.prepareLinear(&v.Linear)

	return st.element(model.TypeLine, &v.ElementBase, func(s slots) {
		st.flattenLinear(s.at(schema.LayerLinear), linear)
		st.s.Bool(s.field(schema.LineWipeoutBelow), v.WipeoutBelow)
	})
}

func decodeLine(st *decodeState, t elementTable, base model.ElementBase) *model.Line {
	return &model.Line{
		ElementBase:  base,
		Linear:       st.unflattenLinear(t.Table, t.at(schema.LayerLinear)),
		WipeoutBelow: t.Bool(t.field(schema.LineWipeoutBelow), false),
	}
}

func encodeArrow(st *encodeState, v *model.Arrow) wire.Offset {
	linear := st.prepareLinear(&v.Linear)

	return st.element(model.TypeArrow, &v.ElementBase, func(s slots) {
		st.flattenLinear(s.at(schema.LayerLinear), linear)
		st.s.Bool(s.field(schema.ArrowElbowed), v.Elbowed)
	})
}

func decodeArrow(st *decodeState, t elementTable, base model.ElementBase) *model.Arrow {
	return &model.Arrow{
		ElementBase: base,
		Linear:      st.unflattenLinear(t.Table, t.at(schema.LayerLinear)),
		Elbowed:     t.Bool(t.field(schema.ArrowElbowed), false),
	}
}

func (st *encodeState) leaderContent(v *model.LeaderContent) wire.Offset {
	text := st.s.String(v.Text)
	blockID := st.s.String(v.BlockID)
	typ := encodeEnum(st, "type", v.Type, model.LeaderContentTypeMax)

	st.s.StartTable(schema.LeaderContentLayout)
	st.s.Uint8(schema.LeaderContentKind, typ)
	st.s.Ref(schema.LeaderContentText, text)
	st.s.Ref(schema.LeaderContentBlockID, blockID)

	return st.s.EndTable()
}

func (st *decodeState) leaderContent(t wire.Table) model.LeaderContent {
	return model.LeaderContent{
		Type:    decodeEnum(st, "type", t.Uint8(schema.LeaderContentKind, 0), model.LeaderContentTypeMax),
		Text:    t.String(schema.LeaderContentText),
		BlockID: t.String(schema.LeaderContentBlockID),
	}
}

func encodeLeader(st *encodeState, v *model.Leader) wire.Offset {
	linear := st.prepareLinear(&v.Linear)
	content := encodeOpt(st, "content", v.Content, st.leaderContent)
	anchor := encodeSub(st, "content_anchor", &v.ContentAnchor, st.point)

	return st.element(model.TypeLeader, &v.ElementBase, func(s slots) {
		st.flattenLinear(s.at(schema.LayerLinear), linear)
		st.s.Ref(s.field(schema.LeaderContent), content)
		st.s.Ref(s.field(schema.LeaderContentAnchor), anchor)
	})
}

func decodeLeader(st *decodeState, t elementTable, base model.ElementBase) *model.Leader {
	return &model.Leader{
		ElementBase: base,
		Linear:      st.unflattenLinear(t.Table, t.at(schema.LayerLinear)),
		Content:     decodeOpt(st, t.Table, t.field(schema.LeaderContent), "content", st.leaderContent),
		ContentAnchor: decodeSub(st, t.Table, t.field(schema.LeaderContentAnchor), "content_anchor",
			model.GeometricPoint{}, st.point),
	}
}

func (st *encodeState) freeDrawEnds(v *model.FreeDrawEnds) wire.Offset {
	easing := st.s.String(v.Easing)

	st.s.StartTable(schema.FreeDrawEndsLayout)
	st.s.Bool(schema.EndsCap, v.Cap)
	st.s.Float64(schema.EndsTaper, v.Taper)
	st.s.Ref(schema.EndsEasing, easing)

	return st.s.EndTable()
}

func (st *decodeState) freeDrawEnds(t wire.Table) model.FreeDrawEnds {
	return model.FreeDrawEnds{
		Cap:    t.Bool(schema.EndsCap, false),
		Taper:  t.Float64(schema.EndsTaper, 0),
		Easing: stringOr(t, schema.EndsEasing, DefaultFreeDrawEasing),
	}
}

func encodeFreeDraw(st *encodeState, v *model.FreeDraw) wire.Offset {
	points := encodeList(st, "points", v.Points, st.point)
	easing := st.s.String(v.Easing)
	start := encodeOpt(st, "start", v.Start, st.freeDrawEnds)
	end := encodeOpt(st, "end", v.End, st.freeDrawEnds)
	pressures := st.s.Float32s(v.Pressures)
	last := encodeOpt(st, "last_committed_point", v.LastCommittedPoint, st.point)
	svgPath := st.s.OptString(v.SvgPath)

	return st.element(model.TypeFreeDraw, &v.ElementBase, func(s slots) {
		st.s.Ref(s.field(schema.FreeDrawPoints), points)
		st.s.Float64(s.field(schema.FreeDrawSize), v.Size)
		st.s.Float64(s.field(schema.FreeDrawThinning), v.Thinning)
		st.s.Float64(s.field(schema.FreeDrawSmoothing), v.Smoothing)
		st.s.Float64(s.field(schema.FreeDrawStreamline), v.Streamline)
		st.s.Ref(s.field(schema.FreeDrawEasing), easing)
		st.s.Ref(s.field(schema.FreeDrawStart), start)
		st.s.Ref(s.field(schema.FreeDrawEnd), end)
		st.s.Ref(s.field(schema.FreeDrawPressures), pressures)
		st.s.Bool(s.field(schema.FreeDrawSimulatePressure), v.SimulatePressure)
		st.s.Ref(s.field(schema.FreeDrawLastCommittedPoint), last)
		st.s.Ref(s.field(schema.FreeDrawSvgPath), svgPath)
	})
}

func decodeFreeDraw(st *decodeState, t elementTable, base model.ElementBase) *model.FreeDraw {
	return &model.FreeDraw{
		ElementBase:      base,
		Points:           decodeList(st, t.Table, t.field(schema.FreeDrawPoints), "points", st.point),
		Size:             t.Float64(t.field(schema.FreeDrawSize), DefaultFreeDrawSize),
		Thinning:         t.Float64(t.field(schema.FreeDrawThinning), DefaultFreeDrawThinning),
		Smoothing:        t.Float64(t.field(schema.FreeDrawSmoothing), DefaultFreeDrawSmoothing),
		Streamline:       t.Float64(t.field(schema.FreeDrawStreamline), DefaultFreeDrawStreamline),
		Easing:           stringOr(t.Table, t.field(schema.FreeDrawEasing), DefaultFreeDrawEasing),
		Start:            decodeOpt(st, t.Table, t.field(schema.FreeDrawStart), "start", st.freeDrawEnds),
		End:              decodeOpt(st, t.Table, t.field(schema.FreeDrawEnd), "end", st.freeDrawEnds),
		Pressures:        t.Float32s(t.field(schema.FreeDrawPressures)),
		SimulatePressure: t.Bool(t.field(schema.FreeDrawSimulatePressure), false),
		LastCommittedPoint: decodeOpt(st, t.Table, t.field(schema.FreeDrawLastCommittedPoint),
			"last_committed_point", st.point),
		SvgPath: t.OptString(t.field(schema.FreeDrawSvgPath)),
	}
}

func encodeDimension(st *encodeState, v *model.Dimension) wire.Offset {
	typ := encodeEnum(st, "dimension_type", v.DimensionType, model.DimensionTypeMax)
	origin1 := encodeSub(st, "origin1", &v.Origin1, st.point)
	origin2 := encodeSub(st, "origin2", &v.Origin2, st.point)
	location := encodeSub(st, "location", &v.Location, st.point)
	center := encodeOpt(st, "center", v.Center, st.point)
	override := st.s.OptString(v.TextOverride)
	position := encodeOpt(st, "text_position", v.TextPosition, st.point)

	return st.element(model.TypeDimension, &v.ElementBase, func(s slots) {
		st.s.Uint8(s.field(schema.DimensionType), typ)
		st.s.Ref(s.field(schema.DimensionOrigin1), origin1)
		st.s.Ref(s.field(schema.DimensionOrigin2), origin2)
		st.s.Ref(s.field(schema.DimensionLocation), location)
		st.s.Ref(s.field(schema.DimensionCenter), center)
		st.s.Float64(s.field(schema.DimensionObliqueAngle), v.ObliqueAngle)
		st.s.Ref(s.field(schema.DimensionTextOverride), override)
		st.s.Ref(s.field(schema.DimensionTextPosition), position)
	})
}

func decodeDimension(st *decodeState, t elementTable, base model.ElementBase) *model.Dimension {
	origin := model.GeometricPoint{}

	return &model.Dimension{
		ElementBase: base,
		DimensionType: decodeEnum(st, "dimension_type",
			t.Uint8(t.field(schema.DimensionType), 0), model.DimensionTypeMax),
		Origin1:      decodeSub(st, t.Table, t.field(schema.DimensionOrigin1), "origin1", origin, st.point),
		Origin2:      decodeSub(st, t.Table, t.field(schema.DimensionOrigin2), "origin2", origin, st.point),
		Location:     decodeSub(st, t.Table, t.field(schema.DimensionLocation), "location", origin, st.point),
		Center:       decodeOpt(st, t.Table, t.field(schema.DimensionCenter), "center", st.point),
		ObliqueAngle: t.Float64(t.field(schema.DimensionObliqueAngle), 0),
		TextOverride: t.OptString(t.field(schema.DimensionTextOverride)),
		TextPosition: decodeOpt(st, t.Table, t.field(schema.DimensionTextPosition), "text_position", st.point),
	}
}

func (st *encodeState) fcfSegment(v *model.FCFSegment) wire.Offset {
	tolerance := st.s.String(v.Tolerance)
	datums := st.s.Strings(v.Datums)
	symbol := encodeEnum(st, "symbol", v.Symbol, model.GDTSymbolMax)

	st.s.StartTable(schema.FCFSegmentLayout)
	st.s.Uint8(schema.SegmentSymbol, symbol)
	st.s.Ref(schema.SegmentTolerance, tolerance)
	st.s.Ref(schema.SegmentDatums, datums)

	return st.s.EndTable()
}

func (st *decodeState) fcfSegment(t wire.Table) model.FCFSegment {
	return model.FCFSegment{
		Symbol:    decodeEnum(st, "symbol", t.Uint8(schema.SegmentSymbol, 0), model.GDTSymbolMax),
		Tolerance: t.String(schema.SegmentTolerance),
		Datums:    t.Strings(schema.SegmentDatums),
	}
}

func encodeFeatureControlFrame(st *encodeState, v *model.FeatureControlFrame) wire.Offset {
	segments := encodeList(st, "segments", v.Segments, st.fcfSegment)
	datum := st.s.OptString(v.DatumDefinition)

	return st.element(model.TypeFeatureControlFrame, &v.ElementBase, func(s slots) {
		st.s.Ref(s.field(schema.FCFSegments), segments)
		st.s.Ref(s.field(schema.FCFDatumDefinition), datum)
	})
}

func decodeFeatureControlFrame(st *decodeState, t elementTable, base model.ElementBase) *model.FeatureControlFrame {
	return &model.FeatureControlFrame{
		ElementBase:     base,
		Segments:        decodeList(st, t.Table, t.field(schema.FCFSegments), "segments", st.fcfSegment),
		DatumDefinition: t.OptString(t.field(schema.FCFDatumDefinition)),
	}
}
