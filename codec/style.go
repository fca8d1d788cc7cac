package codec

import (
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/schema"
	"github.com/arloliu/cadbin/wire"
)

func (st *encodeState) styles(v *model.StyleBase) wire.Offset {
	background := encodeList(st, "background", v.Background, st.background)
	stroke := encodeList(st, "stroke", v.Stroke, st.stroke)
	blending, hasBlending := encodeOptEnum(st, "blending", v.Blending, model.BlendingModeMax)

	st.s.StartTable(schema.StyleBaseLayout)
	st.s.Float64(schema.StylesRoundness, v.Roundness)
	if hasBlending {
		st.s.Uint8(schema.StylesBlending, blending)
	}
	st.s.Ref(schema.StylesBackground, background)
	st.s.Ref(schema.StylesStroke, stroke)
	st.s.Float64(schema.StylesOpacity, v.Opacity)

	return st.s.EndTable()
}

func (st *decodeState) styles(t wire.Table) model.StyleBase {
	blending, hasBlending := t.OptUint8(schema.StylesBlending)

	return model.StyleBase{
		Roundness:  t.Float64(schema.StylesRoundness, 0),
		Blending:   decodeOptEnum(st, "blending", blending, hasBlending, model.BlendingModeMax),
		Background: decodeList(st, t, schema.StylesBackground, "background", st.background),
		Stroke:     decodeList(st, t, schema.StylesStroke, "stroke", st.stroke),
		Opacity:    t.Float64(schema.StylesOpacity, DefaultOpacity),
	}
}

func (st *encodeState) content(v *model.Content) wire.Offset {
	src := st.s.String(v.Src)
	preference := encodeEnum(st, "preference", v.Preference, model.FillTypeMax)

	st.s.StartTable(schema.ContentLayout)
	st.s.Uint8(schema.ContentPreference, preference)
	st.s.Ref(schema.ContentSrc, src)
	st.s.Bool(schema.ContentVisible, v.Visible)
	st.s.Float64(schema.ContentOpacity, v.Opacity)

	return st.s.EndTable()
}

func (st *decodeState) content(t wire.Table) model.Content {
	return model.Content{
		Preference: decodeEnum(st, "preference", t.Uint8(schema.ContentPreference, 0), model.FillTypeMax),
		Src:        t.String(schema.ContentSrc),
		Visible:    t.Bool(schema.ContentVisible, DefaultVisible),
		Opacity:    t.Float64(schema.ContentOpacity, DefaultOpacity),
	}
}

func defaultContent() model.Content {
	return model.Content{Visible: DefaultVisible, Opacity: DefaultOpacity}
}

func (st *encodeState) background(v *model.ElementBackground) wire.Offset {
	content := encodeSub(st, "content", &v.Content, st.content)

	st.s.StartTable(schema.BackgroundLayout)
	st.s.Ref(schema.BackgroundContent, content)

	return st.s.EndTable()
}

func (st *decodeState) background(t wire.Table) model.ElementBackground {
	return model.ElementBackground{
		Content: decodeSub(st, t, schema.BackgroundContent, "content", defaultContent(), st.content),
	}
}

func (st *encodeState) stroke(v *model.ElementStroke) wire.Offset {
	content := encodeSub(st, "content", &v.Content, st.content)
	style := encodeSub(st, "style", &v.Style, st.strokeStyle)
	placement := encodeEnum(st, "placement", v.Placement, model.StrokePlacementMax)

	st.s.StartTable(schema.StrokeLayout)
	st.s.Ref(schema.StrokeContent, content)
	st.s.Float64(schema.StrokeWidth, v.Width)
	st.s.Ref(schema.StrokeStyle, style)
	st.s.Uint8(schema.StrokePlacement, placement)

	return st.s.EndTable()
}

func (st *decodeState) stroke(t wire.Table) model.ElementStroke {
	return model.ElementStroke{
		Content: decodeSub(st, t, schema.StrokeContent, "content", defaultContent(), st.content),
		Width:   t.Float64(schema.StrokeWidth, DefaultStrokeWidth),
		Style:   decodeSub(st, t, schema.StrokeStyle, "style", defaultStrokeStyle(), st.strokeStyle),
		Placement: decodeEnum(st, "placement",
			t.Uint8(schema.StrokePlacement, uint8(DefaultStrokePlacement)), model.StrokePlacementMax),
	}
}

func (st *encodeState) strokeStyle(v *model.StrokeStyle) wire.Offset {
	dash := st.s.Float64s(v.Dash)
	preference := encodeEnum(st, "preference", v.Preference, model.StrokePreferenceMax)
	capCode, hasCap := encodeOptEnum(st, "cap", v.Cap, model.StrokeCapMax)
	join, hasJoin := encodeOptEnum(st, "join", v.Join, model.StrokeJoinMax)
	dashCap, hasDashCap := encodeOptEnum(st, "dash_cap", v.DashCap, model.StrokeCapMax)

	st.s.StartTable(schema.StrokeStyleLayout)
	st.s.Uint8(schema.StrokeStylePreference, preference)
	if hasCap {
		st.s.Uint8(schema.StrokeStyleCap, capCode)
	}
	if hasJoin {
		st.s.Uint8(schema.StrokeStyleJoin, join)
	}
	st.s.Ref(schema.StrokeStyleDash, dash)
	if hasDashCap {
		st.s.Uint8(schema.StrokeStyleDashCap, dashCap)
	}
	st.s.OptFloat64(schema.StrokeStyleMiterLimit, v.MiterLimit)

	return st.s.EndTable()
}

func (st *decodeState) strokeStyle(t wire.Table) model.StrokeStyle {
	capCode, hasCap := t.OptUint8(schema.StrokeStyleCap)
	join, hasJoin := t.OptUint8(schema.StrokeStyleJoin)
	dashCap, hasDashCap := t.OptUint8(schema.StrokeStyleDashCap)

	return model.StrokeStyle{
		Preference: decodeEnum(st, "preference", t.Uint8(schema.StrokeStylePreference, 0), model.StrokePreferenceMax),
		Cap:        decodeOptEnum(st, "cap", capCode, hasCap, model.StrokeCapMax),
		Join:       decodeOptEnum(st, "join", join, hasJoin, model.StrokeJoinMax),
		Dash:       t.Float64s(schema.StrokeStyleDash),
		DashCap:    decodeOptEnum(st, "dash_cap", dashCap, hasDashCap, model.StrokeCapMax),
		MiterLimit: t.OptFloat64(schema.StrokeStyleMiterLimit),
	}
}

func (st *encodeState) textStyle(v *model.TextStyle) wire.Offset {
	family := st.s.String(v.FontFamily)
	bigFamily := st.s.String(v.BigFontFamily)
	align := encodeEnum(st, "text_align", v.TextAlign, model.TextAlignMax)
	valign := encodeEnum(st, "vertical_align", v.VerticalAlign, model.VerticalAlignMax)

	st.s.StartTable(schema.TextStyleLayout)
	st.s.Bool(schema.TextStyleIsLTR, v.IsLTR)
	st.s.Ref(schema.TextStyleFontFamily, family)
	st.s.Ref(schema.TextStyleBigFontFamily, bigFamily)
	st.s.Uint8(schema.TextStyleTextAlign, align)
	st.s.Uint8(schema.TextStyleVerticalAlign, valign)
	st.s.Float64(schema.TextStyleLineHeight, v.LineHeight)
	st.s.Float64(schema.TextStyleFontSize, v.FontSize)
	st.s.Float64(schema.TextStyleObliqueAngle, v.ObliqueAngle)
	st.s.Float64(schema.TextStyleWidthFactor, v.WidthFactor)

	return st.s.EndTable()
}

func (st *decodeState) textStyle(t wire.Table) model.TextStyle {
	return model.TextStyle{
		IsLTR:         t.Bool(schema.TextStyleIsLTR, DefaultIsLTR),
		FontFamily:    t.String(schema.TextStyleFontFamily),
		BigFontFamily: t.String(schema.TextStyleBigFontFamily),
		TextAlign:     decodeEnum(st, "text_align", t.Uint8(schema.TextStyleTextAlign, 0), model.TextAlignMax),
		VerticalAlign: decodeEnum(st, "vertical_align", t.Uint8(schema.TextStyleVerticalAlign, 0), model.VerticalAlignMax),
		LineHeight:    t.Float64(schema.TextStyleLineHeight, DefaultLineHeight),
		FontSize:      t.Float64(schema.TextStyleFontSize, DefaultFontSize),
		ObliqueAngle:  t.Float64(schema.TextStyleObliqueAngle, 0),
		WidthFactor:   t.Float64(schema.TextStyleWidthFactor, DefaultWidthFactor),
	}
}

func (st *encodeState) point(v *model.GeometricPoint) wire.Offset {
	st.s.StartTable(schema.PointLayout)
	st.s.Float64(schema.PointX, v.X)
	st.s.Float64(schema.PointY, v.Y)

	return st.s.EndTable()
}

func (st *decodeState) point(t wire.Table) model.GeometricPoint {
	return model.GeometricPoint{
		X: t.Float64(schema.PointX, 0),
		Y: t.Float64(schema.PointY, 0),
	}
}

func (st *encodeState) margins(v *model.Margins) wire.Offset {
	st.s.StartTable(schema.MarginsLayout)
	st.s.Float64(schema.MarginsTop, v.Top)
	st.s.Float64(schema.MarginsRight, v.Right)
	st.s.Float64(schema.MarginsBottom, v.Bottom)
	st.s.Float64(schema.MarginsLeft, v.Left)

	return st.s.EndTable()
}

func (st *decodeState) margins(t wire.Table) model.Margins {
	return model.Margins{
		Top:    t.Float64(schema.MarginsTop, 0),
		Right:  t.Float64(schema.MarginsRight, 0),
		Bottom: t.Float64(schema.MarginsBottom, 0),
		Left:   t.Float64(schema.MarginsLeft, 0),
	}
}

func (st *encodeState) lineHead(v *model.LineHead) wire.Offset {
	typ := encodeEnum(st, "type", v.Type, model.LineHeadTypeMax)

	st.s.StartTable(schema.LineHeadLayout)
	st.s.Uint8(schema.HeadType, typ)
	st.s.Float64(schema.HeadSize, v.Size)

	return st.s.EndTable()
}

func (st *decodeState) lineHead(t wire.Table) model.LineHead {
	return model.LineHead{
		Type: decodeEnum(st, "type", t.Uint8(schema.HeadType, 0), model.LineHeadTypeMax),
		Size: t.Float64(schema.HeadSize, DefaultLineHeadSize),
	}
}

func (st *encodeState) boundElement(v *model.BoundElement) wire.Offset {
	id := st.s.String(v.ID)
	typ := st.s.String(v.Type)

	st.s.StartTable(schema.BoundElementLayout)
	st.s.Ref(schema.BoundElementID, id)
	st.s.Ref(schema.BoundElementType, typ)

	return st.s.EndTable()
}

func (st *decodeState) boundElement(t wire.Table) model.BoundElement {
	return model.BoundElement{
		ID:   t.String(schema.BoundElementID),
		Type: t.String(schema.BoundElementType),
	}
}
