package codec

import (
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/schema"
	"github.com/arloliu/cadbin/wire"
)

func encodeRectangle(st *encodeState, v *model.Rectangle) wire.Offset {
	return st.element(model.TypeRectangle, &v.ElementBase, func(slots) {})
}

func decodeRectangle(_ *decodeState, _ elementTable, base model.ElementBase) *model.Rectangle {
	return &model.Rectangle{ElementBase: base}
}

func encodeEmbeddable(st *encodeState, v *model.Embeddable) wire.Offset {
	return st.element(model.TypeEmbeddable, &v.ElementBase, func(slots) {})
}

func decodeEmbeddable(_ *decodeState, _ elementTable, base model.ElementBase) *model.Embeddable {
	return &model.Embeddable{ElementBase: base}
}

func encodePolygon(st *encodeState, v *model.Polygon) wire.Offset {
	return st.element(model.TypePolygon, &v.ElementBase, func(s slots) {
		st.s.Int32(s.field(schema.PolygonSides), v.Sides)
	})
}

func decodePolygon(_ *decodeState, t elementTable, base model.ElementBase) *model.Polygon {
	return &model.Polygon{
		ElementBase: base,
		Sides:       t.Int32(t.field(schema.PolygonSides), DefaultPolygonSides),
	}
}

func encodeEllipse(st *encodeState, v *model.Ellipse) wire.Offset {
	return st.element(model.TypeEllipse, &v.ElementBase, func(s slots) {
		st.s.Float64(s.field(schema.EllipseRatio), v.Ratio)
		st.s.Float64(s.field(schema.EllipseStartAngle), v.StartAngle)
		st.s.Float64(s.field(schema.EllipseEndAngle), v.EndAngle)
		st.s.Bool(s.field(schema.EllipseShowAuxCrosshair), v.ShowAuxCrosshair)
	})
}

func decodeEllipse(_ *decodeState, t elementTable, base model.ElementBase) *model.Ellipse {
	return &model.Ellipse{
		ElementBase:      base,
		Ratio:            t.Float64(t.field(schema.EllipseRatio), DefaultEllipseRatio),
		StartAngle:       t.Float64(t.field(schema.EllipseStartAngle), 0),
		EndAngle:         t.Float64(t.field(schema.EllipseEndAngle), DefaultEllipseEndAngle),
		ShowAuxCrosshair: t.Bool(t.field(schema.EllipseShowAuxCrosshair), false),
	}
}

func encodeXRay(st *encodeState, v *model.XRay) wire.Offset {
	origin := encodeSub(st, "origin", &v.Origin, st.point)
	direction := encodeSub(st, "direction", &v.Direction, st.point)
	color := st.s.String(v.Color)

	return st.element(model.TypeXRay, &v.ElementBase, func(s slots) {
		st.s.Ref(s.field(schema.XRayOrigin), origin)
		st.s.Ref(s.field(schema.XRayDirection), direction)
		st.s.Bool(s.field(schema.XRayStartFromOrigin), v.StartFromOrigin)
		st.s.Ref(s.field(schema.XRayColor), color)
	})
}

func decodeXRay(st *decodeState, t elementTable, base model.ElementBase) *model.XRay {
	return &model.XRay{
		ElementBase:     base,
		Origin:          decodeSub(st, t.Table, t.field(schema.XRayOrigin), "origin", model.GeometricPoint{}, st.point),
		Direction:       decodeSub(st, t.Table, t.field(schema.XRayDirection), "direction", model.GeometricPoint{X: 1}, st.point),
		StartFromOrigin: t.Bool(t.field(schema.XRayStartFromOrigin), false),
		Color:           t.String(t.field(schema.XRayColor)),
	}
}
