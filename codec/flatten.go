package codec

import (
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/schema"
	"github.com/arloliu/cadbin/wire"
)

// Shared layers are flattened into the table of their owner instead of being nested. Every
// layer has a two-phase writer: prepare creates the strings, vectors and sub-tables (which
// FlatBuffers forbids while a table is open) and flatten writes the slots of the open table,
// starting at the layer's first slot. unflatten reads the same slots back.

type elementBaseRefs struct {
	id, styles, scope, label, description, index  wire.Offset
	groupIDs, regionIDs, layerID, frameID, bounds wire.Offset
	link, customData                              wire.Offset
}

func (st *encodeState) prepareElementBase(b *model.ElementBase) elementBaseRefs {
	return elementBaseRefs{
		id:          st.s.String(b.ID),
		styles:      encodeSub(st, "styles", &b.Styles, st.styles),
		scope:       st.s.String(b.Scope),
		label:       st.s.String(b.Label),
		description: st.s.OptString(b.Description),
		index:       st.s.OptString(b.Index),
		groupIDs:    st.s.Strings(b.GroupIDs),
		regionIDs:   st.s.Strings(b.RegionIDs),
		layerID:     st.s.OptString(b.LayerID),
		frameID:     st.s.OptString(b.FrameID),
		bounds:      encodeList(st, "bound_elements", b.BoundElements, st.boundElement),
		link:        st.s.OptString(b.Link),
		customData:  st.s.Bytes(st.customData(b.CustomData)),
	}
}

func (st *encodeState) flattenElementBase(at int, b *model.ElementBase, r elementBaseRefs) {
	st.s.Ref(at+schema.BaseID, r.id)
	st.s.Ref(at+schema.BaseStyles, r.styles)
	st.s.Float64(at+schema.BaseX, b.X)
	st.s.Float64(at+schema.BaseY, b.Y)
	st.s.Float64(at+schema.BaseWidth, b.Width)
	st.s.Float64(at+schema.BaseHeight, b.Height)
	st.s.Float64(at+schema.BaseAngle, b.Angle)
	st.s.Ref(at+schema.BaseScope, r.scope)
	st.s.Ref(at+schema.BaseLabel, r.label)
	st.s.Ref(at+schema.BaseDescription, r.description)
	st.s.Bool(at+schema.BaseIsVisible, b.IsVisible)
	st.s.Int32(at+schema.BaseSeed, b.Seed)
	st.s.Int32(at+schema.BaseVersion, b.Version)
	st.s.Int32(at+schema.BaseVersionNonce, b.VersionNonce)
	st.s.Int64(at+schema.BaseUpdated, b.Updated)
	st.s.Ref(at+schema.BaseIndex, r.index)
	st.s.Bool(at+schema.BaseIsPlot, b.IsPlot)
	st.s.Bool(at+schema.BaseIsAnnotative, b.IsAnnotative)
	st.s.Bool(at+schema.BaseIsDeleted, b.IsDeleted)
	st.s.Ref(at+schema.BaseGroupIDs, r.groupIDs)
	st.s.Ref(at+schema.BaseRegionIDs, r.regionIDs)
	st.s.Ref(at+schema.BaseLayerID, r.layerID)
	st.s.Ref(at+schema.BaseFrameID, r.frameID)
	st.s.Ref(at+schema.BaseBoundElements, r.bounds)
	st.s.Float32(at+schema.BaseZIndex, b.ZIndex)
	st.s.Ref(at+schema.BaseLink, r.link)
	st.s.Bool(at+schema.BaseLocked, b.Locked)
	st.s.Ref(at+schema.BaseCustomData, r.customData)
}

// unflattenElementBase reads the base layer. The id is required.
func (st *decodeState) unflattenElementBase(t wire.Table, at int) model.ElementBase {
	if !t.Has(at + schema.BaseID) {
		st.missing("id")
	}

	return model.ElementBase{
		ID:            t.String(at + schema.BaseID),
		Styles:        decodeSub(st, t, at+schema.BaseStyles, "styles", defaultStyles(), st.styles),
		X:             t.Float64(at+schema.BaseX, 0),
		Y:             t.Float64(at+schema.BaseY, 0),
		Width:         t.Float64(at+schema.BaseWidth, 0),
		Height:        t.Float64(at+schema.BaseHeight, 0),
		Angle:         t.Float64(at+schema.BaseAngle, 0),
		Scope:         stringOr(t, at+schema.BaseScope, DefaultScope),
		Label:         t.String(at + schema.BaseLabel),
		Description:   t.OptString(at + schema.BaseDescription),
		IsVisible:     t.Bool(at+schema.BaseIsVisible, DefaultVisible),
		Seed:          t.Int32(at+schema.BaseSeed, 0),
		Version:       t.Int32(at+schema.BaseVersion, 0),
		VersionNonce:  t.Int32(at+schema.BaseVersionNonce, 0),
		Updated:       t.Int64(at+schema.BaseUpdated, 0),
		Index:         t.OptString(at + schema.BaseIndex),
		IsPlot:        t.Bool(at+schema.BaseIsPlot, false),
		IsAnnotative:  t.Bool(at+schema.BaseIsAnnotative, false),
		IsDeleted:     t.Bool(at+schema.BaseIsDeleted, false),
		GroupIDs:      t.Strings(at + schema.BaseGroupIDs),
		RegionIDs:     t.Strings(at + schema.BaseRegionIDs),
		LayerID:       t.OptString(at + schema.BaseLayerID),
		FrameID:       t.OptString(at + schema.BaseFrameID),
		BoundElements: decodeList(st, t, at+schema.BaseBoundElements, "bound_elements", st.boundElement),
		ZIndex:        t.Float32(at+schema.BaseZIndex, 0),
		Link:          t.OptString(at + schema.BaseLink),
		Locked:        t.Bool(at+schema.BaseLocked, false),
		CustomData:    st.customData(t.Bytes(at + schema.BaseCustomData)),
	}
}

// stringOr returns the string in slot, or def when the slot is absent. A present empty
// string stays empty.
func stringOr(t wire.Table, slot int, def string) string {
	if !t.Has(slot) {
		return def
	}

	return t.String(slot)
}

type stackRefs struct {
	label, description, labelingColor wire.Offset
}

func (st *encodeState) prepareStack(s *model.StackBase) stackRefs {
	return stackRefs{
		label:         st.s.String(s.Label),
		description:   st.s.OptString(s.Description),
		labelingColor: st.s.String(s.LabelingColor),
	}
}

func (st *encodeState) flattenStack(at int, s *model.StackBase, r stackRefs) {
	st.s.Ref(at+schema.StackLabel, r.label)
	st.s.Ref(at+schema.StackDescription, r.description)
	st.s.Bool(at+schema.StackIsCollapsed, s.IsCollapsed)
	st.s.Bool(at+schema.StackIsPlot, s.IsPlot)
	st.s.Bool(at+schema.StackIsVisible, s.IsVisible)
	st.s.Bool(at+schema.StackLocked, s.Locked)
	st.s.Float64(at+schema.StackOpacity, s.Opacity)
	st.s.Ref(at+schema.StackLabelingColor, r.labelingColor)
}

func (st *decodeState) unflattenStack(t wire.Table, at int) model.StackBase {
	return model.StackBase{
		Label:         t.String(at + schema.StackLabel),
		Description:   t.OptString(at + schema.StackDescription),
		IsCollapsed:   t.Bool(at+schema.StackIsCollapsed, false),
		IsPlot:        t.Bool(at+schema.StackIsPlot, false),
		IsVisible:     t.Bool(at+schema.StackIsVisible, DefaultVisible),
		Locked:        t.Bool(at+schema.StackLocked, false),
		Opacity:       t.Float64(at+schema.StackOpacity, DefaultOpacity),
		LabelingColor: t.String(at + schema.StackLabelingColor),
	}
}

type stackElementRefs struct {
	stack            stackRefs
	standardOverride wire.Offset
}

func (st *encodeState) prepareStackElement(s *model.StackElementBase) stackElementRefs {
	return stackElementRefs{
		stack:            st.prepareStack(&s.StackBase),
		standardOverride: st.s.OptString(s.StandardOverride),
	}
}

// flattenStackElement writes both the stack layer and the stack element layer of lay.
func (st *encodeState) flattenStackElement(lay *schema.Layout, s *model.StackElementBase, r stackElementRefs) {
	st.flattenStack(lay.Start(schema.LayerStack), &s.StackBase, r.stack)

	at := lay.Start(schema.LayerStackElement)
	st.s.Bool(at+schema.StackElementClip, s.Clip)
	st.s.Bool(at+schema.StackElementLabelVisible, s.LabelVisible)
	st.s.Ref(at+schema.StackElementStandardOverride, r.standardOverride)
}

func (st *decodeState) unflattenStackElement(t wire.Table, lay *schema.Layout) model.StackElementBase {
	at := lay.Start(schema.LayerStackElement)

	return model.StackElementBase{
		StackBase:        st.unflattenStack(t, lay.Start(schema.LayerStack)),
		Clip:             t.Bool(at+schema.StackElementClip, false),
		LabelVisible:     t.Bool(at+schema.StackElementLabelVisible, DefaultLabelVisible),
		StandardOverride: t.OptString(at + schema.StackElementStandardOverride),
	}
}

type linearRefs struct {
	points, lines, overrides, lastCommitted, startBinding, endBinding wire.Offset
}

func (st *encodeState) prepareLinear(l *model.LinearBase) linearRefs {
	return linearRefs{
		points:        encodeList(st, "points", l.Points, st.linePoint),
		lines:         encodeList(st, "lines", l.Lines, st.lineSegment),
		overrides:     encodeList(st, "path_overrides", l.PathOverrides, st.pathOverride),
		lastCommitted: encodeOpt(st, "last_committed_point", l.LastCommittedPoint, st.linePoint),
		startBinding:  encodeOpt(st, "start_binding", l.StartBinding, st.pointBinding),
		endBinding:    encodeOpt(st, "end_binding", l.EndBinding, st.pointBinding),
	}
}

func (st *encodeState) flattenLinear(at int, r linearRefs) {
	st.s.Ref(at+schema.LinearPoints, r.points)
	st.s.Ref(at+schema.LinearLines, r.lines)
	st.s.Ref(at+schema.LinearPathOverrides, r.overrides)
	st.s.Ref(at+schema.LinearLastCommittedPoint, r.lastCommitted)
	st.s.Ref(at+schema.LinearStartBinding, r.startBinding)
	st.s.Ref(at+schema.LinearEndBinding, r.endBinding)
}

func (st *decodeState) unflattenLinear(t wire.Table, at int) model.LinearBase {
	return model.LinearBase{
		Points:             decodeList(st, t, at+schema.LinearPoints, "points", st.linePoint),
		Lines:              decodeList(st, t, at+schema.LinearLines, "lines", st.lineSegment),
		PathOverrides:      decodeList(st, t, at+schema.LinearPathOverrides, "path_overrides", st.pathOverride),
		LastCommittedPoint: decodeOpt(st, t, at+schema.LinearLastCommittedPoint, "last_committed_point", st.linePoint),
		StartBinding:       decodeOpt(st, t, at+schema.LinearStartBinding, "start_binding", st.pointBinding),
		EndBinding:         decodeOpt(st, t, at+schema.LinearEndBinding, "end_binding", st.pointBinding),
	}
}

type versionBaseRefs struct {
	id, parentID, description, userID wire.Offset
}

func (st *encodeState) prepareVersionBase(v *model.VersionBase) versionBaseRefs {
	return versionBaseRefs{
		id:          st.s.String(v.ID),
		parentID:    st.s.OptString(v.ParentID),
		description: st.s.OptString(v.Description),
		userID:      st.s.OptString(v.UserID),
	}
}

func (st *encodeState) flattenVersionBase(at int, v *model.VersionBase, r versionBaseRefs) {
	st.s.Ref(at+schema.VersionID, r.id)
	st.s.Ref(at+schema.VersionParentID, r.parentID)
	st.s.Int64(at+schema.VersionTimestamp, v.Timestamp)
	st.s.Ref(at+schema.VersionDescription, r.description)
	st.s.Bool(at+schema.VersionIsManualSave, v.IsManualSave)
	st.s.Ref(at+schema.VersionUserID, r.userID)
}

// unflattenVersionBase reads the version layer. The id is required.
func (st *decodeState) unflattenVersionBase(t wire.Table, at int) model.VersionBase {
	if !t.Has(at + schema.VersionID) {
		st.missing("id")
	}

	return model.VersionBase{
		ID:           t.String(at + schema.VersionID),
		ParentID:     t.OptString(at + schema.VersionParentID),
		Timestamp:    t.Int64(at+schema.VersionTimestamp, 0),
		Description:  t.OptString(at + schema.VersionDescription),
		IsManualSave: t.Bool(at+schema.VersionIsManualSave, false),
		UserID:       t.OptString(at + schema.VersionUserID),
	}
}

func (st *encodeState) linePoint(v *model.LinePoint) wire.Offset {
	mirroring, hasMirroring := encodeOptEnum(st, "mirroring", v.Mirroring, model.BezierMirroringMax)

	st.s.StartTable(schema.LinePointLayout)
	st.s.Float64(schema.LinePointX, v.Position.X)
	st.s.Float64(schema.LinePointY, v.Position.Y)
	if hasMirroring {
		st.s.Uint8(schema.LinePointMirroring, mirroring)
	}

	return st.s.EndTable()
}

func (st *decodeState) linePoint(t wire.Table) model.LinePoint {
	mirroring, hasMirroring := t.OptUint8(schema.LinePointMirroring)

	return model.LinePoint{
		Position: model.GeometricPoint{
			X: t.Float64(schema.LinePointX, 0),
			Y: t.Float64(schema.LinePointY, 0),
		},
		Mirroring: decodeOptEnum(st, "mirroring", mirroring, hasMirroring, model.BezierMirroringMax),
	}
}

func (st *encodeState) lineReference(v *model.LineReference) wire.Offset {
	handle := encodeOpt(st, "handle", v.Handle, st.point)

	st.s.StartTable(schema.LineReferenceLayout)
	st.s.Int32(schema.LineRefIndex, v.Index)
	st.s.Ref(schema.LineRefHandle, handle)

	return st.s.EndTable()
}

func (st *decodeState) lineReference(t wire.Table) model.LineReference {
	return model.LineReference{
		Index:  t.Int32(schema.LineRefIndex, 0),
		Handle: decodeOpt(st, t, schema.LineRefHandle, "handle", st.point),
	}
}

func (st *encodeState) lineSegment(v *model.LineSegment) wire.Offset {
	start := encodeSub(st, "start", &v.Start, st.lineReference)
	end := encodeSub(st, "end", &v.End, st.lineReference)

	st.s.StartTable(schema.LineSegmentLayout)
	st.s.Ref(schema.SegmentStart, start)
	st.s.Ref(schema.SegmentEnd, end)

	return st.s.EndTable()
}

func (st *decodeState) lineSegment(t wire.Table) model.LineSegment {
	return model.LineSegment{
		Start: decodeSub(st, t, schema.SegmentStart, "start", model.LineReference{}, st.lineReference),
		End:   decodeSub(st, t, schema.SegmentEnd, "end", model.LineReference{}, st.lineReference),
	}
}

func (st *encodeState) pathOverride(v *model.PathOverride) wire.Offset {
	indices := st.s.Int32s(v.LineIndices)
	styles := encodeSub(st, "styles", &v.Styles, st.styles)

	st.s.StartTable(schema.PathOverrideLayout)
	st.s.Ref(schema.PathOverrideLineIndices, indices)
	st.s.Ref(schema.PathOverrideStyles, styles)

	return st.s.EndTable()
}

func (st *decodeState) pathOverride(t wire.Table) model.PathOverride {
	return model.PathOverride{
		LineIndices: t.Int32s(schema.PathOverrideLineIndices),
		Styles:      decodeSub(st, t, schema.PathOverrideStyles, "styles", defaultStyles(), st.styles),
	}
}

func (st *encodeState) pointBinding(v *model.PointBinding) wire.Offset {
	elementID := st.s.String(v.ElementID)
	fixed := encodeOpt(st, "fixed_point", v.FixedPoint, st.point)
	head := encodeOpt(st, "head", v.Head, st.lineHead)

	st.s.StartTable(schema.PointBindingLayout)
	st.s.Ref(schema.BindingElementID, elementID)
	st.s.Float64(schema.BindingFocus, v.Focus)
	st.s.Float64(schema.BindingGap, v.Gap)
	st.s.Ref(schema.BindingFixedPoint, fixed)
	st.s.Ref(schema.BindingHead, head)

	return st.s.EndTable()
}

func (st *decodeState) pointBinding(t wire.Table) model.PointBinding {
	return model.PointBinding{
		ElementID:  t.String(schema.BindingElementID),
		Focus:      t.Float64(schema.BindingFocus, 0),
		Gap:        t.Float64(schema.BindingGap, 0),
		FixedPoint: decodeOpt(st, t, schema.BindingFixedPoint, "fixed_point", st.point),
		Head:       decodeOpt(st, t, schema.BindingHead, "head", st.lineHead),
	}
}
