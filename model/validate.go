package model

import (
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/internal/collision"
)

// Validate checks the structural invariants the encoder relies on:
//
//   - every element is non-nil and has a non-empty id, unique across the document
//     (top-level elements and block elements share one id space)
//   - block, group, layer, external file, checkpoint and delta ids are non-empty and unique
//     within their own collection
//   - enumerated fields of styles and element variants are within range
//   - table cells reference existing row and column ids
//
// All violations are reported, combined with multierr. Every individual error wraps
// errs.ErrInvalidDocument together with the specific cause (ErrDuplicateID,
// ErrMissingRequiredField or ErrInvalidEnum).
func (d *Document) Validate() error {
	if d == nil {
		return errs.New(errs.PhaseValidate, errs.ErrInvalidDocument).Detail("nil document").Build()
	}

	var err error
	elementIDs := collision.NewTracker()

	for i, el := range d.Elements {
		err = multierr.Append(err, validateElement(elementIDs, el, "elements", strconv.Itoa(i)))
	}

	blockIDs := collision.NewTracker()
	for i := range d.Blocks {
		b := &d.Blocks[i]
		err = multierr.Append(err, track(blockIDs, b.ID, "blocks", strconv.Itoa(i), "id"))
		for j, el := range b.Elements {
			err = multierr.Append(err, validateElement(elementIDs, el, "blocks", strconv.Itoa(i), "elements", strconv.Itoa(j)))
		}
	}

	groupIDs := collision.NewTracker()
	for i := range d.Groups {
		err = multierr.Append(err, track(groupIDs, d.Groups[i].ID, "groups", strconv.Itoa(i), "id"))
	}

	layerIDs := collision.NewTracker()
	for i := range d.Layers {
		l := &d.Layers[i]
		err = multierr.Append(err, track(layerIDs, l.ID, "layers", strconv.Itoa(i), "id"))
		if l.Overrides != nil && l.Overrides.Stroke != nil {
			err = multierr.Append(err, validateStroke(*l.Overrides.Stroke, "layers", strconv.Itoa(i), "overrides", "stroke"))
		}
		if l.Overrides != nil && l.Overrides.Background != nil {
			err = multierr.Append(err, validateContent(l.Overrides.Background.Content, "layers", strconv.Itoa(i), "overrides", "background"))
		}
	}

	fileIDs := collision.NewTracker()
	for i := range d.Files {
		err = multierr.Append(err, track(fileIDs, d.Files[i].ID, "files", strconv.Itoa(i), "id"))
	}

	if gs := d.GlobalState; gs != nil {
		err = multierr.Append(err, checkEnum(gs.LinearUnit.Valid(), "LinearUnit", uint8(gs.LinearUnit), uint8(LinearUnitMax), "global_state", "linear_unit"))
		err = multierr.Append(err, checkEnum(gs.PruningLevel.Valid(), "PruningLevel", uint8(gs.PruningLevel), uint8(PruningLevelMax), "global_state", "pruning_level"))
	}

	if vg := d.VersionGraph; vg != nil {
		versionIDs := collision.NewTracker()
		for i := range vg.Checkpoints {
			err = multierr.Append(err, track(versionIDs, vg.Checkpoints[i].ID, "version_graph", "checkpoints", strconv.Itoa(i), "id"))
		}
		for i := range vg.Deltas {
			err = multierr.Append(err, track(versionIDs, vg.Deltas[i].ID, "version_graph", "deltas", strconv.Itoa(i), "id"))
		}
		err = multierr.Append(err, checkEnum(vg.Metadata.PruningLevel.Valid(), "PruningLevel", uint8(vg.Metadata.PruningLevel), uint8(PruningLevelMax), "version_graph", "metadata", "pruning_level"))
	}

	return err
}

func track(t *collision.Tracker, id string, path ...string) error {
	if err := t.Track(id, pathString(path)); err != nil {
		return errs.New(errs.PhaseValidate, errs.ErrInvalidDocument).Path(path...).Cause(err).Build()
	}

	return nil
}

func pathString(path []string) string {
	return strings.Join(path, ".")
}

func checkEnum(valid bool, enumType string, value, maxValid uint8, path ...string) error {
	if valid {
		return nil
	}

	return errs.New(errs.PhaseValidate, errs.ErrInvalidDocument).
		Path(path...).
		Cause(errs.InvalidEnum(errs.PhaseValidate, path, enumType, value, maxValid)).
		Build()
}

func sub(path []string, segments ...string) []string {
	out := make([]string, 0, len(path)+len(segments))
	out = append(out, path...)

	return append(out, segments...)
}

func validateElement(ids *collision.Tracker, el Element, path ...string) error {
	if el == nil {
		return errs.New(errs.PhaseValidate, errs.ErrInvalidDocument).
			Path(path...).
			Cause(errs.MissingField(errs.PhaseValidate, path, "element")).
			Build()
	}

	base := el.Common()
	err := track(ids, base.ID, sub(path, "id")...)
	err = multierr.Append(err, validateStyles(base.Styles, sub(path, "styles")...))

	switch e := el.(type) {
	case *Image:
		err = multierr.Append(err, checkEnum(e.Status.Valid(), "ImageStatus", uint8(e.Status), uint8(ImageStatusMax), sub(path, "status")...))
	case *Text:
		err = multierr.Append(err, validateTextStyle(e.Style, sub(path, "style")...))
	case *Line:
		err = multierr.Append(err, validateLinear(e.Linear, path...))
	case *Arrow:
		err = multierr.Append(err, validateLinear(e.Linear, path...))
	case *Leader:
		err = multierr.Append(err, validateLinear(e.Linear, path...))
		if e.Content != nil {
			err = multierr.Append(err, checkEnum(e.Content.Type.Valid(), "LeaderContentType", uint8(e.Content.Type), uint8(LeaderContentTypeMax), sub(path, "content", "type")...))
		}
	case *Viewport:
		err = multierr.Append(err, validateLinear(e.Linear, path...))
		err = multierr.Append(err, checkEnum(e.ShadePlot.Valid(), "ViewportShadePlot", uint8(e.ShadePlot), uint8(ViewportShadePlotMax), sub(path, "shade_plot")...))
	case *Dimension:
		err = multierr.Append(err, checkEnum(e.DimensionType.Valid(), "DimensionType", uint8(e.DimensionType), uint8(DimensionTypeMax), sub(path, "dimension_type")...))
	case *FeatureControlFrame:
		for i, seg := range e.Segments {
			err = multierr.Append(err, checkEnum(seg.Symbol.Valid(), "GDTSymbol", uint8(seg.Symbol), uint8(GDTSymbolMax), sub(path, "segments", strconv.Itoa(i), "symbol")...))
		}
	case *Parametric:
		err = multierr.Append(err, checkEnum(e.Source.Type.Valid(), "ParametricSourceType", uint8(e.Source.Type), uint8(ParametricSourceTypeMax), sub(path, "source", "type")...))
	case *Table:
		err = multierr.Append(err, validateTable(e, path...))
	}

	return err
}

func validateStyles(s StyleBase, path ...string) error {
	var err error
	if s.Blending != nil {
		err = checkEnum(s.Blending.Valid(), "BlendingMode", uint8(*s.Blending), uint8(BlendingModeMax), sub(path, "blending")...)
	}
	for i, bg := range s.Background {
		err = multierr.Append(err, validateContent(bg.Content, sub(path, "background", strconv.Itoa(i))...))
	}
	for i, st := range s.Stroke {
		err = multierr.Append(err, validateStroke(st, sub(path, "stroke", strconv.Itoa(i))...))
	}

	return err
}

func validateContent(c Content, path ...string) error {
	return checkEnum(c.Preference.Valid(), "FillType", uint8(c.Preference), uint8(FillTypeMax), sub(path, "preference")...)
}

func validateStroke(s ElementStroke, path ...string) error {
	err := validateContent(s.Content, sub(path, "content")...)
	err = multierr.Append(err, checkEnum(s.Placement.Valid(), "StrokePlacement", uint8(s.Placement), uint8(StrokePlacementMax), sub(path, "placement")...))
	err = multierr.Append(err, checkEnum(s.Style.Preference.Valid(), "StrokePreference", uint8(s.Style.Preference), uint8(StrokePreferenceMax), sub(path, "style", "preference")...))
	if c := s.Style.Cap; c != nil {
		err = multierr.Append(err, checkEnum(c.Valid(), "StrokeCap", uint8(*c), uint8(StrokeCapMax), sub(path, "style", "cap")...))
	}
	if j := s.Style.Join; j != nil {
		err = multierr.Append(err, checkEnum(j.Valid(), "StrokeJoin", uint8(*j), uint8(StrokeJoinMax), sub(path, "style", "join")...))
	}
	if c := s.Style.DashCap; c != nil {
		err = multierr.Append(err, checkEnum(c.Valid(), "StrokeCap", uint8(*c), uint8(StrokeCapMax), sub(path, "style", "dash_cap")...))
	}

	return err
}

func validateTextStyle(s TextStyle, path ...string) error {
	err := checkEnum(s.TextAlign.Valid(), "TextAlign", uint8(s.TextAlign), uint8(TextAlignMax), sub(path, "text_align")...)
	return multierr.Append(err, checkEnum(s.VerticalAlign.Valid(), "VerticalAlign", uint8(s.VerticalAlign), uint8(VerticalAlignMax), sub(path, "vertical_align")...))
}

func validateLinear(l LinearBase, path ...string) error {
	var err error
	for i, p := range l.Points {
		if p.Mirroring != nil {
			err = multierr.Append(err, checkEnum(p.Mirroring.Valid(), "BezierMirroring", uint8(*p.Mirroring), uint8(BezierMirroringMax), sub(path, "points", strconv.Itoa(i), "mirroring")...))
		}
	}
	for i, po := range l.PathOverrides {
		err = multierr.Append(err, validateStyles(po.Styles, sub(path, "path_overrides", strconv.Itoa(i), "styles")...))
	}
	err = multierr.Append(err, validateBinding(l.StartBinding, sub(path, "start_binding")...))
	err = multierr.Append(err, validateBinding(l.EndBinding, sub(path, "end_binding")...))

	return err
}

func validateBinding(b *PointBinding, path ...string) error {
	if b == nil || b.Head == nil {
		return nil
	}

	return checkEnum(b.Head.Type.Valid(), "LineHeadType", uint8(b.Head.Type), uint8(LineHeadTypeMax), sub(path, "head", "type")...)
}

func validateTable(t *Table, path ...string) error {
	var err error
	columns := collision.NewTracker()
	for i, c := range t.Columns {
		err = multierr.Append(err, track(columns, c.ID, sub(path, "columns", strconv.Itoa(i), "id")...))
	}
	rows := collision.NewTracker()
	for i, r := range t.Rows {
		err = multierr.Append(err, track(rows, r.ID, sub(path, "rows", strconv.Itoa(i), "id")...))
	}

	for i, c := range t.Cells {
		cellPath := sub(path, "cells", strconv.Itoa(i))
		if !rows.Has(c.RowID) {
			err = multierr.Append(err, errs.New(errs.PhaseValidate, errs.ErrInvalidDocument).
				Path(sub(cellPath, "row_id")...).
				Detail("cell references unknown row %q", c.RowID).
				Build())
		}
		if !columns.Has(c.ColumnID) {
			err = multierr.Append(err, errs.New(errs.PhaseValidate, errs.ErrInvalidDocument).
				Path(sub(cellPath, "column_id")...).
				Detail("cell references unknown column %q", c.ColumnID).
				Build())
		}
		if c.Style != nil {
			err = multierr.Append(err, validateTextStyle(c.Style.Text, sub(cellPath, "style", "text")...))
		}
	}

	return err
}
