package schema

import "github.com/arloliu/cadbin/model"

// Own-field indices of each element variant, relative to Layout.Start(<variant name>).

const (
	PolygonSides = iota
)

const (
	EllipseRatio = iota
	EllipseStartAngle
	EllipseEndAngle
	EllipseShowAuxCrosshair
)

const (
	PdfFileID = iota
	PdfGrid
)

const (
	MermaidSource = iota
	MermaidTheme
	MermaidSvgPath
)

const (
	TableColumns = iota
	TableRows
	TableCells
	TableHeaderRowCount
	TableAutoSizeColumns
	TableAutoSizeRows
	TableStyle
)

const (
	ImageFileID = iota
	ImageStatus
	ImageScaleX
	ImageScaleY
	ImageCrop
	ImageFilter
)

const (
	TextStyle = iota
	TextText
	TextOriginalText
	TextAutoResize
	TextContainerID
)

const (
	LineWipeoutBelow = iota
)

const (
	ArrowElbowed = iota
)

const (
	FreeDrawPoints = iota
	FreeDrawSize
	FreeDrawThinning
	FreeDrawSmoothing
	FreeDrawStreamline
	FreeDrawEasing
	FreeDrawStart
	FreeDrawEnd
	FreeDrawPressures
	FreeDrawSimulatePressure
	FreeDrawLastCommittedPoint
	FreeDrawSvgPath
)

const (
	BlockInstanceBlockID = iota
	BlockInstanceElementOverrides
	BlockInstanceAttributeValues
	BlockInstanceDuplication
)

const (
	PlotMargins = iota
)

const (
	ViewportView = iota
	ViewportScale
	ViewportShadePlot
	ViewportFrozenGroupIDs
)

const (
	XRayOrigin = iota
	XRayDirection
	XRayStartFromOrigin
	XRayColor
)

const (
	LeaderContent = iota
	LeaderContentAnchor
)

const (
	DimensionType = iota
	DimensionOrigin1
	DimensionOrigin2
	DimensionLocation
	DimensionCenter
	DimensionObliqueAngle
	DimensionTextOverride
	DimensionTextPosition
)

const (
	FCFSegments = iota
	FCFDatumDefinition
)

const (
	DocText = iota
	DocFileID
	DocGrid
)

const (
	ParametricSource = iota
)

const (
	ModelType = iota
	ModelCode
	ModelFileIDs
	ModelSvgPath
)

func ownLayer(t model.ElementType, fields ...string) Layer {
	return NewLayer(t.String(), fields)
}

// OwnLayers lists the variant-specific fields of each element variant, indexed by tag.
var OwnLayers = [model.ElementTypeMax + 1]Layer{
	model.TypeRectangle:  ownLayer(model.TypeRectangle),
	model.TypePolygon:    ownLayer(model.TypePolygon, "sides"),
	model.TypeEllipse:    ownLayer(model.TypeEllipse, "ratio", "start_angle", "end_angle", "show_aux_crosshair"),
	model.TypeEmbeddable: ownLayer(model.TypeEmbeddable),
	model.TypePdf:        ownLayer(model.TypePdf, "file_id", "grid_config"),
	model.TypeMermaid:    ownLayer(model.TypeMermaid, "source", "theme", "svg_path"),
	model.TypeTable: ownLayer(model.TypeTable,
		"columns", "rows", "cells", "header_row_count", "auto_size_columns", "auto_size_rows", "style"),
	model.TypeImage: ownLayer(model.TypeImage, "file_id", "status", "scale_x", "scale_y", "crop", "filter"),
	model.TypeText:  ownLayer(model.TypeText, "style", "text", "original_text", "auto_resize", "container_id"),
	model.TypeLine:  ownLayer(model.TypeLine, "wipeout_below"),
	model.TypeArrow: ownLayer(model.TypeArrow, "elbowed"),
	model.TypeFreeDraw: ownLayer(model.TypeFreeDraw,
		"points", "size", "thinning", "smoothing", "streamline", "easing", "start", "end",
		"pressures", "simulate_pressure", "last_committed_point", "svg_path"),
	model.TypeBlockInstance: ownLayer(model.TypeBlockInstance,
		"block_id", "element_overrides", "attribute_values", "duplication_array"),
	model.TypeFrame:    ownLayer(model.TypeFrame),
	model.TypePlot:     ownLayer(model.TypePlot, "margins"),
	model.TypeViewport: ownLayer(model.TypeViewport, "view", "scale", "shade_plot", "frozen_group_ids"),
	model.TypeXRay:     ownLayer(model.TypeXRay, "origin", "direction", "start_from_origin", "color"),
	model.TypeLeader:   ownLayer(model.TypeLeader, "content", "content_anchor"),
	model.TypeDimension: ownLayer(model.TypeDimension,
		"dimension_type", "origin1", "origin2", "location", "center", "oblique_angle", "text_override", "text_position"),
	model.TypeFeatureControlFrame: ownLayer(model.TypeFeatureControlFrame, "segments", "datum_definition"),
	model.TypeDoc:                 ownLayer(model.TypeDoc, "text", "file_id", "grid_config"),
	model.TypeParametric:          ownLayer(model.TypeParametric, "source"),
	model.TypeModel:               ownLayer(model.TypeModel, "model_type", "code", "file_ids", "svg_path"),
}

// Bases lists which shared layers each variant flattens, between KindLayer and its own layer.
var Bases = [model.ElementTypeMax + 1][]Layer{
	model.TypeLine:     {ElementBaseLayer, LinearLayer},
	model.TypeArrow:    {ElementBaseLayer, LinearLayer},
	model.TypeLeader:   {ElementBaseLayer, LinearLayer},
	model.TypeFrame:    {ElementBaseLayer, StackLayer, StackElementLayer},
	model.TypePlot:     {ElementBaseLayer, StackLayer, StackElementLayer},
	model.TypeViewport: {ElementBaseLayer, LinearLayer, StackLayer, StackElementLayer},
}

// ElementLayouts holds the composed table layout of every element variant, indexed by tag.
// Index 0 (TypeNone) is nil.
var ElementLayouts = composeElementLayouts()

func composeElementLayouts() [model.ElementTypeMax + 1]*Layout {
	var out [model.ElementTypeMax + 1]*Layout
	for t := model.TypeRectangle; t <= model.ElementTypeMax; t++ {
		bases := Bases[t]
		if bases == nil {
			bases = []Layer{ElementBaseLayer}
		}

		layers := make([]Layer, 0, len(bases)+2)
		layers = append(layers, KindLayer)
		layers = append(layers, bases...)
		layers = append(layers, OwnLayers[t])
		out[t] = MustCompose(t.String(), layers...)
	}

	return out
}

// ElementLayout returns the layout of the variant with tag t, or nil for an unknown tag.
func ElementLayout(t model.ElementType) *Layout {
	if !t.Valid() {
		return nil
	}

	return ElementLayouts[t]
}
