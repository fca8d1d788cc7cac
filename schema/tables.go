package schema

// Field indices of the nested (non-element) tables. These tables have a single layer, so an
// index is also the slot.

const (
	StylesRoundness = iota
	StylesBlending
	StylesBackground
	StylesStroke
	StylesOpacity
)

const (
	ContentPreference = iota
	ContentSrc
	ContentVisible
	ContentOpacity
)

const (
	BackgroundContent = iota
)

const (
	StrokeContent = iota
	StrokeWidth
	StrokeStyle
	StrokePlacement
)

const (
	StrokeStylePreference = iota
	StrokeStyleCap
	StrokeStyleJoin
	StrokeStyleDash
	StrokeStyleDashCap
	StrokeStyleMiterLimit
)

const (
	TextStyleIsLTR = iota
	TextStyleFontFamily
	TextStyleBigFontFamily
	TextStyleTextAlign
	TextStyleVerticalAlign
	TextStyleLineHeight
	TextStyleFontSize
	TextStyleObliqueAngle
	TextStyleWidthFactor
)

const (
	PointX = iota
	PointY
)

const (
	MarginsTop = iota
	MarginsRight
	MarginsBottom
	MarginsLeft
)

const (
	BoundElementID = iota
	BoundElementType
)

const (
	LinePointX = iota
	LinePointY
	LinePointMirroring
)

const (
	LineRefIndex = iota
	LineRefHandle
)

const (
	SegmentStart = iota
	SegmentEnd
)

const (
	PathOverrideLineIndices = iota
	PathOverrideStyles
)

const (
	HeadType = iota
	HeadSize
)

const (
	BindingElementID = iota
	BindingFocus
	BindingGap
	BindingFixedPoint
	BindingHead
)

const (
	GridColumns = iota
	GridGapX
	GridGapY
	GridFirstPageAlone
	GridScale
)

const (
	CropX = iota
	CropY
	CropWidth
	CropHeight
	CropNaturalWidth
	CropNaturalHeight
)

const (
	FilterBrightness = iota
	FilterContrast
)

const (
	ColumnID = iota
	ColumnWidth
	ColumnStyle
)

const (
	RowID = iota
	RowHeight
	RowStyle
)

const (
	CellRowID = iota
	CellColumnID
	CellText
	CellLocked
	CellSpan
	CellStyle
)

const (
	SpanColumns = iota
	SpanRows
)

const (
	CellStyleStyles = iota
	CellStyleText
	CellStyleMargins
)

const (
	EndsCap = iota
	EndsTaper
	EndsEasing
)

const (
	EntryKey = iota
	EntryValue
)

const (
	DuplicationRows = iota
	DuplicationCols
	DuplicationRowSpacing
	DuplicationColSpacing
)

const (
	ViewScrollX = iota
	ViewScrollY
	ViewZoom
	ViewTwistAngle
	ViewCenter
)

const (
	LeaderContentKind = iota
	LeaderContentText
	LeaderContentBlockID
)

const (
	SegmentSymbol = iota
	SegmentTolerance
	SegmentDatums
)

const (
	SourceType = iota
	SourceCode
	SourceFileID
)

const (
	WrapperElementType = iota
	WrapperElement
)

const (
	BlockID = iota
	BlockLabel
	BlockDescription
	BlockVersion
	BlockElements
)

const (
	LayerOverridesStroke = iota
	LayerOverridesBackground
)

const (
	FileID = iota
	FileMimeType
	FileData
	FileCreated
	FileLastRetrieved
)

const (
	GlobalName = iota
	GlobalViewBackgroundColor
	GlobalMainScope
	GlobalScopeExponentThreshold
	GlobalLinearUnit
	GlobalPruningLevel
)

const (
	LocalScope = iota
	LocalScrollX
	LocalScrollY
	LocalZoom
	LocalIsBindingEnabled
	LocalCurrentItemStroke
	LocalCurrentItemBackground
	LocalCurrentItemOpacity
	LocalCurrentItemFontFamily
	LocalCurrentItemFontSize
	LocalCurrentItemTextAlign
	LocalCurrentItemRoundness
	LocalCurrentItemStartLineHead
	LocalCurrentItemEndLineHead
	LocalPenMode
	LocalViewModeEnabled
	LocalObjectsSnapModeEnabled
	LocalGridModeEnabled
	LocalOutlineModeEnabled
	LocalManualSaveMode
)

const (
	GraphUserCheckpointVersionID = iota
	GraphLatestVersionID
	GraphCheckpoints
	GraphDeltas
	GraphMetadata
)

const (
	MetadataPruningLevel = iota
	MetadataLastPruned
	MetadataTotalSize
)

const (
	CheckpointData = iota
	CheckpointSizeBytes
)

const (
	DeltaPatch = iota
)

// Owner-id layers of the tables that flatten StackBase after their id.
const (
	OwnerID = iota
)

const (
	LayerReadOnly = iota
	LayerOverrides
)

const (
	RootType = iota
	RootVersion
	RootSchemaVersion
	RootSource
	RootThumbnail
	RootDictionary
	RootElements
	RootBlocks
	RootGroups
	RootLayers
	RootGlobalState
	RootLocalState
	RootExternalFiles
	RootVersionGraph
)

var (
	StyleBaseLayout = MustCompose("element_styles", NewLayer("element_styles", []string{
		StylesRoundness:  "roundness",
		StylesBlending:   "blending",
		StylesBackground: "background",
		StylesStroke:     "stroke",
		StylesOpacity:    "opacity",
	}))
	ContentLayout = MustCompose("element_content", NewLayer("element_content", []string{
		ContentPreference: "preference",
		ContentSrc:        "src",
		ContentVisible:    "visible",
		ContentOpacity:    "opacity",
	}))
	BackgroundLayout = MustCompose("element_background", NewLayer("element_background", []string{
		BackgroundContent: "content",
	}))
	StrokeLayout = MustCompose("element_stroke", NewLayer("element_stroke", []string{
		StrokeContent:   "content",
		StrokeWidth:     "width",
		StrokeStyle:     "style",
		StrokePlacement: "placement",
	}))
	StrokeStyleLayout = MustCompose("stroke_style", NewLayer("stroke_style", []string{
		StrokeStylePreference: "preference",
		StrokeStyleCap:        "cap",
		StrokeStyleJoin:       "join",
		StrokeStyleDash:       "dash",
		StrokeStyleDashCap:    "dash_cap",
		StrokeStyleMiterLimit: "miter_limit",
	}))
	TextStyleLayout = MustCompose("text_style", NewLayer("text_style", []string{
		TextStyleIsLTR:         "is_ltr",
		TextStyleFontFamily:    "font_family",
		TextStyleBigFontFamily: "big_font_family",
		TextStyleTextAlign:     "text_align",
		TextStyleVerticalAlign: "vertical_align",
		TextStyleLineHeight:    "line_height",
		TextStyleFontSize:      "font_size",
		TextStyleObliqueAngle:  "oblique_angle",
		TextStyleWidthFactor:   "width_factor",
	}))
	PointLayout = MustCompose("geometric_point", NewLayer("geometric_point", []string{
		PointX: "x",
		PointY: "y",
	}))
	MarginsLayout = MustCompose("margins", NewLayer("margins", []string{
		MarginsTop:    "top",
		MarginsRight:  "right",
		MarginsBottom: "bottom",
		MarginsLeft:   "left",
	}))
	BoundElementLayout = MustCompose("bound_element", NewLayer("bound_element", []string{
		BoundElementID:   "id",
		BoundElementType: "type",
	}))
	LinePointLayout = MustCompose("line_point", NewLayer("line_point", []string{
		LinePointX:         "x",
		LinePointY:         "y",
		LinePointMirroring: "mirroring",
	}))
	LineReferenceLayout = MustCompose("line_reference", NewLayer("line_reference", []string{
		LineRefIndex:  "index",
		LineRefHandle: "handle",
	}))
	LineSegmentLayout = MustCompose("line_segment", NewLayer("line_segment", []string{
		SegmentStart: "start",
		SegmentEnd:   "end",
	}))
	PathOverrideLayout = MustCompose("path_override", NewLayer("path_override", []string{
		PathOverrideLineIndices: "line_indices",
		PathOverrideStyles:      "styles",
	}))
	LineHeadLayout = MustCompose("line_head", NewLayer("line_head", []string{
		HeadType: "type",
		HeadSize: "size",
	}))
	PointBindingLayout = MustCompose("point_binding", NewLayer("point_binding", []string{
		BindingElementID:  "element_id",
		BindingFocus:      "focus",
		BindingGap:        "gap",
		BindingFixedPoint: "fixed_point",
		BindingHead:       "head",
	}))
	GridConfigLayout = MustCompose("document_grid_config", NewLayer("document_grid_config", []string{
		GridColumns:        "columns",
		GridGapX:           "gap_x",
		GridGapY:           "gap_y",
		GridFirstPageAlone: "first_page_alone",
		GridScale:          "scale",
	}))
	ImageCropLayout = MustCompose("image_crop", NewLayer("image_crop", []string{
		CropX:             "x",
		CropY:             "y",
		CropWidth:         "width",
		CropHeight:        "height",
		CropNaturalWidth:  "natural_width",
		CropNaturalHeight: "natural_height",
	}))
	ImageFilterLayout = MustCompose("image_filter", NewLayer("image_filter", []string{
		FilterBrightness: "brightness",
		FilterContrast:   "contrast",
	}))
	TableColumnLayout = MustCompose("table_column", NewLayer("table_column", []string{
		ColumnID:    "id",
		ColumnWidth: "width",
		ColumnStyle: "style",
	}))
	TableRowLayout = MustCompose("table_row", NewLayer("table_row", []string{
		RowID:     "id",
		RowHeight: "height",
		RowStyle:  "style",
	}))
	TableCellLayout = MustCompose("table_cell", NewLayer("table_cell", []string{
		CellRowID:    "row_id",
		CellColumnID: "column_id",
		CellText:     "text",
		CellLocked:   "locked",
		CellSpan:     "span",
		CellStyle:    "style",
	}))
	TableCellSpanLayout = MustCompose("table_cell_span", NewLayer("table_cell_span", []string{
		SpanColumns: "columns",
		SpanRows:    "rows",
	}))
	TableCellStyleLayout = MustCompose("table_cell_style", NewLayer("table_cell_style", []string{
		CellStyleStyles:  "styles",
		CellStyleText:    "text_style",
		CellStyleMargins: "margins",
	}))
	FreeDrawEndsLayout = MustCompose("freedraw_ends", NewLayer("freedraw_ends", []string{
		EndsCap:    "cap",
		EndsTaper:  "taper",
		EndsEasing: "easing",
	}))
	StringValueEntryLayout = MustCompose("string_value_entry", NewLayer("string_value_entry", []string{
		EntryKey:   "key",
		EntryValue: "value",
	}))
	DuplicationArrayLayout = MustCompose("duplication_array", NewLayer("duplication_array", []string{
		DuplicationRows:       "rows",
		DuplicationCols:       "cols",
		DuplicationRowSpacing: "row_spacing",
		DuplicationColSpacing: "col_spacing",
	}))
	ViewportViewLayout = MustCompose("viewport_view", NewLayer("viewport_view", []string{
		ViewScrollX:    "scroll_x",
		ViewScrollY:    "scroll_y",
		ViewZoom:       "zoom",
		ViewTwistAngle: "twist_angle",
		ViewCenter:     "center_point",
	}))
	LeaderContentLayout = MustCompose("leader_content", NewLayer("leader_content", []string{
		LeaderContentKind:    "type",
		LeaderContentText:    "text",
		LeaderContentBlockID: "block_id",
	}))
	FCFSegmentLayout = MustCompose("fcf_segment", NewLayer("fcf_segment", []string{
		SegmentSymbol:    "symbol",
		SegmentTolerance: "tolerance",
		SegmentDatums:    "datums",
	}))
	ParametricSourceLayout = MustCompose("parametric_source", NewLayer("parametric_source", []string{
		SourceType:   "type",
		SourceCode:   "code",
		SourceFileID: "file_id",
	}))
	ElementWrapperLayout = MustCompose("element_wrapper", NewLayer("element_wrapper", []string{
		WrapperElementType: "element_type",
		WrapperElement:     "element",
	}))
	BlockLayout = MustCompose("block", NewLayer("block", []string{
		BlockID:          "id",
		BlockLabel:       "label",
		BlockDescription: "description",
		BlockVersion:     "version",
		BlockElements:    "elements",
	}))
	GroupLayout = MustCompose("group",
		NewLayer("group", []string{OwnerID: "id"}),
		StackLayer,
	)
	LayerLayout = MustCompose("layer",
		NewLayer("layer_id", []string{OwnerID: "id"}),
		StackLayer,
		NewLayer("layer", []string{
			LayerReadOnly:  "readonly",
			LayerOverrides: "overrides",
		}),
	)
	LayerOverridesLayout = MustCompose("layer_overrides", NewLayer("layer_overrides", []string{
		LayerOverridesStroke:     "stroke",
		LayerOverridesBackground: "background",
	}))
	DictionaryEntryLayout = MustCompose("dictionary_entry", NewLayer("dictionary_entry", []string{
		EntryKey:   "key",
		EntryValue: "value",
	}))
	ExternalFileLayout = MustCompose("external_file", NewLayer("external_file", []string{
		FileID:            "id",
		FileMimeType:      "mime_type",
		FileData:          "data",
		FileCreated:       "created",
		FileLastRetrieved: "last_retrieved",
	}))
	GlobalStateLayout = MustCompose("global_state", NewLayer("global_state", []string{
		GlobalName:                   "name",
		GlobalViewBackgroundColor:    "view_background_color",
		GlobalMainScope:              "main_scope",
		GlobalScopeExponentThreshold: "scope_exponent_threshold",
		GlobalLinearUnit:             "linear_unit",
		GlobalPruningLevel:           "pruning_level",
	}))
	LocalStateLayout = MustCompose("local_state", NewLayer("local_state", []string{
		LocalScope:                    "scope",
		LocalScrollX:                  "scroll_x",
		LocalScrollY:                  "scroll_y",
		LocalZoom:                     "zoom",
		LocalIsBindingEnabled:         "is_binding_enabled",
		LocalCurrentItemStroke:        "current_item_stroke",
		LocalCurrentItemBackground:    "current_item_background",
		LocalCurrentItemOpacity:       "current_item_opacity",
		LocalCurrentItemFontFamily:    "current_item_font_family",
		LocalCurrentItemFontSize:      "current_item_font_size",
		LocalCurrentItemTextAlign:     "current_item_text_align",
		LocalCurrentItemRoundness:     "current_item_roundness",
		LocalCurrentItemStartLineHead: "current_item_start_line_head",
		LocalCurrentItemEndLineHead:   "current_item_end_line_head",
		LocalPenMode:                  "pen_mode",
		LocalViewModeEnabled:          "view_mode_enabled",
		LocalObjectsSnapModeEnabled:   "objects_snap_mode_enabled",
		LocalGridModeEnabled:          "grid_mode_enabled",
		LocalOutlineModeEnabled:       "outline_mode_enabled",
		LocalManualSaveMode:           "manual_save_mode",
	}))
	CheckpointLayout = MustCompose("checkpoint",
		VersionBaseLayer,
		NewLayer("checkpoint", []string{
			CheckpointData:      "data",
			CheckpointSizeBytes: "size_bytes",
		}),
	)
	DeltaLayout = MustCompose("delta",
		VersionBaseLayer,
		NewLayer("delta", []string{DeltaPatch: "patch"}),
	)
	VersionGraphMetadataLayout = MustCompose("version_graph_metadata", NewLayer("version_graph_metadata", []string{
		MetadataPruningLevel: "pruning_level",
		MetadataLastPruned:   "last_pruned",
		MetadataTotalSize:    "total_size",
	}))
	VersionGraphLayout = MustCompose("version_graph", NewLayer("version_graph", []string{
		GraphUserCheckpointVersionID: "user_checkpoint_version_id",
		GraphLatestVersionID:         "latest_version_id",
		GraphCheckpoints:             "checkpoints",
		GraphDeltas:                  "deltas",
		GraphMetadata:                "metadata",
	}))
	DocumentLayout = MustCompose("document", NewLayer("document", []string{
		RootType:          "type",
		RootVersion:       "version",
		RootSchemaVersion: "schema_version",
		RootSource:        "source",
		RootThumbnail:     "thumbnail",
		RootDictionary:    "dictionary",
		RootElements:      "elements",
		RootBlocks:        "blocks",
		RootGroups:        "groups",
		RootLayers:        "layers",
		RootGlobalState:   "global_state",
		RootLocalState:    "local_state",
		RootExternalFiles: "external_files",
		RootVersionGraph:  "version_graph",
	}))
)

// Layer names of the composed non-element tables, for Layout.Start.
const (
	LayerGroup      = "group"
	LayerLayerID    = "layer_id"
	LayerLayerOwn   = "layer"
	LayerCheckpoint = "checkpoint"
	LayerDelta      = "delta"
)
