package schema

// Shared layer names. Flattened layers are located inside a composed layout with Layout.Start.
const (
	LayerKind         = "kind"
	LayerElementBase  = "element_base"
	LayerStack        = "stack"
	LayerStackElement = "stack_element"
	LayerLinear       = "linear"
	LayerVersionBase  = "version_base"
)

// KindLayer is the first layer of every element table: the variant's own tag, used to detect
// a wrapper whose tag disagrees with its payload.
var KindLayer = NewLayer(LayerKind, []string{0: "kind"})

// ElementBase field indices.
const (
	BaseID = iota
	BaseStyles
	BaseX
	BaseY
	BaseWidth
	BaseHeight
	BaseAngle
	BaseScope
	BaseLabel
	BaseDescription
	BaseIsVisible
	BaseSeed
	BaseVersion
	BaseVersionNonce
	BaseUpdated
	BaseIndex
	BaseIsPlot
	BaseIsAnnotative
	BaseIsDeleted
	BaseGroupIDs
	BaseRegionIDs
	BaseLayerID
	BaseFrameID
	BaseBoundElements
	BaseZIndex
	BaseLink
	BaseLocked
	BaseCustomData
	baseFieldCount
)

var ElementBaseLayer = NewLayer(LayerElementBase, []string{
	BaseID:            "id",
	BaseStyles:        "styles",
	BaseX:             "x",
	BaseY:             "y",
	BaseWidth:         "width",
	BaseHeight:        "height",
	BaseAngle:         "angle",
	BaseScope:         "scope",
	BaseLabel:         "label",
	BaseDescription:   "description",
	BaseIsVisible:     "is_visible",
	BaseSeed:          "seed",
	BaseVersion:       "version",
	BaseVersionNonce:  "version_nonce",
	BaseUpdated:       "updated",
	BaseIndex:         "index",
	BaseIsPlot:        "is_plot",
	BaseIsAnnotative:  "is_annotative",
	BaseIsDeleted:     "is_deleted",
	BaseGroupIDs:      "group_ids",
	BaseRegionIDs:     "region_ids",
	BaseLayerID:       "layer_id",
	BaseFrameID:       "frame_id",
	BaseBoundElements: "bound_elements",
	BaseZIndex:        "z_index",
	BaseLink:          "link",
	BaseLocked:        "locked",
	BaseCustomData:    "custom_data",
})

// StackBase field indices. The wire names carry a stack_ prefix because several of them
// (label, description, is_visible, locked, is_plot) also exist in ElementBase.
const (
	StackLabel = iota
	StackDescription
	StackIsCollapsed
	StackIsPlot
	StackIsVisible
	StackLocked
	StackOpacity
	StackLabelingColor
	stackFieldCount
)

var StackLayer = NewLayer(LayerStack, []string{
	StackLabel:         "stack_label",
	StackDescription:   "stack_description",
	StackIsCollapsed:   "stack_is_collapsed",
	StackIsPlot:        "stack_is_plot",
	StackIsVisible:     "stack_is_visible",
	StackLocked:        "stack_locked",
	StackOpacity:       "stack_opacity",
	StackLabelingColor: "stack_labeling_color",
})

const (
	StackElementClip = iota
	StackElementLabelVisible
	StackElementStandardOverride
	stackElementFieldCount
)

var StackElementLayer = NewLayer(LayerStackElement, []string{
	StackElementClip:             "clip",
	StackElementLabelVisible:     "label_visible",
	StackElementStandardOverride: "standard_override",
})

const (
	LinearPoints = iota
	LinearLines
	LinearPathOverrides
	LinearLastCommittedPoint
	LinearStartBinding
	LinearEndBinding
	linearFieldCount
)

var LinearLayer = NewLayer(LayerLinear, []string{
	LinearPoints:             "points",
	LinearLines:              "lines",
	LinearPathOverrides:      "path_overrides",
	LinearLastCommittedPoint: "last_committed_point",
	LinearStartBinding:       "start_binding",
	LinearEndBinding:         "end_binding",
})

const (
	VersionID = iota
	VersionParentID
	VersionTimestamp
	VersionDescription
	VersionIsManualSave
	VersionUserID
	versionFieldCount
)

var VersionBaseLayer = NewLayer(LayerVersionBase, []string{
	VersionID:           "id",
	VersionParentID:     "parent_id",
	VersionTimestamp:    "timestamp",
	VersionDescription:  "description",
	VersionIsManualSave: "is_manual_save",
	VersionUserID:       "user_id",
})
