package model

// Ptr returns a pointer to v. It is the usual way to fill optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// GeometricPoint is a position in document coordinates.
type GeometricPoint struct {
	X float64
	Y float64
}

// Margins is a four-sided inset.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// BoundElement is a back reference from an element to something attached to it,
// e.g. the text inside a container or an arrow bound to a shape.
type BoundElement struct {
	ID   string
	Type string
}

// ElementBase holds the attributes shared by every element variant.
//
// On the wire these fields are not nested: they are flattened into each variant's table.
type ElementBase struct {
	ID     string
	Styles StyleBase

	X      float64
	Y      float64
	Width  float64
	Height float64
	Angle  float64

	Scope       string
	Label       string
	Description *string
	IsVisible   bool

	Seed         int32
	Version      int32
	VersionNonce int32
	Updated      int64 // unix milliseconds
	Index        *string

	IsPlot        bool
	IsAnnotative  bool
	IsDeleted     bool
	GroupIDs      []string
	RegionIDs     []string
	LayerID       *string
	FrameID       *string
	BoundElements []BoundElement
	ZIndex        float32
	Link          *string
	Locked        bool

	// CustomData is free-form application data. It is stored as CBOR, so numeric values
	// come back as the narrowest CBOR type (uint64, int64 or float64).
	CustomData map[string]any
}

// Common returns the shared base. It is promoted to every variant embedding ElementBase.
func (b *ElementBase) Common() *ElementBase { return b }

// StackBase holds the attributes of anything that groups other elements: frames, plots,
// viewports, groups and layers.
type StackBase struct {
	Label         string
	Description   *string
	IsCollapsed   bool
	IsPlot        bool
	IsVisible     bool
	Locked        bool
	Opacity       float64
	LabelingColor string
}

// StackElementBase is a StackBase that is itself an element on the canvas.
type StackElementBase struct {
	StackBase

	Clip             bool
	LabelVisible     bool
	StandardOverride *string
}

// LinearBase holds the path geometry of lines, arrows, leaders and viewports.
type LinearBase struct {
	Points             []LinePoint
	Lines              []LineSegment
	PathOverrides      []PathOverride
	LastCommittedPoint *LinePoint
	StartBinding       *PointBinding
	EndBinding         *PointBinding
}

// LinePoint is a vertex of a path.
type LinePoint struct {
	Position  GeometricPoint
	Mirroring *BezierMirroring
}

// LineReference points at a vertex by index, with an optional bezier handle.
type LineReference struct {
	Index  int32
	Handle *GeometricPoint
}

// LineSegment connects two vertices of the same path.
type LineSegment struct {
	Start LineReference
	End   LineReference
}

// PathOverride restyles a subset of segments of a path.
type PathOverride struct {
	LineIndices []int32
	Styles      StyleBase
}

// LineHead is the decoration at one end of a linear element.
type LineHead struct {
	Type LineHeadType
	Size float64
}

// PointBinding attaches a path endpoint to another element.
type PointBinding struct {
	ElementID  string
	Focus      float64
	Gap        float64
	FixedPoint *GeometricPoint
	Head       *LineHead
}
