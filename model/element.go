package model

// Element is one drawable item of a document.
//
// The set of implementations is closed: only the variant types of this package satisfy it.
// Code that needs the concrete variant should use a type switch over the pointer types.
type Element interface {
	// Type returns the variant discriminator.
	Type() ElementType
	// Common returns the attributes shared by every variant.
	Common() *ElementBase

	isElement()
}

type Rectangle struct {
	ElementBase
}

type Polygon struct {
	ElementBase

	Sides int32
}

type Ellipse struct {
	ElementBase

	Ratio            float64
	StartAngle       float64
	EndAngle         float64
	ShowAuxCrosshair bool
}

// Embeddable is a placeholder for externally rendered content, e.g. a web page.
type Embeddable struct {
	ElementBase
}

// DocumentGridConfig lays out the pages of a paged element.
type DocumentGridConfig struct {
	Columns        int32
	GapX           float64
	GapY           float64
	FirstPageAlone bool
	Scale          float64
}

type Pdf struct {
	ElementBase

	FileID *string
	Grid   DocumentGridConfig
}

type Mermaid struct {
	ElementBase

	Source  string
	Theme   *string
	SvgPath *string
}

// ImageCrop is the visible window of an image, in source pixels.
type ImageCrop struct {
	X             float64
	Y             float64
	Width         float64
	Height        float64
	NaturalWidth  float64
	NaturalHeight float64
}

type ImageFilter struct {
	Brightness float64
	Contrast   float64
}

type Image struct {
	ElementBase

	FileID *string
	Status ImageStatus
	ScaleX float64
	ScaleY float64
	Crop   *ImageCrop
	Filter *ImageFilter
}

type Text struct {
	ElementBase

	Style        TextStyle
	Text         string
	OriginalText string
	AutoResize   bool
	ContainerID  *string
}

type Line struct {
	ElementBase

	Linear       LinearBase
	WipeoutBelow bool
}

type Arrow struct {
	ElementBase

	Linear  LinearBase
	Elbowed bool
}

// FreeDrawEnds shapes the start or end of a freehand stroke.
type FreeDrawEnds struct {
	Cap    bool
	Taper  float64
	Easing string
}

type FreeDraw struct {
	ElementBase

	Points             []GeometricPoint
	Size               float64
	Thinning           float64
	Smoothing          float64
	Streamline         float64
	Easing             string
	Start              *FreeDrawEnds
	End                *FreeDrawEnds
	Pressures          []float32
	SimulatePressure   bool
	LastCommittedPoint *GeometricPoint
	SvgPath            *string
}

// StringValueEntry is a key/value pair attached to a block instance.
type StringValueEntry struct {
	Key   string
	Value string
}

// DuplicationArray repeats a block instance on a grid.
type DuplicationArray struct {
	Rows       int32
	Cols       int32
	RowSpacing float64
	ColSpacing float64
}

type BlockInstance struct {
	ElementBase

	BlockID          string
	ElementOverrides []StringValueEntry
	AttributeValues  []StringValueEntry
	Duplication      *DuplicationArray
}

type Frame struct {
	ElementBase

	Stack StackElementBase
}

type Plot struct {
	ElementBase

	Stack  StackElementBase
	Layout Margins
}

// ViewportView is the camera of a viewport into model space.
type ViewportView struct {
	ScrollX     float64
	ScrollY     float64
	Zoom        float64
	TwistAngle  float64
	CenterPoint GeometricPoint
}

type Viewport struct {
	ElementBase

	Linear         LinearBase
	Stack          StackElementBase
	View           ViewportView
	Scale          float64
	ShadePlot      ViewportShadePlot
	FrozenGroupIDs []string
}

// XRay is an infinite (or half-infinite) construction line.
type XRay struct {
	ElementBase

	Origin          GeometricPoint
	Direction       GeometricPoint
	StartFromOrigin bool
	Color           string
}

// LeaderContent is what a leader points from: a text or a block.
type LeaderContent struct {
	Type    LeaderContentType
	Text    string
	BlockID string
}

type Leader struct {
	ElementBase

	Linear        LinearBase
	Content       *LeaderContent
	ContentAnchor GeometricPoint
}

type Dimension struct {
	ElementBase

	DimensionType DimensionType
	Origin1       GeometricPoint
	Origin2       GeometricPoint
	Location      GeometricPoint
	Center        *GeometricPoint
	ObliqueAngle  float64
	TextOverride  *string
	TextPosition  *GeometricPoint
}

// FCFSegment is one compartment row of a feature control frame.
type FCFSegment struct {
	Symbol    GDTSymbol
	Tolerance string
	Datums    []string
}

type FeatureControlFrame struct {
	ElementBase

	Segments        []FCFSegment
	DatumDefinition *string
}

type Doc struct {
	ElementBase

	Text   string
	FileID *string
	Grid   DocumentGridConfig
}

// ParametricSource is the program that generates a parametric element.
type ParametricSource struct {
	Type   ParametricSourceType
	Code   string
	FileID string
}

type Parametric struct {
	ElementBase

	Source ParametricSource
}

// Model3D is an embedded 3D model, described by code or by referenced files.
type Model3D struct {
	ElementBase

	ModelType *string
	Code      string
	FileIDs   []string
	SvgPath   *string
}

func (*Rectangle) Type() ElementType           { return TypeRectangle }
func (*Polygon) Type() ElementType             { return TypePolygon }
func (*Ellipse) Type() ElementType             { return TypeEllipse }
func (*Embeddable) Type() ElementType          { return TypeEmbeddable }
func (*Pdf) Type() ElementType                 { return TypePdf }
func (*Mermaid) Type() ElementType             { return TypeMermaid }
func (*Table) Type() ElementType               { return TypeTable }
func (*Image) Type() ElementType               { return TypeImage }
func (*Text) Type() ElementType                { return TypeText }
func (*Line) Type() ElementType                { return TypeLine }
func (*Arrow) Type() ElementType               { return TypeArrow }
func (*FreeDraw) Type() ElementType            { return TypeFreeDraw }
func (*BlockInstance) Type() ElementType       { return TypeBlockInstance }
func (*Frame) Type() ElementType               { return TypeFrame }
func (*Plot) Type() ElementType                { return TypePlot }
func (*Viewport) Type() ElementType            { return TypeViewport }
func (*XRay) Type() ElementType                { return TypeXRay }
func (*Leader) Type() ElementType              { return TypeLeader }
func (*Dimension) Type() ElementType           { return TypeDimension }
func (*FeatureControlFrame) Type() ElementType { return TypeFeatureControlFrame }
func (*Doc) Type() ElementType                 { return TypeDoc }
func (*Parametric) Type() ElementType          { return TypeParametric }
func (*Model3D) Type() ElementType             { return TypeModel }

func (*Rectangle) isElement()           {}
func (*Polygon) isElement()             {}
func (*Ellipse) isElement()             {}
func (*Embeddable) isElement()          {}
func (*Pdf) isElement()                 {}
func (*Mermaid) isElement()             {}
func (*Table) isElement()               {}
func (*Image) isElement()               {}
func (*Text) isElement()                {}
func (*Line) isElement()                {}
func (*Arrow) isElement()               {}
func (*FreeDraw) isElement()            {}
func (*BlockInstance) isElement()       {}
func (*Frame) isElement()               {}
func (*Plot) isElement()                {}
func (*Viewport) isElement()            {}
func (*XRay) isElement()                {}
func (*Leader) isElement()              {}
func (*Dimension) isElement()           {}
func (*FeatureControlFrame) isElement() {}
func (*Doc) isElement()                 {}
func (*Parametric) isElement()          {}
func (*Model3D) isElement()             {}
