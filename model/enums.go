package model

import "strconv"

// Every enumeration is a small unsigned integer with a contiguous valid range [0, <Type>Max].
// The codec rejects (or clamps, depending on its policy) codes outside that range.

func enumName(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}

	return "Unknown(" + strconv.Itoa(int(v)) + ")"
}

// ElementType is the discriminator of the element union. Its numeric value is the wire tag.
type ElementType uint8

const (
	TypeNone ElementType = iota // reserved, never a valid payload
	TypeRectangle
	TypePolygon
	TypeEllipse
	TypeEmbeddable
	TypePdf
	TypeMermaid
	TypeTable
	TypeImage
	TypeText
	TypeLine
	TypeArrow
	TypeFreeDraw
	TypeBlockInstance
	TypeFrame
	TypePlot
	TypeViewport
	TypeXRay
	TypeLeader
	TypeDimension
	TypeFeatureControlFrame
	TypeDoc
	TypeParametric
	TypeModel

	ElementTypeMax = TypeModel
)

var elementTypeNames = []string{
	"none", "rectangle", "polygon", "ellipse", "embeddable", "pdf", "mermaid", "table",
	"image", "text", "line", "arrow", "freedraw", "blockinstance", "frame", "plot",
	"viewport", "xray", "leader", "dimension", "featurecontrolframe", "doc", "parametric", "model",
}

func (t ElementType) String() string { return enumName(elementTypeNames, uint8(t)) }

// Valid reports whether t names a concrete variant.
func (t ElementType) Valid() bool { return t > TypeNone && t <= ElementTypeMax }

// FillType is the content preference of a stroke or background.
type FillType uint8

const (
	FillSolid FillType = iota
	FillHatch
	FillImage
	FillGradient

	FillTypeMax = FillGradient
)

var fillTypeNames = []string{"solid", "hatch", "image", "gradient"}

func (v FillType) String() string { return enumName(fillTypeNames, uint8(v)) }
func (v FillType) Valid() bool    { return v <= FillTypeMax }

// StrokePlacement positions a stroke relative to the element outline.
type StrokePlacement uint8

const (
	StrokeInside StrokePlacement = iota
	StrokeCenter
	StrokeOutside

	StrokePlacementMax = StrokeOutside
)

var strokePlacementNames = []string{"inside", "center", "outside"}

func (v StrokePlacement) String() string { return enumName(strokePlacementNames, uint8(v)) }
func (v StrokePlacement) Valid() bool    { return v <= StrokePlacementMax }

// StrokePreference selects the dash pattern family.
type StrokePreference uint8

const (
	StrokeSolid StrokePreference = iota
	StrokeDashed
	StrokeDotted
	StrokeCustom

	StrokePreferenceMax = StrokeCustom
)

var strokePreferenceNames = []string{"solid", "dashed", "dotted", "custom"}

func (v StrokePreference) String() string { return enumName(strokePreferenceNames, uint8(v)) }
func (v StrokePreference) Valid() bool    { return v <= StrokePreferenceMax }

// StrokeCap is the shape drawn at open path ends and dash ends.
type StrokeCap uint8

const (
	CapButt StrokeCap = iota
	CapRound
	CapSquare

	StrokeCapMax = CapSquare
)

var strokeCapNames = []string{"butt", "round", "square"}

func (v StrokeCap) String() string { return enumName(strokeCapNames, uint8(v)) }
func (v StrokeCap) Valid() bool    { return v <= StrokeCapMax }

// StrokeJoin is the shape drawn where two path segments meet.
type StrokeJoin uint8

const (
	JoinMiter StrokeJoin = iota
	JoinRound
	JoinBevel

	StrokeJoinMax = JoinBevel
)

var strokeJoinNames = []string{"miter", "round", "bevel"}

func (v StrokeJoin) String() string { return enumName(strokeJoinNames, uint8(v)) }
func (v StrokeJoin) Valid() bool    { return v <= StrokeJoinMax }

// BlendingMode controls how an element composites over what is beneath it.
type BlendingMode uint8

const (
	BlendMultiply BlendingMode = iota
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendDifference
	BlendExclusion

	BlendingModeMax = BlendExclusion
)

var blendingModeNames = []string{"multiply", "screen", "overlay", "darken", "lighten", "difference", "exclusion"}

func (v BlendingMode) String() string { return enumName(blendingModeNames, uint8(v)) }
func (v BlendingMode) Valid() bool    { return v <= BlendingModeMax }

type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight

	TextAlignMax = AlignRight
)

var textAlignNames = []string{"left", "center", "right"}

func (v TextAlign) String() string { return enumName(textAlignNames, uint8(v)) }
func (v TextAlign) Valid() bool    { return v <= TextAlignMax }

type VerticalAlign uint8

const (
	AlignTop VerticalAlign = iota
	AlignMiddle
	AlignBottom

	VerticalAlignMax = AlignBottom
)

var verticalAlignNames = []string{"top", "middle", "bottom"}

func (v VerticalAlign) String() string { return enumName(verticalAlignNames, uint8(v)) }
func (v VerticalAlign) Valid() bool    { return v <= VerticalAlignMax }

// LineHeadType is the decoration drawn at a linear element endpoint.
type LineHeadType uint8

const (
	HeadArrow LineHeadType = iota
	HeadBar
	HeadCircle
	HeadCircleOutlined
	HeadTriangle
	HeadTriangleOutlined
	HeadDiamond
	HeadDiamondOutlined
	HeadCross
	HeadOpenArrow

	LineHeadTypeMax = HeadOpenArrow
)

var lineHeadTypeNames = []string{
	"arrow", "bar", "circle", "circle_outlined", "triangle", "triangle_outlined",
	"diamond", "diamond_outlined", "cross", "open_arrow",
}

func (v LineHeadType) String() string { return enumName(lineHeadTypeNames, uint8(v)) }
func (v LineHeadType) Valid() bool    { return v <= LineHeadTypeMax }

// BezierMirroring describes how the two handles of a path point move together.
type BezierMirroring uint8

const (
	MirrorNone BezierMirroring = iota
	MirrorAngle
	MirrorAngleLength

	BezierMirroringMax = MirrorAngleLength
)

var bezierMirroringNames = []string{"none", "angle", "angle_length"}

func (v BezierMirroring) String() string { return enumName(bezierMirroringNames, uint8(v)) }
func (v BezierMirroring) Valid() bool    { return v <= BezierMirroringMax }

type ImageStatus uint8

const (
	ImagePending ImageStatus = iota
	ImageSaved
	ImageError

	ImageStatusMax = ImageError
)

var imageStatusNames = []string{"pending", "saved", "error"}

func (v ImageStatus) String() string { return enumName(imageStatusNames, uint8(v)) }
func (v ImageStatus) Valid() bool    { return v <= ImageStatusMax }

type ViewportShadePlot uint8

const (
	ShadeAsDisplayed ViewportShadePlot = iota
	ShadeWireframe
	ShadeHidden
	ShadeRendered

	ViewportShadePlotMax = ShadeRendered
)

var viewportShadePlotNames = []string{"as_displayed", "wireframe", "hidden", "rendered"}

func (v ViewportShadePlot) String() string { return enumName(viewportShadePlotNames, uint8(v)) }
func (v ViewportShadePlot) Valid() bool    { return v <= ViewportShadePlotMax }

type LeaderContentType uint8

const (
	LeaderText LeaderContentType = iota
	LeaderBlock

	LeaderContentTypeMax = LeaderBlock
)

var leaderContentTypeNames = []string{"text", "block"}

func (v LeaderContentType) String() string { return enumName(leaderContentTypeNames, uint8(v)) }
func (v LeaderContentType) Valid() bool    { return v <= LeaderContentTypeMax }

type DimensionType uint8

const (
	DimensionLinear DimensionType = iota
	DimensionAligned
	DimensionAngular
	DimensionArcLength
	DimensionRadius
	DimensionDiameter
	DimensionOrdinate

	DimensionTypeMax = DimensionOrdinate
)

var dimensionTypeNames = []string{"linear", "aligned", "angular", "arc_length", "radius", "diameter", "ordinate"}

func (v DimensionType) String() string { return enumName(dimensionTypeNames, uint8(v)) }
func (v DimensionType) Valid() bool    { return v <= DimensionTypeMax }

// GDTSymbol is a geometric dimensioning and tolerancing characteristic.
type GDTSymbol uint8

const (
	GDTStraightness GDTSymbol = iota
	GDTFlatness
	GDTCircularity
	GDTCylindricity
	GDTProfileOfLine
	GDTProfileOfSurface
	GDTAngularity
	GDTPerpendicularity
	GDTParallelism
	GDTPosition
	GDTConcentricity
	GDTSymmetry
	GDTCircularRunout
	GDTTotalRunout

	GDTSymbolMax = GDTTotalRunout
)

var gdtSymbolNames = []string{
	"straightness", "flatness", "circularity", "cylindricity", "profile_of_line", "profile_of_surface",
	"angularity", "perpendicularity", "parallelism", "position", "concentricity", "symmetry",
	"circular_runout", "total_runout",
}

func (v GDTSymbol) String() string { return enumName(gdtSymbolNames, uint8(v)) }
func (v GDTSymbol) Valid() bool    { return v <= GDTSymbolMax }

type ParametricSourceType uint8

const (
	ParametricCode ParametricSourceType = iota
	ParametricFile

	ParametricSourceTypeMax = ParametricFile
)

var parametricSourceTypeNames = []string{"code", "file"}

func (v ParametricSourceType) String() string { return enumName(parametricSourceTypeNames, uint8(v)) }
func (v ParametricSourceType) Valid() bool    { return v <= ParametricSourceTypeMax }

// PruningLevel is the revision-history retention policy recorded with the document.
type PruningLevel uint8

const (
	PruneConservative PruningLevel = iota
	PruneBalanced
	PruneAggressive

	PruningLevelMax = PruneAggressive
)

var pruningLevelNames = []string{"conservative", "balanced", "aggressive"}

func (v PruningLevel) String() string { return enumName(pruningLevelNames, uint8(v)) }
func (v PruningLevel) Valid() bool    { return v <= PruningLevelMax }

type LinearUnit uint8

const (
	UnitMillimeter LinearUnit = iota
	UnitCentimeter
	UnitMeter
	UnitInch
	UnitFoot

	LinearUnitMax = UnitFoot
)

var linearUnitNames = []string{"mm", "cm", "m", "in", "ft"}

func (v LinearUnit) String() string { return enumName(linearUnitNames, uint8(v)) }
func (v LinearUnit) Valid() bool    { return v <= LinearUnitMax }
