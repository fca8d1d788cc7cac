package codec

import (
	"math"

	"github.com/arloliu/cadbin/model"
)

// Values the decoder substitutes for absent fields. The encoder always writes scalars, so
// these only apply to buffers produced by other writers or by older schema versions.
const (
	DefaultOpacity         = 1.0
	DefaultVisible         = true
	DefaultScope           = "mm"
	DefaultStrokeWidth     = 1.0
	DefaultStrokePlacement = model.StrokeCenter

	DefaultPolygonSides    = int32(3)
	DefaultEllipseRatio    = 1.0
	DefaultEllipseEndAngle = 2 * math.Pi

	DefaultGridColumns = int32(1)
	DefaultGridScale   = 1.0

	DefaultImageScale  = 1.0
	DefaultImageStatus = model.ImagePending
	DefaultFilterLevel = 1.0

	DefaultIsLTR       = true
	DefaultLineHeight  = 1.25
	DefaultFontSize    = 20.0
	DefaultWidthFactor = 1.0
	DefaultAutoResize  = true

	DefaultFreeDrawSize       = 2.0
	DefaultFreeDrawThinning   = 0.6
	DefaultFreeDrawSmoothing  = 0.5
	DefaultFreeDrawStreamline = 0.5
	DefaultFreeDrawEasing     = "easeOutSine"

	DefaultLabelVisible  = true
	DefaultViewZoom      = 1.0
	DefaultViewportScale = 1.0
	DefaultCellSpan      = int32(1)
	DefaultDuplication   = int32(1)
	DefaultLineHeadSize  = 1.0

	DefaultMainScope              = "mm"
	DefaultScopeExponentThreshold = int32(3)
	DefaultLinearUnit             = model.UnitMillimeter
	DefaultPruningLevel           = model.PruneBalanced

	DefaultDocumentType   = "cad"
	DefaultSource         = "cadbin"
	DefaultBindingEnabled = true
	DefaultObjectsSnap    = true

	// DefaultMaxDocumentSize bounds the decompressed size of an enveloped document.
	DefaultMaxDocumentSize = 256 << 20
)

func defaultStyles() model.StyleBase {
	return model.StyleBase{Opacity: DefaultOpacity}
}

func defaultTextStyle() model.TextStyle {
	return model.TextStyle{
		IsLTR:       DefaultIsLTR,
		LineHeight:  DefaultLineHeight,
		FontSize:    DefaultFontSize,
		WidthFactor: DefaultWidthFactor,
	}
}

func defaultGrid() model.DocumentGridConfig {
	return model.DocumentGridConfig{Columns: DefaultGridColumns, Scale: DefaultGridScale}
}

func defaultStack() model.StackBase {
	return model.StackBase{IsVisible: DefaultVisible, Opacity: DefaultOpacity}
}

func defaultStackElement() model.StackElementBase {
	return model.StackElementBase{StackBase: defaultStack(), LabelVisible: DefaultLabelVisible}
}

func defaultStrokeStyle() model.StrokeStyle {
	return model.StrokeStyle{Preference: model.StrokeSolid}
}

func defaultView() model.ViewportView {
	return model.ViewportView{Zoom: DefaultViewZoom}
}

func defaultBase(id string) model.ElementBase {
	return model.ElementBase{
		ID:        id,
		Styles:    defaultStyles(),
		Scope:     DefaultScope,
		IsVisible: DefaultVisible,
	}
}

// DefaultElement returns the variant with tag t whose fields all hold their decode defaults.
// It is exactly what Decode produces for an element table carrying nothing but its kind and id.
// Returns nil for an unknown tag.
func DefaultElement(t model.ElementType, id string) model.Element {
	c := lookup(t)
	if c == nil {
		return nil
	}

	return c.zero(defaultBase(id))
}

func zeroRectangle(b model.ElementBase) *model.Rectangle   { return &model.Rectangle{ElementBase: b} }
func zeroEmbeddable(b model.ElementBase) *model.Embeddable { return &model.Embeddable{ElementBase: b} }
func zeroMermaid(b model.ElementBase) *model.Mermaid       { return &model.Mermaid{ElementBase: b} }
func zeroTable(b model.ElementBase) *model.Table           { return &model.Table{ElementBase: b} }
func zeroLine(b model.ElementBase) *model.Line             { return &model.Line{ElementBase: b} }
func zeroArrow(b model.ElementBase) *model.Arrow           { return &model.Arrow{ElementBase: b} }
func zeroLeader(b model.ElementBase) *model.Leader         { return &model.Leader{ElementBase: b} }
func zeroDimension(b model.ElementBase) *model.Dimension   { return &model.Dimension{ElementBase: b} }
func zeroParametric(b model.ElementBase) *model.Parametric { return &model.Parametric{ElementBase: b} }
func zeroModel3D(b model.ElementBase) *model.Model3D       { return &model.Model3D{ElementBase: b} }

func zeroBlockInstance(b model.ElementBase) *model.BlockInstance {
	return &model.BlockInstance{ElementBase: b}
}

func zeroFeatureControlFrame(b model.ElementBase) *model.FeatureControlFrame {
	return &model.FeatureControlFrame{ElementBase: b}
}

func zeroPolygon(b model.ElementBase) *model.Polygon {
	return &model.Polygon{ElementBase: b, Sides: DefaultPolygonSides}
}

func zeroEllipse(b model.ElementBase) *model.Ellipse {
	return &model.Ellipse{ElementBase: b, Ratio: DefaultEllipseRatio, EndAngle: DefaultEllipseEndAngle}
}

func zeroPdf(b model.ElementBase) *model.Pdf { return &model.Pdf{ElementBase: b, Grid: defaultGrid()} }
func zeroDoc(b model.ElementBase) *model.Doc { return &model.Doc{ElementBase: b, Grid: defaultGrid()} }

func zeroImage(b model.ElementBase) *model.Image {
	return &model.Image{
		ElementBase: b,
		Status:      DefaultImageStatus,
		ScaleX:      DefaultImageScale,
		ScaleY:      DefaultImageScale,
	}
}

func zeroText(b model.ElementBase) *model.Text {
	return &model.Text{ElementBase: b, Style: defaultTextStyle(), AutoResize: DefaultAutoResize}
}

func zeroFreeDraw(b model.ElementBase) *model.FreeDraw {
	return &model.FreeDraw{
		ElementBase: b,
		Size:        DefaultFreeDrawSize,
		Thinning:    DefaultFreeDrawThinning,
		Smoothing:   DefaultFreeDrawSmoothing,
		Streamline:  DefaultFreeDrawStreamline,
		Easing:      DefaultFreeDrawEasing,
	}
}

func zeroFrame(b model.ElementBase) *model.Frame {
	return &model.Frame{ElementBase: b, Stack: defaultStackElement()}
}

func zeroPlot(b model.ElementBase) *model.Plot {
	return &model.Plot{ElementBase: b, Stack: defaultStackElement()}
}

func zeroViewport(b model.ElementBase) *model.Viewport {
	return &model.Viewport{
		ElementBase: b,
		Stack:       defaultStackElement(),
		View:        defaultView(),
		Scale:       DefaultViewportScale,
	}
}

func zeroXRay(b model.ElementBase) *model.XRay {
	return &model.XRay{ElementBase: b, Direction: model.GeometricPoint{X: 1}}
}
