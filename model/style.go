package model

// StyleBase is the visual style shared by every element.
type StyleBase struct {
	Roundness  float64
	Blending   *BlendingMode
	Background []ElementBackground
	Stroke     []ElementStroke
	Opacity    float64
}

// Content is a paint source: a solid color, hatch, image or gradient reference.
type Content struct {
	Preference FillType
	Src        string
	Visible    bool
	Opacity    float64
}

type ElementBackground struct {
	Content Content
}

type ElementStroke struct {
	Content   Content
	Width     float64
	Style     StrokeStyle
	Placement StrokePlacement
}

// StrokeStyle describes the dash pattern and path end shapes of a stroke.
type StrokeStyle struct {
	Preference StrokePreference
	Cap        *StrokeCap
	Join       *StrokeJoin
	Dash       []float64
	DashCap    *StrokeCap
	MiterLimit *float64
}

// TextStyle is the typographic style of text and text-bearing elements.
type TextStyle struct {
	IsLTR         bool
	FontFamily    string
	BigFontFamily string
	TextAlign     TextAlign
	VerticalAlign VerticalAlign
	LineHeight    float64
	FontSize      float64
	ObliqueAngle  float64
	WidthFactor   float64
}
