package codec

import (
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/schema"
	"github.com/arloliu/cadbin/wire"
)

func (st *encodeState) grid(v *model.DocumentGridConfig) wire.Offset {
	st.s.StartTable(schema.GridConfigLayout)
	st.s.Int32(schema.GridColumns, v.Columns)
	st.s.Float64(schema.GridGapX, v.GapX)
	st.s.Float64(schema.GridGapY, v.GapY)
	st.s.Bool(schema.GridFirstPageAlone, v.FirstPageAlone)
	st.s.Float64(schema.GridScale, v.Scale)

	return st.s.EndTable()
}

func (st *decodeState) grid(t wire.Table) model.DocumentGridConfig {
	return model.DocumentGridConfig{
		Columns:        t.Int32(schema.GridColumns, DefaultGridColumns),
		GapX:           t.Float64(schema.GridGapX, 0),
		GapY:           t.Float64(schema.GridGapY, 0),
		FirstPageAlone: t.Bool(schema.GridFirstPageAlone, false),
		Scale:          t.Float64(schema.GridScale, DefaultGridScale),
	}
}

func encodePdf(st *encodeState, v *model.Pdf) wire.Offset {
	fileID := st.s.OptString(v.FileID)
	grid := encodeSub(st, "grid_config", &v.Grid, st.grid)

	return st.element(model.TypePdf, &v.ElementBase, func(s slots) {
		st.s.Ref(s.field(schema.PdfFileID), fileID)
		st.s.Ref(s.field(schema.PdfGrid), grid)
	})
}

func decodePdf(st *decodeState, t elementTable, base model.ElementBase) *model.Pdf {
	return &model.Pdf{
		ElementBase: base,
		FileID:      t.OptString(t.field(schema.PdfFileID)),
		Grid:        decodeSub(st, t.Table, t.field(schema.PdfGrid), "grid_config", defaultGrid(), st.grid),
	}
}

func encodeDoc(st *encodeState, v *model.Doc) wire.Offset {
	text := st.s.String(v.Text)
	fileID := st.s.OptString(v.FileID)
	grid := encodeSub(st, "grid_config", &v.Grid, st.grid)

	return st.element(model.TypeDoc, &v.ElementBase, func(s slots) {
		st.s.Ref(s.field(schema.DocText), text)
		st.s.Ref(s.field(schema.DocFileID), fileID)
		st.s.Ref(s.field(schema.DocGrid), grid)
	})
}

func decodeDoc(st *decodeState, t elementTable, base model.ElementBase) *model.Doc {
	return &model.Doc{
		ElementBase: base,
		Text:        t.String(t.field(schema.DocText)),
		FileID:      t.OptString(t.field(schema.DocFileID)),
		Grid:        decodeSub(st, t.Table, t.field(schema.DocGrid), "grid_config", defaultGrid(), st.grid),
	}
}

func encodeMermaid(st *encodeState, v *model.Mermaid) wire.Offset {
	source := st.s.String(v.Source)
	theme := st.s.OptString(v.Theme)
	svgPath := st.s.OptString(v.SvgPath)

	return st.element(model.TypeMermaid, &v.ElementBase, func(s slots) {
		st.s.Ref(s.field(schema.MermaidSource), source)
		st.s.Ref(s.field(schema.MermaidTheme), theme)
		st.s.Ref(s.field(schema.MermaidSvgPath), svgPath)
	})
}

func decodeMermaid(_ *decodeState, t elementTable, base model.ElementBase) *model.Mermaid {
	return &model.Mermaid{
		ElementBase: base,
		Source:      t.String(t.field(schema.MermaidSource)),
		Theme:       t.OptString(t.field(schema.MermaidTheme)),
		SvgPath:     t.OptString(t.field(schema.MermaidSvgPath)),
	}
}

func (st *encodeState) imageCrop(v *model.ImageCrop) wire.Offset {
	st.s.StartTable(schema.ImageCropLayout)
	st.s.Float64(schema.CropX, v.X)
	st.s.Float64(schema.CropY, v.Y)
	st.s.Float64(schema.CropWidth, v.Width)
	st.s.Float64(schema.CropHeight, v.Height)
	st.s.Float64(schema.CropNaturalWidth, v.NaturalWidth)
	st.s.Float64(schema.CropNaturalHeight, v.NaturalHeight)

	return st.s.EndTable()
}

func (st *decodeState) imageCrop(t wire.Table) model.ImageCrop {
	return model.ImageCrop{
		X:             t.Float64(schema.CropX, 0),
		Y:             t.Float64(schema.CropY, 0),
		Width:         t.Float64(schema.CropWidth, 0),
		Height:        t.Float64(schema.CropHeight, 0),
		NaturalWidth:  t.Float64(schema.CropNaturalWidth, 0),
		NaturalHeight: t.Float64(schema.CropNaturalHeight, 0),
	}
}

func (st *encodeState) imageFilter(v *model.ImageFilter) wire.Offset {
	st.s.StartTable(schema.ImageFilterLayout)
	st.s.Float64(schema.FilterBrightness, v.Brightness)
	st.s.Float64(schema.FilterContrast, v.Contrast)

	return st.s.EndTable()
}

func (st *decodeState) imageFilter(t wire.Table) model.ImageFilter {
	return model.ImageFilter{
		Brightness: t.Float64(schema.FilterBrightness, DefaultFilterLevel),
		Contrast:   t.Float64(schema.FilterContrast, DefaultFilterLevel),
	}
}

func encodeImage(st *encodeState, v *model.Image) wire.Offset {
	fileID := st.s.OptString(v.FileID)
	crop := encodeOpt(st, "crop", v.Crop, st.imageCrop)
	filter := encodeOpt(st, "filter", v.Filter, st.imageFilter)
	status := encodeEnum(st, "status", v.Status, model.ImageStatusMax)

	return st.element(model.TypeImage, &v.ElementBase, func(s slots) {
		st.s.Ref(s.field(schema.ImageFileID), fileID)
		st.s.Uint8(s.field(schema.ImageStatus), status)
		st.s.Float64(s.field(schema.ImageScaleX), v.ScaleX)
		st.s.Float64(s.field(schema.ImageScaleY), v.ScaleY)
		st.s.Ref(s.field(schema.ImageCrop), crop)
		st.s.Ref(s.field(schema.ImageFilter), filter)
	})
}

func decodeImage(st *decodeState, t elementTable, base model.ElementBase) *model.Image {
	return &model.Image{
		ElementBase: base,
		FileID:      t.OptString(t.field(schema.ImageFileID)),
		Status: decodeEnum(st, "status",
			t.Uint8(t.field(schema.ImageStatus), uint8(DefaultImageStatus)), model.ImageStatusMax),
		ScaleX: t.Float64(t.field(schema.ImageScaleX), DefaultImageScale),
		ScaleY: t.Float64(t.field(schema.ImageScaleY), DefaultImageScale),
		Crop:   decodeOpt(st, t.Table, t.field(schema.ImageCrop), "crop", st.imageCrop),
		Filter: decodeOpt(st, t.Table, t.field(schema.ImageFilter), "filter", st.imageFilter),
	}
}

func encodeText(st *encodeState, v *model.Text) wire.Offset {
	style := encodeSub(st, "style", &v.Style, st.textStyle)
	text := st.s.String(v.Text)
	original := st.s.String(v.OriginalText)
	container := st.s.OptString(v.ContainerID)

	return st.element(model.TypeText, &v.ElementBase, func(s slots) {
		st.s.Ref(s.field(schema.TextStyle), style)
		st.s.Ref(s.field(schema.TextText), text)
		st.s.Ref(s.field(schema.TextOriginalText), original)
		st.s.Bool(s.field(schema.TextAutoResize), v.AutoResize)
		st.s.Ref(s.field(schema.TextContainerID), container)
	})
}

func decodeText(st *decodeState, t elementTable, base model.ElementBase) *model.Text {
	return &model.Text{
		ElementBase:  base,
		Style:        decodeSub(st, t.Table, t.field(schema.TextStyle), "style", defaultTextStyle(), st.textStyle),
		Text:         t.String(t.field(schema.TextText)),
		OriginalText: t.String(t.field(schema.TextOriginalText)),
		AutoResize:   t.Bool(t.field(schema.TextAutoResize), DefaultAutoResize),
		ContainerID:  t.OptString(t.field(schema.TextContainerID)),
	}
}

func (st *encodeState) parametricSource(v *model.ParametricSource) wire.Offset {
	code := st.s.String(v.Code)
	fileID := st.s.String(v.FileID)
	typ := encodeEnum(st, "type", v.Type, model.ParametricSourceTypeMax)

	st.s.StartTable(schema.ParametricSourceLayout)
	st.s.Uint8(schema.SourceType, typ)
	st.s.Ref(schema.SourceCode, code)
	st.s.Ref(schema.SourceFileID, fileID)

	return st.s.EndTable()
}

func (st *decodeState) parametricSource(t wire.Table) model.ParametricSource {
	return model.ParametricSource{
		Type:   decodeEnum(st, "type", t.Uint8(schema.SourceType, 0), model.ParametricSourceTypeMax),
		Code:   t.String(schema.SourceCode),
		FileID: t.String(schema.SourceFileID),
	}
}

func encodeParametric(st *encodeState, v *model.Parametric) wire.Offset {
	source := encodeSub(st, "source", &v.Source, st.parametricSource)

	return st.element(model.TypeParametric, &v.ElementBase, func(s slots) {
		st.s.Ref(s.field(schema.ParametricSource), source)
	})
}

func decodeParametric(st *decodeState, t elementTable, base model.ElementBase) *model.Parametric {
	return &model.Parametric{
		ElementBase: base,
		Source: decodeSub(st, t.Table, t.field(schema.ParametricSource), "source",
			model.ParametricSource{}, st.parametricSource),
	}
}

func encodeModel3D(st *encodeState, v *model.Model3D) wire.Offset {
	modelType := st.s.OptString(v.ModelType)
	code := st.s.String(v.Code)
	fileIDs := st.s.Strings(v.FileIDs)
	svgPath := st.s.OptString(v.SvgPath)

	return st.element(model.TypeModel, &v.ElementBase, func(s slots) {
		st.s.Ref(s.field(schema.ModelType), modelType)
		st.s.Ref(s.field(schema.ModelCode), code)
		st.s.Ref(s.field(schema.ModelFileIDs), fileIDs)
		st.s.Ref(s.field(schema.ModelSvgPath), svgPath)
	})
}

func decodeModel3D(_ *decodeState, t elementTable, base model.ElementBase) *model.Model3D {
	return &model.Model3D{
		ElementBase: base,
		ModelType:   t.OptString(t.field(schema.ModelType)),
		Code:        t.String(t.field(schema.ModelCode)),
		FileIDs:     t.Strings(t.field(schema.ModelFileIDs)),
		SvgPath:     t.OptString(t.field(schema.ModelSvgPath)),
	}
}
