package codec

import (
	"github.com/arloliu/cadbin/model"
)

func sampleStyles() model.StyleBase {
	return model.StyleBase{
		Roundness: 4,
		Blending:  model.Ptr(model.BlendScreen),
		Background: []model.ElementBackground{
			{Content: model.Content{Preference: model.FillSolid, Src: "#ffeecc", Visible: true, Opacity: 0.5}},
			{Content: model.Content{Preference: model.FillHatch, Src: "ansi31", Visible: false, Opacity: 1}},
		},
		Stroke: []model.ElementStroke{{
			Content: model.Content{Preference: model.FillSolid, Src: "#000000", Visible: true, Opacity: 1},
			Width:   0.35,
			Style: model.StrokeStyle{
				Preference: model.StrokeDashed,
				Cap:        model.Ptr(model.CapRound),
				Join:       model.Ptr(model.JoinBevel),
				Dash:       []float64{4, 2, 1, 2},
				DashCap:    model.Ptr(model.CapSquare),
				MiterLimit: model.Ptr(10.0),
			},
			Placement: model.StrokeInside,
		}},
		Opacity: 0.8,
	}
}

func sampleBase(id string) model.ElementBase {
	return model.ElementBase{
		ID:            id,
		Styles:        sampleStyles(),
		X:             -12.5,
		Y:             40,
		Width:         120,
		Height:        0,
		Angle:         0.25,
		Scope:         "cm",
		Label:         "label " + id,
		Description:   model.Ptr("description of " + id),
		IsVisible:     false,
		Seed:          12345,
		Version:       7,
		VersionNonce:  -99,
		Updated:       1_726_000_000_000,
		Index:         model.Ptr("a0"),
		IsPlot:        true,
		IsAnnotative:  true,
		IsDeleted:     false,
		GroupIDs:      []string{"g1", "g2"},
		RegionIDs:     []string{"r1"},
		LayerID:       model.Ptr("layer-1"),
		FrameID:       model.Ptr("frame-1"),
		BoundElements: []model.BoundElement{{ID: "txt-1", Type: "text"}, {ID: "arr-1", Type: "arrow"}},
		ZIndex:        3.5,
		Link:          model.Ptr("https://example.com/parts/42"),
		Locked:        true,
		CustomData: map[string]any{
			"owner":  "drafting",
			"rev":    uint64(3),
			"offset": int64(-2),
			"scale":  1.5,
			"tags":   []any{"a", "b"},
			"nested": map[string]any{"ok": true},
		},
	}
}

func sampleLinear() model.LinearBase {
	return model.LinearBase{
		Points: []model.LinePoint{
			{Position: model.GeometricPoint{X: 0, Y: 0}},
			{Position: model.GeometricPoint{X: 10, Y: 5}, Mirroring: model.Ptr(model.MirrorAngleLength)},
			{Position: model.GeometricPoint{X: 20, Y: 0}},
		},
		Lines: []model.LineSegment{
			{Start: model.LineReference{Index: 0}, End: model.LineReference{Index: 1, Handle: &model.GeometricPoint{X: 5, Y: 8}}},
			{Start: model.LineReference{Index: 1}, End: model.LineReference{Index: 2}},
		},
		PathOverrides: []model.PathOverride{{LineIndices: []int32{1}, Styles: sampleStyles()}},
		LastCommittedPoint: &model.LinePoint{
			Position: model.GeometricPoint{X: 20, Y: 0},
		},
		StartBinding: &model.PointBinding{
			ElementID:  "rect-1",
			Focus:      0.5,
			Gap:        2,
			FixedPoint: &model.GeometricPoint{X: 0.5, Y: 1},
			Head:       &model.LineHead{Type: model.HeadCircle, Size: 2},
		},
		EndBinding: &model.PointBinding{ElementID: "rect-2", Focus: -0.25, Gap: 0},
	}
}

func sampleStackElement() model.StackElementBase {
	return model.StackElementBase{
		StackBase: model.StackBase{
			Label:         "Sheet A1",
			Description:   model.Ptr("title block"),
			IsCollapsed:   true,
			IsPlot:        true,
			IsVisible:     false,
			Locked:        true,
			Opacity:       0.4,
			LabelingColor: "#ff0000",
		},
		Clip:             true,
		LabelVisible:     false,
		StandardOverride: model.Ptr("ISO"),
	}
}

func sampleTextStyle() model.TextStyle {
	return model.TextStyle{
		IsLTR:         false,
		FontFamily:    "Inter",
		BigFontFamily: "gbcbig",
		TextAlign:     model.AlignRight,
		VerticalAlign: model.AlignBottom,
		LineHeight:    1.5,
		FontSize:      3.5,
		ObliqueAngle:  0.1,
		WidthFactor:   0.9,
	}
}

func sampleCellStyle() *model.TableCellStyle {
	return &model.TableCellStyle{
		Styles:  sampleStyles(),
		Text:    sampleTextStyle(),
		Margins: model.Margins{Top: 1, Right: 2, Bottom: 3, Left: 4},
	}
}

// sampleElements returns one fully populated instance of every variant, in tag order.
func sampleElements() []model.Element {
	return []model.Element{
		&model.Rectangle{ElementBase: sampleBase("rect-1")},
		&model.Polygon{ElementBase: sampleBase("poly-1"), Sides: 0},
		&model.Ellipse{ElementBase: sampleBase("ell-1"), Ratio: 0.5, StartAngle: 0.1, EndAngle: 3, ShowAuxCrosshair: true},
		&model.Embeddable{ElementBase: sampleBase("emb-1")},
		&model.Pdf{
			ElementBase: sampleBase("pdf-1"),
			FileID:      model.Ptr("file-pdf"),
			Grid:        model.DocumentGridConfig{Columns: 2, GapX: 5, GapY: 6, FirstPageAlone: true, Scale: 0.5},
		},
		&model.Mermaid{
			ElementBase: sampleBase("mmd-1"),
			Source:      "graph TD; A-->B",
			Theme:       model.Ptr("dark"),
			SvgPath:     model.Ptr("M0 0L1 1"),
		},
		&model.Table{
			ElementBase: sampleBase("tbl-1"),
			Columns: []model.TableColumn{
				{ID: "c1", Width: 30, Style: sampleCellStyle()},
				{ID: "c2", Width: 40},
			},
			Rows:            []model.TableRow{{ID: "r1", Height: 8}, {ID: "r2", Height: 0, Style: sampleCellStyle()}},
			Cells:           []model.TableCell{{RowID: "r1", ColumnID: "c1", Text: "Qty", Locked: true, Span: &model.TableCellSpan{Columns: 2, Rows: 1}, Style: sampleCellStyle()}},
			HeaderRowCount:  1,
			AutoSizeColumns: true,
			AutoSizeRows:    false,
			Style:           sampleCellStyle(),
		},
		&model.Image{
			ElementBase: sampleBase("img-1"),
			FileID:      model.Ptr("file-png"),
			Status:      model.ImageSaved,
			ScaleX:      -1,
			ScaleY:      1,
			Crop:        &model.ImageCrop{X: 1, Y: 2, Width: 30, Height: 40, NaturalWidth: 300, NaturalHeight: 400},
			Filter:      &model.ImageFilter{Brightness: 0, Contrast: 1.2},
		},
		&model.Text{
			ElementBase:  sampleBase("txt-1"),
			Style:        sampleTextStyle(),
			Text:         "M10 bolt",
			OriginalText: "M10  bolt",
			AutoResize:   false,
			ContainerID:  model.Ptr("rect-1"),
		},
		&model.Line{ElementBase: sampleBase("line-1"), Linear: sampleLinear(), WipeoutBelow: true},
		&model.Arrow{ElementBase: sampleBase("arr-1"), Linear: sampleLinear(), Elbowed: true},
		&model.FreeDraw{
			ElementBase:        sampleBase("fd-1"),
			Points:             []model.GeometricPoint{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 1}},
			Size:               4,
			Thinning:           0,
			Smoothing:          0.2,
			Streamline:         0.9,
			Easing:             "linear",
			Start:              &model.FreeDrawEnds{Cap: true, Taper: 10, Easing: "easeInQuad"},
			End:                &model.FreeDrawEnds{Cap: false, Taper: 0, Easing: ""},
			Pressures:          []float32{0.25, 0.5, 1},
			SimulatePressure:   true,
			LastCommittedPoint: &model.GeometricPoint{X: 3, Y: 1},
			SvgPath:            model.Ptr("M0 0"),
		},
		&model.BlockInstance{
			ElementBase:      sampleBase("bi-1"),
			BlockID:          "block-bolt",
			ElementOverrides: []model.StringValueEntry{{Key: "head", Value: "hex"}},
			AttributeValues:  []model.StringValueEntry{{Key: "SIZE", Value: "M10"}, {Key: "LEN", Value: "40"}},
			Duplication:      &model.DuplicationArray{Rows: 2, Cols: 3, RowSpacing: 10, ColSpacing: 15},
		},
		&model.Frame{ElementBase: sampleBase("frame-1"), Stack: sampleStackElement()},
		&model.Plot{
			ElementBase: sampleBase("plot-1"),
			Stack:       sampleStackElement(),
			Layout:      model.Margins{Top: 10, Right: 10, Bottom: 20, Left: 25},
		},
		&model.Viewport{
			ElementBase: sampleBase("vp-1"),
			Linear:      sampleLinear(),
			Stack:       sampleStackElement(),
			View: model.ViewportView{
				ScrollX: 100, ScrollY: -50, Zoom: 0.02, TwistAngle: 0.5,
				CenterPoint: model.GeometricPoint{X: 500, Y: 250},
			},
			Scale:          0.01,
			ShadePlot:      model.ShadeHidden,
			FrozenGroupIDs: []string{"g2"},
		},
		&model.XRay{
			ElementBase:     sampleBase("xray-1"),
			Origin:          model.GeometricPoint{X: 1, Y: 1},
			Direction:       model.GeometricPoint{X: 0, Y: 1},
			StartFromOrigin: true,
			Color:           "#00ff00",
		},
		&model.Leader{
			ElementBase:   sampleBase("ldr-1"),
			Linear:        sampleLinear(),
			Content:       &model.LeaderContent{Type: model.LeaderBlock, Text: "", BlockID: "block-balloon"},
			ContentAnchor: model.GeometricPoint{X: 30, Y: 10},
		},
		&model.Dimension{
			ElementBase:   sampleBase("dim-1"),
			DimensionType: model.DimensionOrdinate,
			Origin1:       model.GeometricPoint{X: 0, Y: 0},
			Origin2:       model.GeometricPoint{X: 100, Y: 0},
			Location:      model.GeometricPoint{X: 50, Y: -10},
			Center:        &model.GeometricPoint{X: 50, Y: 50},
			ObliqueAngle:  0.2,
			TextOverride:  model.Ptr("<> TYP"),
			TextPosition:  &model.GeometricPoint{X: 50, Y: -12},
		},
		&model.FeatureControlFrame{
			ElementBase: sampleBase("fcf-1"),
			Segments: []model.FCFSegment{
				{Symbol: model.GDTPosition, Tolerance: "⌀0.05 M", Datums: []string{"A", "B", "C"}},
				{Symbol: model.GDTFlatness, Tolerance: "0.01"},
			},
			DatumDefinition: model.Ptr("D"),
		},
		&model.Doc{
			ElementBase: sampleBase("doc-1"),
			Text:        "# Notes",
			FileID:      model.Ptr("file-md"),
			Grid:        model.DocumentGridConfig{Columns: 3, Scale: 2},
		},
		&model.Parametric{
			ElementBase: sampleBase("par-1"),
			Source:      model.ParametricSource{Type: model.ParametricFile, Code: "", FileID: "file-scad"},
		},
		&model.Model3D{
			ElementBase: sampleBase("m3d-1"),
			ModelType:   model.Ptr("step"),
			Code:        "cube(10);",
			FileIDs:     []string{"file-step", "file-mtl"},
			SvgPath:     model.Ptr("M1 1"),
		},
	}
}

func sampleDocument() *model.Document {
	return &model.Document{
		Type:      "cad",
		Version:   "3.1.0",
		Source:    "cadbin-test",
		Thumbnail: []byte{0x89, 'P', 'N', 'G'},
		Dictionary: []model.DictionaryEntry{
			{Key: "project", Value: "gearbox"},
			{Key: "revision", Value: "B"},
		},
		Elements: sampleElements(),
		Blocks: []model.Block{{
			ID:          "block-bolt",
			Label:       "Bolt",
			Description: model.Ptr("hex bolt"),
			Version:     2,
			Elements: []model.Element{
				&model.Polygon{ElementBase: sampleBase("block-poly"), Sides: 6},
				&model.Ellipse{ElementBase: sampleBase("block-ell"), Ratio: 1, EndAngle: 6.28},
			},
		}},
		Groups: []model.Group{{ID: "g1", Stack: sampleStackElement().StackBase}},
		Layers: []model.Layer{{
			ID:       "layer-1",
			Stack:    model.StackBase{Label: "Dimensions", IsVisible: true, Opacity: 1},
			ReadOnly: true,
			Overrides: &model.LayerOverrides{
				Stroke: &sampleStyles().Stroke[0],
			},
		}},
		GlobalState: &model.GlobalState{
			Name:                   model.Ptr("Gearbox"),
			ViewBackgroundColor:    "#ffffff",
			MainScope:              "m",
			ScopeExponentThreshold: 0,
			LinearUnit:             model.UnitInch,
			PruningLevel:           model.PruneAggressive,
		},
		LocalState: &model.LocalState{
			Scope:                    "mm",
			ScrollX:                  -200,
			ScrollY:                  150,
			Zoom:                     0.75,
			IsBindingEnabled:         false,
			CurrentItemStroke:        &sampleStyles().Stroke[0],
			CurrentItemBackground:    &sampleStyles().Background[0],
			CurrentItemOpacity:       0,
			CurrentItemFontFamily:    "Inter",
			CurrentItemFontSize:      12,
			CurrentItemTextAlign:     model.AlignCenter,
			CurrentItemRoundness:     2,
			CurrentItemStartLineHead: &model.LineHead{Type: model.HeadBar, Size: 1},
			CurrentItemEndLineHead:   &model.LineHead{Type: model.HeadTriangle, Size: 1.5},
			PenMode:                  true,
			ViewModeEnabled:          true,
			ObjectsSnapModeEnabled:   false,
			GridModeEnabled:          true,
			OutlineModeEnabled:       true,
			ManualSaveMode:           true,
		},
		Files: []model.ExternalFile{
			{ID: "file-png", MimeType: "image/png", Data: []byte{1, 2, 3, 4}, Created: 1_700_000_000_000, LastRetrieved: model.Ptr(int64(1_700_000_100_000))},
			{ID: "file-pdf", MimeType: "application/pdf", Data: []byte("%PDF-1.7"), Created: 0},
		},
		VersionGraph: &model.VersionGraph{
			UserCheckpointVersionID: model.Ptr("v1"),
			LatestVersionID:         "v2",
			Checkpoints: []model.Checkpoint{{
				VersionBase: model.VersionBase{ID: "v1", Timestamp: 1000, IsManualSave: true, UserID: model.Ptr("u1")},
				Data:        []byte("snapshot"),
				SizeBytes:   8,
			}},
			Deltas: []model.Delta{{
				VersionBase: model.VersionBase{ID: "v2", ParentID: model.Ptr("v1"), Timestamp: 2000, Description: model.Ptr("move")},
				Patch:       []byte(`[{"op":"replace"}]`),
			}},
			Metadata: model.VersionGraphMetadata{PruningLevel: model.PruneConservative, LastPruned: 1500, TotalSize: 42},
		},
	}
}
