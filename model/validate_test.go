package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/arloliu/cadbin/errs"
)

func validDocument() *Document {
	return &Document{
		Elements: []Element{
			&Rectangle{ElementBase: ElementBase{ID: "rect"}},
			&Table{
				ElementBase: ElementBase{ID: "tbl"},
				Columns:     []TableColumn{{ID: "c1"}, {ID: "c2"}},
				Rows:        []TableRow{{ID: "r1"}},
				Cells:       []TableCell{{RowID: "r1", ColumnID: "c1"}, {RowID: "r1", ColumnID: "c2"}},
			},
		},
		Blocks: []Block{{ID: "b1", Elements: []Element{&Ellipse{ElementBase: ElementBase{ID: "inner"}}}}},
		Files:  []ExternalFile{{ID: "f1"}},
		Layers: []Layer{{ID: "l1"}},
		Groups: []Group{{ID: "g1"}},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validDocument().Validate())
	require.NoError(t, (&Document{}).Validate())
}

func TestValidate_Nil(t *testing.T) {
	var doc *Document
	require.ErrorIs(t, doc.Validate(), errs.ErrInvalidDocument)
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Document)
		kind   error
	}{
		{
			name:   "empty element id",
			mutate: func(d *Document) { d.Elements[0].Common().ID = "" },
			kind:   errs.ErrMissingRequiredField,
		},
		{
			name: "duplicate element id",
			mutate: func(d *Document) {
				d.Elements = append(d.Elements, &Text{ElementBase: ElementBase{ID: "rect"}})
			},
			kind: errs.ErrDuplicateID,
		},
		{
			name:   "block element collides with top level",
			mutate: func(d *Document) { d.Blocks[0].Elements[0].Common().ID = "tbl" },
			kind:   errs.ErrDuplicateID,
		},
		{
			name:   "nil element",
			mutate: func(d *Document) { d.Elements = append(d.Elements, nil) },
			kind:   errs.ErrMissingRequiredField,
		},
		{
			name:   "duplicate file id",
			mutate: func(d *Document) { d.Files = append(d.Files, ExternalFile{ID: "f1"}) },
			kind:   errs.ErrDuplicateID,
		},
		{
			name:   "empty file id",
			mutate: func(d *Document) { d.Files[0].ID = "" },
			kind:   errs.ErrMissingRequiredField,
		},
		{
			name: "invalid blending",
			mutate: func(d *Document) {
				d.Elements[0].Common().Styles.Blending = Ptr(BlendingMode(99))
			},
			kind: errs.ErrInvalidEnum,
		},
		{
			name: "invalid stroke placement",
			mutate: func(d *Document) {
				d.Elements[0].Common().Styles.Stroke = []ElementStroke{{Placement: StrokePlacement(5)}}
			},
			kind: errs.ErrInvalidEnum,
		},
		{
			name: "cell references unknown row",
			mutate: func(d *Document) {
				tbl := d.Elements[1].(*Table)
				tbl.Cells = append(tbl.Cells, TableCell{RowID: "r9", ColumnID: "c1"})
			},
			kind: errs.ErrInvalidDocument,
		},
		{
			name: "duplicate checkpoint id",
			mutate: func(d *Document) {
				d.VersionGraph = &VersionGraph{
					Checkpoints: []Checkpoint{{VersionBase: VersionBase{ID: "v1"}}},
					Deltas:      []Delta{{VersionBase: VersionBase{ID: "v1"}}},
				}
			},
			kind: errs.ErrDuplicateID,
		},
		{
			name:   "invalid linear unit",
			mutate: func(d *Document) { d.GlobalState = &GlobalState{LinearUnit: LinearUnit(40)} },
			kind:   errs.ErrInvalidEnum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)

			err := doc.Validate()
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInvalidDocument)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	doc := validDocument()
	doc.Elements[0].Common().ID = ""
	doc.Files = append(doc.Files, ExternalFile{ID: "f1"})
	doc.Layers = append(doc.Layers, Layer{ID: "l1"})

	err := doc.Validate()
	require.Len(t, multierr.Errors(err), 3)
}
