package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func allVariants() []Element {
	return []Element{
		&Rectangle{}, &Polygon{}, &Ellipse{}, &Embeddable{}, &Pdf{}, &Mermaid{}, &Table{},
		&Image{}, &Text{}, &Line{}, &Arrow{}, &FreeDraw{}, &BlockInstance{}, &Frame{}, &Plot{},
		&Viewport{}, &XRay{}, &Leader{}, &Dimension{}, &FeatureControlFrame{}, &Doc{},
		&Parametric{}, &Model3D{},
	}
}

func TestElement_TypesAreDistinctAndComplete(t *testing.T) {
	seen := make(map[ElementType]bool)
	for _, el := range allVariants() {
		typ := el.Type()
		require.True(t, typ.Valid(), "variant %T", el)
		require.False(t, seen[typ], "tag %s reused by %T", typ, el)
		seen[typ] = true
	}

	require.Len(t, seen, int(ElementTypeMax))
}

func TestElement_CommonIsShared(t *testing.T) {
	r := &Rectangle{ElementBase: ElementBase{ID: "r1"}}
	var el Element = r

	el.Common().Label = "changed"
	require.Equal(t, "changed", r.Label)
	require.Equal(t, "r1", el.Common().ID)
}

func TestTable_Cell(t *testing.T) {
	tbl := &Table{
		Cells: []TableCell{
			{RowID: "r1", ColumnID: "c1", Text: "a"},
			{RowID: "r1", ColumnID: "c2", Text: "b"},
		},
	}

	cell := tbl.Cell("r1", "c2")
	require.NotNil(t, cell)
	require.Equal(t, "b", cell.Text)
	require.Nil(t, tbl.Cell("r2", "c1"))
}

func TestDocument_Lookups(t *testing.T) {
	doc := &Document{
		Elements: []Element{&Rectangle{ElementBase: ElementBase{ID: "a"}}, &Text{ElementBase: ElementBase{ID: "b"}}},
		Files:    []ExternalFile{{ID: "f1", MimeType: "image/png"}},
		Blocks:   []Block{{ID: "blk"}},
	}

	require.IsType(t, &Text{}, doc.ElementByID("b"))
	require.Nil(t, doc.ElementByID("zz"))
	require.Equal(t, "image/png", doc.FileByID("f1").MimeType)
	require.Nil(t, doc.FileByID("f2"))
	require.NotNil(t, doc.BlockByID("blk"))
	require.Nil(t, doc.BlockByID("nope"))
}

func TestPtr(t *testing.T) {
	p := Ptr("x")
	require.Equal(t, "x", *p)

	q := Ptr(CapRound)
	require.Equal(t, CapRound, *q)
}
