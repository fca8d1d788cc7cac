package codec

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/maxatome/go-testdeep/td"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/schema"
	"github.com/arloliu/cadbin/wire"
)

// elementFixtureLayout flattens the element-side base layers into one table, the way a
// viewport does.
var elementFixtureLayout = schema.MustCompose("element_fixture",
	schema.ElementBaseLayer,
	schema.LinearLayer,
	schema.StackLayer,
	schema.StackElementLayer,
)

// recordFixtureLayout flattens the layers used by groups and revisions.
var recordFixtureLayout = schema.MustCompose("record_fixture",
	schema.StackLayer,
	schema.VersionBaseLayer,
)

type elementFixture struct {
	Base    model.ElementBase
	Linear  model.LinearBase
	Element model.StackElementBase
}

type recordFixture struct {
	Stack   model.StackBase
	Version model.VersionBase
}

func fixtureSession() (*wire.Session, *encodeState) {
	s := wire.NewSession(flatbuffers.NewBuilder(0))
	return s, newEncodeState(s, zap.NewNop())
}

func fixtureRoot(t *testing.T, buf []byte) (wire.Table, *decodeState) {
	t.Helper()

	tbl, err := wire.Root(buf)
	require.NoError(t, err)

	return tbl, newDecodeState(newDecoderConfig(), zap.NewNop())
}

func flattenElementFixture(t *testing.T, p *elementFixture) []byte {
	t.Helper()

	s, st := fixtureSession()
	lay := elementFixtureLayout

	baseRefs := st.prepareElementBase(&p.Base)
	linearRefs := st.prepareLinear(&p.Linear)
	elementRefs := st.prepareStackElement(&p.Element)

	s.StartTable(lay)
	st.flattenElementBase(lay.Start(schema.LayerElementBase), &p.Base, baseRefs)
	st.flattenLinear(lay.Start(schema.LayerLinear), linearRefs)
	st.flattenStackElement(lay, &p.Element, elementRefs)
	s.Finish(s.EndTable())

	require.NoError(t, st.err)

	return s.FinishedBytes()
}

func unflattenElementFixture(t *testing.T, buf []byte) *elementFixture {
	t.Helper()

	tbl, st := fixtureRoot(t, buf)
	lay := elementFixtureLayout
	p := &elementFixture{
		Base:    st.unflattenElementBase(tbl, lay.Start(schema.LayerElementBase)),
		Linear:  st.unflattenLinear(tbl, lay.Start(schema.LayerLinear)),
		Element: st.unflattenStackElement(tbl, lay),
	}
	require.NoError(t, st.err)

	return p
}

func flattenRecordFixture(t *testing.T, p *recordFixture) []byte {
	t.Helper()

	s, st := fixtureSession()
	lay := recordFixtureLayout

	stackRefs := st.prepareStack(&p.Stack)
	versionRefs := st.prepareVersionBase(&p.Version)

	s.StartTable(lay)
	st.flattenStack(lay.Start(schema.LayerStack), &p.Stack, stackRefs)
	st.flattenVersionBase(lay.Start(schema.LayerVersionBase), &p.Version, versionRefs)
	s.Finish(s.EndTable())

	require.NoError(t, st.err)

	return s.FinishedBytes()
}

func unflattenRecordFixture(t *testing.T, buf []byte) *recordFixture {
	t.Helper()

	tbl, st := fixtureRoot(t, buf)
	lay := recordFixtureLayout
	p := &recordFixture{
		Stack:   st.unflattenStack(tbl, lay.Start(schema.LayerStack)),
		Version: st.unflattenVersionBase(tbl, lay.Start(schema.LayerVersionBase)),
	}
	require.NoError(t, st.err)

	return p
}

func TestFlatten_ElementLayersIdempotent(t *testing.T) {
	want := &elementFixture{
		Base:    sampleBase("fixture-el"),
		Linear:  sampleLinear(),
		Element: sampleStackElement(),
	}

	first := flattenElementFixture(t, want)
	got := unflattenElementFixture(t, first)
	td.Cmp(t, got, want)

	require.Equal(t, first, flattenElementFixture(t, got))
}

func TestFlatten_RecordLayersIdempotent(t *testing.T) {
	want := &recordFixture{
		Stack: model.StackBase{
			Label:         "stack",
			Description:   model.Ptr("grouped parts"),
			IsCollapsed:   true,
			IsPlot:        true,
			IsVisible:     false,
			Locked:        true,
			Opacity:       0.5,
			LabelingColor: "#112233",
		},
		Version: model.VersionBase{
			ID:           "v-fixture",
			ParentID:     model.Ptr("v-root"),
			Timestamp:    1_700_000_000_000,
			Description:  model.Ptr("fixture"),
			IsManualSave: true,
			UserID:       model.Ptr("u-1"),
		},
	}

	first := flattenRecordFixture(t, want)
	got := unflattenRecordFixture(t, first)
	td.Cmp(t, got, want)

	require.Equal(t, first, flattenRecordFixture(t, got))
}

func TestFlatten_AbsentLayersDecodeToDefaults(t *testing.T) {
	s, _ := fixtureSession()
	id := s.String("only-id")
	s.StartTable(elementFixtureLayout)
	s.Ref(elementFixtureLayout.Start(schema.LayerElementBase)+schema.BaseID, id)
	s.Finish(s.EndTable())

	got := unflattenElementFixture(t, s.FinishedBytes())
	td.Cmp(t, got, &elementFixture{
		Base:    defaultBase("only-id"),
		Element: defaultStackElement(),
	})
}
