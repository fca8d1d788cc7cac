package codec

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/schema"
	"github.com/arloliu/cadbin/wire"
)

// slots locates the fields of one element variant inside its composed layout.
type slots struct {
	lay *schema.Layout
	own int
}

func slotsOf(t model.ElementType) slots {
	lay := schema.ElementLayouts[t]
	return slots{lay: lay, own: lay.Start(t.String())}
}

// field returns the slot of the variant's own field i.
func (s slots) field(i int) int { return s.own + i }

// at returns the first slot of a flattened layer.
func (s slots) at(layer string) int { return s.lay.Start(layer) }

// elementTable is the payload table of one element together with its slot map.
type elementTable struct {
	wire.Table
	slots
}

// variantCodec converts one element variant. zero builds the variant around a base with all
// of the variant's own fields at their decode defaults.
type variantCodec struct {
	encode func(st *encodeState, el model.Element) wire.Offset
	decode func(st *decodeState, t elementTable, base model.ElementBase) model.Element
	zero   func(base model.ElementBase) model.Element
}

// registry is indexed by tag. A nil entry means the tag is not supported.
var registry [model.ElementTypeMax + 1]*variantCodec

func register[T model.Element](
	tag model.ElementType,
	enc func(*encodeState, T) wire.Offset,
	dec func(*decodeState, elementTable, model.ElementBase) T,
	zero func(model.ElementBase) T,
) {
	if registry[tag] != nil {
		panic(fmt.Sprintf("codec: element variant %s registered twice", tag))
	}

	registry[tag] = &variantCodec{
		encode: func(st *encodeState, el model.Element) wire.Offset {
			return enc(st, el.(T))
		},
		decode: func(st *decodeState, t elementTable, base model.ElementBase) model.Element {
			return dec(st, t, base)
		},
		zero: func(base model.ElementBase) model.Element {
			return zero(base)
		},
	}
}

func lookup(tag model.ElementType) *variantCodec {
	if !tag.Valid() {
		return nil
	}

	return registry[tag]
}

// Registered returns the tags that have both an encoder and a decoder, in tag order.
func Registered() []model.ElementType {
	out := make([]model.ElementType, 0, len(registry))
	for t := model.TypeRectangle; t <= model.ElementTypeMax; t++ {
		if registry[t] != nil {
			out = append(out, t)
		}
	}

	return out
}

func init() {
	register(model.TypeRectangle, encodeRectangle, decodeRectangle, zeroRectangle)
	register(model.TypePolygon, encodePolygon, decodePolygon, zeroPolygon)
	register(model.TypeEllipse, encodeEllipse, decodeEllipse, zeroEllipse)
	register(model.TypeEmbeddable, encodeEmbeddable, decodeEmbeddable, zeroEmbeddable)
	register(model.TypePdf, encodePdf, decodePdf, zeroPdf)
	register(model.TypeMermaid, encodeMermaid, decodeMermaid, zeroMermaid)
	register(model.TypeTable, encodeTable, decodeTable, zeroTable)
	register(model.TypeImage, encodeImage, decodeImage, zeroImage)
	register(model.TypeText, encodeText, decodeText, zeroText)
	register(model.TypeLine, encodeLine, decodeLine, zeroLine)
	register(model.TypeArrow, encodeArrow, decodeArrow, zeroArrow)
	register(model.TypeFreeDraw, encodeFreeDraw, decodeFreeDraw, zeroFreeDraw)
	register(model.TypeBlockInstance, encodeBlockInstance, decodeBlockInstance, zeroBlockInstance)
	register(model.TypeFrame, encodeFrame, decodeFrame, zeroFrame)
	register(model.TypePlot, encodePlot, decodePlot, zeroPlot)
	register(model.TypeViewport, encodeViewport, decodeViewport, zeroViewport)
	register(model.TypeXRay, encodeXRay, decodeXRay, zeroXRay)
	register(model.TypeLeader, encodeLeader, decodeLeader, zeroLeader)
	register(model.TypeDimension, encodeDimension, decodeDimension, zeroDimension)
	register(model.TypeFeatureControlFrame, encodeFeatureControlFrame, decodeFeatureControlFrame, zeroFeatureControlFrame)
	register(model.TypeDoc, encodeDoc, decodeDoc, zeroDoc)
	register(model.TypeParametric, encodeParametric, decodeParametric, zeroParametric)
	register(model.TypeModel, encodeModel3D, decodeModel3D, zeroModel3D)
}

// element writes the table of one variant: the kind slot, the flattened base, then the
// fields written by own. Children of the variant's own fields must already exist.
func (st *encodeState) element(tag model.ElementType, base *model.ElementBase, own func(s slots)) wire.Offset {
	s := slotsOf(tag)
	refs := st.prepareElementBase(base)

	st.s.StartTable(s.lay)
	st.s.Uint8(s.lay.Start(schema.LayerKind), uint8(tag))
	st.flattenElementBase(s.at(schema.LayerElementBase), base, refs)
	own(s)

	return st.s.EndTable()
}

// wrapElement writes the wrapper table pairing a variant's tag with its payload.
// A variant without a registered encoder is a programming error and panics.
func (st *encodeState) wrapElement(el model.Element) wire.Offset {
	if el == nil {
		st.fail(errs.MissingField(errs.PhaseEncode, st.at(), "element"))
		return 0
	}

	tag := el.Type()
	c := lookup(tag)
	if c == nil {
		panic(fmt.Sprintf("codec: no encoder registered for element variant %s", tag))
	}

	payload := c.encode(st, el)

	st.s.StartTable(schema.ElementWrapperLayout)
	st.s.Uint8(schema.WrapperElementType, uint8(tag))
	st.s.Ref(schema.WrapperElement, payload)

	return st.s.EndTable()
}

// unwrapElement reads a wrapper table and dispatches on its tag.
func (st *decodeState) unwrapElement(w wire.Table) model.Element {
	raw, ok := w.OptUint8(schema.WrapperElementType)
	if !ok {
		st.missing("element_type")
		return nil
	}
	tag := model.ElementType(raw)

	c := lookup(tag)
	if c == nil {
		st.fail(errs.UnknownVariant(st.at("element_type"), raw))
		return nil
	}

	payload, ok := w.Table(schema.WrapperElement)
	if !ok {
		st.missing("element")
		return nil
	}

	s := slotsOf(tag)
	kind, ok := payload.OptUint8(s.lay.Start(schema.LayerKind))
	if !ok {
		st.missing("kind")
		return nil
	}
	if kind != raw {
		st.fail(errs.New(errs.PhaseDecode, errs.ErrVariantMismatch).
			Path(st.at("element")...).
			Value(kind).
			Detail("wrapper tag %s, payload kind %s", tag, model.ElementType(kind)).
			Build())

		return nil
	}

	t := elementTable{Table: payload, slots: s}
	base := st.unflattenElementBase(payload, s.at(schema.LayerElementBase))

	return c.decode(st, t, base)
}

// encodeElements writes a list of wrapped elements. It stops at the first failing element
// and logs it.
func (st *encodeState) encodeElements(field string, els []model.Element) wire.Offset {
	if len(els) == 0 || st.failed() {
		return 0
	}

	offs := make([]wire.Offset, len(els))
	for i, el := range els {
		mark := st.enterIndex(field, i)
		offs[i] = st.wrapElement(el)
		if st.failed() {
			st.log.Error("element encode failed", append(elementIdentity(el), zap.Error(st.err))...)
			st.leave(mark)

			return 0
		}
		st.leave(mark)
	}

	return st.s.Offsets(offs)
}

// decodeElements reads a list of wrapped elements, stopping at the first failure.
func (st *decodeState) decodeElements(t wire.Table, slot int, field string) []model.Element {
	vec := t.Tables(slot)
	if vec.Len() == 0 {
		return nil
	}

	out := make([]model.Element, vec.Len())
	for i := range out {
		mark := st.enterIndex(field, i)
		out[i] = st.unwrapElement(vec.Table(i))
		st.leave(mark)
		if st.failed() {
			return nil
		}
	}

	return out
}
