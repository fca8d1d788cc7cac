package schema

import (
	"fmt"

	"github.com/arloliu/cadbin/errs"
)

// Layer is an ordered list of wire field names contributed by one domain structure.
//
// The position of a name inside Fields is its index within the layer. Codec code refers to
// fields by the exported index constants declared next to each layer, never by name.
type Layer struct {
	Name   string
	Fields []string
}

// NewLayer creates a layer. fields is usually an indexed composite literal keyed by the
// layer's index constants, so reordering the constants cannot silently misalign names.
func NewLayer(name string, fields []string) Layer {
	return Layer{Name: name, Fields: fields}
}

// Layout is the field table of one wire table, built by stacking layers.
//
// Slots are assigned in layer order: the first field of the first layer gets slot 0.
// A layout never contains two fields with the same wire name.
type Layout struct {
	name   string
	layers []Layer
	starts []int
	fields []string
	slots  map[string]int
}

// Compose stacks layers into a layout.
//
// Returns:
//   - *Layout: the composed layout
//   - error: ErrAmbiguousField if two layers (or one layer twice) produce the same wire name
func Compose(name string, layers ...Layer) (*Layout, error) {
	l := &Layout{
		name:   name,
		layers: layers,
		starts: make([]int, len(layers)),
		slots:  make(map[string]int),
	}

	origin := make(map[string]string)
	for i, layer := range layers {
		l.starts[i] = len(l.fields)
		for _, f := range layer.Fields {
			if f == "" {
				return nil, errs.New(errs.PhaseSchema, errs.ErrAmbiguousField).
					Path(name, layer.Name).
					Detail("unnamed field at slot %d", len(l.fields)).
					Build()
			}
			if prev, dup := origin[f]; dup {
				return nil, errs.New(errs.PhaseSchema, errs.ErrAmbiguousField).
					Path(name, f).
					Detail("field %q of layer %q collides with layer %q", f, layer.Name, prev).
					Build()
			}
			origin[f] = layer.Name
			l.slots[f] = len(l.fields)
			l.fields = append(l.fields, f)
		}
	}

	return l, nil
}

// MustCompose is like Compose but panics on a collision. It is meant for package-level
// layout variables, so a bad layout fails at program start.
func MustCompose(name string, layers ...Layer) *Layout {
	l, err := Compose(name, layers...)
	if err != nil {
		panic(fmt.Sprintf("schema: %v", err))
	}

	return l
}

// Name returns the table name.
func (l *Layout) Name() string { return l.name }

// NumFields returns the number of slots, i.e. the argument of Builder.StartObject.
func (l *Layout) NumFields() int { return len(l.fields) }

// Fields returns the wire names in slot order.
func (l *Layout) Fields() []string { return l.fields }

// Start returns the slot of the first field of the named layer.
// It panics if the layer is not part of the layout.
func (l *Layout) Start(layer string) int {
	for i := range l.layers {
		if l.layers[i].Name == layer {
			return l.starts[i]
		}
	}

	panic(fmt.Sprintf("schema: layout %q has no layer %q", l.name, layer))
}

// Slot returns the slot of the named field and whether it exists.
func (l *Layout) Slot(field string) (int, bool) {
	s, ok := l.slots[field]
	return s, ok
}

// VTableOffset converts a slot number to the vtable offset FlatBuffers accessors expect.
func VTableOffset(slot int) int {
	return 4 + 2*slot
}
