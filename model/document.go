// Package model defines the in-memory CAD/diagram document that cadbin encodes.
//
// A Document is plain data: constructing one has no side effects, and the codec never
// retains references into it. Optional attributes are pointers; a nil pointer means "not set"
// and round-trips as nil. Every element variant embeds ElementBase and implements Element.
package model

// Document is the root of the model.
type Document struct {
	// Type identifies the application format, e.g. "cad".
	Type string
	// Version is the schema version the document was written with. The encoder overwrites it.
	Version string
	// Source names the producing application.
	Source    string
	Thumbnail []byte

	Dictionary   []DictionaryEntry
	Elements     []Element
	Blocks       []Block
	Groups       []Group
	Layers       []Layer
	GlobalState  *GlobalState
	LocalState   *LocalState
	Files        []ExternalFile
	VersionGraph *VersionGraph
}

// DictionaryEntry is a free-form document-level key/value pair.
type DictionaryEntry struct {
	Key   string
	Value string
}

// Block is a reusable element definition, placed on the canvas through BlockInstance.
type Block struct {
	ID          string
	Label       string
	Description *string
	Version     int32
	Elements    []Element
}

type Group struct {
	ID    string
	Stack StackBase
}

// LayerOverrides replace the style of every element on a layer.
type LayerOverrides struct {
	Stroke     *ElementStroke
	Background *ElementBackground
}

type Layer struct {
	ID        string
	Stack     StackBase
	ReadOnly  bool
	Overrides *LayerOverrides
}

// ExternalFile is binary content referenced by id from image, pdf and similar elements.
type ExternalFile struct {
	ID            string
	MimeType      string
	Data          []byte
	Created       int64 // unix milliseconds
	LastRetrieved *int64
}

// ElementByID returns the top-level element with the given id, or nil.
func (d *Document) ElementByID(id string) Element {
	for _, el := range d.Elements {
		if el != nil && el.Common().ID == id {
			return el
		}
	}

	return nil
}

// FileByID returns the external file with the given id, or nil.
func (d *Document) FileByID(id string) *ExternalFile {
	for i := range d.Files {
		if d.Files[i].ID == id {
			return &d.Files[i]
		}
	}

	return nil
}

// BlockByID returns the block with the given id, or nil.
func (d *Document) BlockByID(id string) *Block {
	for i := range d.Blocks {
		if d.Blocks[i].ID == id {
			return &d.Blocks[i]
		}
	}

	return nil
}
