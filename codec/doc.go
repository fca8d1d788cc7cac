// Package codec converts model documents to and from the cadbin binary format.
//
// A document is one FlatBuffers buffer with file identifier "CADB". Every element is stored
// as a wrapper table holding the variant tag and the variant's own table. Shared attribute
// groups (the element base, stack, linear and version layers) are flattened into the
// variant's table rather than nested; their slot positions come from the schema package.
//
// Scalars are always written, so every scalar round-trips exactly. Optional values are
// pointers in the model and are written only when set. When a field is absent, as in
// buffers from other writers, the decoder substitutes the documented defaults of
// defaults.go; DefaultElement shows the result for each variant.
//
// Basic usage:
//
//	enc, _ := codec.NewEncoder()
//	buf, err := enc.Encode(doc)
//
//	dec, _ := codec.NewDecoder()
//	doc, err := dec.Decode(buf)
//
// With WithCompression the buffer is wrapped in a small envelope (magic "CDBZ", compression
// type, lengths and an xxHash64 checksum). Decode recognizes both forms.
package codec
