// Package endian selects the byte order used by cadbin's fixed-layout binary headers.
//
// FlatBuffers defines its own layout as little-endian on every host, and the document
// envelope follows the same convention so a stored file reads identically everywhere:
//
//	engine := endian.EnvelopeEngine()
//	engine.PutUint32(hdr[8:12], rawLen)
//	hdr = engine.AppendUint64(hdr, checksum)
package endian

import "encoding/binary"

// EndianEngine combines the read/write and append byte-order interfaces of encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// EnvelopeEngine returns the byte order of the envelope header and the FlatBuffers payload.
func EnvelopeEngine() EndianEngine {
	return binary.LittleEndian
}
