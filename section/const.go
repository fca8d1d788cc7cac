package section

import "math"

const (
	EnvelopeVersion    = 1
	EnvelopeHeaderSize = 24
	MaxPayloadSize     = math.MaxUint32
)

// EnvelopeMagic marks the start of an enveloped document.
var EnvelopeMagic = [4]byte{'C', 'D', 'B', 'Z'}
