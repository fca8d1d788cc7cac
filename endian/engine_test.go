package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvelopeEngine_IsLittleEndian(t *testing.T) {
	engine := EnvelopeEngine()
	require.Equal(t, EndianEngine(binary.LittleEndian), engine)

	buf := make([]byte, 4)
	engine.PutUint32(buf, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)

	buf = engine.AppendUint64(buf[:0], 0x0102030405060708)
	require.Equal(t, byte(0x08), buf[0])
	require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf))
}
