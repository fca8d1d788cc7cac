package cadbin

import (
	"bytes"
	"testing"
	"time"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/cadbin/codec"
	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/format"
	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/section"
)

func sampleDocument() *model.Document {
	rect := codec.DefaultElement(model.TypeRectangle, "r1").(*model.Rectangle)
	rect.Width, rect.Height = 100, 50

	text := codec.DefaultElement(model.TypeText, "t1").(*model.Text)
	text.Text = "Gear housing"
	text.ContainerID = model.Ptr("r1")

	file := NewExternalFile("image/png", bytes.Repeat([]byte{0x89, 'P', 'N', 'G'}, 256), time.UnixMilli(1_700_000_000_000))

	img := codec.DefaultElement(model.TypeImage, "i1").(*model.Image)
	img.FileID = model.Ptr(file.ID)
	img.Status = model.ImageSaved

	return &model.Document{
		Type:     codec.DefaultDocumentType,
		Version:  "3.1.0",
		Source:   codec.DefaultSource,
		Elements: []model.Element{rect, text, img},
		Files:    []model.ExternalFile{file},
	}
}

func TestEncodeDecode(t *testing.T) {
	doc := sampleDocument()

	buf, err := Encode(doc)
	require.NoError(t, err)
	require.True(t, IsDocument(buf))
	require.False(t, section.HasEnvelope(buf))

	got, err := Decode(buf)
	require.NoError(t, err)
	td.Cmp(t, got, doc)
}

func TestNewCompressedEncoder(t *testing.T) {
	enc, err := NewCompressedEncoder()
	require.NoError(t, err)

	buf, err := enc.Encode(sampleDocument())
	require.NoError(t, err)
	require.True(t, section.HasEnvelope(buf))
	require.True(t, IsDocument(buf))

	header, err := section.ParseEnvelopeHeader(buf)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, header.Compression)

	dec, err := NewDecoder()
	require.NoError(t, err)
	got, err := dec.Decode(buf)
	require.NoError(t, err)
	td.Cmp(t, got, sampleDocument())

	enc, err = NewCompressedEncoder(codec.WithCompression(format.CompressionLZ4))
	require.NoError(t, err)
	buf, err = enc.Encode(sampleDocument())
	require.NoError(t, err)
	header, err = section.ParseEnvelopeHeader(buf)
	require.NoError(t, err)
	require.Equal(t, format.CompressionLZ4, header.Compression)
}

func TestNewEncoder_RejectsOptions(t *testing.T) {
	_, err := NewEncoder(codec.WithSchemaVersion("x.y"))
	require.ErrorIs(t, err, errs.ErrInvalidVersion)

	_, err = Encode(sampleDocument(), codec.WithSchemaVersion("x.y"))
	require.ErrorIs(t, err, errs.ErrInvalidVersion)

	_, err = Decode(nil, codec.WithMaxDocumentSize(-1))
	require.Error(t, err)
}

func TestIsDocument(t *testing.T) {
	require.False(t, IsDocument(nil))
	require.False(t, IsDocument([]byte("CADB")))
	require.False(t, IsDocument([]byte("0000XXXX")))
	require.True(t, IsDocument([]byte("\x00\x00\x00\x00CADB")))
}

func TestNewExternalFile(t *testing.T) {
	created := time.UnixMilli(1_700_000_123_456)
	a := NewExternalFile("image/png", []byte("same bytes"), created)
	b := NewExternalFile("application/octet-stream", []byte("same bytes"), created.Add(time.Hour))
	c := NewExternalFile("image/png", []byte("other bytes"), created)

	require.Equal(t, a.ID, b.ID)
	require.NotEqual(t, a.ID, c.ID)
	require.Len(t, a.ID, 64)
	require.Equal(t, int64(1_700_000_123_456), a.Created)
	require.Equal(t, "image/png", a.MimeType)
	require.Nil(t, a.LastRetrieved)
}
