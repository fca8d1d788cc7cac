package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cadbin/model"
	"github.com/arloliu/cadbin/section"
)

const yamlConfig = `
encoder:
  compression: zstd
  schema_version: 2.4.0
  source: plotter
  document_type: diagram
  initial_buffer_size: 4096
decoder:
  enum_policy: clamp
  max_document_size: 1048576
`

const jsoncConfig = `{
  // envelope settings
  "encoder": {
    "compression": "s2",
    "source": "plotter", /* trailing comma below */
  },
  "decoder": {"enum_policy": "reject"},
}`

func TestParse_YAML(t *testing.T) {
	cfg, err := Parse([]byte(yamlConfig), SyntaxYAML)
	require.NoError(t, err)

	require.Equal(t, EncoderSection{
		Compression:       "zstd",
		SchemaVersion:     "2.4.0",
		Source:            "plotter",
		DocumentType:      "diagram",
		InitialBufferSize: 4096,
	}, cfg.Encoder)
	require.Equal(t, DecoderSection{EnumPolicy: "clamp", MaxDocumentSize: 1 << 20}, cfg.Decoder)
}

func TestParse_JSONC(t *testing.T) {
	cfg, err := Parse([]byte(jsoncConfig), SyntaxJSONC)
	require.NoError(t, err)

	require.Equal(t, "s2", cfg.Encoder.Compression)
	require.Equal(t, "plotter", cfg.Encoder.Source)
	require.Equal(t, "reject", cfg.Decoder.EnumPolicy)
}

func TestParse_Empty(t *testing.T) {
	for _, syntax := range []Syntax{SyntaxYAML, SyntaxJSONC} {
		cfg, err := Parse(nil, syntax)
		require.NoError(t, err, syntax.String())
		require.Equal(t, &Config{}, cfg)
	}
}

func TestParse_UnknownKeysRejected(t *testing.T) {
	_, err := Parse([]byte("encoder:\n  compresion: zstd\n"), SyntaxYAML)
	require.Error(t, err)

	_, err = Parse([]byte(`{"decoder": {"enum_polcy": "clamp"}}`), SyntaxJSONC)
	require.Error(t, err)

	_, err = Parse(nil, Syntax(9))
	require.ErrorIs(t, err, ErrUnknownSyntax)
}

func TestSyntaxOf(t *testing.T) {
	tests := []struct {
		path    string
		want    Syntax
		wantErr bool
	}{
		{"codec.yaml", SyntaxYAML, false},
		{"dir/codec.YML", SyntaxYAML, false},
		{"codec.json", SyntaxJSONC, false},
		{"codec.jsonc", SyntaxJSONC, false},
		{"codec.toml", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := SyntaxOf(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownSyntax)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codec.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(jsoncConfig), 0o600))

	cfg, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "s2", cfg.Encoder.Compression)

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestConfig_BuildsWorkingCodec(t *testing.T) {
	cfg, err := Parse([]byte(yamlConfig), SyntaxYAML)
	require.NoError(t, err)

	enc, err := cfg.NewEncoder()
	require.NoError(t, err)
	dec, err := cfg.NewDecoder()
	require.NoError(t, err)

	doc := &model.Document{Elements: []model.Element{
		&model.Rectangle{ElementBase: model.ElementBase{ID: "r", Width: 10, Height: 5, IsVisible: true}},
	}}
	buf, err := enc.Encode(doc)
	require.NoError(t, err)
	require.True(t, section.HasEnvelope(buf))

	got, err := dec.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, "2.4.0", got.Version)
	require.Equal(t, "plotter", got.Source)
	require.Equal(t, "diagram", got.Type)
	require.Len(t, got.Elements, 1)
}

func TestConfig_InvalidSettings(t *testing.T) {
	cfg := &Config{
		Encoder: EncoderSection{Compression: "brotli", InitialBufferSize: -1},
		Decoder: DecoderSection{EnumPolicy: "ignore", MaxDocumentSize: -5},
	}

	_, err := cfg.EncoderOptions()
	require.ErrorContains(t, err, "encoder.compression")
	require.ErrorContains(t, err, "encoder.initial_buffer_size")

	_, err = cfg.DecoderOptions()
	require.ErrorContains(t, err, "decoder.enum_policy")
	require.ErrorContains(t, err, "decoder.max_document_size")

	_, err = (&Config{Encoder: EncoderSection{SchemaVersion: "not-semver"}}).NewEncoder()
	require.Error(t, err)
}
