// Package config loads codec settings from YAML or JSONC files and turns them into encoder
// and decoder options.
//
// A file holds two optional sections:
//
//	encoder:
//	  compression: zstd        # none | zstd | s2 | lz4
//	  schema_version: 3.1.0
//	  source: plotter
//	  document_type: cad
//	  initial_buffer_size: 65536
//	  skip_validation: false
//	decoder:
//	  enum_policy: clamp       # reject | clamp
//	  max_document_size: 67108864
//
// Unset fields keep the codec defaults. Unknown keys are rejected so a misspelled setting
// never silently falls back to a default.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/cadbin/codec"
	"github.com/arloliu/cadbin/format"
)

// Syntax is the file syntax of a configuration document.
type Syntax uint8

const (
	// SyntaxYAML is YAML 1.2.
	SyntaxYAML Syntax = iota + 1
	// SyntaxJSONC is JSON extended with comments and trailing commas.
	SyntaxJSONC
)

func (s Syntax) String() string {
	switch s {
	case SyntaxYAML:
		return "yaml"
	case SyntaxJSONC:
		return "jsonc"
	default:
		return "unknown"
	}
}

// ErrUnknownSyntax is returned when the syntax of a file cannot be derived from its name.
var ErrUnknownSyntax = errors.New("config: unknown file syntax")

// Config is the codec configuration.
type Config struct {
	Encoder EncoderSection `yaml:"encoder" json:"encoder"`
	Decoder DecoderSection `yaml:"decoder" json:"decoder"`
}

// EncoderSection configures codec.NewEncoder.
type EncoderSection struct {
	// Compression is the envelope compression name. Empty means none.
	Compression string `yaml:"compression" json:"compression"`

	// SchemaVersion overrides the semver stamped into documents.
	SchemaVersion string `yaml:"schema_version" json:"schema_version"`

	Source       string `yaml:"source" json:"source"`
	DocumentType string `yaml:"document_type" json:"document_type"`

	// InitialBufferSize bypasses the builder pool when positive.
	InitialBufferSize int  `yaml:"initial_buffer_size" json:"initial_buffer_size"`
	SkipValidation    bool `yaml:"skip_validation" json:"skip_validation"`
}

// DecoderSection configures codec.NewDecoder.
type DecoderSection struct {
	// EnumPolicy is "reject" or "clamp". Empty means reject.
	EnumPolicy string `yaml:"enum_policy" json:"enum_policy"`

	// MaxDocumentSize bounds the decompressed size of enveloped documents. Zero keeps the
	// codec default.
	MaxDocumentSize int `yaml:"max_document_size" json:"max_document_size"`
}

// Parse decodes data written in the given syntax.
func Parse(data []byte, syntax Syntax) (*Config, error) {
	cfg := &Config{}

	switch syntax {
	case SyntaxYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parsing yaml: %w", err)
		}
	case SyntaxJSONC:
		stripped := jsonc.ToJSON(data)
		if len(bytes.TrimSpace(stripped)) == 0 {
			return cfg, nil
		}

		dec := json.NewDecoder(bytes.NewReader(stripped))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("config: parsing jsonc: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSyntax, uint8(syntax))
	}

	return cfg, nil
}

// SyntaxOf derives the syntax from the extension of path: .yaml and .yml are YAML, .json and
// .jsonc are JSONC.
func SyntaxOf(path string) (Syntax, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SyntaxYAML, nil
	case ".json", ".jsonc":
		return SyntaxJSONC, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownSyntax, path)
	}
}

// ReadFile reads and parses the configuration file at path.
func ReadFile(path string) (*Config, error) {
	syntax, err := SyntaxOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg, err := Parse(data, syntax)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// EncoderOptions converts the encoder section. Every invalid setting is reported.
func (c *Config) EncoderOptions() ([]codec.EncoderOption, error) {
	e := c.Encoder

	var (
		opts []codec.EncoderOption
		err  error
	)

	compression, cerr := format.ParseCompressionType(e.Compression)
	if cerr != nil {
		err = multierr.Append(err, fmt.Errorf("encoder.compression: %w", cerr))
	} else {
		opts = append(opts, codec.WithCompression(compression))
	}

	if e.SchemaVersion != "" {
		opts = append(opts, codec.WithSchemaVersion(e.SchemaVersion))
	}
	if e.Source != "" {
		opts = append(opts, codec.WithSource(e.Source))
	}
	if e.DocumentType != "" {
		opts = append(opts, codec.WithDocumentType(e.DocumentType))
	}

	switch {
	case e.InitialBufferSize < 0:
		err = multierr.Append(err, fmt.Errorf("encoder.initial_buffer_size: %d is negative", e.InitialBufferSize))
	case e.InitialBufferSize > 0:
		opts = append(opts, codec.WithInitialBufferSize(e.InitialBufferSize))
	}

	if e.SkipValidation {
		opts = append(opts, codec.WithoutValidation())
	}

	if err != nil {
		return nil, err
	}

	return opts, nil
}

// DecoderOptions converts the decoder section. Every invalid setting is reported.
func (c *Config) DecoderOptions() ([]codec.DecoderOption, error) {
	d := c.Decoder

	var (
		opts []codec.DecoderOption
		err  error
	)

	policy, perr := codec.ParseEnumPolicy(d.EnumPolicy)
	if perr != nil {
		err = multierr.Append(err, fmt.Errorf("decoder.enum_policy: %w", perr))
	} else {
		opts = append(opts, codec.WithEnumPolicy(policy))
	}

	switch {
	case d.MaxDocumentSize < 0:
		err = multierr.Append(err, fmt.Errorf("decoder.max_document_size: %d is negative", d.MaxDocumentSize))
	case d.MaxDocumentSize > 0:
		opts = append(opts, codec.WithMaxDocumentSize(d.MaxDocumentSize))
	}

	if err != nil {
		return nil, err
	}

	return opts, nil
}

// NewEncoder builds an encoder from the encoder section.
func (c *Config) NewEncoder() (*codec.Encoder, error) {
	opts, err := c.EncoderOptions()
	if err != nil {
		return nil, err
	}

	return codec.NewEncoder(opts...)
}

// NewDecoder builds a decoder from the decoder section.
func (c *Config) NewDecoder() (*codec.Decoder, error) {
	opts, err := c.DecoderOptions()
	if err != nil {
		return nil, err
	}

	return codec.NewDecoder(opts...)
}
