package codec

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/cadbin/format"
	"github.com/arloliu/cadbin/internal/options"
	"github.com/arloliu/cadbin/schema"
)

// EnumPolicy decides what the decoder does with an enumeration code outside its valid range.
type EnumPolicy uint8

const (
	// EnumReject fails the decode with ErrInvalidEnum.
	EnumReject EnumPolicy = iota
	// EnumClamp replaces the code with the nearest valid one.
	EnumClamp
)

func (p EnumPolicy) String() string {
	switch p {
	case EnumReject:
		return "reject"
	case EnumClamp:
		return "clamp"
	default:
		return fmt.Sprintf("EnumPolicy(%d)", uint8(p))
	}
}

// ParseEnumPolicy parses "reject" or "clamp". The empty string selects EnumReject.
func ParseEnumPolicy(s string) (EnumPolicy, error) {
	switch s {
	case "", "reject":
		return EnumReject, nil
	case "clamp":
		return EnumClamp, nil
	default:
		return EnumReject, fmt.Errorf("invalid enum policy %q", s)
	}
}

// EncoderConfig holds the settings of an Encoder.
type EncoderConfig struct {
	compression       format.CompressionType
	schemaVersion     string
	schemaNumber      int32
	source            string
	documentType      string
	logger            *zap.Logger
	initialBufferSize int
	skipValidation    bool
}

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		compression:   format.CompressionNone,
		schemaVersion: schema.CurrentVersion,
		schemaNumber:  schema.CurrentVersionNumber,
		source:        DefaultSource,
		documentType:  DefaultDocumentType,
	}
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression wraps the encoded buffer in a compressed envelope.
// Default is format.CompressionNone, which emits the bare FlatBuffer.
func WithCompression(c format.CompressionType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if !c.Valid() {
			return fmt.Errorf("invalid compression type: %s", c)
		}
		cfg.compression = c

		return nil
	})
}

// WithSchemaVersion overrides the schema version recorded in the document.
// The version must be a semantic version such as "3.1.0".
func WithSchemaVersion(version string) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		n, err := schema.VersionNumber(version)
		if err != nil {
			return err
		}
		cfg.schemaVersion = version
		cfg.schemaNumber = n

		return nil
	})
}

// WithSource sets the source recorded for documents whose Source is empty.
// Default is "cadbin".
func WithSource(source string) EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.source = source
	})
}

// WithDocumentType sets the type recorded for documents whose Type is empty.
// Default is "cad".
func WithDocumentType(typ string) EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.documentType = typ
	})
}

// WithEncoderLogger sets the logger used to report encode failures.
func WithEncoderLogger(l *zap.Logger) EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.logger = l
	})
}

// WithInitialBufferSize sizes the builder of each Encode call instead of drawing one from
// the shared pool. Useful when documents are known to be much larger than the pool default.
func WithInitialBufferSize(size int) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if size < 0 {
			return fmt.Errorf("invalid initial buffer size: %d", size)
		}
		cfg.initialBufferSize = size

		return nil
	})
}

// WithoutValidation skips Document.Validate before encoding. Enumeration ranges are still
// checked while encoding.
func WithoutValidation() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.skipValidation = true
	})
}

// DecoderConfig holds the settings of a Decoder.
type DecoderConfig struct {
	enumPolicy EnumPolicy
	logger     *zap.Logger
	maxSize    int
}

func newDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		enumPolicy: EnumReject,
		maxSize:    DefaultMaxDocumentSize,
	}
}

// DecoderOption is a functional option for configuring a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithEnumPolicy selects how out-of-range enumeration codes are handled.
// Default is EnumReject.
func WithEnumPolicy(p EnumPolicy) DecoderOption {
	return options.New(func(cfg *DecoderConfig) error {
		if p != EnumReject && p != EnumClamp {
			return fmt.Errorf("invalid enum policy: %s", p)
		}
		cfg.enumPolicy = p

		return nil
	})
}

// WithDecoderLogger sets the logger used for decode diagnostics.
func WithDecoderLogger(l *zap.Logger) DecoderOption {
	return options.NoError(func(cfg *DecoderConfig) {
		cfg.logger = l
	})
}

// WithMaxDocumentSize limits the decompressed size of an enveloped document.
// Default is DefaultMaxDocumentSize.
func WithMaxDocumentSize(size int) DecoderOption {
	return options.New(func(cfg *DecoderConfig) error {
		if size <= 0 {
			return fmt.Errorf("invalid max document size: %d", size)
		}
		cfg.maxSize = size

		return nil
	})
}
