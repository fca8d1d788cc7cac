package codec

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the codec package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})

	return logger
}

// SetLogger configures the codec package's logger.
// This must be called before any encode or decode operations.
// Encoders and decoders given WithEncoderLogger or WithDecoderLogger use that logger instead.
func SetLogger(l *zap.Logger) {
	logger = l
}
