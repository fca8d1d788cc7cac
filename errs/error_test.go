package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_MessageFormat(t *testing.T) {
	err := New(PhaseDecode, ErrMissingRequiredField).
		Path("elements", "2", "id").
		Detail("element id is required").
		Build()

	require.Equal(t, "[decode] missing required field at elements.2.id: element id is required", err.Error())
	require.Equal(t, "elements.2.id", err.PathString())
}

func TestError_IsSentinel(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(PhaseEncode, ErrEncodeFailure, cause, "element rect-1")

	require.ErrorIs(t, err, ErrEncodeFailure)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, ErrUnknownVariant)
	require.Contains(t, err.Error(), "caused by: boom")
}

func TestError_WrappedTwice(t *testing.T) {
	inner := InvalidEnum(PhaseEncode, []string{"styles", "blending"}, "BlendingMode", 42, 6)
	outer := Wrap(PhaseEncode, ErrEncodeFailure, inner, "element e1")

	require.ErrorIs(t, outer, ErrEncodeFailure)
	require.ErrorIs(t, outer, ErrInvalidEnum)

	var structured *Error
	require.True(t, errors.As(outer, &structured))
	require.Equal(t, PhaseEncode, structured.Phase)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind error
	}{
		{"missing", MissingField(PhaseDecode, nil, "id"), ErrMissingRequiredField},
		{"enum", InvalidEnum(PhaseDecode, nil, "TextAlign", 9, 2), ErrInvalidEnum},
		{"variant", UnknownVariant([]string{"elements", "0"}, 200), ErrUnknownVariant},
		{"malformed", Malformed(nil, "offset %d beyond %d", 10, 4), ErrMalformedBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.kind)
			require.NotEmpty(t, tt.err.Error())
		})
	}
}
