package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cadbin/errs"
)

func TestVersionNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"0.0.1", 1},
		{"1.2.3", 1_002_003},
		{"3.1.0", 3_001_000},
		{"12.999.999", 12_999_999},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := VersionNumber(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			back, err := VersionString(got)
			require.NoError(t, err)
			require.Equal(t, tt.in, back)
		})
	}
}

func TestVersionNumber_Invalid(t *testing.T) {
	for _, in := range []string{"", "1.2", "v1.2.3", "1.1000.0", "1.0.1000", "3000.0.0"} {
		_, err := VersionNumber(in)
		require.ErrorIs(t, err, errs.ErrInvalidVersion, "input %q", in)
	}

	_, err := VersionString(-1)
	require.ErrorIs(t, err, errs.ErrInvalidVersion)
}

func TestCurrentVersion(t *testing.T) {
	require.Equal(t, int32(3_001_000), CurrentVersionNumber)
	require.Len(t, FileIdentifier, 4)
}
