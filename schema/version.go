package schema

import (
	"fmt"

	"github.com/coreos/go-semver/semver"

	"github.com/arloliu/cadbin/errs"
)

// FileIdentifier is the FlatBuffers file identifier of a document buffer.
const FileIdentifier = "CADB"

// CurrentVersion is the schema version written by this package.
const CurrentVersion = "3.1.0"

const (
	versionMajorFactor = 1_000_000
	versionMinorFactor = 1_000
)

// VersionNumber packs a semantic version string as major*1_000_000 + minor*1_000 + patch.
//
// Returns:
//   - int32: the packed version
//   - error: ErrInvalidVersion if s is not a semantic version or a component is out of range
func VersionNumber(s string) (int32, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", errs.ErrInvalidVersion, s, err)
	}

	if v.Major > 2146 || v.Minor >= versionMinorFactor || v.Patch >= versionMinorFactor {
		return 0, fmt.Errorf("%w: %q: component out of range", errs.ErrInvalidVersion, s)
	}

	return int32(v.Major*versionMajorFactor + v.Minor*versionMinorFactor + v.Patch), nil
}

// VersionString unpacks a number produced by VersionNumber.
func VersionString(n int32) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative version number %d", errs.ErrInvalidVersion, n)
	}

	v := semver.Version{
		Major: int64(n) / versionMajorFactor,
		Minor: int64(n) % versionMajorFactor / versionMinorFactor,
		Patch: int64(n) % versionMinorFactor,
	}

	return v.String(), nil
}

// CurrentVersionNumber is CurrentVersion packed.
var CurrentVersionNumber = mustVersionNumber(CurrentVersion)

func mustVersionNumber(s string) int32 {
	n, err := VersionNumber(s)
	if err != nil {
		panic(err)
	}

	return n
}
