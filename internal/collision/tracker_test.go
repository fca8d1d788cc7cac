package collision

import (
	"testing"

	"github.com/arloliu/cadbin/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.IDs())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("rect-1", "elements.0"))
	require.NoError(t, tracker.Track("text-1", "elements.1"))
	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"rect-1", "text-1"}, tracker.IDs())
	require.True(t, tracker.Has("rect-1"))
	require.False(t, tracker.Has("missing"))
}

func TestTracker_Duplicate(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("a", "elements.0"))
	err := tracker.Track("a", "blocks.0.elements.2")
	require.ErrorIs(t, err, errs.ErrDuplicateID)
	require.Contains(t, err.Error(), "elements.0")
	require.Contains(t, err.Error(), "blocks.0.elements.2")
	require.True(t, tracker.HasCollision())
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_EmptyID(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("", "elements.4")
	require.ErrorIs(t, err, errs.ErrMissingRequiredField)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Track("a", "x"))
	require.Error(t, tracker.Track("a", "y"))

	tracker.Reset()
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.NoError(t, tracker.Track("a", "z"))
}
