package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/cadbin/codec"
	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/model"
)

func sequentialIDs() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("rev-%d", n), nil
	}
}

func fixedClock() func() time.Time {
	t := time.UnixMilli(1_700_000_000_000)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestRecorder(t *testing.T, graph *model.VersionGraph) *Recorder {
	t.Helper()

	r, err := NewRecorder(graph, WithIDGenerator(sequentialIDs()), WithClock(fixedClock()), WithUserID("alice"))
	require.NoError(t, err)

	return r
}

func TestRecorder_BuildsChain(t *testing.T) {
	r := newTestRecorder(t, nil)

	cp, err := r.Checkpoint([]byte("snapshot"), "initial", true)
	require.NoError(t, err)
	require.Equal(t, "rev-1", cp.ID)
	require.Nil(t, cp.ParentID)
	require.Equal(t, int64(8), cp.SizeBytes)
	require.Equal(t, "alice", *cp.UserID)
	require.Equal(t, "initial", *cp.Description)

	d1, err := r.Delta([]byte("p1"), "")
	require.NoError(t, err)
	require.Equal(t, "rev-1", *d1.ParentID)
	require.Nil(t, d1.Description)
	require.Greater(t, d1.Timestamp, cp.Timestamp)

	d2, err := r.Delta([]byte("p2"), "move")
	require.NoError(t, err)
	require.Equal(t, "rev-2", *d2.ParentID)

	g := r.Graph()
	require.Equal(t, "rev-3", g.LatestVersionID)
	require.Equal(t, "rev-1", *g.UserCheckpointVersionID)
	require.Equal(t, int64(12), g.Metadata.TotalSize)
	require.Equal(t, codec.DefaultPruningLevel, g.Metadata.PruningLevel)
	require.NoError(t, Verify(g))

	lineage, err := Lineage(g, "rev-3")
	require.NoError(t, err)
	require.Equal(t, []string{"rev-1", "rev-2", "rev-3"}, lineage)
}

func TestRecorder_DeltaNeedsCheckpoint(t *testing.T) {
	r := newTestRecorder(t, nil)

	_, err := r.Delta([]byte("p"), "")
	require.ErrorIs(t, err, errs.ErrBrokenChain)
	require.Empty(t, r.Graph().Deltas)
}

func TestRecorder_DefaultIDsAreUUIDv7(t *testing.T) {
	r, err := NewRecorder(nil)
	require.NoError(t, err)

	cp, err := r.Checkpoint(nil, "", false)
	require.NoError(t, err)

	id, err := uuid.Parse(cp.ID)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(7), id.Version())
	require.Nil(t, r.Graph().UserCheckpointVersionID)
}

func TestRecorder_RejectsBrokenGraph(t *testing.T) {
	g := &model.VersionGraph{Deltas: []model.Delta{{VersionBase: model.VersionBase{ID: "d", ParentID: model.Ptr("gone")}}}}

	_, err := NewRecorder(g)
	require.ErrorIs(t, err, errs.ErrBrokenChain)

	_, err = NewRecorder(nil, WithClock(nil), WithIDGenerator(nil))
	require.ErrorContains(t, err, "clock")
	require.ErrorContains(t, err, "id generator")
}

func TestRecorder_SnapshotEncodesDocument(t *testing.T) {
	enc, err := codec.NewEncoder()
	require.NoError(t, err)
	dec, err := codec.NewDecoder()
	require.NoError(t, err)

	r := newTestRecorder(t, nil)
	doc := &model.Document{Elements: []model.Element{codec.DefaultElement(model.TypeEllipse, "e1")}}

	cp, err := r.Snapshot(enc, doc, "autosave", false)
	require.NoError(t, err)

	got, err := dec.Decode(cp.Data)
	require.NoError(t, err)
	require.Len(t, got.Elements, 1)
	require.Equal(t, "e1", got.Elements[0].Common().ID)

	_, err = r.Snapshot(enc, nil, "", false)
	require.ErrorIs(t, err, errs.ErrEncodeFailure)
	require.Len(t, r.Graph().Checkpoints, 1)
}

func TestReplay_StopsAtNearestCheckpoint(t *testing.T) {
	r := newTestRecorder(t, nil)
	_, _ = r.Checkpoint([]byte("a"), "", false) // rev-1
	_, _ = r.Delta([]byte("b"), "")             // rev-2
	_, _ = r.Checkpoint([]byte("ab"), "", true) // rev-3
	_, _ = r.Delta([]byte("c"), "")             // rev-4
	_, _ = r.Delta([]byte("d"), "")             // rev-5

	cp, deltas, err := Replay(r.Graph(), "rev-5")
	require.NoError(t, err)
	require.Equal(t, "rev-3", cp.ID)
	require.Len(t, deltas, 2)
	require.Equal(t, "rev-4", deltas[0].ID)
	require.Equal(t, "rev-5", deltas[1].ID)

	cp, deltas, err = Replay(r.Graph(), "rev-2")
	require.NoError(t, err)
	require.Equal(t, "rev-1", cp.ID)
	require.Len(t, deltas, 1)

	_, _, err = Replay(r.Graph(), "rev-9")
	require.ErrorIs(t, err, errs.ErrBrokenChain)

	_, _, err = Replay(nil, "rev-1")
	require.ErrorIs(t, err, errs.ErrBrokenChain)
}

func delta(id string, parent *string) model.Delta {
	return model.Delta{VersionBase: model.VersionBase{ID: id, ParentID: parent}}
}

func checkpoint(id string, parent *string) model.Checkpoint {
	return model.Checkpoint{VersionBase: model.VersionBase{ID: id, ParentID: parent}}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name  string
		graph *model.VersionGraph
		want  error
	}{
		{name: "nil", graph: nil},
		{name: "empty", graph: &model.VersionGraph{}},
		{
			name: "valid",
			graph: &model.VersionGraph{
				LatestVersionID: "d1",
				Checkpoints:     []model.Checkpoint{checkpoint("c1", nil)},
				Deltas:          []model.Delta{delta("d1", model.Ptr("c1"))},
			},
		},
		{
			name:  "orphan delta",
			graph: &model.VersionGraph{Deltas: []model.Delta{delta("d1", nil)}},
			want:  errs.ErrBrokenChain,
		},
		{
			name: "missing parent",
			graph: &model.VersionGraph{
				Checkpoints: []model.Checkpoint{checkpoint("c1", nil)},
				Deltas:      []model.Delta{delta("d1", model.Ptr("c0"))},
			},
			want: errs.ErrBrokenChain,
		},
		{
			name: "checkpoint with missing parent",
			graph: &model.VersionGraph{
				Checkpoints: []model.Checkpoint{checkpoint("c2", model.Ptr("c1"))},
			},
			want: errs.ErrBrokenChain,
		},
		{
			name: "cycle",
			graph: &model.VersionGraph{
				Deltas: []model.Delta{delta("d1", model.Ptr("d2")), delta("d2", model.Ptr("d1"))},
			},
			want: errs.ErrBrokenChain,
		},
		{
			name: "duplicate id",
			graph: &model.VersionGraph{
				Checkpoints: []model.Checkpoint{checkpoint("x", nil)},
				Deltas:      []model.Delta{delta("x", model.Ptr("x"))},
			},
			want: errs.ErrDuplicateID,
		},
		{
			name: "dangling latest",
			graph: &model.VersionGraph{
				LatestVersionID: "nope",
				Checkpoints:     []model.Checkpoint{checkpoint("c1", nil)},
			},
			want: errs.ErrBrokenChain,
		},
		{
			name: "user checkpoint is a delta",
			graph: &model.VersionGraph{
				UserCheckpointVersionID: model.Ptr("d1"),
				Checkpoints:             []model.Checkpoint{checkpoint("c1", nil)},
				Deltas:                  []model.Delta{delta("d1", model.Ptr("c1"))},
			},
			want: errs.ErrBrokenChain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.graph)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}
