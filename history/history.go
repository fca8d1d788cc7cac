// Package history maintains the revision graph stored alongside a document: full checkpoints
// followed by chains of deltas, each naming its parent revision.
//
// The codec persists a model.VersionGraph verbatim. This package creates revisions with
// time-ordered ids, checks that a graph is a well-formed forest of chains, and resolves the
// checkpoint and deltas needed to rebuild a revision. Delta payloads are opaque.
package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/cadbin/codec"
	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/internal/options"
	"github.com/arloliu/cadbin/model"
)

// Recorder appends revisions to a version graph. It is not safe for concurrent use.
type Recorder struct {
	graph  *model.VersionGraph
	clock  func() time.Time
	newID  func() (string, error)
	userID *string
}

// Option configures a Recorder.
type Option = options.Option[*Recorder]

// WithClock sets the time source for revision timestamps.
func WithClock(clock func() time.Time) Option {
	return options.New(func(r *Recorder) error {
		if clock == nil {
			return fmt.Errorf("history: clock must not be nil")
		}
		r.clock = clock

		return nil
	})
}

// WithUserID stamps every new revision with the given author.
func WithUserID(id string) Option {
	return options.NoError(func(r *Recorder) {
		r.userID = model.Ptr(id)
	})
}

// WithIDGenerator replaces the default UUIDv7 revision ids.
func WithIDGenerator(gen func() (string, error)) Option {
	return options.New(func(r *Recorder) error {
		if gen == nil {
			return fmt.Errorf("history: id generator must not be nil")
		}
		r.newID = gen

		return nil
	})
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// NewRecorder creates a Recorder that appends to graph. A nil graph starts a new history.
// An existing graph must pass Verify.
func NewRecorder(graph *model.VersionGraph, opts ...Option) (*Recorder, error) {
	r := &Recorder{graph: graph, clock: time.Now, newID: newUUIDv7}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	if r.graph == nil {
		r.graph = &model.VersionGraph{Metadata: model.VersionGraphMetadata{PruningLevel: codec.DefaultPruningLevel}}
	} else if err := Verify(r.graph); err != nil {
		return nil, err
	}

	return r, nil
}

// Graph returns the graph being recorded into.
func (r *Recorder) Graph() *model.VersionGraph { return r.graph }

func (r *Recorder) next(description string, manual bool) (model.VersionBase, error) {
	id, err := r.newID()
	if err != nil {
		return model.VersionBase{}, fmt.Errorf("history: generating revision id: %w", err)
	}

	v := model.VersionBase{
		ID:           id,
		Timestamp:    r.clock().UnixMilli(),
		IsManualSave: manual,
		UserID:       r.userID,
	}
	if r.graph.LatestVersionID != "" {
		v.ParentID = model.Ptr(r.graph.LatestVersionID)
	}
	if description != "" {
		v.Description = model.Ptr(description)
	}

	return v, nil
}

// Checkpoint appends a full snapshot and makes it the latest revision. A manual checkpoint
// also becomes the user checkpoint.
func (r *Recorder) Checkpoint(data []byte, description string, manual bool) (model.Checkpoint, error) {
	base, err := r.next(description, manual)
	if err != nil {
		return model.Checkpoint{}, err
	}

	cp := model.Checkpoint{VersionBase: base, Data: data, SizeBytes: int64(len(data))}
	r.graph.Checkpoints = append(r.graph.Checkpoints, cp)
	r.graph.LatestVersionID = cp.ID
	r.graph.Metadata.TotalSize += cp.SizeBytes
	if manual {
		r.graph.UserCheckpointVersionID = model.Ptr(cp.ID)
	}

	return cp, nil
}

// Snapshot encodes doc with enc and records the result as a checkpoint.
func (r *Recorder) Snapshot(enc *codec.Encoder, doc *model.Document, description string, manual bool) (model.Checkpoint, error) {
	data, err := enc.Encode(doc)
	if err != nil {
		return model.Checkpoint{}, err
	}

	return r.Checkpoint(data, description, manual)
}

// Delta appends a patch against the latest revision. A graph without revisions has nothing
// to patch and yields ErrBrokenChain.
func (r *Recorder) Delta(patch []byte, description string) (model.Delta, error) {
	if r.graph.LatestVersionID == "" {
		return model.Delta{}, errs.New(errs.PhaseValidate, errs.ErrBrokenChain).
			Path("version_graph", "deltas").
			Detail("a delta needs a checkpoint to patch").
			Build()
	}

	base, err := r.next(description, false)
	if err != nil {
		return model.Delta{}, err
	}

	d := model.Delta{VersionBase: base, Patch: patch}
	r.graph.Deltas = append(r.graph.Deltas, d)
	r.graph.LatestVersionID = d.ID
	r.graph.Metadata.TotalSize += int64(len(patch))

	return d, nil
}
