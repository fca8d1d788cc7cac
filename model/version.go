package model

// VersionGraph is the revision history stored alongside a document.
//
// The codec persists it verbatim; it does not replay deltas or check that checkpoints match.
type VersionGraph struct {
	UserCheckpointVersionID *string
	LatestVersionID         string
	Checkpoints             []Checkpoint
	Deltas                  []Delta
	Metadata                VersionGraphMetadata
}

// VersionBase holds the attributes shared by checkpoints and deltas.
type VersionBase struct {
	ID           string
	ParentID     *string
	Timestamp    int64 // unix milliseconds
	Description  *string
	IsManualSave bool
	UserID       *string
}

// Checkpoint is a full snapshot of the document at a revision.
type Checkpoint struct {
	VersionBase

	Data      []byte
	SizeBytes int64
}

// Delta is a patch against the revision named by ParentID.
type Delta struct {
	VersionBase

	Patch []byte
}

type VersionGraphMetadata struct {
	PruningLevel PruningLevel
	LastPruned   int64
	TotalSize    int64
}
