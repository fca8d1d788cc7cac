package history

import (
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/arloliu/cadbin/errs"
	"github.com/arloliu/cadbin/model"
)

// revision locates one checkpoint or delta of a graph.
type revision struct {
	base       *model.VersionBase
	checkpoint int // index into Checkpoints, or -1
	delta      int // index into Deltas, or -1
	path       []string
}

type index struct {
	byID  map[string]revision
	order []revision
}

func broken(path []string, detail string, args ...any) error {
	return errs.New(errs.PhaseValidate, errs.ErrBrokenChain).Path(path...).Detail(detail, args...).Build()
}

// buildIndex maps revision ids to their position. Duplicate ids are reported.
func buildIndex(g *model.VersionGraph) (index, error) {
	idx := index{byID: make(map[string]revision, len(g.Checkpoints)+len(g.Deltas))}

	var err error
	add := func(r revision) {
		if prev, ok := idx.byID[r.base.ID]; ok {
			err = multierr.Append(err, errs.New(errs.PhaseValidate, errs.ErrDuplicateID).
				Path(r.path...).
				Value(r.base.ID).
				Detail("also used by %s", strings.Join(prev.path, ".")).
				Build())

			return
		}
		idx.byID[r.base.ID] = r
		idx.order = append(idx.order, r)
	}

	for i := range g.Checkpoints {
		add(revision{
			base:       &g.Checkpoints[i].VersionBase,
			checkpoint: i,
			delta:      -1,
			path:       []string{"version_graph", "checkpoints", strconv.Itoa(i)},
		})
	}
	for i := range g.Deltas {
		add(revision{
			base:       &g.Deltas[i].VersionBase,
			checkpoint: -1,
			delta:      i,
			path:       []string{"version_graph", "deltas", strconv.Itoa(i)},
		})
	}

	return idx, err
}

// Verify checks that g is a forest of revision chains rooted at checkpoints:
//   - ids are unique across checkpoints and deltas
//   - every parent id names a revision of g
//   - every delta has a parent, and following parents always ends at a checkpoint
//   - no chain loops back on itself
//   - the latest and user checkpoint ids, when set, name revisions of g
//
// All violations are reported, combined. A nil graph is valid.
func Verify(g *model.VersionGraph) error {
	if g == nil {
		return nil
	}

	idx, err := buildIndex(g)
	if err != nil {
		return err
	}

	for _, r := range idx.order {
		if _, rerr := resolve(idx, r); rerr != nil {
			err = multierr.Append(err, rerr)
		}
	}

	if g.LatestVersionID != "" {
		if _, ok := idx.byID[g.LatestVersionID]; !ok {
			err = multierr.Append(err, broken([]string{"version_graph", "latest_version_id"},
				"latest revision %q does not exist", g.LatestVersionID))
		}
	}
	if id := g.UserCheckpointVersionID; id != nil {
		if r, ok := idx.byID[*id]; !ok || r.checkpoint < 0 {
			err = multierr.Append(err, broken([]string{"version_graph", "user_checkpoint_version_id"},
				"user checkpoint %q is not a checkpoint", *id))
		}
	}

	return err
}

// resolve walks from r back to its checkpoint and returns the chain, checkpoint first.
func resolve(idx index, r revision) ([]revision, error) {
	chain := []revision{r}
	seen := map[string]bool{r.base.ID: true}

	for cur := r; cur.checkpoint < 0; {
		if cur.base.ParentID == nil {
			return nil, broken(append(cur.path, "parent_id"), "delta %q has no parent", cur.base.ID)
		}

		parentID := *cur.base.ParentID
		parent, ok := idx.byID[parentID]
		if !ok {
			return nil, broken(append(cur.path, "parent_id"), "parent %q of %q does not exist", parentID, cur.base.ID)
		}
		if seen[parentID] {
			return nil, broken(append(cur.path, "parent_id"), "revision %q is its own ancestor", parentID)
		}

		seen[parentID] = true
		chain = append(chain, parent)
		cur = parent
	}

	if root := chain[len(chain)-1]; root.base.ParentID != nil {
		if _, ok := idx.byID[*root.base.ParentID]; !ok {
			return nil, broken(append(root.path, "parent_id"),
				"parent %q of %q does not exist", *root.base.ParentID, root.base.ID)
		}
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain, nil
}

// Replay returns what is needed to rebuild revision id: the nearest checkpoint at or above
// it and the deltas to apply on top, oldest first.
func Replay(g *model.VersionGraph, id string) (model.Checkpoint, []model.Delta, error) {
	if g == nil {
		return model.Checkpoint{}, nil, broken([]string{"version_graph"}, "no revision history")
	}

	idx, err := buildIndex(g)
	if err != nil {
		return model.Checkpoint{}, nil, err
	}

	r, ok := idx.byID[id]
	if !ok {
		return model.Checkpoint{}, nil, broken([]string{"version_graph"}, "revision %q does not exist", id)
	}

	chain, err := resolve(idx, r)
	if err != nil {
		return model.Checkpoint{}, nil, err
	}

	cp := g.Checkpoints[chain[0].checkpoint]
	var deltas []model.Delta
	for _, link := range chain[1:] {
		deltas = append(deltas, g.Deltas[link.delta])
	}

	return cp, deltas, nil
}

// Lineage returns the revision ids from the checkpoint that starts id's chain down to id.
func Lineage(g *model.VersionGraph, id string) ([]string, error) {
	cp, deltas, err := Replay(g, id)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(deltas)+1)
	out = append(out, cp.ID)
	for _, d := range deltas {
		out = append(out, d.ID)
	}

	return out, nil
}
