package resolver

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"carbon/internal/dedupe"
	"carbon/internal/fileutil"
	"carbon/internal/logging"
)

// Request describes one resolution pass over a group.
type Request struct {
	Action    Action
	TargetDir string
}

// Result records the outcome of the action for one secondary member.
type Result struct {
	Path   string
	Action Action
	// FinalPath is set for move and hardlink: where the entry ended up.
	FinalPath string
	Err       error
}

// Report collects the per-file outcomes of resolving one group. The primary
// is never part of the results.
type Report struct {
	Group   dedupe.Group
	Results []Result
}

// Failed returns how many secondaries could not be resolved.
func (r Report) Failed() int {
	failed := 0
	for _, result := range r.Results {
		if result.Err != nil {
			failed++
		}
	}
	return failed
}

// Resolver mutates the filesystem to resolve duplicate groups.
type Resolver struct {
	logger *slog.Logger
}

// New constructs a resolver. A nil logger is replaced with a no-op logger.
func New(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logging.NewComponentLogger(logger, "resolver")}
}

// Resolve applies the requested action to every secondary member of the
// group, in order. The returned error covers request validation only
// (unknown action, missing target directory); per-file failures land in the
// report and never abort the remaining secondaries.
func (r *Resolver) Resolve(ctx context.Context, group dedupe.Group, req Request) (Report, error) {
	logger := logging.WithContext(ctx, r.logger)
	report := Report{Group: group}

	if _, err := ParseAction(string(req.Action)); err != nil {
		return report, err
	}
	if req.Action.RequiresTarget() && req.TargetDir == "" {
		return report, dedupe.Wrap(dedupe.ErrInvalidConfiguration, "resolver", "validate request",
			string(req.Action)+" requires a target directory", nil)
	}
	if req.Action.RequiresTarget() {
		if err := os.MkdirAll(req.TargetDir, 0o755); err != nil {
			return report, dedupe.Wrap(dedupe.ErrResolutionAction, "resolver", "create target directory",
				req.TargetDir, err)
		}
	}

	primary := group.Primary()
	for _, secondary := range group.Secondaries() {
		result := r.apply(primary, secondary, req)
		if result.Err != nil {
			logger.Warn("resolution action failed",
				logging.String(logging.FieldAction, string(req.Action)),
				logging.String(logging.FieldPath, secondary.Path),
				logging.Error(result.Err))
		} else if req.Action.Mutating() {
			logger.Info("resolution action applied",
				logging.String(logging.FieldAction, string(req.Action)),
				logging.String(logging.FieldPath, secondary.Path),
				logging.String("final_path", result.FinalPath))
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}

func (r *Resolver) apply(primary, secondary dedupe.Descriptor, req Request) Result {
	result := Result{Path: secondary.Path, Action: req.Action}

	switch req.Action {
	case ActionShow:
		// Report only.

	case ActionDelete:
		if err := os.Remove(secondary.Path); err != nil {
			result.Err = dedupe.Wrap(dedupe.ErrResolutionAction, "resolver", "delete", secondary.Path, err)
		}

	case ActionMove:
		destination, err := uniqueDestination(req.TargetDir, filepath.Base(secondary.Path))
		if err != nil {
			result.Err = dedupe.Wrap(dedupe.ErrResolutionAction, "resolver", "allocate destination", secondary.Path, err)
			return result
		}
		if err := fileutil.MoveFile(secondary.Path, destination); err != nil {
			result.Err = dedupe.Wrap(dedupe.ErrResolutionAction, "resolver", "move", secondary.Path, err)
			return result
		}
		result.FinalPath = destination

	case ActionHardlink:
		destination, err := r.linkToPrimary(primary, secondary, req.TargetDir)
		if err != nil {
			result.Err = err
			return result
		}
		result.FinalPath = destination
	}

	return result
}

// linkToPrimary creates a new directory entry in targetDir sharing the
// primary's stored data, then deletes the secondary's redundant copy. The
// data stays alive until every entry referencing it is removed.
func (r *Resolver) linkToPrimary(primary, secondary dedupe.Descriptor, targetDir string) (string, error) {
	if err := checkSameDevice(primary.Path, targetDir); err != nil {
		return "", dedupe.Wrap(dedupe.ErrResolutionAction, "resolver", "hardlink", secondary.Path, err)
	}

	destination, err := uniqueDestination(targetDir, filepath.Base(secondary.Path))
	if err != nil {
		return "", dedupe.Wrap(dedupe.ErrResolutionAction, "resolver", "allocate destination", secondary.Path, err)
	}
	if err := os.Link(primary.Path, destination); err != nil {
		return "", dedupe.Wrap(dedupe.ErrResolutionAction, "resolver", "hardlink", secondary.Path, err)
	}
	if err := os.Remove(secondary.Path); err != nil {
		// The link exists; only the redundant copy is left behind.
		return "", dedupe.Wrap(dedupe.ErrResolutionAction, "resolver", "remove after hardlink", secondary.Path, err)
	}
	return destination, nil
}
