package resolver

import (
	"context"

	"carbon/internal/dedupe"
)

// Decision is the caller's answer for one group: which action to run, the
// target directory when the action needs one, or Skip to leave the group
// untouched.
type Decision struct {
	Action    Action
	TargetDir string
	Skip      bool
}

// Decider supplies the decision for a group immediately before that group
// is processed. The interactive CLI implements this over a terminal prompt;
// batch mode uses FixedDecider. The core never reads a terminal itself.
type Decider interface {
	Decide(ctx context.Context, group dedupe.Group) (Decision, error)
}

// FixedDecider applies one fixed action and target to every group.
type FixedDecider struct {
	Action    Action
	TargetDir string
}

// Decide returns the fixed decision regardless of group.
func (d FixedDecider) Decide(context.Context, dedupe.Group) (Decision, error) {
	return Decision{Action: d.Action, TargetDir: d.TargetDir}, nil
}

// ResolveAll processes the groups in order, asking the decider once per
// group. A skipped group produces no report. A decider failure (for
// example, a closed input stream) stops the pass; per-file action failures
// do not.
func (r *Resolver) ResolveAll(ctx context.Context, groups []dedupe.Group, decider Decider) ([]Report, error) {
	reports := make([]Report, 0, len(groups))
	for _, group := range groups {
		decision, err := decider.Decide(ctx, group)
		if err != nil {
			return reports, err
		}
		if decision.Skip {
			continue
		}
		report, err := r.Resolve(ctx, group, Request{Action: decision.Action, TargetDir: decision.TargetDir})
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
