package symbolic

// Validate checks the structural invariants a loader must establish before
// handing an Arena to any solver. It is not re-checked on
// every Subarena call (sub-arenas are derived mechanically from a valid
// parent and preserve the invariants by construction); callers that build
// an Arena directly (loaders) should call Validate once after construction.
func (a *Arena) Validate() error {
	if len(a.Vars) != len(a.VarsBis) {
		return ErrVarLengthMismatch
	}
	if a.NumFunctions == 0 || len(a.Priorities) == 0 {
		return ErrNoDimensions
	}

	overlap, err := a.Engine.And(a.Player0Vertices, a.Player1Vertices)
	if err != nil {
		return err
	}
	if !overlap.IsFalse() {
		return ErrPlayerOverlap
	}

	vertices, err := a.Vertices()
	if err != nil {
		return err
	}

	for dim, classes := range a.Priorities {
		if len(classes) == 0 {
			return ErrEmptyPriorities
		}
		seen := a.Engine.False()
		for _, f := range classes {
			restricted, err := a.Engine.And(f, vertices)
			if err != nil {
				return err
			}
			overlapDim, err := a.Engine.And(seen, restricted)
			if err != nil {
				return err
			}
			if !overlapDim.IsFalse() {
				return ErrPriorityPartitionOverlap
			}
			seen, err = a.Engine.Or(seen, restricted)
			if err != nil {
				return err
			}
		}
		if !seen.Equal(vertices) {
			// Some vertex in this dimension has no assigned priority,
			// violating "each present vertex has exactly one priority per
			// dimension".
			_ = dim // dimension index retained for a future diagnostic message
			return ErrPriorityPartitionIncomplete
		}
	}
	return nil
}
