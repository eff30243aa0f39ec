package models

// DiffResult represents the outcome of comparing two config trees
type DiffResult struct {
	// Entries holds every detected change in traversal order:
	// mapping keys in sorted order at each level, list elements by index
	Entries []ChangeEntry

	// Metadata is caller-supplied context (e.g. source file paths),
	// passed through unmodified and never inspected by the engine
	Metadata map[string]any
}

// HasChanges reports whether any difference was found
func (r *DiffResult) HasChanges() bool {
	return len(r.Entries) > 0
}

// Summary returns the number of entries per change kind.
// Counts are recomputed on every call, so they can never go stale.
func (r *DiffResult) Summary() map[ChangeKind]int {
	counts := make(map[ChangeKind]int)
	for _, entry := range r.Entries {
		counts[entry.Kind]++
	}
	return counts
}

// Status returns the exit status matching the comparison outcome
func (r *DiffResult) Status() ExitStatus {
	if r.HasChanges() {
		return StatusChanged
	}
	return StatusClean
}
