package models

// ChangeKind categorizes a single detected difference
type ChangeKind string

const (
	// KindAdded indicates a key or element present only in the after tree
	KindAdded ChangeKind = "added"
	// KindRemoved indicates a key or element present only in the before tree
	KindRemoved ChangeKind = "removed"
	// KindModified indicates a scalar value that changed
	KindModified ChangeKind = "modified"
	// KindTypeChanged indicates a value whose type changed
	KindTypeChanged ChangeKind = "type_changed"
)

// Kinds lists all change kinds in display order
var Kinds = []ChangeKind{KindAdded, KindRemoved, KindModified, KindTypeChanged}

// ChangeEntry represents one atomic difference between two config trees
type ChangeEntry struct {
	// Path locates the change, using dot-separated keys and bracketed
	// indices (e.g. "spec.containers[0].image"). Never empty.
	Path string

	// Kind classifies the change
	Kind ChangeKind

	// OldValue is the value in the before tree.
	// Meaningless for KindAdded.
	OldValue any

	// NewValue is the value in the after tree.
	// Meaningless for KindRemoved.
	NewValue any
}

// HasOld reports whether the entry carries a before-side value
func (e ChangeEntry) HasOld() bool {
	return e.Kind != KindAdded
}

// HasNew reports whether the entry carries an after-side value
func (e ChangeEntry) HasNew() bool {
	return e.Kind != KindRemoved
}
