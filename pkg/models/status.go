package models

// ExitStatus represents the overall result of a diff invocation
type ExitStatus string

const (
	// StatusClean indicates the two configs are identical
	StatusClean ExitStatus = "clean"
	// StatusChanged indicates differences were found
	StatusChanged ExitStatus = "changed"
	// StatusError indicates the comparison could not be performed
	StatusError ExitStatus = "error"
)

// ExitCode returns the process exit code for the status.
// The three-way convention (0 = no changes, 1 = changes found,
// 2 = error) is what makes the tool usable as a CI gate.
func (s ExitStatus) ExitCode() int {
	switch s {
	case StatusClean:
		return 0
	case StatusChanged:
		return 1
	case StatusError:
		return 2
	default:
		return 2
	}
}
