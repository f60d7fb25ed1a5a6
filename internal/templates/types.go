// Package templates collects the files of a template repository, decides how
// each one is treated and writes the generated project.
package templates

// Classification decides what happens to a collected file.
type Classification int

const (
	// Template processes the file as a template.
	Template Classification = iota

	// CopyVerbatim copies the file byte for byte.
	CopyVerbatim

	// Skip leaves the file out of the output.
	Skip
)

// String returns the status word shown in the generation summary.
func (c Classification) String() string {
	switch c {
	case Template:
		return "rendered"
	case CopyVerbatim:
		return "copied"
	case Skip:
		return "skipped"
	default:
		return "unknown"
	}
}

// RepoFile is a regular file found in a template repository.
type RepoFile struct {
	// Source is the absolute path of the file.
	Source string

	// Name is the path relative to the template root, using forward slashes.
	Name string

	Class Classification
}
