package model

// FileStatus represents the outcome of formatting a single file.
type FileStatus int

// Available FileStatus values.
const (
	// Clean indicates the file needed no changes.
	Clean FileStatus = iota
	// Dirty indicates changes are needed but were not written (check mode).
	Dirty
	// Formatted indicates changes were computed and written back.
	Formatted
	// Failed indicates the file could not be processed.
	Failed
)

// String returns the human-readable status name.
func (s FileStatus) String() string {
	switch s {
	case Clean:
		return "clean"
	case Dirty:
		return "needs format"
	case Formatted:
		return "formatted"
	case Failed:
		return "failed"
	}

	return "unknown"
}

// Report records the outcome of formatting a single file. Output holds the
// rebuilt file contents (or the error detail for Failed entries) and is not
// persisted.
type Report struct {
	Source       Source     `yaml:"source"`
	Status       FileStatus `yaml:"status"`
	Replacements int        `yaml:"replacements"` // number of attribute blocks rewritten
	Output       string     `yaml:"-"`
}
