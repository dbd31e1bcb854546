package model

// Path represents a file system path.
type Path string

// File represents a discovered template file.
type File struct {
	FullPath  Path   `yaml:"full_path"`
	ShortPath Path   `yaml:"short_path"` // relative to the scan root, for display
	Hash      string `yaml:"hash"`
}

// Source is one file scheduled for formatting.
type Source struct {
	Origin *File `yaml:"origin"`
}
