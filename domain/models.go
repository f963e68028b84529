package domain

// Dependency represents one declared dependency extracted from a manifest.
type Dependency struct {
	Name     string // Package name (Maven: "groupId:artifactId", Go: module path)
	Declared string // Declared version with range operators stripped, for display
	Raw      string // Verbatim specifier from the manifest, used for comparison
	Indirect bool   // Go modules only: "// indirect" marker
}

// Status classifies a dependency after comparing declared and latest versions.
type Status int

const (
	// StatusUnknown means the declared version could not be resolved to a
	// comparable form (range specifier, placeholder, failed lookup). It is
	// never silently guessed as up-to-date.
	StatusUnknown Status = iota
	StatusUpToDate
	StatusUpdateAvailable
)

// String returns the status identifier used in logs.
func (s Status) String() string {
	switch s {
	case StatusUpToDate:
		return "up-to-date"
	case StatusUpdateAvailable:
		return "update-available"
	default:
		return "unknown"
	}
}

// Glyph returns the report symbol for the status. Unknown has no glyph.
func (s Status) Glyph() string {
	switch s {
	case StatusUpToDate:
		return "✅"
	case StatusUpdateAvailable:
		return "⚠️"
	default:
		return ""
	}
}

// Row is one rendered comparison line: package, current version, latest
// version, and the resulting status.
type Row struct {
	Name    string
	Current string
	Latest  string
	Status  Status
}

// Section holds the comparison rows for one (directory, environment) pair.
type Section struct {
	Environment string
	Directory   string
	Rows        []Row
}
