package commands

// Source tags where a command was found.
type Source string

const (
	SourceProject Source = "project"
	SourceUser    Source = "user"
	SourceCustom  Source = "custom"
)

// DocumentSuffix marks files that are command documents.
const DocumentSuffix = ".md"

// NamespaceSeparator joins namespace segments in a command name.
const NamespaceSeparator = ":"

// Record is one discovered command.
type Record struct {
	Name         string `json:"name"`                   // e.g., "git:commit"
	Description  string `json:"description"`            // from the description field, may be empty
	ArgumentHint string `json:"argumentHint,omitempty"` // from the argument-hint field
	Source       Source `json:"source"`                 // provenance, set once at scan time
	Path         string `json:"path"`                   // absolute path to the document
}

// ParseSource maps a tag string to a Source.
func ParseSource(s string) (Source, bool) {
	switch Source(s) {
	case SourceProject, SourceUser, SourceCustom:
		return Source(s), true
	}
	return "", false
}
