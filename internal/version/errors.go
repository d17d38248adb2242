package version

import "fmt"

// SchemaVersionError indicates a schema version problem during file read/write.
type SchemaVersionError struct {
	FileType string // "timeline", "global config"
	FilePath string // Path to the problematic file
	Found    string // What was found (e.g., "missing", "timeline/2")
	Expected string // What was expected (e.g., "timeline/1")
}

func (e *SchemaVersionError) Error() string {
	if e.Found == "missing" {
		return fmt.Sprintf("%s has no schema version (file: %s)", e.FileType, e.FilePath)
	}
	return fmt.Sprintf("%s has unsupported schema version: found %s, expected %s (file: %s)",
		e.FileType, e.Found, e.Expected, e.FilePath)
}

// MissingTimelineSchema creates an error for a timeline file missing its schema field.
func MissingTimelineSchema(path string) error {
	return &SchemaVersionError{
		FileType: "timeline",
		FilePath: path,
		Found:    "missing",
		Expected: CurrentTimelineSchema(),
	}
}

// InvalidTimelineSchema creates an error for a timeline with an unsupported schema.
func InvalidTimelineSchema(path, found string) error {
	return &SchemaVersionError{
		FileType: "timeline",
		FilePath: path,
		Found:    found,
		Expected: CurrentTimelineSchema(),
	}
}

// MissingGlobalSchema creates an error for a global config missing its schema field.
func MissingGlobalSchema(path string) error {
	return &SchemaVersionError{
		FileType: "global config",
		FilePath: path,
		Found:    "missing",
		Expected: CurrentGlobalSchema(),
	}
}

// InvalidGlobalSchema creates an error for a global config with an unsupported schema.
func InvalidGlobalSchema(path, found string) error {
	return &SchemaVersionError{
		FileType: "global config",
		FilePath: path,
		Found:    found,
		Expected: CurrentGlobalSchema(),
	}
}
