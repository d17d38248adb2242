package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current schema versions - bump these when making breaking changes to
// the timeline document or global config formats.
const (
	CurrentTimelineVersion = 1
	CurrentGlobalVersion   = 1
)

// Schema type prefixes for config files.
const (
	TimelineSchemaPrefix = "timeline/"
	GlobalSchemaPrefix   = "global/"
)

// FormatTimelineSchema creates a timeline schema string from a version number.
// Example: FormatTimelineSchema(1) returns "timeline/1"
func FormatTimelineSchema(v int) string {
	return fmt.Sprintf("%s%d", TimelineSchemaPrefix, v)
}

// FormatGlobalSchema creates a global schema string from a version number.
func FormatGlobalSchema(v int) string {
	return fmt.Sprintf("%s%d", GlobalSchemaPrefix, v)
}

// ParseTimelineVersion extracts the version number from a timeline schema string.
// Returns an error if the format is invalid.
func ParseTimelineVersion(schema string) (int, error) {
	return parseSchemaVersion(schema, TimelineSchemaPrefix, "timeline")
}

// ParseGlobalVersion extracts the version number from a global schema string.
func ParseGlobalVersion(schema string) (int, error) {
	return parseSchemaVersion(schema, GlobalSchemaPrefix, "global")
}

func parseSchemaVersion(schema, prefix, schemaType string) (int, error) {
	if !strings.HasPrefix(schema, prefix) {
		return 0, fmt.Errorf("invalid %s schema format: %q (expected %sN)", schemaType, schema, prefix)
	}
	versionStr := strings.TrimPrefix(schema, prefix)
	v, err := strconv.Atoi(versionStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s schema version: %q", schemaType, versionStr)
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid %s schema version: %d (must be >= 1)", schemaType, v)
	}
	return v, nil
}

// CurrentTimelineSchema returns the current timeline schema string.
func CurrentTimelineSchema() string {
	return FormatTimelineSchema(CurrentTimelineVersion)
}

// CurrentGlobalSchema returns the current global schema string.
func CurrentGlobalSchema() string {
	return FormatGlobalSchema(CurrentGlobalVersion)
}
