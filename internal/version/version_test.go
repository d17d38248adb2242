package version

import (
	"strings"
	"testing"
)

func TestFormatAndParse_Timeline(t *testing.T) {
	schema := FormatTimelineSchema(1)
	if schema != "timeline/1" {
		t.Errorf("FormatTimelineSchema(1) = %q, want %q", schema, "timeline/1")
	}

	v, err := ParseTimelineVersion(schema)
	if err != nil || v != 1 {
		t.Errorf("ParseTimelineVersion(%q) = (%d, %v), want (1, nil)", schema, v, err)
	}
}

func TestParseTimelineVersion_Invalid(t *testing.T) {
	tests := []string{
		"",
		"timeline",
		"timeline/",
		"timeline/abc",
		"timeline/0",
		"timeline/-1",
		"global/1",
	}

	for _, schema := range tests {
		if _, err := ParseTimelineVersion(schema); err == nil {
			t.Errorf("ParseTimelineVersion(%q) should fail", schema)
		}
	}
}

func TestCurrentSchemas(t *testing.T) {
	if CurrentTimelineSchema() != FormatTimelineSchema(CurrentTimelineVersion) {
		t.Error("CurrentTimelineSchema mismatch")
	}
	if CurrentGlobalSchema() != FormatGlobalSchema(CurrentGlobalVersion) {
		t.Error("CurrentGlobalSchema mismatch")
	}
}

func TestSchemaVersionError_Messages(t *testing.T) {
	err := MissingTimelineSchema("/tmp/timeline.toml")
	if !strings.Contains(err.Error(), "no schema version") {
		t.Errorf("unexpected message: %v", err)
	}

	err = InvalidGlobalSchema("/tmp/config.toml", "global/9")
	msg := err.Error()
	if !strings.Contains(msg, "global/9") || !strings.Contains(msg, CurrentGlobalSchema()) {
		t.Errorf("unexpected message: %v", err)
	}
}
