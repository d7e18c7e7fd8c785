// Package workflow derives the external workflow identifiers the build
// matrix is submitted under. A workflow name is unique per (target, tag,
// schema-version) triple; the engine treats a resubmitted name as a
// duplicate, so the name is the idempotency key.
package workflow

import (
	"fmt"
	"strings"
)

// Sep joins name components. Same separator as image tags.
const Sep = "-"

// A normalized version tag always splits into five components: three from
// the MAJOR.MINOR.PATCH package version plus the base and target
// increments. Format appends those plus the schema version.
const (
	tagComponents    = 5
	suffixComponents = tagComponents + 1
)

// Format derives the workflow name for one (target, tag, schema-version)
// triple. tag is the version portion of the target's image tag
// (PACKAGE-BASE-TARGET); its dots are normalized to the separator. Inputs
// are validated at target registration and snapshot load, keeping Format
// total.
func Format(target, tag, schemaVersion string) string {
	return target + Sep + Normalize(tag) + Sep + schemaVersion
}

// Normalize rewrites tag punctuation into the separator so the result is a
// legal workflow name segment.
func Normalize(tag string) string {
	return strings.ReplaceAll(tag, ".", Sep)
}

// ParseLabel recovers the target name from a workflow name produced by
// Format. It strips exactly the trailing components Format appended, so
// target names that contain the separator survive the round trip.
func ParseLabel(workflowName string) (string, error) {
	parts := strings.Split(workflowName, Sep)
	if len(parts) <= suffixComponents {
		return "", fmt.Errorf("workflow name %q has no target prefix", workflowName)
	}
	return strings.Join(parts[:len(parts)-suffixComponents], Sep), nil
}
