package labels

import (
	"fmt"
	"regexp"

	"github.com/douhashi/gh-labels/internal/github"
)

var colorPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// catalogEntries is the fixed set of labels provisioned on every repository,
// in creation order.
var catalogEntries = []struct {
	name  string
	color string
}{
	// Priority
	{"Priority: Critical", "b60205"},
	{"Priority: High", "d93f0b"},
	{"Priority: Medium", "fbca04"},
	{"Priority: Low", "0e8a16"},

	// Status
	{"Status: Open", "28a745"},
	{"Status: In Progress", "007bff"},
	{"Status: Review Needed", "ffc107"},
	{"Status: Blocked", "dc3545"},
	{"Status: On Hold", "6c757d"},
	{"Status: Closed", "6f42c1"},
	{"Status: Abandoned", "343a40"},
	{"Status: Proposal", "d4c5f9"},

	// Type
	{"Type: Bug", "dc3545"},
	{"Type: Feature", "28a745"},
	{"Type: Enhancement", "007bff"},
	{"Type: Documentation", "6610f2"},
	{"Type: Maintenance", "fd7e14"},
	{"Type: Question", "e83e8c"},
	{"Type: Task", "20c997"},

	// Area
	{"Area: Frontend", "17a2b8"},
	{"Area: Backend", "6610f2"},
	{"Area: Database", "20c997"},
	{"Area: DevOps", "fd7e14"},
	{"Area: API", "007bff"},
	{"Area: UI/UX", "e83e8c"},
	{"Area: Testing", "6c757d"},

	// Technical debt and quality
	{"Code Quality", "6610f2"},
	{"Performance", "17a2b8"},
	{"Security", "dc3545"},
	{"Accessibility", "28a745"},
	{"Refactoring", "fd7e14"},

	// Community
	{"good first issue", "7057ff"},
	{"help wanted", "008672"},
	{"hacktoberfest", "ff6b35"},

	// Dependencies and compatibility
	{"Dependencies", "0366d6"},
	{"Breaking Change", "b60205"},
	{"Backwards Compatible", "28a745"},
	{"Version: Major", "dc3545"},
	{"Version: Minor", "ffc107"},
	{"Version: Patch", "28a745"},

	// Special markers
	{"Duplicate", "cfd3d7"},
	{"Invalid", "e4e669"},
	{"Wontfix", "ffffff"},
	{"Needs Investigation", "fef2c0"},
	{"Needs Triage", "fbca04"},
	{"Needs Reproduction", "f9d0c4"},

	// Release
	{"Release: Alpha", "6c757d"},
	{"Release: Beta", "007bff"},
	{"Release: RC", "ffc107"},
	{"Release: Stable", "28a745"},
	{"Release: Hotfix", "dc3545"},

	// Platform and environment
	{"Platform: Web", "17a2b8"},
	{"Platform: Mobile", "6610f2"},
	{"Platform: Desktop", "20c997"},
	{"Environment: Production", "dc3545"},
	{"Environment: Staging", "ffc107"},
	{"Environment: Development", "28a745"},
}

var catalog = buildCatalog()

func buildCatalog() []github.Label {
	out := make([]github.Label, 0, len(catalogEntries))
	for _, e := range catalogEntries {
		out = append(out, github.Label{
			Name:        e.name,
			Color:       e.color,
			Description: DeriveDescription(e.name),
		})
	}
	return out
}

// Catalog returns a copy of the label catalog in creation order.
func Catalog() []github.Label {
	out := make([]github.Label, len(catalog))
	copy(out, catalog)
	return out
}

// ValidateCatalog checks that every label has a non-empty, unique name and a
// six digit hex color.
func ValidateCatalog(labels []github.Label) error {
	seen := make(map[string]bool, len(labels))
	for i, l := range labels {
		if l.Name == "" {
			return fmt.Errorf("label %d has an empty name", i)
		}
		if seen[l.Name] {
			return fmt.Errorf("duplicate label name %q", l.Name)
		}
		seen[l.Name] = true

		if !colorPattern.MatchString(l.Color) {
			return fmt.Errorf("label %q has invalid color %q", l.Name, l.Color)
		}
	}
	return nil
}
