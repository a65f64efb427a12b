package views

import "fmt"

// absentParent is the stable placeholder an empty parent container id
// serializes to. Eliding it instead would collide with keys whose parent
// happens to equal the category suffix.
const absentParent = "null"

// SettingsKey derives the persistence key for a (category, parent container)
// pair. Keys are injective over that cross-product so sibling containers of
// the same category never share a record.
func SettingsKey(c Category, parentID string) string {
	if parentID == "" {
		parentID = absentParent
	}
	return fmt.Sprintf("%s-%s", c, parentID)
}

// Defaults returns the first-visit settings record for a category. It is the
// single source of truth for initial state: deterministic, never fails, and
// any category without an explicit entry inherits the generic behavior.
func Defaults(c Category) Settings {
	cfg := configFor(c)
	return Settings{
		ShowTitle:  true,
		ShowYear:   false,
		ViewMode:   cfg.defaultViewMode,
		ImageType:  cfg.defaultImageType,
		CardLayout: false,
		SortBy:     []string{SortByName},
		SortOrder:  SortAscending,
		StartIndex: 0,
	}
}
