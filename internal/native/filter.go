package native

import "strings"

// FilterGroup is one group of a filter list: the extensions that are offered
// together as a single choice in the dialog.
type FilterGroup struct {
	Name       string
	Extensions []string
}

// ParseFilterList splits a nativefiledialog filter list into groups.
// Groups are separated by ';' and extensions within a group by ','.
// Whitespace around extensions and empty entries are dropped, so
// "png, jpg;pdf" yields [{png,jpg} {pdf}].
func ParseFilterList(filterList string) []FilterGroup {
	var groups []FilterGroup
	for _, part := range strings.Split(filterList, ";") {
		var exts []string
		for _, ext := range strings.Split(part, ",") {
			ext = strings.TrimSpace(ext)
			ext = strings.TrimPrefix(ext, ".")
			if ext != "" {
				exts = append(exts, ext)
			}
		}
		if len(exts) == 0 {
			continue
		}
		groups = append(groups, FilterGroup{
			Name:       strings.Join(exts, ", "),
			Extensions: exts,
		})
	}
	return groups
}

// Patterns returns the group's extensions as glob patterns ("*.png").
func (g FilterGroup) Patterns() []string {
	patterns := make([]string, len(g.Extensions))
	for i, ext := range g.Extensions {
		patterns[i] = "*." + ext
	}
	return patterns
}
