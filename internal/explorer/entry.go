package explorer

import (
	"sort"
	"strings"
)

// ParentName is the display name of the synthetic parent-directory entry.
const ParentName = "../"

// Entry is one listed filesystem item. Directory names carry a trailing
// slash so the two kinds are distinguishable at a glance.
type Entry struct {
	Name  string
	IsDir bool
	Path  string // absolute
}

// sortEntries orders directories before files, each group
// case-insensitively by name.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}
