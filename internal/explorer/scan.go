package explorer

import (
	"os"
	"path/filepath"
	"strings"
)

// Scan lists the direct children of dir: subdirectories plus files the
// classifier accepts, dotfiles skipped, sorted directories-first. A
// synthetic ../ entry leads the list unless dir is the filesystem root.
//
// When the directory itself cannot be read, Scan still returns the
// parent entry together with the error so the caller can render the
// condition instead of an unexplained empty listing. Children that fail
// inspection are silently left out.
func Scan(dir string) ([]Entry, error) {
	var items []Entry
	if parent := filepath.Dir(dir); parent != dir {
		items = append(items, Entry{Name: ParentName, IsDir: true, Path: parent})
	}

	children, err := os.ReadDir(dir)
	if err != nil {
		return items, err
	}

	var entries []Entry
	for _, child := range children {
		name := child.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)
		switch {
		case child.IsDir():
			entries = append(entries, Entry{Name: name + "/", IsDir: true, Path: path})
		case IsTextFile(path):
			entries = append(entries, Entry{Name: name, IsDir: false, Path: path})
		}
	}
	sortEntries(entries)

	return append(items, entries...), nil
}
