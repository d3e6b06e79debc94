package explorer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	invalidChars = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// Sanitize turns a free-form note title into a filesystem-safe stem:
// spaces become hyphens, everything outside [A-Za-z0-9_-] is stripped,
// hyphen runs collapse, and leading/trailing hyphens go. A title with
// nothing left becomes "untitled".
func Sanitize(title string) string {
	stem := strings.ReplaceAll(title, " ", "-")
	stem = invalidChars.ReplaceAllString(stem, "")
	stem = hyphenRuns.ReplaceAllString(stem, "-")
	stem = strings.Trim(stem, "-")
	if stem == "" {
		return "untitled"
	}
	return stem
}

// UniquePath returns dir/stem.md, or dir/stem-1.md, dir/stem-2.md, …
// — the first of those that does not exist yet.
func UniquePath(dir, stem string) string {
	path := filepath.Join(dir, stem+".md")
	for i := 1; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s-%d.md", stem, i))
	}
}

// DailyNoteName is the date-stamped filename for a daily note. There is
// one per day: an existing file with this name is reopened, never
// duplicated.
func DailyNoteName(t time.Time) string {
	return t.Format("2006-01-02") + ".md"
}

// CreateNote writes a new empty markdown note named after title into
// dir and returns its path. Name collisions get a numeric suffix.
func CreateNote(dir, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", errors.New("empty note title")
	}
	path := UniquePath(dir, Sanitize(title))
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// EnsureDailyNote returns the path of today's daily note in dir,
// creating an empty file first if it does not exist.
func EnsureDailyNote(dir string, now time.Time) (string, error) {
	path := filepath.Join(dir, DailyNoteName(now))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if werr := os.WriteFile(path, nil, 0644); werr != nil {
			return "", werr
		}
	}
	return path, nil
}
