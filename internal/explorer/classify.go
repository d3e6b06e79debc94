package explorer

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Extensions shown without looking at content.
var textExtensions = map[string]bool{
	".txt": true, ".md": true, ".py": true, ".js": true, ".json": true,
	".yaml": true, ".yml": true, ".html": true, ".css": true, ".sh": true,
	".conf": true, ".cfg": true, ".ini": true, ".log": true, ".sql": true,
	".xml": true, ".csv": true, ".toml": true, ".rs": true, ".go": true,
	".c": true, ".cpp": true, ".h": true, ".hpp": true, ".java": true,
	".php": true, ".rb": true, ".pl": true, ".ts": true, ".jsx": true,
	".tsx": true, ".vue": true, ".svelte": true, ".scss": true,
	".sass": true, ".less": true,
}

// sniffLen bounds how much of an extensionless file is read to decide
// whether it is text.
const sniffLen = 512

// IsTextFile reports whether the file at path should appear in a
// listing. Files with a recognized extension pass without being read;
// extensionless files are sniffed. Any read error counts as not text.
func IsTextFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if textExtensions[ext] {
		return true
	}
	if ext != "" {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	return textContent(buf[:n])
}

// textContent decides text-ness from a leading chunk of a file: empty
// counts as text, invalid UTF-8 does not, and otherwise more than 80%
// of the bytes must be printable ASCII or tab/newline/carriage-return.
func textContent(chunk []byte) bool {
	if len(chunk) == 0 {
		return true
	}
	if !utf8.Valid(chunk) {
		return false
	}
	printable := 0
	for _, c := range chunk {
		if c < 127 && (c >= 32 || c == '\t' || c == '\n' || c == '\r') {
			printable++
		}
	}
	return float64(printable)/float64(len(chunk)) > 0.8
}
