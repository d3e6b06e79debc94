package ui

import "github.com/mattn/go-runewidth"

// truncate clips s to maxW terminal cells, ellipsized. Uses display
// width so wide glyphs don't overflow the row.
func truncate(s string, maxW int) string {
	if maxW < 4 {
		maxW = 4
	}
	if runewidth.StringWidth(s) <= maxW {
		return s
	}
	return runewidth.Truncate(s, maxW, "…")
}

// truncateLeft keeps the tail of s, which for paths is the interesting
// part.
func truncateLeft(s string, maxW int) string {
	if maxW < 4 {
		maxW = 4
	}
	sw := runewidth.StringWidth(s)
	if sw <= maxW {
		return s
	}
	return runewidth.TruncateLeft(s, sw-maxW+1, "…")
}
