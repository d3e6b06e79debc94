package explorer

// VisibleWindow picks the half-open index range [start, end) of a list
// to render in rows lines. The cursor is always inside the range, the
// range never crosses either end of the list, and when the cursor sits
// near the bottom the window re-anchors to the end so no rows go
// unused.
func VisibleWindow(total, cursor, rows int) (start, end int) {
	if rows <= 0 || total <= 0 {
		return 0, 0
	}
	start = cursor - rows + 1
	if start < 0 {
		start = 0
	}
	end = start + rows
	if end >= total {
		end = total
		start = end - rows
		if start < 0 {
			start = 0
		}
	}
	return start, end
}
