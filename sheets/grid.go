package sheets

import "image"

// CellRect computes the pixel rectangle of the cell at (row, col) on a
// sheet of the passed size.
//
// The column width and row height are fractional; truncation happens only
// when a concrete edge is computed, so column boundaries match the source
// layout rather than accumulating rounding drift.
func CellRect(size image.Point, row, col int) image.Rectangle {
	contentWidth := size.X - labelMargin
	colWidth := float64(contentWidth) / NumCols
	rowHeight := float64(size.Y) / NumRows
	monsterHeight := rowHeight - captionTrim

	left := int(float64(col)*colWidth) + hInset
	top := int(float64(row)*rowHeight) + vInsetTop
	right := int(float64(col+1)*colWidth) - hInset
	bottom := int(float64(row)*rowHeight + monsterHeight)

	return image.Rect(left, top, right, bottom)
}
