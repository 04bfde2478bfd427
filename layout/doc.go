// Package layout soft-wraps a single line into terminal rows and draws it
// in visual order.
//
// Rows hold storage-consecutive grapheme clusters, so a Layout doubles as
// the row measurer for caret motion: Row(i) is the row rune i renders on.
package layout
