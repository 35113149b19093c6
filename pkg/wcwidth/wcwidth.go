// Package wcwidth provides utilities for determining the display width of
// strings in a terminal.
package wcwidth

import "github.com/mattn/go-runewidth"

// OfRune returns the column width of a rune. Combining characters have width
// 0, East Asian wide characters have width 2.
func OfRune(r rune) int {
	return runewidth.RuneWidth(r)
}

// Of returns the column width of a string, the sum of the widths of its runes.
func Of(s string) int {
	w := 0
	for _, r := range s {
		w += OfRune(r)
	}
	return w
}
