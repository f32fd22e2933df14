package slotscreen

import (
	"fmt"
	"io"
)

// masked is printed in place of cells excluded by the keep predicate.
const masked = '-'

// Render writes the screen to w, one space-separated line per row,
// followed by a blank line. When keep is non-nil, cells for which
// keep(x, y, symbol) returns false print as '-' so a single pattern can
// be highlighted against the full screen; a nil keep shows every cell.
//
// Complexity: O(Rows×Reels).
func Render(w io.Writer, s Screen, keep func(x, y int, symbol rune) bool) error {
	for y, row := range s {
		for x, sym := range row {
			c := sym
			if keep != nil && !keep(x, y, sym) {
				c = masked
			}
			if x > 0 {
				if _, err := fmt.Fprint(w, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%c", c); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)

	return err
}
