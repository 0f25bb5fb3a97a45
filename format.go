package govfi

import (
	"fmt"
	"strconv"
	"strings"
)

// Formatter renders numeric vectors and matrices truncated to a display
// budget, the way the notebook scenarios print large value functions. When
// an extent exceeds its budget, the last displayed row/column is replaced
// by an ellipsis marker and the header notes true versus displayed extents.
//
// Interior cells print at 3 decimal places. RawBoundary controls the last
// visible row/column before an ellipsis: when set, those cells print at
// full precision, reproducing the reference renderer, which compared cell
// indices against the display budget instead of the trimmed extent. The
// intended behavior is ambiguous in the reference, so the quirk is a policy
// rather than a bug fix.
type Formatter struct {
	MaxRows     int
	MaxCols     int
	RawBoundary bool
}

// NewFormatter returns a formatter with the reference 8x8 display budget
// and the reference boundary-cell policy.
func NewFormatter() Formatter {
	return Formatter{
		MaxRows:     DefaultDisplayRows,
		MaxCols:     DefaultDisplayCols,
		RawBoundary: true,
	}
}

const ellipsis = "..."

// Vector renders a one-dimensional array
func (f Formatter) Vector(x []float64) string {
	n := len(x)
	truncated := n > f.MaxCols

	var b strings.Builder
	if truncated {
		// One budget slot is spent on the ellipsis marker
		fmt.Fprintf(&b, "float64 vector, %d elements (showing %d)\n", n, f.MaxCols-1)
	} else {
		fmt.Fprintf(&b, "float64 vector, %d elements\n", n)
	}

	cells := f.rowCells(x, truncated)
	b.WriteString(strings.Join(cells, "  "))
	return b.String()
}

// Matrix renders a two-dimensional array. Fails with an InvalidArgument
// error when rows have inconsistent lengths.
func (f Formatter) Matrix(m [][]float64) (string, error) {
	rows := len(m)
	cols := 0
	if rows > 0 {
		cols = len(m[0])
	}
	for i, row := range m {
		if len(row) != cols {
			return "", NewInvalidArgError("Matrix",
				fmt.Sprintf("inconsistent column count at row %d: %d vs %d", i, len(row), cols))
		}
	}

	truncRows := rows > f.MaxRows
	truncCols := cols > f.MaxCols

	shownRows := rows
	if truncRows {
		shownRows = f.MaxRows - 1
	}
	shownCols := cols
	if truncCols {
		shownCols = f.MaxCols - 1
	}

	var b strings.Builder
	if truncRows || truncCols {
		fmt.Fprintf(&b, "float64 matrix, %dx%d (showing %dx%d)\n", rows, cols, shownRows, shownCols)
	} else {
		fmt.Fprintf(&b, "float64 matrix, %dx%d\n", rows, cols)
	}

	displayCols := shownCols
	if truncCols {
		displayCols++ // ellipsis column
	}

	for i := 0; i < shownRows; i++ {
		boundaryRow := truncRows && i == shownRows-1
		cells := make([]string, 0, displayCols)
		for j := 0; j < shownCols; j++ {
			boundary := boundaryRow || (truncCols && j == shownCols-1)
			cells = append(cells, f.cell(m[i][j], boundary))
		}
		if truncCols {
			cells = append(cells, ellipsis)
		}
		for j, c := range cells {
			if j > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%12s", c)
		}
		b.WriteByte('\n')
	}
	if truncRows {
		for j := 0; j < displayCols; j++ {
			if j > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%12s", ellipsis)
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// rowCells renders one vector row, appending the ellipsis slot when
// truncated
func (f Formatter) rowCells(x []float64, truncated bool) []string {
	shown := len(x)
	if truncated {
		shown = f.MaxCols - 1
	}

	cells := make([]string, 0, shown+1)
	for j := 0; j < shown; j++ {
		boundary := truncated && j == shown-1
		cells = append(cells, f.cell(x[j], boundary))
	}
	if truncated {
		cells = append(cells, ellipsis)
	}
	return cells
}

func (f Formatter) cell(v float64, boundary bool) string {
	if boundary && f.RawBoundary {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
