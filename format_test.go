package govfi

import (
	"strings"
	"testing"
)

func TestVectorNoTruncation(t *testing.T) {
	f := NewFormatter()
	out := f.Vector([]float64{1, 2.5, 3})

	if !strings.HasPrefix(out, "float64 vector, 3 elements\n") {
		t.Errorf("Unexpected header: %q", out)
	}
	if strings.Contains(out, "showing") {
		t.Errorf("Untruncated vector mentions showing: %q", out)
	}
	if strings.Contains(out, ellipsis) {
		t.Errorf("Untruncated vector contains ellipsis: %q", out)
	}
	if !strings.Contains(out, "2.500") {
		t.Errorf("Expected 3-decimal cells, got %q", out)
	}
}

func TestVectorTruncation(t *testing.T) {
	x := make([]float64, 20)
	for i := range x {
		x[i] = float64(i) + 0.123456789
	}

	f := NewFormatter() // 8-column budget, raw boundary
	out := f.Vector(x)

	if !strings.Contains(out, "20 elements (showing 7)") {
		t.Errorf("Header should note true vs displayed extent: %q", out)
	}
	if !strings.HasSuffix(out, ellipsis) {
		t.Errorf("Truncated vector should end with the ellipsis marker: %q", out)
	}

	cells := strings.Split(strings.SplitN(out, "\n", 2)[1], "  ")
	if len(cells) != 8 {
		t.Fatalf("Expected 8 display cells, got %d: %q", len(cells), cells)
	}

	// Interior cells rounded to 3 decimals
	if cells[0] != "0.123" {
		t.Errorf("Interior cell = %q, want 0.123", cells[0])
	}
	// Reference policy: the last visible cell before the ellipsis is raw
	if cells[6] != "6.123456789" {
		t.Errorf("Boundary cell = %q, want full precision", cells[6])
	}
}

func TestVectorFormattedBoundary(t *testing.T) {
	x := make([]float64, 20)
	for i := range x {
		x[i] = float64(i) + 0.123456789
	}

	f := NewFormatter()
	f.RawBoundary = false
	out := f.Vector(x)

	cells := strings.Split(strings.SplitN(out, "\n", 2)[1], "  ")
	if cells[6] != "6.123" {
		t.Errorf("Boundary cell = %q, want 6.123 with RawBoundary off", cells[6])
	}
}

func TestMatrixTruncation(t *testing.T) {
	m := make([][]float64, 12)
	for i := range m {
		m[i] = make([]float64, 15)
		for j := range m[i] {
			m[i][j] = float64(i*100+j) + 0.5
		}
	}

	f := NewFormatter()
	out, err := f.Matrix(m)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "12x15 (showing 7x7)") {
		t.Errorf("Header should note both trimmed extents: %q", out)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1+8 { // header + 7 data rows + ellipsis row
		t.Fatalf("Expected 9 lines, got %d", len(lines))
	}

	last := lines[len(lines)-1]
	if !strings.Contains(last, ellipsis) {
		t.Errorf("Last row should be the ellipsis row: %q", last)
	}
	for _, line := range lines[1:] {
		if !strings.HasSuffix(strings.TrimRight(line, " "), ellipsis) {
			t.Errorf("Each displayed row should end with the ellipsis column: %q", line)
		}
	}
}

func TestMatrixNoTruncation(t *testing.T) {
	m := [][]float64{{1, 2}, {3, 4}}

	f := NewFormatter()
	out, err := f.Matrix(m)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "float64 matrix, 2x2\n") {
		t.Errorf("Unexpected header: %q", out)
	}
	if strings.Contains(out, ellipsis) {
		t.Errorf("Untruncated matrix contains ellipsis: %q", out)
	}
	if !strings.Contains(out, "4.000") {
		t.Errorf("Expected 3-decimal cells: %q", out)
	}
}

func TestMatrixRaggedRows(t *testing.T) {
	_, err := NewFormatter().Matrix([][]float64{{1, 2}, {3}})
	if !IsInvalidArgError(err) {
		t.Errorf("Expected InvalidArgument for ragged rows, got %v", err)
	}
}
