// Package layout computes deterministic canvas positions for batches of
// newly created child nodes. All placement is pure arithmetic relative to
// the parent; workflows differ only in the gap and spacing constants they
// pass in.
package layout

// Point is a 2-D canvas position.
type Point struct {
	X float64
	Y float64
}

// Column places n children in a vertical stack to the right of the parent,
// centered around the parent's y-coordinate.
func Column(parentX, parentY float64, n int, gap, spacing float64) []Point {
	if n <= 0 {
		return nil
	}
	startY := parentY - float64(n-1)*spacing/2
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{
			X: parentX + gap,
			Y: startY + float64(i)*spacing,
		}
	}
	return pts
}

// Grid places n children in a column-major reading order grid to the right
// of the parent: index i lands at column i%columns, row i/columns. The
// occupied rows are vertically centered around the parent's y-coordinate.
func Grid(parentX, parentY float64, n, columns int, gap, colSpacing, rowSpacing float64) []Point {
	if n <= 0 || columns <= 0 {
		return nil
	}
	rows := (n + columns - 1) / columns
	startY := parentY - float64(rows-1)*rowSpacing/2
	pts := make([]Point, n)
	for i := range pts {
		row := i / columns
		col := i % columns
		pts[i] = Point{
			X: parentX + gap + float64(col)*colSpacing,
			Y: startY + float64(row)*rowSpacing,
		}
	}
	return pts
}
