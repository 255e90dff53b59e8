package core

// Point is a grid cell address
type Point struct {
	X, Y int
}

// Add returns p translated by one step in direction d
func (p Point) Add(d Direction) Point {
	dx, dy := d.Vector()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Wrap folds p into [0,width)x[0,height), negative coordinates included
func (p Point) Wrap(width, height int) Point {
	return Point{X: wrap(p.X, width), Y: wrap(p.Y, height)}
}

// In reports whether p lies inside a width x height grid
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
