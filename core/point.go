package core

// Point is a 3D coordinate, used wherever the DXF grammar groups a 1x/2x/3x
// code triple (or 1x/2x pair, Z defaulting to zero) into a single value:
// insertion points, vertices, extrusion directions.
type Point struct {
	X, Y, Z float64
}

// BBox is an axis-aligned bounding box. The codec itself never computes
// one (bounding-box geometry is a Non-goal of the core per spec.md §1);
// it is exposed here only as a plain value type. No entity body or header
// variable uses it; $EXTMIN/$EXTMAX are held as two separate Points.
type BBox struct {
	Min, Max Point
}
