package coords

import (
	"math"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

// arbitraryAxisLimit is the 1/64 threshold of the arbitrary axis algorithm.
const arbitraryAxisLimit = 1.0 / 64

// OCS returns the object coordinate system for an extrusion direction using
// the arbitrary axis algorithm. A zero normal yields World.
func OCS(normal geom.Vec3) Basis {
	n := normal.Normalize(geom.Vec3{})
	if n.IsZero() {
		return World
	}
	var ax geom.Vec3
	if math.Abs(n.X) < arbitraryAxisLimit && math.Abs(n.Y) < arbitraryAxisLimit {
		ax = geom.YAxis.Cross(n)
	} else {
		ax = geom.ZAxis.Cross(n)
	}
	ax = ax.Normalize(geom.XAxis)
	ay := n.Cross(ax).Normalize(geom.YAxis)
	return Basis{X: ax, Y: ay, Z: n}
}

// OCSMatrix returns the OCS to world matrix for normal and whether it
// differs from the identity.
func OCSMatrix(normal geom.Vec3) (geom.Matrix, bool) {
	n := normal.Normalize(geom.ZAxis)
	if n.Sub(geom.ZAxis).Length() < 1e-12 {
		return geom.Identity(), false
	}
	return OCS(n).Matrix(), true
}
