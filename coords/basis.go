package coords

import (
	"math"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

// Basis is an orthonormal frame. Z is always X × Y.
type Basis struct {
	Origin  geom.Vec3
	X, Y, Z geom.Vec3
}

// World is the identity basis.
var World = Basis{X: geom.XAxis, Y: geom.YAxis, Z: geom.ZAxis}

// parallelLimit is the |cos| above which two unit vectors count as parallel.
const parallelLimit = 1 - 1e-9

// NewBasis builds an orthonormal basis from possibly unnormalized,
// non-orthogonal or degenerate axes. X keeps its direction; Y is
// re-orthogonalized against it. Missing axes are rebuilt from world axes.
func NewBasis(origin, x, y geom.Vec3) Basis {
	xl, yl := x.Length(), y.Length()
	switch {
	case xl < geom.Epsilon && yl < geom.Epsilon:
		return Basis{Origin: origin, X: geom.XAxis, Y: geom.YAxis, Z: geom.ZAxis}
	case xl < geom.Epsilon:
		y = y.Scale(1 / yl)
		x = y.Cross(upHint(y)).Normalize(geom.XAxis)
	default:
		x = x.Scale(1 / xl)
	}

	y = y.Sub(x.Scale(x.Dot(y)))
	if y.Length() < geom.Epsilon {
		y = geom.ZAxis.Cross(x)
		if y.Length() < geom.Epsilon {
			y = x.Cross(geom.XAxis)
			if y.Length() < geom.Epsilon {
				y = x.Cross(geom.YAxis)
			}
		}
	}
	y = y.Normalize(geom.YAxis)
	z := x.Cross(y).Normalize(geom.ZAxis)
	return Basis{Origin: origin, X: x, Y: y, Z: z}
}

// FromDirection derives a basis whose Z is the view direction. X and Y come
// from cross products against a world-up hint and are then rotated by twist
// (degrees) about Z.
func FromDirection(origin, dir geom.Vec3, twist float64) Basis {
	z := dir.Normalize(geom.ZAxis)
	x := upHint(z).Cross(z).Normalize(geom.XAxis)
	y := z.Cross(x).Normalize(geom.YAxis)
	if twist != 0 {
		s, c := math.Sincos(twist * math.Pi / 180)
		x, y = x.Scale(c).Add(y.Scale(s)), y.Scale(c).Sub(x.Scale(s))
	}
	return Basis{Origin: origin, X: x, Y: y, Z: z}
}

// upHint returns world Y for directions close to ±Z, else world Z.
func upHint(z geom.Vec3) geom.Vec3 {
	if math.Abs(z.Dot(geom.ZAxis)) > 1-1e-6 {
		return geom.YAxis
	}
	return geom.ZAxis
}

// Matrix maps basis-local coordinates to world coordinates.
func (b Basis) Matrix() geom.Matrix {
	return geom.FromBasis(b.Origin, b.X, b.Y, b.Z)
}

// Inverse maps world coordinates to basis-local coordinates.
func (b Basis) Inverse() geom.Matrix {
	rot := geom.FromBasis(geom.Vec3{}, b.X, b.Y, b.Z).Transpose()
	return rot.Multiply(geom.TranslateVec(b.Origin.Neg()))
}

// IsOrthonormal reports whether the axes are unit length and mutually
// orthogonal within eps.
func (b Basis) IsOrthonormal(eps float64) bool {
	unit := func(v geom.Vec3) bool { return math.Abs(v.Length()-1) <= eps }
	return unit(b.X) && unit(b.Y) && unit(b.Z) &&
		math.Abs(b.X.Dot(b.Y)) <= eps &&
		math.Abs(b.Y.Dot(b.Z)) <= eps &&
		math.Abs(b.Z.Dot(b.X)) <= eps &&
		b.X.Cross(b.Y).Near(b.Z, eps)
}

// IsWorld reports whether b is the world basis.
func (b Basis) IsWorld() bool {
	const eps = 1e-12
	return b.Origin.Near(geom.Vec3{}, eps) && b.X.Near(geom.XAxis, eps) && b.Y.Near(geom.YAxis, eps)
}

func validAxes(x, y geom.Vec3) bool {
	xl, yl := x.Length(), y.Length()
	if xl < geom.Epsilon || yl < geom.Epsilon {
		return false
	}
	return math.Abs(x.Dot(y)/(xl*yl)) < parallelLimit
}
