package geom

import "math"

// Matrix is a 4x4 affine transformation stored in row-major order.
// Points are column vectors, so the translation lives in elements 3, 7 and 11:
//
//	| m0  m1  m2  m3  |
//	| m4  m5  m6  m7  |
//	| m8  m9  m10 m11 |
//	| m12 m13 m14 m15 |
//
// Transforms compose right to left: parent.Multiply(child) applies child
// first.
type Matrix [16]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float64) Matrix {
	return Matrix{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// TranslateVec returns a translation by v.
func TranslateVec(v Vec3) Matrix {
	return Translate(v.X, v.Y, v.Z)
}

// Scale returns a scaling matrix.
func Scale(x, y, z float64) Matrix {
	return Matrix{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a counter-clockwise rotation about the z axis (radians).
func RotateZ(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns a rotation about the x axis (radians).
func RotateX(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation about the y axis (radians).
func RotateY(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateAxis returns a rotation of angle radians about an arbitrary axis
// through the origin. A degenerate axis yields the identity.
func RotateAxis(axis Vec3, angle float64) Matrix {
	a := axis.Normalize(Vec3{})
	if a.IsZero() {
		return Identity()
	}
	s, c := math.Sincos(angle)
	t := 1 - c
	return Matrix{
		t*a.X*a.X + c, t*a.X*a.Y - s*a.Z, t*a.X*a.Z + s*a.Y, 0,
		t*a.X*a.Y + s*a.Z, t*a.Y*a.Y + c, t*a.Y*a.Z - s*a.X, 0,
		t*a.X*a.Z - s*a.Y, t*a.Y*a.Z + s*a.X, t*a.Z*a.Z + c, 0,
		0, 0, 0, 1,
	}
}

// FromBasis returns the matrix whose columns are the given axes and whose
// translation is origin. It maps basis-local coordinates to world coordinates.
func FromBasis(origin, x, y, z Vec3) Matrix {
	return Matrix{
		x.X, y.X, z.X, origin.X,
		x.Y, y.Y, z.Y, origin.Y,
		x.Z, y.Z, z.Z, origin.Z,
		0, 0, 0, 1,
	}
}

// Multiply returns m * o. The result applies o first, then m.
func (m Matrix) Multiply(o Matrix) Matrix {
	var r Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row*4+col] = m[row*4]*o[col] +
				m[row*4+1]*o[4+col] +
				m[row*4+2]*o[8+col] +
				m[row*4+3]*o[12+col]
		}
	}
	return r
}

// TransformPoint applies the full transform, translation included.
func (m Matrix) TransformPoint(p Vec3) Vec3 {
	x := m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3]
	y := m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7]
	z := m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11]
	w := m[12]*p.X + m[13]*p.Y + m[14]*p.Z + m[15]
	if w != 1 && math.Abs(w) > Epsilon {
		return Vec3{X: x / w, Y: y / w, Z: z / w}
	}
	return Vec3{X: x, Y: y, Z: z}
}

// TransformVector applies the linear part only; translation is excluded.
func (m Matrix) TransformVector(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// TransformPoint2 transforms a planar point (z = 0) and drops z.
func (m Matrix) TransformPoint2(p Vec2) Vec2 {
	return m.TransformPoint(Vec3{X: p.X, Y: p.Y}).XY()
}

// TransformPoints2 transforms a slice of planar points into a new slice.
func (m Matrix) TransformPoints2(pts []Vec2) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = m.TransformPoint2(p)
	}
	return out
}

// Rotation2D returns the rotation of the transformed x axis in the XY plane.
func (m Matrix) Rotation2D() float64 {
	return math.Atan2(m[4], m[0])
}

// ScaleFactors2D returns the lengths of the transformed x and y axes in the
// XY plane. A mirrored transform yields a negative y factor.
func (m Matrix) ScaleFactors2D() (sx, sy float64) {
	sx = math.Hypot(m[0], m[4])
	sy = math.Hypot(m[1], m[5])
	if m[0]*m[5]-m[1]*m[4] < 0 {
		sy = -sy
	}
	return sx, sy
}

// UniformScale2D returns the geometric mean of the absolute 2D scale
// factors, used to scale lengths such as text heights and line widths.
func (m Matrix) UniformScale2D() float64 {
	sx, sy := m.ScaleFactors2D()
	return math.Sqrt(math.Abs(sx * sy))
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	var r Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[col*4+row] = m[row*4+col]
		}
	}
	return r
}

// Invert returns the inverse matrix.
// Returns the identity matrix if m is singular.
func (m Matrix) Invert() Matrix {
	a := m
	inv := Identity()
	for col := 0; col < 4; col++ {
		pivot := col
		for row := col + 1; row < 4; row++ {
			if math.Abs(a[row*4+col]) > math.Abs(a[pivot*4+col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot*4+col]) < 1e-12 {
			return Identity()
		}
		if pivot != col {
			for k := 0; k < 4; k++ {
				a[col*4+k], a[pivot*4+k] = a[pivot*4+k], a[col*4+k]
				inv[col*4+k], inv[pivot*4+k] = inv[pivot*4+k], inv[col*4+k]
			}
		}
		d := a[col*4+col]
		for k := 0; k < 4; k++ {
			a[col*4+k] /= d
			inv[col*4+k] /= d
		}
		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			f := a[row*4+col]
			if f == 0 {
				continue
			}
			for k := 0; k < 4; k++ {
				a[row*4+k] -= f * a[col*4+k]
				inv[row*4+k] -= f * inv[col*4+k]
			}
		}
	}
	return inv
}

// Near reports whether every element of m and o differs by at most eps.
func (m Matrix) Near(o Matrix, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}
