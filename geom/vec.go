package geom

import "math"

// Vec2 is a 2D point or displacement.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience constructor for Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points.
func (v Vec2) Distance(w Vec2) float64 {
	return v.Sub(w).Length()
}

// Normalize returns the unit vector in the direction of v, or fallback when
// the length of v is below Epsilon.
func (v Vec2) Normalize(fallback Vec2) Vec2 {
	l := v.Length()
	if l < Epsilon {
		return fallback
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Perp returns v rotated by +90 degrees.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Rotate returns v rotated by angle radians around the origin.
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Lerp interpolates between v (t=0) and w (t=1).
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (w.X-v.X)*t, Y: v.Y + (w.Y-v.Y)*t}
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Near reports whether v and w are within eps of each other on both axes.
func (v Vec2) Near(w Vec2, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps && math.Abs(v.Y-w.Y) <= eps
}

// Vec3 returns v lifted to z = 0.
func (v Vec2) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y}
}

// Vec3 is a 3D point or displacement.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience constructor for Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Unit axes of the world coordinate system.
var (
	XAxis = Vec3{X: 1}
	YAxis = Vec3{Y: 1}
	ZAxis = Vec3{Z: 1}
)

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the distance between two points.
func (v Vec3) Distance(w Vec3) float64 {
	return v.Sub(w).Length()
}

// Normalize returns the unit vector in the direction of v, or fallback when
// the length of v is below Epsilon.
func (v Vec3) Normalize(fallback Vec3) Vec3 {
	l := v.Length()
	if l < Epsilon {
		return fallback
	}
	return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Lerp interpolates between v (t=0) and w (t=1).
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// XY drops the z component.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Near reports whether v and w are within eps of each other on every axis.
func (v Vec3) Near(w Vec3, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps && math.Abs(v.Y-w.Y) <= eps && math.Abs(v.Z-w.Z) <= eps
}
