package geom

import "math"

// Bounds is an axis-aligned 2D rectangle. The zero value is empty.
type Bounds struct {
	Min, Max Vec2
	Valid    bool
}

// BoundsOf returns the bounds of the given points.
func BoundsOf(pts ...Vec2) Bounds {
	var b Bounds
	for _, p := range pts {
		b = b.Extend(p)
	}
	return b
}

// Extend returns b grown to include p. Non-finite points are ignored.
func (b Bounds) Extend(p Vec2) Bounds {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return b
	}
	if !b.Valid {
		return Bounds{Min: p, Max: p, Valid: true}
	}
	return Bounds{
		Min:   Vec2{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max:   Vec2{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
		Valid: true,
	}
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if !o.Valid {
		return b
	}
	if !b.Valid {
		return o
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Intersects reports whether b and o overlap (touching counts).
func (b Bounds) Intersects(o Bounds) bool {
	if !b.Valid || !o.Valid {
		return false
	}
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Vec2) bool {
	return b.Valid && p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	if !b.Valid {
		return 0
	}
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	if !b.Valid {
		return 0
	}
	return b.Max.Y - b.Min.Y
}

// Center returns the midpoint of b.
func (b Bounds) Center() Vec2 {
	return b.Min.Lerp(b.Max, 0.5)
}

// Corners returns the four corners counter-clockwise from Min.
func (b Bounds) Corners() [4]Vec2 {
	return [4]Vec2{b.Min, {X: b.Max.X, Y: b.Min.Y}, b.Max, {X: b.Min.X, Y: b.Max.Y}}
}

// Transform returns the bounds of b's corners under m.
func (b Bounds) Transform(m Matrix) Bounds {
	if !b.Valid {
		return b
	}
	var out Bounds
	for _, c := range b.Corners() {
		out = out.Extend(m.TransformPoint2(c))
	}
	return out
}

// Inflate returns b grown by d on every side.
func (b Bounds) Inflate(d float64) Bounds {
	if !b.Valid {
		return b
	}
	return Bounds{
		Min:   Vec2{X: b.Min.X - d, Y: b.Min.Y - d},
		Max:   Vec2{X: b.Max.X + d, Y: b.Max.Y + d},
		Valid: true,
	}
}
