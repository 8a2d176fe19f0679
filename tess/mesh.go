package tess

import (
	"math"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

// Face is a planar mesh face given as vertex indices. HiddenEdges[i] hides
// the edge from Indices[i] to Indices[i+1].
type Face struct {
	Indices     []int
	HiddenEdges []bool
}

// Mesh is a polygon mesh in 3D.
type Mesh struct {
	Vertices []geom.Vec3
	Faces    []Face
}

// MeshResult is a triangulated mesh. Indices refer to Mesh.Vertices.
type MeshResult struct {
	Triangles [][3]int
	Edges     [][2]int
}

// TriangulateMesh triangulates each face independently: triangles pass
// through, convex faces are fanned, and concave faces are ear-clipped after
// projection onto their dominant axis plane. Faces referencing missing
// vertices or with fewer than three distinct vertices are skipped. Visible
// edges are returned once each.
func TriangulateMesh(m Mesh) MeshResult {
	var res MeshResult
	seen := make(map[[2]int]bool)
	for _, f := range m.Faces {
		idx := validFace(f.Indices, len(m.Vertices))
		if len(idx) < 2 {
			continue
		}
		for i := range idx {
			if i < len(f.HiddenEdges) && f.HiddenEdges[i] {
				continue
			}
			a, b := idx[i], idx[(i+1)%len(idx)]
			if a == b || (len(idx) == 2 && i == 1) {
				continue
			}
			key := [2]int{min(a, b), max(a, b)}
			if !seen[key] {
				seen[key] = true
				res.Edges = append(res.Edges, [2]int{a, b})
			}
		}
		if len(idx) < 3 {
			continue
		}
		res.Triangles = append(res.Triangles, triangulateFace(m.Vertices, idx)...)
	}
	return res
}

// validFace drops out-of-range indices and consecutive repeats.
func validFace(indices []int, n int) []int {
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= n {
			return nil
		}
		if len(out) > 0 && out[len(out)-1] == i {
			continue
		}
		out = append(out, i)
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

func triangulateFace(verts []geom.Vec3, idx []int) [][3]int {
	if len(idx) == 3 {
		return [][3]int{{idx[0], idx[1], idx[2]}}
	}
	pts := projectFace(verts, idx)
	if isConvex(pts) {
		tris := make([][3]int, 0, len(idx)-2)
		for i := 1; i < len(idx)-1; i++ {
			tris = append(tris, [3]int{idx[0], idx[i], idx[i+1]})
		}
		return tris
	}
	coords := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		coords = append(coords, p.X, p.Y)
	}
	flat := Earcut(coords, nil)
	if len(flat) == 0 {
		flat = fan(len(idx))
	}
	tris := make([][3]int, 0, len(flat)/3)
	for i := 0; i+2 < len(flat); i += 3 {
		tris = append(tris, [3]int{idx[flat[i]], idx[flat[i+1]], idx[flat[i+2]]})
	}
	return tris
}

// FaceNormal returns the Newell normal of a polygon, or +Z when degenerate.
func FaceNormal(pts []geom.Vec3) geom.Vec3 {
	var n geom.Vec3
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n.Normalize(geom.ZAxis)
}

// projectFace drops the axis along which the face normal is largest.
func projectFace(verts []geom.Vec3, idx []int) []geom.Vec2 {
	pts3 := make([]geom.Vec3, len(idx))
	for i, k := range idx {
		pts3[i] = verts[k]
	}
	n := FaceNormal(pts3)
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	out := make([]geom.Vec2, len(pts3))
	for i, p := range pts3 {
		switch {
		case az >= ax && az >= ay:
			out[i] = geom.Vec2{X: p.X, Y: p.Y}
		case ax >= ay:
			out[i] = geom.Vec2{X: p.Y, Y: p.Z}
		default:
			out[i] = geom.Vec2{X: p.Z, Y: p.X}
		}
	}
	return out
}

// isConvex reports whether every turn of the ring has the same sign.
func isConvex(pts []geom.Vec2) bool {
	var sign float64
	for i := range pts {
		a, b, c := pts[i], pts[(i+1)%len(pts)], pts[(i+2)%len(pts)]
		cross := b.Sub(a).Cross(c.Sub(b))
		if math.Abs(cross) < geom.Epsilon {
			continue
		}
		if sign == 0 {
			sign = cross
			continue
		}
		if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

// GridFaces returns quad faces for an m×n vertex grid stored row-major,
// optionally closed in either direction.
func GridFaces(m, n int, closedM, closedN bool) []Face {
	if m < 2 || n < 2 {
		return nil
	}
	rows, cols := m-1, n-1
	if closedM {
		rows = m
	}
	if closedN {
		cols = n
	}
	faces := make([]Face, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			i1, j1 := (i+1)%m, (j+1)%n
			faces = append(faces, Face{Indices: []int{i*n + j, i*n + j1, i1*n + j1, i1*n + j}})
		}
	}
	return faces
}
