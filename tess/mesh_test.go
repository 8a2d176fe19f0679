package tess

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wieslawsoltes/DxfParser-sub001/geom"
)

func cube() Mesh {
	v := []geom.Vec3{
		geom.V3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(1, 1, 0), geom.V3(0, 1, 0),
		geom.V3(0, 0, 1), geom.V3(1, 0, 1), geom.V3(1, 1, 1), geom.V3(0, 1, 1),
	}
	return Mesh{
		Vertices: v,
		Faces: []Face{
			{Indices: []int{0, 3, 2, 1}},
			{Indices: []int{4, 5, 6, 7}},
			{Indices: []int{0, 1, 5, 4}},
			{Indices: []int{1, 2, 6, 5}},
			{Indices: []int{2, 3, 7, 6}},
			{Indices: []int{3, 0, 4, 7}},
		},
	}
}

func TestTriangulateMeshCube(t *testing.T) {
	res := TriangulateMesh(cube())
	assert.Len(t, res.Triangles, 12)
	assert.Len(t, res.Edges, 12)
}

func TestTriangulateMeshConcaveFace(t *testing.T) {
	// L shape standing in the XZ plane
	m := Mesh{
		Vertices: []geom.Vec3{
			geom.V3(0, 0, 0), geom.V3(4, 0, 0), geom.V3(4, 0, 1),
			geom.V3(1, 0, 1), geom.V3(1, 0, 4), geom.V3(0, 0, 4),
		},
		Faces: []Face{{Indices: []int{0, 1, 2, 3, 4, 5}}},
	}
	res := TriangulateMesh(m)
	assert.Len(t, res.Triangles, 4)
}

func TestTriangulateMeshSkipsInvalidFaces(t *testing.T) {
	m := Mesh{
		Vertices: []geom.Vec3{geom.V3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(0, 1, 0)},
		Faces: []Face{
			{Indices: []int{0, 1, 7}},
			{Indices: []int{0, 0, 1}},
			{Indices: []int{0, 1, 2}, HiddenEdges: []bool{false, true, true}},
		},
	}
	res := TriangulateMesh(m)
	assert.Len(t, res.Triangles, 1)
	assert.Equal(t, [][2]int{{0, 1}}, res.Edges)
}

func TestGridFaces(t *testing.T) {
	assert.Len(t, GridFaces(3, 4, false, false), 6)
	assert.Len(t, GridFaces(3, 4, true, true), 12)
	assert.Nil(t, GridFaces(1, 4, false, false))
}
