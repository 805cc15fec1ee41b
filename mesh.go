package texviewer

import (
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrBufferMismatch is returned when position and UV buffers can't be paired up into triangles.
var ErrBufferMismatch = errors.New("position and UV buffers don't describe whole triangles")

// Dimensions represents the minimum and maximum spatial corners of a Mesh.
type Dimensions [2]Vector

// Center returns the center point inbetween the two corners of the dimension set.
func (dim Dimensions) Center() Vector {
	return dim[0].Add(dim[1]).Scale(0.5)
}

func (dim Dimensions) Width() float64 {
	return dim[1].X - dim[0].X
}

func (dim Dimensions) Height() float64 {
	return dim[1].Y - dim[0].Y
}

func (dim Dimensions) Depth() float64 {
	return dim[1].Z - dim[0].Z
}

// MaxSpan returns the maximum span out of width, height, and depth.
func (dim Dimensions) MaxSpan() float64 {
	return math.Max(math.Max(dim.Width(), dim.Height()), dim.Depth())
}

// Vertex is a single corner of a triangle in a Mesh. UV uses a bottom-left origin (V increases upwards), like OpenGL.
type Vertex struct {
	Position Vector
	UV       UV
}

// NewVertex creates a new Vertex with the position and UV values given.
func NewVertex(x, y, z, u, v float64) Vertex {
	return Vertex{Position: NewVector(x, y, z), UV: NewUV(u, v)}
}

// Mesh is a textured triangle list. Vertices aren't shared between triangles; every three consecutive
// Vertices form one triangle.
type Mesh struct {
	Name            string
	Vertices        []Vertex
	Image           *ebiten.Image // The texture to draw the Mesh with; if nil, a plain white texture is used
	BackfaceCulling bool          // Whether triangles facing away from the camera are skipped; only useful for closed meshes
	Dimensions      Dimensions
}

// NewMesh takes a name and a number of Vertex instances divisible by 3, and returns a new Mesh.
// NewMesh will panic if the Vertices don't make up whole triangles.
func NewMesh(name string, verts ...Vertex) *Mesh {

	if len(verts)%3 != 0 {
		panic("Error: NewMesh() has not been given a correct number of vertices to constitute triangles (it needs to be divisible by 3).")
	}

	mesh := &Mesh{
		Name:     name,
		Vertices: append([]Vertex{}, verts...),
	}

	mesh.UpdateBounds()

	return mesh

}

// NewMeshFromBuffers pairs up per-vertex positions and UVs into a new Mesh. Both slices must be the same length, and
// that length must be divisible by 3.
func NewMeshFromBuffers(name string, positions []Vector, uvs []UV) (*Mesh, error) {

	if len(positions) != len(uvs) {
		return nil, fmt.Errorf("%w: %d positions, %d UVs", ErrBufferMismatch, len(positions), len(uvs))
	}

	if len(positions)%3 != 0 {
		return nil, fmt.Errorf("%w: %d vertices isn't a multiple of 3", ErrBufferMismatch, len(positions))
	}

	verts := make([]Vertex, len(positions))
	for i := range positions {
		verts[i] = Vertex{Position: positions[i], UV: uvs[i]}
	}

	return NewMesh(name, verts...), nil

}

// TriangleCount returns the number of triangles in the Mesh.
func (mesh *Mesh) TriangleCount() int {
	return len(mesh.Vertices) / 3
}

// Triangle returns the three vertices of the triangle at the index given.
func (mesh *Mesh) Triangle(index int) (Vertex, Vertex, Vertex) {
	i := index * 3
	return mesh.Vertices[i], mesh.Vertices[i+1], mesh.Vertices[i+2]
}

// UpdateBounds recalculates the Mesh's Dimensions from its vertex positions.
func (mesh *Mesh) UpdateBounds() {

	if len(mesh.Vertices) == 0 {
		mesh.Dimensions = Dimensions{}
		return
	}

	minCorner := mesh.Vertices[0].Position
	maxCorner := minCorner

	for _, v := range mesh.Vertices[1:] {
		minCorner = minCorner.Min(v.Position)
		maxCorner = maxCorner.Max(v.Position)
	}

	mesh.Dimensions = Dimensions{minCorner, maxCorner}

}

// NewPlaneMesh creates a 2x2 square facing +Z, made of two triangles, with the texture stretched across it once.
func NewPlaneMesh() *Mesh {

	return NewMesh("Plane",
		NewVertex(-1, -1, 0, 0, 0),
		NewVertex(1, -1, 0, 1, 0),
		NewVertex(-1, 1, 0, 0, 1),

		NewVertex(-1, 1, 0, 0, 1),
		NewVertex(1, -1, 0, 1, 0),
		NewVertex(1, 1, 0, 1, 1),
	)

}

// NewCubeMesh creates a 2x2x2 cube centered on the origin; each face shows the whole texture.
func NewCubeMesh() *Mesh {

	corners := []Vector{
		{-1, -1, 1},
		{1, -1, 1},
		{-1, 1, 1},
		{1, 1, 1},
		{1, -1, -1},
		{-1, -1, -1},
		{1, 1, -1},
		{-1, 1, -1},
	}

	// Each face is four corner indices: bottom-left, bottom-right, top-left, top-right (as seen from outside).
	faces := [][4]int{
		{0, 1, 2, 3}, // Front
		{4, 5, 6, 7}, // Back
		{2, 3, 7, 6}, // Up
		{5, 4, 0, 1}, // Down
		{5, 0, 7, 2}, // Left
		{1, 4, 3, 6}, // Right
	}

	faceUVs := []UV{{0, 0}, {1, 0}, {0, 1}, {0, 1}, {1, 0}, {1, 1}}

	verts := make([]Vertex, 0, len(faces)*6)

	for _, face := range faces {
		order := [6]int{face[0], face[1], face[2], face[2], face[1], face[3]}
		for i, cornerIndex := range order {
			verts = append(verts, Vertex{Position: corners[cornerIndex], UV: faceUVs[i]})
		}
	}

	mesh := NewMesh("Cube", verts...)
	mesh.BackfaceCulling = true
	return mesh

}

// NewSphereMesh generates a geodesic sphere subdivided depth times and wraps it in a Mesh. The texture should
// be an equirectangular (longitude / latitude) image; it must be drawn with repeating texture addressing, since
// triangles on the seam have U values just outside of 0-1.
func NewSphereMesh(depth int) (*Mesh, error) {

	sphere, err := GenerateSphere(depth)
	if err != nil {
		return nil, err
	}

	positions, uvs := sphere.Flatten()

	mesh, err := NewMeshFromBuffers(fmt.Sprintf("Sphere (depth %d)", depth), positions, uvs)
	if err != nil {
		return nil, err
	}

	mesh.BackfaceCulling = true

	return mesh, nil

}
