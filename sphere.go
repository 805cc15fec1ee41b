package texviewer

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultSphereDepth is the number of subdivision passes used for the viewer's sphere (6144 triangles).
	DefaultSphereDepth = 5
	// MaxSphereDepth is the deepest subdivision GenerateSphere accepts. Triangle count grows as 6 * 4^depth,
	// so depth 9 is already around 1.5 million triangles.
	MaxSphereDepth = 9
)

// parallelPassThreshold is the input triangle count at which SubdivisionPass spreads its work across goroutines.
const parallelPassThreshold = 1536

// ErrInvalidDepth is returned by GenerateSphere when asked for a negative (or unreasonably large) subdivision depth.
var ErrInvalidDepth = errors.New("invalid sphere subdivision depth")

// ErrDegenerateTriangle is returned by SubdivisionPass when a corner of a triangle isn't a finite, non-zero position,
// which would project to NaN on the sphere.
var ErrDegenerateTriangle = errors.New("degenerate sphere triangle")

// SphericalVertex is a point on the unit sphere along with the longitude / latitude texture coordinate derived from it.
type SphericalVertex struct {
	Position Vector
	UV       UV
}

// NewSphericalVertex projects v onto the unit sphere and derives its UV from longitude (U) and latitude (V).
// U is 0.5 facing +Z and wraps around from 1 to 0 facing -Z; V is 1 at the north pole (+Y) and 0 at the south pole.
func NewSphericalVertex(v Vector) SphericalVertex {
	pos := v.Unit()
	return SphericalVertex{
		Position: pos,
		UV: UV{
			U: (1 + math.Atan2(pos.X, pos.Z)/math.Pi) / 2,
			V: 1 - math.Acos(clamp(pos.Y, -1, 1))/math.Pi,
		},
	}
}

// Midpoint returns the chord midpoint of a and b pushed back out onto the sphere. The UV is derived fresh from
// the new position rather than interpolated, which is why triangles need seam correction.
func Midpoint(a, b SphericalVertex) SphericalVertex {
	return NewSphericalVertex(a.Position.Add(b.Position))
}

// SphereTriangle is one face of a generated sphere. Vertex order gives the winding, and also decides which vertex
// gets its U shifted when the triangle straddles the texture seam.
type SphereTriangle struct {
	A, B, C SphericalVertex
}

// NewSphereTriangle creates a SphereTriangle out of the three vertices given, correcting its texture seam.
func NewSphereTriangle(a, b, c SphericalVertex) SphereTriangle {
	tri := SphereTriangle{A: a, B: b, C: c}
	tri.correctSeam()
	return tri
}

func uDistance(p, q SphericalVertex, offset float64) float64 {
	return math.Abs(p.UV.U + offset - q.UV.U)
}

// correctSeam shifts at most one vertex's U by a full texture width when doing so brings it closer to both of the
// other vertices. Rules are checked in a fixed order and the first match wins.
func (tri *SphereTriangle) correctSeam() {

	a2b := uDistance(tri.A, tri.B, 0)
	a2c := uDistance(tri.A, tri.C, 0)
	b2c := uDistance(tri.B, tri.C, 0)

	for _, offset := range [2]float64{1, -1} {
		if uDistance(tri.A, tri.B, offset) < a2b && uDistance(tri.A, tri.C, offset) < a2c {
			tri.A.UV.U += offset
			return
		}
	}

	for _, offset := range [2]float64{1, -1} {
		if uDistance(tri.B, tri.A, offset) < a2b && uDistance(tri.B, tri.C, offset) < b2c {
			tri.B.UV.U += offset
			return
		}
	}

	for _, offset := range [2]float64{1, -1} {
		if uDistance(tri.C, tri.A, offset) < a2c && uDistance(tri.C, tri.B, offset) < b2c {
			tri.C.UV.U += offset
			return
		}
	}

}

// Vertices returns the triangle's three vertices in order.
func (tri SphereTriangle) Vertices() [3]SphericalVertex {
	return [3]SphericalVertex{tri.A, tri.B, tri.C}
}

// MaxUSpan returns the largest difference in U between any two of the triangle's vertices.
func (tri SphereTriangle) MaxUSpan() float64 {
	return math.Max(
		math.Abs(tri.A.UV.U-tri.B.UV.U),
		math.Max(math.Abs(tri.A.UV.U-tri.C.UV.U), math.Abs(tri.B.UV.U-tri.C.UV.U)),
	)
}

// Subdivide splits the triangle into four, using the edge midpoints as the new corners. The center triangle
// keeps the same winding as the outer three.
func Subdivide(tri SphereTriangle) [4]SphereTriangle {
	f := Midpoint(tri.A, tri.B)
	g := Midpoint(tri.B, tri.C)
	h := Midpoint(tri.A, tri.C)
	return [4]SphereTriangle{
		NewSphereTriangle(tri.A, f, h),
		NewSphereTriangle(f, g, h),
		NewSphereTriangle(g, tri.C, h),
		NewSphereTriangle(f, tri.B, g),
	}
}

// SubdivisionPass subdivides every triangle given, returning a new slice four times as long. The four triangles
// produced from tris[i] are found at [4*i, 4*i+4) in the result. Large passes are split across goroutines; the
// output is the same either way.
func SubdivisionPass(tris []SphereTriangle) ([]SphereTriangle, error) {
	return subdivisionPass(tris, parallelPassThreshold)
}

func subdivisionPass(tris []SphereTriangle, threshold int) ([]SphereTriangle, error) {

	out := make([]SphereTriangle, len(tris)*4)

	if len(tris) < threshold {
		if err := subdivideRange(tris, out, 0, len(tris)); err != nil {
			return nil, err
		}
		return out, nil
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(tris) + workers - 1) / workers

	var group errgroup.Group
	group.SetLimit(workers)

	for start := 0; start < len(tris); start += chunk {
		start, end := start, min(start+chunk, len(tris))
		group.Go(func() error {
			return subdivideRange(tris, out, start, end)
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return out, nil

}

func subdivideRange(tris, out []SphereTriangle, start, end int) error {
	for i := start; i < end; i++ {
		for _, v := range tris[i].Vertices() {
			if !validSpherePosition(v.Position) {
				return fmt.Errorf("%w: triangle %d has a corner at %v", ErrDegenerateTriangle, i, v.Position)
			}
		}
		divided := Subdivide(tris[i])
		copy(out[i*4:i*4+4], divided[:])
	}
	return nil
}

func validSpherePosition(v Vector) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return v.Magnitude() > 0
}

// SeedBipyramid returns the six triangles of the depth 0 sphere: a pole at each end of the Y axis, and three
// points spaced 120 degrees apart around the equator. All faces wind outwards.
func SeedBipyramid() []SphereTriangle {

	s32 := math.Sqrt(3) / 2

	a := NewSphericalVertex(NewVector(0, 0, 1))
	b := NewSphericalVertex(NewVector(s32, 0, -0.5))
	c := NewSphericalVertex(NewVector(-s32, 0, -0.5))
	d := NewSphericalVertex(NewVector(0, 1, 0))
	e := NewSphericalVertex(NewVector(0, -1, 0))

	return []SphereTriangle{
		NewSphereTriangle(a, b, d),
		NewSphereTriangle(b, c, d),
		NewSphereTriangle(c, a, d),
		NewSphereTriangle(b, a, e),
		NewSphereTriangle(c, b, e),
		NewSphereTriangle(a, c, e),
	}

}

// SphereMesh is a generated geodesic sphere. Every triangle owns its own copies of its vertices, since the same
// point on the sphere can need a different U in triangles on either side of the seam.
type SphereMesh struct {
	Depth     int
	Triangles []SphereTriangle
}

// GenerateSphere builds a unit sphere by subdividing the seed bipyramid depth times; the result has 6 * 4^depth triangles.
// Generation is deterministic for a given depth.
func GenerateSphere(depth int) (*SphereMesh, error) {

	if depth < 0 || depth > MaxSphereDepth {
		return nil, fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidDepth, depth, MaxSphereDepth)
	}

	tris := SeedBipyramid()
	for i := 0; i < depth; i++ {
		var err error
		if tris, err = SubdivisionPass(tris); err != nil {
			return nil, err
		}
	}

	return &SphereMesh{Depth: depth, Triangles: tris}, nil

}

// TriangleCount returns the number of triangles in the SphereMesh.
func (sphere *SphereMesh) TriangleCount() int {
	return len(sphere.Triangles)
}

// Flatten returns the SphereMesh as parallel per-vertex position and UV slices, three entries per triangle in order,
// ready to be uploaded without an index buffer. The SphereMesh isn't modified.
func (sphere *SphereMesh) Flatten() ([]Vector, []UV) {

	positions := make([]Vector, 0, len(sphere.Triangles)*3)
	uvs := make([]UV, 0, len(sphere.Triangles)*3)

	for _, tri := range sphere.Triangles {
		positions = append(positions, tri.A.Position, tri.B.Position, tri.C.Position)
		uvs = append(uvs, tri.A.UV, tri.B.UV, tri.C.UV)
	}

	return positions, uvs

}
