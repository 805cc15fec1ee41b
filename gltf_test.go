package texviewer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// newQuadDocument builds a GLTF document holding a single indexed quad.
func newQuadDocument(mode gltf.PrimitiveMode) *gltf.Document {

	doc := gltf.NewDocument()

	positions := modeler.WritePosition(doc, [][3]float32{{-1, -1, 0}, {1, -1, 0}, {-1, 1, 0}, {1, 1, 0}})
	texCoords := modeler.WriteTextureCoord(doc, [][2]float32{{0, 1}, {1, 1}, {0, 0}, {1, 0}})
	indices := modeler.WriteIndices(doc, []uint16{0, 1, 2, 2, 1, 3})

	doc.Meshes = []*gltf.Mesh{{
		Name: "Quad",
		Primitives: []*gltf.Primitive{{
			Indices: &indices,
			Mode:    mode,
			Attributes: map[string]int{
				gltf.POSITION:   positions,
				gltf.TEXCOORD_0: texCoords,
			},
		}},
	}}

	return doc

}

func BenchmarkMeshFromGLTFDocument(b *testing.B) {

	b.StopTimer()
	doc := newQuadDocument(gltf.PrimitiveTriangles)
	b.StartTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := meshFromGLTFDocument(doc); err != nil {
			b.Fatal(err)
		}
	}

}

func TestMeshFromGLTFDocument(t *testing.T) {

	mesh, err := meshFromGLTFDocument(newQuadDocument(gltf.PrimitiveTriangles))
	if err != nil {
		t.Fatal(err)
	}

	if mesh.Name != "Quad" {
		t.Fatalf("expected the Mesh to be named Quad, got %q", mesh.Name)
	}

	if mesh.TriangleCount() != 2 {
		t.Fatalf("expected 2 triangles, got %d", mesh.TriangleCount())
	}

	// Index 3 is the top-right corner; GLTF's V runs downwards, so it flips to 1
	a, b, c := mesh.Triangle(1)
	if !a.Position.Equals(NewVector(-1, 1, 0)) || !b.Position.Equals(NewVector(1, -1, 0)) || !c.Position.Equals(NewVector(1, 1, 0)) {
		t.Fatalf("second triangle doesn't follow the index buffer: %v, %v, %v", a.Position, b.Position, c.Position)
	}

	if !c.UV.Equals(NewUV(1, 1), 1e-6) {
		t.Fatalf("expected the top-right corner to have a UV of (1, 1), got %v", c.UV)
	}

	if mesh.Dimensions.Width() != 2 || mesh.Dimensions.Height() != 2 {
		t.Fatalf("unexpected bounds %v", mesh.Dimensions)
	}

}

func TestMeshFromGLTFDocumentErrors(t *testing.T) {

	if _, err := meshFromGLTFDocument(gltf.NewDocument()); !errors.Is(err, ErrNoMesh) {
		t.Fatalf("expected ErrNoMesh, got %v", err)
	}

	if _, err := meshFromGLTFDocument(newQuadDocument(gltf.PrimitiveLines)); !errors.Is(err, ErrUnsupportedPrimitive) {
		t.Fatalf("expected ErrUnsupportedPrimitive, got %v", err)
	}

	doc := newQuadDocument(gltf.PrimitiveTriangles)
	delete(doc.Meshes[0].Primitives[0].Attributes, gltf.POSITION)

	if _, err := meshFromGLTFDocument(doc); !errors.Is(err, ErrUnsupportedPrimitive) {
		t.Fatalf("expected ErrUnsupportedPrimitive for a primitive without positions, got %v", err)
	}

}

func TestLoadGLTFData(t *testing.T) {

	buf := &bytes.Buffer{}

	encoder := gltf.NewEncoder(buf)
	encoder.AsBinary = true

	if err := encoder.Encode(newQuadDocument(gltf.PrimitiveTriangles)); err != nil {
		t.Fatal(err)
	}

	mesh, err := LoadGLTFData(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}

	if mesh.TriangleCount() != 2 {
		t.Fatalf("expected 2 triangles, got %d", mesh.TriangleCount())
	}

	if _, err := LoadGLTFData([]byte("not a gltf file")); err == nil {
		t.Fatal("expected an error decoding garbage")
	}

}
