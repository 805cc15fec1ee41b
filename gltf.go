package texviewer

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrUnsupportedPrimitive is returned when a GLTF mesh uses something other than plain triangles.
var ErrUnsupportedPrimitive = errors.New("unsupported GLTF primitive")

// ErrNoMesh is returned when a model file (GLTF or DAE) doesn't contain any meshes.
var ErrNoMesh = errors.New("file contains no meshes")

// LoadGLTFFile loads the first mesh out of the .gltf or .glb file at the path given.
func LoadGLTFFile(path string) (*Mesh, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return LoadGLTFData(fileData)

}

// LoadGLTFData loads the first mesh out of .gltf or .glb file data. All of the mesh's triangle primitives are
// combined into one Mesh; the first texture coordinate set is used for UVs (or zeroes, if it has none).
// Indexed primitives are expanded, so every triangle gets its own vertices.
func LoadGLTFData(data []byte) (*Mesh, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, err
	}

	return meshFromGLTFDocument(doc)

}

func meshFromGLTFDocument(doc *gltf.Document) (*Mesh, error) {

	if len(doc.Meshes) == 0 {
		return nil, ErrNoMesh
	}

	gltfMesh := doc.Meshes[0]

	verts := []Vertex{}

	for primIndex, v := range gltfMesh.Primitives {

		if v.Mode != gltf.PrimitiveTriangles {
			return nil, fmt.Errorf("%w: mesh %q primitive %d has mode %v", ErrUnsupportedPrimitive, gltfMesh.Name, primIndex, v.Mode)
		}

		posAccessor, posExists := v.Attributes[gltf.POSITION]
		if !posExists {
			return nil, fmt.Errorf("%w: mesh %q primitive %d has no positions", ErrUnsupportedPrimitive, gltfMesh.Name, primIndex)
		}

		posBuffer := [][3]float32{}
		vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], posBuffer)

		if err != nil {
			return nil, err
		}

		vertexData := make([]Vertex, len(vertPos))

		for i, p := range vertPos {
			vertexData[i].Position = NewVector(float64(p[0]), float64(p[1]), float64(p[2]))
		}

		if texCoordAccessor, texCoordExists := v.Attributes[gltf.TEXCOORD_0]; texCoordExists {

			uvBuffer := [][2]float32{}

			texCoords, err := modeler.ReadTextureCoord(doc, doc.Accessors[texCoordAccessor], uvBuffer)

			if err != nil {
				return nil, err
			}

			// GLTF UVs have a top-left origin
			for i, uv := range texCoords {
				vertexData[i].UV = NewUV(float64(uv[0]), 1-float64(uv[1]))
			}

		}

		if v.Indices == nil {

			if len(vertexData)%3 != 0 {
				return nil, fmt.Errorf("%w: mesh %q primitive %d has %d vertices", ErrBufferMismatch, gltfMesh.Name, primIndex, len(vertexData))
			}

			verts = append(verts, vertexData...)
			continue

		}

		indexBuffer := []uint32{}

		indices, err := modeler.ReadIndices(doc, doc.Accessors[*v.Indices], indexBuffer)

		if err != nil {
			return nil, err
		}

		if len(indices)%3 != 0 {
			return nil, fmt.Errorf("%w: mesh %q primitive %d has %d indices", ErrBufferMismatch, gltfMesh.Name, primIndex, len(indices))
		}

		for _, index := range indices {
			if int(index) >= len(vertexData) {
				return nil, fmt.Errorf("%w: mesh %q primitive %d index %d out of range", ErrBufferMismatch, gltfMesh.Name, primIndex, index)
			}
			verts = append(verts, vertexData[index])
		}

	}

	name := gltfMesh.Name
	if name == "" {
		name = "GLTF Mesh"
	}

	return NewMesh(name, verts...), nil

}
