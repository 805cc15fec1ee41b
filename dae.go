package texviewer

import (
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedDAE is returned when a DAE file's geometry can't be turned into triangles.
var ErrMalformedDAE = errors.New("malformed DAE geometry")

type daeAccessor struct {
	Stride int `xml:"stride,attr"`
}

type daeSource struct {
	ID          string      `xml:"id,attr"`
	StringArray string      `xml:"float_array"`
	Accessor    daeAccessor `xml:"technique_common>accessor"`
}

func (source daeSource) Parse() ([]float64, error) {
	split := strings.Fields(source.StringArray)
	data := make([]float64, 0, len(split))
	for _, v := range split {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: source %s: %w", ErrMalformedDAE, source.ID, err)
		}
		data = append(data, f)
	}
	return data, nil
}

type daeInput struct {
	Semantic string `xml:"semantic,attr"`
	Source   string `xml:"source,attr"`
	Offset   int    `xml:"offset,attr"`
	Set      int    `xml:"set,attr"`
}

type daeVertices struct {
	ID     string     `xml:"id,attr"`
	Inputs []daeInput `xml:"input"`
}

type daeTriangles struct {
	String string     `xml:"p"`
	Inputs []daeInput `xml:"input"`
}

type daeGeometry struct {
	Name      string         `xml:"name,attr"`
	ID        string         `xml:"id,attr"`
	Sources   []daeSource    `xml:"mesh>source"`
	Vertices  daeVertices    `xml:"mesh>vertices"`
	Triangles []daeTriangles `xml:"mesh>triangles"`
}

type daeLibraryGeometries struct {
	Geometries []daeGeometry `xml:"library_geometries>geometry"`
}

// DaeLoadOptions represents options one can use to tweak how .dae files are loaded.
type DaeLoadOptions struct {
	CorrectYUp bool // Whether to correct Z being up for Blender importing.
}

// DefaultDaeLoadOptions returns a default instance of DaeLoadOptions.
func DefaultDaeLoadOptions() *DaeLoadOptions {
	return &DaeLoadOptions{
		CorrectYUp: true,
	}
}

// LoadDAEFile takes a filepath to a .dae model file and returns the first geometry inside it as a Mesh.
// Only <triangles> elements are read; node transforms, materials, and normals are ignored.
func LoadDAEFile(path string, options *DaeLoadOptions) (*Mesh, error) {

	if fileData, err := os.ReadFile(path); err != nil {
		return nil, err
	} else {
		return LoadDAEData(fileData, options)
	}

}

// LoadDAEData takes a []byte consisting of the contents of a DAE file, and returns the first geometry inside it as a Mesh.
func LoadDAEData(data []byte, options *DaeLoadOptions) (*Mesh, error) {

	if options == nil {
		options = DefaultDaeLoadOptions()
	}

	daeGeo := &daeLibraryGeometries{}

	if err := xml.Unmarshal(data, daeGeo); err != nil {
		return nil, err
	}

	if len(daeGeo.Geometries) == 0 {
		return nil, ErrNoMesh
	}

	geo := daeGeo.Geometries[0]

	sources := map[string]daeSource{}
	for _, source := range geo.Sources {
		sources["#"+source.ID] = source
	}

	// The VERTEX input of a triangle list points at the <vertices> element, which in turn points at the positions
	positionSource := ""
	for _, input := range geo.Vertices.Inputs {
		if input.Semantic == "POSITION" {
			positionSource = input.Source
		}
	}

	verts := []Vertex{}

	for triIndex, tris := range geo.Triangles {

		stride := 0
		var posInput, uvInput *daeInput

		for i := range tris.Inputs {
			input := &tris.Inputs[i]
			if input.Offset < 0 {
				return nil, fmt.Errorf("%w: triangles %d of %s have a negative input offset", ErrMalformedDAE, triIndex, geo.Name)
			}
			stride = max(stride, input.Offset+1)
			switch input.Semantic {
			case "VERTEX":
				posInput = input
			case "TEXCOORD":
				if uvInput == nil || input.Set < uvInput.Set {
					uvInput = input
				}
			}
		}

		if stride == 0 || posInput == nil {
			return nil, fmt.Errorf("%w: triangles %d of %s have no VERTEX input", ErrMalformedDAE, triIndex, geo.Name)
		}

		positions, posStride, err := resolveDAESource(sources, positionSource, 3)
		if err != nil {
			return nil, err
		}

		var uvs []float64
		uvStride := 2
		if uvInput != nil {
			if uvs, uvStride, err = resolveDAESource(sources, uvInput.Source, 2); err != nil {
				return nil, err
			}
		}

		indices := []int{}
		for _, t := range strings.Fields(tris.String) {
			index, err := strconv.Atoi(t)
			if err != nil {
				return nil, fmt.Errorf("%w: triangles %d of %s: %w", ErrMalformedDAE, triIndex, geo.Name, err)
			}
			indices = append(indices, index)
		}

		if len(indices)%(stride*3) != 0 {
			return nil, fmt.Errorf("%w: triangles %d of %s have %d indices, which doesn't divide into whole triangles", ErrMalformedDAE, triIndex, geo.Name, len(indices))
		}

		for i := 0; i < len(indices); i += stride {

			vert := Vertex{}

			p := indices[i+posInput.Offset] * posStride
			if p < 0 || p+2 >= len(positions) {
				return nil, fmt.Errorf("%w: position index %d out of range", ErrMalformedDAE, indices[i+posInput.Offset])
			}
			vert.Position = NewVector(positions[p], positions[p+1], positions[p+2])

			if uvInput != nil {
				t := indices[i+uvInput.Offset] * uvStride
				if t < 0 || t+1 >= len(uvs) {
					return nil, fmt.Errorf("%w: texture coordinate index %d out of range", ErrMalformedDAE, indices[i+uvInput.Offset])
				}
				vert.UV = NewUV(uvs[t], uvs[t+1])
			}

			verts = append(verts, vert)

		}

	}

	if options.CorrectYUp {
		rotate := NewMatrix4Rotate(1, 0, 0, -math.Pi/2)
		for i := range verts {
			verts[i].Position = rotate.MultVec(verts[i].Position)
		}
	}

	name := geo.Name
	if name == "" {
		name = "DAE Mesh"
	}

	return NewMesh(name, verts...), nil

}

func resolveDAESource(sources map[string]daeSource, id string, defaultStride int) ([]float64, int, error) {

	source, exists := sources[id]
	if !exists {
		return nil, 0, fmt.Errorf("%w: no source named %q", ErrMalformedDAE, id)
	}

	data, err := source.Parse()
	if err != nil {
		return nil, 0, err
	}

	stride := max(source.Accessor.Stride, defaultStride)

	return data, stride, nil

}
