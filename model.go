package texviewer

import "github.com/hajimehoshi/ebiten/v2"

// filterModes are the texture filters a Model cycles through.
var filterModes = []ebiten.Filter{
	ebiten.FilterNearest,
	ebiten.FilterLinear,
}

// FilterName returns a human-readable name for the ebiten.Filter given.
func FilterName(filter ebiten.Filter) string {
	switch filter {
	case ebiten.FilterNearest:
		return "Nearest"
	case ebiten.FilterLinear:
		return "Linear"
	}
	return "Unknown"
}

// minTextureAddition keeps the texture multiple (1 + addition / 10) above zero.
const minTextureAddition = -9

// A Model is a Mesh as shown in the viewer, along with the texture settings the user can change while it's visible.
type Model struct {
	Name      string
	Mesh      *Mesh
	Transform Matrix4

	// ShowMipmapLevels tints the Model by how far its texture is minified, one color per mipmap level.
	ShowMipmapLevels bool

	filterIndex     int
	textureAddition int
}

// NewModel creates a new Model to display the Mesh given, named after the Mesh.
func NewModel(mesh *Mesh) *Model {
	return &Model{
		Name:      mesh.Name,
		Mesh:      mesh,
		Transform: NewMatrix4(),
	}
}

// Filter returns the texture filter currently used to draw the Model.
func (model *Model) Filter() ebiten.Filter {
	return filterModes[model.filterIndex]
}

// NextFiltering switches to the next texture filter, wrapping around.
func (model *Model) NextFiltering() {
	model.filterIndex = (model.filterIndex + 1) % len(filterModes)
}

// PrevFiltering switches to the previous texture filter, wrapping around.
func (model *Model) PrevFiltering() {
	if model.filterIndex == 0 {
		model.filterIndex = len(filterModes)
	}
	model.filterIndex--
}

// ToggleMipmapLevels turns the mipmap level tint on or off.
func (model *Model) ToggleMipmapLevels() {
	model.ShowMipmapLevels = !model.ShowMipmapLevels
}

// IncreaseMultiple tiles the texture more times across the Model.
func (model *Model) IncreaseMultiple() {
	model.textureAddition++
}

// DecreaseMultiple tiles the texture fewer times across the Model, stopping at a multiple of 0.1.
func (model *Model) DecreaseMultiple() {
	if model.textureAddition > minTextureAddition {
		model.textureAddition--
	}
}

// TextureMultiple returns how many times the texture is repeated along each UV axis.
func (model *Model) TextureMultiple() float64 {
	return 1 + float64(model.textureAddition)/10
}

// Address returns the texture addressing mode to draw the Model with. It's always repeating; seam-corrected
// triangles on a sphere rely on it, as does tiling the texture with a multiple above 1.
func (model *Model) Address() ebiten.Address {
	return ebiten.AddressRepeat
}
