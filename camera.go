package texviewer

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

// MaxTriangleCount is the most triangles drawn in a single DrawTriangles call; uint16 indices cap a batch at 65535 vertices.
const MaxTriangleCount = 21845

const (
	// AngleSensitivity is how far (in radians) the Camera orbits per unit passed to SetAngles (usually a pixel of mouse movement).
	AngleSensitivity = 0.005
	// ZoomDuration is how long (in seconds) the Camera takes to ease to a new distance.
	ZoomDuration = 0.15

	maxPitch      = math.Pi/2 - 0.01
	zoomInFactor  = 0.9
	zoomOutFactor = 1.1
)

var defaultImg = ebiten.NewImage(1, 1)

// mipmapLevelShaderText samples the texture with wrapping and tints it by the mipmap level a GPU would pick for each
// pixel: the log2 of how many texels one screen pixel steps across. Level 0 (magnified or 1:1) is left untinted,
// then red, green, blue, and yellow for level 4 and beyond.
var mipmapLevelShaderText = []byte(
	`package main
	//kage:unit pixels

	func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {

		dx := dfdx(srcPos)
		dy := dfdy(srcPos)
		level := 0.5 * log2(max(max(dot(dx, dx), dot(dy, dy)), 1))

		origin := imageSrc0Origin()
		tex := imageSrc0At(mod(srcPos-origin, imageSrc0Size()) + origin)

		tint := tex.rgb
		if level >= 4 {
			tint = vec3(1, 1, 0) * tex.a
		} else if level >= 3 {
			tint = vec3(0.2, 0.4, 1) * tex.a
		} else if level >= 2 {
			tint = vec3(0.2, 1, 0.2) * tex.a
		} else if level >= 1 {
			tint = vec3(1, 0.2, 0.2) * tex.a
		}

		return vec4(mix(tex.rgb, tint, 0.5), tex.a) * color

	}
	`,
)

func init() {
	defaultImg.Fill(color.White)
}

// Camera orbits around a target point (the origin by default), always looking at it. SetAngles turns it around the target,
// while ZoomIn and ZoomOut move it closer or further away.
type Camera struct {
	Target Vector

	width, height int
	near, far     float64
	fieldOfView   float64

	yaw, pitch     float64
	distance       float64
	targetDistance float64
	zoomTween      *gween.Tween

	view       Matrix4
	projection Matrix4
	vp         Matrix4

	vertexList     []ebiten.Vertex
	indexList      []uint16
	projected      []Vector4
	sortingTris    []sortingTriangle
	debugTextImage *ebiten.Image

	mipmapLevelShader *ebiten.Shader
}

type sortingTriangle struct {
	index int
	depth float64
}

// NewCamera creates a new Camera rendering to a target of the given size, with the near and far clipping planes given.
func NewCamera(width, height int, near, far float64) *Camera {

	cam := &Camera{
		width:       width,
		height:      height,
		near:        near,
		far:         far,
		fieldOfView: 45,
	}

	cam.distance = cam.clampDistance(4)
	cam.targetDistance = cam.distance

	var err error

	cam.mipmapLevelShader, err = ebiten.NewShader(mipmapLevelShaderText)

	if err != nil {
		panic(err)
	}

	cam.UpdateMatrices()

	return cam
}

// Size returns the width and height of the Camera's render target.
func (camera *Camera) Size() (int, int) {
	return camera.width, camera.height
}

// Resize changes the size of the render target the Camera projects to.
func (camera *Camera) Resize(width, height int) {
	camera.width = width
	camera.height = height
}

// SetFieldOfView sets the vertical field of the view of the camera in degrees.
func (camera *Camera) SetFieldOfView(fovY float64) {
	camera.fieldOfView = fovY
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float64 {
	return camera.fieldOfView
}

// Near returns the distance of the near clipping plane.
func (camera *Camera) Near() float64 {
	return camera.near
}

// Far returns the distance of the far clipping plane.
func (camera *Camera) Far() float64 {
	return camera.far
}

// Angles returns the Camera's orbit around its target as yaw (around +Y) and pitch, both in radians.
func (camera *Camera) Angles() (yaw, pitch float64) {
	return camera.yaw, camera.pitch
}

// SetAngles orbits the Camera; upAngle turns it around the world's up axis, while rightAngle tilts it around its own
// right axis. Both are scaled by AngleSensitivity, so mouse movement in pixels can be passed directly.
// Tilting stops just short of looking straight up or down.
func (camera *Camera) SetAngles(upAngle, rightAngle float64) {
	camera.yaw = math.Mod(camera.yaw+upAngle*AngleSensitivity, 2*math.Pi)
	camera.pitch = clamp(camera.pitch+rightAngle*AngleSensitivity, -maxPitch, maxPitch)
}

// Distance returns the Camera's current distance from its target.
func (camera *Camera) Distance() float64 {
	return camera.distance
}

// SetDistance moves the Camera to the given distance from its target immediately, cancelling any zoom in progress.
func (camera *Camera) SetDistance(distance float64) {
	camera.distance = camera.clampDistance(distance)
	camera.targetDistance = camera.distance
	camera.zoomTween = nil
}

func (camera *Camera) clampDistance(distance float64) float64 {
	return clamp(distance, camera.near*2, camera.far/2)
}

// ZoomIn starts easing the Camera closer to its target.
func (camera *Camera) ZoomIn() {
	camera.zoomTo(camera.targetDistance * zoomInFactor)
}

// ZoomOut starts easing the Camera further from its target.
func (camera *Camera) ZoomOut() {
	camera.zoomTo(camera.targetDistance * zoomOutFactor)
}

func (camera *Camera) zoomTo(distance float64) {
	camera.targetDistance = camera.clampDistance(distance)
	camera.zoomTween = gween.New(float32(camera.distance), float32(camera.targetDistance), ZoomDuration, ease.OutQuad)
}

// Update advances any zoom in progress by dt seconds.
func (camera *Camera) Update(dt float64) {

	if camera.zoomTween == nil {
		return
	}

	current, finished := camera.zoomTween.Update(float32(dt))

	if finished {
		camera.distance = camera.targetDistance
		camera.zoomTween = nil
	} else {
		camera.distance = float64(current)
	}

}

// Position returns the Camera's position in world space.
func (camera *Camera) Position() Vector {
	offset := Vector{
		X: math.Sin(camera.yaw) * math.Cos(camera.pitch),
		Y: math.Sin(camera.pitch),
		Z: math.Cos(camera.yaw) * math.Cos(camera.pitch),
	}
	return camera.Target.Add(offset.Scale(camera.distance))
}

// UpdateMatrices recalculates the Camera's view and projection matrices; call it once per frame before rendering.
func (camera *Camera) UpdateMatrices() {
	camera.view = NewViewMatrix(camera.Position(), camera.Target, VecY)
	camera.projection = NewProjectionPerspective(camera.fieldOfView, camera.near, camera.far, float64(camera.width), float64(camera.height))
	camera.vp = camera.view.Mult(camera.projection)
}

// ViewMatrix returns the Camera's view matrix as of the last UpdateMatrices call.
func (camera *Camera) ViewMatrix() Matrix4 {
	return camera.view
}

// Projection returns the Camera's projection matrix as of the last UpdateMatrices call.
func (camera *Camera) Projection() Matrix4 {
	return camera.projection
}

// MVP returns the combined model-view-projection matrix for the Model given.
func (camera *Camera) MVP(model *Model) Matrix4 {
	return model.Transform.Mult(camera.vp)
}

// ClipToScreen converts a clip-space position into pixel coordinates on the render target.
func (camera *Camera) ClipToScreen(vert Vector4) (float64, float64) {
	ndc := vert.PerspectiveDivide()
	w, h := float64(camera.width), float64(camera.height)
	return (ndc.X + 1) / 2 * w, (1 - ndc.Y) / 2 * h
}

// Render draws the Model onto the target image. Triangles are drawn back to front, skipping any that cross the
// near plane and, for Meshes with BackfaceCulling on, any facing away from the Camera.
func (camera *Camera) Render(target *ebiten.Image, model *Model) {

	mesh := model.Mesh
	if mesh == nil || len(mesh.Vertices) == 0 {
		return
	}

	mvp := camera.MVP(model)

	if cap(camera.projected) < len(mesh.Vertices) {
		camera.projected = make([]Vector4, len(mesh.Vertices))
	}
	camera.projected = camera.projected[:len(mesh.Vertices)]

	for i, v := range mesh.Vertices {
		camera.projected[i] = mvp.MultVecW(v.Position)
	}

	camera.sortingTris = camera.sortingTris[:0]

	for tri := 0; tri < mesh.TriangleCount(); tri++ {

		v0 := camera.projected[tri*3]
		v1 := camera.projected[tri*3+1]
		v2 := camera.projected[tri*3+2]

		// W is the distance in front of the Camera, so anything at or behind the near plane gets dropped
		if v0.W < camera.near || v1.W < camera.near || v2.W < camera.near {
			continue
		}

		if mesh.BackfaceCulling && !frontFacing(v0, v1, v2) {
			continue
		}

		camera.sortingTris = append(camera.sortingTris, sortingTriangle{
			index: tri,
			depth: v0.W + v1.W + v2.W,
		})

	}

	sort.SliceStable(camera.sortingTris, func(i, j int) bool {
		return camera.sortingTris[i].depth > camera.sortingTris[j].depth
	})

	img := mesh.Image
	if img == nil {
		img = defaultImg
	}

	srcW := float64(img.Bounds().Dx())
	srcH := float64(img.Bounds().Dy())
	multiple := model.TextureMultiple()

	opt := &ebiten.DrawTrianglesOptions{
		Filter:  model.Filter(),
		Address: model.Address(),
	}

	for start := 0; start < len(camera.sortingTris); start += MaxTriangleCount {

		end := min(start+MaxTriangleCount, len(camera.sortingTris))

		camera.vertexList = camera.vertexList[:0]
		camera.indexList = camera.indexList[:0]

		for _, st := range camera.sortingTris[start:end] {

			for i := st.index * 3; i < st.index*3+3; i++ {

				dstX, dstY := camera.ClipToScreen(camera.projected[i])
				uv := mesh.Vertices[i].UV.Scale(multiple)

				camera.indexList = append(camera.indexList, uint16(len(camera.vertexList)))
				camera.vertexList = append(camera.vertexList, ebiten.Vertex{
					DstX: float32(dstX),
					DstY: float32(dstY),
					// Image space has its origin in the top-left, so V gets flipped
					SrcX:   float32(uv.U * srcW),
					SrcY:   float32((1 - uv.V) * srcH),
					ColorR: 1,
					ColorG: 1,
					ColorB: 1,
					ColorA: 1,
				})

			}

		}

		if model.ShowMipmapLevels {
			// Shaders sample without the Address mode, so the mipmap shader wraps coordinates itself
			target.DrawTrianglesShader(camera.vertexList, camera.indexList, camera.mipmapLevelShader, &ebiten.DrawTrianglesShaderOptions{
				Images: [4]*ebiten.Image{img},
			})
		} else {
			target.DrawTriangles(camera.vertexList, camera.indexList, img, opt)
		}

	}

}

// frontFacing returns whether the clip-space triangle winds counter-clockwise once projected.
func frontFacing(v0, v1, v2 Vector4) bool {
	a := v0.PerspectiveDivide()
	b := v1.PerspectiveDivide()
	c := v2.PerspectiveDivide()
	return (b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y) > 0
}

// DebugDrawText draws the text given with a dark outline, so it stays readable over any texture.
func (camera *Camera) DebugDrawText(screen *ebiten.Image, txtStr string, posX, posY float64, clr color.Color) {

	size := text.BoundString(basicfont.Face7x13, txtStr).Size()

	if camera.debugTextImage == nil || size.X > camera.debugTextImage.Bounds().Dx() || size.Y+13 > camera.debugTextImage.Bounds().Dy() {
		camera.debugTextImage = ebiten.NewImage(max(size.X, 1), size.Y+13)
	}

	camera.debugTextImage.Clear()

	opt := &ebiten.DrawImageOptions{}
	opt.GeoM.Translate(0, 13)
	text.DrawWithOptions(camera.debugTextImage, txtStr, basicfont.Face7x13, opt)

	dr := &ebiten.DrawImageOptions{}
	dr.ColorScale.Scale(0, 0, 0, 1)

	for y := -1; y < 2; y++ {
		for x := -1; x < 2; x++ {
			dr.GeoM.Reset()
			dr.GeoM.Translate(posX+float64(x), posY+float64(y))
			screen.DrawImage(camera.debugTextImage, dr)
		}
	}

	dr.ColorScale.Reset()
	dr.ColorScale.ScaleWithColor(clr)
	dr.GeoM.Reset()
	dr.GeoM.Translate(posX, posY)
	screen.DrawImage(camera.debugTextImage, dr)

}
