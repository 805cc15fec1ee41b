package texviewer

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// LoadImage decodes the PNG, JPEG, or BMP image file at the path given.
func LoadImage(path string) (image.Image, error) {

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't find texture %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("can't decode texture %s: %w", path, err)
	}

	return img, nil

}

// LoadTexture loads the PNG, JPEG, or BMP image file at the path given into an *ebiten.Image for use as a Mesh's texture.
func LoadTexture(path string) (*ebiten.Image, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// NewCheckerImage creates a width x height checkerboard image with cells x cells squares, with a red line down the
// left edge (U = 0) and a blue line along the bottom (V = 0). It's a handy stand-in texture that makes seams and
// stretching obvious.
func NewCheckerImage(width, height, cells int) *image.NRGBA {

	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	light := color.NRGBA{220, 220, 220, 255}
	dark := color.NRGBA{60, 60, 70, 255}
	red := color.NRGBA{220, 40, 40, 255}
	blue := color.NRGBA{40, 80, 220, 255}

	cells = max(cells, 1)
	cellW := max(width/cells, 1)
	cellH := max(height/cells, 1)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {

			clr := light
			if (x/cellW+y/cellH)%2 == 1 {
				clr = dark
			}

			if x < 2 {
				clr = red
			} else if y >= height-2 {
				clr = blue
			}

			img.SetNRGBA(x, y, clr)

		}
	}

	return img

}
