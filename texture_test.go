package texviewer

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

func TestCheckerImage(t *testing.T) {

	img := NewCheckerImage(64, 64, 8)

	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("expected a 64x64 image, got %v", img.Bounds())
	}

	light := img.NRGBAAt(5, 5)
	dark := img.NRGBAAt(10, 5)

	if light == dark {
		t.Fatal("neighboring checker cells should be different colors")
	}

	if img.NRGBAAt(10, 13) != light {
		t.Fatal("diagonal checker cells should be the same color")
	}

	if red := img.NRGBAAt(0, 30); red.R <= red.B {
		t.Fatalf("expected the left edge to be red, got %v", red)
	}

	if blue := img.NRGBAAt(30, 63); blue.B <= blue.R {
		t.Fatalf("expected the bottom edge to be blue, got %v", blue)
	}

}

func writeTestImage(t *testing.T, name string, encode func(f *os.File, img image.Image) error) string {

	path := filepath.Join(t.TempDir(), name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	img.SetNRGBA(1, 1, color.NRGBA{255, 0, 0, 255})

	if err := encode(f, img); err != nil {
		t.Fatal(err)
	}

	return path

}

func TestLoadImage(t *testing.T) {

	encoders := map[string]func(f *os.File, img image.Image) error{
		"texture.png": func(f *os.File, img image.Image) error { return png.Encode(f, img) },
		"texture.bmp": func(f *os.File, img image.Image) error { return bmp.Encode(f, img) },
	}

	for name, encode := range encoders {

		img, err := LoadImage(writeTestImage(t, name, encode))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}

		if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
			t.Fatalf("%s: expected a 4x2 image, got %v", name, img.Bounds())
		}

		if r, g, _, _ := img.At(1, 1).RGBA(); r != 0xffff || g != 0 {
			t.Fatalf("%s: expected a red pixel at 1, 1", name)
		}

	}

}

func TestLoadImageMissing(t *testing.T) {

	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.png"))

	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}

}

func TestLoadImageGarbage(t *testing.T) {

	path := filepath.Join(t.TempDir(), "garbage.png")

	if err := os.WriteFile(path, []byte("definitely not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadImage(path); err == nil || errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected a decoding error, got %v", err)
	}

}

func TestLoadTextureErrors(t *testing.T) {

	dir := t.TempDir()

	_, err := LoadTexture(filepath.Join(dir, "missing.png"))
	if !errors.Is(err, fs.ErrNotExist) || !strings.HasPrefix(err.Error(), "can't find texture") {
		t.Fatalf("expected LoadImage's not-exist error, got %v", err)
	}

	path := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(path, []byte("definitely not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTexture(path); err == nil || !strings.HasPrefix(err.Error(), "can't decode texture") {
		t.Fatalf("expected LoadImage's decoding error, got %v", err)
	}

}
