package texviewer

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestModelFiltering(t *testing.T) {

	model := NewModel(NewPlaneMesh())

	if model.Name != "Plane" {
		t.Fatalf("expected the Model to be named after its Mesh, got %q", model.Name)
	}

	if model.Filter() != ebiten.FilterNearest {
		t.Fatalf("expected the Model to start with nearest filtering, got %s", FilterName(model.Filter()))
	}

	model.NextFiltering()
	if model.Filter() != ebiten.FilterLinear {
		t.Fatalf("expected linear filtering, got %s", FilterName(model.Filter()))
	}

	model.NextFiltering()
	if model.Filter() != ebiten.FilterNearest {
		t.Fatalf("expected filtering to wrap back around to nearest, got %s", FilterName(model.Filter()))
	}

	model.PrevFiltering()
	if model.Filter() != ebiten.FilterLinear {
		t.Fatalf("expected filtering to wrap backwards to linear, got %s", FilterName(model.Filter()))
	}

	if model.Address() != ebiten.AddressRepeat {
		t.Fatal("Models should always draw with repeating texture addressing")
	}

}

func TestModelTextureMultiple(t *testing.T) {

	model := NewModel(NewCubeMesh())

	if model.TextureMultiple() != 1 {
		t.Fatalf("expected a starting multiple of 1, got %f", model.TextureMultiple())
	}

	model.IncreaseMultiple()
	model.IncreaseMultiple()

	if math.Abs(model.TextureMultiple()-1.2) > 1e-9 {
		t.Fatalf("expected a multiple of 1.2, got %f", model.TextureMultiple())
	}

	for i := 0; i < 20; i++ {
		model.DecreaseMultiple()
	}

	if math.Abs(model.TextureMultiple()-0.1) > 1e-9 {
		t.Fatalf("expected the multiple to stop at 0.1, got %f", model.TextureMultiple())
	}

}

func TestModelMipmapLevels(t *testing.T) {

	model := NewModel(NewPlaneMesh())

	if model.ShowMipmapLevels {
		t.Fatal("Models shouldn't start out showing mipmap levels")
	}

	model.ToggleMipmapLevels()
	if !model.ShowMipmapLevels {
		t.Fatal("expected toggling to show mipmap levels")
	}

	// Switching filters leaves the tint alone
	model.NextFiltering()
	if !model.ShowMipmapLevels {
		t.Fatal("changing filtering shouldn't hide mipmap levels")
	}

	model.ToggleMipmapLevels()
	if model.ShowMipmapLevels {
		t.Fatal("expected toggling again to hide mipmap levels")
	}

}
