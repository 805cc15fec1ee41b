package texviewer

import (
	"math"
	"testing"
)

func BenchmarkMatrixInversion(b *testing.B) {

	b.ReportAllocs()

	mat := NewMatrix4Rotate(0, 1, 0.2, 0.24).Mult(NewMatrix4Translate(1, 4, -12))

	for i := 0; i < b.N; i++ {
		mat.Inverted()
	}

}

func TestMatrixInversion(t *testing.T) {

	matrices := []Matrix4{
		NewMatrix4Rotate(0, 1, 0, 0.1),
		NewMatrix4Translate(-10, 0.1, 3232.1976),
		NewMatrix4Scale(10, 0.1, -0.45),
		NewMatrix4Translate(-1, -1, -1).Mult(NewMatrix4Rotate(1, 0, 0.1, 0.334)).Mult(NewMatrix4Scale(10, 1, 2)),
		NewViewMatrix(NewVector(3, 2, 5), NewVectorZero(), VecY),
	}

	for i, mat := range matrices {

		// Multiplying a matrix by its inverse should undo it entirely
		if !mat.Mult(mat.Inverted()).IsIdentity() {
			t.Fatal("failed on matrix #", i, ": matrix * matrix.Inverted() is not identity")
		}

	}

}

func TestMatrixTranslate(t *testing.T) {

	mat := NewMatrix4Scale(2, 2, 2).Mult(NewMatrix4Translate(1, 2, 3))

	// Scale first, then translate
	if result := mat.MultVec(NewVector(1, 1, 1)); !result.Equals(NewVector(3, 4, 5)) {
		t.Fatalf("expected (3, 4, 5), got %v", result)
	}

	if !NewMatrix4Translate(1, 2, 3).Transposed().Transposed().Equals(NewMatrix4Translate(1, 2, 3)) {
		t.Fatal("transposing twice should give the original matrix")
	}

}

func TestViewMatrix(t *testing.T) {

	eye := NewVector(0, 3, 4)
	target := NewVectorZero()

	view := NewViewMatrix(eye, target, VecY)

	if result := view.MultVec(eye); !result.EqualsEpsilon(NewVectorZero(), 1e-9) {
		t.Fatalf("the eye should end up at the origin, got %v", result)
	}

	// The target is 5 units away, straight ahead down -Z
	if result := view.MultVec(target); !result.EqualsEpsilon(NewVector(0, 0, -5), 1e-9) {
		t.Fatalf("the target should end up at (0, 0, -5), got %v", result)
	}

	// Looking straight down shouldn't produce NaNs
	down := NewViewMatrix(NewVector(0, 5, 0), target, VecY)
	if result := down.MultVec(target); !result.EqualsEpsilon(NewVector(0, 0, -5), 1e-9) {
		t.Fatalf("looking straight down, the target should end up at (0, 0, -5), got %v", result)
	}

}

func TestProjectionPerspective(t *testing.T) {

	near, far := 0.1, 100.0

	proj := NewProjectionPerspective(45, near, far, 800, 600)

	for _, dist := range []float64{near, 1, 10, far} {

		clip := proj.MultVecW(NewVector(0, 0, -dist))

		if math.Abs(clip.W-dist) > 1e-9 {
			t.Fatalf("expected W to be the distance in front of the viewer (%f), got %f", dist, clip.W)
		}

	}

	// The near and far planes map to the edges of NDC depth
	if z := proj.MultVecW(NewVector(0, 0, -near)).PerspectiveDivide().Z; math.Abs(z+1) > 1e-9 {
		t.Fatalf("expected the near plane at -1, got %f", z)
	}

	if z := proj.MultVecW(NewVector(0, 0, -far)).PerspectiveDivide().Z; math.Abs(z-1) > 1e-9 {
		t.Fatalf("expected the far plane at 1, got %f", z)
	}

	// A point on the top edge of the field of view lands on the top edge of NDC
	top := math.Tan(ToRadians(45) / 2)
	if y := proj.MultVecW(NewVector(0, top, -1)).PerspectiveDivide().Y; math.Abs(y-1) > 1e-9 {
		t.Fatalf("expected the top of the field of view at 1, got %f", y)
	}

}
