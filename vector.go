package texviewer

import (
	"math"
)

// VecX represents a unit vector pointing right on the right-handed OpenGL-style coordinate system used by texviewer.
var VecX = NewVector(1, 0, 0)

// VecY represents a unit vector pointing upwards; it's also the axis the sphere's poles lie on.
var VecY = NewVector(0, 1, 0)

// VecZ represents a unit vector pointing backwards (towards the viewer). Longitude 0 on a generated sphere faces this way.
var VecZ = NewVector(0, 0, 1)

// Vector represents a 3D Vector, used for vertex positions, view directions, and the like.
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily.
// Vectors are most efficient when copied, so try not to store pointers to them.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewVectorZero creates a new "zero-ed out" Vector.
func NewVectorZero() Vector {
	return Vector{}
}

// Add returns a copy of the calling vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided other Vector.
func (vec Vector) Cross(other Vector) Vector {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Invert returns a copy of the Vector pointing the opposite way.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

func (vec Vector) DistanceSquared(other Vector) float64 {
	return vec.Sub(other).MagnitudeSquared()
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
// A zero-length Vector is returned unmodified.
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Scale scales a Vector by the given scalar.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides a Vector by the given scalar.
func (vec Vector) Divide(scalar float64) Vector {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Dot returns the dot product of a Vector and another Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Min returns a Vector made of the smaller component of each Vector.
func (vec Vector) Min(other Vector) Vector {
	vec.X = math.Min(vec.X, other.X)
	vec.Y = math.Min(vec.Y, other.Y)
	vec.Z = math.Min(vec.Z, other.Z)
	return vec
}

// Max returns a Vector made of the larger component of each Vector.
func (vec Vector) Max(other Vector) Vector {
	vec.X = math.Max(vec.X, other.X)
	vec.Y = math.Max(vec.Y, other.Y)
	vec.Z = math.Max(vec.Z, other.Z)
	return vec
}

// Floats returns a [3]float64 array consisting of the Vector's contents.
func (vec Vector) Floats() [3]float64 {
	return [3]float64{vec.X, vec.Y, vec.Z}
}

// Equals returns true if the two Vectors are close enough in all values.
func (vec Vector) Equals(other Vector) bool {
	return vec.EqualsEpsilon(other, 1e-8)
}

// EqualsEpsilon returns true if no component of the two Vectors differs by more than eps.
func (vec Vector) EqualsEpsilon(other Vector, eps float64) bool {
	return math.Abs(vec.X-other.X) <= eps && math.Abs(vec.Y-other.Y) <= eps && math.Abs(vec.Z-other.Z) <= eps
}

// IsZero returns true if the values in the Vector are extremely close to 0.
func (vec Vector) IsZero() bool {
	return vec.Equals(Vector{})
}

// Rotate returns a copy of the Vector, rotated around the Vector axis provided by the angle provided (in radians).
// The function is most efficient if passed an orthogonal, normalized axis (i.e. the VecX, VecY, or VecZ constants).
func (vec Vector) Rotate(axis Vector, angle float64) Vector {

	cos, sin := math.Cos(angle), math.Sin(angle)

	if axis.Equals(VecX) {
		ay, az := vec.Y, vec.Z
		vec.Y = ay*cos - az*sin
		vec.Z = ay*sin + az*cos
		return vec
	}

	if axis.Equals(VecY) {
		ax, az := vec.X, vec.Z
		vec.X = ax*cos + az*sin
		vec.Z = -ax*sin + az*cos
		return vec
	}

	if axis.Equals(VecZ) {
		ax, ay := vec.X, vec.Y
		vec.X = ax*cos - ay*sin
		vec.Y = ax*sin + ay*cos
		return vec
	}

	// Rodrigues' rotation formula
	u := axis.Unit()

	return vec.Scale(cos).
		Add(u.Cross(vec).Scale(sin)).
		Add(u.Scale(u.Dot(vec) * (1 - cos)))

}

// Angle returns the angle between the calling Vector and the provided other Vector.
func (vec Vector) Angle(other Vector) float64 {
	return math.Acos(clamp(vec.Unit().Dot(other.Unit()), -1, 1))
}

// UV represents a 2D texture coordinate. U runs left to right across a texture and V runs bottom to top;
// both are nominally in the 0-1 range, though U may sit one full texture-width outside of it after seam correction.
type UV struct {
	U float64
	V float64
}

// NewUV creates a new UV with the given components.
func NewUV(u, v float64) UV {
	return UV{U: u, V: v}
}

// Add returns a copy of the UV with the other UV added to it.
func (uv UV) Add(other UV) UV {
	uv.U += other.U
	uv.V += other.V
	return uv
}

// Scale returns a copy of the UV multiplied by the given scalar.
func (uv UV) Scale(scalar float64) UV {
	uv.U *= scalar
	uv.V *= scalar
	return uv
}

// Equals returns true if the two UVs are within eps of each other in both components.
func (uv UV) Equals(other UV, eps float64) bool {
	return math.Abs(uv.U-other.U) <= eps && math.Abs(uv.V-other.V) <= eps
}
