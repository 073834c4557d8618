package fig

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to the XY components of a
// point. Z passes through unchanged.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
		Z: p.Z,
	}
}

// IsIdentity reports whether m is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Matrix3 is a 3x3 linear map over scene space, used as the view
// transform that flattens 3D scenes before the 2D canvas map. Row-major.
type Matrix3 struct {
	M [3][3]float64
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{M: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// TransformPoint applies the linear map to a point.
func (m Matrix3) TransformPoint(p Point) Point {
	return Point{
		X: m.M[0][0]*p.X + m.M[0][1]*p.Y + m.M[0][2]*p.Z,
		Y: m.M[1][0]*p.X + m.M[1][1]*p.Y + m.M[1][2]*p.Z,
		Z: m.M[2][0]*p.X + m.M[2][1]*p.Y + m.M[2][2]*p.Z,
	}
}

// ViewMatrix builds the orthographic view transform for a camera looking
// at the origin from the direction given by elevation and azimuth, both
// in degrees. The resulting X and Y components are the on-screen
// coordinates; Z is the depth along the view direction.
//
// Azimuth rotates the camera around the scene Z axis, elevation tilts it
// up from the XY plane. Elevation 90 with azimuth -90 reproduces the
// plain top-down 2D view.
func ViewMatrix(elevation, azimuth float64) Matrix3 {
	e := elevation * math.Pi / 180
	a := azimuth * math.Pi / 180
	sinE, cosE := math.Sincos(e)
	sinA, cosA := math.Sincos(a)
	// Rows: camera right, camera up, view direction.
	return Matrix3{M: [3][3]float64{
		{-sinA, cosA, 0},
		{-cosA * sinE, -sinA * sinE, cosE},
		{cosA * cosE, sinA * cosE, sinE},
	}}
}
