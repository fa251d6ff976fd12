package v2d

import (
	"fmt"
	"math"
)

// Vector2D is an immutable 2D vector.
// It can be used both as a position and as a displacement.
// All methods have value receivers and return new values; the zero
// value is the origin.
type Vector2D struct {
	x, y float64
}

// New creates a Vector2D from its components.
// The components are stored as given, NaN and infinities included.
func New(x, y float64) Vector2D {
	return Vector2D{x: x, y: y}
}

// Vec2 is a convenience function to create a Vector2D.
func Vec2(x, y float64) Vector2D {
	return New(x, y)
}

// X returns the x component.
func (v Vector2D) X() float64 { return v.x }

// Y returns the y component.
func (v Vector2D) Y() float64 { return v.y }

// Params returns both components, for passing to functions that take
// x and y as separate arguments:
//
//	dc.LineTo(v.Params())
func (v Vector2D) Params() (float64, float64) {
	return v.x, v.y
}

// Equal reports whether v and w have exactly the same components.
// No tolerance is applied; use Approx for that.
func (v Vector2D) Equal(w Vector2D) bool {
	return v.x == w.x && v.y == w.y
}

// Add returns the sum of two vectors.
func (v Vector2D) Add(w Vector2D) Vector2D {
	return Vector2D{x: v.x + w.x, y: v.y + w.y}
}

// Sub returns the difference of two vectors.
func (v Vector2D) Sub(w Vector2D) Vector2D {
	return Vector2D{x: v.x - w.x, y: v.y - w.y}
}

// Scale returns the vector scaled by a scalar.
func (v Vector2D) Scale(s float64) Vector2D {
	return Vector2D{x: s * v.x, y: s * v.y}
}

// Times returns the element-wise product of two vectors.
func (v Vector2D) Times(w Vector2D) Vector2D {
	return Vector2D{x: v.x * w.x, y: v.y * w.y}
}

// Apply returns a vector with f applied to each component.
//
//	v2d.New(3, 4).Apply(math.Cos) // (cos 3, cos 4)
func (v Vector2D) Apply(f func(float64) float64) Vector2D {
	return Vector2D{x: f(v.x), y: f(v.y)}
}

// Dot returns the dot product of two vectors.
func (v Vector2D) Dot(w Vector2D) float64 {
	return v.x*w.x + v.y*w.y
}

// Invert returns the vector with its components swapped.
func (v Vector2D) Invert() Vector2D {
	return Vector2D{x: v.y, y: v.x}
}

// Abs returns the vector with the absolute value of each component.
// Only strictly negative components are flipped, so -0 and NaN are kept
// bit for bit.
func (v Vector2D) Abs() Vector2D {
	return Vector2D{x: abs(v.x), y: abs(v.y)}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// Round snaps each component to the nearest multiple of step.
//
// The candidates for a component c are low = c - mod(c, step), using the
// truncated remainder of math.Mod, and high = low + step. low is chosen only
// when it is strictly closer to c, so exact ties go to high:
//
//	v2d.New(3, 5).Round(10) // (0, 10)
//	v2d.New(3, 5).Round(5)  // (5, 5)
//
// A zero or NaN step produces NaN components.
func (v Vector2D) Round(step float64) Vector2D {
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		Logger().Debug("v2d: round with degenerate step", "step", step, "vector", v)
	}
	return Vector2D{x: roundTo(v.x, step), y: roundTo(v.y, step)}
}

func roundTo(c, step float64) float64 {
	low := c - math.Mod(c, step)
	high := low + step
	if c-low < high-c {
		return low
	}
	return high
}

// Length returns the Euclidean length of the vector.
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// LengthSq is Length squared, without the square root. It orders vectors
// by magnitude the same way Length does.
func (v Vector2D) LengthSq() float64 {
	return v.Dot(v)
}

// Distance is the length of the segment between points v and w.
func (v Vector2D) Distance(w Vector2D) float64 {
	return v.Sub(w).Length()
}

// Angle returns the unsigned angle between v and w in radians, in [0, π].
// It is 0 when the vectors are equal. Otherwise it is computed with
// math.Acos, so a zero-length operand yields NaN, as does a cosine that
// rounding pushed slightly outside [-1, 1].
func (v Vector2D) Angle(w Vector2D) float64 {
	if v.Equal(w) {
		return 0
	}
	if v.IsZero() || w.IsZero() {
		Logger().Debug("v2d: angle against zero-length vector", "v", v, "w", w)
	}
	return math.Acos(v.Dot(w) / (w.Length() * v.Length()))
}

// Middle returns the midpoint between v and w.
func (v Vector2D) Middle(w Vector2D) Vector2D {
	return v.Add(w).Scale(0.5)
}

// DyDx returns the slope y/x. A zero x gives ±Inf, or NaN when y is zero too.
func (v Vector2D) DyDx() float64 {
	return v.y / v.x
}

// XSign returns -1, 0 or 1 according to the sign of x.
// NaN is reported as 0.
func (v Vector2D) XSign() int {
	return sign(v.x)
}

// YSign returns -1, 0 or 1 according to the sign of y.
// NaN is reported as 0.
func (v Vector2D) YSign() int {
	return sign(v.y)
}

func sign(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

// Neg points the vector the other way.
func (v Vector2D) Neg() Vector2D {
	return v.Scale(-1)
}

// Perp is v turned a quarter turn counter-clockwise: (-y, x).
func (v Vector2D) Perp() Vector2D {
	return v.Invert().Times(Vector2D{x: -1, y: 1})
}

// Cross is the signed area of the parallelogram spanned by v and w.
// It is positive when w lies counter-clockwise of v.
func (v Vector2D) Cross(w Vector2D) float64 {
	return w.Dot(v.Perp())
}

// Normalize scales v to length 1. The zero vector is returned unchanged.
func (v Vector2D) Normalize() Vector2D {
	if v.IsZero() {
		return v
	}
	return v.Scale(1 / v.Length())
}

// Lerp walks the fraction t of the way from v to w.
func (v Vector2D) Lerp(w Vector2D, t float64) Vector2D {
	return v.Add(w.Sub(v).Scale(t))
}

// Rotate turns v counter-clockwise about the origin by angle radians.
func (v Vector2D) Rotate(angle float64) Vector2D {
	sin, cos := math.Sincos(angle)
	return Vector2D{
		x: v.x*cos - v.y*sin,
		y: v.x*sin + v.y*cos,
	}
}

// Heading is the direction of v in radians, counted from the positive
// x axis, in [-π, π].
func (v Vector2D) Heading() float64 {
	return math.Atan2(v.y, v.x)
}

// IsZero reports whether v is the origin.
func (v Vector2D) IsZero() bool {
	return v.Equal(Vector2D{})
}

// Approx reports whether each component of v is within epsilon of w's.
// Equal is the exact counterpart.
func (v Vector2D) Approx(w Vector2D, epsilon float64) bool {
	d := v.Sub(w).Abs()
	return d.x < epsilon && d.y < epsilon
}

func (v Vector2D) String() string {
	return fmt.Sprintf("Vector2D(%g, %g)", v.x, v.y)
}
