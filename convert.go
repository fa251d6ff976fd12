package v2d

import (
	"image"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// Fixed converts the vector to a 26.6 fixed-point point, as used by
// golang.org/x/image/font. Components are truncated toward zero at 1/64
// resolution.
func (v Vector2D) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: floatToFixed(v.x),
		Y: floatToFixed(v.y),
	}
}

// FromFixed converts a 26.6 fixed-point point to a Vector2D.
func FromFixed(p fixed.Point26_6) Vector2D {
	return Vector2D{x: fixedToFloat(p.X), y: fixedToFloat(p.Y)}
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(i fixed.Int26_6) float64 {
	return float64(i) / 64
}

// F64 returns the vector as an f64.Vec2.
func (v Vector2D) F64() f64.Vec2 {
	return f64.Vec2{v.x, v.y}
}

// FromF64 creates a Vector2D from an f64.Vec2.
func FromF64(a f64.Vec2) Vector2D {
	return Vector2D{x: a[0], y: a[1]}
}

// Image returns the vector as integer pixel coordinates.
// Components are truncated toward zero.
func (v Vector2D) Image() image.Point {
	return image.Pt(int(v.x), int(v.y))
}

// FromImage creates a Vector2D from integer pixel coordinates.
func FromImage(p image.Point) Vector2D {
	return Vector2D{x: float64(p.X), y: float64(p.Y)}
}
