// Package v2d provides an immutable two-dimensional vector value type.
//
// # Overview
//
// A [Vector2D] is a pair of float64 components. It has no setters: every
// method returns either a scalar or a new Vector2D, so values can be copied
// and shared between goroutines without synchronization.
//
//	import "github.com/gogpu/v2d"
//
//	v := v2d.New(2, 3)
//
//	v.Add(v2d.New(2, 3))   // Vector2D(4, 6)
//	v.Sub(v2d.New(-1, -2)) // Vector2D(3, 5)
//	v.Round(10)            // Vector2D(0, 0)
//
// # Numeric Edge Cases
//
// No operation returns an error or panics on its own. NaN and infinite
// components are accepted by [New] and flow through every method using
// IEEE-754 semantics: [Vector2D.DyDx] of a vertical vector is ±Inf,
// [Vector2D.Angle] against a zero-length vector is NaN, and
// [Vector2D.Round] with a zero step yields NaN components.
//
// # Interop
//
// Vectors convert to and from golang.org/x/image fixed-point points
// ([Vector2D.Fixed]), f64.Vec2 values ([Vector2D.F64]) and image.Point
// ([Vector2D.Image]). [Formatter] renders vectors as localized text.
//
// # Logging
//
// v2d is silent by default. [SetLogger] installs a log/slog logger that
// receives debug records for degenerate inputs.
package v2d
