// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geom provides the axis-aligned rectangle arithmetic used for
// occlusion and overlay placement.
//
// Rectangles are stored as edges (left, top, right, bottom) in float64 screen
// coordinates. A rectangle with right <= left or bottom <= top is empty.
package geom

import (
	"fmt"
	"image"
	"math"
)

// Size is a logical width and height.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// XYWH creates a Rect from its top-left corner and size.
func XYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// LTRB creates a Rect from its edges.
func LTRB(l, t, r, b float64) Rect {
	return Rect{Left: l, Top: t, Right: r, Bottom: b}
}

// FromSize returns the rectangle (0, 0, size.X, size.Y).
func FromSize(size image.Point) Rect {
	return Rect{Right: float64(size.X), Bottom: float64(size.Y)}
}

// FromImage converts an integer rectangle.
func FromImage(r image.Rectangle) Rect {
	return Rect{
		Left:   float64(r.Min.X),
		Top:    float64(r.Min.Y),
		Right:  float64(r.Max.X),
		Bottom: float64(r.Max.Y),
	}
}

// X returns the left edge.
func (r Rect) X() float64 { return r.Left }

// Y returns the top edge.
func (r Rect) Y() float64 { return r.Top }

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// IsEmpty reports whether r encloses no area.
// NaN edges make a rectangle empty.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right && r.Top < r.Bottom)
}

// Intersects reports whether r and o share a region of non-zero area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.Left < o.Right && o.Left < r.Right &&
		r.Top < o.Bottom && o.Top < r.Bottom
}

// Intersect returns the overlap of r and o, and false when there is none.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	if !r.Intersects(o) {
		return Rect{}, false
	}
	return Rect{
		Left:   math.Max(r.Left, o.Left),
		Top:    math.Max(r.Top, o.Top),
		Right:  math.Min(r.Right, o.Right),
		Bottom: math.Min(r.Bottom, o.Bottom),
	}, true
}

// Join returns the smallest rectangle containing both r and o.
// Empty operands are ignored.
func (r Rect) Join(o Rect) Rect {
	if o.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return o
	}
	return Rect{
		Left:   math.Min(r.Left, o.Left),
		Top:    math.Min(r.Top, o.Top),
		Right:  math.Max(r.Right, o.Right),
		Bottom: math.Max(r.Bottom, o.Bottom),
	}
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.Left <= o.Left && r.Top <= o.Top &&
		r.Right >= o.Right && r.Bottom >= o.Bottom
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// RoundOut floors the top-left corner and ceils the bottom-right corner,
// so {0.3, 0.5, 3.1, 4.7} becomes {0, 0, 4, 5}.
func (r Rect) RoundOut() Rect {
	return Rect{
		Left:   math.Floor(r.Left),
		Top:    math.Floor(r.Top),
		Right:  math.Ceil(r.Right),
		Bottom: math.Ceil(r.Bottom),
	}
}

// Image returns the rounded-out integer rectangle.
func (r Rect) Image() image.Rectangle {
	o := r.RoundOut()
	return image.Rect(int(o.Left), int(o.Top), int(o.Right), int(o.Bottom))
}

// String returns the rectangle as "(x,y wxh)".
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.Left, r.Top, r.Width(), r.Height())
}

// Union joins all rectangles in rs.
func Union(rs []Rect) Rect {
	var u Rect
	for _, r := range rs {
		u = u.Join(r)
	}
	return u
}
