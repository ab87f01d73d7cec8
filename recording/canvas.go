// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/viewembed/geom"
)

// ClipOp selects how a clip rectangle combines with the current clip.
type ClipOp uint8

const (
	// ClipIntersect keeps only the area inside the rectangle.
	ClipIntersect ClipOp = iota

	// ClipDifference removes the rectangle from the drawable area.
	ClipDifference
)

// String returns the name of the clip operation.
func (op ClipOp) String() string {
	switch op {
	case ClipIntersect:
		return "Intersect"
	case ClipDifference:
		return "Difference"
	default:
		return "Unknown"
	}
}

// Canvas is a 2D drawing target.
//
// Transform and clip state is saved by Save and restored by Restore.
// Restore without a matching Save is a no-op.
type Canvas interface {
	// Save pushes the current transform and clip.
	Save()

	// Restore pops the state pushed by the matching Save.
	Restore()

	// Concat pre-multiplies the current transform by m.
	Concat(m gg.Matrix)

	// ClipRect combines r, in local coordinates, with the current clip.
	ClipRect(r geom.Rect, op ClipOp)

	// Clear replaces every pixel inside the clip with c.
	Clear(c gg.RGBA)

	// FillRect fills r with c.
	FillRect(r geom.Rect, c gg.RGBA)

	// FillPath fills p with c using the non-zero rule.
	FillPath(p *gg.Path, c gg.RGBA)

	// DrawImage draws img with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y float64)
}
