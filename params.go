// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewembed

import (
	"fmt"
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/viewembed/geom"
)

// MutatorType identifies the kind of a Mutator.
type MutatorType uint8

// Mutator types.
const (
	MutatorTransform MutatorType = iota
	MutatorClipRect
	MutatorOpacity
)

// String returns the mutator type name.
func (t MutatorType) String() string {
	switch t {
	case MutatorTransform:
		return "Transform"
	case MutatorClipRect:
		return "ClipRect"
	case MutatorOpacity:
		return "Opacity"
	default:
		return fmt.Sprintf("MutatorType(%d)", t)
	}
}

// Mutator is one entry of the transform/clip stack applied to a platform
// view. The embedder forwards mutators untouched; the view's screen
// placement comes from ViewParams.FinalBoundingRect.
type Mutator struct {
	Type   MutatorType
	Matrix gg.Matrix // MutatorTransform
	Rect   geom.Rect // MutatorClipRect
	Alpha  float64   // MutatorOpacity
}

// ViewParams describes how a platform view is placed in a frame.
type ViewParams struct {
	// Offset is the view origin in logical coordinates.
	Offset gg.Point

	// SizePoints is the view size in logical points.
	SizePoints geom.Size

	// FinalBoundingRect is the view bounds in screen pixels after every
	// mutator has been applied.
	FinalBoundingRect geom.Rect

	// Mutators is the stack applied to the view, outermost first.
	Mutators []Mutator
}

// Equal reports whether p and o describe the same placement.
func (p *ViewParams) Equal(o *ViewParams) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Offset == o.Offset &&
		p.SizePoints == o.SizePoints &&
		p.FinalBoundingRect == o.FinalBoundingRect &&
		slices.Equal(p.Mutators, o.Mutators)
}
