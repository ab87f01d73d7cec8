// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"

	"github.com/gogpu/viewembed/recording"
)

// Errors.
var (
	// ErrClosed is returned when a closed surface is used.
	ErrClosed = errors.New("surface: surface is closed")

	// ErrInvalidSize is returned for non-positive frame dimensions.
	ErrInvalidSize = errors.New("surface: invalid size")

	// ErrFrameSubmitted is returned when a frame is submitted twice.
	ErrFrameSubmitted = errors.New("surface: frame already submitted")
)

// Surface is a presentable render target.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// AcquireFrame returns a cleared frame of the given size.
	AcquireFrame(size image.Point) (Frame, error)

	// Size returns the size of the most recently acquired frame.
	Size() image.Point

	// Close releases all resources. Close is idempotent.
	Close() error
}

// Frame is one drawable, submittable frame of a Surface.
type Frame interface {
	// Canvas returns the canvas to draw the frame with.
	Canvas() recording.Canvas

	// Size returns the frame size in pixels.
	Size() image.Point

	// Submit presents the frame. A frame can be submitted once.
	Submit() error
}

func validSize(size image.Point) bool {
	return size.X > 0 && size.Y > 0
}
