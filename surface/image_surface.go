// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/viewembed/recording"
)

// ImageSurface is a CPU-only, double-buffered surface.
//
// Frames are drawn into a back gg.Context; Submit copies the back buffer to
// the front image returned by Snapshot.
//
// Example:
//
//	s := surface.NewImageSurface()
//	f, _ := s.AcquireFrame(image.Pt(800, 600))
//	f.Canvas().FillRect(geom.XYWH(0, 0, 10, 10), gg.RGB(1, 0, 0))
//	_ = f.Submit()
//	img := s.Snapshot()
type ImageSurface struct {
	back    *gg.Context
	front   *image.RGBA
	submits int
	closed  bool
}

var _ Surface = (*ImageSurface)(nil)

// NewImageSurface creates an ImageSurface. Buffers are allocated by the
// first AcquireFrame.
func NewImageSurface() *ImageSurface {
	return &ImageSurface{}
}

// AcquireFrame implements Surface. The back buffer is reallocated when size
// changes and cleared to transparent otherwise.
func (s *ImageSurface) AcquireFrame(size image.Point) (Frame, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if !validSize(size) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, size.X, size.Y)
	}
	if s.back == nil || s.back.Width() != size.X || s.back.Height() != size.Y {
		if s.back != nil {
			_ = s.back.Close()
		}
		s.back = gg.NewContext(size.X, size.Y)
	} else {
		s.back.Clear()
	}
	return &imageFrame{surface: s, canvas: NewCanvas(s.back), size: size}, nil
}

// Size implements Surface.
func (s *ImageSurface) Size() image.Point {
	if s.back == nil {
		return image.Point{}
	}
	return image.Pt(s.back.Width(), s.back.Height())
}

// Snapshot returns a copy of the last submitted frame, or nil if no frame
// has been submitted.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.front == nil {
		return nil
	}
	out := image.NewRGBA(s.front.Bounds())
	draw.Copy(out, image.Point{}, s.front, s.front.Bounds(), draw.Src, nil)
	return out
}

// Submits returns the number of submitted frames.
func (s *ImageSurface) Submits() int {
	return s.submits
}

// Close implements Surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.back != nil {
		_ = s.back.Close()
		s.back = nil
	}
	s.front = nil
	return nil
}

func (s *ImageSurface) present() error {
	if s.closed {
		return ErrClosed
	}
	src := s.back.Image()
	b := src.Bounds()
	if s.front == nil || s.front.Bounds() != b {
		s.front = image.NewRGBA(b)
	}
	draw.Copy(s.front, b.Min, src, b, draw.Src, nil)
	s.submits++
	return nil
}

type imageFrame struct {
	surface   *ImageSurface
	canvas    *Canvas
	size      image.Point
	submitted bool
}

func (f *imageFrame) Canvas() recording.Canvas { return f.canvas }

func (f *imageFrame) Size() image.Point { return f.size }

func (f *imageFrame) Submit() error {
	if f.submitted {
		return ErrFrameSubmitted
	}
	f.submitted = true
	return f.surface.present()
}
