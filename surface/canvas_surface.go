// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"

	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/viewembed/recording"
)

// CanvasSurface is a GPU-backed surface built on ggcanvas.
//
// Drawing happens on the CPU into the canvas' gg.Context; Submit uploads the
// pixels to the canvas texture through the device provider. The texture is
// presented by whoever owns the window, see Texture.
type CanvasSurface struct {
	canvas  *ggcanvas.Canvas
	texture any
	submits int
}

var _ Surface = (*CanvasSurface)(nil)

// NewCanvasSurface creates a CanvasSurface for provider.
func NewCanvasSurface(provider gpucontext.DeviceProvider, size image.Point) (*CanvasSurface, error) {
	c, err := ggcanvas.New(provider, size.X, size.Y)
	if err != nil {
		return nil, fmt.Errorf("surface: create canvas: %w", err)
	}
	return &CanvasSurface{canvas: c}, nil
}

// AcquireFrame implements Surface.
func (s *CanvasSurface) AcquireFrame(size image.Point) (Frame, error) {
	if !validSize(size) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, size.X, size.Y)
	}
	if err := s.canvas.Resize(size.X, size.Y); err != nil {
		return nil, fmt.Errorf("surface: resize canvas: %w", err)
	}
	dc := s.canvas.Context()
	if dc == nil {
		return nil, ErrClosed
	}
	dc.Clear()
	return &canvasFrame{surface: s, canvas: NewCanvas(dc), size: size}, nil
}

// Size implements Surface.
func (s *CanvasSurface) Size() image.Point {
	w, h := s.canvas.Size()
	return image.Pt(w, h)
}

// Texture returns the texture produced by the last Submit, or nil.
func (s *CanvasSurface) Texture() any {
	return s.texture
}

// Provider returns the device provider the surface was created for.
func (s *CanvasSurface) Provider() gpucontext.DeviceProvider {
	return s.canvas.Provider()
}

// Submits returns the number of submitted frames.
func (s *CanvasSurface) Submits() int {
	return s.submits
}

// Close implements Surface.
func (s *CanvasSurface) Close() error {
	return s.canvas.Close()
}

func (s *CanvasSurface) upload() error {
	s.canvas.MarkDirty()
	tex, err := s.canvas.Flush()
	if err != nil {
		return fmt.Errorf("surface: upload: %w", err)
	}
	s.texture = tex
	s.submits++
	return nil
}

type canvasFrame struct {
	surface   *CanvasSurface
	canvas    *Canvas
	size      image.Point
	submitted bool
}

func (f *canvasFrame) Canvas() recording.Canvas { return f.canvas }

func (f *canvasFrame) Size() image.Point { return f.size }

func (f *canvasFrame) Submit() error {
	if f.submitted {
		return ErrFrameSubmitted
	}
	f.submitted = true
	return f.surface.upload()
}
