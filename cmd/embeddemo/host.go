// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/viewembed"
	"github.com/gogpu/viewembed/geom"
	"github.com/gogpu/viewembed/surface"
)

type placement struct {
	overlay bool
	id      int64
	rect    geom.Rect
}

// screenHost stands in for the platform: it remembers where views and
// overlays are displayed and flattens them over the main surface.
type screenHost struct {
	colors     map[int64]color.Color
	placements []placement

	// layers holds overlay surfaces in creation order, which is layer id
	// order.
	layers []*surface.ImageSurface
}

var _ viewembed.PlatformViewHost = (*screenHost)(nil)

func newScreenHost(views []View) *screenHost {
	h := &screenHost{colors: make(map[int64]color.Color, len(views))}
	for _, v := range views {
		h.colors[v.ID] = gg.Hex(v.Color).Color()
	}
	return h
}

func (h *screenHost) OnFrameBegin() {
	h.placements = h.placements[:0]
}

func (h *screenHost) OnFrameEnd() {}

func (h *screenHost) DisplayPlatformView(id int64, x, y, w, hh float64) {
	h.placements = append(h.placements, placement{id: id, rect: geom.XYWH(x, y, w, hh)})
}

func (h *screenHost) DisplayOverlaySurface(id int64, x, y, w, hh float64) {
	h.placements = append(h.placements, placement{overlay: true, id: id, rect: geom.XYWH(x, y, w, hh)})
}

// surfaceFactory creates the overlay surfaces of the embedder.
func (h *screenHost) surfaceFactory(gpucontext.DeviceProvider, image.Point) (surface.Surface, error) {
	s := surface.NewImageSurface()
	h.layers = append(h.layers, s)
	return s, nil
}

// composite stacks the displayed views and overlays over base in display
// order.
func (h *screenHost) composite(base *image.RGBA) *image.RGBA {
	out := image.NewRGBA(base.Bounds())
	xdraw.Copy(out, image.Point{}, base, base.Bounds(), xdraw.Src, nil)

	for _, p := range h.placements {
		dst := p.rect.Image()
		if !p.overlay {
			xdraw.Draw(out, dst, image.NewUniform(h.colors[p.id]), image.Point{}, xdraw.Over)
			continue
		}
		if p.id < 0 || int(p.id) >= len(h.layers) {
			continue
		}
		src := h.layers[p.id].Snapshot()
		if src == nil {
			continue
		}
		// Overlay content is rendered at the layer origin.
		xdraw.Draw(out, dst, src, image.Point{}, xdraw.Over)
	}
	return out
}
