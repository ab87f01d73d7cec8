// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/viewembed/geom"
	"github.com/gogpu/viewembed/recording"
)

// Canvas adapts a gg.Context to recording.Canvas.
//
// gg clips by intersection only, so the adapter keeps its own clip state:
// an intersect rectangle and a list of difference holes, both in device
// space. Axis-aligned fills are split into the visible pieces and drawn
// piece by piece.
type Canvas struct {
	dc    *gg.Context
	state canvasState
	stack []canvasState
}

type canvasState struct {
	matrix gg.Matrix
	clip   geom.Rect
	holes  []geom.Rect
}

var _ recording.Canvas = (*Canvas)(nil)

// NewCanvas wraps dc. The canvas starts with an identity transform and a
// clip covering the whole context.
func NewCanvas(dc *gg.Context) *Canvas {
	return &Canvas{
		dc: dc,
		state: canvasState{
			matrix: gg.Identity(),
			clip:   geom.XYWH(0, 0, float64(dc.Width()), float64(dc.Height())),
		},
	}
}

// Context returns the wrapped gg.Context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// Save implements recording.Canvas.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore implements recording.Canvas.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Concat implements recording.Canvas.
func (c *Canvas) Concat(m gg.Matrix) {
	c.state.matrix = c.state.matrix.Multiply(m)
}

// ClipRect implements recording.Canvas.
func (c *Canvas) ClipRect(r geom.Rect, op recording.ClipOp) {
	dev := c.deviceBounds(r)
	switch op {
	case recording.ClipIntersect:
		in, ok := c.state.clip.Intersect(dev)
		if !ok {
			in = geom.Rect{}
		}
		c.state.clip = in
	case recording.ClipDifference:
		// Clip keeps the saved state's backing array untouched.
		c.state.holes = append(slices.Clip(c.state.holes), dev)
	}
}

// Clear implements recording.Canvas.
func (c *Canvas) Clear(col gg.RGBA) {
	full := geom.XYWH(0, 0, float64(c.dc.Width()), float64(c.dc.Height()))
	if len(c.state.holes) == 0 && c.state.clip.Contains(full) {
		c.dc.ClearWithColor(col)
		return
	}
	for _, piece := range c.visible(c.state.clip) {
		r := piece.Image()
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				c.dc.SetPixel(x, y, col)
			}
		}
	}
}

// FillRect implements recording.Canvas.
func (c *Canvas) FillRect(r geom.Rect, col gg.RGBA) {
	if !c.axisAligned() {
		p := gg.NewPath()
		p.Rectangle(r.Left, r.Top, r.Width(), r.Height())
		c.FillPath(p, col)
		return
	}
	c.dc.Push()
	c.dc.Identity()
	c.dc.SetColor(col.Color())
	for _, piece := range c.visible(c.deviceBounds(r)) {
		c.dc.DrawRectangle(piece.Left, piece.Top, piece.Width(), piece.Height())
		_ = c.dc.Fill()
	}
	c.dc.Pop()
}

// FillPath implements recording.Canvas.
func (c *Canvas) FillPath(p *gg.Path, col gg.RGBA) {
	c.clipped(c.deviceBounds(recording.PathBounds(p)), func() {
		c.dc.SetColor(col.Color())
		appendPath(c.dc, p)
		_ = c.dc.Fill()
	})
}

// DrawImage implements recording.Canvas.
func (c *Canvas) DrawImage(img image.Image, x, y float64) {
	b := img.Bounds()
	dev := c.deviceBounds(geom.XYWH(x, y, float64(b.Dx()), float64(b.Dy())))
	buf := gg.ImageBufFromImage(img)
	c.clipped(dev, func() {
		c.dc.DrawImage(buf, x, y)
	})
}

// clipped runs draw once per visible piece of dev with the gg clip set to
// that piece and the current transform applied.
func (c *Canvas) clipped(dev geom.Rect, draw func()) {
	for _, piece := range c.visible(dev) {
		c.dc.Push()
		c.dc.Identity()
		c.dc.ClipRect(piece.Left, piece.Top, piece.Width(), piece.Height())
		c.dc.SetTransform(c.state.matrix)
		draw()
		c.dc.Pop()
	}
}

// visible returns the parts of a device rectangle inside the clip and
// outside every hole.
func (c *Canvas) visible(dev geom.Rect) []geom.Rect {
	in, ok := dev.Intersect(c.state.clip)
	if !ok {
		return nil
	}
	return in.Subtract(c.state.holes...)
}

func (c *Canvas) axisAligned() bool {
	m := c.state.matrix
	return m.B == 0 && m.D == 0
}

func (c *Canvas) deviceBounds(local geom.Rect) geom.Rect {
	if local.IsEmpty() {
		return geom.Rect{}
	}
	m := c.state.matrix
	pts := [4]gg.Point{
		m.TransformPoint(gg.Pt(local.Left, local.Top)),
		m.TransformPoint(gg.Pt(local.Right, local.Top)),
		m.TransformPoint(gg.Pt(local.Right, local.Bottom)),
		m.TransformPoint(gg.Pt(local.Left, local.Bottom)),
	}
	return boundsOf(pts[:])
}

func appendPath(dc *gg.Context, p *gg.Path) {
	dc.ClearPath()
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}

func boundsOf(pts []gg.Point) geom.Rect {
	if len(pts) == 0 {
		return geom.Rect{}
	}
	b := geom.Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		b = geom.Rect{
			Left:   min(b.Left, p.X),
			Top:    min(b.Top, p.Y),
			Right:  max(b.Right, p.X),
			Bottom: max(b.Bottom, p.Y),
		}
	}
	return b
}
