// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/viewembed/geom"
)

// BoundsSink receives the device-space bounds of each recorded draw
// operation. overlap.Index implements it.
type BoundsSink interface {
	Insert(r geom.Rect)
}

// Recorder captures drawing operations as commands.
// Use Finish to obtain an immutable Picture.
//
// Draw calls after Finish are ignored.
// The Recorder is not safe for concurrent use.
type Recorder struct {
	cull      geom.Rect
	sink      BoundsSink
	commands  []Command
	resources *ResourcePool

	matrix gg.Matrix
	clip   geom.Rect // device-space bounds of the intersect clips
	stack  []recorderState

	picture *Picture
}

var _ Canvas = (*Recorder)(nil)

// recorderState stores the state for Save/Restore.
type recorderState struct {
	matrix gg.Matrix
	clip   geom.Rect
}

// BeginRecording starts a recording whose content is expected to lie within
// cull. A nil sink disables bounds reporting.
func BeginRecording(cull geom.Rect, sink BoundsSink) *Recorder {
	return &Recorder{
		cull:      cull,
		sink:      sink,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
		matrix:    gg.Identity(),
		clip:      cull,
		stack:     make([]recorderState, 0, 8),
	}
}

// Finish ends the recording. Subsequent calls return the same Picture.
func (r *Recorder) Finish() *Picture {
	if r.picture == nil {
		r.picture = &Picture{
			cull:      r.cull,
			commands:  r.commands,
			resources: r.resources,
		}
	}
	return r.picture
}

// Finished reports whether Finish has been called.
func (r *Recorder) Finished() bool {
	return r.picture != nil
}

// CullRect returns the rectangle passed to BeginRecording.
func (r *Recorder) CullRect() geom.Rect {
	return r.cull
}

// Matrix returns the current transform.
func (r *Recorder) Matrix() gg.Matrix {
	return r.matrix
}

// Save implements Canvas.
func (r *Recorder) Save() {
	if r.Finished() {
		return
	}
	r.stack = append(r.stack, recorderState{matrix: r.matrix, clip: r.clip})
	r.commands = append(r.commands, SaveCommand{})
}

// Restore implements Canvas.
func (r *Recorder) Restore() {
	if r.Finished() || len(r.stack) == 0 {
		return
	}
	s := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.matrix = s.matrix
	r.clip = s.clip
	r.commands = append(r.commands, RestoreCommand{})
}

// Concat implements Canvas.
func (r *Recorder) Concat(m gg.Matrix) {
	if r.Finished() {
		return
	}
	r.matrix = r.matrix.Multiply(m)
	r.commands = append(r.commands, ConcatCommand{Matrix: m})
}

// Translate moves the origin by (dx, dy).
func (r *Recorder) Translate(dx, dy float64) {
	r.Concat(gg.Translate(dx, dy))
}

// Scale scales subsequent drawing by (sx, sy).
func (r *Recorder) Scale(sx, sy float64) {
	r.Concat(gg.Scale(sx, sy))
}

// ClipRect implements Canvas. Difference clips are recorded but do not
// shrink the reported bounds.
func (r *Recorder) ClipRect(rect geom.Rect, op ClipOp) {
	if r.Finished() {
		return
	}
	if op == ClipIntersect {
		in, ok := r.clip.Intersect(r.deviceBounds(rect))
		if !ok {
			in = geom.Rect{}
		}
		r.clip = in
	}
	r.commands = append(r.commands, ClipRectCommand{Rect: rect, Op: op})
}

// Clear implements Canvas. It covers the whole clip area.
func (r *Recorder) Clear(c gg.RGBA) {
	if r.Finished() {
		return
	}
	r.commands = append(r.commands, ClearCommand{Color: c})
	r.report(r.clip)
}

// FillRect implements Canvas.
func (r *Recorder) FillRect(rect geom.Rect, c gg.RGBA) {
	if r.Finished() {
		return
	}
	r.commands = append(r.commands, FillRectCommand{Rect: rect, Color: c})
	r.reportLocal(rect)
}

// FillPath implements Canvas.
func (r *Recorder) FillPath(p *gg.Path, c gg.RGBA) {
	if r.Finished() || p == nil {
		return
	}
	ref := r.resources.AddPath(p)
	r.commands = append(r.commands, FillPathCommand{Path: ref, Color: c})
	r.reportLocal(PathBounds(p))
}

// DrawImage implements Canvas.
func (r *Recorder) DrawImage(img image.Image, x, y float64) {
	if r.Finished() || img == nil {
		return
	}
	ref := r.resources.AddImage(img)
	r.commands = append(r.commands, DrawImageCommand{Image: ref, X: x, Y: y})
	b := img.Bounds()
	r.reportLocal(geom.XYWH(x, y, float64(b.Dx()), float64(b.Dy())))
}

func (r *Recorder) reportLocal(local geom.Rect) {
	r.report(r.deviceBounds(local))
}

// report clips device bounds to the current clip and forwards them.
func (r *Recorder) report(device geom.Rect) {
	if r.sink == nil {
		return
	}
	if in, ok := device.Intersect(r.clip); ok {
		r.sink.Insert(in)
	}
}

// deviceBounds maps a local rectangle through the current transform and
// returns the axis-aligned bounds of the result.
func (r *Recorder) deviceBounds(local geom.Rect) geom.Rect {
	if local.IsEmpty() {
		return geom.Rect{}
	}
	if r.matrix.IsTranslation() {
		return local.Offset(r.matrix.C, r.matrix.F)
	}
	corners := [4]gg.Point{
		gg.Pt(local.Left, local.Top),
		gg.Pt(local.Right, local.Top),
		gg.Pt(local.Right, local.Bottom),
		gg.Pt(local.Left, local.Bottom),
	}
	out := geom.Rect{
		Left: math.Inf(1), Top: math.Inf(1),
		Right: math.Inf(-1), Bottom: math.Inf(-1),
	}
	for _, c := range corners {
		p := r.matrix.TransformPoint(c)
		out.Left = math.Min(out.Left, p.X)
		out.Top = math.Min(out.Top, p.Y)
		out.Right = math.Max(out.Right, p.X)
		out.Bottom = math.Max(out.Bottom, p.Y)
	}
	return out
}

// PathBounds returns the bounds of every on-curve and control point of p.
// The control polygon of a Bézier segment contains the curve, so this is a
// conservative bound.
func PathBounds(p *gg.Path) geom.Rect {
	var pts []gg.Point
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			pts = append(pts, e.Point)
		case gg.LineTo:
			pts = append(pts, e.Point)
		case gg.QuadTo:
			pts = append(pts, e.Control, e.Point)
		case gg.CubicTo:
			pts = append(pts, e.Control1, e.Control2, e.Point)
		}
	}
	if len(pts) == 0 {
		return geom.Rect{}
	}
	b := geom.Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, pt := range pts[1:] {
		b.Left = math.Min(b.Left, pt.X)
		b.Top = math.Min(b.Top, pt.Y)
		b.Right = math.Max(b.Right, pt.X)
		b.Bottom = math.Max(b.Bottom, pt.Y)
	}
	return b
}
