// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"
	"image"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/viewembed/geom"
)

// sinkSpy collects reported bounds.
type sinkSpy struct {
	rects []geom.Rect
}

func (s *sinkSpy) Insert(r geom.Rect) { s.rects = append(s.rects, r) }

// canvasSpy logs every Canvas call.
type canvasSpy struct {
	calls []string
}

func (c *canvasSpy) Save()    { c.calls = append(c.calls, "Save") }
func (c *canvasSpy) Restore() { c.calls = append(c.calls, "Restore") }
func (c *canvasSpy) Concat(m gg.Matrix) {
	c.calls = append(c.calls, fmt.Sprintf("Concat(%g,%g)", m.C, m.F))
}
func (c *canvasSpy) ClipRect(r geom.Rect, op ClipOp) {
	c.calls = append(c.calls, fmt.Sprintf("ClipRect%v %v", r, op))
}
func (c *canvasSpy) Clear(gg.RGBA) { c.calls = append(c.calls, "Clear") }
func (c *canvasSpy) FillRect(r geom.Rect, _ gg.RGBA) {
	c.calls = append(c.calls, fmt.Sprintf("FillRect%v", r))
}
func (c *canvasSpy) FillPath(*gg.Path, gg.RGBA) { c.calls = append(c.calls, "FillPath") }
func (c *canvasSpy) DrawImage(_ image.Image, x, y float64) {
	c.calls = append(c.calls, fmt.Sprintf("DrawImage(%g,%g)", x, y))
}

var red = gg.RGB(1, 0, 0)

func TestRecorderReportsDeviceBounds(t *testing.T) {
	sink := &sinkSpy{}
	rec := BeginRecording(geom.XYWH(0, 0, 200, 200), sink)

	rec.FillRect(geom.XYWH(0, 0, 20, 20), red)
	rec.Save()
	rec.Translate(50, 10)
	rec.FillRect(geom.XYWH(0, 0, 10, 10), red)
	rec.Scale(2, 3)
	rec.FillRect(geom.XYWH(1, 1, 5, 5), red)
	rec.Restore()
	rec.FillRect(geom.XYWH(100, 100, 5, 5), red)

	assert.Equal(t, []geom.Rect{
		geom.XYWH(0, 0, 20, 20),
		geom.XYWH(50, 10, 10, 10),
		geom.LTRB(52, 13, 62, 28),
		geom.XYWH(100, 100, 5, 5),
	}, sink.rects)
}

func TestRecorderClipsBounds(t *testing.T) {
	sink := &sinkSpy{}
	rec := BeginRecording(geom.XYWH(0, 0, 100, 100), sink)

	rec.FillRect(geom.XYWH(90, 90, 50, 50), red)
	rec.ClipRect(geom.XYWH(0, 0, 10, 10), ClipIntersect)
	rec.FillRect(geom.XYWH(5, 5, 50, 50), red)
	rec.FillRect(geom.XYWH(20, 20, 5, 5), red) // fully clipped
	rec.ClipRect(geom.XYWH(0, 0, 5, 5), ClipDifference)
	rec.Clear(gg.Transparent)

	assert.Equal(t, []geom.Rect{
		geom.LTRB(90, 90, 100, 100),
		geom.LTRB(5, 5, 10, 10),
		geom.XYWH(0, 0, 10, 10),
	}, sink.rects)
}

func TestRecorderPathBounds(t *testing.T) {
	sink := &sinkSpy{}
	rec := BeginRecording(geom.XYWH(0, 0, 100, 100), sink)

	p := gg.NewPath()
	p.MoveTo(10, 10)
	p.LineTo(30, 15)
	p.CubicTo(40, 0, 50, 40, 20, 30)
	p.Close()
	rec.FillPath(p, red)

	require.Len(t, sink.rects, 1)
	assert.Equal(t, geom.LTRB(10, 0, 50, 40), sink.rects[0])
}

func TestRecorderImageBounds(t *testing.T) {
	sink := &sinkSpy{}
	rec := BeginRecording(geom.XYWH(0, 0, 100, 100), sink)
	rec.DrawImage(image.NewRGBA(image.Rect(0, 0, 8, 4)), 3, 5)
	assert.Equal(t, []geom.Rect{geom.XYWH(3, 5, 8, 4)}, sink.rects)
}

func TestRecorderNilSink(t *testing.T) {
	rec := BeginRecording(geom.XYWH(0, 0, 10, 10), nil)
	rec.FillRect(geom.XYWH(0, 0, 5, 5), red)
	assert.Len(t, rec.Finish().Commands(), 1)
}

func TestRecorderRestoreWithoutSave(t *testing.T) {
	rec := BeginRecording(geom.XYWH(0, 0, 10, 10), nil)
	rec.Restore()
	assert.Empty(t, rec.Finish().Commands())
}

func TestRecorderFinish(t *testing.T) {
	sink := &sinkSpy{}
	rec := BeginRecording(geom.XYWH(0, 0, 10, 10), sink)
	rec.FillRect(geom.XYWH(0, 0, 5, 5), red)

	assert.False(t, rec.Finished())
	pic := rec.Finish()
	assert.True(t, rec.Finished())
	assert.Same(t, pic, rec.Finish())

	rec.FillRect(geom.XYWH(0, 0, 5, 5), red)
	assert.Len(t, pic.Commands(), 1, "draws after Finish are ignored")
	assert.Len(t, sink.rects, 1)
	assert.Equal(t, 1, pic.DrawCount())
	assert.Equal(t, geom.XYWH(0, 0, 10, 10), pic.CullRect())
}

func TestRecorderClonesPaths(t *testing.T) {
	rec := BeginRecording(geom.XYWH(0, 0, 10, 10), nil)
	p := gg.NewPath()
	p.Rectangle(0, 0, 5, 5)
	rec.FillPath(p, red)
	p.Rectangle(6, 6, 1, 1)

	pic := rec.Finish()
	require.Equal(t, 1, pic.Resources().PathCount())
	assert.Less(t, len(pic.Resources().GetPath(0).Elements()), len(p.Elements()))
}

func TestPicturePlayback(t *testing.T) {
	rec := BeginRecording(geom.XYWH(0, 0, 100, 100), nil)
	rec.Save()
	rec.Translate(5, 6)
	rec.ClipRect(geom.XYWH(0, 0, 50, 50), ClipIntersect)
	rec.FillRect(geom.XYWH(1, 2, 3, 4), red)
	rec.Save() // left open
	rec.DrawImage(image.NewRGBA(image.Rect(0, 0, 1, 1)), 7, 8)
	pic := rec.Finish()

	spy := &canvasSpy{}
	pic.Playback(spy)

	assert.Equal(t, []string{
		"Save",
		"Save",
		"Concat(5,6)",
		"ClipRect(0,0 50x50) Intersect",
		"FillRect(1,2 3x4)",
		"Save",
		"DrawImage(7,8)",
		"Restore",
		"Restore",
		"Restore",
	}, spy.calls)
}

func TestCommandTypeString(t *testing.T) {
	assert.Equal(t, "Save", CmdSave.String())
	assert.Equal(t, "FillPath", CmdFillPath.String())
	assert.Equal(t, "Unknown", CommandType(200).String())
	assert.True(t, CmdClear.IsDraw())
	assert.False(t, CmdClipRect.IsDraw())
	assert.Equal(t, "Difference", ClipDifference.String())
}
