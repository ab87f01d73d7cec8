// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/viewembed/geom"
	"github.com/gogpu/viewembed/recording"
)

// mockDevice implements gpucontext.Device for testing.
type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

type mockQueue struct{}

type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct{}

func (m *mockProvider) Device() gpucontext.Device             { return &mockDevice{} }
func (m *mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

var (
	red         = gg.RGB(1, 0, 0)
	opaqueRed   = color.RGBA{R: 255, A: 255}
	transparent = color.RGBA{}
)

func acquire(t *testing.T, s Surface, w, h int) Frame {
	t.Helper()
	f, err := s.AcquireFrame(image.Pt(w, h))
	require.NoError(t, err)
	return f
}

func TestImageSurfaceFillAndSubmit(t *testing.T) {
	s := NewImageSurface()
	defer s.Close()

	assert.Nil(t, s.Snapshot(), "nothing submitted yet")

	f := acquire(t, s, 64, 48)
	assert.Equal(t, image.Pt(64, 48), f.Size())
	f.Canvas().FillRect(geom.XYWH(10, 10, 20, 20), red)
	require.NoError(t, f.Submit())

	img := s.Snapshot()
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
	assert.Equal(t, opaqueRed, img.RGBAAt(15, 15))
	assert.Equal(t, transparent, img.RGBAAt(5, 5))
	assert.Equal(t, 1, s.Submits())
}

func TestImageSurfaceDoubleSubmit(t *testing.T) {
	s := NewImageSurface()
	f := acquire(t, s, 8, 8)
	require.NoError(t, f.Submit())
	assert.ErrorIs(t, f.Submit(), ErrFrameSubmitted)
}

func TestImageSurfaceInvalidSize(t *testing.T) {
	s := NewImageSurface()
	_, err := s.AcquireFrame(image.Pt(0, 10))
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestImageSurfaceClosed(t *testing.T) {
	s := NewImageSurface()
	f := acquire(t, s, 8, 8)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "Close is idempotent")

	assert.ErrorIs(t, f.Submit(), ErrClosed)
	_, err := s.AcquireFrame(image.Pt(8, 8))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestImageSurfaceFramesStartCleared(t *testing.T) {
	s := NewImageSurface()
	f := acquire(t, s, 16, 16)
	f.Canvas().FillRect(geom.XYWH(0, 0, 16, 16), red)
	require.NoError(t, f.Submit())

	f = acquire(t, s, 16, 16)
	require.NoError(t, f.Submit())
	assert.Equal(t, transparent, s.Snapshot().RGBAAt(8, 8))

	acquire(t, s, 32, 8)
	assert.Equal(t, image.Pt(32, 8), s.Size())
}

func TestCanvasDifferenceClip(t *testing.T) {
	s := NewImageSurface()
	f := acquire(t, s, 40, 40)
	c := f.Canvas()

	c.Save()
	c.ClipRect(geom.XYWH(10, 10, 10, 10), recording.ClipDifference)
	c.FillRect(geom.XYWH(0, 0, 40, 40), red)
	c.Restore()
	c.FillRect(geom.XYWH(30, 30, 10, 10), red)
	require.NoError(t, f.Submit())

	img := s.Snapshot()
	assert.Equal(t, opaqueRed, img.RGBAAt(5, 5))
	assert.Equal(t, transparent, img.RGBAAt(15, 15), "hole must stay untouched")
	assert.Equal(t, opaqueRed, img.RGBAAt(25, 25))
	assert.Equal(t, opaqueRed, img.RGBAAt(35, 35))
}

func TestCanvasTranslatedIntersectClip(t *testing.T) {
	s := NewImageSurface()
	f := acquire(t, s, 40, 40)
	c := f.Canvas()

	c.Concat(gg.Translate(20, 0))
	c.ClipRect(geom.XYWH(0, 0, 10, 10), recording.ClipIntersect)
	c.FillRect(geom.XYWH(-20, 0, 40, 40), red)
	require.NoError(t, f.Submit())

	img := s.Snapshot()
	assert.Equal(t, opaqueRed, img.RGBAAt(25, 5))
	assert.Equal(t, transparent, img.RGBAAt(5, 5))
	assert.Equal(t, transparent, img.RGBAAt(25, 15))
}

func TestCanvasClearRespectsClip(t *testing.T) {
	s := NewImageSurface()
	f := acquire(t, s, 20, 20)
	c := f.Canvas()

	c.FillRect(geom.XYWH(0, 0, 20, 20), red)
	c.Save()
	c.ClipRect(geom.XYWH(0, 0, 10, 20), recording.ClipIntersect)
	c.Clear(gg.Transparent)
	c.Restore()
	require.NoError(t, f.Submit())

	img := s.Snapshot()
	assert.Equal(t, transparent, img.RGBAAt(5, 5))
	assert.Equal(t, opaqueRed, img.RGBAAt(15, 5))
}

func TestCanvasSurface(t *testing.T) {
	s, err := NewCanvasSurface(&mockProvider{}, image.Pt(32, 32))
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.Texture())
	f := acquire(t, s, 16, 16)
	f.Canvas().FillRect(geom.XYWH(0, 0, 8, 8), red)
	require.NoError(t, f.Submit())

	assert.NotNil(t, s.Texture())
	assert.Equal(t, 1, s.Submits())
	assert.Equal(t, image.Pt(16, 16), s.Size())
	assert.NotNil(t, s.Provider())
}

func TestCanvasSurfaceNilProvider(t *testing.T) {
	_, err := NewCanvasSurface(nil, image.Pt(8, 8))
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"canvas", "software"}, List())

	s, err := NewSurface(nil, image.Pt(8, 8))
	require.NoError(t, err)
	assert.IsType(t, &ImageSurface{}, s, "nil provider falls back to software")

	s, err = NewSurface(&mockProvider{}, image.Pt(8, 8))
	require.NoError(t, err)
	assert.IsType(t, &CanvasSurface{}, s)

	_, err = Lookup("vulkan")
	var nf *BackendNotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "vulkan", nf.Name)
}

func TestEmptyRegistry(t *testing.T) {
	var r Registry
	_, err := r.NewSurface(nil, image.Pt(1, 1))
	assert.ErrorIs(t, err, ErrNoBackendAvailable)
}
