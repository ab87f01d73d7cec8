// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/viewembed"
	"github.com/gogpu/viewembed/geom"
	"github.com/gogpu/viewembed/recording"
)

// Scene is a frame sequence loaded from TOML.
type Scene struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	PixelRatio float64 `toml:"pixel_ratio"`
	Frames     int     `toml:"frames"`

	// MaxOverlayRegions caps disjoint overlays per occlusion query.
	MaxOverlayRegions int `toml:"max_overlay_regions"`

	// Background is drawn before the first platform view.
	Background []Shape `toml:"background"`

	Views []View `toml:"views"`
}

// View is a platform view and the host content drawn above it.
type View struct {
	ID     int64   `toml:"id"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Color fills the view in the composited output.
	Color string `toml:"color"`

	// Dx moves the view every frame.
	Dx float64 `toml:"dx"`

	Draw []Shape `toml:"draw"`
}

// Shape is one drawing operation.
type Shape struct {
	Kind   string  `toml:"kind"` // rect, circle or star
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Radius float64 `toml:"radius"`
	Color  string  `toml:"color"`
}

const defaultScene = `
width = 480
height = 320
pixel_ratio = 1
frames = 3
max_overlay_regions = 2

[[background]]
kind = "rect"
x = 0
y = 0
width = 480
height = 320
color = "#1e2a3a"

[[views]]
id = 1
x = 40
y = 40
width = 200
height = 140
color = "#3366cc"
dx = 20

  [[views.draw]]
  kind = "circle"
  x = 120
  y = 110
  radius = 40
  color = "#ffcc00"

[[views]]
id = 2
x = 200
y = 120
width = 220
height = 160
color = "#33aa66"

  [[views.draw]]
  kind = "rect"
  x = 60
  y = 60
  width = 80
  height = 40
  color = "#ff4040"

  [[views.draw]]
  kind = "star"
  x = 380
  y = 60
  radius = 30
  color = "#ffffff"
`

// loadScene reads a scene from path, or the built-in scene if path is
// empty.
func loadScene(path string) (*Scene, error) {
	data := []byte(defaultScene)
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("embeddemo: read scene: %w", err)
		}
	}
	return parseScene(data)
}

func parseScene(data []byte) (*Scene, error) {
	s := &Scene{PixelRatio: 1, Frames: 1, MaxOverlayRegions: -1}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("embeddemo: parse scene: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("embeddemo: invalid scene size %dx%d", s.Width, s.Height)
	}
	seen := make(map[int64]bool, len(s.Views))
	for _, v := range s.Views {
		if seen[v.ID] {
			return nil, fmt.Errorf("embeddemo: duplicate view id %d", v.ID)
		}
		seen[v.ID] = true
		for _, sh := range v.Draw {
			if err := sh.validate(); err != nil {
				return nil, fmt.Errorf("embeddemo: view %d: %w", v.ID, err)
			}
		}
	}
	for _, sh := range s.Background {
		if err := sh.validate(); err != nil {
			return nil, fmt.Errorf("embeddemo: background: %w", err)
		}
	}
	return s, nil
}

func (sh Shape) validate() error {
	switch sh.Kind {
	case "rect", "circle", "star":
		return nil
	default:
		return fmt.Errorf("unknown shape kind %q", sh.Kind)
	}
}

// params returns the placement of v in frame n.
func (v View) params(n int, pixelRatio float64) *viewembed.ViewParams {
	x := v.X + v.Dx*float64(n)
	return &viewembed.ViewParams{
		Offset:            gg.Pt(x, v.Y),
		SizePoints:        geom.Size{W: v.Width, H: v.Height},
		FinalBoundingRect: geom.XYWH(x*pixelRatio, v.Y*pixelRatio, v.Width*pixelRatio, v.Height*pixelRatio),
	}
}

// draw records sh onto c.
func (sh Shape) draw(c recording.Canvas) {
	col := gg.Hex(sh.Color)
	switch sh.Kind {
	case "rect":
		c.FillRect(geom.XYWH(sh.X, sh.Y, sh.Width, sh.Height), col)
	case "circle":
		p := gg.NewPath()
		p.Circle(sh.X, sh.Y, sh.Radius)
		c.FillPath(p, col)
	case "star":
		c.FillPath(starPath(sh.X, sh.Y, sh.Radius, sh.Radius/2, 5), col)
	}
}

func starPath(cx, cy, outer, inner float64, points int) *gg.Path {
	p := gg.NewPath()
	for i := 0; i < points*2; i++ {
		angle := float64(i) * math.Pi / float64(points)
		r := outer
		if i%2 == 1 {
			r = inner
		}
		x := cx + r*math.Cos(angle-math.Pi/2)
		y := cy + r*math.Sin(angle-math.Pi/2)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}
