// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import "github.com/gogpu/viewembed/geom"

// Picture is an immutable, replayable list of drawing commands.
type Picture struct {
	cull      geom.Rect
	commands  []Command
	resources *ResourcePool
}

// CullRect returns the bounds the picture was recorded against.
func (p *Picture) CullRect() geom.Rect {
	return p.cull
}

// Commands returns the recorded commands. The slice must not be modified.
func (p *Picture) Commands() []Command {
	return p.commands
}

// Resources returns the resource pool.
func (p *Picture) Resources() *ResourcePool {
	return p.resources
}

// DrawCount returns the number of commands that touch pixels.
func (p *Picture) DrawCount() int {
	n := 0
	for _, cmd := range p.commands {
		if cmd.Type().IsDraw() {
			n++
		}
	}
	return n
}

// Playback replays the picture onto c. The canvas state is saved before and
// restored after, so transforms and clips in the picture do not leak.
func (p *Picture) Playback(c Canvas) {
	c.Save()
	depth := 0
	for _, cmd := range p.commands {
		switch cmd := cmd.(type) {
		case SaveCommand:
			c.Save()
			depth++
		case RestoreCommand:
			if depth > 0 {
				c.Restore()
				depth--
			}
		case ConcatCommand:
			c.Concat(cmd.Matrix)
		case ClipRectCommand:
			c.ClipRect(cmd.Rect, cmd.Op)
		case ClearCommand:
			c.Clear(cmd.Color)
		case FillRectCommand:
			c.FillRect(cmd.Rect, cmd.Color)
		case FillPathCommand:
			if path := p.resources.GetPath(cmd.Path); path != nil {
				c.FillPath(path, cmd.Color)
			}
		case DrawImageCommand:
			if img := p.resources.GetImage(cmd.Image); img != nil {
				c.DrawImage(img, cmd.X, cmd.Y)
			}
		}
	}
	for ; depth > 0; depth-- {
		c.Restore()
	}
	c.Restore()
}
