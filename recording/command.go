// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/viewembed/geom"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave     CommandType = iota // Save current state
	CmdRestore                     // Restore previous state
	CmdConcat                      // Pre-multiply the transform
	CmdClipRect                    // Combine a clip rectangle

	// Drawing commands
	CmdClear     // Clear the clip area
	CmdFillRect  // Fill a rectangle
	CmdFillPath  // Fill a path
	CmdDrawImage // Draw an image
)

var commandTypeNames = [...]string{
	CmdSave:      "Save",
	CmdRestore:   "Restore",
	CmdConcat:    "Concat",
	CmdClipRect:  "ClipRect",
	CmdClear:     "Clear",
	CmdFillRect:  "FillRect",
	CmdFillPath:  "FillPath",
	CmdDrawImage: "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsDraw reports whether the command touches pixels.
func (c CommandType) IsDraw() bool {
	return c >= CmdClear && c <= CmdDrawImage
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// SaveCommand saves the current transform and clip.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the state saved by the matching SaveCommand.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// ConcatCommand pre-multiplies the current transform.
type ConcatCommand struct {
	Matrix gg.Matrix
}

// Type implements Command.
func (ConcatCommand) Type() CommandType { return CmdConcat }

// ClipRectCommand combines a local-space rectangle with the clip.
type ClipRectCommand struct {
	Rect geom.Rect
	Op   ClipOp
}

// Type implements Command.
func (ClipRectCommand) Type() CommandType { return CmdClipRect }

// ClearCommand replaces the clip area with a color.
type ClearCommand struct {
	Color gg.RGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// FillRectCommand fills a rectangle.
type FillRectCommand struct {
	Rect  geom.Rect
	Color gg.RGBA
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// FillPathCommand fills a pooled path.
type FillPathCommand struct {
	Path  PathRef
	Color gg.RGBA
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// DrawImageCommand draws a pooled image.
type DrawImageCommand struct {
	Image ImageRef
	X, Y  float64
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }
