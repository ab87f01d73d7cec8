// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording captures drawing operations as typed commands and
// replays them onto any Canvas.
//
// # Architecture
//
// The package follows the Command pattern used by Skia's SkPicture:
//
//   - Canvas: the drawing surface contract shared by recorders and targets
//   - Recorder: a Canvas that stores commands instead of rasterizing them
//   - Picture: the immutable result of a finished Recorder
//
// While recording, the Recorder reports the device-space bounds of every
// draw operation to a BoundsSink. The compositor uses this to learn which
// screen regions each embedded view's host content actually covers.
//
// # Basic Usage
//
//	ix := overlap.New()
//	rec := recording.BeginRecording(geom.XYWH(0, 0, 800, 600), ix)
//	rec.FillRect(geom.XYWH(10, 10, 100, 40), gg.RGB(1, 0, 0))
//	pic := rec.Finish()
//	ix.Finish()
//
//	pic.Playback(target)
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. A Picture is immutable and may be
// played back from multiple goroutines.
package recording
