// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the render targets the compositor draws frames
// and overlays into.
//
// A Surface hands out one Frame at a time. The caller draws through the
// frame's recording.Canvas and then calls Submit, which presents the pixels
// (for ImageSurface, into a front buffer; for CanvasSurface, by uploading
// to a GPU texture).
//
// # Surface Types
//
//   - ImageSurface: CPU-only, double-buffered *image.RGBA target
//   - CanvasSurface: GPU-backed target built on gg's ggcanvas integration
//
// # Registry
//
// Backends are registered by name with a priority, following the
// database/sql driver pattern:
//
//	surface.Register("software", 10, surface.SoftwareFactory, nil)
//
//	f, err := surface.Lookup("software")
//	s, err := f(provider, image.Pt(800, 600))
//
// # Clipping
//
// The gg.Context adapter behind both surfaces supports intersect and
// difference rectangle clips exactly for axis-aligned content. Difference
// clips under a rotating transform fall back to their bounding box.
package surface
