// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package viewembed composites host-rendered drawing layers together with
// embedded platform views.
//
// # Overview
//
// A frame contains a z-ordered sequence of platform views, each followed by
// the host content drawn above it. Platform views are owned by the platform
// and sit above the main frame buffer, so host content that overlaps a view
// and is drawn after it must be rendered into a separate overlay surface that
// the platform stacks above the view. The Embedder decides, per frame, which
// screen regions go to overlays and which are drawn to the main surface.
//
// # Frame Lifecycle
//
//	e := viewembed.NewEmbedder(viewembed.WithHost(host))
//
//	e.BeginFrame(image.Pt(800, 600), 2, merger)
//	e.PrerollCompositeEmbeddedView(1, params)
//	if e.PostPrerollAction(merger) == viewembed.ResubmitFrame {
//	    // Redo the frame once the threads are merged.
//	}
//	c := e.CompositeEmbeddedView(1)
//	c.FillRect(geom.XYWH(0, 0, 20, 20), gg.RGB(1, 0, 0))
//	err := e.SubmitFrame(provider, frame)
//	e.EndFrame(shouldResubmit, merger)
//
// # Packages
//
//   - geom: axis-aligned rectangles
//   - recording: drawing command recorder and immutable pictures
//   - overlap: spatial index answering which rectangles were drawn
//   - surface: render targets backed by gg contexts and GPU canvases
//   - overlay: pool of overlay surfaces reused across frames
//   - threadmerge: lease-based render/platform thread merger
//
// # Threads
//
// Platform views may only be touched from the platform thread. The first
// frame that contains a platform view asks for the render thread to be merged
// into the platform thread and is then redone; while views remain on screen
// the merge lease keeps being extended.
package viewembed
