// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewembed

import (
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/viewembed/geom"
	"github.com/gogpu/viewembed/overlap"
	"github.com/gogpu/viewembed/overlay"
	"github.com/gogpu/viewembed/recording"
	"github.com/gogpu/viewembed/surface"
)

// Embedder composites host content with embedded platform views.
//
// An Embedder is driven by one frame pipeline: every method except those
// documented otherwise is called from the render thread, and one frame
// completes before the next begins. Embedder is not safe for concurrent use.
type Embedder struct {
	host       PlatformViewHost
	pool       *overlay.Pool
	maxRegions int
	lease      int

	frameSize  image.Point
	pixelRatio float64

	order     []int64
	params    map[int64]*ViewParams
	recorders map[int64]*recording.Recorder
	indexes   map[int64]*overlap.Index

	phase           Phase
	pendingResubmit bool
	lastPlan        *Plan
	closed          bool
}

// NewEmbedder creates an idle Embedder.
func NewEmbedder(opts ...Option) *Embedder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Embedder{
		host:       o.host,
		maxRegions: o.maxRegions,
		lease:      o.lease,
		pixelRatio: 1,
		params:     make(map[int64]*ViewParams),
		recorders:  make(map[int64]*recording.Recorder),
		indexes:    make(map[int64]*overlap.Index),
	}
	e.pool = overlay.NewPool(o.factory, overlay.WithEvictHook(func(l *overlay.Layer) {
		Logger().Warn("viewembed: dropped stale overlay layer", "layer", l.ID)
	}))
	return e
}

// BeginFrame starts a frame of the given size in pixels. The platform
// host is notified only when called on the platform thread.
func (e *Embedder) BeginFrame(size image.Point, pixelRatio float64, merger ThreadMerger) {
	e.Reset()
	e.lastPlan = nil
	e.frameSize = size
	e.pixelRatio = pixelRatio
	e.phase = PhaseRecording

	if merger.IsOnPlatformThread() {
		e.host.OnFrameBegin()
	}
}

// PrerollCompositeEmbeddedView adds platform view id on top of the views
// prerolled so far and starts a fresh recording for the host content drawn
// above it. The stored params are replaced only when they changed.
//
// Prerolling an id twice in one frame restarts its recording without
// changing its position in the composition order.
func (e *Embedder) PrerollCompositeEmbeddedView(id int64, params *ViewParams) {
	if params == nil {
		panic(fmt.Sprintf("viewembed: nil params for view %d", id))
	}
	ix := overlap.New()
	e.indexes[id] = ix
	e.recorders[id] = recording.BeginRecording(geom.FromSize(e.frameSize), ix)

	if !slices.Contains(e.order, id) {
		e.order = append(e.order, id)
	}
	if old, ok := e.params[id]; !ok || !old.Equal(params) {
		e.params[id] = params
	}
	e.phase = PhaseRecording
}

// CompositeEmbeddedView returns the canvas recording the host content
// drawn above view id, or nil if id was not prerolled this frame.
func (e *Embedder) CompositeEmbeddedView(id int64) recording.Canvas {
	r, ok := e.recorders[id]
	if !ok {
		return nil
	}
	return r
}

// CurrentCanvases returns the recording canvas of every view in
// composition order.
func (e *Embedder) CurrentCanvases() []recording.Canvas {
	out := make([]recording.Canvas, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.recorders[id])
	}
	return out
}

// RootCanvas returns nil: the root surface belongs to the platform and is
// drawn through the frame given to SubmitFrame.
func (e *Embedder) RootCanvas() recording.Canvas {
	return nil
}

// ViewRect returns the screen rectangle of view id: the origin of its
// final bounding rect and its logical size scaled by the device pixel
// ratio. It panics if id was never prerolled.
func (e *Embedder) ViewRect(id int64) geom.Rect {
	p, ok := e.params[id]
	if !ok {
		panic(fmt.Sprintf("viewembed: unknown view %d", id))
	}
	return geom.XYWH(
		p.FinalBoundingRect.X(),
		p.FinalBoundingRect.Y(),
		p.SizePoints.W*e.pixelRatio,
		p.SizePoints.H*e.pixelRatio,
	)
}

// PostPrerollAction decides whether the frame can proceed once all views
// are prerolled. A frame with platform views needs the threads merged:
// an existing merge is extended, otherwise the frame is cancelled and
// ResubmitFrame is returned so the caller redoes it after EndFrame merges.
func (e *Embedder) PostPrerollAction(merger ThreadMerger) PostPrerollResult {
	if len(e.order) == 0 {
		e.phase = PhaseCompositing
		return Success
	}
	if merger.IsMerged() {
		merger.ExtendLeaseTo(e.lease)
		e.phase = PhaseCompositing
		return Success
	}

	Logger().Info("viewembed: platform views need merged threads, resubmitting frame",
		"views", len(e.order))
	e.pendingResubmit = true
	e.CancelFrame()
	return ResubmitFrame
}

// SubmitFrame draws the frame: host content goes to frame except where it
// must appear above a platform view, which is rendered into overlay
// surfaces from the pool. Views and overlays are then displayed through the
// platform host in z-order.
//
// All regions are cut from frame before any picture is drawn, so content of
// a lower view that falls inside a higher view's region is left only to that
// region's overlay, which does not repaint it.
//
// SubmitFrame does nothing while a resubmit is pending. Errors from
// acquiring or submitting surfaces are returned; the frame is then
// incomplete and stays in PhaseSubmitting.
func (e *Embedder) SubmitFrame(provider gpucontext.DeviceProvider, frame surface.Frame) error {
	if e.pendingResubmit {
		Logger().Debug("viewembed: skipping submit, frame will be resubmitted")
		return nil
	}
	if e.closed {
		return ErrClosed
	}
	if frame == nil {
		return ErrNilFrame
	}

	e.phase = PhaseSubmitting

	pictures := make(map[int64]*recording.Picture, len(e.order))
	for _, id := range e.order {
		rec, ok := e.recorders[id]
		if !ok {
			panic(fmt.Sprintf("viewembed: no recording for view %d", id))
		}
		pictures[id] = rec.Finish()
		e.indexes[id].Finish()
	}

	plan := planFrame(e.order, e.index, e.ViewRect, e.maxRegions)
	e.lastPlan = plan
	Logger().Debug("viewembed: frame planned", "views", len(plan.Views), "overlays", plan.Len())

	// Every region is cut from the main canvas before any picture is
	// drawn so lower views cannot paint under a higher view's overlay.
	c := frame.Canvas()
	c.Save()
	for _, v := range plan.Views {
		for _, r := range v.Regions {
			c.ClipRect(r, recording.ClipDifference)
		}
	}
	for _, id := range e.order {
		pictures[id].Playback(c)
	}
	c.Restore()
	if err := frame.Submit(); err != nil {
		return fmt.Errorf("viewembed: submit main frame: %w", err)
	}

	for _, v := range plan.Views {
		e.host.DisplayPlatformView(v.ID, v.Rect.X(), v.Rect.Y(), v.Rect.Width(), v.Rect.Height())
		for _, r := range v.Regions {
			if err := e.submitOverlay(provider, pictures[v.ID], r); err != nil {
				return fmt.Errorf("viewembed: overlay %v of view %d: %w", r, v.ID, err)
			}
		}
	}
	e.phase = PhaseDone
	return nil
}

// submitOverlay renders the part of pic inside r into a pool layer, with
// r's top-left corner at the layer origin, and displays it at r.
func (e *Embedder) submitOverlay(provider gpucontext.DeviceProvider, pic *recording.Picture, r geom.Rect) error {
	layer, err := e.pool.GetLayer(provider, e.frameSize)
	if err != nil {
		return err
	}
	f, err := layer.Surface.AcquireFrame(e.frameSize)
	if err != nil {
		return err
	}

	c := f.Canvas()
	c.Clear(gg.Transparent)
	c.Save()
	c.ClipRect(geom.XYWH(0, 0, r.Width(), r.Height()), recording.ClipIntersect)
	c.Concat(gg.Translate(-r.Left, -r.Top))
	pic.Playback(c)
	c.Restore()
	if err := f.Submit(); err != nil {
		return err
	}

	Logger().Debug("viewembed: overlay submitted", "layer", layer.ID, "rect", r)
	e.host.DisplayOverlaySurface(layer.ID, r.X(), r.Y(), r.Width(), r.Height())
	return nil
}

// EndFrame finishes the frame. When the frame was cancelled for a
// resubmit and shouldResubmit is set, the threads are merged for the lease
// duration. Overlay layers are released for the next frame and the
// platform host is notified when called on the platform thread.
func (e *Embedder) EndFrame(shouldResubmit bool, merger ThreadMerger) {
	if shouldResubmit && e.pendingResubmit {
		Logger().Info("viewembed: merging threads", "lease", e.lease)
		merger.MergeWithLease(e.lease)
		e.pendingResubmit = false
	}
	e.pool.RecycleLayers()

	if merger.IsOnPlatformThread() {
		e.host.OnFrameEnd()
	}
}

// CancelFrame discards the frame in progress. It is equivalent to Reset.
func (e *Embedder) CancelFrame() {
	e.Reset()
}

// Reset clears the composition order and all recordings. Stored view
// params are kept so an unchanged preroll keeps its params.
func (e *Embedder) Reset() {
	e.order = e.order[:0]
	clear(e.recorders)
	clear(e.indexes)
	e.phase = PhaseIdle
}

// Close releases the overlay surfaces. SubmitFrame fails afterwards.
func (e *Embedder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	return e.pool.Close()
}

// CompositionOrder returns the view ids of the current frame, bottom first.
func (e *Embedder) CompositionOrder() []int64 {
	return slices.Clone(e.order)
}

// Params returns the stored params of view id, or nil.
func (e *Embedder) Params(id int64) *ViewParams {
	return e.params[id]
}

// Phase returns the lifecycle phase. A pending resubmit takes precedence
// over the phase of the frame in progress.
func (e *Embedder) Phase() Phase {
	if e.pendingResubmit {
		return PhasePendingResubmit
	}
	return e.phase
}

// PendingResubmit reports whether the current frame must be redone on
// merged threads.
func (e *Embedder) PendingResubmit() bool {
	return e.pendingResubmit
}

// LastPlan returns the draw plan of the last SubmitFrame of this frame,
// or nil.
func (e *Embedder) LastPlan() *Plan {
	return e.lastPlan
}

// FrameSize returns the size given to BeginFrame.
func (e *Embedder) FrameSize() image.Point {
	return e.frameSize
}

// OverlayLayers returns the number of pooled overlay layers.
func (e *Embedder) OverlayLayers() int {
	return e.pool.Len()
}

func (e *Embedder) index(id int64) *overlap.Index {
	return e.indexes[id]
}
