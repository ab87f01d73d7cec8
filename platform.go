// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewembed

// DefaultMergedLeaseDuration is the number of frames a thread merge is kept
// alive by each frame that contains platform views.
const DefaultMergedLeaseDuration = 10

// ThreadMerger merges the render thread into the platform thread for a
// lease counted in frames. See package threadmerge for an implementation.
type ThreadMerger interface {
	// IsMerged reports whether the threads are currently merged.
	IsMerged() bool

	// IsOnPlatformThread reports whether the caller runs on the platform
	// thread.
	IsOnPlatformThread() bool

	// ExtendLeaseTo extends an active merge to at least frames frames.
	ExtendLeaseTo(frames int)

	// MergeWithLease merges the threads for frames frames.
	MergeWithLease(frames int)
}

// PlatformViewHost positions platform views and overlay surfaces. Its
// methods are called on the platform thread only.
type PlatformViewHost interface {
	// OnFrameBegin is called when a frame starts on the platform thread.
	OnFrameBegin()

	// OnFrameEnd is called when a frame ends on the platform thread.
	OnFrameEnd()

	// DisplayPlatformView shows, positions and sizes the platform view id.
	DisplayPlatformView(id int64, x, y, w, h float64)

	// DisplayOverlaySurface shows the overlay layer id above the platform
	// views displayed so far.
	DisplayOverlaySurface(id int64, x, y, w, h float64)
}

type nopHost struct{}

func (nopHost) OnFrameBegin()                                                   {}
func (nopHost) OnFrameEnd()                                                     {}
func (nopHost) DisplayPlatformView(int64, float64, float64, float64, float64)   {}
func (nopHost) DisplayOverlaySurface(int64, float64, float64, float64, float64) {}
