// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewembed

import (
	"github.com/gogpu/viewembed/overlap"
	"github.com/gogpu/viewembed/surface"
)

// Option configures an Embedder during creation.
//
// Example:
//
//	e := viewembed.NewEmbedder(
//	    viewembed.WithHost(host),
//	    viewembed.WithMaxOverlayRegions(4),
//	)
type Option func(*options)

// options holds optional configuration for Embedder creation.
type options struct {
	host       PlatformViewHost
	maxRegions int
	lease      int
	factory    surface.Factory
}

// defaultOptions returns the default embedder options.
func defaultOptions() options {
	return options{
		host:       nopHost{},
		maxRegions: overlap.DefaultMaxRegions,
		lease:      DefaultMergedLeaseDuration,
		factory:    surface.NewSurface,
	}
}

// WithHost sets the platform collaborator that displays views and overlay
// surfaces. Without it the embedder composites but displays nothing.
func WithHost(h PlatformViewHost) Option {
	return func(o *options) {
		if h != nil {
			o.host = h
		}
	}
}

// WithMaxOverlayRegions sets how many disjoint overlay regions a single
// occlusion query may yield before they are joined into one. n <= 0
// disables the cap.
func WithMaxOverlayRegions(n int) Option {
	return func(o *options) {
		o.maxRegions = n
	}
}

// WithLeaseDuration sets the thread merge lease, in frames, requested and
// extended by frames with platform views. Non-positive values are ignored.
func WithLeaseDuration(frames int) Option {
	return func(o *options) {
		if frames > 0 {
			o.lease = frames
		}
	}
}

// WithSurfaceFactory sets the factory used to create overlay surfaces.
// The default picks the best registered surface backend.
//
// Example:
//
//	e := viewembed.NewEmbedder(viewembed.WithSurfaceFactory(surface.SoftwareFactory))
func WithSurfaceFactory(f surface.Factory) Option {
	return func(o *options) {
		if f != nil {
			o.factory = f
		}
	}
}
