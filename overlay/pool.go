// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package overlay pools the offscreen surfaces that overlay regions are
// rendered into.
//
// Layers are handed out with GetLayer during a frame and returned en masse
// with RecycleLayers at the end of it. Their surfaces survive recycling, so
// steady-state frames allocate nothing.
package overlay

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/viewembed/surface"
)

// ErrClosed is returned by GetLayer after Close.
var ErrClosed = errors.New("overlay: pool is closed")

// Layer is a pooled overlay surface with a stable id.
type Layer struct {
	// ID identifies the layer to the platform for as long as it lives.
	ID int64

	// Surface is the render target of the layer.
	Surface surface.Surface

	provider gpucontext.DeviceProvider
	format   gputypes.TextureFormat
	size     image.Point
}

// Pool is a pool of overlay layers.
//
// Pool is not safe for concurrent use; it is driven from the render thread
// only.
type Pool struct {
	factory surface.Factory
	onEvict func(*Layer)
	layers  []*Layer
	used    int
	nextID  int64
	closed  bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithEvictHook registers fn to be called for each stale layer the pool
// drops, before its surface is closed.
func WithEvictHook(fn func(*Layer)) PoolOption {
	return func(p *Pool) {
		p.onEvict = fn
	}
}

// NewPool creates an empty pool that builds surfaces with factory.
func NewPool(factory surface.Factory, opts ...PoolOption) *Pool {
	p := &Pool{factory: factory}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetLayer returns a free layer for provider and size, creating one when no
// free layer fits. Free layers created for another provider, surface format
// or size are dropped.
func (p *Pool) GetLayer(provider gpucontext.DeviceProvider, size image.Point) (*Layer, error) {
	if p.closed {
		return nil, ErrClosed
	}
	format := surfaceFormat(provider)

	for p.used < len(p.layers) {
		l := p.layers[p.used]
		if l.provider == provider && l.format == format && l.size == size {
			p.used++
			return l, nil
		}
		p.evict(p.used)
	}

	s, err := p.factory(provider, size)
	if err != nil {
		return nil, fmt.Errorf("overlay: create layer surface: %w", err)
	}
	l := &Layer{
		ID:       p.nextID,
		Surface:  s,
		provider: provider,
		format:   format,
		size:     size,
	}
	p.nextID++
	p.layers = append(p.layers, l)
	p.used++
	return l, nil
}

// RecycleLayers marks every layer free for the next frame.
func (p *Pool) RecycleLayers() {
	p.used = 0
}

// Len returns the number of layers owned by the pool.
func (p *Pool) Len() int {
	return len(p.layers)
}

// InUse returns the number of layers handed out since the last recycle.
func (p *Pool) InUse() int {
	return p.used
}

// Close closes every layer surface. The pool cannot be used afterwards.
func (p *Pool) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	var errs []error
	for _, l := range p.layers {
		if err := l.Surface.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	p.layers = nil
	p.used = 0
	return errors.Join(errs...)
}

// evict drops the free layer at index i.
func (p *Pool) evict(i int) {
	l := p.layers[i]
	p.layers = append(p.layers[:i], p.layers[i+1:]...)
	if p.onEvict != nil {
		p.onEvict(l)
	}
	_ = l.Surface.Close()
}

func surfaceFormat(provider gpucontext.DeviceProvider) gputypes.TextureFormat {
	var format gputypes.TextureFormat
	if provider != nil {
		format = provider.SurfaceFormat()
	}
	return format
}
