// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"image"

	"github.com/gogpu/gg"
)

// ResourcePool stores resources referenced by recording commands.
// Paths are cloned on insertion so a Picture never observes later edits.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths  []*gg.Path
	images []image.Image
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:  make([]*gg.Path, 0, 16),
		images: make([]image.Image, 0, 4),
	}
}

// AddPath clones path into the pool and returns its reference.
func (p *ResourcePool) AddPath(path *gg.Path) PathRef {
	p.paths = append(p.paths, path.Clone())
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for ref, or nil if ref is out of range.
func (p *ResourcePool) GetPath(ref PathRef) *gg.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// AddImage stores img and returns its reference.
// Images are shared, not copied; callers must not mutate them afterwards.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for ref, or nil if ref is out of range.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int { return len(p.paths) }

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int { return len(p.images) }
