// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package overlap indexes the bounds of recorded draw operations and answers
// which parts of a screen region were actually drawn to.
//
// An Index is filled while a view's recording is open and frozen with
// Finish. Queries against a frozen index are read-only and may be repeated
// any number of times within a frame.
package overlap

import (
	"slices"

	"github.com/tidwall/rtree"

	"github.com/gogpu/viewembed/geom"
)

// DefaultMaxRegions is the default number of disjoint rectangles a single
// query may contribute before they are joined into one.
const DefaultMaxRegions = 2

// Index is a spatial index over draw-operation bounds.
//
// Index is not safe for concurrent use while it is being filled.
type Index struct {
	tree     rtree.RTreeG[int]
	rects    []geom.Rect
	bounds   geom.Rect
	finished bool
}

// New returns an empty, open index.
func New() *Index {
	return &Index{rects: make([]geom.Rect, 0, 16)}
}

// Insert records the device-space bounds of one draw operation.
// Empty bounds draw nothing and are ignored.
// Insert panics if the index has been finished.
func (ix *Index) Insert(r geom.Rect) {
	if ix.finished {
		panic("overlap: Insert on finished index")
	}
	if r.IsEmpty() {
		return
	}
	ix.tree.Insert(
		[2]float64{r.Left, r.Top},
		[2]float64{r.Right, r.Bottom},
		len(ix.rects),
	)
	ix.rects = append(ix.rects, r)
	ix.bounds = ix.bounds.Join(r)
}

// Finish freezes the index. It is idempotent.
func (ix *Index) Finish() {
	ix.finished = true
}

// Finished reports whether Finish has been called.
func (ix *Index) Finished() bool {
	return ix.finished
}

// Len returns the number of indexed operations.
func (ix *Index) Len() int {
	return len(ix.rects)
}

// Bounds returns the union of every indexed rectangle.
func (ix *Index) Bounds() geom.Rect {
	return ix.bounds
}

// SearchNonOverlappingDrawnRects returns the regions drawn inside query as
// pairwise non-intersecting rectangles. Operations that intersect query are
// taken in recording order; each one is joined with every result rectangle
// it touches until no two results intersect.
//
// The returned rectangles cover whole operations and may extend past query.
// SearchNonOverlappingDrawnRects panics if the index is not finished.
func (ix *Index) SearchNonOverlappingDrawnRects(query geom.Rect) []geom.Rect {
	if !ix.finished {
		panic("overlap: query on unfinished index")
	}
	if query.IsEmpty() || len(ix.rects) == 0 {
		return nil
	}

	var hits []int
	ix.tree.Search(
		[2]float64{query.Left, query.Top},
		[2]float64{query.Right, query.Bottom},
		func(_, _ [2]float64, i int) bool {
			// The tree matches touching edges; only area overlap counts.
			if ix.rects[i].Intersects(query) {
				hits = append(hits, i)
			}
			return true
		},
	)
	slices.Sort(hits)

	var out []geom.Rect
	for _, i := range hits {
		out = consolidate(out, ix.rects[i])
	}
	return out
}

// consolidate adds r to rs, joining it with any rectangle it intersects.
func consolidate(rs []geom.Rect, r geom.Rect) []geom.Rect {
	for {
		k := slices.IndexFunc(rs, r.Intersects)
		if k < 0 {
			return append(rs, r)
		}
		r = r.Join(rs[k])
		rs = slices.Delete(rs, k, k+1)
	}
}

// Collapse caps the number of regions: when rs holds more than limit
// rectangles, it is replaced by their single bounding rectangle.
// A limit <= 0 disables the cap.
func Collapse(rs []geom.Rect, limit int) []geom.Rect {
	if limit <= 0 || len(rs) <= limit {
		return rs
	}
	return []geom.Rect{geom.Union(rs)}
}
