// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewembed

import (
	"slices"

	"github.com/gogpu/viewembed/geom"
	"github.com/gogpu/viewembed/overlap"
)

// Region is a screen rectangle of a view's host content that is rendered
// into an overlay surface above the platform views.
type Region struct {
	ViewID int64
	Rect   geom.Rect
}

// ViewPlan is the draw plan of one platform view.
type ViewPlan struct {
	// ID is the platform view id.
	ID int64

	// Rect is the view's screen rectangle.
	Rect geom.Rect

	// Regions are the overlay rectangles of the host content drawn after
	// the view, rounded out to whole pixels.
	Regions []geom.Rect
}

// Plan is the draw plan of a submitted frame, in composition order.
type Plan struct {
	Views []ViewPlan
}

// Regions returns the overlay regions of view id.
func (p *Plan) Regions(id int64) []geom.Rect {
	for _, v := range p.Views {
		if v.ID == id {
			return v.Regions
		}
	}
	return nil
}

// All returns every overlay region in composition order.
func (p *Plan) All() []Region {
	var out []Region
	for _, v := range p.Views {
		for _, r := range v.Regions {
			out = append(out, Region{ViewID: v.ID, Rect: r})
		}
	}
	return out
}

// Len returns the total number of overlay regions.
func (p *Plan) Len() int {
	n := 0
	for _, v := range p.Views {
		n += len(v.Regions)
	}
	return n
}

// planFrame computes the overlay regions of every view in order.
//
// The content recorded after view i is drawn above every platform view at
// or below it, so view i's index is queried with the rectangle of each view
// j <= i. Hits are capped per query by limit, rounded out and attributed to
// view i; identical rectangles are kept once.
func planFrame(order []int64, index func(int64) *overlap.Index, viewRect func(int64) geom.Rect, limit int) *Plan {
	rects := make([]geom.Rect, len(order))
	for i, id := range order {
		rects[i] = viewRect(id)
	}

	plan := &Plan{Views: make([]ViewPlan, 0, len(order))}
	for i, id := range order {
		ix := index(id)
		vp := ViewPlan{ID: id, Rect: rects[i]}
		for j := i; j >= 0; j-- {
			hits := overlap.Collapse(ix.SearchNonOverlappingDrawnRects(rects[j]), limit)
			for _, r := range hits {
				r = r.RoundOut()
				if !slices.Contains(vp.Regions, r) {
					vp.Regions = append(vp.Regions, r)
				}
			}
		}
		plan.Views = append(plan.Views, vp)
	}
	return plan
}
