// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

// Subtract returns the parts of r not covered by any of holes as a set of
// disjoint rectangles. The result is nil when r is fully covered.
func (r Rect) Subtract(holes ...Rect) []Rect {
	if r.IsEmpty() {
		return nil
	}
	pieces := []Rect{r}
	for _, h := range holes {
		if h.IsEmpty() {
			continue
		}
		next := pieces[:0:0]
		for _, p := range pieces {
			next = append(next, p.cut(h)...)
		}
		pieces = next
		if len(pieces) == 0 {
			return nil
		}
	}
	return pieces
}

// cut splits r around h into at most four bands: full-width strips above
// and below h, then the left and right remainders beside it.
func (r Rect) cut(h Rect) []Rect {
	in, ok := r.Intersect(h)
	if !ok {
		return []Rect{r}
	}
	out := make([]Rect, 0, 4)
	if in.Top > r.Top {
		out = append(out, Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: in.Top})
	}
	if in.Bottom < r.Bottom {
		out = append(out, Rect{Left: r.Left, Top: in.Bottom, Right: r.Right, Bottom: r.Bottom})
	}
	if in.Left > r.Left {
		out = append(out, Rect{Left: r.Left, Top: in.Top, Right: in.Left, Bottom: in.Bottom})
	}
	if in.Right < r.Right {
		out = append(out, Rect{Left: in.Right, Top: in.Top, Right: r.Right, Bottom: in.Bottom})
	}
	return out
}
