// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package overlap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/viewembed/geom"
)

func finished(rs ...geom.Rect) *Index {
	ix := New()
	for _, r := range rs {
		ix.Insert(r)
	}
	ix.Finish()
	return ix
}

func TestSearchEmptyIndex(t *testing.T) {
	ix := finished()
	assert.Empty(t, ix.SearchNonOverlappingDrawnRects(geom.XYWH(0, 0, 100, 100)))
}

func TestSearchSingleOp(t *testing.T) {
	ix := finished(geom.XYWH(0, 0, 20, 20))
	got := ix.SearchNonOverlappingDrawnRects(geom.XYWH(0, 0, 50, 50))
	assert.Equal(t, []geom.Rect{geom.XYWH(0, 0, 20, 20)}, got)
}

func TestSearchIgnoresOpsOutsideQuery(t *testing.T) {
	ix := finished(
		geom.XYWH(0, 0, 10, 10),
		geom.XYWH(200, 200, 10, 10),
		geom.XYWH(50, 0, 10, 10), // touches the query's right edge only
	)
	got := ix.SearchNonOverlappingDrawnRects(geom.XYWH(0, 0, 50, 50))
	assert.Equal(t, []geom.Rect{geom.XYWH(0, 0, 10, 10)}, got)
}

func TestSearchJoinsIntersectingOps(t *testing.T) {
	ix := finished(
		geom.XYWH(0, 0, 10, 10),
		geom.XYWH(5, 5, 10, 10),
		geom.XYWH(40, 40, 5, 5),
	)
	got := ix.SearchNonOverlappingDrawnRects(geom.XYWH(0, 0, 100, 100))
	assert.ElementsMatch(t, []geom.Rect{
		geom.LTRB(0, 0, 15, 15),
		geom.XYWH(40, 40, 5, 5),
	}, got)
}

func TestSearchBridgingOpMergesResults(t *testing.T) {
	// A and B are disjoint until C covers both.
	ix := finished(
		geom.XYWH(0, 0, 10, 10),
		geom.XYWH(30, 0, 10, 10),
		geom.XYWH(5, 5, 30, 2),
	)
	got := ix.SearchNonOverlappingDrawnRects(geom.XYWH(0, 0, 100, 100))
	assert.Equal(t, []geom.Rect{geom.LTRB(0, 0, 40, 10)}, got)
}

func TestSearchResultsAreDisjoint(t *testing.T) {
	ix := New()
	for i := 0; i < 20; i++ {
		x := float64(i * 7 % 60)
		y := float64(i * 13 % 60)
		ix.Insert(geom.XYWH(x, y, 8, 8))
	}
	ix.Finish()

	got := ix.SearchNonOverlappingDrawnRects(geom.XYWH(0, 0, 100, 100))
	require.NotEmpty(t, got)
	for i := range got {
		for j := i + 1; j < len(got); j++ {
			assert.False(t, got[i].Intersects(got[j]), "%v intersects %v", got[i], got[j])
		}
	}
}

func TestSearchIsRepeatable(t *testing.T) {
	ix := finished(geom.XYWH(0, 0, 10, 10), geom.XYWH(20, 20, 10, 10))
	q := geom.XYWH(0, 0, 40, 40)
	first := ix.SearchNonOverlappingDrawnRects(q)
	second := ix.SearchNonOverlappingDrawnRects(q)
	assert.Equal(t, first, second)
}

func TestInsertIgnoresEmpty(t *testing.T) {
	ix := New()
	ix.Insert(geom.Rect{})
	ix.Insert(geom.XYWH(1, 1, 0, 5))
	assert.Equal(t, 0, ix.Len())
	ix.Insert(geom.XYWH(1, 1, 2, 2))
	assert.Equal(t, 1, ix.Len())
	assert.Equal(t, geom.XYWH(1, 1, 2, 2), ix.Bounds())
}

func TestContractViolations(t *testing.T) {
	ix := New()
	assert.Panics(t, func() { ix.SearchNonOverlappingDrawnRects(geom.XYWH(0, 0, 1, 1)) })
	ix.Finish()
	assert.True(t, ix.Finished())
	assert.Panics(t, func() { ix.Insert(geom.XYWH(0, 0, 1, 1)) })
}

func TestCollapse(t *testing.T) {
	rs := []geom.Rect{
		geom.XYWH(0, 0, 5, 5),
		geom.XYWH(10, 10, 5, 5),
		geom.XYWH(30, 0, 5, 5),
	}

	assert.Equal(t, rs, Collapse(rs, 3))
	assert.Equal(t, rs, Collapse(rs, 0), "non-positive limit disables the cap")

	got := Collapse(rs, 2)
	require.Len(t, got, 1)
	assert.Equal(t, geom.LTRB(0, 0, 35, 15), got[0])
}
