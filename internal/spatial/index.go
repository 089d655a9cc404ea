// Package spatial provides the broad-phase structure used to find collision
// candidates among committed segments.
package spatial

import (
	"math"

	"raytree/internal/geom"
)

// BucketWidth is the nominal width of a strip; the real width is stretched so
// an integral number of strips covers the area.
const BucketWidth = 10

// Entry is a segment stored in the index together with the ID of the ray
// that produced it. Owner 0 means no ray.
type Entry struct {
	Seg   geom.Segment
	Owner int
}

// Index partitions [0, width] into vertical strips. Each strip lists the
// segments whose horizontal extent overlaps it, in insertion order.
type Index struct {
	width   float64
	count   int
	buckets [][]Entry
	size    int

	scratch []int
}

// New returns an empty index for an area of the given width.
func New(width float64) *Index {
	count := int(math.Floor(width / BucketWidth))
	if count < 1 {
		count = 1
	}
	// One extra strip holds x == width.
	buckets := make([][]Entry, count+1)
	for i := range buckets {
		buckets[i] = make([]Entry, 0, 4)
	}
	return &Index{width: width, count: count, buckets: buckets}
}

// Count returns the number of strips covering [0, width).
func (ix *Index) Count() int { return ix.count }

// Width returns the covered width.
func (ix *Index) Width() float64 { return ix.width }

// Len returns the number of stored bucket references.
func (ix *Index) Len() int { return ix.size }

// BucketOf returns the strip containing x. Positions outside the area are
// clamped to the first or last strip.
func (ix *Index) BucketOf(x float64) int {
	f := math.Floor(x / ix.width * float64(ix.count))
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > float64(ix.count):
		return ix.count
	}
	return int(f)
}

// BucketRange returns the first and last strip spanned by s.
func (ix *Index) BucketRange(s geom.Segment) (int, int) {
	if s.IsVertical() {
		b := ix.BucketOf(s.Line.X)
		return b, b
	}
	return ix.BucketOf(s.Start), ix.BucketOf(s.End)
}

// BucketsFor lists the strips spanned by s in ascending order.
func (ix *Index) BucketsFor(s geom.Segment) []int {
	first, last := ix.BucketRange(s)
	out := make([]int, 0, last-first+1)
	for b := first; b <= last; b++ {
		out = append(out, b)
	}
	return out
}

// Insert adds s to every strip it spans.
func (ix *Index) Insert(s geom.Segment, owner int) {
	first, last := ix.BucketRange(s)
	e := Entry{Seg: s, Owner: owner}
	for b := first; b <= last; b++ {
		ix.buckets[b] = append(ix.buckets[b], e)
		ix.size++
	}
}

// Candidates appends to dst every entry stored in the strips spanned by s,
// strip by strip in ascending order and in insertion order within a strip.
// Segments spanning several strips appear once per shared strip.
func (ix *Index) Candidates(dst []Entry, s geom.Segment) []Entry {
	first, last := ix.BucketRange(s)
	for b := first; b <= last; b++ {
		dst = append(dst, ix.buckets[b]...)
	}
	return dst
}

// Reset empties every strip, keeping allocated capacity.
func (ix *Index) Reset() {
	for i := range ix.buckets {
		ix.buckets[i] = ix.buckets[i][:0]
	}
	ix.size = 0
}

// Rebuild replaces the contents with entries, inserted in order.
func (ix *Index) Rebuild(entries []Entry) {
	ix.Reset()
	for _, e := range entries {
		ix.Insert(e.Seg, e.Owner)
	}
}

// Occupancy reports how many entries each strip holds.
func (ix *Index) Occupancy() []int {
	ix.scratch = ix.scratch[:0]
	for _, b := range ix.buckets {
		ix.scratch = append(ix.scratch, len(b))
	}
	return ix.scratch
}

// StripBounds returns the [min, max) horizontal range of strip b.
func (ix *Index) StripBounds(b int) (float64, float64) {
	w := ix.width / float64(ix.count)
	return float64(b) * w, float64(b+1) * w
}
