// Package stats counts token occurrences: a multiset Histogram and a
// TokenFrequency table that keeps one Histogram per tree depth.
package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
)

// maxPrintBins is the number of bins String shows before truncating.
const maxPrintBins = 10

// Bin is a value and the number of times it was seen.
type Bin[K comparable] struct {
	Value K
	Count int
}

// Histogram is a multiset: it maps values to positive counts. A value whose
// count drops to zero is removed. Values are kept in the order they were
// first counted, which is the order used to break ties. The zero value is an
// empty Histogram ready to use.
type Histogram[K comparable] struct {
	bins *linkedhashmap.Map[K, int]
}

func (h *Histogram[K]) table() *linkedhashmap.Map[K, int] {
	if h.bins == nil {
		h.bins = linkedhashmap.New[K, int]()
	}
	return h.bins
}

// NewHistogram creates a Histogram counting every given item once.
func NewHistogram[K comparable](items ...K) *Histogram[K] {
	h := &Histogram[K]{bins: linkedhashmap.New[K, int]()}
	for _, item := range items {
		h.Incr(item)
	}
	return h
}

// Get returns the count of value, zero if it was never seen.
func (h *Histogram[K]) Get(value K) int {
	count, _ := h.table().Get(value)
	return count
}

// Contains reports whether value has a positive count.
func (h *Histogram[K]) Contains(value K) bool {
	_, ok := h.table().Get(value)
	return ok
}

// Incr counts value once more.
func (h *Histogram[K]) Incr(value K) {
	h.IncrBy(value, 1)
}

// IncrBy adds n to the count of value. Counts that end up at zero or less
// are removed.
func (h *Histogram[K]) IncrBy(value K, n int) {
	count := h.Get(value) + n
	if count <= 0 {
		h.table().Remove(value)
		return
	}
	h.table().Put(value, count)
}

// Decr removes one occurrence of value.
func (h *Histogram[K]) Decr(value K) {
	h.IncrBy(value, -1)
}

// DecrBy removes n occurrences of value.
func (h *Histogram[K]) DecrBy(value K, n int) {
	h.IncrBy(value, -n)
}

// Delete removes value. Deleting a value that is not there is not an error.
func (h *Histogram[K]) Delete(value K) {
	h.table().Remove(value)
}

// N returns the population: the sum of all counts.
func (h *Histogram[K]) N() int {
	total := 0
	for _, count := range h.table().Values() {
		total += count
	}
	return total
}

// B returns the number of bins: distinct values with a positive count.
func (h *Histogram[K]) B() int {
	return h.table().Size()
}

// Keys returns the counted values in the order they were first seen.
func (h *Histogram[K]) Keys() []K {
	return h.table().Keys()
}

// Freq returns the share of the population taken by value, 0.0 on an empty
// histogram.
func (h *Histogram[K]) Freq(value K) float64 {
	total := h.N()
	if total == 0 {
		return 0.0
	}
	return float64(h.Get(value)) / float64(total)
}

// Max returns the value with the highest count. It returns false on an empty
// histogram.
func (h *Histogram[K]) Max() (K, bool) {
	bins := h.MostCommon(1)
	if len(bins) == 0 {
		var zero K
		return zero, false
	}
	return bins[0].Value, true
}

// MostCommon returns the n bins with the highest counts, highest first. All
// of the bins are returned when n is zero or less. Ties keep the order in
// which values were first seen.
func (h *Histogram[K]) MostCommon(n int) []Bin[K] {
	bins := h.table().Keys()

	out := make([]Bin[K], 0, len(bins))
	for _, value := range bins {
		out = append(out, Bin[K]{Value: value, Count: h.Get(value)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Elements returns every value repeated as many times as it was counted.
func (h *Histogram[K]) Elements() []K {
	elements := make([]K, 0, h.N())
	for _, value := range h.table().Keys() {
		for i := h.Get(value); i > 0; i-- {
			elements = append(elements, value)
		}
	}
	return elements
}

// Copy returns an independent histogram with the same counts.
func (h *Histogram[K]) Copy() *Histogram[K] {
	c := NewHistogram[K]()
	c.Update(h)
	return c
}

// Update adds the counts of other to h. A nil histogram adds nothing.
func (h *Histogram[K]) Update(other *Histogram[K]) {
	if other == nil {
		return
	}
	for _, value := range other.table().Keys() {
		h.IncrBy(value, other.Get(value))
	}
}

// UpdateMap adds the counts of a plain map to h, in key order when the keys
// can be sorted.
func (h *Histogram[K]) UpdateMap(counts map[K]int) {
	keys := make([]K, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	for _, k := range keys {
		h.IncrBy(k, counts[k])
	}
}

// Equal returns true if both histograms hold the same counts, regardless of
// order.
func (h *Histogram[K]) Equal(other *Histogram[K]) bool {
	if other == nil {
		return h.B() == 0
	}
	if h.B() != other.B() {
		return false
	}
	for _, value := range h.table().Keys() {
		if h.Get(value) != other.Get(value) {
			return false
		}
	}
	return true
}

// Add returns the sum of both histograms.
func (h *Histogram[K]) Add(other *Histogram[K]) *Histogram[K] {
	out := h.Copy()
	out.Update(other)
	return out
}

// Sub returns the counts of h minus the counts of other. Values that end up
// with no positive count are left out.
func (h *Histogram[K]) Sub(other *Histogram[K]) *Histogram[K] {
	out := NewHistogram[K]()
	for _, value := range h.table().Keys() {
		n := h.Get(value)
		if other != nil {
			n -= other.Get(value)
		}
		out.IncrBy(value, n)
	}
	return out
}

// Union returns the maximum of each count.
func (h *Histogram[K]) Union(other *Histogram[K]) *Histogram[K] {
	out := h.Copy()
	if other == nil {
		return out
	}
	for _, value := range other.table().Keys() {
		if n := other.Get(value); n > out.Get(value) {
			out.table().Put(value, n)
		}
	}
	return out
}

// Intersect returns the minimum of each count. Values missing from either
// histogram are left out.
func (h *Histogram[K]) Intersect(other *Histogram[K]) *Histogram[K] {
	out := NewHistogram[K]()
	if other == nil {
		return out
	}
	for _, value := range h.table().Keys() {
		n := h.Get(value)
		if m := other.Get(value); m < n {
			n = m
		}
		out.IncrBy(value, n)
	}
	return out
}

// String lists the bins, most common first, like
// Histogram({"a": 2, "b": 1}). Only the first bins are shown on large
// histograms.
func (h *Histogram[K]) String() string {
	bins := h.MostCommon(0)

	items := make([]string, 0, maxPrintBins+1)
	for i, bin := range bins {
		if i == maxPrintBins {
			items = append(items, "...")
			break
		}
		items = append(items, fmt.Sprintf("%#v: %d", bin.Value, bin.Count))
	}
	return "Histogram({" + strings.Join(items, ", ") + "})"
}
