package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/emirpasic/gods/v2/maps/treemap"

	"github.com/xiam/lene/ast"
)

// DefaultIndexMax counts only the first child of every group, which is the
// name of the frame or slot the group declares.
const DefaultIndexMax = 0

// TokenFrequency keeps a Histogram of leaf values for every depth of one or
// more trees. Depths are kept sorted.
type TokenFrequency struct {
	depths *treemap.Map[int, *Histogram[any]]
}

// NewTokenFrequency creates an empty table.
func NewTokenFrequency() *TokenFrequency {
	return &TokenFrequency{depths: treemap.New[int, *Histogram[any]]()}
}

// FromTree counts the leaves of tree whose position inside their group is
// not greater than idxMax. Leaves are counted by their raw value, so token
// trees and detokenized trees give the same table.
func FromTree(tree ast.List, idxMax int) *TokenFrequency {
	tf := NewTokenFrequency()
	ast.Walk(tree, func(index int, node interface{}, depth int) bool {
		if index <= idxMax {
			tf.Count(depth, ast.ValueOf(node))
		}
		return true
	})
	return tf
}

// Count adds one occurrence of value at depth.
func (tf *TokenFrequency) Count(depth int, value any) {
	tf.histogram(depth).Incr(value)
}

func (tf *TokenFrequency) histogram(depth int) *Histogram[any] {
	h, ok := tf.depths.Get(depth)
	if !ok {
		h = NewHistogram[any]()
		tf.depths.Put(depth, h)
	}
	return h
}

// Depth returns the histogram for depth, nil if nothing was counted there.
func (tf *TokenFrequency) Depth(depth int) *Histogram[any] {
	h, _ := tf.depths.Get(depth)
	return h
}

// Depths returns the depths with counts, in ascending order.
func (tf *TokenFrequency) Depths() []int {
	return tf.depths.Keys()
}

// Update merges the counts of other into tf.
func (tf *TokenFrequency) Update(other *TokenFrequency) {
	if other == nil {
		return
	}
	for _, depth := range other.Depths() {
		tf.histogram(depth).Update(other.Depth(depth))
	}
}

// UpdateMap merges a plain depth to value to count mapping into tf.
func (tf *TokenFrequency) UpdateMap(counts map[int]map[any]int) {
	depths := make([]int, 0, len(counts))
	for depth := range counts {
		depths = append(depths, depth)
	}
	sort.Ints(depths)

	for _, depth := range depths {
		if len(counts[depth]) == 0 {
			continue
		}
		tf.histogram(depth).UpdateMap(counts[depth])
	}
}

// Report writes one section per depth, in ascending order, listing the
// values seen at that depth from the most to the least common.
func (tf *TokenFrequency) Report(w io.Writer) error {
	for _, depth := range tf.Depths() {
		if _, err := fmt.Fprintf(w, "depth %d:\n", depth); err != nil {
			return err
		}
		for _, bin := range tf.Depth(depth).MostCommon(0) {
			if _, err := fmt.Fprintf(w, "    %v\t%d\n", bin.Value, bin.Count); err != nil {
				return err
			}
		}
	}
	return nil
}

func (tf *TokenFrequency) String() string {
	var b strings.Builder
	_ = tf.Report(&b)
	return b.String()
}
