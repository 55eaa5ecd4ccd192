// Package masonry assigns an ordered sequence of variable-height items to
// columns, greedily balancing column heights. It is a placement policy,
// not an optimal partitioner: O(items x columns) and deterministic.
package masonry

import "fmt"

const (
	// PlaceholderHeight stands in for an item whose real height is not
	// known yet. Skeleton cards and unmeasured images use it so columns
	// stay balanced during load.
	PlaceholderHeight = 8

	skeletonMin = 6
	skeletonMax = 10
)

// Assign maps each item (by position) to a column index. Items are
// processed strictly in input order, each going to the currently shortest
// column, ties broken by the lowest column index. A non-positive height is
// replaced by PlaceholderHeight. columns must be at least 1; an empty item
// list is fine and yields an empty assignment.
func Assign(heights []int, columns int) ([]int, error) {
	if columns <= 0 {
		return nil, fmt.Errorf("masonry: column count must be positive, got %d", columns)
	}
	assignment := make([]int, len(heights))
	running := make([]int, columns)
	for i, h := range heights {
		if h <= 0 {
			h = PlaceholderHeight
		}
		col := 0
		for c := 1; c < columns; c++ {
			if running[c] < running[col] {
				col = c
			}
		}
		assignment[i] = col
		running[col] += h
	}
	return assignment, nil
}

// Distribute groups item positions per column, preserving the top-to-bottom
// order within each column that Assign produced.
func Distribute(heights []int, columns int) ([][]int, error) {
	assignment, err := Assign(heights, columns)
	if err != nil {
		return nil, err
	}
	grouped := make([][]int, columns)
	for i, col := range assignment {
		grouped[col] = append(grouped[col], i)
	}
	return grouped, nil
}

// SkeletonHeights produces n placeholder heights with slight, deterministic
// variation, mimicking the uneven look of a loaded feed without the
// flicker a real random source would cause between frames.
func SkeletonHeights(n int) []int {
	if n <= 0 {
		return nil
	}
	heights := make([]int, n)
	span := skeletonMax - skeletonMin + 1
	for i := range heights {
		heights[i] = skeletonMin + (i*3)%span
	}
	return heights
}
