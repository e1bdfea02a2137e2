package render

// PageBounds converts the validated one-based index pair into a 0-based
// half-open slice range clamped to n rows. No indexes means the whole
// result; a single index N means rows N through the end; a pair (A, B)
// means rows A through B-1.
func PageBounds(indexes []int, n int) (start, end int) {
	switch len(indexes) {
	case 0:
		start, end = 0, n
	case 1:
		start, end = indexes[0]-1, n
	default:
		start, end = indexes[0]-1, indexes[1]-1
	}

	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}
