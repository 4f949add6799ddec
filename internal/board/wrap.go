package board

// Wrap maps x into the half-open interval [-n/2, n-n/2) of an axis with
// extent n. Odd extents put the extra position on the positive side. An
// extent of zero or less means the axis is unbounded and x is returned as is.
func Wrap(x, n int) int {
	if n <= 0 {
		return x
	}
	left := n / 2
	m := (x + left) % n
	if m < 0 {
		m += n
	}
	return m - left
}

// Bounds returns the inclusive minimum and exclusive maximum of an axis with
// extent n. It is meaningless for unbounded axes.
func Bounds(n int) (lo, hi int) {
	left := n / 2
	return -left, n - left
}
