package domain

// JainIndex computes Jain's fairness index (Σx)² / (n·Σx²) over
// non-negative throughputs.
//
// Fewer than two values are perfectly fair by definition, and an all-zero
// set has index 0. Equal shares return exactly 1 regardless of rounding in
// the sums, and the result never leaves [0, 1].
func JainIndex(xs []float64) float64 {
	n := len(xs)
	if n <= 1 {
		return 1.0
	}

	var sum, sumSq float64
	equal := true
	for _, x := range xs {
		sum += x
		sumSq += x * x
		if x != xs[0] {
			equal = false
		}
	}
	if sumSq == 0 {
		return 0
	}
	if equal {
		return 1.0
	}

	j := (sum * sum) / (float64(n) * sumSq)
	switch {
	case j > 1:
		return 1
	case j < 0:
		return 0
	}
	return j
}
