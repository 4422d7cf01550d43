package simplex

import "iter"

// SimplexPoints enumerates every integer triple summing to steps, outer
// index first. With boundary false, triples touching an edge are skipped
// so every component is at least 1. Each range over the result starts a
// fresh enumeration.
func SimplexPoints(steps int, boundary bool) iter.Seq[Triple] {
	start := 0
	if !boundary {
		start = 1
	}
	return func(yield func(Triple) bool) {
		for i1 := start; i1 < steps+1-start; i1++ {
			for i2 := start; i2 < steps+1-start-i1; i2++ {
				if !yield(Triple{i1, i2, steps - i1 - i2}) {
					return
				}
			}
		}
	}
}

// LatticeSize is the number of triples SimplexPoints yields.
func LatticeSize(steps int, boundary bool) int {
	n := steps + 1
	if !boundary {
		n = steps - 2
	}
	if n <= 0 {
		return 0
	}
	return n * (n + 1) / 2
}
