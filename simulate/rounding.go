package simulate

import "sort"

// largestRemainder rounds a non-negative real vector to a non-negative
// integer vector summing exactly to total, the standard determinism
// fix for floating-point multinomial rounding. Ties on the fractional
// remainder are broken by ascending index order.
func largestRemainder(values []float64, total int) []int {
	n := len(values)
	out := make([]int, n)
	if n == 0 {
		return out
	}

	type frac struct {
		index     int
		remainder float64
	}
	fracs := make([]frac, n)
	floorSum := 0
	for i, v := range values {
		f := int(v)
		out[i] = f
		fracs[i] = frac{index: i, remainder: v - float64(f)}
		floorSum += f
	}

	remaining := total - floorSum
	if remaining < 0 {
		remaining = 0
	}

	sort.SliceStable(fracs, func(a, b int) bool {
		if fracs[a].remainder != fracs[b].remainder {
			return fracs[a].remainder > fracs[b].remainder
		}
		return fracs[a].index < fracs[b].index
	})

	for i := 0; i < remaining && i < n; i++ {
		out[fracs[i].index]++
	}
	return out
}
