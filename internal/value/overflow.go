package value

import "golang.org/x/exp/constraints"

// addOverflows, subOverflows and mulOverflows are generic wrap-aware
// overflow checks shared by Int (and usable by any other fixed-width
// signed scalar SPEC_FULL.md might add later). Go's native int64 addition
// already wraps exactly like the two's-complement arithmetic the overflow
// check assumes, so the generic form works for any width without a
// per-width specialization.
func addOverflows[T constraints.Signed](a, b T) bool {
	sum := a + b
	if b > 0 && sum < a {
		return true
	}
	if b < 0 && sum > a {
		return true
	}
	return false
}

func subOverflows[T constraints.Signed](a, b T) bool {
	diff := a - b
	if b < 0 && diff < a {
		return true
	}
	if b > 0 && diff > a {
		return true
	}
	return false
}

func mulOverflows[T constraints.Signed](a, b T) bool {
	if a == 0 || b == 0 {
		return false
	}
	p := a * b
	return p/b != a
}
