package tube

import "math"

// BiasT remaps a uniform chain parameter so ring spacing crowds toward
// one end. Positive bias packs rings near t=0, negative near t=1, zero
// is identity. The exponent grows with |bias| so small values stay
// close to uniform.
func BiasT(t, bias float64) float64 {
	if bias == 0 {
		return t
	}
	k := 1 + 4*math.Abs(bias)
	if bias > 0 {
		return math.Pow(t, k)
	}
	return 1 - math.Pow(1-t, k)
}
