// Package numeric holds the small numerically-sensitive kernels shared by
// every soft decoder in lvldpc/decoder. None of it is exported outside the
// module: it is scaffolding, not API surface.
package numeric

import "math"

// machineEps is the float64 machine epsilon (2^-52), matching numpy's
// np.finfo(np.float_).eps used by the reference implementation.
const machineEps = 1.0 / (1 << 52)

// epsClamp is the lower clamp used before taking a log of a tanh, and before
// the outer log of the summed phi values. It keeps Phi finite for inputs
// near 0 or near +Inf instead of producing NaN/-Inf.
//
// Value: 1000 * machine epsilon, per the decoder's numerical policy.
const epsClamp = 1000 * machineEps

// Phi computes phi(x) = -log(tanh(x/2)) for x > 0, clamping tanh(x/2) from
// below by epsClamp so the result never overflows to +Inf. The same clamp
// covers the outer application, since callers apply Phi again to the summed
// phi values. Phi is self-inverse: Phi(Phi(x)) == x for x in a
// well-conditioned range.
//
// x is expected to be >= 0; callers pass math.Abs(q) before calling Phi.
func Phi(x float64) float64 {
	t := math.Tanh(x / 2)
	if t < epsClamp {
		t = epsClamp
	}
	return -math.Log(t)
}

// SignProduct returns the product of signs of vals as +1/-1, plus whether any
// element was exactly zero. Zero elements contribute +1 to the product (the
// documented tie-break at exact 0) but are reported via hasZero so callers
// needing exact zero-handling (leave-one-out division) can special-case them.
func SignProduct(vals []float64) (sign float64, hasZero bool) {
	sign = 1
	for _, v := range vals {
		switch {
		case v > 0:
			// sign *= +1, no-op
		case v < 0:
			sign = -sign
		default:
			hasZero = true
		}
	}
	return sign, hasZero
}

// Sign returns +1 for v >= 0 and -1 for v < 0 (the tie-break documented on
// SignProduct, applied to a single value).
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
