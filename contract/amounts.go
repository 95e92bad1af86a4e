package contract

import (
	"math"
	"math/bits"
)

// All monetary and count fields use saturating arithmetic: addition clamps at
// the maximum representable value, subtraction clamps at zero. Clamping is a
// deliberate (if lossy) policy, never a fault.

// satAdd clamps at MaxUint64 on overflow.
func satAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// satSub clamps at zero on underflow.
func satSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// satMul clamps at MaxUint64 on overflow.
func satMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// bpsShare returns value * bps / BpsDenominator with saturating multiply and
// truncating division, the fee-split rule used everywhere.
func bpsShare(value uint64, bps uint16) uint64 {
	return satMul(value, uint64(bps)) / BpsDenominator
}

// proportionalShare returns floor(principal * part / whole) computed through a
// 128-bit intermediate, so partial unstakes are exact and reproducible across
// platforms. part must not exceed whole and whole must be non-zero; both are
// guaranteed by the balance check in RecordUnstake. The floor rounding is the
// system's core numerical policy.
func proportionalShare(principal, part, whole uint64) uint64 {
	if part == 0 {
		return 0
	}
	hi, lo := bits.Mul64(principal, part)
	// part <= whole, so the quotient fits in 64 bits.
	q, _ := bits.Div64(hi, lo, whole)
	return q
}

// lockupBonusBps maps a lock duration to its maturity bonus tier, longest
// threshold first.
func lockupBonusBps(duration int64) uint16 {
	switch {
	case duration >= BonusTierYearDuration:
		return BonusTierYearBps
	case duration >= BonusTierHalfDuration:
		return BonusTierHalfBps
	case duration >= BonusTierQuarterDuration:
		return BonusTierQuarterBps
	default:
		return 0
	}
}
