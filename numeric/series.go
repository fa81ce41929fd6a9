package numeric

// ConvergenceStreak is the number of consecutive negligible terms SumSeries
// requires before it stops.
const ConvergenceStreak = 4

// SumSeries adds term(n) for n = n0, n0+dn, n0+2dn, ... until the relative
// contribution |term/sum| has stayed below tolerance for ConvergenceStreak
// consecutive terms.
//
// There is no iteration cap: term must describe a convergent series at the
// given tolerance, otherwise SumSeries does not return.
func SumSeries[T Scalar](tolerance float64, n0, dn int, term func(n int) T) T {
	return SumWithStreak(tolerance, ConvergenceStreak, n0, dn, term)
}

// SumWithStreak is SumSeries with a caller chosen streak length.
func SumWithStreak[T Scalar](tolerance float64, streak, n0, dn int, term func(n int) T) T {
	toleranceSquared := tolerance * tolerance

	var sum T
	successes := 0
	for n := n0; successes < streak; n += dn {
		t := term(n)
		sum += t
		if NormSquared(t/sum) < toleranceSquared {
			successes++
		} else {
			successes = 0
		}
	}
	return sum
}
