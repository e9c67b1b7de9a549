package binomial

import "math/big"

// Binomial returns C(n, k) exactly. Out-of-range arguments yield zero,
// matching the combinatorial convention.
//
// The value is built by the multiplicative recurrence
// C(n-k+i, i) = C(n-k+i-1, i-1) * (n-k+i) / i for i = 1..k on integers,
// so every division is exact and no intermediate factorial is ever formed.
func Binomial(n, k int) *big.Int {
	if k < 0 || n < 0 || k > n {
		return big.NewInt(0)
	}
	if k > n-k {
		k = n - k
	}
	acc := big.NewInt(1)
	for i := 1; i <= k; i++ {
		acc.Mul(acc, big.NewInt(int64(n-k+i)))
		acc.Div(acc, big.NewInt(int64(i)))
	}

	return acc
}

// Beta returns β(x, y) = C(x+y, x), the largest number of steps that a
// binomial schedule can adjoin with x slots and at most y reruns of any
// step. Negative y yields zero.
func Beta(x, y int) *big.Int {
	if y < 0 {
		return big.NewInt(0)
	}

	return Binomial(x+y, x)
}

// BetaFloat returns β(x, y) as a float64 for cost comparisons. The
// conversion is exact up to 2^53 and monotone beyond, which is all the
// cost comparisons require.
func BetaFloat(x, y int) float64 {
	f, _ := new(big.Float).SetInt(Beta(x, y)).Float64()

	return f
}

// BetaAtMost reports whether β(x, y) <= limit without leaving integer
// arithmetic.
func BetaAtMost(x, y, limit int) bool {
	return Beta(x, y).Cmp(big.NewInt(int64(limit))) <= 0
}
