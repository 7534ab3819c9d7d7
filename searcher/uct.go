package searcher

import "math"

type ucb1 struct {
	exploration float64
	lnN         float64
}

func newUCB1(exploration float64, N int) *ucb1 {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &ucb1{exploration: exploration, lnN: math.Log(float64(N))}
}

func (u ucb1) evaluate(score float64, n int) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCB1 = w/n + c*sqrt(ln(N)/n)
	return score/float64(n) + u.exploration*math.Sqrt(u.lnN/float64(n))
}
