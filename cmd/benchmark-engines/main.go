package main

import (
	"fmt"
	"math"
	"time"

	letsberational "github.com/JunbeomL22/letsberational/letsberational_lib"
)

type quote struct {
	price, F, K, T float64
	q              int
	sigma          float64
}

// Head-to-head comparison of the rational solver against the classic
// Newton-Raphson iteration: accuracy and throughput over a quote grid.
func main() {
	fmt.Println("⚡ Implied Volatility Engine Comparison")
	fmt.Println("======================================")

	quotes := buildGrid()
	fmt.Printf("📊 Grid: %d quotes (σ ∈ [0.01, 2], moneyness ∈ [0.8, 1.25], T ∈ [0.1, 2])\n\n", len(quotes))

	// Accuracy pass
	var worstRational, worstNewton float64
	newtonFailures := 0
	for _, qt := range quotes {
		iv, err := letsberational.ImpliedVolatility(qt.price, qt.F, qt.K, qt.T, qt.q)
		if err == nil {
			if d := math.Abs(iv - qt.sigma); d > worstRational {
				worstRational = d
			}
		}
		nv, err := letsberational.NewtonImpliedVolatility(qt.price, qt.F, qt.K, qt.T, qt.q)
		if err != nil {
			newtonFailures++
		} else if d := math.Abs(nv - qt.sigma); d > worstNewton {
			worstNewton = d
		}
	}

	fmt.Println("🔬 Accuracy (worst absolute vol error):")
	fmt.Printf("   Rational solver:  %.3g\n", worstRational)
	fmt.Printf("   Newton-Raphson:   %.3g (%d convergence failures)\n\n", worstNewton, newtonFailures)

	// Timing pass
	const rounds = 200

	start := time.Now()
	for r := 0; r < rounds; r++ {
		for _, qt := range quotes {
			letsberational.ImpliedVolatility(qt.price, qt.F, qt.K, qt.T, qt.q)
		}
	}
	rationalElapsed := time.Since(start)

	start = time.Now()
	for r := 0; r < rounds; r++ {
		for _, qt := range quotes {
			letsberational.NewtonImpliedVolatility(qt.price, qt.F, qt.K, qt.T, qt.q)
		}
	}
	newtonElapsed := time.Since(start)

	n := rounds * len(quotes)
	fmt.Println("⏱️  Throughput:")
	fmt.Printf("   Rational solver:  %8.1f ns/op (%d inversions in %v)\n",
		float64(rationalElapsed.Nanoseconds())/float64(n), n, rationalElapsed)
	fmt.Printf("   Newton-Raphson:   %8.1f ns/op (%d inversions in %v)\n",
		float64(newtonElapsed.Nanoseconds())/float64(n), n, newtonElapsed)

	if newtonElapsed > rationalElapsed {
		fmt.Printf("\n🎯 Rational solver is %.1fx faster at full machine precision\n",
			float64(newtonElapsed)/float64(rationalElapsed))
	}
}

func buildGrid() []quote {
	var quotes []quote
	const K = 100.0
	for _, sigma := range []float64{0.01, 0.05, 0.1, 0.2, 0.4, 0.8, 1.5, 2.0} {
		for _, money := range []float64{0.8, 0.9, 1.0, 1.1, 1.25} {
			for _, T := range []float64{0.1, 0.5, 1.0, 2.0} {
				for _, q := range []int{1, -1} {
					F := K * money
					price := letsberational.Black(F, K, sigma, T, q)
					intrinsic := math.Max(float64(q)*(F-K), 0.0)
					if price <= intrinsic || price < 1e-12 {
						continue
					}
					quotes = append(quotes, quote{price, F, K, T, q, sigma})
				}
			}
		}
	}
	return quotes
}
