package main

import (
	"fmt"
	"math"

	letsberational "github.com/JunbeomL22/letsberational/letsberational_lib"
)

type scenario struct {
	name    string
	F, K, T float64
	sigma   float64
	q       int
	tol     float64
}

// Round-trip accuracy harness: price each scenario with the Black
// formula, invert it, and report the recovered volatility error.
func main() {
	fmt.Println("🎯 Testing Implied Volatility Round-Trip Accuracy")
	fmt.Println("=================================================")

	scenarios := []scenario{
		{"ATM call", 100, 100, 1.0, 0.20, 1, 1e-13},
		{"OTM call", 90, 100, 2.0, 0.30, 1, 1e-13},
		{"ATM put", 100, 100, 1.0, 0.20, -1, 1e-13},
		{"Very low vol", 100, 100, 1.0, 0.01, 1, 1e-12},
		{"Very high vol", 100, 100, 1.0, 2.00, 1, 1e-12},
		{"Short expiry", 100, 100, 0.01, 0.20, 1, 1e-12},
		{"Deep OTM call", 100, 200, 1.0, 0.50, 1, 1e-12},
		{"Deep ITM call", 200, 100, 1.0, 0.30, 1, 1e-6},
	}

	worst := 0.0
	failures := 0

	for _, s := range scenarios {
		price := letsberational.Black(s.F, s.K, s.sigma, s.T, s.q)
		iv, err := letsberational.ImpliedVolatility(price, s.F, s.K, s.T, s.q)
		if err != nil {
			fmt.Printf("❌ %-14s F=%6.1f K=%6.1f T=%5.2f σ=%.4f: error %v\n", s.name, s.F, s.K, s.T, s.sigma, err)
			failures++
			continue
		}

		diff := math.Abs(iv - s.sigma)
		if diff > worst {
			worst = diff
		}

		status := "✅"
		if diff > s.tol {
			status = "⚠️ "
			failures++
		}
		fmt.Printf("%s %-14s F=%6.1f K=%6.1f T=%5.2f σ=%.4f: recovered %.16f (Δ %.3g)\n",
			status, s.name, s.F, s.K, s.T, s.sigma, iv, diff)
	}

	fmt.Println()
	fmt.Println("🧪 Domain error checks:")
	if _, err := letsberational.ImpliedVolatility(5.0, 110, 100, 1.0, 1); err != nil {
		fmt.Printf("   ✅ Below-intrinsic price rejected: %v\n", err)
	} else {
		fmt.Println("   ❌ Below-intrinsic price was NOT rejected")
		failures++
	}
	if _, err := letsberational.ImpliedVolatility(105.0, 100, 100, 1.0, 1); err != nil {
		fmt.Printf("   ✅ Above-maximum price rejected: %v\n", err)
	} else {
		fmt.Println("   ❌ Above-maximum price was NOT rejected")
		failures++
	}

	fmt.Println()
	fmt.Printf("📈 Worst round-trip error: %.3g\n", worst)
	if failures == 0 {
		fmt.Println("✅ ALL SCENARIOS WITHIN TOLERANCE")
	} else {
		fmt.Printf("⚠️  %d scenario(s) outside tolerance\n", failures)
	}
}
