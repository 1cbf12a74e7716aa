package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide protege métricas derivadas contra divisão por zero:
// denominador zero resulta em zero, nunca em NaN ou Inf.
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}
