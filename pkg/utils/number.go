package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide divide numerator por denominator retornando 0 quando o denominador
// é 0 ou o resultado não é finito. Nunca produz NaN ou Inf.
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	result := numerator / denominator
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}

	return result
}

// SafePercentage retorna part/total em percentual, 0 quando total é 0
func SafePercentage(part, total float64) float64 {
	return SafeDivide(part, total) * 100
}

// Clamp limita value ao intervalo [min, max]
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
