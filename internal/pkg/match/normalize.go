package match

import "math"

// Round returns the total rounded to the nearest integer. A zero input
// passes through unchanged: after aggregation zero stands for "no data"
// as much as for a literal zero, and that marker must survive.
func Round(x float64) float64 {
	if x == 0 {
		return x
	}
	return math.Round(x)
}

// Bucket coarsens the total to the nearest lower multiple of 10, absorbing
// small reporting noise between two filings of the same household. Floor
// semantics, so Bucket(-3) is -10. Zero passes through like in Round.
func Bucket(x float64) float64 {
	if x == 0 {
		return x
	}
	return math.Floor(x/10) * 10
}
