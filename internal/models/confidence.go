package models

import "math"

// ConfidencePercent переводит уверенность [0,1] в целый процент [0,100]
func ConfidencePercent(c float64) int {
	if math.IsNaN(c) {
		return 0
	}
	p := int(math.Round(c * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
