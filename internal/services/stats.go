package services

import "math"

// percent returns part/total as a rounded integer percentage.
// A zero total yields 0 rather than dividing by zero.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
