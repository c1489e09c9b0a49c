package solver

import "github.com/aretw0/waterjug/pkg/domain"

// Validate rejects non-positive capacities and negative targets.
func Validate(p domain.Problem) error {
	if p.CapacityX <= 0 || p.CapacityY <= 0 || p.Target < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Feasible reports whether target can be measured at all, without searching.
// It assumes the problem has already passed Validate.
func Feasible(capacityX, capacityY, target int) bool {
	if target > max(capacityX, capacityY) {
		return false
	}
	if target == 0 {
		return true
	}
	return target%GCD(capacityX, capacityY) == 0
}

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
