package fincalc

import (
	"math"
	"testing"
)

// assertNear fails the test if got is not within tol of want.
func assertNear(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}
