package clihelpers

import "github.com/zooyer/golib/xmath"

// NearlyEqual reports whether a and b differ by no more than tolerance,
// the same float-equality helper the teacher's window-measurement
// verifier (cmd/main.go's Window.VerifyWidth/VerifyHeight) used, lifted
// here so dxfcli inspect --tolerance can compare measurements the same
// way.
func NearlyEqual(a, b, tolerance float64) bool {
	return xmath.Equal(a, b, tolerance)
}
