// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seg

import "math"

// lnFactTabLen is sized so that the Stirling approximation used beyond
// the table agrees with the last tabulated value to within 1e-6.
const lnFactTabLen = 100001

var lnFactTab = func() []float64 {
	t := make([]float64, lnFactTabLen)
	for n := range t {
		t[n], _ = math.Lgamma(float64(n) + 1)
	}
	return t
}()

// LnFact returns ln(n!). Values up to lnFactTabLen-1 are tabulated;
// larger arguments use the Stirling approximation.
func LnFact(n int) float64 {
	if n < len(lnFactTab) {
		return lnFactTab[n]
	}
	fn := float64(n)
	return (fn+0.5)*math.Log(fn) - fn + 0.9189385332
}
