// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seg

import (
	"math"
	"testing"
)

func TestLnFactSmall(t *testing.T) {
	for _, test := range []struct {
		n    int
		want float64
	}{
		{n: 0, want: 0},
		{n: 1, want: 0},
		{n: 2, want: math.Log(2)},
		{n: 5, want: math.Log(120)},
		{n: 10, want: math.Log(3628800)},
	} {
		got := LnFact(test.n)
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("unexpected LnFact(%d): got:%v want:%v", test.n, got, test.want)
		}
	}
}

func TestLnFactMonotonic(t *testing.T) {
	last := LnFact(1)
	for n := 2; n < 5000; n++ {
		got := LnFact(n)
		if got <= last {
			t.Fatalf("LnFact not monotonic at %d: %v <= %v", n, got, last)
		}
		last = got
	}
	for _, n := range []int{lnFactTabLen - 2, lnFactTabLen - 1, lnFactTabLen, lnFactTabLen + 1} {
		got := LnFact(n)
		if got <= last {
			t.Fatalf("LnFact not monotonic at %d: %v <= %v", n, got, last)
		}
		last = got
	}
}

func TestLnFactStirlingBoundary(t *testing.T) {
	n := lnFactTabLen - 1
	fn := float64(n)
	stirling := (fn+0.5)*math.Log(fn) - fn + 0.9189385332
	if got := LnFact(n); math.Abs(got-stirling) > 1e-6 {
		t.Errorf("table and Stirling disagree at %d: got:%v stirling:%v", n, got, stirling)
	}
}
