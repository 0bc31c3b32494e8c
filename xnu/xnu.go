// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xnu implements the Claverie–States self-similarity filter for
// amino acid sequences.
//
// The filter scans the off-diagonals of the sequence's self-comparison
// under a PAM substitution matrix, accumulating scores with rise and
// fall-off cutoffs derived from Karlin–Altschul statistics, and
// substitutes the positions of high-scoring self-similar regions.
//
//	Claverie, J.-M., States, D.J. (1993) Information enhancement
//	methods for large scale sequence analysis. Computers & Chemistry
//	17: 191-201.
package xnu

import (
	"fmt"
	"math"
	"strings"
)

// karlinK is the Karlin–Altschul K parameter shared by the bundled
// matrices.
const karlinK = 0.2

// Params hold the filter parameters. See DefaultParams for the values
// used by the original xnu program.
type Params struct {
	// PAM selects the substitution matrix and its λ: "PAM60",
	// "PAM120" or "PAM250". "PAM12" is accepted as an alias for
	// "PAM120". Empty selects PAM60.
	PAM string

	// SCut is an absolute score cutoff. When non-zero it overrides
	// the cutoff derived from PCut.
	SCut int

	// PCut is the desired false positive probability.
	PCut float64

	// MCut and NCut bound the scanned diagonal offsets, both
	// inclusive. An NCut of zero or less scans out to length-1.
	MCut, NCut int

	// Ascend and Descend select which member of each hit pair is
	// marked: the higher-index, the lower-index, or both.
	Ascend, Descend bool

	// Repeats inverts the mask, keeping only the self-similar
	// positions.
	Repeats bool

	// SubChar is the substitution character. Zero lowercases instead
	// of substituting.
	SubChar byte
}

// DefaultParams are the parameters of the original xnu program.
var DefaultParams = Params{
	PAM:     "PAM60",
	PCut:    0.01,
	MCut:    1,
	NCut:    4,
	Ascend:  true,
	Descend: true,
	SubChar: 'X',
}

// Filter is a self-similarity masking filter. A Filter is immutable
// after construction and may be shared by callers that do not overlap
// in time.
type Filter struct {
	p      Params
	mtx    *[25][25]int
	lambda float64
	h      float64
}

// New returns a Filter with the given parameters. A non-positive PCut
// falls back to the DefaultParams value and MCut is raised to one; an
// unknown matrix name is an error.
func New(p Params) (*Filter, error) {
	f := Filter{p: p}
	switch p.PAM {
	case "", "PAM60":
		f.mtx, f.lambda = &pam60Full, Lambda60
	case "PAM120", "PAM12":
		f.mtx, f.lambda = &pam120Full, Lambda120
	case "PAM250":
		f.mtx, f.lambda = &pam250Full, Lambda250
	default:
		return nil, fmt.Errorf("xnu: unknown matrix %q", p.PAM)
	}
	if f.p.PCut <= 0 {
		f.p.PCut = DefaultParams.PCut
	}
	if f.p.MCut < 1 {
		f.p.MCut = 1
	}
	f.h = eInfo(f.mtx, f.lambda)
	return &f, nil
}

// Filter returns a copy of s, uppercased, in which every position of a
// discovered self-similar region is replaced by SubChar, or lowercased
// when SubChar is zero. With Repeats set the mask is inverted. The
// returned string has the same length as s.
func (f *Filter) Filter(s string) string {
	str := []byte(s)
	iseq := make([]int, len(str))
	for i, c := range str {
		iseq[i] = alphaToNum(c)
	}
	hit := make([]bool, len(str)+1)

	noff := len(str) - 1
	if f.p.NCut > 0 {
		noff = f.p.NCut
	}

	topcut := 0
	if f.p.SCut != 0 {
		topcut = f.p.SCut
	} else {
		s0 := -math.Log(f.p.PCut*f.h/(float64(noff)*karlinK)) / f.lambda
		if s0 > 0 {
			topcut = int(math.Floor(s0 + math.Log(s0)/f.lambda + 0.5))
		}
	}
	fallcut := int(math.Log(karlinK/0.001) / f.lambda)

	for off := f.p.MCut; off <= noff; off++ {
		sum, top := 0, 0
		beg, end := off, 0
		for i := off; i < len(str); i++ {
			sum += f.mtx[iseq[i]][iseq[i-off]]
			if sum > top {
				top, end = sum, i
			}
			if top >= topcut && top-sum > fallcut {
				f.mark(hit, beg, end, off)
				sum, top = 0, 0
				beg, end = i+1, i+1
			} else if top-sum > fallcut {
				sum, top = 0, 0
				beg, end = i+1, i+1
			}
			if sum < 0 {
				sum, top = 0, 0
				beg, end = i+1, i+1
			}
		}
		if top >= topcut {
			f.mark(hit, beg, end, off)
		}
	}

	for i, c := range str {
		c = upper(c)
		if hit[i] != f.p.Repeats {
			if f.p.SubChar == 0 {
				c = lower(c)
			} else {
				c = f.p.SubChar
			}
		}
		str[i] = c
	}
	return string(str)
}

// mark records the hit region [beg, end] on the current diagonal,
// marking the higher-index member, the lower-index member, or both.
func (f *Filter) mark(hit []bool, beg, end, off int) {
	for k := beg; k <= end; k++ {
		if f.p.Ascend {
			hit[k] = true
		}
		if f.p.Descend {
			hit[k-off] = true
		}
	}
}

// alphaToNum returns the matrixAlphabet index of c, folding case and
// sinking unknown characters to 'X'.
func alphaToNum(c byte) int {
	i := strings.IndexByte(matrixAlphabet, upper(c))
	if i < 0 {
		return 22
	}
	return i
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
