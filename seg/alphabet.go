// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seg

const (
	// alphaSize is the number of residue classes distinguished by the
	// entropy calculation. Everything outside the canonical twenty is
	// pooled into an ambiguity class that is excluded from entropy and
	// counted against the window's X budget.
	alphaSize   = 20
	lnAlphaSize = 2.9957322735539909 // ln 20

	// residues are the canonical amino acids in class index order.
	residues = "ACDEFGHIKLMNPQRSTVWY"
)

var (
	// alphaIndex maps a 7-bit character code to its residue class,
	// or to alphaSize for codes that are not residues.
	alphaIndex [128]int

	// alphaFlag marks character codes that are not residues.
	alphaFlag [128]bool
)

func init() {
	for c := range alphaIndex {
		alphaIndex[c] = alphaSize
		alphaFlag[c] = true
	}
	for i, c := range residues {
		alphaIndex[c] = i
		alphaFlag[c] = false
		alphaIndex[c+'a'-'A'] = i
		alphaFlag[c+'a'-'A'] = false
	}
}
