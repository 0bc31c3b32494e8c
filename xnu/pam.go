// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xnu

import "math"

// matrixAlphabet is the residue ordering shared by all bundled matrices.
// Position 22 ('X') is the sink for characters outside the alphabet.
const matrixAlphabet = "ARNDCQEGHILKMFPSTWYVBZX*-"

// Scale parameters λ for the bundled matrices.
const (
	Lambda60  = 0.4669
	Lambda120 = 0.3466
	Lambda250 = 0.2293
)

// dayhoff are the Dayhoff background amino acid frequencies in
// matrixAlphabet order.
var dayhoff = [20]float64{
	0.087, 0.041, 0.040, 0.047, 0.033,
	0.038, 0.050, 0.089, 0.034, 0.037,
	0.085, 0.081, 0.015, 0.040, 0.051,
	0.070, 0.058, 0.010, 0.030, 0.065,
}

var pam60 = [20][20]int{
	{5, -5, -3, -2, -5, -3, -2, 0, -5, -3, -5, -4, -4, -6, 0, 0, 0, -9, -6, -2},          // A
	{-5, 8, -3, -5, -6, 0, -5, -6, 0, -4, -6, 1, -3, -7, -3, -3, -4, 0, -7, -5},          // R
	{-3, -3, 7, 1, -7, -2, 0, -2, 1, -4, -6, 0, -5, -6, -4, 0, -2, -6, -4, -5},           // N
	{-2, -5, 1, 7, -9, 0, 2, -2, -2, -5, -7, -3, -6, -9, -5, -2, -3, -10, -7, -5},        // D
	{-5, -6, -7, -9, 9, -9, -9, -6, -6, -5, -9, -9, -8, -8, -6, -2, -5, -10, -3, -5},     // C
	{-3, 0, -2, 0, -9, 7, 1, -5, 2, -5, -4, -2, -3, -8, -2, -4, -4, -8, -7, -5},          // Q
	{-2, -5, 0, 2, -9, 1, 7, -3, -3, -5, -6, -3, -5, -9, -4, -3, -4, -10, -7, -5},        // E
	{0, -6, -2, -2, -6, -5, -3, 6, -6, -6, -7, -5, -6, -7, -4, 0, -3, -10, -8, -4},       // G
	{-5, 0, 1, -2, -6, 2, -3, -6, 9, -6, -5, -4, -6, -5, -3, -4, -5, -5, -3, -5},         // H
	{-3, -4, -4, -5, -5, -5, -5, -6, -6, 7, 0, -5, 0, -2, -5, -4, -2, -8, -4, 2},         // I
	{-5, -6, -6, -7, -9, -4, -6, -7, -5, 0, 7, -6, 2, -2, -5, -6, -5, -5, -4, 0},         // L
	{-4, 1, 0, -3, -9, -2, -3, -5, -4, -5, -6, 7, -2, -9, -4, -3, -3, -7, -7, -6},        // K
	{-4, -3, -5, -6, -8, -3, -5, -6, -6, 0, 2, -2, 11, -3, -5, -4, -3, -8, -6, 0},        // M
	{-6, -7, -6, -9, -8, -8, -9, -7, -5, -2, -2, -9, -3, 9, -7, -5, -6, -3, 3, -5},       // F
	{0, -3, -4, -5, -6, -2, -4, -4, -3, -5, -5, -4, -5, -7, 7, 0, -3, -9, -8, -4},        // P
	{0, -3, 0, -2, -2, -4, -3, 0, -4, -4, -6, -3, -4, -5, 0, 5, 1, -4, -5, -4},           // S
	{0, -4, -2, -3, -5, -4, -4, -3, -5, -2, -5, -3, -3, -6, -3, 1, 6, -8, -5, -2},        // T
	{-9, 0, -6, -10, -10, -8, -10, -10, -5, -8, -5, -7, -8, -3, -9, -4, -8, 13, -4, -10}, // W
	{-6, -7, -4, -7, -3, -7, -7, -8, -3, -4, -4, -7, -6, 3, -8, -5, -5, -4, 10, -5},      // Y
	{-2, -5, -5, -5, -5, -5, -5, -4, -5, 2, 0, -6, 0, -5, -4, -4, -2, -10, -5, 7},        // V
}

var pam120 = [20][20]int{
	{3, -3, -1, 0, -3, -1, 0, 1, -3, -1, -3, -2, -2, -4, 1, 1, 1, -7, -4, 0},        // A
	{-3, 6, -1, -3, -4, 1, -3, -4, 1, -2, -4, 2, -1, -5, -1, -1, -2, 1, -5, -3},     // R
	{-1, -1, 4, 2, -5, 0, 1, 0, 2, -2, -4, 1, -3, -4, -2, 1, 0, -4, -2, -3},         // N
	{0, -3, 2, 5, -7, 1, 3, 0, 0, -3, -5, -1, -4, -7, -3, 0, -1, -8, -5, -3},        // D
	{-3, -4, -5, -7, 9, -7, -7, -4, -4, -3, -7, -7, -6, -6, -4, 0, -3, -8, -1, -3},  // C
	{-1, 1, 0, 1, -7, 6, 2, -3, 3, -3, -2, 0, -1, -6, 0, -2, -2, -6, -5, -3},        // Q
	{0, -3, 1, 3, -7, 2, 5, -1, -1, -3, -4, -1, -3, -7, -2, -1, -2, -8, -5, -3},     // E
	{1, -4, 0, 0, -4, -3, -1, 5, -4, -4, -5, -3, -4, -5, -2, 1, -1, -8, -6, -2},     // G
	{-3, 1, 2, 0, -4, 3, -1, -4, 7, -4, -3, -2, -4, -3, -1, -2, -3, -3, -1, -3},     // H
	{-1, -2, -2, -3, -3, -3, -3, -4, -4, 6, 1, -3, 1, 0, -3, -2, 0, -6, -2, 3},      // I
	{-3, -4, -4, -5, -7, -2, -4, -5, -3, 1, 5, -4, 3, 0, -3, -4, -3, -3, -2, 1},     // L
	{-2, 2, 1, -1, -7, 0, -1, -3, -2, -3, -4, 5, 0, -7, -2, -1, -1, -5, -5, -4},     // K
	{-2, -1, -3, -4, -6, -1, -3, -4, -4, 1, 3, 0, 8, -1, -3, -2, -1, -6, -4, 1},     // M
	{-4, -5, -4, -7, -6, -6, -7, -5, -3, 0, 0, -7, -1, 8, -5, -3, -4, -1, 4, -3},    // F
	{1, -1, -2, -3, -4, 0, -2, -2, -1, -3, -3, -2, -3, -5, 6, 1, -1, -7, -6, -2},    // P
	{1, -1, 1, 0, 0, -2, -1, 1, -2, -2, -4, -1, -2, -3, 1, 3, 2, -2, -3, -2},        // S
	{1, -2, 0, -1, -3, -2, -2, -1, -3, 0, -3, -1, -1, -4, -1, 2, 4, -6, -3, 0},      // T
	{-7, 1, -4, -8, -8, -6, -8, -8, -3, -6, -3, -5, -6, -1, -7, -2, -6, 12, -2, -8}, // W
	{-4, -5, -2, -5, -1, -5, -5, -6, -1, -2, -2, -5, -4, 4, -6, -3, -3, -2, 8, -3},  // Y
	{0, -3, -3, -3, -3, -3, -3, -2, -3, 3, 1, -4, 1, -3, -2, -2, 0, -8, -3, 5},      // V
}

var pam250 = [20][20]int{
	{2, -2, 0, 0, -2, 0, 0, 1, -1, -1, -2, -1, -1, -3, 1, 1, 1, -6, -3, 0},         // A
	{-2, 6, 0, -1, -4, 1, -1, -3, 2, -2, -3, 3, 0, -4, 0, 0, -1, 2, -4, -2},        // R
	{0, 0, 2, 2, -4, 1, 1, 0, 2, -2, -3, 1, -2, -3, 0, 1, 0, -4, -2, -2},           // N
	{0, -1, 2, 4, -5, 2, 3, 1, 1, -2, -4, 0, -3, -6, -1, 0, 0, -7, -4, -2},         // D
	{-2, -4, -4, -5, 12, -5, -5, -3, -3, -2, -6, -5, -5, -4, -3, 0, -2, -8, 0, -2}, // C
	{0, 1, 1, 2, -5, 4, 2, -1, 3, -2, -2, 1, -1, -5, 0, -1, -1, -5, -4, -2},        // Q
	{0, -1, 1, 3, -5, 2, 4, 0, 1, -2, -3, 0, -2, -5, -1, 0, 0, -7, -4, -2},         // E
	{1, -3, 0, 1, -3, -1, 0, 5, -2, -3, -4, -2, -3, -5, 0, 1, 0, -7, -5, -1},       // G
	{-1, 2, 2, 1, -3, 3, 1, -2, 6, -2, -2, 0, -2, -2, 0, -1, -1, -3, 0, -2},        // H
	{-1, -2, -2, -2, -2, -2, -2, -3, -2, 5, 2, -2, 2, 1, -2, -1, 0, -5, -1, 4},     // I
	{-2, -3, -3, -4, -6, -2, -3, -4, -2, 2, 6, -3, 4, 2, -3, -3, -2, -2, -1, 2},    // L
	{-1, 3, 1, 0, -5, 1, 0, -2, 0, -2, -3, 5, 0, -5, -1, 0, 0, -3, -4, -2},         // K
	{-1, 0, -2, -3, -5, -1, -2, -3, -2, 2, 4, 0, 6, 0, -2, -2, -1, -4, -2, 2},      // M
	{-3, -4, -3, -6, -4, -5, -5, -5, -2, 1, 2, -5, 0, 9, -5, -3, -3, 0, 7, -1},     // F
	{1, 0, 0, -1, -3, 0, -1, 0, 0, -2, -3, -1, -2, -5, 6, 1, 0, -6, -5, -1},        // P
	{1, 0, 1, 0, 0, -1, 0, 1, -1, -1, -3, 0, -2, -3, 1, 2, 1, -2, -3, -1},          // S
	{1, -1, 0, 0, -2, -1, 0, 0, -1, 0, -2, 0, -1, -3, 0, 1, 3, -5, -3, 0},          // T
	{-6, 2, -4, -7, -8, -5, -7, -7, -3, -5, -2, -3, -4, 0, -6, -2, -5, 17, 0, -6},  // W
	{-3, -4, -2, -4, 0, -4, -4, -5, 0, -1, -1, -4, -2, 7, -5, -3, -3, 0, 10, -2},   // Y
	{0, -2, -2, -2, -2, -2, -2, -1, -2, 4, 2, -2, 2, -1, -1, -1, 0, -6, -2, 4},     // V
}

// The full scoring tables cover matrixAlphabet. B and Z score as the
// frequency-weighted mean of their member residues, X as the weighted
// mean over all twenty. Stop and gap rows take gapScore off the
// diagonal. The tables are filled once at init and treated as read-only
// thereafter.
var (
	pam60Full  = extend(&pam60)
	pam120Full = extend(&pam120)
	pam250Full = extend(&pam250)
)

const gapScore = -8

// groups lists the member residues of each matrixAlphabet position up
// to and including 'X'.
var groups = func() [23][]int {
	var g [23][]int
	for i := 0; i < 20; i++ {
		g[i] = []int{i}
	}
	g[20] = []int{2, 3} // B: N or D
	g[21] = []int{5, 6} // Z: Q or E
	g[22] = make([]int, 20)
	for i := range g[22] {
		g[22][i] = i
	}
	return g
}()

func extend(core *[20][20]int) [25][25]int {
	var m [25][25]int
	for i := 0; i < 23; i++ {
		for j := 0; j < 23; j++ {
			m[i][j] = groupScore(core, groups[i], groups[j])
		}
	}
	for i := 0; i < 25; i++ {
		m[i][23], m[23][i] = gapScore, gapScore
		m[i][24], m[24][i] = gapScore, gapScore
	}
	m[23][23] = 1
	m[24][24] = 1
	return m
}

// groupScore is the frequency-weighted mean core score between the
// residue groups a and b, rounded to the nearest integer.
func groupScore(core *[20][20]int, a, b []int) int {
	var num, den float64
	for _, i := range a {
		for _, j := range b {
			w := dayhoff[i] * dayhoff[j]
			num += w * float64(core[i][j])
			den += w
		}
	}
	return int(math.Round(num / den))
}

// eInfo returns the Karlin–Altschul relative entropy H of the scoring
// system: λ · Σᵢⱼ fᵢfⱼ·sᵢⱼ·exp(λ·sᵢⱼ) / Σᵢⱼ fᵢfⱼ.
func eInfo(mtx *[25][25]int, lambda float64) float64 {
	var sum, tot float64
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			fij := dayhoff[i] * dayhoff[j]
			tot += fij
			s := float64(mtx[i][j])
			sum += s * fij * math.Exp(lambda*s)
		}
	}
	return lambda * sum / tot
}
