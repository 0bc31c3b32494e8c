// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seg implements the Wootton–Federhen low-complexity filter for
// amino acid sequences.
//
// The filter slides a window over the sequence computing local Shannon
// entropy, extends each low-entropy trigger into a candidate segment,
// refines the segment by minimising a combinatorial probability over its
// sub-windows, and masks the surviving segments with 'X'.
//
//	Wootton, J.C., Federhen, S. (1993) Statistics of local complexity
//	in amino acid sequences and sequence databases. Computers &
//	Chemistry 17: 149-163.
package seg

import (
	"log"
	"math"

	"gonum.org/v1/gonum/stat"
)

// sentinel marks entropy vector positions that carry no usable value,
// either because no full window covers them or because the window held
// too many ambiguous characters.
const sentinel = -1.0

// Params hold the filter parameters. See DefaultParams for the values
// used by the original seg program.
type Params struct {
	// Window is the sliding entropy window length.
	Window int

	// LoCut is the segment-trigger entropy in bits and HiCut the
	// segment-extension entropy in bits. HiCut is clamped up to
	// LoCut when it is lower.
	LoCut, HiCut float64

	// MaxX is the number of ambiguous characters a window may hold
	// before its entropy is withheld.
	MaxX int

	// MaxTrim is the maximum number of positions that may be trimmed
	// from either end of a candidate segment during refinement.
	MaxTrim int

	// NoMerge disables merging and masking: overlapping and touching
	// segments are not fused, no position is masked and Filter returns
	// its input unchanged. The discovered segments are not exposed.
	NoMerge bool
}

// DefaultParams are the parameters of the original seg program.
var DefaultParams = Params{
	Window:  12,
	LoCut:   2.2,
	HiCut:   2.5,
	MaxX:    0,
	MaxTrim: 100,
}

// Filter is a low-complexity masking filter. A Filter is immutable after
// construction, but holds no scratch state, so a single Filter may be
// shared by callers that do not overlap in time.
type Filter struct {
	p Params
}

// New returns a Filter with the given parameters. Non-positive Window,
// negative cutoffs and negative trim or X budgets fall back to the
// corresponding DefaultParams values.
func New(p Params) *Filter {
	if p.Window <= 0 {
		p.Window = DefaultParams.Window
	}
	if p.LoCut < 0 {
		p.LoCut = DefaultParams.LoCut
	}
	if p.HiCut < 0 {
		p.HiCut = DefaultParams.HiCut
	}
	if p.MaxX < 0 {
		p.MaxX = DefaultParams.MaxX
	}
	if p.MaxTrim < 0 {
		p.MaxTrim = DefaultParams.MaxTrim
	}
	if p.LoCut > p.HiCut {
		p.HiCut = p.LoCut
	}
	if p.MaxX > p.Window {
		p.MaxX = p.Window
	}
	return &Filter{p: p}
}

// segment is a discovered low-complexity region in sequence coordinates,
// both ends inclusive.
type segment struct {
	begin, end int
}

// Filter returns a copy of s in which every character inside a discovered
// low-complexity segment is replaced by 'X'. The returned string has the
// same length as s. Sequences shorter than the window are returned
// unchanged, as is any sequence when NoMerge is set.
func (f *Filter) Filter(s string) string {
	seq := []byte(s)
	var segs []segment
	f.segSeq(seq, 0, &segs)

	if f.p.NoMerge {
		return s
	}
	segs = mergeSegs(segs, len(seq))
	for _, g := range segs {
		for i := g.begin; i <= g.end; i++ {
			seq[i] = 'X'
		}
	}
	return string(seq)
}

// segSeq discovers low-complexity segments in seq and appends them to
// *segs in ascending begin order. offset translates positions in seq to
// positions in the sequence originally passed to Filter.
func (f *Filter) segSeq(seq []byte, offset int, segs *[]segment) {
	downset := (f.p.Window+1)/2 - 1
	upset := f.p.Window - downset
	first := downset
	last := len(seq) - upset
	lowlim := first

	H := f.entropies(seq, first, last)
	if H == nil {
		return
	}
	for i := first; i <= last; i++ {
		if H[i] > f.p.LoCut || H[i] == sentinel {
			continue
		}
		loi := f.locLow(i, lowlim, H)
		hii := f.locHigh(i, last, H)

		leftend := loi - downset
		rightend := hii + upset - 1
		lend, rend := f.trim(seq[leftend : rightend+1])
		rightend = leftend + rend
		leftend += lend

		// The trimmed segment may have pulled clear of the window's
		// natural left bound; segment the gap before recording it.
		if i+upset-1 < leftend {
			gapLeft := loi - downset
			f.segSeq(seq[gapLeft:leftend], offset+gapLeft, segs)
		}

		*segs = append(*segs, segment{begin: leftend + offset, end: rightend + offset})
		i = min(hii, rightend+downset)
		lowlim = i + 1
	}
}

// entropies returns the entropy vector for seq over the trigger range
// [first, last], or nil if seq is shorter than the window. Positions
// outside the range and windows holding more than MaxX ambiguous
// characters are left at the sentinel value.
func (f *Filter) entropies(seq []byte, first, last int) []float64 {
	if f.p.Window > len(seq) {
		return nil
	}
	H := make([]float64, len(seq))
	for i := range H {
		H[i] = sentinel
	}
	win := openWin(seq, 0, f.p.Window)
	for i := first; i <= last; i++ {
		if win.xes <= f.p.MaxX {
			H[i] = win.entropy()
		}
		win.shift()
	}
	return H
}

// locLow extends the trigger at i leftward to the lowest position not
// below limit whose entropy is defined and does not exceed HiCut.
func (f *Filter) locLow(i, limit int, H []float64) int {
	j := i
	for ; j >= limit; j-- {
		if H[j] == sentinel || H[j] > f.p.HiCut {
			break
		}
	}
	return j + 1
}

// locHigh is the rightward counterpart of locLow.
func (f *Filter) locHigh(i, limit int, H []float64) int {
	j := i
	for ; j <= limit; j++ {
		if H[j] == sentinel || H[j] > f.p.HiCut {
			break
		}
	}
	return j - 1
}

// trim searches the sub-windows of sub, over all lengths within MaxTrim
// of the full length, for the one minimising the composition probability,
// and returns its bounds within sub, both ends inclusive.
func (f *Filter) trim(sub []byte) (lend, rend int) {
	minprob := 1.0
	lend = 0
	rend = len(sub) - 1
	minlen := 1
	if len(sub)-f.p.MaxTrim > minlen {
		minlen = len(sub) - f.p.MaxTrim
	}
	for l := len(sub); l > minlen; l-- {
		win := openWin(sub, 0, l)
		for i := 0; ; i++ {
			prob := f.prob(&win.state, l)
			if prob < minprob {
				minprob = prob
				lend = i
				rend = l + i - 1
			}
			if !win.shift() {
				break
			}
		}
	}
	return lend, rend
}

// prob returns the log probability of the window composition described
// by the state vector sv over a window of the given total length: the
// assignment term ln K, plus the permutation term ln N!/∏ cᵢ!, less
// N·ln|A|. A degenerate assignment term is logged and the permutation
// term skipped.
func (f *Filter) prob(sv *[alphaSize + 1]int, total int) float64 {
	totseq := float64(total) * lnAlphaSize
	ans1 := lnAss(sv)
	var ans2 float64
	if ans1 > -100000 {
		ans2 = lnPerm(sv, total)
	} else {
		log.Printf("seg: degenerate assignment term %v for state vector %v", ans1, sv[:])
	}
	return ans1 + ans2 - totseq
}

// lnPerm returns the log of the number of distinct sequences sharing the
// composition described by the state vector sv over a window of length
// total.
func lnPerm(sv *[alphaSize + 1]int, total int) float64 {
	ans := LnFact(total)
	for _, c := range sv {
		if c == 0 {
			break
		}
		ans -= LnFact(c)
	}
	return ans
}

// lnAss returns the log of the number of distinct assignments of residue
// classes to the class-size multiset described by the state vector sv.
func lnAss(sv *[alphaSize + 1]int) float64 {
	ans := LnFact(alphaSize)
	if sv[0] == 0 {
		return ans
	}
	total := alphaSize
	cl := 1
	svim1 := sv[0]
	svi := svim1
	for i := 0; ; svim1 = svi {
		i++
		if i == alphaSize {
			ans -= LnFact(cl)
			break
		}
		svi = sv[i]
		if svi == svim1 {
			cl++
			continue
		}
		total -= cl
		ans -= LnFact(cl)
		if svi == 0 {
			ans -= LnFact(total)
			break
		}
		cl = 1
	}
	return ans
}

// mergeSegs fuses segments whose gap is zero or negative and clamps the
// result to the bounds of a sequence of length n. segs must be in
// ascending begin order.
func mergeSegs(segs []segment, n int) []segment {
	if len(segs) == 0 {
		return segs
	}
	if segs[len(segs)-1].end > n-1 {
		segs[len(segs)-1].end = n - 1
	}
	merged := segs[:1]
	for _, s := range segs[1:] {
		cur := &merged[len(merged)-1]
		if s.begin-cur.end-1 <= 0 {
			if cur.end < s.end {
				cur.end = s.end
			}
			if cur.begin > s.begin {
				cur.begin = s.begin
			}
			continue
		}
		merged = append(merged, s)
	}
	if merged[0].begin < 0 {
		merged[0].begin = 0
	}
	return merged
}

// window is a sliding view over a borrowed sequence buffer, maintaining
// the residue composition, the sorted state vector and the ambiguous
// character count of the covered region. A window never outlives the
// scan it was opened for.
type window struct {
	seq           []byte
	start, length int

	comp [alphaSize]int

	// state is weakly decreasing, terminated by 0, and its nonzero
	// prefix is a permutation of the nonzero entries of comp.
	state [alphaSize + 1]int

	xes int

	p [alphaSize]float64 // entropy scratch
}

func openWin(seq []byte, start, length int) *window {
	w := &window{seq: seq, start: start, length: length}
	for _, c := range seq[start : start+length] {
		if alphaFlag[c] {
			w.xes++
			continue
		}
		w.comp[alphaIndex[c]]++
	}
	n := 0
	for _, c := range w.comp {
		if c == 0 {
			continue
		}
		w.state[n] = c
		n++
	}
	sortDesc(w.state[:n])
	return w
}

// shift advances the window by one position, updating composition, state
// vector and X count incrementally. It reports whether the window still
// fits the sequence.
func (w *window) shift() bool {
	if w.start+w.length+1 > len(w.seq) {
		return false
	}
	out := w.seq[w.start]
	if alphaFlag[out] {
		w.xes--
	} else {
		c := alphaIndex[out]
		decrementSV(&w.state, w.comp[c])
		w.comp[c]--
	}
	in := w.seq[w.start+w.length]
	w.start++
	if alphaFlag[in] {
		w.xes++
	} else {
		c := alphaIndex[in]
		incrementSV(&w.state, w.comp[c])
		w.comp[c]++
	}
	return true
}

// entropy returns the Shannon entropy in bits of the residue counts in
// the window, normalised by the window total.
func (w *window) entropy() float64 {
	total := 0
	n := 0
	for _, c := range w.state {
		if c == 0 {
			break
		}
		total += c
		n++
	}
	if total == 0 {
		return 0
	}
	for i, c := range w.state[:n] {
		w.p[i] = float64(c) / float64(total)
	}
	return stat.Entropy(w.p[:n]) / math.Ln2
}

// decrementSV lowers the state vector entry holding the count clas by
// one, choosing the rightmost such entry so that sortedness is kept.
func decrementSV(sv *[alphaSize + 1]int, clas int) {
	for i := 0; sv[i] != 0; i++ {
		if sv[i] == clas && sv[i+1] < clas {
			sv[i]--
			break
		}
	}
}

// incrementSV raises the leftmost state vector entry holding the count
// clas by one. A clas of zero claims the slot after the nonzero prefix,
// admitting a new residue class.
func incrementSV(sv *[alphaSize + 1]int, clas int) {
	for i := 0; ; i++ {
		if sv[i] == clas {
			sv[i]++
			break
		}
	}
}

func sortDesc(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] > s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
