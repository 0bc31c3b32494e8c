// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// filterfasta is a low-complexity filtering tool for protein FASTA
// files. It loads the input into a record store and emits, for each
// record, the raw body and the body filtered with SEG, with XNU and
// with both in sequence.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/shenwei356/xopen"

	"github.com/kortschak/fastaplus/fasta"
	"github.com/kortschak/fastaplus/seg"
	"github.com/kortschak/fastaplus/xnu"
)

func main() {
	in := flag.String("i", "", "specify the input FASTA file (required)")
	out := flag.String("o", "", "specify the output file (default stdout)")
	ti := flag.String("t", "1", "specify the taxonomy identifier for raw headers")
	window := flag.Int("W", seg.DefaultParams.Window, "specify the SEG entropy window length")
	hicut := flag.Float64("H", seg.DefaultParams.HiCut, "specify the SEG segment-extension entropy in bits")
	locut := flag.Float64("L", seg.DefaultParams.LoCut, "specify the SEG segment-trigger entropy in bits")
	maxtrim := flag.Int("T", seg.DefaultParams.MaxTrim, "specify the SEG maximum segment trim")
	maxx := flag.Int("X", seg.DefaultParams.MaxX, "specify the SEG ambiguous character budget per window")
	pam := flag.String("P", xnu.DefaultParams.PAM, "specify the XNU matrix: PAM60, PAM120 or PAM250")
	score := flag.Int("S", xnu.DefaultParams.SCut, "specify the XNU absolute score cutoff (overrides -p)")
	prob := flag.Float64("p", xnu.DefaultParams.PCut, "specify the XNU false positive probability")
	mcut := flag.Int("m", xnu.DefaultParams.MCut, "specify the XNU minimum diagonal offset")
	ncut := flag.Int("M", xnu.DefaultParams.NCut, "specify the XNU maximum diagonal offset (<=0 scans all)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage of %[1]s:
  $ %[1]s [options] -i <seq.fa> [-o <out>]

Options:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	segFilt := seg.New(seg.Params{
		Window:  *window,
		LoCut:   *locut,
		HiCut:   *hicut,
		MaxX:    *maxx,
		MaxTrim: *maxtrim,
	})
	xp := xnu.DefaultParams
	xp.PAM = *pam
	xp.SCut = *score
	xp.PCut = *prob
	xp.MCut = *mcut
	xp.NCut = *ncut
	xnuFilt, err := xnu.New(xp)
	if err != nil {
		log.Fatal(err)
	}

	store := fasta.NewStore()
	err = store.ReadFile(*in, *ti)
	if err != nil {
		log.Fatal(err)
	}

	w := io.Writer(os.Stdout)
	if *out != "" {
		f, err := xopen.Wopen(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	seqs := store.All()
	for _, si := range store.SIs() {
		body := seqs[si]
		hd := fasta.Header{SI: si, TI: store.TI(si), SS: store.SS(si), Meta: store.Meta(si)}
		masked := segFilt.Filter(body)
		_, err = fmt.Fprintf(w, ">%v\nRAW:\n%s\nSEG:\n%s\nXNU:\n%s\nSEG+XNU:\n%s\n",
			hd, body, masked, xnuFilt.Filter(body), xnuFilt.Filter(masked))
		if err != nil {
			log.Fatal(err)
		}
	}
}
