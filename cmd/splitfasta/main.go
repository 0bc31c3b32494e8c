// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// splitfasta distributes the records of a FASTA file round-robin over a
// set of output files named <prefix>.1 through <prefix>.N.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kortschak/fastaplus/fasta"
)

// maxSplits bounds the number of output files.
const maxSplits = 800

func main() {
	in := flag.String("i", "", "specify the input FASTA file (required)")
	num := flag.Int("l", 0, "specify the number of output files (required)")
	ti := flag.String("t", "1", "specify the taxonomy identifier for raw headers")
	out := flag.String("o", "fasta", "specify the output file prefix")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage of %[1]s:
  $ %[1]s -i <seq.fa> -l <n> [-o <prefix>]

Options:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *in == "" || *num <= 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *num > maxSplits {
		log.Fatalf("the maximum number of splits is %d", maxSplits)
	}

	store := fasta.NewStore()
	err := store.ReadFile(*in, *ti)
	if err != nil {
		log.Fatal(err)
	}

	parts := make([]map[string]string, *num)
	for i := range parts {
		parts[i] = make(map[string]string)
	}
	seqs := store.All()
	for x, si := range store.SIs() {
		parts[x%*num][si] = seqs[si]
	}
	for i, p := range parts {
		err = store.WriteFile(fmt.Sprintf("%s.%d", *out, i+1), p)
		if err != nil {
			log.Fatal(err)
		}
	}
}
