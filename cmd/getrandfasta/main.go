// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// getrandfasta emits a uniform random subset of the records of a FASTA
// file, drawn without replacement.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/kortschak/fastaplus/fasta"
)

func main() {
	in := flag.String("i", "", "specify the input FASTA file (required)")
	num := flag.Int("l", 0, "specify the number of records to draw (required)")
	ti := flag.String("t", "1", "specify the taxonomy identifier for raw headers")
	out := flag.String("o", "", "specify the output file (default stdout)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage of %[1]s:
  $ %[1]s -i <seq.fa> -l <n> [-o <out.fa>]

Options:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *in == "" || *num <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	store := fasta.NewStore()
	err := store.ReadFile(*in, *ti)
	if err != nil {
		log.Fatal(err)
	}

	sis := store.SIs()
	if *num > len(sis) {
		log.Fatalf("requested %d records from a store of %d", *num, len(sis))
	}
	rand.Seed(time.Now().UnixNano())
	rand.Shuffle(len(sis), func(i, j int) { sis[i], sis[j] = sis[j], sis[i] })
	chosen := store.Only(sis[:*num]...)

	if *out != "" {
		err = store.WriteFile(*out, chosen)
	} else {
		err = store.Write(os.Stdout, chosen)
	}
	if err != nil {
		log.Fatal(err)
	}
}
