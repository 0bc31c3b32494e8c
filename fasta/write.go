// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fasta

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	fastaio "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/shenwei356/xopen"
)

// lineWidth is the body column width of dumped records.
const lineWidth = 80

// Write writes the records in seqs to w as indexed-header FASTA at 80
// body columns, in store insertion order. Keys in seqs that are not in
// the store are skipped.
func (s *Store) Write(w io.Writer, seqs map[string]string) error {
	fw := fastaio.NewWriter(w, lineWidth)
	for _, si := range s.order {
		body, ok := seqs[si]
		if !ok {
			continue
		}
		hd := Header{SI: si, TI: s.siToTi[si], SS: s.siToSS[si], Meta: s.siToMeta[si]}
		sq := linear.NewSeq(hd.String(), alphabet.BytesToLetters([]byte(body)), alphabet.Protein)
		_, err := fw.Write(sq)
		if err != nil {
			return fmt.Errorf("fasta: write: %w", err)
		}
	}
	return nil
}

// WriteFile writes the records in seqs to the file at path,
// transparently compressing by extension.
func (s *Store) WriteFile(path string, seqs map[string]string) (err error) {
	w, err := xopen.Wopen(path)
	if err != nil {
		return fmt.Errorf("fasta: create %s: %w", path, err)
	}
	defer func() {
		cerr := w.Close()
		if err == nil && cerr != nil {
			err = fmt.Errorf("fasta: close %s: %w", path, cerr)
		}
	}()
	return s.Write(w, seqs)
}

// WriteAll dumps every record to the file at path.
func (s *Store) WriteAll(path string) error {
	return s.WriteFile(path, s.All())
}

// WriteByTI dumps the records loaded under ti to the file at path.
func (s *Store) WriteByTI(path, ti string) error {
	return s.WriteFile(path, s.ByTI(ti))
}

// WriteOnly dumps the given records to the file at path.
func (s *Store) WriteOnly(path string, sis ...string) error {
	return s.WriteFile(path, s.Only(sis...))
}

// WriteAllExcept dumps every record except the given ones to the file
// at path.
func (s *Store) WriteAllExcept(path string, sis ...string) error {
	return s.WriteFile(path, s.AllExcept(sis...))
}
