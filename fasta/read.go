// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shenwei356/xopen"
)

// rawRecord is a scanned but uninterpreted FASTA record: the header line
// without its '>' and the concatenated body lines.
type rawRecord struct {
	head string
	body string
}

// scanRecords splits r into FASTA records. Body lines are concatenated
// as read; normalisation happens at load. Input before the first header
// is ignored.
func scanRecords(r io.Reader) ([]rawRecord, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<24)
	var (
		recs    []rawRecord
		head    string
		body    strings.Builder
		started bool
	)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, ">") {
			if started {
				recs = append(recs, rawRecord{head: head, body: body.String()})
				body.Reset()
			}
			head = line[1:]
			started = true
			continue
		}
		if started {
			body.WriteString(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta: read: %w", err)
	}
	if started {
		recs = append(recs, rawRecord{head: head, body: body.String()})
	}
	return recs, nil
}

// Read loads raw-header FASTA records from r into the store under the
// taxonomy identifier ti, synthesising SIs and normalising bodies. On
// error the store is unchanged.
func (s *Store) Read(r io.Reader, ti string) error {
	recs, err := scanRecords(r)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		hd := s.indexHeader(rec.head, ti, "0")
		s.insert(hd)
		s.LoadBody(hd.SI, rec.body, false)
	}
	return nil
}

// ReadIndexed loads indexed-header FASTA records from r into the store,
// parsing SI, TI, SS and meta from each header and normalising bodies.
// On error, including a malformed header anywhere in the input, the
// store is unchanged.
func (s *Store) ReadIndexed(r io.Reader) error {
	recs, err := scanRecords(r)
	if err != nil {
		return err
	}
	heads := make([]Header, len(recs))
	for i, rec := range recs {
		heads[i], err = ParseHeader(rec.head)
		if err != nil {
			return err
		}
	}
	for i, rec := range recs {
		s.insert(heads[i])
		s.LoadBody(heads[i].SI, rec.body, false)
	}
	return nil
}

// ReadFile loads the raw-header FASTA file at path, transparently
// decompressing gzip input.
func (s *Store) ReadFile(path, ti string) error {
	r, err := xopen.Ropen(path)
	if err != nil {
		return fmt.Errorf("fasta: open %s: %w", path, err)
	}
	defer r.Close()
	return s.Read(r, ti)
}

// ReadFileIndexed loads the indexed-header FASTA file at path,
// transparently decompressing gzip input.
func (s *Store) ReadFileIndexed(path string) error {
	r, err := xopen.Ropen(path)
	if err != nil {
		return fmt.Errorf("fasta: open %s: %w", path, err)
	}
	defer r.Close()
	return s.ReadIndexed(r)
}
