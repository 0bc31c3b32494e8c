// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fasta provides an in-memory, multiply-indexed store for FASTA
// sequence records, and loaders and dumpers translating between the
// store and FASTA files.
//
// Records are keyed by a synthetic sequence identifier (SI) and indexed
// by taxonomy identifier (TI) and subsequence identifier (SS). Bodies
// are normalised on load: upper case, whitespace removed, non-alphabetic
// characters replaced by 'X'. Retrieval returns fresh SI to body maps so
// callers never alias store memory.
package fasta

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is returned when an indexed header is malformed.
	ErrFormat = errors.New("fasta: bad header format")

	// ErrRange is returned when a request falls outside the stored
	// data.
	ErrRange = errors.New("fasta: out of range")
)

// Store is an in-memory collection of FASTA records. The zero value is
// not usable; use NewStore. A Store is not safe for concurrent
// mutation; concurrent reads of a quiesced Store are safe.
type Store struct {
	siToTi   map[string]string
	siToMeta map[string]string
	siToSS   map[string]string
	ssToSi   map[string]string
	tiToSi   map[string][]string

	corpus map[string]string

	// order is the insertion order of SIs; it makes whole-set and
	// complement retrieval and dumping deterministic.
	order []string
	seen  map[string]bool

	sid     int
	numSeq  int
	totSize int
}

// NewStore returns an empty Store.
func NewStore() *Store {
	s := &Store{}
	s.init()
	return s
}

func (s *Store) init() {
	s.siToTi = make(map[string]string)
	s.siToMeta = make(map[string]string)
	s.siToSS = make(map[string]string)
	s.ssToSi = make(map[string]string)
	s.tiToSi = make(map[string][]string)
	s.corpus = make(map[string]string)
	s.order = nil
	s.seen = make(map[string]bool)
	s.sid = 0
	s.numSeq = 0
	s.totSize = 0
}

// Clear drops all records and indexes and resets the identifier counter.
func (s *Store) Clear() { s.init() }

// LoadIndexedHeader parses h as an indexed header and inserts it into
// all header indexes. On a malformed header the store is unchanged. A
// duplicate SI overwrites the scalar fields; the TI index keeps a
// single entry per SI.
func (s *Store) LoadIndexedHeader(h string) error {
	hd, err := ParseHeader(h)
	if err != nil {
		return err
	}
	s.insert(hd)
	return nil
}

// LoadRawHeader synthesises an SI for the raw header line h under the
// given taxonomy and subsequence identifiers, inserts the record's
// header and returns the SI.
func (s *Store) LoadRawHeader(h, ti, ss string) string {
	hd := s.indexHeader(h, ti, ss)
	s.insert(hd)
	return hd.SI
}

func (s *Store) insert(h Header) {
	if old, ok := s.siToTi[h.SI]; ok {
		if old != h.TI {
			s.tiToSi[old] = remove(s.tiToSi[old], h.SI)
			s.tiToSi[h.TI] = append(s.tiToSi[h.TI], h.SI)
		}
	} else {
		s.tiToSi[h.TI] = append(s.tiToSi[h.TI], h.SI)
	}
	if !s.seen[h.SI] {
		s.seen[h.SI] = true
		s.order = append(s.order, h.SI)
	}
	s.siToTi[h.SI] = h.TI
	s.siToMeta[h.SI] = h.Meta
	s.siToSS[h.SI] = h.SS
	// When records share an SS, the last loaded SI wins.
	s.ssToSi[h.SS] = h.SI
}

func remove(s []string, v string) []string {
	for i, e := range s {
		if e == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// LoadBody stores body under si. Unless clean is set the body is
// normalised first. A body loaded for an SI that already has one
// replaces it.
func (s *Store) LoadBody(si, body string, clean bool) {
	if !clean {
		body = Normalize(body)
	}
	if old, ok := s.corpus[si]; ok {
		s.totSize -= len(old)
	} else {
		s.numSeq++
		if !s.seen[si] {
			s.seen[si] = true
			s.order = append(s.order, si)
		}
	}
	s.corpus[si] = body
	s.totSize += len(body)
}

// LoadRecord inserts a record with a synthesised SI under ti, storing
// the body verbatim, and returns the SI. The subsequence identifier
// defaults to "0", the whole sequence.
func (s *Store) LoadRecord(meta, body, ti string) string {
	return s.LoadRecordSS(meta, body, ti, "0")
}

// LoadRecordSS is LoadRecord with an explicit subsequence identifier.
func (s *Store) LoadRecordSS(meta, body, ti, ss string) string {
	si := s.LoadRawHeader(meta, ti, ss)
	s.LoadBody(si, body, true)
	return si
}

// Normalize returns the body normal form of b: upper case, whitespace
// removed and every remaining non-alphabetic character replaced by 'X'.
func Normalize(b string) string {
	buf := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch c {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			continue
		}
		switch {
		case 'a' <= c && c <= 'z':
			c -= 'a' - 'A'
		case 'A' <= c && c <= 'Z':
		default:
			c = 'X'
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// Only returns a fresh SI to body map holding the requested records.
// Unknown SIs map to the empty string.
func (s *Store) Only(sis ...string) map[string]string {
	m := make(map[string]string, len(sis))
	for _, si := range sis {
		m[si] = s.corpus[si]
	}
	return m
}

// All returns a fresh SI to body map holding every record.
func (s *Store) All() map[string]string {
	m := make(map[string]string, len(s.corpus))
	for si, b := range s.corpus {
		m[si] = b
	}
	return m
}

// AllExcept returns a fresh SI to body map holding every record except
// the given SIs, in a map populated in insertion order.
func (s *Store) AllExcept(sis ...string) map[string]string {
	skip := make(map[string]bool, len(sis))
	for _, si := range sis {
		skip[si] = true
	}
	m := make(map[string]string)
	for _, si := range s.order {
		if skip[si] {
			continue
		}
		if b, ok := s.corpus[si]; ok {
			m[si] = b
		}
	}
	return m
}

// ByTI returns a fresh SI to body map holding the records loaded under
// ti.
func (s *Store) ByTI(ti string) map[string]string {
	return s.Only(s.tiToSi[ti]...)
}

// SIs returns the SIs of all records in insertion order.
func (s *Store) SIs() []string {
	return append([]string(nil), s.order...)
}

// TI returns the taxonomy identifier recorded for si.
func (s *Store) TI(si string) string { return s.siToTi[si] }

// SS returns the subsequence identifier recorded for si.
func (s *Store) SS(si string) string { return s.siToSS[si] }

// Meta returns the meta information recorded for si.
func (s *Store) Meta(si string) string { return s.siToMeta[si] }

// SIBySS returns the SI recorded for ss, the last loaded when several
// records share the subsequence identifier.
func (s *Store) SIBySS(ss string) string { return s.ssToSi[ss] }

// SIsByTI returns the SIs recorded under ti in insertion order.
func (s *Store) SIsByTI(ti string) []string {
	return append([]string(nil), s.tiToSi[ti]...)
}

// Summary returns a store total: "TotSeq" is the record count and
// "TotSeqSize" the total body character count.
func (s *Store) Summary(what string) (int, error) {
	switch what {
	case "TotSeq":
		return s.numSeq, nil
	case "TotSeqSize":
		return s.totSize, nil
	}
	return 0, fmt.Errorf("fasta: unknown summary %q", what)
}

// Substring returns the body of si between the 1-indexed positions
// start and stop, both inclusive.
func (s *Store) Substring(si string, start, stop int) (string, error) {
	body, ok := s.corpus[si]
	if !ok {
		return "", fmt.Errorf("%w: no record %q", ErrRange, si)
	}
	if start < 1 || stop < start || stop > len(body) {
		return "", fmt.Errorf("%w: substring [%d,%d] of %d long body", ErrRange, start, stop, len(body))
	}
	return body[start-1 : stop], nil
}
