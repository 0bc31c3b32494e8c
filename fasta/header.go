// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fasta

import (
	"fmt"
	"strconv"
	"strings"
)

// siWidth is the minimum width of a synthesised sequence identifier.
// Shorter identifiers are left-padded with zeros.
const siWidth = 30

// A Header is the parsed form of an indexed FASTA header,
// si|<SI>|ti|<TI>|ss|<SS>|\t<META>.
type Header struct {
	// SI is the synthetic sequence identifier, unique within a store.
	SI string

	// TI is the taxonomy identifier; many records may share one.
	TI string

	// SS is the subsequence identifier; "0" means the whole sequence.
	SS string

	// Meta is everything after the first tab of the header line,
	// preserved verbatim.
	Meta string
}

// ParseHeader parses the indexed header form. A leading '>' is accepted
// and ignored. The meta field is empty when the header carries no tab.
func ParseHeader(h string) (Header, error) {
	line := strings.TrimPrefix(h, ">")
	head := line
	var meta string
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		head, meta = line[:i], line[i+1:]
	}
	f := strings.Split(head, "|")
	if len(f) < 7 || f[0] != "si" || f[2] != "ti" || f[4] != "ss" {
		return Header{}, fmt.Errorf("%w: %q", ErrFormat, h)
	}
	if f[1] == "" || f[3] == "" {
		return Header{}, fmt.Errorf("%w: empty identifier in %q", ErrFormat, h)
	}
	return Header{SI: f[1], TI: f[3], SS: f[5], Meta: meta}, nil
}

// String returns the on-the-wire header form without the leading '>'.
func (h Header) String() string {
	return "si|" + h.SI + "|ti|" + h.TI + "|ss|" + h.SS + "|\t" + h.Meta
}

// indexHeader synthesises a Header for a raw header line, deriving the
// sequence identifier from the taxonomy identifier, the store's record
// counter and the subsequence identifier.
func (s *Store) indexHeader(meta, ti, ss string) Header {
	s.sid++
	si := ti + strconv.Itoa(s.sid) + "/" + ss
	if n := siWidth - len(si); n > 0 {
		si = strings.Repeat("0", n) + si
	}
	return Header{SI: si, TI: ti, SS: ss, Meta: meta}
}
