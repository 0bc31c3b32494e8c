// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fasta

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	for _, test := range []struct {
		in   string
		want string
	}{
		{in: "ACDEFG", want: "ACDEFG"},
		{in: "acdefg", want: "ACDEFG"},
		{in: "AAA 8.A", want: "AAAXXA"},
		{in: "ac de\tfg\n", want: "ACDEFG"},
		{in: "A1C2", want: "AXCX"},
		{in: "", want: ""},
	} {
		if got := Normalize(test.in); got != test.want {
			t.Errorf("unexpected normalisation of %q: got:%q want:%q", test.in, got, test.want)
		}
	}
}

func TestLoadRaw(t *testing.T) {
	s := NewStore()
	err := s.Read(strings.NewReader(">gi|1|foo\nACDEFG\n>gi|2|bar\nacdefg x\n"), "9606")
	if err != nil {
		t.Fatal(err)
	}

	sis := s.SIs()
	if len(sis) != 2 {
		t.Fatalf("unexpected number of records: got:%d want:2", len(sis))
	}
	for _, si := range sis {
		if len(si) != siWidth {
			t.Errorf("unexpected SI width for %q: got:%d want:%d", si, len(si), siWidth)
		}
		if !strings.HasPrefix(si, "0") {
			t.Errorf("SI %q not zero padded", si)
		}
		if s.TI(si) != "9606" {
			t.Errorf("unexpected TI for %q: got:%q want:%q", si, s.TI(si), "9606")
		}
		if s.SS(si) != "0" {
			t.Errorf("unexpected SS for %q: got:%q want:%q", si, s.SS(si), "0")
		}
	}
	if sis[0] == sis[1] {
		t.Error("synthesised SIs not distinct")
	}

	all := s.All()
	if got, want := all[sis[0]], "ACDEFG"; got != want {
		t.Errorf("unexpected first body: got:%q want:%q", got, want)
	}
	if got, want := all[sis[1]], "ACDEFGX"; got != want {
		t.Errorf("unexpected second body: got:%q want:%q", got, want)
	}
	if got, want := s.Meta(sis[0]), "gi|1|foo"; got != want {
		t.Errorf("unexpected meta: got:%q want:%q", got, want)
	}
}

func TestSummary(t *testing.T) {
	s := NewStore()
	err := s.Read(strings.NewReader(">a\nACDE\n>b\nFGHIK\n>c\nLMNPQRST\n"), "1")
	if err != nil {
		t.Fatal(err)
	}

	n, err := s.Summary("TotSeq")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(s.All()); n != got {
		t.Errorf("TotSeq disagrees with recount: got:%d want:%d", n, got)
	}
	size, err := s.Summary("TotSeqSize")
	if err != nil {
		t.Fatal(err)
	}
	var total int
	for _, b := range s.All() {
		total += len(b)
	}
	if size != total {
		t.Errorf("TotSeqSize disagrees with recount: got:%d want:%d", size, total)
	}

	_, err = s.Summary("TotWhatever")
	if err == nil {
		t.Error("expected error for unknown summary")
	}
}

func TestRetrieval(t *testing.T) {
	s := NewStore()
	err := s.Read(strings.NewReader(">a\nACDE\n>b\nFGHIK\n>c\nLMNPQRST\n"), "9606")
	if err != nil {
		t.Fatal(err)
	}
	s.LoadRecord("mouse", "WYVA", "10090")

	sis := s.SIs()
	all := s.All()
	for _, si := range sis {
		only := s.Only(si)
		if only[si] != all[si] {
			t.Errorf("Only and All disagree for %q: %q != %q", si, only[si], all[si])
		}
		except := s.AllExcept(si)
		if _, ok := except[si]; ok {
			t.Errorf("AllExcept contains %q", si)
		}
		if len(except) != len(all)-1 {
			t.Errorf("unexpected AllExcept size for %q: got:%d want:%d", si, len(except), len(all)-1)
		}
	}

	// ByTI must equal the union of Only over the TI's recorded SIs.
	for _, ti := range []string{"9606", "10090"} {
		byTI := s.ByTI(ti)
		union := make(map[string]string)
		for _, si := range s.SIsByTI(ti) {
			for k, v := range s.Only(si) {
				union[k] = v
			}
		}
		if !reflect.DeepEqual(byTI, union) {
			t.Errorf("ByTI(%q) disagrees with union: got:%v want:%v", ti, byTI, union)
		}
	}
	if got := len(s.ByTI("9606")); got != 3 {
		t.Errorf("unexpected ByTI count: got:%d want:3", got)
	}

	// Returned maps are copies.
	all["tamper"] = "JUNK"
	if _, ok := s.All()["tamper"]; ok {
		t.Error("All returned aliased store state")
	}
}

func TestSubstring(t *testing.T) {
	s := NewStore()
	si := s.LoadRecord("seq", "ACDEFG", "1")

	got, err := s.Substring(si, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got != "CDE" {
		t.Errorf("unexpected substring: got:%q want:%q", got, "CDE")
	}

	for _, test := range []struct{ start, stop int }{
		{start: 0, stop: 3},
		{start: 3, stop: 2},
		{start: 1, stop: 7},
	} {
		_, err = s.Substring(si, test.start, test.stop)
		if !errors.Is(err, ErrRange) {
			t.Errorf("expected range error for [%d,%d]: got:%v", test.start, test.stop, err)
		}
	}
	_, err = s.Substring("no such si", 1, 1)
	if !errors.Is(err, ErrRange) {
		t.Errorf("expected range error for unknown si: got:%v", err)
	}
}

func TestDuplicateSI(t *testing.T) {
	s := NewStore()
	err := s.LoadIndexedHeader("si|0001|ti|9606|ss|0|\tfirst")
	if err != nil {
		t.Fatal(err)
	}
	err = s.LoadIndexedHeader("si|0001|ti|9606|ss|1|\tsecond")
	if err != nil {
		t.Fatal(err)
	}

	if got := s.Meta("0001"); got != "second" {
		t.Errorf("duplicate SI did not overwrite meta: got:%q", got)
	}
	if got := s.SS("0001"); got != "1" {
		t.Errorf("duplicate SI did not overwrite SS: got:%q", got)
	}
	if got := s.SIsByTI("9606"); len(got) != 1 {
		t.Errorf("TI index holds duplicate entries: %v", got)
	}

	// A TI change moves the SI between inverted index entries.
	err = s.LoadIndexedHeader("si|0001|ti|10090|ss|1|\tthird")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.SIsByTI("9606"); len(got) != 0 {
		t.Errorf("old TI entry not removed: %v", got)
	}
	if got := s.SIsByTI("10090"); len(got) != 1 {
		t.Errorf("new TI entry not added: %v", got)
	}
}

func TestSSCollision(t *testing.T) {
	s := NewStore()
	err := s.LoadIndexedHeader("si|0001|ti|1|ss|7|\ta")
	if err != nil {
		t.Fatal(err)
	}
	err = s.LoadIndexedHeader("si|0002|ti|1|ss|7|\tb")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.SIBySS("7"); got != "0002" {
		t.Errorf("SS collision should keep last loaded SI: got:%q", got)
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	err := s.Read(strings.NewReader(">a\nACDE\n"), "1")
	if err != nil {
		t.Fatal(err)
	}
	first := s.SIs()[0]

	s.Clear()
	if n, _ := s.Summary("TotSeq"); n != 0 {
		t.Errorf("TotSeq not reset: got:%d", n)
	}
	if size, _ := s.Summary("TotSeqSize"); size != 0 {
		t.Errorf("TotSeqSize not reset: got:%d", size)
	}
	if got := len(s.All()); got != 0 {
		t.Errorf("records survive Clear: got:%d", got)
	}

	err = s.Read(strings.NewReader(">a\nACDE\n"), "1")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.SIs()[0]; got != first {
		t.Errorf("identifier counter not reset by Clear: got:%q want:%q", got, first)
	}
}
