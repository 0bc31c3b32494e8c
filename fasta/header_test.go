// Copyright ©2021 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fasta

import (
	"errors"
	"strings"
	"testing"
)

func TestParseHeader(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Header
	}{
		{
			in:   "si|000000000000000000000096061/0|ti|9606|ss|0|\tENS0001 some protein",
			want: Header{SI: "000000000000000000000096061/0", TI: "9606", SS: "0", Meta: "ENS0001 some protein"},
		},
		{
			in:   ">si|76612|ti|8363|ss|0|\tAdditional information",
			want: Header{SI: "76612", TI: "8363", SS: "0", Meta: "Additional information"},
		},
		{
			in:   "si|1|ti|2|ss|345|\tmeta\twith\ttabs",
			want: Header{SI: "1", TI: "2", SS: "345", Meta: "meta\twith\ttabs"},
		},
		{
			in:   "si|1|ti|2|ss|0|",
			want: Header{SI: "1", TI: "2", SS: "0"},
		},
	} {
		got, err := ParseHeader(test.in)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("unexpected header for %q:\ngot: %+v\nwant:%+v", test.in, got, test.want)
		}
	}
}

func TestParseHeaderMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"gi|1|foo",
		"si|1|ti|2|",
		"ti|2|si|1|ss|0|\tmeta",
		"si||ti|2|ss|0|\tmeta",
		"si|1|ti||ss|0|\tmeta",
	} {
		_, err := ParseHeader(in)
		if !errors.Is(err, ErrFormat) {
			t.Errorf("expected format error for %q: got:%v", in, err)
		}
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	for _, h := range []Header{
		{SI: "000000000000000000000096061/0", TI: "9606", SS: "0", Meta: "ENS0001 some protein"},
		{SI: "1", TI: "2", SS: "345", Meta: ""},
		{SI: "1", TI: "2", SS: "0", Meta: "meta\twith\ttabs"},
	} {
		got, err := ParseHeader(h.String())
		if err != nil {
			t.Errorf("unexpected error for %+v: %v", h, err)
			continue
		}
		if got != h {
			t.Errorf("round trip altered header:\ngot: %+v\nwant:%+v", got, h)
		}
	}
}

func TestIndexHeaderPadding(t *testing.T) {
	s := NewStore()
	h := s.indexHeader("some meta", "9606", "0")
	if len(h.SI) != siWidth {
		t.Errorf("unexpected SI width: got:%d want:%d", len(h.SI), siWidth)
	}
	if want := "96061/0"; !strings.HasSuffix(h.SI, want) {
		t.Errorf("unexpected SI: got:%q want suffix:%q", h.SI, want)
	}
	h2 := s.indexHeader("more meta", "9606", "0")
	if h.SI == h2.SI {
		t.Error("consecutive synthesised SIs collide")
	}

	// Identifiers longer than the pad width are kept whole.
	long := s.indexHeader("meta", "123456789012345678901234567890123", "0")
	if len(long.SI) <= siWidth {
		t.Errorf("long SI truncated: got:%q", long.SI)
	}
}
