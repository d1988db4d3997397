// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		input string
		want  []*Record
	}{
		// Basic rows.
		{`Year,Country
1990,US
1991,FR`,
			[]*Record{
				{1990, true, "US", map[string]string{"Year": "1990", "Country": "US"}},
				{1991, true, "FR", map[string]string{"Year": "1991", "Country": "FR"}},
			},
		},

		// Extra columns pass through.
		{`Event_Id,Year,Country,Make
A1,2001,Canada,Boeing`,
			[]*Record{
				{2001, true, "Canada", map[string]string{"Event_Id": "A1", "Year": "2001", "Country": "Canada", "Make": "Boeing"}},
			},
		},

		// Non-numeric and floating years.
		{`Year,Country
abc,US
1995.0,US
1995.5,US
,US`,
			[]*Record{
				{0, false, "US", map[string]string{"Year": "abc", "Country": "US"}},
				{1995, true, "US", map[string]string{"Year": "1995.0", "Country": "US"}},
				{0, false, "US", map[string]string{"Year": "1995.5", "Country": "US"}},
				{0, false, "US", map[string]string{"Year": "", "Country": "US"}},
			},
		},

		// Short rows.
		{`Country,Year,Note
US`,
			[]*Record{
				{0, false, "US", map[string]string{"Country": "US", "Year": "", "Note": ""}},
			},
		},

		// Quoted fields and a byte order mark.
		{"\ufeffYear,Country\n\"2003\",\"Korea, Republic Of\"",
			[]*Record{
				{2003, true, "Korea, Republic Of", map[string]string{"Year": "2003", "Country": "Korea, Republic Of"}},
			},
		},

		// Header only.
		{`Year,Country`, []*Record{}},
	} {
		got, err := Parse(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("parsing %q: %v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(test.want, got) {
			t.Errorf("parsing %q:\nwant %v\ngot  %v", test.input, test.want, got)
		}
	}
}

func TestParseMissingColumn(t *testing.T) {
	for _, input := range []string{
		"",
		"Country\nUS",
		"Year\n1990",
		"year,country\n1990,US",
	} {
		_, err := Parse(strings.NewReader(input))
		if !errors.Is(err, errMissingColumn) {
			t.Errorf("parsing %q: want missing column error, got %v", input, err)
		}
	}
}

func TestParseYear(t *testing.T) {
	for _, test := range []struct {
		in   string
		want int
		ok   bool
	}{
		{"1990", 1990, true},
		{" 1990 ", 1990, true},
		{"1990.0", 1990, true},
		{"-5", -5, true},
		{"1e3", 1000, true},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1990.25", 0, false},
		{"nineteen", 0, false},
		{"", 0, false},
	} {
		got, ok := ParseYear(test.in)
		if got != test.want || ok != test.ok {
			t.Errorf("ParseYear(%q) = %d, %v; want %d, %v", test.in, got, ok, test.want, test.ok)
		}
	}
}
