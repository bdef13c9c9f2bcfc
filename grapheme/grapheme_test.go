// seehuhn.de/go/figfont - a library for reading FIGlet font files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package grapheme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name      string
		line      string
		hardBlank byte
		cells     []Grapheme
	}{
		{
			name:      "ascii",
			line:      "ab c",
			hardBlank: '$',
			cells: []Grapheme{
				{Text: "a"}, {Text: "b"}, {Text: " "}, {Text: "c"},
			},
		},
		{
			name:      "hard blanks",
			line:      "a$$b",
			hardBlank: '$',
			cells: []Grapheme{
				{Text: "a"}, {HardBlank: true}, {HardBlank: true}, {Text: "b"},
			},
		},
		{
			name:      "hard blank is ordinary text for other fonts",
			line:      "a$b",
			hardBlank: '#',
			cells: []Grapheme{
				{Text: "a"}, {Text: "$"}, {Text: "b"},
			},
		},
		{
			name:      "combining mark joins its base",
			line:      "éx",
			hardBlank: '$',
			cells: []Grapheme{
				{Text: "é"}, {Text: "x"},
			},
		},
		{
			name:      "multi-byte characters",
			line:      "äß",
			hardBlank: '$',
			cells: []Grapheme{
				{Text: "ä"}, {Text: "ß"},
			},
		},
		{
			name:      "empty line",
			line:      "",
			hardBlank: '$',
			cells:     nil,
		},
	}
	for _, test := range cases {
		cells, err := Split([]byte(test.line), test.hardBlank)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if d := cmp.Diff(test.cells, cells); d != "" {
			t.Errorf("%s: cells differ (-want +got):\n%s", test.name, d)
		}
	}
}

func TestSplitInvalidUTF8(t *testing.T) {
	_, err := Split([]byte{0x80, 0x81}, '$')
	if err == nil {
		t.Error("expected error for invalid UTF-8")
	}
}

func TestString(t *testing.T) {
	if s := (Grapheme{HardBlank: true}).String(); s != " " {
		t.Errorf("hard blank: expected %q, got %q", " ", s)
	}
	if s := (Grapheme{Text: "ä"}).String(); s != "ä" {
		t.Errorf("expected %q, got %q", "ä", s)
	}
}
