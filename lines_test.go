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

package figfont

import (
	"bufio"
	"errors"
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	cases := []struct {
		data string
		line string
		ok   bool
	}{
		{"abc\n", "abc", true},
		{"abc\r\n", "abc", true},
		{"\n", "", true},
		{"abc\nrest", "abc", true},
		{"abc", "", false},
		{"", "", false},
	}
	for _, test := range cases {
		r := bufio.NewReader(strings.NewReader(test.data))
		line, err := readLine(r)
		if test.ok {
			if err != nil {
				t.Errorf("%q: %v", test.data, err)
			} else if string(line) != test.line {
				t.Errorf("%q: expected %q, got %q", test.data, test.line, line)
			}
		} else if !errors.Is(err, ErrNotEnoughData) {
			t.Errorf("%q: expected ErrNotEnoughData, got %v", test.data, err)
		}
	}
}

func TestReadLastLine(t *testing.T) {
	cases := []struct {
		data string
		line string
		ok   bool
	}{
		{"abc\n", "abc", true},
		{"abc\r\n", "abc", true},
		{"abc", "abc", true},
		{"abc\r", "abc", true},
		{"", "", false},
	}
	for _, test := range cases {
		r := bufio.NewReader(strings.NewReader(test.data))
		line, err := readLastLine(r)
		if test.ok {
			if err != nil {
				t.Errorf("%q: %v", test.data, err)
			} else if string(line) != test.line {
				t.Errorf("%q: expected %q, got %q", test.data, test.line, line)
			}
		} else if !errors.Is(err, ErrNotEnoughData) {
			t.Errorf("%q: expected ErrNotEnoughData, got %v", test.data, err)
		}
	}
}
