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

// Package fonttest assembles FIGfont files for use in unit tests.
package fonttest

import (
	"bytes"
	"fmt"
)

// HardBlank is the hard blank byte used by all generated fonts.
const HardBlank = '$'

// Codes returns the codepoints of the 102 required characters of a
// FIGfont, in the order in which their records appear in the file.
func Codes() []rune {
	var codes []rune
	for c := rune(' '); c <= '~'; c++ {
		codes = append(codes, c)
	}
	codes = append(codes, 'Ä', 'Ö', 'Ü', 'ä', 'ö', 'ü', 'ß')
	return codes
}

// Record returns one character record of the given height.  Every row
// shows the character itself followed by a hard blank, so that decoded
// glyphs can be told apart in tests.
func Record(c rune, height int) []byte {
	var buf bytes.Buffer
	for i := 0; i < height; i++ {
		buf.WriteString(string(c))
		buf.WriteByte(HardBlank)
		buf.WriteByte('@')
		if height > 1 && i == height-1 {
			buf.WriteByte('@')
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Font returns a complete FIGfont file of the given character height.
// The 102 required records are followed by one tagged record for each
// element of tagged.
func Font(height int, tagged []int32) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "flf2a%c %d 1 4 -1 1 0 64 %d\n", HardBlank, height, len(tagged))
	buf.WriteString("test font\n")
	for _, c := range Codes() {
		buf.Write(Record(c, height))
	}
	for _, code := range tagged {
		fmt.Fprintf(&buf, "0x%X\n", code)
		buf.Write(Record(rune(code), height))
	}
	return buf.Bytes()
}
