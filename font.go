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
	"fmt"
	"io"
)

// deutschCodes are the codepoints of the seven characters which every
// FIGfont provides after ASCII 32-126, in file order.
var deutschCodes = []rune{'Ä', 'Ö', 'Ü', 'ä', 'ö', 'ü', 'ß'}

// Font is a complete decoded FIGfont.
type Font struct {
	header *Header
	chars  map[rune]*FIGcharacter
}

// ParseFont reads a complete FIGfont file: the header, the 102 required
// character records, and any tagged records announced by the header's
// code tag count.  The first malformed record aborts the parse; callers
// which want to tolerate individual bad records must use ParseHeader and
// ParseCharacter directly.
func ParseFont(r io.Reader) (*Font, error) {
	br := bufio.NewReader(r)

	h, err := ParseHeader(br)
	if err != nil {
		return nil, err
	}

	chars := make(map[rune]*FIGcharacter, 102+h.CodetagCount())
	for c := rune(' '); c <= '~'; c++ {
		char, err := ParseCharacter(br, h)
		if err != nil {
			return nil, fmt.Errorf("character %q: %w", c, err)
		}
		chars[c] = char
	}
	for _, c := range deutschCodes {
		char, err := ParseCharacter(br, h)
		if err != nil {
			return nil, fmt.Errorf("character %q: %w", c, err)
		}
		chars[c] = char
	}

	for i := 0; i < h.CodetagCount(); i++ {
		code, char, err := ParseCharacterWithCodetag(br, h)
		if err != nil {
			return nil, fmt.Errorf("tagged character %d: %w", i, err)
		}
		chars[rune(code)] = char
	}

	return &Font{header: h, chars: chars}, nil
}

// Header returns the font header.
func (f *Font) Header() *Header {
	return f.header
}

// Char returns the character for the given codepoint.  The second return
// value is false if the font does not contain the codepoint.
func (f *Font) Char(c rune) (*FIGcharacter, bool) {
	char, ok := f.chars[c]
	return char, ok
}

// NumChars returns the number of characters in the font.
func (f *Font) NumChars() int {
	return len(f.chars)
}
