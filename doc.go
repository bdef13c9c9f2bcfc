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

// Package figfont reads fonts in the FIGfont file format used by
// figlet-style text renderers.
//
// A FIGfont file starts with a one-line header and an optional comment
// block, followed by one multi-line record per character.  The standard
// section contains 102 records in a fixed order (ASCII 32-126 and seven
// additional German codepoints); an optional tail of records is preceded
// by explicit code tags.
//
// The function ParseFont reads a complete font:
//
//	font, err := figfont.ParseFont(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, ok := font.Char('A')
//	... use the rows of c ...
//
// Callers which need control over individual records, for example to skip
// malformed characters, can drive the decoder themselves using
// ParseHeader, ParseCharacter and ParseCharacterWithCodetag.  All three
// read sequentially from a single *bufio.Reader; a decoding error leaves
// the read position unspecified.
//
// Layout bitmasks (smushing and kerning rules) are parsed but not
// interpreted.  Rendering is outside the scope of this package.
package figfont
