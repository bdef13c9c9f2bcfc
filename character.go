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
	"bytes"
	"strconv"

	"seehuhn.de/go/figfont/grapheme"
)

// FIGcharacter is one decoded character of a FIGfont: a fixed number of
// rows of display cells.  Rows may have different lengths; the decoder
// does not pad them.
type FIGcharacter struct {
	lines [][]grapheme.Grapheme
}

// ParseCharacter reads the next character record from r.  The record
// consists of h.Height() lines, each terminated by the record's delimiter
// byte; the delimiter is taken from the end of the first line.  The last
// line of the record may omit the trailing newline if the stream ends
// there.
//
// After an error the read position of r is unspecified, and the caller
// must not try to resume decoding from the same reader.
func ParseCharacter(r *bufio.Reader, h *Header) (*FIGcharacter, error) {
	lines, err := readCharacterLines(r, h.Height())
	if err != nil {
		return nil, err
	}

	first := lines[0]
	if len(first) == 0 {
		return nil, characterError("empty line in character data")
	}
	delimiter := first[len(first)-1]

	if h.Height() > 1 {
		// The final line carries the delimiter twice, once as the
		// ordinary line terminator and once to terminate the record.
		k := len(lines) - 1
		last := lines[k]
		if len(last) == 0 || last[len(last)-1] != delimiter {
			return nil, characterError("missing record terminator %q", delimiter)
		}
		lines[k] = last[:len(last)-1]
	}

	for i, line := range lines {
		if len(line) == 0 {
			return nil, characterError("empty line in character data")
		}
		if line[len(line)-1] != delimiter {
			return nil, characterError("inconsistent line terminator in character data")
		}
		lines[i] = line[:len(line)-1]
	}

	res := make([][]grapheme.Grapheme, 0, len(lines))
	for _, line := range lines {
		cells, err := grapheme.Split(line, h.HardBlank())
		if err != nil {
			// Segmentation depends on the hard blank declared in the
			// header, so this is reported as a header mismatch.
			return nil, &MalformedHeaderError{Err: err}
		}
		res = append(res, cells)
	}

	return &FIGcharacter{lines: res}, nil
}

// ParseCharacterWithCodetag reads one record from the tagged section of a
// font: a code tag line followed by an ordinary character record.  It
// returns the code together with the decoded character.
func ParseCharacterWithCodetag(r *bufio.Reader, h *Header) (int32, *FIGcharacter, error) {
	code, err := readCodetag(r)
	if err != nil {
		return 0, nil, err
	}
	c, err := ParseCharacter(r, h)
	if err != nil {
		return 0, nil, err
	}
	return code, c, nil
}

// Lines returns the rows of the character.  The returned slices are owned
// by the FIGcharacter and must not be modified.
func (c *FIGcharacter) Lines() [][]grapheme.Grapheme {
	return c.lines
}

// Height returns the number of rows of the character.
func (c *FIGcharacter) Height() int {
	return len(c.lines)
}

// Width returns the length of the longest row, in display cells.
func (c *FIGcharacter) Width() int {
	w := 0
	for _, line := range c.lines {
		if len(line) > w {
			w = len(line)
		}
	}
	return w
}

func readCharacterLines(r *bufio.Reader, height int) ([][]byte, error) {
	lines := make([][]byte, 0, height)
	for i := 0; i < height-1; i++ {
		line, err := readLine(r)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	// The very last line of a font file may lack the trailing newline.
	line, err := readLastLine(r)
	if err != nil {
		return nil, err
	}
	lines = append(lines, line)

	return lines, nil
}

// readCodetag parses a code tag line.  The first space-separated token is
// the code, optionally signed, in decimal, octal ("0" prefix) or
// hexadecimal ("0x" prefix) notation.  Everything after the first space
// is a comment and is ignored.
func readCodetag(r *bufio.Reader) (int32, error) {
	line, err := readLine(r)
	if err != nil {
		return 0, err
	}

	tok := line
	if i := bytes.IndexByte(line, ' '); i >= 0 {
		tok = line[:i]
	}

	negative := false
	if bytes.HasPrefix(tok, []byte("-")) {
		negative = true
		tok = tok[1:]
	}

	var code int64
	var parseErr error
	switch {
	case bytes.HasPrefix(tok, []byte("0x")) || bytes.HasPrefix(tok, []byte("0X")):
		code, parseErr = strconv.ParseInt(string(tok[2:]), 16, 32)
	case len(tok) > 1 && tok[0] == '0':
		code, parseErr = strconv.ParseInt(string(tok[1:]), 8, 32)
	default:
		code, parseErr = strconv.ParseInt(string(tok), 10, 32)
	}
	if parseErr != nil {
		return 0, characterError("invalid code tag %q", line)
	}

	if negative {
		code = -code
	}
	return int32(code), nil
}
