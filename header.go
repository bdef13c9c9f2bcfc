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
	"strings"
)

// magic is the fixed prefix of the first header token.  The byte following
// the version letter is the hard blank character, as in "flf2a$".
var magic = []byte("flf2")

// PrintDirection is the direction in which a font is intended to be
// printed.
type PrintDirection int

const (
	LeftToRight PrintDirection = 0
	RightToLeft PrintDirection = 1
)

// Header holds the font-wide settings from the first line of a FIGfont
// file, together with the comment block which follows it.  A Header is
// immutable after ParseHeader returns and can be shared between
// goroutines.
type Header struct {
	hardBlank    byte
	height       int
	baseline     int
	maxLength    int
	oldLayout    int
	fullLayout   int
	comment      string
	printDir     PrintDirection
	hasPrintDir  bool
	codetagCount int
}

// ParseHeader reads the header line and the comment block from the start
// of a FIGfont file.
func ParseHeader(r *bufio.Reader) (*Header, error) {
	line, err := readLine(r)
	if err != nil {
		return nil, err
	}

	var b headerBuilder
	idx := 0
	for _, tok := range bytes.Split(line, []byte{' '}) {
		if len(tok) == 0 {
			// runs of spaces count as a single separator
			continue
		}
		err := b.setField(idx, tok)
		if err != nil {
			return nil, err
		}
		idx++
	}

	return b.build(r)
}

// HardBlank returns the byte which marks a cell that is filled but
// renders as white space.
func (h *Header) HardBlank() byte {
	return h.hardBlank
}

// Height returns the number of text rows of every character in the font.
// It is always at least 1.
func (h *Header) Height() int {
	return h.height
}

// Baseline returns the row index used by renderers for vertical
// alignment.  The value is taken from the header as-is and is not
// validated against Height.
func (h *Header) Baseline() int {
	return h.baseline
}

// MaxLength returns the declared maximum character width, including the
// deprecated horizontal padding.
func (h *Header) MaxLength() int {
	return h.maxLength
}

// OldLayout returns the legacy layout value: -1 for no smushing, 0 for
// the legacy default, any other value is a smushing rule bitmask.
func (h *Header) OldLayout() int {
	return h.oldLayout
}

// FullLayout returns the full layout bitmask.  If the header line does
// not carry an explicit full layout field, the value is derived from the
// old layout.
func (h *Header) FullLayout() int {
	return h.fullLayout
}

// Comment returns the font comment with the trailing newline removed.
func (h *Header) Comment() string {
	return h.comment
}

// PrintDirection returns the print direction, if the header specifies
// one.
func (h *Header) PrintDirection() (PrintDirection, bool) {
	return h.printDir, h.hasPrintDir
}

// CodetagCount returns the number of tagged character records following
// the 102 required ones.  Fonts without the field have count 0.
func (h *Header) CodetagCount() int {
	return h.codetagCount
}

// headerBuilder collects the header fields while the header line is
// parsed.  Required fields which are still nil when the line is exhausted
// make build fail.
type headerBuilder struct {
	hardBlank    *byte
	height       *int
	baseline     *int
	maxLength    *int
	oldLayout    *int
	fullLayout   *int
	commentLines *int
	printDir     *PrintDirection
	codetagCount *int
}

func (b *headerBuilder) setField(idx int, tok []byte) error {
	switch idx {
	case 0:
		if !bytes.HasPrefix(tok, magic) {
			return headerError("wrong magic number %q", tok)
		}
		hardBlank := tok[len(tok)-1]
		b.hardBlank = &hardBlank
	case 1:
		return parseUint(&b.height, tok)
	case 2:
		return parseUint(&b.baseline, tok)
	case 3:
		return parseUint(&b.maxLength, tok)
	case 4:
		err := parseInt(&b.oldLayout, tok)
		if err != nil {
			return err
		}
		fullLayout := fullLayoutFromOldLayout(*b.oldLayout)
		b.fullLayout = &fullLayout
	case 5:
		return parseUint(&b.commentLines, tok)
	case 6:
		return parsePrintDirection(&b.printDir, tok)
	case 7:
		// an explicit full layout overrides the derived one
		return parseUint(&b.fullLayout, tok)
	case 8:
		return parseUint(&b.codetagCount, tok)
	default:
		return headerError("too many header fields")
	}
	return nil
}

func (b *headerBuilder) build(r *bufio.Reader) (*Header, error) {
	commentLines := 0
	if b.commentLines != nil {
		commentLines = *b.commentLines
	}
	comment, err := readComment(r, commentLines)
	if err != nil {
		return nil, err
	}

	if b.hardBlank == nil || b.height == nil || b.baseline == nil ||
		b.maxLength == nil || b.oldLayout == nil || b.fullLayout == nil {
		return nil, headerError("required header fields missing")
	}
	if *b.height < 1 {
		return nil, headerError("character height must be positive")
	}

	h := &Header{
		hardBlank:  *b.hardBlank,
		height:     *b.height,
		baseline:   *b.baseline,
		maxLength:  *b.maxLength,
		oldLayout:  *b.oldLayout,
		fullLayout: *b.fullLayout,
		comment:    comment,
	}
	if b.printDir != nil {
		h.printDir = *b.printDir
		h.hasPrintDir = true
	}
	if b.codetagCount != nil {
		h.codetagCount = *b.codetagCount
	}
	return h, nil
}

func readComment(r *bufio.Reader, numLines int) (string, error) {
	if numLines == 0 {
		return "", nil
	}
	lines := make([]string, numLines)
	for i := range lines {
		line, err := readLine(r)
		if err != nil {
			return "", err
		}
		lines[i] = string(line)
	}
	return strings.Join(lines, "\n"), nil
}

func fullLayoutFromOldLayout(oldLayout int) int {
	switch oldLayout {
	case -1:
		return 0
	case 0:
		return 1 << 6
	default:
		return oldLayout
	}
}

func parseUint(dst **int, tok []byte) error {
	x, err := strconv.ParseUint(string(tok), 10, 31)
	if err != nil {
		return headerError("invalid header field %q", tok)
	}
	val := int(x)
	*dst = &val
	return nil
}

func parseInt(dst **int, tok []byte) error {
	x, err := strconv.ParseInt(string(tok), 10, 32)
	if err != nil {
		return headerError("invalid header field %q", tok)
	}
	val := int(x)
	*dst = &val
	return nil
}

func parsePrintDirection(dst **PrintDirection, tok []byte) error {
	x, err := strconv.ParseUint(string(tok), 10, 8)
	if err != nil || x > 1 {
		return headerError("invalid print direction %q", tok)
	}
	dir := PrintDirection(x)
	*dst = &dir
	return nil
}
