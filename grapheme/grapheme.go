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

// Package grapheme splits rows of FIGfont character data into display
// cells.  One cell corresponds to one extended grapheme cluster
// (Unicode UAX #29), so that combining marks do not add to the visual
// width of a row.
package grapheme

import (
	"errors"
	"unicode/utf8"

	"github.com/go-text/typesetting/segmenter"
)

// Grapheme is one display cell of a character row.
type Grapheme struct {
	// Text is the text of the cell, empty for a hard blank.
	Text string

	// HardBlank marks a cell which renders as white space but which
	// renderers must treat as filled.
	HardBlank bool
}

// String returns the text a renderer would emit for the cell.  Hard
// blanks print as a single space.
func (g Grapheme) String() string {
	if g.HardBlank {
		return " "
	}
	return g.Text
}

var errInvalidUTF8 = errors.New("character data is not valid UTF-8")

// Split segments one delimiter-stripped row of character data into
// cells.  Every occurrence of the hard blank byte becomes a cell with
// HardBlank set, so that downstream code can tell "intentionally blank"
// from ordinary spaces.
func Split(line []byte, hardBlank byte) ([]Grapheme, error) {
	if !utf8.Valid(line) {
		return nil, errInvalidUTF8
	}
	if len(line) == 0 {
		return nil, nil
	}
	paragraph := []rune(string(line))

	var seg segmenter.Segmenter
	seg.Init(paragraph)

	cells := make([]Grapheme, 0, len(paragraph))
	iter := seg.GraphemeIterator()
	for iter.Next() {
		g := iter.Grapheme()
		if len(g.Text) == 1 && g.Text[0] < utf8.RuneSelf && byte(g.Text[0]) == hardBlank {
			cells = append(cells, Grapheme{HardBlank: true})
			continue
		}
		cells = append(cells, Grapheme{Text: string(g.Text)})
	}
	return cells, nil
}
