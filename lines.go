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
	"io"
)

// readLine returns the next line of r with the end-of-line marker removed.
// The line must be terminated by "\n" or "\r\n"; if the stream ends first,
// readLine returns ErrNotEnoughData.
func readLine(r *bufio.Reader) ([]byte, error) {
	line, err := r.ReadBytes('\n')
	if err == io.EOF {
		return nil, ErrNotEnoughData
	} else if err != nil {
		return nil, err
	}
	return trimEOL(line), nil
}

// readLastLine is like readLine, but also accepts a line terminated by the
// end of the stream.  The last line of a font file is allowed to omit the
// trailing newline.
func readLastLine(r *bufio.Reader) ([]byte, error) {
	line, err := r.ReadBytes('\n')
	if err == io.EOF {
		if len(line) == 0 {
			return nil, ErrNotEnoughData
		}
	} else if err != nil {
		return nil, err
	}
	return trimEOL(line), nil
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line
}
