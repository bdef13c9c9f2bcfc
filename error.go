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
	"errors"
	"fmt"
)

// ErrNotEnoughData indicates that the font data ended before a complete
// record could be read.
var ErrNotEnoughData = errors.New("unexpected end of font data")

// MalformedHeaderError indicates that the font header could not be parsed.
type MalformedHeaderError struct {
	Err error
}

func (err *MalformedHeaderError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "malformed FIGfont header" + middle
}

func (err *MalformedHeaderError) Unwrap() error {
	return err.Err
}

// MalformedCharacterError indicates that a character record could not be
// parsed.
type MalformedCharacterError struct {
	Err error
}

func (err *MalformedCharacterError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "malformed FIGfont character" + middle
}

func (err *MalformedCharacterError) Unwrap() error {
	return err.Err
}

func headerError(format string, a ...interface{}) error {
	return &MalformedHeaderError{Err: fmt.Errorf(format, a...)}
}

func characterError(format string, a ...interface{}) error {
	return &MalformedCharacterError{Err: fmt.Errorf(format, a...)}
}
