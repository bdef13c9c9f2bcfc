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

// Figfont-info prints the header fields and glyph dimensions of a
// FIGfont file.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"seehuhn.de/go/figfont"
)

var args struct {
	ShowComment bool   `short:"c" help:"Print the embedded font comment"`
	Input       string `arg:"" name:"input" help:"Path to the .flf font file" type:"path"`
}

func main() {
	kong.Parse(&args)

	f, err := os.Open(args.Input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	font, err := figfont.ParseFont(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", args.Input, err)
		os.Exit(1)
	}

	h := font.Header()
	fmt.Printf("height:        %d\n", h.Height())
	fmt.Printf("baseline:      %d\n", h.Baseline())
	fmt.Printf("max length:    %d\n", h.MaxLength())
	fmt.Printf("old layout:    %d\n", h.OldLayout())
	fmt.Printf("full layout:   %d\n", h.FullLayout())
	fmt.Printf("hard blank:    %q\n", h.HardBlank())
	if dir, ok := h.PrintDirection(); ok {
		name := "left-to-right"
		if dir == figfont.RightToLeft {
			name = "right-to-left"
		}
		fmt.Printf("direction:     %s\n", name)
	}
	fmt.Printf("characters:    %d\n", font.NumChars())
	fmt.Printf("tagged chars:  %d\n", h.CodetagCount())

	maxWidth := 0
	for _, c := range []rune{'A', 'M', 'W'} {
		if char, ok := font.Char(c); ok && char.Width() > maxWidth {
			maxWidth = char.Width()
		}
	}
	fmt.Printf("sample width:  %d\n", maxWidth)

	if args.ShowComment {
		fmt.Println()
		fmt.Println(h.Comment())
	}
}
