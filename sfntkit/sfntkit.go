// seehuhn.de/go/formfont - Unicode font provisioning for PDF interactive forms
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

// Package sfntkit implements the font parsing capability of
// seehuhn.de/go/formfont for TrueType and OpenType fonts, using
// seehuhn.de/go/sfnt.
//
// Register the kit with a document before embedding fonts:
//
//	doc.RegisterKit(sfntkit.New())
package sfntkit

import (
	"bytes"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"

	"seehuhn.de/go/formfont"
)

type kit struct{}

// New returns a [formfont.Kit] which parses TrueType and OpenType font
// programs.
func New() formfont.Kit {
	return kit{}
}

// ParseFont implements the [formfont.Kit] interface.
func (kit) ParseFont(data []byte) (formfont.Program, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	p := &program{font: info}
	if sub, err := info.CMapTable.GetBest(); err == nil {
		p.cmap = sub
	}
	return p, nil
}

type program struct {
	font *sfnt.Font
	cmap cmap.Subtable
}

func (p *program) PostScriptName() string {
	return p.font.PostScriptName()
}

func (p *program) UnitsPerEm() uint16 {
	return p.font.UnitsPerEm
}

func (p *program) NumGlyphs() int {
	return p.font.NumGlyphs()
}

// Covers reports whether the font's best cmap subtable maps r to a
// glyph.  Fonts without a usable cmap cover nothing.
func (p *program) Covers(r rune) bool {
	return p.cmap != nil && p.cmap.Lookup(r) != 0
}
