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

package formfont

import (
	"unicode"

	"golang.org/x/text/language"
)

// Kit parses binary font programs.  A Kit must be registered with a
// document before custom fonts can be embedded.  Package
// [seehuhn.de/go/formfont/sfntkit] provides an implementation for
// TrueType and OpenType fonts.
type Kit interface {
	// ParseFont decodes a font program.
	ParseFont(data []byte) (Program, error)
}

// Program is the decoded form of a font program, as produced by a Kit.
type Program interface {
	// PostScriptName returns the PostScript name of the font.
	PostScriptName() string

	// UnitsPerEm returns the number of font design units per em square.
	UnitsPerEm() uint16

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// Covers reports whether the font maps the given rune to a glyph.
	Covers(r rune) bool
}

// Font is a handle for a font resource inside a document.
//
// Handles are obtained from [Document.EmbedFont] and
// [Document.StandardFont], or through the provisioning methods of a
// [Form].  Handles compare by identity: embedding the same font program
// twice yields two distinct handles.
type Font struct {
	doc     *Document
	ref     Reference
	name    Name    // set for builtin standard fonts
	program Program // nil for builtin standard fonts
	lang    language.Tag
}

// Reference returns the object number of the font resource inside its
// document.
func (f *Font) Reference() Reference {
	return f.ref
}

// PostScriptName returns the PostScript name of the font.
func (f *Font) PostScriptName() string {
	if f.program != nil {
		return f.program.PostScriptName()
	}
	return string(f.name)
}

// Builtin reports whether f refers to one of the builtin standard fonts.
func (f *Font) Builtin() bool {
	return f.program == nil
}

// Language returns the language the font was embedded for, or the zero
// tag if no language was given.
func (f *Font) Language() language.Tag {
	return f.lang
}

// CanRepresent reports whether the font has a glyph for every rune of s.
//
// For the builtin standard fonts no font program is available, and the
// answer is approximated using the Latin-1 repertoire.
func (f *Font) CanRepresent(s string) bool {
	for _, r := range s {
		if f.program == nil {
			if r > unicode.MaxLatin1 {
				return false
			}
			continue
		}
		if !f.program.Covers(r) {
			return false
		}
	}
	return true
}
