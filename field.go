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

import "seehuhn.de/go/geom/rect"

// Field is a text field of a form.
//
// The value and the font of a field are independent slots: changing one
// never changes the other.
type Field struct {
	form    *Form
	name    string
	outline rect.Rect
	value   string

	// font is the field's explicit font.  nil means that the form
	// default applies, resolved at use time rather than at field
	// creation time.
	font *Font
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// Outline returns the widget outline of the field on the page.
func (f *Field) Outline() rect.Rect {
	return f.outline
}

// Value returns the text content of the field.
func (f *Field) Value() string {
	return f.value
}

// SetValue sets the text content of the field.  The visual appearance
// is regenerated when the document is rendered or saved; this package
// only records the value.
func (f *Field) SetValue(value string) {
	f.value = value
}

// Font returns the field's explicit font, or nil if the field inherits
// the form default.
func (f *Field) Font() *Font {
	return f.font
}

// SetFont gives the field an explicit font, overriding the form
// default.  A nil font removes the override, so that the form default
// applies again.
//
// The font must belong to the same document as the field.
func (f *Field) SetFont(font *Font) error {
	if font != nil && font.doc != f.form.doc {
		return ErrWrongDocument
	}
	f.font = font
	return nil
}

// EffectiveFont returns the font the field is rendered with: the
// field's explicit font if it has one, the form's default font
// otherwise, and the builtin standard font if neither is set.  The
// result is never nil.
func (f *Field) EffectiveFont() *Font {
	if font := effectiveFieldFont(f.font, f.form); font != nil {
		return font
	}
	return f.form.doc.StandardFont(Helvetica)
}
