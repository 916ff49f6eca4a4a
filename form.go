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
	"fmt"
	"slices"

	"golang.org/x/text/language"
	"seehuhn.de/go/geom/rect"
)

// Form is the interactive form of a document.
//
// A form is not safe for concurrent use.  If two provisioning calls
// overlap, the last one to complete determines the form's default font.
type Form struct {
	doc    *Document
	fields []*Field

	// defaultFont is the form's default font, installed by the
	// provisioning methods.  nil means that the builtin standard font
	// applies.
	defaultFont *Font
}

// AddTextField appends a new text field to the form.  The outline is the
// field's widget outline on the page; it has no effect on font
// resolution.
//
// Field names must be unique within a form.
func (f *Form) AddTextField(name string, outline rect.Rect) (*Field, error) {
	if f.Field(name) != nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}

	fld := &Field{
		form:    f,
		name:    name,
		outline: outline,
	}
	f.fields = append(f.fields, fld)
	return fld, nil
}

// Fields returns the fields of the form, in the order they were added.
func (f *Form) Fields() []*Field {
	return slices.Clone(f.fields)
}

// Field returns the field with the given name, or nil if no such field
// exists.
func (f *Form) Field(name string) *Field {
	for _, fld := range f.fields {
		if fld.name == name {
			return fld
		}
	}
	return nil
}

// ProvisionBundledFont embeds the Unicode font shipped with this library
// and installs it as the form's default font, replacing any previous
// default.  Existing fields are not changed.
//
// A Kit must have been registered with the document; otherwise the
// call fails with [ErrNoKit].
func (f *Form) ProvisionBundledFont() (*Font, error) {
	if !f.doc.HasKit() {
		// Check up front, so that a missing Kit does not cost a decode
		// of the bundled asset.
		return nil, ErrNoKit
	}

	data, err := f.doc.opt.FontCache.Bytes()
	if err != nil {
		return nil, err
	}
	return f.provision(data, nil, false)
}

// ProvisionFont embeds the given font program and installs it as the
// form's default font, replacing any previous default.  opt may be nil.
//
// If opt.UpdateExistingFields is set, fields which do not carry an
// explicit font are assigned the new font after it has been installed.
// A non-zero opt.Language is recorded on the embedded font handle.
func (f *Form) ProvisionFont(data []byte, opt *ProvisionOptions) (*Font, error) {
	var embedOpt *EmbedOptions
	update := false
	if opt != nil {
		update = opt.UpdateExistingFields
		var zeroLang language.Tag
		if opt.Language != zeroLang {
			embedOpt = &EmbedOptions{Language: opt.Language}
		}
	}
	return f.provision(data, embedOpt, update)
}

// provision embeds data and installs the resulting handle as the form's
// default font.  On error, the form is left unchanged.
func (f *Form) provision(data []byte, opt *EmbedOptions, updateFields bool) (*Font, error) {
	font, err := f.doc.EmbedFont(data, opt)
	if err != nil {
		return nil, err
	}

	f.defaultFont = font
	if updateFields {
		f.backfillFieldFonts(font)
	}
	return font, nil
}

// SetDefaultFont installs a font which the caller has already embedded
// (via [Document.EmbedFont]) as the form's default font.  No embedding
// takes place, and existing fields are not changed.  A nil font removes
// the default, so that the builtin standard font applies again.
//
// The font must belong to the same document as the form.
func (f *Form) SetDefaultFont(font *Font) error {
	if font != nil && font.doc != f.doc {
		return ErrWrongDocument
	}
	f.defaultFont = font
	return nil
}

// DefaultFont returns the font used for fields without an explicit
// font.  If no font has been provisioned, the builtin Helvetica font is
// returned.  The result is never nil.
func (f *Form) DefaultFont() *Font {
	if font := effectiveFormFont(f); font != nil {
		return font
	}
	return f.doc.StandardFont(Helvetica)
}

// HasUnicodeFont reports whether a default font has been provisioned for
// the form.  It does not check glyph coverage; use [Font.CanRepresent]
// for that.
func (f *Form) HasUnicodeFont() bool {
	return hasUnicodeFont(f)
}
