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
	"golang.org/x/text/language"

	"seehuhn.de/go/formfont/bundled"
)

// Options controls the creation of a new document.
// The zero value (and a nil pointer) are valid and select the defaults.
type Options struct {
	// UnicodeFont holds a font program which is embedded into the
	// document and installed as the form's default font the first time
	// the form is accessed through [Document.Form].  This defers the
	// embedding cost until the form is actually used; document creation
	// itself never embeds fonts.
	UnicodeFont []byte

	// UpdateExistingFields makes the deferred provisioning step also
	// assign the new font to fields which do not carry an explicit font.
	// Fields with an explicit font are never changed.
	//
	// Since fields are created through the form, a document built with
	// [New] has no fields when the deferred step runs, and the option has
	// no visible effect.  It only matters for forms which already carry
	// fields at that point, such as documents reconstructed from an
	// existing field set.  Use [Form.ProvisionFont] to rewrite fields
	// after they have been created.
	//
	// This option is only valid together with UnicodeFont.
	UpdateExistingFields bool

	// FontCache holds the decoded bundled font asset used by
	// [Form.ProvisionBundledFont].  If this is nil, [bundled.Default] is
	// used, so that the decoding cost is paid at most once per process.
	FontCache *bundled.Cache
}

// withDefaults returns a copy of opt with all defaults filled in.
// opt may be nil.
func (opt *Options) withDefaults() *Options {
	res := &Options{}
	if opt != nil {
		*res = *opt
	}
	if res.FontCache == nil {
		res.FontCache = bundled.Default
	}
	return res
}

// validate checks the option values for consistency.
func (opt *Options) validate() error {
	if opt.UpdateExistingFields && len(opt.UnicodeFont) == 0 {
		return &OptionError{
			Option: "UpdateExistingFields",
			Reason: "requires UnicodeFont",
		}
	}
	return nil
}

// ProvisionOptions controls [Form.ProvisionFont].
type ProvisionOptions struct {
	// UpdateExistingFields assigns the new font to all fields which do
	// not carry an explicit font, after the new font has been installed
	// as the form default.  Fields with an explicit font are never
	// changed.
	UpdateExistingFields bool

	// Language is the language the form text is expected to be written
	// in.  The language is recorded on the embedded font handle and can
	// be retrieved via [Font.Language].
	Language language.Tag
}

// EmbedOptions allows to customize font embedding.
type EmbedOptions struct {
	// Language is the language the text in the font is expected to be
	// written in.  The language is recorded on the font handle.
	Language language.Tag
}
