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

// Font resolution: a field is rendered with its explicit font if it has
// one, and with the form's default font otherwise.  If neither is set,
// the builtin standard font applies.  The functions in this file decide
// the first two steps; the final fallback to the standard font happens
// in [Form.DefaultFont] and [Field.EffectiveFont], so that callers
// always receive a usable handle.

// effectiveFormFont returns the form's default font, or nil if none has
// been provisioned.
func effectiveFormFont(form *Form) *Font {
	return form.defaultFont
}

// effectiveFieldFont returns the font for a field with the given
// explicit font.  Explicit fonts take precedence over the form default;
// a form default installed after a field received its explicit font
// does not change that field.
func effectiveFieldFont(override *Font, form *Form) *Font {
	if override != nil {
		return override
	}
	return effectiveFormFont(form)
}

// hasUnicodeFont reports whether a default font has been provisioned
// for the form.
func hasUnicodeFont(form *Form) bool {
	return form.defaultFont != nil
}
