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

// backfillFieldFonts assigns font to every field which does not carry
// an explicit font.  Fields with an explicit font keep it.  Field
// values, outlines, and all other field state are not touched; the
// change is a pure reference swap.
//
// Running the backfill a second time with the same font is a no-op,
// since all fields carry an explicit font after the first run.
func (f *Form) backfillFieldFonts(font *Font) {
	for _, fld := range f.fields {
		if fld.font == nil {
			fld.font = font
		}
	}
}
