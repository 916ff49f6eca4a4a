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

// Name identifies one of the builtin standard fonts.
type Name string

// Constants for the 14 standard PDF fonts.  These are always available
// through [Document.StandardFont], without a Kit being registered.
const (
	Courier              Name = "Courier"
	CourierBold          Name = "Courier-Bold"
	CourierBoldOblique   Name = "Courier-BoldOblique"
	CourierOblique       Name = "Courier-Oblique"
	Helvetica            Name = "Helvetica"
	HelveticaBold        Name = "Helvetica-Bold"
	HelveticaBoldOblique Name = "Helvetica-BoldOblique"
	HelveticaOblique     Name = "Helvetica-Oblique"
	TimesRoman           Name = "Times-Roman"
	TimesBold            Name = "Times-Bold"
	TimesBoldItalic      Name = "Times-BoldItalic"
	TimesItalic          Name = "Times-Italic"
	Symbol               Name = "Symbol"
	ZapfDingbats         Name = "ZapfDingbats"
)

// StandardFonts lists the names of the 14 standard PDF fonts.
var StandardFonts = []Name{
	Courier,
	CourierBold,
	CourierBoldOblique,
	CourierOblique,
	Helvetica,
	HelveticaBold,
	HelveticaBoldOblique,
	HelveticaOblique,
	TimesRoman,
	TimesBold,
	TimesBoldItalic,
	TimesItalic,
	Symbol,
	ZapfDingbats,
}

func isStandard(name Name) bool {
	for _, n := range StandardFonts {
		if n == name {
			return true
		}
	}
	return false
}
