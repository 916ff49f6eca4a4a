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

// Package formfont provides Unicode fonts for PDF interactive forms.
//
// The standard fonts which are always available in a PDF viewer only
// cover a small repertoire of characters.  To fill form fields with text
// outside this repertoire, a font must be embedded into the document and
// installed as the font of the form, or of individual fields.  This
// package implements the bookkeeping for this: it ships a bundled
// Unicode font (see package [seehuhn.de/go/formfont/bundled]), embeds
// fonts on request, keeps track of which font applies to which field,
// and can rewrite existing fields to use a newly installed font.
//
// Before custom fonts can be embedded, a font parsing capability must be
// registered with the document:
//
//	doc, err := formfont.New(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc.RegisterKit(sfntkit.New())
//
//	form, err := doc.Form()
//	if err != nil {
//		log.Fatal(err)
//	}
//	_, err = form.ProvisionBundledFont()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Fonts are resolved per field: an explicit field font takes precedence
// over the form's default font, which in turn takes precedence over the
// builtin standard font.  Setting the form default after a field already
// has its own font does not change that field.
//
// The package does not generate field appearances and does not write PDF
// files; it only manages font resources and their assignment to fields.
package formfont
