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

package formfont_test

import (
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/formfont"
	"seehuhn.de/go/formfont/bundled"
	"seehuhn.de/go/formfont/sfntkit"
)

// TestProvisionBundled runs the full provisioning path with the real
// sfnt-based kit and the bundled font.
func TestProvisionBundled(t *testing.T) {
	doc, err := formfont.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	doc.RegisterKit(sfntkit.New())

	form, err := doc.Form()
	if err != nil {
		t.Fatal(err)
	}

	font, err := form.ProvisionBundledFont()
	if err != nil {
		t.Fatal(err)
	}

	if !form.HasUnicodeFont() {
		t.Error("HasUnicodeFont is false after provisioning")
	}
	if form.DefaultFont() != font {
		t.Error("DefaultFont is not the provisioned font")
	}
	if font.Builtin() {
		t.Error("provisioned font reported as builtin")
	}
	if font.PostScriptName() == "" {
		t.Error("provisioned font has no PostScript name")
	}

	// the bundled font covers scripts the standard fonts do not
	if !font.CanRepresent("Grüße, мир") {
		t.Error("bundled font cannot represent Cyrillic text")
	}
	if doc.StandardFont(formfont.Helvetica).CanRepresent("мир") {
		t.Error("builtin standard font claims Cyrillic coverage")
	}
}

// TestDeferredBundled checks deferred provisioning with real font
// bytes: the document embeds the font on first form access.
func TestDeferredBundled(t *testing.T) {
	data, err := bundled.Default.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	doc, err := formfont.New(&formfont.Options{
		UnicodeFont:          data,
		UpdateExistingFields: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	doc.RegisterKit(sfntkit.New())

	form, err := doc.Form()
	if err != nil {
		t.Fatal(err)
	}
	if !form.HasUnicodeFont() {
		t.Error("deferred provisioning did not run")
	}
	if len(doc.Fonts()) != 1 {
		t.Errorf("wrong number of embedded fonts: %d != 1", len(doc.Fonts()))
	}

	// fields added afterwards inherit the provisioned font
	fld, err := form.AddTextField("name", rect.Rect{URx: 200, URy: 20})
	if err != nil {
		t.Fatal(err)
	}
	if fld.EffectiveFont() != form.DefaultFont() {
		t.Error("new field does not inherit the provisioned font")
	}
}

// TestProvisionCustomBytes checks provisioning with caller-supplied
// font bytes and field migration, end to end.
func TestProvisionCustomBytes(t *testing.T) {
	data, err := bundled.Default.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	doc, err := formfont.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	doc.RegisterKit(sfntkit.New())
	form, err := doc.Form()
	if err != nil {
		t.Fatal(err)
	}

	withFont, err := form.AddTextField("with font", rect.Rect{URx: 100, URy: 20})
	if err != nil {
		t.Fatal(err)
	}
	without, err := form.AddTextField("without font", rect.Rect{URx: 100, URy: 20})
	if err != nil {
		t.Fatal(err)
	}

	explicit, err := doc.EmbedFont(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := withFont.SetFont(explicit); err != nil {
		t.Fatal(err)
	}

	font, err := form.ProvisionFont(data, &formfont.ProvisionOptions{
		UpdateExistingFields: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	if withFont.EffectiveFont() != explicit {
		t.Error("field with explicit font was migrated")
	}
	if without.EffectiveFont() != font {
		t.Error("field without explicit font was not migrated")
	}
}
