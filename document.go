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
	"slices"
	"sync"
)

// Reference is the object number of a font resource inside a document.
// References are allocated per document; the zero value is never
// allocated.
type Reference uint32

// Document holds the font resources of one PDF document together with
// the document's interactive form.
//
// A Document is not safe for concurrent modification; the usual case of
// a single goroutine setting up a document is assumed.  Only the
// deferred form provisioning performed by [Document.Form] is
// synchronized, so that concurrent first accesses observe a single
// provisioning attempt.
type Document struct {
	opt *Options

	kit      Kit
	fonts    []*Font
	standard map[Name]*Font
	nextRef  Reference

	mu      sync.Mutex // guards the deferred provisioning state below
	phase   provisionPhase
	form    *Form
	formErr error
}

// provisionPhase tracks deferred form provisioning.
type provisionPhase int

const (
	notProvisioned provisionPhase = iota
	provisioning
	provisioned
	provisionFailed
)

// New creates an empty document.  opt may be nil.
func New(opt *Options) (*Document, error) {
	opt = opt.withDefaults()
	if err := opt.validate(); err != nil {
		return nil, err
	}

	d := &Document{
		opt:      opt,
		standard: make(map[Name]*Font),
	}
	d.form = &Form{doc: d}
	return d, nil
}

// RegisterKit installs the font parsing capability used by
// [Document.EmbedFont].  Embedding fails with [ErrNoKit] until a Kit has
// been registered.
func (d *Document) RegisterKit(kit Kit) {
	d.kit = kit
}

// HasKit reports whether a Kit has been registered with the document.
func (d *Document) HasKit() bool {
	return d.kit != nil
}

// EmbedFont embeds the given font program into the document and returns
// a handle for it.  Each call returns a distinct handle, even for
// identical data.
//
// EmbedFont fails with [ErrNoKit] if no Kit has been registered, and
// with an [*EmbedError] if the Kit rejects the font program.
func (d *Document) EmbedFont(data []byte, opt *EmbedOptions) (*Font, error) {
	if d.kit == nil {
		return nil, ErrNoKit
	}

	prog, err := d.kit.ParseFont(data)
	if err != nil {
		return nil, &EmbedError{Err: err}
	}

	f := &Font{
		doc:     d,
		ref:     d.alloc(),
		program: prog,
	}
	if opt != nil {
		f.lang = opt.Language
	}
	d.fonts = append(d.fonts, f)
	return f, nil
}

// StandardFont returns the handle for one of the 14 builtin standard
// fonts.  Repeated calls with the same name return the same handle.
// No Kit is required.
//
// StandardFont panics if name is not one of the names listed in
// [StandardFonts].
func (d *Document) StandardFont(name Name) *Font {
	if f := d.standard[name]; f != nil {
		return f
	}
	if !isStandard(name) {
		panic("formfont: not a standard font: " + string(name))
	}

	f := &Font{
		doc:  d,
		ref:  d.alloc(),
		name: name,
	}
	d.standard[name] = f
	return f
}

// Fonts returns the fonts embedded into the document, in embedding
// order.  Builtin standard fonts are not included.
func (d *Document) Fonts() []*Font {
	return slices.Clone(d.fonts)
}

func (d *Document) alloc() Reference {
	d.nextRef++
	return d.nextRef
}

// Form returns the document's interactive form.
//
// If the document was created with [Options].UnicodeFont, the first call
// embeds that font and installs it as the form's default font, honouring
// [Options].UpdateExistingFields.  The outcome is memoized: concurrent
// and later callers observe the same result, and a failed attempt is not
// retried.
func (d *Document) Form() (*Form, error) {
	if len(d.opt.UnicodeFont) == 0 {
		return d.form, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.phase {
	case provisioned:
		return d.form, nil
	case provisionFailed:
		return nil, d.formErr
	}

	d.phase = provisioning
	_, err := d.form.provision(d.opt.UnicodeFont, nil, d.opt.UpdateExistingFields)
	if err != nil {
		d.phase = provisionFailed
		d.formErr = err
		return nil, err
	}
	d.phase = provisioned
	return d.form, nil
}
