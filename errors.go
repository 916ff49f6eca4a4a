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

import "errors"

var (
	// ErrNoKit indicates that font embedding was attempted before a Kit
	// was registered with the document.
	ErrNoKit = errors.New("no font kit registered")

	// ErrWrongDocument indicates that a font handle from one document was
	// used with a form or field of a different document.
	ErrWrongDocument = errors.New("font belongs to a different document")

	// ErrDuplicateField indicates that a field with the given name already
	// exists in the form.
	ErrDuplicateField = errors.New("duplicate form field name")
)

// EmbedError indicates that a font program was rejected at embedding
// time, because the Kit could not parse it.
type EmbedError struct {
	Err error
}

func (err *EmbedError) Error() string {
	return "invalid font program: " + err.Err.Error()
}

func (err *EmbedError) Unwrap() error {
	return err.Err
}

// OptionError indicates an invalid combination of document options.
type OptionError struct {
	Option string
	Reason string
}

func (err *OptionError) Error() string {
	return "option " + err.Option + ": " + err.Reason
}
