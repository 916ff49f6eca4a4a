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

// Package bundled provides the Unicode font shipped with this library.
//
// The bundled font is Go Regular, covering the Latin, Greek and Cyrillic
// scripts.  The font program is compiled into the binary via
// golang.org/x/image/font/gofont/goregular; materializing and checking
// the payload is deferred until first use.
package bundled

import (
	"bytes"
	"encoding/binary"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font/gofont/goregular"
)

// Cache holds the decoded bundled font.
//
// The zero value is ready to use.  All methods are safe for concurrent
// use: the payload is decoded at most once, and concurrent first callers
// wait for the same decode instead of racing their own.
type Cache struct {
	once   sync.Once
	loaded atomic.Bool

	// payload overrides the bundled payload.  Used by tests; nil selects
	// the Go Regular font data.
	payload []byte

	data []byte
	err  error
}

// Default is the cache used by documents which do not have a cache of
// their own configured.  Sharing Default across documents makes sure the
// decoding cost is paid at most once per process.
var Default = New()

// New returns a new cache for the bundled font.
func New() *Cache {
	return &Cache{}
}

// Bytes returns the font program of the bundled font.  The first call
// materializes and verifies the payload; all calls return the same
// buffer.  Callers must not modify the returned slice.
//
// A decode failure indicates a corrupted build and is reported on every
// call; the decode is not retried.
func (c *Cache) Bytes() ([]byte, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return nil, c.err
	}
	return c.data, nil
}

// IsLoaded reports whether the payload has already been decoded,
// without triggering the decode.
func (c *Cache) IsLoaded() bool {
	return c.loaded.Load()
}

// Preload decodes the payload now.  This is equivalent to calling
// [Cache.Bytes] and discarding the result, and lets callers pay the
// decoding cost outside a latency-sensitive path.
func (c *Cache) Preload() error {
	_, err := c.Bytes()
	return err
}

func (c *Cache) load() {
	payload := c.payload
	if payload == nil {
		payload = goregular.TTF
	}

	if err := checkHeader(payload); err != nil {
		c.err = err
		return
	}

	// Hand out a private copy, so that no caller can corrupt the
	// package data in golang.org/x/image.
	c.data = bytes.Clone(payload)
	c.loaded.Store(true)
}

// checkHeader verifies that the payload starts with a well-formed sfnt
// table directory.  A failure here indicates a corrupted build, not a
// run-time condition.
func checkHeader(data []byte) error {
	if len(data) < 12 {
		return &DecodeError{Reason: "payload too short"}
	}

	switch binary.BigEndian.Uint32(data) {
	case 0x00010000, 0x4F54544F, 0x74727565: // TrueType, "OTTO", "true"
		// pass
	default:
		return &DecodeError{Reason: "unknown sfnt version"}
	}

	numTables := int(binary.BigEndian.Uint16(data[4:]))
	if numTables == 0 || len(data) < 12+16*numTables {
		return &DecodeError{Reason: "truncated table directory"}
	}
	return nil
}

// DecodeError indicates that the bundled font payload is corrupted.
type DecodeError struct {
	Reason string
}

func (err *DecodeError) Error() string {
	return "bundled font: " + err.Reason
}
