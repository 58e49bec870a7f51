// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gpx reads and writes GPX documents, the XML interchange format
// for GPS data.  Both GPX 1.0 and GPX 1.1 are supported; vendor extensions
// are preserved verbatim across a read-modify-write round trip.
package gpx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/georust/gpx/internal/parser"
	"github.com/georust/gpx/model"
)

// Read parses a GPX document from r and returns the populated document
// model, or a structured error naming the offending tag, attribute, or
// value.  The schema version is taken from the root element's version
// attribute; an unrecognized version falls back to the configured default.
// Content after the root element's end tag is ignored.
func Read(r io.Reader, opts ...ReadOption) (*model.GPX, error) {
	cfg := defaultReadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	dec := xml.NewDecoder(r)

	se, err := findRootElement(dec)
	if err != nil {
		return nil, err
	}

	if se.Name.Local != "gpx" {
		return nil, ErrInvalidRootElement
	}

	g := model.NewGPX(cfg.defaultVersion)

	for _, a := range se.Attr {
		switch a.Name.Local {
		case "version":
			if v, ok := model.ParseVersion(a.Value); ok {
				g.Version = v
			}
		case "creator":
			creator := a.Value
			g.Creator = &creator
		}
	}

	if err := parser.ConsumeGPX(parser.NewContext(dec, g.Version), se, g); err != nil {
		return nil, err
	}

	return g, nil
}

func findRootElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, ErrNoRootElement
		}

		if err != nil {
			return xml.StartElement{}, fmt.Errorf("error while parsing XML: %w", err)
		}

		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}
