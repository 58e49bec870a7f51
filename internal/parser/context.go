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

// Package parser consumes a stream of XML events and builds the GPX
// document model.  Each element has its own consume routine which reads the
// element's full subtree, through its matching end tag, and returns the
// populated entity or a structured error.
package parser

import (
	"encoding/xml"
	"fmt"

	"github.com/georust/gpx/model"
)

// Context carries the XML event source and the read-only version context
// established from the root element.  The active version decides which
// child tags are legal in each parent.
type Context struct {
	dec     *xml.Decoder
	version model.Version
}

// NewContext wraps an XML event source for parsing against the given
// schema version.
func NewContext(dec *xml.Decoder, version model.Version) *Context {
	return &Context{dec: dec, version: version}
}

// Version returns the active schema version.
func (c *Context) Version() model.Version {
	return c.version
}

// token returns the next XML event.  Lexer failures, including truncated
// input, are terminal and surface wrapped.
func (c *Context) token() (xml.Token, error) {
	tok, err := c.dec.Token()
	if err != nil {
		return nil, fmt.Errorf("error while parsing XML: %w", err)
	}

	return tok, nil
}

// attr returns the value of the named attribute on the start element.
func attr(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}

	return "", false
}

// requireAttr returns the value of the named attribute, or a
// MissingAttributeError naming the owning element.
func requireAttr(se xml.StartElement, name string) (string, error) {
	v, ok := attr(se, name)
	if !ok {
		return "", &MissingAttributeError{Attr: name, Element: se.Name.Local}
	}

	return v, nil
}
