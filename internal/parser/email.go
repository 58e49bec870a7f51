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

package parser

import (
	"encoding/xml"
	"strings"

	"github.com/georust/gpx/model"
)

// consumeEmail consumes an email element.  GPX 1.1 carries the address as
// mandatory id and domain attributes; GPX 1.0 carries it as plain text
// content.  Either way the result is a single id@domain string.
func consumeEmail(c *Context, se xml.StartElement) (string, error) {
	if c.version == model.Gpx10 {
		addr, err := consumeString(c, se)
		if err != nil {
			return "", err
		}

		return strings.TrimSpace(addr), nil
	}

	id, err := requireAttr(se, "id")
	if err != nil {
		return "", err
	}

	domain, err := requireAttr(se, "domain")
	if err != nil {
		return "", err
	}

	if err := skipElement(c, se); err != nil {
		return "", err
	}

	return id + "@" + domain, nil
}

// skipElement consumes an element expected to carry no children, through
// its end tag.  A child start tag is rejected.
func skipElement(c *Context, se xml.StartElement) error {
	for {
		tok, err := c.token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return &InvalidChildElementError{Child: t.Name.Local, Parent: se.Name.Local}

		case xml.EndElement:
			return nil
		}
	}
}
