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

	"github.com/georust/gpx/model"
)

// versionSet is a bit mask of the schema versions a child tag is legal in.
type versionSet uint8

const (
	v10 versionSet = 1 << iota
	v11

	anyVersion = v10 | v11
)

func (s versionSet) has(v model.Version) bool {
	switch v {
	case model.Gpx10:
		return s&v10 != 0
	default:
		return s&v11 != 0
	}
}

// rule describes how a parent element handles one child tag: in which
// versions the tag is legal, and the routine that consumes it into the
// entity under construction.
type rule[T any] struct {
	versions versionSet
	parse    func(c *Context, se xml.StartElement, dst *T) error
}

// rules is a parent element's allowed-children table, keyed by the child's
// local tag name.
type rules[T any] map[string]rule[T]

// consumeChildren drives the dispatch loop for a container element whose
// start tag has already been read.  It consumes events through the
// container's matching end tag.
//
// An extensions child is captured opaquely for every container, independent
// of the version tables; setExt attaches the captured subtree.  Any other
// child not present in the table for the active version fails with an
// InvalidChildElementError naming both tags.  Character data interleaved
// between children is ignored.
func consumeChildren[T any](c *Context, se xml.StartElement, dst *T, table rules[T], setExt func(dst *T, e *model.Extensions)) error {
	for {
		tok, err := c.token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "extensions" {
				ext, err := consumeExtensions(c, t)
				if err != nil {
					return err
				}

				setExt(dst, ext)

				continue
			}

			r, ok := table[t.Name.Local]
			if !ok || !r.versions.has(c.version) {
				return &InvalidChildElementError{Child: t.Name.Local, Parent: se.Name.Local}
			}

			if err := r.parse(c, t, dst); err != nil {
				return err
			}

		case xml.EndElement:
			// The tokenizer guarantees this is the container's own end tag.
			return nil
		}
	}
}

// anyRule builds a rule legal in every version.
func anyRule[T any](parse func(c *Context, se xml.StartElement, dst *T) error) rule[T] {
	return rule[T]{versions: anyVersion, parse: parse}
}

// onlyIn builds a rule legal in a subset of versions.
func onlyIn[T any](versions versionSet, parse func(c *Context, se xml.StartElement, dst *T) error) rule[T] {
	return rule[T]{versions: versions, parse: parse}
}
