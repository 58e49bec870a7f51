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
	"time"

	"github.com/georust/gpx/model"
)

var metadataChildren = rules[model.Metadata]{
	"name": anyRule(stringField(func(m *model.Metadata, v string) { m.Name = &v })),
	"desc": anyRule(stringField(func(m *model.Metadata, v string) { m.Description = &v })),
	"author": anyRule(func(c *Context, se xml.StartElement, m *model.Metadata) error {
		person, err := consumePerson(c, se)
		if err != nil {
			return err
		}

		m.Author = &person

		return nil
	}),
	"copyright": anyRule(func(c *Context, se xml.StartElement, m *model.Metadata) error {
		cp, err := consumeCopyright(c, se)
		if err != nil {
			return err
		}

		m.Copyright = &cp

		return nil
	}),
	"link": anyRule(func(c *Context, se xml.StartElement, m *model.Metadata) error {
		link, err := consumeLink(c, se)
		if err != nil {
			return err
		}

		m.Links = append(m.Links, link)

		return nil
	}),
	"time":     anyRule(timeField(func(m *model.Metadata, v time.Time) { m.Time = &v })),
	"keywords": anyRule(stringField(func(m *model.Metadata, v string) { m.Keywords = &v })),
	"bounds": anyRule(func(c *Context, se xml.StartElement, m *model.Metadata) error {
		bounds, err := consumeBounds(c, se)
		if err != nil {
			return err
		}

		m.Bounds = &bounds

		return nil
	}),
}

// consumeMetadata consumes a GPX 1.1 metadata element.  GPX 1.0 has no such
// container; its equivalents are flattened into the root element and handled
// there.
func consumeMetadata(c *Context, se xml.StartElement) (model.Metadata, error) {
	var metadata model.Metadata

	err := consumeChildren(c, se, &metadata, metadataChildren, func(m *model.Metadata, e *model.Extensions) {
		m.Extensions = e
	})
	if err != nil {
		return model.Metadata{}, err
	}

	return metadata, nil
}
