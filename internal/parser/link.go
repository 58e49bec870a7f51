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

var linkChildren = rules[model.Link]{
	"text": anyRule(stringField(func(l *model.Link, v string) { l.Text = &v })),
	"type": anyRule(stringField(func(l *model.Link, v string) { l.Type = &v })),
}

// consumeLink consumes a GPX 1.1 link element.  The href attribute is
// mandatory.
func consumeLink(c *Context, se xml.StartElement) (model.Link, error) {
	href, err := requireAttr(se, "href")
	if err != nil {
		return model.Link{}, err
	}

	link := model.Link{Href: href}

	err = consumeChildren(c, se, &link, linkChildren, func(l *model.Link, e *model.Extensions) {
		l.Extensions = e
	})
	if err != nil {
		return model.Link{}, err
	}

	return link, nil
}
