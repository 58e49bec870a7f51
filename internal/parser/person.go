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

var personChildren = rules[model.Person]{
	"name": anyRule(stringField(func(p *model.Person, v string) { p.Name = &v })),
	"email": anyRule(func(c *Context, se xml.StartElement, p *model.Person) error {
		email, err := consumeEmail(c, se)
		if err != nil {
			return err
		}

		p.Email = &email

		return nil
	}),
	"link": anyRule(func(c *Context, se xml.StartElement, p *model.Person) error {
		link, err := consumeLink(c, se)
		if err != nil {
			return err
		}

		p.Link = &link

		return nil
	}),
}

// consumePerson consumes an author element describing a person or
// organization.
func consumePerson(c *Context, se xml.StartElement) (model.Person, error) {
	var person model.Person

	err := consumeChildren(c, se, &person, personChildren, func(p *model.Person, e *model.Extensions) {
		p.Extensions = e
	})
	if err != nil {
		return model.Person{}, err
	}

	return person, nil
}
