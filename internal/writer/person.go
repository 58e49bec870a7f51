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

package writer

import (
	"strconv"
	"strings"

	"github.com/georust/gpx/model"
)

// person emits the GPX 1.1 author element.
func (e *Emitter) person(p *model.Person) error {
	if err := e.start("author"); err != nil {
		return err
	}

	if err := e.optString("name", p.Name); err != nil {
		return err
	}

	if p.Email != nil {
		if err := e.email(*p.Email); err != nil {
			return err
		}
	}

	if p.Link != nil {
		if err := e.link(p.Link); err != nil {
			return err
		}
	}

	if err := e.extensions(p.Extensions); err != nil {
		return err
	}

	return e.end("author")
}

// email splits an id@domain address into the GPX 1.1 attribute form.
func (e *Emitter) email(address string) error {
	id, domain, ok := strings.Cut(address, "@")
	if !ok || id == "" || domain == "" || strings.Contains(domain, "@") {
		return &InvalidEmailError{Email: address}
	}

	if err := e.start("email", attr("id", id), attr("domain", domain)); err != nil {
		return err
	}

	return e.end("email")
}

// copyright emits the GPX 1.1 copyright element.
func (e *Emitter) copyright(c *model.Copyright) error {
	if err := e.start("copyright", attr("author", c.Author)); err != nil {
		return err
	}

	if c.Year != nil {
		if err := e.element("year", strconv.Itoa(*c.Year)); err != nil {
			return err
		}
	}

	if err := e.optString("license", c.License); err != nil {
		return err
	}

	if err := e.extensions(c.Extensions); err != nil {
		return err
	}

	return e.end("copyright")
}
