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

var copyrightChildren = rules[model.Copyright]{
	"year": anyRule(func(c *Context, se xml.StartElement, cp *model.Copyright) error {
		year, err := consumeInt(c, se)
		if err != nil {
			return err
		}

		cp.Year = &year

		return nil
	}),
	"license": anyRule(stringField(func(cp *model.Copyright, v string) { cp.License = &v })),
}

// consumeCopyright consumes a copyright element.  The author attribute is
// mandatory.
func consumeCopyright(c *Context, se xml.StartElement) (model.Copyright, error) {
	author, err := requireAttr(se, "author")
	if err != nil {
		return model.Copyright{}, err
	}

	copyright := model.Copyright{Author: author}

	err = consumeChildren(c, se, &copyright, copyrightChildren, func(cp *model.Copyright, e *model.Extensions) {
		cp.Extensions = e
	})
	if err != nil {
		return model.Copyright{}, err
	}

	return copyright, nil
}
