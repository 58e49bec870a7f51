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
	"github.com/georust/gpx/model"
)

// link emits the GPX 1.1 link element.
func (e *Emitter) link(l *model.Link) error {
	if err := e.start("link", attr("href", l.Href)); err != nil {
		return err
	}

	if err := e.optString("text", l.Text); err != nil {
		return err
	}

	if err := e.optString("type", l.Type); err != nil {
		return err
	}

	if err := e.extensions(l.Extensions); err != nil {
		return err
	}

	return e.end("link")
}

// links emits a link collection in the target version's shape.  GPX 1.0
// supports a single url/urlname pair, so only the first link survives
// narrowing to 1.0.
func (e *Emitter) links(links []model.Link) error {
	if e.version == model.Gpx10 {
		return e.urlPair(links)
	}

	for i := range links {
		if err := e.link(&links[i]); err != nil {
			return err
		}
	}

	return nil
}

func (e *Emitter) urlPair(links []model.Link) error {
	if len(links) == 0 {
		return nil
	}

	if err := e.element("url", links[0].Href); err != nil {
		return err
	}

	return e.optString("urlname", links[0].Text)
}
