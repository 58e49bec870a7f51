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

// Metadata emits document metadata in the target version's shape: the
// metadata container for GPX 1.1, or flattened root children for GPX 1.0.
func (e *Emitter) Metadata(m *model.Metadata) error {
	if m == nil {
		return nil
	}

	if e.version == model.Gpx10 {
		return e.flattenedMetadata(m)
	}

	if err := e.start("metadata"); err != nil {
		return err
	}

	if err := e.optString("name", m.Name); err != nil {
		return err
	}

	if err := e.optString("desc", m.Description); err != nil {
		return err
	}

	if m.Author != nil {
		if err := e.person(m.Author); err != nil {
			return err
		}
	}

	if m.Copyright != nil {
		if err := e.copyright(m.Copyright); err != nil {
			return err
		}
	}

	if err := e.links(m.Links); err != nil {
		return err
	}

	if err := e.optTime("time", m.Time); err != nil {
		return err
	}

	if err := e.optString("keywords", m.Keywords); err != nil {
		return err
	}

	if m.Bounds != nil {
		if err := e.bounds(m.Bounds); err != nil {
			return err
		}
	}

	if err := e.extensions(m.Extensions); err != nil {
		return err
	}

	return e.end("metadata")
}

// flattenedMetadata re-flattens the metadata into the GPX 1.0 root
// children.  Fields without a 1.0 equivalent (copyright, second and later
// links) are dropped by the narrowing.
func (e *Emitter) flattenedMetadata(m *model.Metadata) error {
	if err := e.optString("name", m.Name); err != nil {
		return err
	}

	if err := e.optString("desc", m.Description); err != nil {
		return err
	}

	if m.Author != nil {
		if err := e.optString("author", m.Author.Name); err != nil {
			return err
		}

		if m.Author.Email != nil {
			if err := e.element("email", *m.Author.Email); err != nil {
				return err
			}
		}
	}

	if err := e.urlPair(m.Links); err != nil {
		return err
	}

	if err := e.optTime("time", m.Time); err != nil {
		return err
	}

	if err := e.optString("keywords", m.Keywords); err != nil {
		return err
	}

	if m.Bounds != nil {
		if err := e.bounds(m.Bounds); err != nil {
			return err
		}
	}

	return nil
}

func (e *Emitter) bounds(b *model.Bounds) error {
	err := e.start("bounds",
		attr("minlat", ftoa(float64(b.MinLat))),
		attr("minlon", ftoa(float64(b.MinLon))),
		attr("maxlat", ftoa(float64(b.MaxLat))),
		attr("maxlon", ftoa(float64(b.MaxLon))),
	)
	if err != nil {
		return err
	}

	return e.end("bounds")
}
