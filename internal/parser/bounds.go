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

// consumeBounds consumes a bounds element.  All four attributes are
// mandatory.  Min exceeding max is passed through rather than rejected;
// the source values are kept as-is.
func consumeBounds(c *Context, se xml.StartElement) (model.Bounds, error) {
	var (
		bounds model.Bounds
		err    error
	)

	for _, f := range []struct {
		name string
		dst  *model.Degrees
	}{
		{"minlat", &bounds.MinLat},
		{"minlon", &bounds.MinLon},
		{"maxlat", &bounds.MaxLat},
		{"maxlon", &bounds.MaxLon},
	} {
		raw, err2 := requireAttr(se, f.name)
		if err2 != nil {
			return model.Bounds{}, err2
		}

		*f.dst, err = model.ParseDegrees(raw)
		if err != nil {
			return model.Bounds{}, &InvalidValueError{Field: f.name, Value: raw, Err: err}
		}
	}

	if err := skipElement(c, se); err != nil {
		return model.Bounds{}, err
	}

	return bounds, nil
}
