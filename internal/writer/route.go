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

// Route emits a rte element and its points.
func (e *Emitter) Route(r *model.Route) error {
	if err := e.start("rte"); err != nil {
		return err
	}

	if err := e.optString("name", r.Name); err != nil {
		return err
	}

	if err := e.optString("cmt", r.Comment); err != nil {
		return err
	}

	if err := e.optString("desc", r.Description); err != nil {
		return err
	}

	if err := e.optString("src", r.Source); err != nil {
		return err
	}

	if err := e.links(r.Links); err != nil {
		return err
	}

	if err := optNumber(e, "number", r.Number); err != nil {
		return err
	}

	if e.version != model.Gpx10 {
		if err := e.optString("type", r.Type); err != nil {
			return err
		}
	}

	if err := e.extensions(r.Extensions); err != nil {
		return err
	}

	for i := range r.Points {
		if err := e.Waypoint("rtept", &r.Points[i]); err != nil {
			return err
		}
	}

	return e.end("rte")
}
