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

const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

// Document emits the complete gpx root element for the emitter's target
// version.
func (e *Emitter) Document(g *model.GPX, creator string) error {
	err := e.start("gpx",
		attr("version", e.version.String()),
		attr("creator", creator),
		attr("xmlns", e.version.Namespace()),
		attr("xmlns:xsi", xsiNamespace),
		attr("xsi:schemaLocation", e.version.SchemaLocation()),
	)
	if err != nil {
		return err
	}

	if err := e.Metadata(g.Metadata); err != nil {
		return err
	}

	for i := range g.Waypoints {
		if err := e.Waypoint("wpt", &g.Waypoints[i]); err != nil {
			return err
		}
	}

	for i := range g.Tracks {
		if err := e.Track(&g.Tracks[i]); err != nil {
			return err
		}
	}

	for i := range g.Routes {
		if err := e.Route(&g.Routes[i]); err != nil {
			return err
		}
	}

	if err := e.extensions(g.Extensions); err != nil {
		return err
	}

	return e.end("gpx")
}
