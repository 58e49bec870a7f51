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

// Track emits a trk element and its segments.
func (e *Emitter) Track(t *model.Track) error {
	if err := e.start("trk"); err != nil {
		return err
	}

	if err := e.optString("name", t.Name); err != nil {
		return err
	}

	if err := e.optString("cmt", t.Comment); err != nil {
		return err
	}

	if err := e.optString("desc", t.Description); err != nil {
		return err
	}

	if err := e.optString("src", t.Source); err != nil {
		return err
	}

	if err := e.links(t.Links); err != nil {
		return err
	}

	if err := optNumber(e, "number", t.Number); err != nil {
		return err
	}

	// The type classification was introduced with GPX 1.1.
	if e.version != model.Gpx10 {
		if err := e.optString("type", t.Type); err != nil {
			return err
		}
	}

	if err := e.extensions(t.Extensions); err != nil {
		return err
	}

	for i := range t.Segments {
		if err := e.trackSegment(&t.Segments[i]); err != nil {
			return err
		}
	}

	return e.end("trk")
}

func (e *Emitter) trackSegment(s *model.TrackSegment) error {
	if err := e.start("trkseg"); err != nil {
		return err
	}

	for i := range s.Points {
		if err := e.Waypoint("trkpt", &s.Points[i]); err != nil {
			return err
		}
	}

	if err := e.extensions(s.Extensions); err != nil {
		return err
	}

	return e.end("trkseg")
}
