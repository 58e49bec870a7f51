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

// Waypoint emits a waypoint under the given tag name (wpt, trkpt, or
// rtept).  Children follow the schema's canonical order.
func (e *Emitter) Waypoint(tag string, w *model.Waypoint) error {
	err := e.start(tag,
		attr("lat", ftoa(float64(w.Lat))),
		attr("lon", ftoa(float64(w.Lon))),
	)
	if err != nil {
		return err
	}

	if err := optNumber(e, "ele", w.Elevation); err != nil {
		return err
	}

	if err := e.optTime("time", w.Time); err != nil {
		return err
	}

	// Speed and course exist only in GPX 1.0.
	if e.version == model.Gpx10 {
		if err := e.optDegrees("course", w.Course); err != nil {
			return err
		}

		if err := optNumber(e, "speed", w.Speed); err != nil {
			return err
		}
	}

	if err := e.optDegrees("magvar", w.MagneticVariation); err != nil {
		return err
	}

	if err := optNumber(e, "geoidheight", w.GeoidHeight); err != nil {
		return err
	}

	if err := e.optString("name", w.Name); err != nil {
		return err
	}

	if err := e.optString("cmt", w.Comment); err != nil {
		return err
	}

	if err := e.optString("desc", w.Description); err != nil {
		return err
	}

	if err := e.optString("src", w.Source); err != nil {
		return err
	}

	if err := e.links(w.Links); err != nil {
		return err
	}

	if err := e.optString("sym", w.Symbol); err != nil {
		return err
	}

	if err := e.optString("type", w.Type); err != nil {
		return err
	}

	if w.Fix != "" {
		if err := e.element("fix", string(w.Fix)); err != nil {
			return err
		}
	}

	if err := optNumber(e, "sat", w.Sat); err != nil {
		return err
	}

	if err := optNumber(e, "hdop", w.HDOP); err != nil {
		return err
	}

	if err := optNumber(e, "vdop", w.VDOP); err != nil {
		return err
	}

	if err := optNumber(e, "pdop", w.PDOP); err != nil {
		return err
	}

	if err := optNumber(e, "ageofdgpsdata", w.AgeOfDGPSData); err != nil {
		return err
	}

	if err := optNumber(e, "dgpsid", w.DGPSID); err != nil {
		return err
	}

	if err := e.extensions(w.Extensions); err != nil {
		return err
	}

	return e.end(tag)
}
