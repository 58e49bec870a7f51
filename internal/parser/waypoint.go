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
	"time"

	"github.com/georust/gpx/model"
)

var waypointChildren = rules[model.Waypoint]{
	"ele":         anyRule(floatField(func(w *model.Waypoint, v float64) { w.Elevation = &v })),
	"speed":       onlyIn(v10, floatField(func(w *model.Waypoint, v float64) { w.Speed = &v })),
	"course":      onlyIn(v10, degreesField(func(w *model.Waypoint, v model.Degrees) { w.Course = &v })),
	"time":        anyRule(timeField(func(w *model.Waypoint, v time.Time) { w.Time = &v })),
	"magvar":      anyRule(degreesField(func(w *model.Waypoint, v model.Degrees) { w.MagneticVariation = &v })),
	"geoidheight": anyRule(floatField(func(w *model.Waypoint, v float64) { w.GeoidHeight = &v })),
	"name":        anyRule(stringField(func(w *model.Waypoint, v string) { w.Name = &v })),
	"cmt":         anyRule(stringField(func(w *model.Waypoint, v string) { w.Comment = &v })),
	"desc":        anyRule(stringField(func(w *model.Waypoint, v string) { w.Description = &v })),
	"src":         anyRule(stringField(func(w *model.Waypoint, v string) { w.Source = &v })),
	"link": onlyIn(v11, func(c *Context, se xml.StartElement, w *model.Waypoint) error {
		link, err := consumeLink(c, se)
		if err != nil {
			return err
		}

		w.Links = append(w.Links, link)

		return nil
	}),
	"url":     onlyIn(v10, stringField(func(w *model.Waypoint, v string) { setURL(&w.Links, v) })),
	"urlname": onlyIn(v10, stringField(func(w *model.Waypoint, v string) { setURLName(&w.Links, v) })),
	"sym":     anyRule(stringField(func(w *model.Waypoint, v string) { w.Symbol = &v })),
	"type":    anyRule(stringField(func(w *model.Waypoint, v string) { w.Type = &v })),
	"fix": anyRule(func(c *Context, se xml.StartElement, w *model.Waypoint) error {
		fix, err := consumeFix(c, se)
		if err != nil {
			return err
		}

		w.Fix = fix

		return nil
	}),
	"sat":           anyRule(nonNegativeIntField(func(w *model.Waypoint, v int) { w.Sat = &v })),
	"hdop":          anyRule(floatField(func(w *model.Waypoint, v float64) { w.HDOP = &v })),
	"vdop":          anyRule(floatField(func(w *model.Waypoint, v float64) { w.VDOP = &v })),
	"pdop":          anyRule(floatField(func(w *model.Waypoint, v float64) { w.PDOP = &v })),
	"ageofdgpsdata": anyRule(floatField(func(w *model.Waypoint, v float64) { w.AgeOfDGPSData = &v })),
	"dgpsid":        anyRule(nonNegativeIntField(func(w *model.Waypoint, v int) { w.DGPSID = &v })),
}

// consumeWaypoint consumes a wpt, trkpt, or rtept element.  The lat and lon
// attributes are mandatory and must be finite decimals.
func consumeWaypoint(c *Context, se xml.StartElement) (model.Waypoint, error) {
	var waypoint model.Waypoint

	for _, f := range []struct {
		name string
		dst  *model.Degrees
	}{
		{"lat", &waypoint.Lat},
		{"lon", &waypoint.Lon},
	} {
		raw, err := requireAttr(se, f.name)
		if err != nil {
			return model.Waypoint{}, err
		}

		d, err := model.ParseDegrees(raw)
		if err != nil {
			return model.Waypoint{}, &InvalidValueError{Field: f.name, Value: raw, Err: err}
		}

		*f.dst = d
	}

	err := consumeChildren(c, se, &waypoint, waypointChildren, func(w *model.Waypoint, e *model.Extensions) {
		w.Extensions = e
	})
	if err != nil {
		return model.Waypoint{}, err
	}

	return waypoint, nil
}

// setURL records a GPX 1.0 url element as the href of the element's single
// link, creating it on first use.
func setURL(links *[]model.Link, href string) {
	if len(*links) == 0 {
		*links = append(*links, model.Link{})
	}

	(*links)[0].Href = href
}

// setURLName records a GPX 1.0 urlname element as the text of the
// element's single link, creating it on first use.
func setURLName(links *[]model.Link, name string) {
	if len(*links) == 0 {
		*links = append(*links, model.Link{})
	}

	(*links)[0].Text = &name
}
