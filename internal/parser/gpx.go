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

var gpxChildren = rules[model.GPX]{
	"metadata": onlyIn(v11, func(c *Context, se xml.StartElement, g *model.GPX) error {
		metadata, err := consumeMetadata(c, se)
		if err != nil {
			return err
		}

		g.Metadata = &metadata

		return nil
	}),

	// GPX 1.0 flattens the metadata into the root element.
	"name": onlyIn(v10, stringField(func(g *model.GPX, v string) { ensureMetadata(g).Name = &v })),
	"desc": onlyIn(v10, stringField(func(g *model.GPX, v string) { ensureMetadata(g).Description = &v })),
	"author": onlyIn(v10, stringField(func(g *model.GPX, v string) {
		ensureAuthor(g).Name = &v
	})),
	"email": onlyIn(v10, func(c *Context, se xml.StartElement, g *model.GPX) error {
		email, err := consumeEmail(c, se)
		if err != nil {
			return err
		}

		ensureAuthor(g).Email = &email

		return nil
	}),
	"url": onlyIn(v10, stringField(func(g *model.GPX, v string) {
		m := ensureMetadata(g)
		setURL(&m.Links, v)
	})),
	"urlname": onlyIn(v10, stringField(func(g *model.GPX, v string) {
		m := ensureMetadata(g)
		setURLName(&m.Links, v)
	})),
	"time": onlyIn(v10, timeField(func(g *model.GPX, v time.Time) { ensureMetadata(g).Time = &v })),
	"keywords": onlyIn(v10, stringField(func(g *model.GPX, v string) {
		ensureMetadata(g).Keywords = &v
	})),
	"bounds": onlyIn(v10, func(c *Context, se xml.StartElement, g *model.GPX) error {
		bounds, err := consumeBounds(c, se)
		if err != nil {
			return err
		}

		ensureMetadata(g).Bounds = &bounds

		return nil
	}),

	"wpt": anyRule(func(c *Context, se xml.StartElement, g *model.GPX) error {
		waypoint, err := consumeWaypoint(c, se)
		if err != nil {
			return err
		}

		g.Waypoints = append(g.Waypoints, waypoint)

		return nil
	}),
	"trk": anyRule(func(c *Context, se xml.StartElement, g *model.GPX) error {
		track, err := consumeTrack(c, se)
		if err != nil {
			return err
		}

		g.Tracks = append(g.Tracks, track)

		return nil
	}),
	"rte": anyRule(func(c *Context, se xml.StartElement, g *model.GPX) error {
		route, err := consumeRoute(c, se)
		if err != nil {
			return err
		}

		g.Routes = append(g.Routes, route)

		return nil
	}),
}

// ConsumeGPX consumes the children of the gpx root element, whose start tag
// has already been read by the caller, into dst.
func ConsumeGPX(c *Context, se xml.StartElement, dst *model.GPX) error {
	return consumeChildren(c, se, dst, gpxChildren, func(g *model.GPX, e *model.Extensions) {
		g.Extensions = e
	})
}

// ensureMetadata returns the document's metadata block, materializing it the
// first time a GPX 1.0 flattened field needs a home.
func ensureMetadata(g *model.GPX) *model.Metadata {
	if g.Metadata == nil {
		g.Metadata = &model.Metadata{}
	}

	return g.Metadata
}

func ensureAuthor(g *model.GPX) *model.Person {
	m := ensureMetadata(g)
	if m.Author == nil {
		m.Author = &model.Person{}
	}

	return m.Author
}
