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

var routeChildren = rules[model.Route]{
	"name":   anyRule(stringField(func(r *model.Route, v string) { r.Name = &v })),
	"cmt":    anyRule(stringField(func(r *model.Route, v string) { r.Comment = &v })),
	"desc":   anyRule(stringField(func(r *model.Route, v string) { r.Description = &v })),
	"src":    anyRule(stringField(func(r *model.Route, v string) { r.Source = &v })),
	"number": anyRule(nonNegativeIntField(func(r *model.Route, v int) { r.Number = &v })),
	"type":   onlyIn(v11, stringField(func(r *model.Route, v string) { r.Type = &v })),
	"link": onlyIn(v11, func(c *Context, se xml.StartElement, r *model.Route) error {
		link, err := consumeLink(c, se)
		if err != nil {
			return err
		}

		r.Links = append(r.Links, link)

		return nil
	}),
	"url":     onlyIn(v10, stringField(func(r *model.Route, v string) { setURL(&r.Links, v) })),
	"urlname": onlyIn(v10, stringField(func(r *model.Route, v string) { setURLName(&r.Links, v) })),
	"rtept": anyRule(func(c *Context, se xml.StartElement, r *model.Route) error {
		point, err := consumeWaypoint(c, se)
		if err != nil {
			return err
		}

		r.Points = append(r.Points, point)

		return nil
	}),
}

func consumeRoute(c *Context, se xml.StartElement) (model.Route, error) {
	var route model.Route

	err := consumeChildren(c, se, &route, routeChildren, func(r *model.Route, e *model.Extensions) {
		r.Extensions = e
	})
	if err != nil {
		return model.Route{}, err
	}

	return route, nil
}
