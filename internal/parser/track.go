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

var trackChildren = rules[model.Track]{
	"name":   anyRule(stringField(func(t *model.Track, v string) { t.Name = &v })),
	"cmt":    anyRule(stringField(func(t *model.Track, v string) { t.Comment = &v })),
	"desc":   anyRule(stringField(func(t *model.Track, v string) { t.Description = &v })),
	"src":    anyRule(stringField(func(t *model.Track, v string) { t.Source = &v })),
	"number": anyRule(nonNegativeIntField(func(t *model.Track, v int) { t.Number = &v })),
	"type":   onlyIn(v11, stringField(func(t *model.Track, v string) { t.Type = &v })),
	"link": onlyIn(v11, func(c *Context, se xml.StartElement, t *model.Track) error {
		link, err := consumeLink(c, se)
		if err != nil {
			return err
		}

		t.Links = append(t.Links, link)

		return nil
	}),
	"url":     onlyIn(v10, stringField(func(t *model.Track, v string) { setURL(&t.Links, v) })),
	"urlname": onlyIn(v10, stringField(func(t *model.Track, v string) { setURLName(&t.Links, v) })),
	"trkseg": anyRule(func(c *Context, se xml.StartElement, t *model.Track) error {
		segment, err := consumeTrackSegment(c, se)
		if err != nil {
			return err
		}

		t.Segments = append(t.Segments, segment)

		return nil
	}),
}

func consumeTrack(c *Context, se xml.StartElement) (model.Track, error) {
	var track model.Track

	err := consumeChildren(c, se, &track, trackChildren, func(t *model.Track, e *model.Extensions) {
		t.Extensions = e
	})
	if err != nil {
		return model.Track{}, err
	}

	return track, nil
}
