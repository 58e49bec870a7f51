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

var trackSegmentChildren = rules[model.TrackSegment]{
	"trkpt": anyRule(func(c *Context, se xml.StartElement, s *model.TrackSegment) error {
		point, err := consumeWaypoint(c, se)
		if err != nil {
			return err
		}

		s.Points = append(s.Points, point)

		return nil
	}),
}

func consumeTrackSegment(c *Context, se xml.StartElement) (model.TrackSegment, error) {
	var segment model.TrackSegment

	err := consumeChildren(c, se, &segment, trackSegmentChildren, func(s *model.TrackSegment, e *model.Extensions) {
		s.Extensions = e
	})
	if err != nil {
		return model.TrackSegment{}, err
	}

	return segment, nil
}
