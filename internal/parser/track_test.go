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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georust/gpx/model"
)

func TestConsumeTrack(t *testing.T) {
	c, se := open(t, model.Gpx11, `
		<trk>
			<name>Morning run</name>
			<cmt>easy pace</cmt>
			<desc>Loop along the Danube canal</desc>
			<src>watch</src>
			<link href="https://example.com/run"/>
			<number>7</number>
			<type>running</type>
			<trkseg>
				<trkpt lat="48.20" lon="16.36"><ele>160</ele></trkpt>
				<trkpt lat="48.21" lon="16.37"/>
			</trkseg>
			<trkseg>
				<trkpt lat="48.22" lon="16.38"/>
			</trkseg>
		</trk>`)

	trk, err := consumeTrack(c, se)
	require.NoError(t, err)

	assert.Equal(t, "Morning run", *trk.Name)
	assert.Equal(t, "easy pace", *trk.Comment)
	assert.Equal(t, "Loop along the Danube canal", *trk.Description)
	assert.Equal(t, "watch", *trk.Source)
	assert.Equal(t, 7, *trk.Number)
	assert.Equal(t, "running", *trk.Type)

	require.Len(t, trk.Segments, 2)
	require.Len(t, trk.Segments[0].Points, 2)
	require.Len(t, trk.Segments[1].Points, 1)
	assert.Equal(t, 160.0, *trk.Segments[0].Points[0].Elevation)

	bounds := trk.Bounds()
	require.NotNil(t, bounds)
	assert.True(t, bounds.Contains(48.21, 16.37))
	assert.False(t, bounds.Contains(47.0, 16.37))
}

func TestConsumeTrackTypeRejectedGpx10(t *testing.T) {
	c, se := open(t, model.Gpx10, `<trk><type>running</type></trk>`)

	_, err := consumeTrack(c, se)

	var invalid *InvalidChildElementError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "type", invalid.Child)
	assert.Equal(t, "trk", invalid.Parent)
}

func TestConsumeTrackNegativeNumber(t *testing.T) {
	c, se := open(t, model.Gpx11, `<trk><number>-1</number></trk>`)

	_, err := consumeTrack(c, se)

	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "number", invalid.Field)
}

func TestConsumeTrackSegmentEmpty(t *testing.T) {
	c, se := open(t, model.Gpx11, `<trkseg></trkseg>`)

	seg, err := consumeTrackSegment(c, se)
	require.NoError(t, err)

	assert.Empty(t, seg.Points)
}

func TestConsumeTrackSegmentRejectsWpt(t *testing.T) {
	c, se := open(t, model.Gpx11, `<trkseg><wpt lat="48.2" lon="16.4"/></trkseg>`)

	_, err := consumeTrackSegment(c, se)

	var invalid *InvalidChildElementError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "wpt", invalid.Child)
	assert.Equal(t, "trkseg", invalid.Parent)
}

func TestConsumeRoute(t *testing.T) {
	c, se := open(t, model.Gpx11, `
		<rte>
			<name>Commute</name>
			<number>3</number>
			<rtept lat="48.20" lon="16.36"><name>start</name></rtept>
			<rtept lat="48.25" lon="16.40"><name>end</name></rtept>
		</rte>`)

	rte, err := consumeRoute(c, se)
	require.NoError(t, err)

	assert.Equal(t, "Commute", *rte.Name)
	assert.Equal(t, 3, *rte.Number)

	require.Len(t, rte.Points, 2)
	assert.Equal(t, "start", *rte.Points[0].Name)
	assert.Equal(t, "end", *rte.Points[1].Name)
}

func TestConsumeRouteURLGpx10(t *testing.T) {
	c, se := open(t, model.Gpx10,
		`<rte><urlname>route page</urlname><url>https://example.com/route</url></rte>`)

	rte, err := consumeRoute(c, se)
	require.NoError(t, err)

	require.Len(t, rte.Links, 1)
	assert.Equal(t, "https://example.com/route", rte.Links[0].Href)
	assert.Equal(t, "route page", *rte.Links[0].Text)
}
