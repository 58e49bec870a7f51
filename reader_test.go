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

package gpx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georust/gpx"
	"github.com/georust/gpx/model"
)

// A GPX 1.1 sample in the shape commonly used to illustrate the format.
const sampleGpx11 = `<?xml version="1.0" encoding="UTF-8"?>
<gpx xmlns="http://www.topografix.com/GPX/1/1" version="1.1" creator="Wikipedia"
     xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
     xsi:schemaLocation="http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd">
  <metadata>
    <name>Sample</name>
    <time>2009-10-17T22:58:43Z</time>
  </metadata>
  <trk>
    <name>Example GPX Document</name>
    <trkseg>
      <trkpt lat="47.644548" lon="-122.326897">
        <ele>4.46</ele>
        <time>2009-10-17T18:37:26Z</time>
      </trkpt>
      <trkpt lat="47.644800" lon="-122.327000">
        <ele>4.94</ele>
        <time>2009-10-17T18:37:31Z</time>
      </trkpt>
      <trkpt lat="47.645000" lon="-122.327100">
        <ele>6.87</ele>
        <time>2009-10-17T18:37:34Z</time>
      </trkpt>
    </trkseg>
  </trk>
</gpx>`

func TestRead(t *testing.T) {
	g, err := gpx.Read(strings.NewReader(sampleGpx11))
	require.NoError(t, err)

	assert.Equal(t, model.Gpx11, g.Version)
	assert.Equal(t, "Wikipedia", *g.Creator)

	require.NotNil(t, g.Metadata)
	assert.Equal(t, "Sample", *g.Metadata.Name)
	assert.Equal(t, time.Date(2009, 10, 17, 22, 58, 43, 0, time.UTC), *g.Metadata.Time)

	require.Len(t, g.Tracks, 1)
	trk := g.Tracks[0]
	assert.Equal(t, "Example GPX Document", *trk.Name)

	require.Len(t, trk.Segments, 1)
	points := trk.Segments[0].Points
	require.Len(t, points, 3)

	assert.True(t, model.Degrees(47.644548).EqualWithin(points[0].Lat, model.E7))
	assert.True(t, model.Degrees(-122.326897).EqualWithin(points[0].Lon, model.E7))
	assert.Equal(t, 4.46, *points[0].Elevation)
	assert.Equal(t, 6.87, *points[2].Elevation)
}

func TestReadNoRootElement(t *testing.T) {
	_, err := gpx.Read(strings.NewReader("   "))

	assert.ErrorIs(t, err, gpx.ErrNoRootElement)
}

func TestReadWrongRootElement(t *testing.T) {
	_, err := gpx.Read(strings.NewReader(`<kml></kml>`))

	assert.ErrorIs(t, err, gpx.ErrInvalidRootElement)
}

func TestReadMalformedXML(t *testing.T) {
	_, err := gpx.Read(strings.NewReader(`<gpx version="1.1"><wpt lat="1" lon="2"></gpx>`))

	assert.Error(t, err)
}

func TestReadTrailingContentIgnored(t *testing.T) {
	g, err := gpx.Read(strings.NewReader(`<gpx version="1.1"></gpx><junk>`))
	require.NoError(t, err)

	assert.Equal(t, model.Gpx11, g.Version)
}

func TestReadUnknownVersionFallsBack(t *testing.T) {
	g, err := gpx.Read(strings.NewReader(`<gpx version="2.3" creator="future"></gpx>`))
	require.NoError(t, err)

	assert.Equal(t, model.Gpx11, g.Version)
}

func TestReadWithDefaultVersion(t *testing.T) {
	src := `<gpx creator="ancient"><wpt lat="1" lon="2"><speed>3.5</speed></wpt></gpx>`

	// Under the 1.1 fallback, speed is not a legal waypoint child.
	_, err := gpx.Read(strings.NewReader(src))
	var invalid *gpx.InvalidChildElementError
	require.ErrorAs(t, err, &invalid)

	// With a 1.0 default it parses.
	g, err := gpx.Read(strings.NewReader(src), gpx.WithDefaultVersion(model.Gpx10))
	require.NoError(t, err)
	assert.Equal(t, 3.5, *g.Waypoints[0].Speed)
}

func TestReadMissingLat(t *testing.T) {
	_, err := gpx.Read(strings.NewReader(`<gpx version="1.1"><wpt lon="2"/></gpx>`))

	var missing *gpx.MissingAttributeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "lat", missing.Attr)
	assert.Equal(t, "wpt", missing.Element)
}

func TestReadInvalidChild(t *testing.T) {
	_, err := gpx.Read(strings.NewReader(`<gpx version="1.1"><potato/></gpx>`))

	var invalid *gpx.InvalidChildElementError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "potato", invalid.Child)
	assert.Equal(t, "gpx", invalid.Parent)
}

func TestReadInvalidValueWraps(t *testing.T) {
	_, err := gpx.Read(strings.NewReader(
		`<gpx version="1.1"><wpt lat="1" lon="2"><ele>tall</ele></wpt></gpx>`))

	var invalid *gpx.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "ele", invalid.Field)
	assert.Equal(t, "tall", invalid.Value)
	assert.Error(t, invalid.Unwrap())
}
