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
	"bytes"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georust/gpx/model"
)

func emit(t *testing.T, version model.Version, f func(e *Emitter) error) string {
	t.Helper()

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)

	require.NoError(t, f(NewEmitter(enc, version)))
	require.NoError(t, enc.Flush())

	return buf.String()
}

func ptr[T any](v T) *T { return &v }

func TestEmitWaypoint(t *testing.T) {
	w := model.NewWaypoint(48.2, 16.4)
	w.Elevation = ptr(151.5)
	w.Name = ptr("Stephansdom")
	w.Fix = model.Fix3D
	w.Sat = ptr(9)

	out := emit(t, model.Gpx11, func(e *Emitter) error {
		return e.Waypoint("wpt", &w)
	})

	assert.Equal(t,
		`<wpt lat="48.2" lon="16.4">`+
			`<ele>151.5</ele><name>Stephansdom</name><fix>3d</fix><sat>9</sat>`+
			`</wpt>`,
		out)
}

func TestEmitWaypointSpeedCourseByVersion(t *testing.T) {
	w := model.NewWaypoint(48.2, 16.4)
	w.Speed = ptr(12.5)
	w.Course = ptr(model.Degrees(271.9))

	v10 := emit(t, model.Gpx10, func(e *Emitter) error { return e.Waypoint("wpt", &w) })
	assert.Contains(t, v10, "<course>271.9</course>")
	assert.Contains(t, v10, "<speed>12.5</speed>")

	// Narrowing to 1.1 drops the 1.0-only fields.
	v11 := emit(t, model.Gpx11, func(e *Emitter) error { return e.Waypoint("wpt", &w) })
	assert.NotContains(t, v11, "speed")
	assert.NotContains(t, v11, "course")
}

func TestEmitWaypointTime(t *testing.T) {
	w := model.NewWaypoint(48.2, 16.4)
	w.Time = ptr(time.Date(2018, 11, 30, 12, 34, 56, 250_000_000, time.UTC))

	out := emit(t, model.Gpx11, func(e *Emitter) error { return e.Waypoint("wpt", &w) })

	assert.Contains(t, out, "<time>2018-11-30T12:34:56.25Z</time>")
}

func TestEmitLinksByVersion(t *testing.T) {
	links := []model.Link{
		{Href: "https://example.com/a", Text: ptr("a")},
		{Href: "https://example.com/b"},
	}

	v11 := emit(t, model.Gpx11, func(e *Emitter) error { return e.links(links) })
	assert.Equal(t,
		`<link href="https://example.com/a"><text>a</text></link>`+
			`<link href="https://example.com/b"></link>`,
		v11)

	// GPX 1.0 carries a single url/urlname pair; later links are dropped.
	v10 := emit(t, model.Gpx10, func(e *Emitter) error { return e.links(links) })
	assert.Equal(t, `<url>https://example.com/a</url><urlname>a</urlname>`, v10)
}

func TestEmitEmail(t *testing.T) {
	out := emit(t, model.Gpx11, func(e *Emitter) error {
		return e.email("john.doe@example.com")
	})

	assert.Equal(t, `<email id="john.doe" domain="example.com"></email>`, out)
}

func TestEmitEmailMalformed(t *testing.T) {
	for _, address := range []string{"no-at-sign", "@example.com", "john@", "a@b@c"} {
		var buf bytes.Buffer
		e := NewEmitter(xml.NewEncoder(&buf), model.Gpx11)

		err := e.email(address)

		var invalid *InvalidEmailError
		require.ErrorAs(t, err, &invalid, "address %q", address)
		assert.Equal(t, address, invalid.Email)
	}
}

func TestEmitCopyright(t *testing.T) {
	c := model.Copyright{
		Author:  "OpenStreetMap contributors",
		Year:    ptr(2018),
		License: ptr("https://opendatacommons.org/licenses/odbl/"),
	}

	out := emit(t, model.Gpx11, func(e *Emitter) error { return e.copyright(&c) })

	assert.Equal(t,
		`<copyright author="OpenStreetMap contributors">`+
			`<year>2018</year>`+
			`<license>https://opendatacommons.org/licenses/odbl/</license>`+
			`</copyright>`,
		out)
}

func TestEmitBounds(t *testing.T) {
	b := model.Bounds{MinLat: 48.19, MinLon: 16.35, MaxLat: 48.22, MaxLon: 16.39}

	out := emit(t, model.Gpx11, func(e *Emitter) error { return e.bounds(&b) })

	assert.Equal(t,
		`<bounds minlat="48.19" minlon="16.35" maxlat="48.22" maxlon="16.39"></bounds>`,
		out)
}

func TestEmitMetadataGpx11(t *testing.T) {
	m := model.Metadata{
		Name:   ptr("doc"),
		Author: &model.Person{Name: ptr("Jane")},
		Time:   ptr(time.Date(2018, 11, 30, 12, 0, 0, 0, time.UTC)),
	}

	out := emit(t, model.Gpx11, func(e *Emitter) error { return e.Metadata(&m) })

	assert.Equal(t,
		`<metadata><name>doc</name><author><name>Jane</name></author>`+
			`<time>2018-11-30T12:00:00Z</time></metadata>`,
		out)
}

func TestEmitMetadataFlattenedGpx10(t *testing.T) {
	m := model.Metadata{
		Name: ptr("doc"),
		Author: &model.Person{
			Name:  ptr("Jane"),
			Email: ptr("jane@example.com"),
		},
		Copyright: &model.Copyright{Author: "nobody"},
		Links:     []model.Link{{Href: "https://example.com", Text: ptr("home")}},
		Keywords:  ptr("legacy"),
	}

	out := emit(t, model.Gpx10, func(e *Emitter) error { return e.Metadata(&m) })

	// No metadata container, plain-text email, first link as url/urlname,
	// copyright dropped.
	assert.Equal(t,
		`<name>doc</name><author>Jane</author><email>jane@example.com</email>`+
			`<url>https://example.com</url><urlname>home</urlname>`+
			`<keywords>legacy</keywords>`,
		out)
}

func TestEmitTrackTypeByVersion(t *testing.T) {
	trk := model.Track{
		Name: ptr("run"),
		Type: ptr("running"),
		Segments: []model.TrackSegment{
			{Points: []model.Waypoint{model.NewWaypoint(48.2, 16.4)}},
		},
	}

	v11 := emit(t, model.Gpx11, func(e *Emitter) error { return e.Track(&trk) })
	assert.Contains(t, v11, "<type>running</type>")
	assert.Contains(t, v11, `<trkseg><trkpt lat="48.2" lon="16.4"></trkpt></trkseg>`)

	v10 := emit(t, model.Gpx10, func(e *Emitter) error { return e.Track(&trk) })
	assert.NotContains(t, v10, "<type>")
}

func TestEmitExtensionsVerbatim(t *testing.T) {
	ext := &model.Extensions{
		Nodes: []model.XMLNode{{
			Local: "custom",
			Attrs: []model.XMLAttr{{Local: "unit", Value: "bpm"}},
			Text:  "142",
		}},
	}

	out := emit(t, model.Gpx11, func(e *Emitter) error { return e.extensions(ext) })

	assert.Equal(t, `<extensions><custom unit="bpm">142</custom></extensions>`, out)
}

func TestEmitDocument(t *testing.T) {
	g := model.NewGPX(model.Gpx11)
	g.Waypoints = append(g.Waypoints, model.NewWaypoint(48.2, 16.4))

	out := emit(t, model.Gpx11, func(e *Emitter) error {
		return e.Document(g, "https://github.com/georust/gpx")
	})

	assert.Contains(t, out, `version="1.1"`)
	assert.Contains(t, out, `creator="https://github.com/georust/gpx"`)
	assert.Contains(t, out, `xmlns="http://www.topografix.com/GPX/1/1"`)
	assert.Contains(t, out, `xsi:schemaLocation="http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd"`)
	assert.Contains(t, out, `<wpt lat="48.2" lon="16.4"></wpt>`)
}
