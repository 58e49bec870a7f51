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

package info

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<gpx version="1.1" creator="unit test">
	<metadata><name>sample</name></metadata>
	<wpt lat="48.2" lon="16.4"/>
	<trk>
		<trkseg>
			<trkpt lat="48.2" lon="16.4"/>
			<trkpt lat="48.3" lon="16.5"/>
		</trkseg>
	</trk>
	<rte>
		<rtept lat="48.2" lon="16.4"/>
	</rte>
</gpx>`

func TestRunInfo(t *testing.T) {
	s, err := runInfo("", strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "1.1", s.Version)
	assert.Equal(t, "unit test", s.Creator)
	assert.Equal(t, "sample", s.Name)
	assert.Equal(t, int64(1), s.Waypoints)
	assert.Equal(t, int64(1), s.Tracks)
	assert.Equal(t, int64(1), s.Segments)
	assert.Equal(t, int64(2), s.TrackPoints)
	assert.Equal(t, int64(1), s.Routes)
	assert.Equal(t, int64(1), s.RoutePoints)
}

func TestRenderJSON(t *testing.T) {
	s, err := runInfo("", strings.NewReader(sample))
	require.NoError(t, err)

	// mock out to collect JSON output
	buf := &bytes.Buffer{}

	saved := out
	out = buf

	defer func() { out = saved }()

	render([]*summary{s}, true)

	assert.JSONEq(t,
		`{"version":"1.1","creator":"unit test","name":"sample",
		  "waypoints":1,"tracks":1,"segments":1,"trackPoints":2,
		  "routes":1,"routePoints":1}`,
		buf.String())
}

func TestRenderTxt(t *testing.T) {
	s, err := runInfo("example.gpx", strings.NewReader(sample))
	require.NoError(t, err)

	buf := &bytes.Buffer{}

	saved := out
	out = buf

	defer func() { out = saved }()

	render([]*summary{s}, false)

	assert.Contains(t, buf.String(), "File: example.gpx\n")
	assert.Contains(t, buf.String(), "Version: 1.1\n")
	assert.Contains(t, buf.String(), "TrackPoints: 2\n")
}
