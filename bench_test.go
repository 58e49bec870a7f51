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
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/georust/gpx"
)

func syntheticTrackLog(points int) string {
	var sb strings.Builder

	sb.WriteString(`<gpx version="1.1" creator="bench"><trk><trkseg>`)

	for i := 0; i < points; i++ {
		fmt.Fprintf(&sb,
			`<trkpt lat="%f" lon="%f"><ele>%d</ele><time>2018-11-30T12:%02d:%02dZ</time></trkpt>`,
			48.0+float64(i)*1e-5, 16.0+float64(i)*1e-5, 150+i%20, (i/60)%60, i%60)
	}

	sb.WriteString(`</trkseg></trk></gpx>`)

	return sb.String()
}

func BenchmarkRead(b *testing.B) {
	doc := syntheticTrackLog(10_000)
	b.SetBytes(int64(len(doc)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := gpx.Read(strings.NewReader(doc)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWrite(b *testing.B) {
	g, err := gpx.Read(strings.NewReader(syntheticTrackLog(10_000)))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if err := gpx.Write(g, io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}
