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
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/destel/rill"
	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/georust/gpx"
	"github.com/georust/gpx/cmd/gpx/cli"
)

var out io.Writer = os.Stdout

// summary is what info reports per file.
type summary struct {
	File        string     `json:"file,omitempty"`
	Version     string     `json:"version"`
	Creator     string     `json:"creator,omitempty"`
	Name        string     `json:"name,omitempty"`
	Time        *time.Time `json:"time,omitempty"`
	Waypoints   int64      `json:"waypoints"`
	Tracks      int64      `json:"tracks"`
	Segments    int64      `json:"segments"`
	TrackPoints int64      `json:"trackPoints"`
	Routes      int64      `json:"routes"`
	RoutePoints int64      `json:"routePoints"`
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format information in JSON")
	flags.IntP("cpu", "c", runtime.GOMAXPROCS(-1), "number of files to scan concurrently")
}

var infoCmd = &cobra.Command{
	Use:   "info [<GPX file>...]",
	Short: "Print information about GPX files",
	Long:  "Print information about GPX files, stdin when no file is given",
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		jsonfmt, err := flags.GetBool("json")
		if err != nil {
			log.Fatal(err)
		}

		ncpu, err := flags.GetInt("cpu")
		if err != nil {
			log.Fatal(err)
		}

		if len(args) == 0 {
			s, err := runInfo("", os.Stdin)
			if err != nil {
				log.Fatal(err)
			}

			render([]*summary{s}, jsonfmt)

			return
		}

		// A progress bar only makes sense for a single file scanned in the
		// foreground.
		progress := len(args) == 1 && !jsonfmt

		files := rill.FromSlice(args, nil)
		summaries := rill.OrderedMap(files, ncpu, func(name string) (*summary, error) {
			return scanFile(name, progress)
		})

		var all []*summary

		err = rill.ForEach(summaries, 1, func(s *summary) error {
			all = append(all, s)

			return nil
		})
		if err != nil {
			log.Fatal(err)
		}

		render(all, jsonfmt)
	},
}

func scanFile(name string, progress bool) (*summary, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var in io.Reader = f

	if progress {
		wrapped, err := cli.WrapInputFile(f)
		if err != nil {
			return nil, err
		}
		defer wrapped.Close()

		in = wrapped
	}

	return runInfo(name, in)
}

func runInfo(name string, in io.Reader) (*summary, error) {
	unpacked, err := cli.Unpack(in)
	if err != nil {
		return nil, err
	}

	began := time.Now()

	g, err := gpx.Read(unpacked)
	if err != nil {
		if name != "" {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		return nil, err
	}

	slog.Debug("scanned gpx document", "file", name, "took", time.Since(began))

	s := &summary{
		File:    name,
		Version: g.Version.String(),
	}

	if g.Creator != nil {
		s.Creator = *g.Creator
	}

	if m := g.Metadata; m != nil {
		if m.Name != nil {
			s.Name = *m.Name
		}

		s.Time = m.Time
	}

	s.Waypoints = int64(len(g.Waypoints))
	s.Tracks = int64(len(g.Tracks))
	s.Routes = int64(len(g.Routes))

	for i := range g.Tracks {
		s.Segments += int64(len(g.Tracks[i].Segments))
		for _, seg := range g.Tracks[i].Segments {
			s.TrackPoints += int64(len(seg.Points))
		}
	}

	for i := range g.Routes {
		s.RoutePoints += int64(len(g.Routes[i].Points))
	}

	return s, nil
}

func render(all []*summary, jsonfmt bool) {
	if jsonfmt {
		renderJSON(all)
	} else {
		renderTxt(all)
	}
}

func renderJSON(all []*summary) {
	enc := json.NewEncoder(out)
	for _, s := range all {
		if err := enc.Encode(s); err != nil {
			log.Fatal(err)
		}
	}
}

func renderTxt(all []*summary) {
	for i, s := range all {
		if i > 0 {
			fmt.Fprintln(out)
		}

		if s.File != "" {
			fmt.Fprintf(out, "File: %s\n", s.File)
		}

		fmt.Fprintf(out, "Version: %s\n", s.Version)
		fmt.Fprintf(out, "Creator: %s\n", s.Creator)

		if s.Name != "" {
			fmt.Fprintf(out, "Name: %s\n", s.Name)
		}

		if s.Time != nil {
			fmt.Fprintf(out, "Time: %s\n", s.Time.UTC().Format(time.RFC3339))
		}

		fmt.Fprintf(out, "Waypoints: %s\n", humanize.Comma(s.Waypoints))
		fmt.Fprintf(out, "Tracks: %s\n", humanize.Comma(s.Tracks))
		fmt.Fprintf(out, "Segments: %s\n", humanize.Comma(s.Segments))
		fmt.Fprintf(out, "TrackPoints: %s\n", humanize.Comma(s.TrackPoints))
		fmt.Fprintf(out, "Routes: %s\n", humanize.Comma(s.Routes))
		fmt.Fprintf(out, "RoutePoints: %s\n", humanize.Comma(s.RoutePoints))
	}
}
