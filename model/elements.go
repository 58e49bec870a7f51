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

package model

import (
	"time"
)

// Waypoint represents a waypoint, point of interest, or named feature on a
// map.  Latitude and longitude are mandatory; everything else is optional.
type Waypoint struct {
	// Lat is the latitude of the point in decimal degrees.
	Lat Degrees

	// Lon is the longitude of the point in decimal degrees.
	Lon Degrees

	// Elevation (in meters) of the point.
	Elevation *float64

	// Speed over ground in meters per second.  GPX 1.0 only.
	Speed *float64

	// Course over ground in degrees.  GPX 1.0 only.
	Course *Degrees

	// Time is the creation/modification timestamp for the element, in UTC.
	Time *time.Time

	// MagneticVariation is the magnetic variation at the point, in degrees.
	MagneticVariation *Degrees

	// GeoidHeight is the height (in meters) of the geoid above the WGS84
	// ellipsoid at the point.
	GeoidHeight *float64

	// Name is the GPS name of the waypoint, transferred to and from the GPS.
	Name *string

	// Comment is sent to the GPS as a comment.
	Comment *string

	// Description holds additional information intended for the user, not
	// the GPS.
	Description *string

	// Source of the data, e.g. "Garmin eTrex", "USGS quad Boston North".
	Source *string

	// Links to additional information about the waypoint.
	Links []Link

	// Symbol is the exact spelling of the GPS symbol name.
	Symbol *string

	// Type (classification) of the waypoint.
	Type *string

	// Fix is the type of GPS fix.  Leave empty when the fix info is unknown.
	Fix Fix

	// Sat is the number of satellites used to calculate the fix.
	Sat *int

	// HDOP is the horizontal dilution of precision.
	HDOP *float64

	// VDOP is the vertical dilution of precision.
	VDOP *float64

	// PDOP is the positional dilution of precision.
	PDOP *float64

	// AgeOfDGPSData is the number of seconds since the last DGPS update.
	AgeOfDGPSData *float64

	// DGPSID is the ID of the DGPS station used in differential correction,
	// in the range [0, 1023].
	DGPSID *int

	Extensions *Extensions
}

// NewWaypoint creates a waypoint at the given coordinates.
func NewWaypoint(lat, lon Degrees) Waypoint {
	return Waypoint{Lat: lat, Lon: lon}
}

// Point returns the waypoint's coordinates as a (lat, lon) pair.
func (w *Waypoint) Point() (Degrees, Degrees) {
	return w.Lat, w.Lon
}

// Track represents an ordered list of points describing a recorded path.
type Track struct {
	// Name is the GPS name of the track.
	Name *string

	// Comment for the track.
	Comment *string

	// Description of the track, intended for the user.
	Description *string

	// Source of the data.
	Source *string

	// Links to external information about the track.
	Links []Link

	// Number is the GPS track number.
	Number *int

	// Type (classification) of the track.  GPX 1.1 only.
	Type *string

	// Segments holds the track segments in file order.  Start a new segment
	// for each continuous span of track data, e.g. whenever GPS reception
	// was lost.
	Segments []TrackSegment

	Extensions *Extensions
}

// Bounds computes the lat/lon extent covered by the track's points, or nil
// for a track without points.
func (t *Track) Bounds() *Bounds {
	bounds := InitialBounds()
	empty := true

	for i := range t.Segments {
		for _, p := range t.Segments[i].Points {
			bounds.ExpandWithLatLon(p.Lat, p.Lon)
			empty = false
		}
	}

	if empty {
		return nil
	}

	return bounds
}

// TrackSegment holds a list of track points which are logically connected
// in order.
type TrackSegment struct {
	// Points holds the coordinates, elevation, timestamp, and metadata for
	// each point in the segment, in path order.
	Points []Waypoint

	Extensions *Extensions
}

// Route represents an ordered list of waypoints describing a planned path,
// as opposed to a recorded Track.
type Route struct {
	// Name is the GPS name of the route.
	Name *string

	// Comment for the route.
	Comment *string

	// Description of the route, intended for the user.
	Description *string

	// Source of the data.
	Source *string

	// Links to external information about the route.
	Links []Link

	// Number is the GPS route number.
	Number *int

	// Type (classification) of the route.  GPX 1.1 only.
	Type *string

	// Points holds the route points in file order.
	Points []Waypoint

	Extensions *Extensions
}
