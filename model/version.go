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

// Version is an enumeration of the published GPX schema versions.
type Version int

const (
	// VersionUnknown denotes a version that has not been established.
	VersionUnknown Version = iota

	// Gpx10 is GPX version 1.0.
	Gpx10

	// Gpx11 is GPX version 1.1.
	Gpx11
)

// The version attribute values carried by the gpx root element.
const (
	versionString10 = "1.0"
	versionString11 = "1.1"
)

// ParseVersion maps a gpx root element version attribute onto a Version.
// The boolean reports whether the value named a published schema version.
func ParseVersion(s string) (Version, bool) {
	switch s {
	case versionString10:
		return Gpx10, true
	case versionString11:
		return Gpx11, true
	default:
		return VersionUnknown, false
	}
}

func (v Version) String() string {
	switch v {
	case Gpx10:
		return versionString10
	case Gpx11:
		return versionString11
	default:
		return "unknown"
	}
}

// Namespace returns the XML namespace URI for the version.
func (v Version) Namespace() string {
	switch v {
	case Gpx10:
		return "http://www.topografix.com/GPX/1/0"
	default:
		return "http://www.topografix.com/GPX/1/1"
	}
}

// SchemaLocation returns the xsi:schemaLocation attribute value for the version.
func (v Version) SchemaLocation() string {
	switch v {
	case Gpx10:
		return "http://www.topografix.com/GPX/1/0 http://www.topografix.com/GPX/1/0/gpx.xsd"
	default:
		return "http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd"
	}
}
