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

// GPX is the root of a GPX document.  The tree is strictly hierarchical:
// the root exclusively owns its children, children never refer back up.
type GPX struct {
	// Version is the schema version the document was parsed against, or
	// the version a programmatically built document targets.
	Version Version

	// Creator is the name or URL of the software that created the document.
	Creator *string

	// Metadata is information about the file, its author, and copyright
	// restrictions.
	Metadata *Metadata

	// Waypoints are the points of interest carried at the document root.
	Waypoints []Waypoint

	// Tracks are the recorded tracks.
	Tracks []Track

	// Routes are the planned routes.
	Routes []Route

	Extensions *Extensions
}

// NewGPX creates an empty document targeting the given version.
func NewGPX(version Version) *GPX {
	return &GPX{Version: version}
}

// Metadata is information about the GPX file, author, and copyright
// restrictions.  Every field is optional; an empty string value is distinct
// from an absent one.
type Metadata struct {
	// Name is the name of the GPX file.
	Name *string

	// Description describes the contents of the GPX file.
	Description *string

	// Author is the person or organization who created the GPX file.
	Author *Person

	// Copyright carries copyright and license information governing use of
	// the data.
	Copyright *Copyright

	// Links are URLs associated with the location described in the file.
	Links []Link

	// Time is the creation date of the file.
	Time *time.Time

	// Keywords classify the data for search engines or databases.
	Keywords *string

	// Bounds is the lat/lon extent covered by the file.
	Bounds *Bounds

	Extensions *Extensions
}

// Person represents a person or organization.
type Person struct {
	// Name of person or organization.
	Name *string

	// Email address in id@domain form.
	Email *string

	// Link to Web site or other external information about the person.
	Link *Link

	Extensions *Extensions
}

// Copyright carries information about the copyright holder and license
// governing use of the data.
type Copyright struct {
	// Author is the copyright holder.  It is the one mandatory part of a
	// copyright element.
	Author string

	// Year of copyright.
	Year *int

	// License is a URI pointing to the license text.
	License *string

	Extensions *Extensions
}

// Link represents a link to an external resource: a web page, digital
// photo, video clip, and so on.
type Link struct {
	// Href is the URL of the hyperlink.
	Href string

	// Text of the hyperlink.
	Text *string

	// Type is the mime type of the content, e.g. image/jpeg.
	Type *string

	Extensions *Extensions
}
